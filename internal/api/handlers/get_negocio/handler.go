package get_negocio

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/agendavip/booking-service/internal/api/handlers"
	"github.com/agendavip/booking-service/internal/service/negocios"
)

const (
	msgMissingSlug     = "identificador do negócio é obrigatório"
	msgNegocioNotFound = "negócio não encontrado"
)

type Handler struct {
	service NegociosService
	logger  Logger
}

func NewHandler(service NegociosService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/negocios/by-slug/{slug}
// Публичный профиль негосио для страницы бронирования:
// данные негосио, каталог услуг и список профессионалов
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	slug := vars["slug"]
	if slug == "" {
		h.logger.Warn("GET /negocios/by-slug/{slug} - Missing slug")
		handlers.RespondBadRequest(w, msgMissingSlug)
		return
	}

	result, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, negocios.ErrNegocioNotFound):
			h.logger.Warn("GET /negocios/by-slug/{slug} - Negocio not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgNegocioNotFound)

		case errors.Is(err, negocios.ErrInvalidInput):
			h.logger.Warn("GET /negocios/by-slug/{slug} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingSlug)

		default:
			h.logger.Error("GET /negocios/by-slug/{slug} - Failed to get negocio: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /negocios/by-slug/{slug} - Negocio retrieved successfully: negocio_id=%d, slug=%s",
		result.ID, slug)
	handlers.RespondJSON(w, http.StatusOK, result)
}
