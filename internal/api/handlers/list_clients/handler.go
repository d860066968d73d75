package list_clients

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/agendavip/booking-service/internal/api/handlers"
	"github.com/agendavip/booking-service/internal/api/middleware"
	"github.com/agendavip/booking-service/internal/service/clients"
)

const (
	msgInvalidNegocioID = "ID do negócio inválido"
	msgMissingUserID    = "cabeçalho X-User-ID obrigatório"
	msgNegocioNotFound  = "negócio não encontrado"
	msgAccessDenied     = "acesso negado"
)

type Handler struct {
	service ClientsService
	logger  Logger
}

func NewHandler(service ClientsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/negocios/{negocioId}/clients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /negocios/{id}/clients - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	vars := mux.Vars(r)

	negocioIDStr := vars["negocioId"]
	negocioID, err := strconv.ParseInt(negocioIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /negocios/{id}/clients - Invalid negocio ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNegocioID)
		return
	}

	result, err := h.service.ListByNegocio(r.Context(), negocioID, userID)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrNegocioNotFound):
			h.logger.Warn("GET /negocios/{id}/clients - Negocio not found: negocio_id=%d", negocioID)
			handlers.RespondNotFound(w, msgNegocioNotFound)

		case errors.Is(err, clients.ErrAccessDenied):
			h.logger.Warn("GET /negocios/{id}/clients - Access denied: user_id=%d, negocio_id=%d", userID, negocioID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /negocios/{id}/clients - Failed to list clients: negocio_id=%d, error=%v",
				negocioID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /negocios/{id}/clients - Clients retrieved successfully: negocio_id=%d, count=%d",
		negocioID, len(result.Clients))
	handlers.RespondJSON(w, http.StatusOK, result)
}
