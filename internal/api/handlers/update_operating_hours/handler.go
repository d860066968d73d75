package update_operating_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/agendavip/booking-service/internal/api/handlers"
	"github.com/agendavip/booking-service/internal/api/middleware"
	"github.com/agendavip/booking-service/internal/service/negocios"
	"github.com/agendavip/booking-service/internal/service/negocios/models"
)

const (
	msgInvalidNegocioID   = "ID do negócio inválido"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidHours       = "horário de funcionamento inválido"
	msgMissingUserID      = "cabeçalho X-User-ID obrigatório"
	msgNegocioNotFound    = "negócio não encontrado"
	msgAccessDenied       = "acesso negado"
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

// Handle PUT /api/v1/negocios/{negocioId}/operating-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /negocios/{id}/operating-hours - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	vars := mux.Vars(r)

	negocioIDStr := vars["negocioId"]
	negocioID, err := strconv.ParseInt(negocioIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /negocios/{id}/operating-hours - Invalid negocio ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNegocioID)
		return
	}

	var hours models.OperatingHoursPayload
	if err := handlers.DecodeJSON(r, &hours); err != nil {
		h.logger.Warn("PUT /negocios/{id}/operating-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.UpdateOperatingHours(r.Context(), negocioID, &models.UpdateOperatingHoursRequest{
		UserID: userID,
		Hours:  hours,
	})
	if err != nil {
		switch {
		case errors.Is(err, negocios.ErrNegocioNotFound):
			h.logger.Warn("PUT /negocios/{id}/operating-hours - Negocio not found: negocio_id=%d", negocioID)
			handlers.RespondNotFound(w, msgNegocioNotFound)

		case errors.Is(err, negocios.ErrAccessDenied):
			h.logger.Warn("PUT /negocios/{id}/operating-hours - Access denied: user_id=%d, negocio_id=%d",
				userID, negocioID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, negocios.ErrInvalidHours):
			h.logger.Warn("PUT /negocios/{id}/operating-hours - Invalid hours: negocio_id=%d, error=%v",
				negocioID, err)
			handlers.RespondBadRequest(w, msgInvalidHours)

		default:
			h.logger.Error("PUT /negocios/{id}/operating-hours - Failed to update hours: negocio_id=%d, error=%v",
				negocioID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /negocios/{id}/operating-hours - Hours updated successfully: negocio_id=%d, user_id=%d",
		negocioID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
