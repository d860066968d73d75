package get_negocio_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/agendavip/booking-service/internal/api/handlers"
	"github.com/agendavip/booking-service/internal/api/middleware"
	"github.com/agendavip/booking-service/internal/service/appointments"
)

const (
	msgInvalidNegocioID = "ID do negócio inválido"
	msgInvalidFilter    = "parâmetros de filtro inválidos"
	msgMissingUserID    = "cabeçalho X-User-ID obrigatório"
	msgNegocioNotFound  = "negócio não encontrado"
	msgAccessDenied     = "acesso negado"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/negocios/{negocioId}/appointments
// Query params: professionalId, startDate, endDate, status, includeInactive (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /negocios/{id}/appointments - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	vars := mux.Vars(r)

	negocioIDStr := vars["negocioId"]
	negocioID, err := strconv.ParseInt(negocioIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /negocios/{id}/appointments - Invalid negocio ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNegocioID)
		return
	}

	req, err := ToServiceRequest(negocioID, userID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /negocios/{id}/appointments - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.ListByNegocio(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrNegocioNotFound):
			h.logger.Warn("GET /negocios/{id}/appointments - Negocio not found: negocio_id=%d", negocioID)
			handlers.RespondNotFound(w, msgNegocioNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /negocios/{id}/appointments - Access denied: user_id=%d, negocio_id=%d", userID, negocioID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /negocios/{id}/appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /negocios/{id}/appointments - Failed to list appointments: negocio_id=%d, error=%v",
				negocioID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /negocios/{id}/appointments - Appointments retrieved successfully: negocio_id=%d, count=%d",
		negocioID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
