package close_appointment_payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/agendavip/booking-service/internal/api/handlers"
	"github.com/agendavip/booking-service/internal/api/middleware"
	"github.com/agendavip/booking-service/internal/service/appointments"
	"github.com/agendavip/booking-service/internal/service/appointments/models"
)

const (
	msgInvalidAppointmentID = "ID do agendamento inválido"
	msgInvalidRequestBody   = "corpo da requisição inválido"
	msgInvalidPayment       = "dados de pagamento inválidos"
	msgMissingUserID        = "cabeçalho X-User-ID obrigatório"
	msgAppointmentNotFound  = "agendamento não encontrado"
	msgAccessDenied         = "acesso negado"
	msgAlreadyPaid          = "este agendamento já foi pago"
)

// ClosePaymentRequest HTTP request model
type ClosePaymentRequest struct {
	Tip           float64 `json:"tip"`
	PaymentMethod string  `json:"paymentMethod"`
}

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

// Handle POST /api/v1/appointments/{appointmentId}/payment
// Помечает запись оплаченной и создает финансовую операцию revenue
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments/{id}/payment - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	vars := mux.Vars(r)

	appointmentIDStr := vars["appointmentId"]
	appointmentID, err := strconv.ParseInt(appointmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /appointments/{id}/payment - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req ClosePaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/{id}/payment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.ClosePayment(r.Context(), appointmentID, &models.ClosePaymentRequest{
		UserID:        userID,
		Tip:           req.Tip,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/{id}/payment - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrNegocioNotFound):
			h.logger.Warn("POST /appointments/{id}/payment - Negocio not found for appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("POST /appointments/{id}/payment - Access denied: user_id=%d, appointment_id=%d",
				userID, appointmentID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, appointments.ErrAlreadyPaid):
			h.logger.Warn("POST /appointments/{id}/payment - Already paid: appointment_id=%d", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyPaid)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("POST /appointments/{id}/payment - Invalid payment data: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidPayment)

		default:
			h.logger.Error("POST /appointments/{id}/payment - Failed to close payment: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/{id}/payment - Payment closed successfully: appointment_id=%d, user_id=%d",
		appointmentID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
