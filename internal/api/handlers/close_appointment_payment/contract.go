package close_appointment_payment

import (
	"context"

	"github.com/agendavip/booking-service/internal/service/appointments/models"
)

type AppointmentsService interface {
	ClosePayment(ctx context.Context, appointmentID int64, req *models.ClosePaymentRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
