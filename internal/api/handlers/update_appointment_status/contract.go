package update_appointment_status

import (
	"context"

	"github.com/agendavip/booking-service/internal/service/appointments/models"
)

type AppointmentsService interface {
	UpdateStatus(ctx context.Context, appointmentID int64, req *models.UpdateStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
