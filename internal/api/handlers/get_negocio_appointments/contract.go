package get_negocio_appointments

import (
	"context"

	"github.com/agendavip/booking-service/internal/service/appointments/models"
)

type AppointmentsService interface {
	ListByNegocio(ctx context.Context, req *models.GetNegocioAppointmentsRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
