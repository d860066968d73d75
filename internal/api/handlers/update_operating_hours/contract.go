package update_operating_hours

import (
	"context"

	"github.com/agendavip/booking-service/internal/service/negocios/models"
)

type NegociosService interface {
	UpdateOperatingHours(ctx context.Context, negocioID int64, req *models.UpdateOperatingHoursRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
