package get_negocio

import (
	"context"

	"github.com/agendavip/booking-service/internal/service/negocios/models"
)

type NegociosService interface {
	GetBySlug(ctx context.Context, slug string) (*models.NegocioResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
