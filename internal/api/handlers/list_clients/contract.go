package list_clients

import (
	"context"

	"github.com/agendavip/booking-service/internal/service/clients/models"
)

type ClientsService interface {
	ListByNegocio(ctx context.Context, negocioID int64, userID int64) (*models.ClientListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
