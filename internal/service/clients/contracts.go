package clients

import (
	"context"

	"github.com/agendavip/booking-service/internal/domain"
)

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	ListByNegocio(ctx context.Context, negocioID int64) ([]*domain.Client, error)
}

// NegocioRepository интерфейс репозитория негосио
type NegocioRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Negocio, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
