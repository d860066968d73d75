package negocios

import (
	"context"

	"github.com/agendavip/booking-service/internal/domain"
)

// NegocioRepository интерфейс репозитория негосио
type NegocioRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Negocio, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Negocio, error)
	UpdateOperatingHours(ctx context.Context, id int64, hours *domain.OperatingHours) error
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	ListByNegocio(ctx context.Context, negocioID int64) ([]*domain.Service, error)
}

// ProfessionalRepository интерфейс репозитория профессионалов
type ProfessionalRepository interface {
	ListByNegocio(ctx context.Context, negocioID int64) ([]*domain.Professional, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
