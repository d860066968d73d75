package create_booking

import (
	"context"
	"time"

	"github.com/agendavip/booking-service/internal/domain"
)

// NegocioRepository интерфейс репозитория негосио
type NegocioRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Negocio, error)
}

// ProfessionalRepository интерфейс репозитория профессионалов
type ProfessionalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	ListByNegocio(ctx context.Context, negocioID int64) ([]*domain.Service, error)
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	GetByPhone(ctx context.Context, negocioID int64, phone string) (*domain.Client, error)
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	ListForProfessionalOnDate(ctx context.Context, professionalID int64, date time.Time, includeInactive bool) ([]*domain.Appointment, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
