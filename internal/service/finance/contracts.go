package finance

import (
	"context"
	"time"

	"github.com/agendavip/booking-service/internal/domain"
)

// TransactionRepository интерфейс репозитория финансовых операций
type TransactionRepository interface {
	Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
	ListByNegocioPeriod(ctx context.Context, negocioID int64, start, end time.Time) ([]*domain.Transaction, error)
	SumByTypeForPeriod(ctx context.Context, negocioID int64, start, end time.Time) (*domain.FinanceSummary, error)
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
