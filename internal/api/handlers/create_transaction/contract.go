package create_transaction

import (
	"context"

	"github.com/agendavip/booking-service/internal/service/finance/models"
)

type FinanceService interface {
	CreateTransaction(ctx context.Context, negocioID int64, req *models.CreateTransactionRequest) (*models.TransactionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
