package list_transactions

import (
	"context"

	"github.com/agendavip/booking-service/internal/service/finance/models"
)

type FinanceService interface {
	ListTransactions(ctx context.Context, req *models.GetSummaryRequest) (*models.TransactionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
