package get_finance_summary

import (
	"context"

	"github.com/agendavip/booking-service/internal/service/finance/models"
)

type FinanceService interface {
	GetSummary(ctx context.Context, req *models.GetSummaryRequest) (*models.SummaryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
