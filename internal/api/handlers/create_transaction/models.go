package create_transaction

import (
	"fmt"
	"time"

	"github.com/agendavip/booking-service/internal/domain"
	"github.com/agendavip/booking-service/internal/service/finance/models"
)

// CreateTransactionRequest HTTP модель создания ручной финансовой операции
type CreateTransactionRequest struct {
	Type          string  `json:"type"` // revenue, expense, investment
	Amount        float64 `json:"amount"`
	Description   string  `json:"description"`
	Date          string  `json:"date"` // "2026-08-27"
	PaymentMethod *string `json:"paymentMethod,omitempty"`
}

// ToServiceRequest конвертирует HTTP модель в сервисную с разбором даты
func (r *CreateTransactionRequest) ToServiceRequest(userID int64) (*models.CreateTransactionRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", r.Date, err)
	}

	return &models.CreateTransactionRequest{
		UserID:        userID,
		Type:          r.Type,
		Amount:        r.Amount,
		Description:   r.Description,
		Date:          date,
		PaymentMethod: r.PaymentMethod,
	}, nil
}
