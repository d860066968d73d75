package models

import (
	"errors"
	"time"

	"github.com/agendavip/booking-service/internal/domain"
)

var (
	// ErrInvalidType возвращается при некорректном типе операции
	ErrInvalidType = errors.New("invalid transaction type")

	// ErrInvalidPaymentMethod возвращается при некорректном способе оплаты
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// Request модели

// CreateTransactionRequest запрос на создание ручной финансовой операции
type CreateTransactionRequest struct {
	UserID        int64     `json:"userId"`
	Type          string    `json:"type"` // revenue, expense, investment
	Amount        float64   `json:"amount"`
	Description   string    `json:"description"`
	Date          time.Time `json:"date"`
	PaymentMethod *string   `json:"paymentMethod,omitempty"`
}

// ToDomainTransaction конвертирует request в domain модель с валидацией
// Ручные операции получают source_type manual_* в зависимости от типа
func (r *CreateTransactionRequest) ToDomainTransaction(negocioID int64) (*domain.Transaction, error) {
	txType, sourceType, err := toDomainTransactionType(r.Type)
	if err != nil {
		return nil, err
	}

	transaction := &domain.Transaction{
		NegocioID:   negocioID,
		Type:        txType,
		Amount:      r.Amount,
		Description: r.Description,
		Date:        r.Date,
		SourceType:  &sourceType,
	}

	if r.PaymentMethod != nil {
		method, err := toDomainPaymentMethod(*r.PaymentMethod)
		if err != nil {
			return nil, err
		}
		transaction.PaymentMethod = &method
	}

	return transaction, nil
}

// GetSummaryRequest запрос на получение финансовой сводки за период
type GetSummaryRequest struct {
	UserID    int64     `json:"userId"`
	NegocioID int64     `json:"negocioId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// Response модели

// TransactionResponse ответ с данными финансовой операции
type TransactionResponse struct {
	ID             int64   `json:"id"`
	NegocioID      int64   `json:"negocioId"`
	Type           string  `json:"type"`
	Amount         float64 `json:"amount"`
	Description    string  `json:"description"`
	Date           string  `json:"date"` // "2026-08-27"
	SourceType     *string `json:"sourceType,omitempty"`
	SourceID       *int64  `json:"sourceId,omitempty"`
	ClientID       *int64  `json:"clientId,omitempty"`
	ProfessionalID *int64  `json:"professionalId,omitempty"`
	ServiceID      *int64  `json:"serviceId,omitempty"`
	PaymentMethod  *string `json:"paymentMethod,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// TransactionListResponse ответ со списком финансовых операций
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// SummaryResponse финансовая сводка за период
type SummaryResponse struct {
	Revenue    float64 `json:"revenue"`
	Expense    float64 `json:"expense"`
	Investment float64 `json:"investment"`
	Net        float64 `json:"net"`
}

// Методы конвертации

// FromDomainTransaction конвертирует domain модель в DTO
func FromDomainTransaction(t *domain.Transaction) *TransactionResponse {
	if t == nil {
		return nil
	}

	resp := &TransactionResponse{
		ID:             t.ID,
		NegocioID:      t.NegocioID,
		Type:           string(t.Type),
		Amount:         t.Amount,
		Description:    t.Description,
		Date:           t.Date.Format(domain.DateFormat),
		SourceID:       t.SourceID,
		ClientID:       t.ClientID,
		ProfessionalID: t.ProfessionalID,
		ServiceID:      t.ServiceID,
		CreatedAt:      t.CreatedAt,
	}

	if t.SourceType != nil {
		sourceType := string(*t.SourceType)
		resp.SourceType = &sourceType
	}

	if t.PaymentMethod != nil {
		method := string(*t.PaymentMethod)
		resp.PaymentMethod = &method
	}

	return resp
}

// FromDomainTransactionList конвертирует список domain моделей в DTO
func FromDomainTransactionList(transactions []*domain.Transaction) *TransactionListResponse {
	if transactions == nil {
		return &TransactionListResponse{
			Transactions: []TransactionResponse{},
		}
	}

	resp := &TransactionListResponse{
		Transactions: make([]TransactionResponse, len(transactions)),
	}

	for i, transaction := range transactions {
		if txResp := FromDomainTransaction(transaction); txResp != nil {
			resp.Transactions[i] = *txResp
		}
	}

	return resp
}

// FromDomainSummary конвертирует domain сводку в DTO
func FromDomainSummary(s *domain.FinanceSummary) *SummaryResponse {
	return &SummaryResponse{
		Revenue:    s.Revenue,
		Expense:    s.Expense,
		Investment: s.Investment,
		Net:        s.Net(),
	}
}

func toDomainTransactionType(t string) (domain.TransactionType, domain.TransactionSourceType, error) {
	switch domain.TransactionType(t) {
	case domain.TransactionRevenue:
		return domain.TransactionRevenue, domain.SourceManualRevenue, nil
	case domain.TransactionExpense:
		return domain.TransactionExpense, domain.SourceManualExpense, nil
	case domain.TransactionInvestment:
		return domain.TransactionInvestment, domain.SourceManualInvestment, nil
	default:
		return "", "", ErrInvalidType
	}
}

func toDomainPaymentMethod(method string) (domain.PaymentMethod, error) {
	m := domain.PaymentMethod(method)

	validMethods := []domain.PaymentMethod{
		domain.MethodCreditCard,
		domain.MethodDebitCard,
		domain.MethodCash,
		domain.MethodPix,
		domain.MethodOther,
	}

	for _, valid := range validMethods {
		if m == valid {
			return m, nil
		}
	}

	return "", ErrInvalidPaymentMethod
}
