package domain

import "time"

// TransactionType тип финансовой операции
type TransactionType string

const (
	TransactionRevenue    TransactionType = "revenue"
	TransactionExpense    TransactionType = "expense"
	TransactionInvestment TransactionType = "investment"
)

// TransactionSourceType источник финансовой операции
type TransactionSourceType string

const (
	SourceAppointment      TransactionSourceType = "appointment"
	SourceManualRevenue    TransactionSourceType = "manual_revenue"
	SourceManualExpense    TransactionSourceType = "manual_expense"
	SourceManualInvestment TransactionSourceType = "manual_investment"
)

// PaymentMethod способ оплаты
type PaymentMethod string

const (
	MethodCreditCard PaymentMethod = "credit_card"
	MethodDebitCard  PaymentMethod = "debit_card"
	MethodCash       PaymentMethod = "cash"
	MethodPix        PaymentMethod = "pix"
	MethodOther      PaymentMethod = "other"
)

// Transaction финансовая операция негосио
// Записи об оплате услуг создаются автоматически при закрытии оплаты записи,
// остальные операции вносятся владельцем вручную
type Transaction struct {
	ID             int64
	NegocioID      int64
	Type           TransactionType
	Amount         float64
	Description    string
	Date           time.Time
	SourceType     *TransactionSourceType
	SourceID       *int64 // например, ID записи
	ClientID       *int64
	ProfessionalID *int64
	ServiceID      *int64
	PaymentMethod  *PaymentMethod
	CreatedAt      time.Time
}

// FinanceSummary сводка финансов за период
type FinanceSummary struct {
	Revenue    float64
	Expense    float64
	Investment float64
}

// Net возвращает чистый результат за период
func (s *FinanceSummary) Net() float64 {
	return s.Revenue - s.Expense - s.Investment
}
