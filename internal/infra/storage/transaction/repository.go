package transaction

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/agendavip/booking-service/internal/domain"
	"github.com/agendavip/booking-service/pkg/dbmetrics"
	"github.com/agendavip/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с финансовыми операциями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория финансовых операций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var transactionColumns = []string{
	"id",
	"negocio_id",
	"type",
	"amount",
	"description",
	"date",
	"source_type",
	"source_id",
	"client_id",
	"professional_id",
	"service_id",
	"payment_method",
	"created_at",
}

// Create создает новую финансовую операцию
func (r *Repository) Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("transactions").
		Columns(
			"negocio_id",
			"type",
			"amount",
			"description",
			"date",
			"source_type",
			"source_id",
			"client_id",
			"professional_id",
			"service_id",
			"payment_method",
		).
		Values(
			t.NegocioID,
			t.Type,
			t.Amount,
			t.Description,
			t.Date,
			t.SourceType,
			t.SourceID,
			t.ClientID,
			t.ProfessionalID,
			t.ServiceID,
			t.PaymentMethod,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &createdAt)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	t.CreatedAt = createdAt.Time

	return t, nil
}

// ListByNegocioPeriod получает операции негосио за период
func (r *Repository) ListByNegocioPeriod(ctx context.Context, negocioID int64, start, end time.Time) ([]*domain.Transaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(transactionColumns...).
		From("transactions").
		Where(squirrel.Eq{"negocio_id": negocioID}).
		Where(squirrel.GtOrEq{"date": start}).
		Where(squirrel.LtOrEq{"date": end}).
		OrderBy("date DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByNegocioPeriod - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByNegocioPeriod - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	transactions := make([]*domain.Transaction, 0)

	for rows.Next() {
		var t domain.Transaction
		var createdAt sql.NullTime

		err := rows.Scan(
			&t.ID,
			&t.NegocioID,
			&t.Type,
			&t.Amount,
			&t.Description,
			&t.Date,
			&t.SourceType,
			&t.SourceID,
			&t.ClientID,
			&t.ProfessionalID,
			&t.ServiceID,
			&t.PaymentMethod,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListByNegocioPeriod - scan row: %v", ErrScanRow, err)
		}

		t.CreatedAt = createdAt.Time

		transactions = append(transactions, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByNegocioPeriod - rows error: %v", ErrScanRow, err)
	}

	return transactions, nil
}

// SumByTypeForPeriod возвращает суммы операций по типам за период
// Агрегация выполняется на стороне БД одним запросом
func (r *Repository) SumByTypeForPeriod(ctx context.Context, negocioID int64, start, end time.Time) (*domain.FinanceSummary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("type", "COALESCE(SUM(amount), 0)").
		From("transactions").
		Where(squirrel.Eq{"negocio_id": negocioID}).
		Where(squirrel.GtOrEq{"date": start}).
		Where(squirrel.LtOrEq{"date": end}).
		GroupBy("type").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: SumByTypeForPeriod - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: SumByTypeForPeriod - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var summary domain.FinanceSummary

	for rows.Next() {
		var txType domain.TransactionType
		var total float64

		if err := rows.Scan(&txType, &total); err != nil {
			return nil, fmt.Errorf("%w: SumByTypeForPeriod - scan row: %v", ErrScanRow, err)
		}

		switch txType {
		case domain.TransactionRevenue:
			summary.Revenue = total
		case domain.TransactionExpense:
			summary.Expense = total
		case domain.TransactionInvestment:
			summary.Investment = total
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: SumByTypeForPeriod - rows error: %v", ErrScanRow, err)
	}

	return &summary, nil
}
