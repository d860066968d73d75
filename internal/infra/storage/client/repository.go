package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/agendavip/booking-service/internal/domain"
	"github.com/agendavip/booking-service/pkg/dbmetrics"
	"github.com/agendavip/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с клиентами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var clientColumns = []string{
	"id",
	"negocio_id",
	"name",
	"phone",
	"email",
	"notes",
	"birth_date",
	"created_at",
	"updated_at",
}

// Create создает нового клиента
// Phone должен быть уже нормализован (только цифры)
func (r *Repository) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("clients").
		Columns(
			"negocio_id",
			"name",
			"phone",
			"email",
			"notes",
			"birth_date",
		).
		Values(
			c.NegocioID,
			c.Name,
			c.Phone,
			c.Email,
			c.Notes,
			c.BirthDate,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return c, nil
}

// GetByID получает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(clientColumns...).
		From("clients").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanClient(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByPhone ищет клиента негосио по нормализованному телефону
// Телефон уникален в рамках негосио, поэтому совпадение не более одного
func (r *Repository) GetByPhone(ctx context.Context, negocioID int64, phone string) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(clientColumns...).
		From("clients").
		Where(squirrel.Eq{"negocio_id": negocioID}).
		Where(squirrel.Eq{"phone": phone}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanClient(executor.QueryRowContext(ctx, query, args...), "GetByPhone")
}

// ListByNegocio получает всех клиентов негосио
func (r *Repository) ListByNegocio(ctx context.Context, negocioID int64) ([]*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(clientColumns...).
		From("clients").
		Where(squirrel.Eq{"negocio_id": negocioID}).
		OrderBy("name ASC NULLS LAST, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByNegocio - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByNegocio - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)

	for rows.Next() {
		var c domain.Client
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&c.ID,
			&c.NegocioID,
			&c.Name,
			&c.Phone,
			&c.Email,
			&c.Notes,
			&c.BirthDate,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListByNegocio - scan row: %v", ErrScanRow, err)
		}

		c.CreatedAt = createdAt.Time
		c.UpdatedAt = updatedAt.Time

		clients = append(clients, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByNegocio - rows error: %v", ErrScanRow, err)
	}

	return clients, nil
}

func (r *Repository) scanClient(row *sql.Row, op string) (*domain.Client, error) {
	var c domain.Client
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&c.ID,
		&c.NegocioID,
		&c.Name,
		&c.Phone,
		&c.Email,
		&c.Notes,
		&c.BirthDate,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan client: %v", ErrScanRow, op, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}
