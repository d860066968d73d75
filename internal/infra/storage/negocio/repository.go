package negocio

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/agendavip/booking-service/internal/domain"
	"github.com/agendavip/booking-service/pkg/dbmetrics"
	"github.com/agendavip/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с негосио
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория негосио
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var negocioColumns = []string{
	"id",
	"owner_id",
	"name",
	"slug",
	"logo_url",
	"address",
	"phone",
	"description",
	"operating_hours",
	"plan",
	"status",
	"created_at",
	"updated_at",
}

// GetByID получает негосио по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Negocio, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(negocioColumns...).
		From("negocios").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanNegocio(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetBySlug получает негосио по публичному slug
// Используется публичной страницей бронирования
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Negocio, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(negocioColumns...).
		From("negocios").
		Where(squirrel.Eq{"slug": slug}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlug - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanNegocio(executor.QueryRowContext(ctx, query, args...), "GetBySlug")
}

// UpdateOperatingHours обновляет расписание работы негосио
func (r *Repository) UpdateOperatingHours(ctx context.Context, id int64, hours *domain.OperatingHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	encoded, err := json.Marshal(hours)
	if err != nil {
		return fmt.Errorf("%w: UpdateOperatingHours: %v", ErrEncodeHours, err)
	}

	query, args, err := psqlbuilder.Update("negocios").
		Set("operating_hours", encoded).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateOperatingHours - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateOperatingHours - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateOperatingHours - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNegocioNotFound
	}

	return nil
}

func (r *Repository) scanNegocio(row *sql.Row, op string) (*domain.Negocio, error) {
	var n domain.Negocio
	var hoursRaw []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&n.ID,
		&n.OwnerID,
		&n.Name,
		&n.Slug,
		&n.LogoURL,
		&n.Address,
		&n.Phone,
		&n.Description,
		&hoursRaw,
		&n.Plan,
		&n.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNegocioNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan negocio: %v", ErrScanRow, op, err)
	}

	// operating_hours хранится как JSONB, NULL = расписание не настроено
	if len(hoursRaw) > 0 {
		var hours domain.OperatingHours
		if err := json.Unmarshal(hoursRaw, &hours); err != nil {
			return nil, fmt.Errorf("%w: %s - decode operating hours: %v", ErrScanRow, op, err)
		}
		n.OperatingHours = &hours
	}

	n.CreatedAt = createdAt.Time
	n.UpdatedAt = updatedAt.Time

	return &n, nil
}
