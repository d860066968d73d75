package professional

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

// Repository репозиторий для работы с профессионалами
// Связь профессионал-услуга хранится в таблице professionals_services
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория профессионалов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var professionalColumns = []string{
	"id",
	"negocio_id",
	"name",
	"photo_url",
	"commission_type",
	"commission_value",
	"base_salary",
	"working_hours",
	"created_at",
	"updated_at",
}

// GetByID получает профессионала по ID вместе со списком ID его услуг
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(professionalColumns...).
		From("professionals").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	p, err := r.scanProfessional(executor.QueryRowContext(ctx, query, args...), "GetByID")
	if err != nil {
		return nil, err
	}

	serviceIDs, err := r.listServiceIDs(ctx, executor, p.ID)
	if err != nil {
		return nil, err
	}
	p.ServiceIDs = serviceIDs

	return p, nil
}

// ListByNegocio получает всех профессионалов негосио со списками ID услуг
func (r *Repository) ListByNegocio(ctx context.Context, negocioID int64) ([]*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(professionalColumns...).
		From("professionals").
		Where(squirrel.Eq{"negocio_id": negocioID}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByNegocio - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByNegocio - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	professionals := make([]*domain.Professional, 0)

	for rows.Next() {
		p, err := r.scanProfessionalRow(rows)
		if err != nil {
			return nil, err
		}
		professionals = append(professionals, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByNegocio - rows error: %v", ErrScanRow, err)
	}

	// Подгружаем связи с услугами одним запросом на весь список
	if err := r.attachServiceIDs(ctx, executor, professionals); err != nil {
		return nil, err
	}

	return professionals, nil
}

// listServiceIDs получает ID услуг профессионала из таблицы связей
func (r *Repository) listServiceIDs(ctx context.Context, executor DBExecutor, professionalID int64) ([]int64, error) {
	query, args, err := psqlbuilder.Select("service_id").
		From("professionals_services").
		Where(squirrel.Eq{"professional_id": professionalID}).
		OrderBy("service_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: listServiceIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listServiceIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: listServiceIDs - scan service_id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listServiceIDs - rows error: %v", ErrScanRow, err)
	}

	return ids, nil
}

// attachServiceIDs подгружает ID услуг для списка профессионалов
func (r *Repository) attachServiceIDs(ctx context.Context, executor DBExecutor, professionals []*domain.Professional) error {
	if len(professionals) == 0 {
		return nil
	}

	byID := make(map[int64]*domain.Professional, len(professionals))
	ids := make([]int64, 0, len(professionals))
	for _, p := range professionals {
		p.ServiceIDs = make([]int64, 0)
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}

	query, args, err := psqlbuilder.Select("professional_id", "service_id").
		From("professionals_services").
		Where(squirrel.Eq{"professional_id": ids}).
		OrderBy("professional_id ASC, service_id ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: attachServiceIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachServiceIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var professionalID, serviceID int64
		if err := rows.Scan(&professionalID, &serviceID); err != nil {
			return fmt.Errorf("%w: attachServiceIDs - scan link: %v", ErrScanRow, err)
		}
		if p, ok := byID[professionalID]; ok {
			p.ServiceIDs = append(p.ServiceIDs, serviceID)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachServiceIDs - rows error: %v", ErrScanRow, err)
	}

	return nil
}

func (r *Repository) scanProfessional(row *sql.Row, op string) (*domain.Professional, error) {
	var p domain.Professional
	var hoursRaw []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&p.ID,
		&p.NegocioID,
		&p.Name,
		&p.PhotoURL,
		&p.CommissionType,
		&p.CommissionValue,
		&p.BaseSalary,
		&hoursRaw,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrProfessionalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan professional: %v", ErrScanRow, op, err)
	}

	if err := decodeWorkingHours(&p, hoursRaw); err != nil {
		return nil, fmt.Errorf("%w: %s - decode working hours: %v", ErrScanRow, op, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

func (r *Repository) scanProfessionalRow(rows *sql.Rows) (*domain.Professional, error) {
	var p domain.Professional
	var hoursRaw []byte
	var createdAt, updatedAt sql.NullTime

	err := rows.Scan(
		&p.ID,
		&p.NegocioID,
		&p.Name,
		&p.PhotoURL,
		&p.CommissionType,
		&p.CommissionValue,
		&p.BaseSalary,
		&hoursRaw,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: ListByNegocio - scan row: %v", ErrScanRow, err)
	}

	if err := decodeWorkingHours(&p, hoursRaw); err != nil {
		return nil, fmt.Errorf("%w: ListByNegocio - decode working hours: %v", ErrScanRow, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

// decodeWorkingHours разбирает JSONB переопределение расписания
// NULL означает отсутствие переопределения - профессионал работает по часам негосио
func decodeWorkingHours(p *domain.Professional, raw []byte) error {
	if len(raw) == 0 {
		return nil
	}
	var hours domain.OperatingHours
	if err := json.Unmarshal(raw, &hours); err != nil {
		return err
	}
	p.WorkingHours = &hours
	return nil
}
