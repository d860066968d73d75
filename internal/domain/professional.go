package domain

import "time"

// CommissionType тип комиссии профессионала
type CommissionType string

const (
	CommissionPercentage CommissionType = "percentage"
	CommissionFixed      CommissionType = "fixed"
)

// Professional профессионал (мастер) негосио
// ServiceIDs - связь many-to-many через таблицу professionals_services
// WorkingHours - опциональное переопределение расписания негосио (nil = без переопределения)
type Professional struct {
	ID              int64
	NegocioID       int64
	Name            *string
	PhotoURL        *string
	ServiceIDs      []int64
	CommissionType  CommissionType
	CommissionValue *float64
	BaseSalary      *float64
	WorkingHours    *OperatingHours
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PerformsService возвращает true, если профессионал выполняет услугу
func (p *Professional) PerformsService(serviceID int64) bool {
	for _, id := range p.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}

// HoursFor возвращает переопределение рабочих часов на день недели
// Возвращает nil, если у профессионала нет собственного расписания
func (p *Professional) HoursFor(weekday time.Weekday) *DayHours {
	if p.WorkingHours == nil {
		return nil
	}
	day := p.WorkingHours.DayFor(weekday)
	return &day
}
