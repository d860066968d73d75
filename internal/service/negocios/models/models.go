package models

import (
	"errors"
	"fmt"

	"github.com/agendavip/booking-service/internal/domain"
	"github.com/agendavip/booking-service/pkg/types"
)

var (
	// ErrInvalidDayHours возвращается при некорректных часах работы дня
	ErrInvalidDayHours = errors.New("invalid day hours")
)

// Request модели

// DayHoursPayload часы работы на один день недели
type DayHoursPayload struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// OperatingHoursPayload расписание работы по дням недели
type OperatingHoursPayload struct {
	Monday    DayHoursPayload `json:"monday"`
	Tuesday   DayHoursPayload `json:"tuesday"`
	Wednesday DayHoursPayload `json:"wednesday"`
	Thursday  DayHoursPayload `json:"thursday"`
	Friday    DayHoursPayload `json:"friday"`
	Saturday  DayHoursPayload `json:"saturday"`
	Sunday    DayHoursPayload `json:"sunday"`
}

// UpdateOperatingHoursRequest запрос на обновление расписания негосио
type UpdateOperatingHoursRequest struct {
	UserID int64                 `json:"userId"`
	Hours  OperatingHoursPayload `json:"hours"`
}

// ToDomainHours конвертирует payload в domain модель с валидацией
// У открытого дня open и close должны быть корректными "HH:MM" и open < close
func (r *UpdateOperatingHoursRequest) ToDomainHours() (*domain.OperatingHours, error) {
	hours := &domain.OperatingHours{}

	days := []struct {
		name    string
		payload DayHoursPayload
		target  *domain.DayHours
	}{
		{"monday", r.Hours.Monday, &hours.Monday},
		{"tuesday", r.Hours.Tuesday, &hours.Tuesday},
		{"wednesday", r.Hours.Wednesday, &hours.Wednesday},
		{"thursday", r.Hours.Thursday, &hours.Thursday},
		{"friday", r.Hours.Friday, &hours.Friday},
		{"saturday", r.Hours.Saturday, &hours.Saturday},
		{"sunday", r.Hours.Sunday, &hours.Sunday},
	}

	for _, day := range days {
		converted, err := toDomainDayHours(day.payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidDayHours, day.name)
		}
		*day.target = converted
	}

	return hours, nil
}

func toDomainDayHours(p DayHoursPayload) (domain.DayHours, error) {
	if p.Closed {
		return domain.DayHours{Closed: true}, nil
	}

	open, err := types.NewTimeStringFromString(p.Open)
	if err != nil {
		return domain.DayHours{}, err
	}

	close, err := types.NewTimeStringFromString(p.Close)
	if err != nil {
		return domain.DayHours{}, err
	}

	if !open.IsBefore(close) {
		return domain.DayHours{}, ErrInvalidDayHours
	}

	return domain.DayHours{Open: open.String(), Close: close.String()}, nil
}

// Response модели

// ServiceResponse услуга в публичном каталоге
type ServiceResponse struct {
	ID              int64    `json:"id"`
	Name            *string  `json:"name,omitempty"`
	DurationMinutes int      `json:"durationMinutes"`
	Price           *float64 `json:"price,omitempty"`
}

// ProfessionalResponse профессионал в публичном каталоге
type ProfessionalResponse struct {
	ID         int64   `json:"id"`
	Name       *string `json:"name,omitempty"`
	PhotoURL   *string `json:"photoUrl,omitempty"`
	ServiceIDs []int64 `json:"serviceIds"`
}

// NegocioResponse публичный профиль негосио со страницей бронирования
type NegocioResponse struct {
	ID             int64                  `json:"id"`
	Name           string                 `json:"name"`
	Slug           string                 `json:"slug"`
	LogoURL        *string                `json:"logoUrl,omitempty"`
	Address        *string                `json:"address,omitempty"`
	Phone          *string                `json:"phone,omitempty"`
	Description    *string                `json:"description,omitempty"`
	OperatingHours *OperatingHoursPayload `json:"operatingHours,omitempty"`
	Services       []ServiceResponse      `json:"services"`
	Professionals  []ProfessionalResponse `json:"professionals"`
}

// FromDomainNegocio собирает публичный профиль из domain моделей
func FromDomainNegocio(n *domain.Negocio, services []*domain.Service, professionals []*domain.Professional) *NegocioResponse {
	resp := &NegocioResponse{
		ID:            n.ID,
		Name:          n.Name,
		Slug:          n.Slug,
		LogoURL:       n.LogoURL,
		Address:       n.Address,
		Phone:         n.Phone,
		Description:   n.Description,
		Services:      make([]ServiceResponse, 0, len(services)),
		Professionals: make([]ProfessionalResponse, 0, len(professionals)),
	}

	if n.OperatingHours != nil {
		resp.OperatingHours = fromDomainHours(n.OperatingHours)
	}

	for _, svc := range services {
		// Услуги без корректной длительности в каталог не попадают
		if !svc.IsBookable() {
			continue
		}
		resp.Services = append(resp.Services, ServiceResponse{
			ID:              svc.ID,
			Name:            svc.Name,
			DurationMinutes: svc.DurationMinutes,
			Price:           svc.Price,
		})
	}

	for _, prof := range professionals {
		serviceIDs := prof.ServiceIDs
		if serviceIDs == nil {
			serviceIDs = []int64{}
		}
		resp.Professionals = append(resp.Professionals, ProfessionalResponse{
			ID:         prof.ID,
			Name:       prof.Name,
			PhotoURL:   prof.PhotoURL,
			ServiceIDs: serviceIDs,
		})
	}

	return resp
}

func fromDomainHours(h *domain.OperatingHours) *OperatingHoursPayload {
	return &OperatingHoursPayload{
		Monday:    fromDomainDayHours(h.Monday),
		Tuesday:   fromDomainDayHours(h.Tuesday),
		Wednesday: fromDomainDayHours(h.Wednesday),
		Thursday:  fromDomainDayHours(h.Thursday),
		Friday:    fromDomainDayHours(h.Friday),
		Saturday:  fromDomainDayHours(h.Saturday),
		Sunday:    fromDomainDayHours(h.Sunday),
	}
}

func fromDomainDayHours(d domain.DayHours) DayHoursPayload {
	return DayHoursPayload{
		Open:   d.Open,
		Close:  d.Close,
		Closed: d.Closed,
	}
}
