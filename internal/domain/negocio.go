package domain

import "time"

// NegocioPlan тарифный план негосио
type NegocioPlan string

const (
	PlanBasic   NegocioPlan = "basic"
	PlanPremium NegocioPlan = "premium"
)

// NegocioStatus статус негосио на платформе
type NegocioStatus string

const (
	NegocioActive   NegocioStatus = "active"
	NegocioInactive NegocioStatus = "inactive"
)

// DayHours рабочие часы на один день недели
// Если Closed = true, поля Open/Close не имеют значения и игнорируются
type DayHours struct {
	Open   string `json:"open"`  // "HH:MM"
	Close  string `json:"close"` // "HH:MM"
	Closed bool   `json:"closed"`
}

// OperatingHours расписание работы по дням недели (7 фиксированных ключей)
// Используется и для негосио, и для переопределения у профессионала
type OperatingHours struct {
	Monday    DayHours `json:"monday"`
	Tuesday   DayHours `json:"tuesday"`
	Wednesday DayHours `json:"wednesday"`
	Thursday  DayHours `json:"thursday"`
	Friday    DayHours `json:"friday"`
	Saturday  DayHours `json:"saturday"`
	Sunday    DayHours `json:"sunday"`
}

// DayFor возвращает рабочие часы на указанный день недели
func (h *OperatingHours) DayFor(weekday time.Weekday) DayHours {
	switch weekday {
	case time.Monday:
		return h.Monday
	case time.Tuesday:
		return h.Tuesday
	case time.Wednesday:
		return h.Wednesday
	case time.Thursday:
		return h.Thursday
	case time.Friday:
		return h.Friday
	case time.Saturday:
		return h.Saturday
	case time.Sunday:
		return h.Sunday
	default:
		return DayHours{Closed: true}
	}
}

// Negocio бизнес-арендатор платформы (барбершоп, салон)
// Владеет своими услугами, профессионалами, клиентами и расписанием
type Negocio struct {
	ID             int64
	OwnerID        int64
	Name           string
	Slug           string
	LogoURL        *string
	Address        *string
	Phone          *string
	Description    *string
	OperatingHours *OperatingHours // nil = расписание не настроено, все дни закрыты
	Plan           NegocioPlan
	Status         NegocioStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HoursFor возвращает рабочие часы негосио на день недели
// Если расписание не настроено, день считается закрытым
func (n *Negocio) HoursFor(weekday time.Weekday) DayHours {
	if n.OperatingHours == nil {
		return DayHours{Closed: true}
	}
	return n.OperatingHours.DayFor(weekday)
}
