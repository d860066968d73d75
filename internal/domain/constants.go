package domain

// Slot generation constants
const (
	// SlotStepMinutes шаг генерации слотов
	// Слоты всегда генерируются с шагом 15 минут независимо от длительности услуги
	SlotStepMinutes = 15
)

// Business validation constants
const (
	MinPhoneDigits = 10
	MaxPhoneDigits = 11
	MaxNameLength  = 150
)

// DateFormat формат дат в API и логах (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// InactiveStatuses список статусов записей, не блокирующих слоты
// Используется для фильтрации при расчёте доступности
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusNoShow,
}
