package domain

import "time"

// Service услуга негосио (стрижка, окрашивание и т.д.)
type Service struct {
	ID              int64
	NegocioID       int64
	Name            *string
	DurationMinutes int // длительность в минутах, должна быть > 0 для бронирования
	Price           *float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsBookable возвращает true, если услугу можно бронировать
// Услуга без корректной длительности не участвует в расчёте слотов
func (s *Service) IsBookable() bool {
	return s.DurationMinutes > 0
}
