package domain

import "time"

// Client клиент негосио
// Phone хранится нормализованным (только цифры) и уникален в рамках негосио
type Client struct {
	ID        int64
	NegocioID int64
	Name      *string
	Phone     string
	Email     *string
	Notes     *string
	BirthDate *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
