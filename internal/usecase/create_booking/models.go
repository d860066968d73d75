package create_booking

import (
	"time"

	"github.com/agendavip/booking-service/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	NegocioID      int64            // ID негосио
	ProfessionalID int64            // ID профессионала
	ServiceID      int64            // ID услуги
	Date           time.Time        // Дата записи (без времени)
	StartTime      types.TimeString // Время начала "HH:MM"
	ClientName     string           // Имя клиента
	ClientPhone    string           // Телефон клиента в любом формате
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64
	NegocioID       int64
	ClientID        int64
	ServiceID       int64
	ProfessionalID  int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string
	PaymentStatus   string
	CreatedAt       time.Time
}
