package get_available_slots

import (
	"time"

	"github.com/agendavip/booking-service/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	NegocioID      int64     // ID негосио
	ProfessionalID int64     // ID профессионала
	ServiceID      int64     // ID услуги
	Date           time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time          // Дата, на которую запрашивались слоты
	NegocioID       int64              // ID негосио
	ProfessionalID  int64              // ID профессионала
	ServiceID       int64              // ID услуги
	DurationMinutes int                // Длительность услуги в минутах
	Slots           []types.TimeString // Времена начала свободных слотов, по возрастанию
}
