package get_available_slots

import (
	"time"

	"github.com/agendavip/booking-service/internal/domain"
	getAvailableSlots "github.com/agendavip/booking-service/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string   `json:"date"`
	NegocioID       int64    `json:"negocioId"`
	ProfessionalID  int64    `json:"professionalId"`
	ServiceID       int64    `json:"serviceId"`
	DurationMinutes int      `json:"durationMinutes"`
	Slots           []string `json:"slots"` // времена начала "HH:MM" по возрастанию
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		NegocioID:       resp.NegocioID,
		ProfessionalID:  resp.ProfessionalID,
		ServiceID:       resp.ServiceID,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров URL и query
func ToUseCaseRequest(negocioID, professionalID, serviceID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		NegocioID:      negocioID,
		ProfessionalID: professionalID,
		ServiceID:      serviceID,
		Date:           date,
	}, nil
}
