package create_booking

import (
	"time"

	"github.com/agendavip/booking-service/internal/domain"
	createBooking "github.com/agendavip/booking-service/internal/usecase/create_booking"
	"github.com/agendavip/booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ProfessionalID int64  `json:"professionalId"`
	ServiceID      int64  `json:"serviceId"`
	Date           string `json:"date"`      // "2026-08-27"
	StartTime      string `json:"startTime"` // "10:00"
	ClientName     string `json:"clientName"`
	ClientPhone    string `json:"clientPhone"` // в любом формате, нормализуется сервером
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64  `json:"id"`
	NegocioID       int64  `json:"negocioId"`
	ClientID        int64  `json:"clientId"`
	ServiceID       int64  `json:"serviceId"`
	ProfessionalID  int64  `json:"professionalId"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
	PaymentStatus   string `json:"paymentStatus"`
	CreatedAt       string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(negocioID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		NegocioID:      negocioID,
		ProfessionalID: r.ProfessionalID,
		ServiceID:      r.ServiceID,
		Date:           date,
		StartTime:      startTime,
		ClientName:     r.ClientName,
		ClientPhone:    r.ClientPhone,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		NegocioID:       resp.NegocioID,
		ClientID:        resp.ClientID,
		ServiceID:       resp.ServiceID,
		ProfessionalID:  resp.ProfessionalID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		PaymentStatus:   resp.PaymentStatus,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
