package models

import (
	"errors"
	"time"

	"github.com/agendavip/booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidPaymentMethod возвращается при некорректном способе оплаты
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// Request модели

// GetNegocioAppointmentsRequest запрос на получение записей негосио
type GetNegocioAppointmentsRequest struct {
	UserID          int64      `json:"userId"`
	NegocioID       int64      `json:"negocioId"`
	ProfessionalID  *int64     `json:"professionalId,omitempty"`  // Фильтр по профессионалу (опционально)
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые записи и неявки
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetNegocioAppointmentsRequest) ToDomainFilter() (domain.NegocioAppointmentsFilter, error) {
	filter := domain.NegocioAppointmentsFilter{
		NegocioID:       r.NegocioID,
		ProfessionalID:  r.ProfessionalID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainAppointmentStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	UserID int64 `json:"userId"`
}

// UpdateStatusRequest запрос на обновление статуса записи
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// ClosePaymentRequest запрос на закрытие оплаты записи
type ClosePaymentRequest struct {
	UserID        int64   `json:"userId"`
	Tip           float64 `json:"tip"`
	PaymentMethod string  `json:"paymentMethod"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID             int64  `json:"id"`
	NegocioID      int64  `json:"negocioId"`
	ClientID       int64  `json:"clientId"`
	ServiceID      int64  `json:"serviceId"`
	ProfessionalID int64  `json:"professionalId"`
	Date           string `json:"date"`      // "2026-08-27"
	StartTime      string `json:"startTime"` // "10:00"
	Status         string `json:"status"`
	PaymentStatus  string `json:"paymentStatus"`
	Tip            float64 `json:"tip"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:             a.ID,
		NegocioID:      a.NegocioID,
		ClientID:       a.ClientID,
		ServiceID:      a.ServiceID,
		ProfessionalID: a.ProfessionalID,
		Date:           a.Date.Format(domain.DateFormat),
		StartTime:      a.StartTime.String(),
		Status:         string(a.Status),
		PaymentStatus:  string(a.PaymentStatus),
		Tip:            a.Tip,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	if appointments == nil {
		return &AppointmentListResponse{
			Appointments: []AppointmentResponse{},
		}
	}

	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, len(appointments)),
	}

	for i, appointment := range appointments {
		if apptResp := FromDomainAppointment(appointment); apptResp != nil {
			resp.Appointments[i] = *apptResp
		}
	}

	return resp
}

// ToDomainAppointmentStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainAppointmentStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)

	validStatuses := []domain.AppointmentStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusInProgress,
		domain.StatusCompleted,
		domain.StatusCancelled,
		domain.StatusNoShow,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}

// ToDomainPaymentMethod конвертирует строку в domain.PaymentMethod с валидацией
func ToDomainPaymentMethod(method string) (domain.PaymentMethod, error) {
	m := domain.PaymentMethod(method)

	validMethods := []domain.PaymentMethod{
		domain.MethodCreditCard,
		domain.MethodDebitCard,
		domain.MethodCash,
		domain.MethodPix,
		domain.MethodOther,
	}

	for _, valid := range validMethods {
		if m == valid {
			return m, nil
		}
	}

	return "", ErrInvalidPaymentMethod
}
