package domain

import (
	"time"

	"github.com/agendavip/booking-service/pkg/types"
)

// AppointmentStatus статус записи
type AppointmentStatus string

const (
	StatusPending    AppointmentStatus = "pending"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
	StatusNoShow     AppointmentStatus = "no_show"
)

// PaymentStatus статус оплаты записи
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// Appointment запись клиента к профессионалу на услугу
type Appointment struct {
	ID             int64
	NegocioID      int64
	ClientID       int64
	ServiceID      int64
	ProfessionalID int64
	Date           time.Time        // дата записи (без времени)
	StartTime      types.TimeString // время начала "HH:MM"
	Status         AppointmentStatus
	PaymentStatus  PaymentStatus
	Tip            float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsActive возвращает true, если запись занимает слот в расписании
// Отменённые записи и неявки слоты не блокируют
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled && a.Status != StatusNoShow
}

// CanBeCancelled возвращает true, если запись можно отменить
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsPaid возвращает true, если запись оплачена
func (a *Appointment) IsPaid() bool {
	return a.PaymentStatus == PaymentPaid
}

// NegocioAppointmentsFilter фильтр для получения записей негосио
type NegocioAppointmentsFilter struct {
	NegocioID       int64              // Обязательный параметр
	ProfessionalID  *int64             // Фильтр по профессионалу (опционально)
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отменённые записи и неявки
}
