package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendavip/booking-service/internal/domain"
	appointmentRepo "github.com/agendavip/booking-service/internal/infra/storage/appointment"
	negocioRepo "github.com/agendavip/booking-service/internal/infra/storage/negocio"
	"github.com/agendavip/booking-service/internal/service/appointments/models"
	"github.com/agendavip/booking-service/pkg/ptr"
)

// Service сервис для работы с записями из кабинета владельца
type Service struct {
	appointmentRepo AppointmentRepository
	negocioRepo     NegocioRepository
	serviceRepo     ServiceRepository
	transactionRepo TransactionRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	negocioRepo NegocioRepository,
	serviceRepo ServiceRepository,
	transactionRepo TransactionRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		negocioRepo:     negocioRepo,
		serviceRepo:     serviceRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID получает запись по ID
// Доступно только владельцу негосио
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, userID)

	appointment, err := s.getAppointment(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	if err := s.checkOwnerAccess(ctx, appointment.NegocioID, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to appointment id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appointment), nil
}

// ListByNegocio получает записи негосио с гибкой фильтрацией
// Поддерживает фильтрацию по профессионалу, периоду, статусу и включению неактивных записей
// Доступно только владельцу негосио
func (s *Service) ListByNegocio(ctx context.Context, req *models.GetNegocioAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListByNegocio: fetching appointments for negocio=%d, user=%d", req.NegocioID, req.UserID)

	if err := s.checkOwnerAccess(ctx, req.NegocioID, req.UserID); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListByNegocio: invalid filter for negocio=%d: %v", req.NegocioID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.ListByNegocioWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListByNegocio: repository error for negocio=%d: %v", req.NegocioID, err)
		return nil, fmt.Errorf("%w: ListByNegocio - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByNegocio: successfully fetched %d appointments for negocio=%d", len(appointments), req.NegocioID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись
// Доступно только владельцу негосио, отменить можно только записи
// в статусах pending и confirmed
func (s *Service) Cancel(ctx context.Context, appointmentID int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d by user=%d", appointmentID, req.UserID)

	appointment, err := s.getAppointment(ctx, appointmentID, "Cancel")
	if err != nil {
		return err
	}

	if err := s.checkOwnerAccess(ctx, appointment.NegocioID, req.UserID); err != nil {
		s.logger.Warn("Cancel: access denied for user=%d to appointment id=%d", req.UserID, appointmentID)
		return err
	}

	if !appointment.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", appointmentID, appointment.Status)
		return ErrCannotCancel
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, domain.StatusCancelled); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found during cancellation", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", appointmentID)
	return nil
}

// UpdateStatus обновляет статус записи
// Доступно только владельцу негосио
func (s *Service) UpdateStatus(ctx context.Context, appointmentID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s by user=%d",
		appointmentID, req.Status, req.UserID)

	appointment, err := s.getAppointment(ctx, appointmentID, "UpdateStatus")
	if err != nil {
		return err
	}

	if err := s.checkOwnerAccess(ctx, appointment.NegocioID, req.UserID); err != nil {
		return err
	}

	newStatus, err := models.ToDomainAppointmentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, appointmentID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, newStatus); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found during update", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%d to status=%s", appointmentID, newStatus)
	return nil
}

// ClosePayment закрывает оплату записи: помечает её оплаченной, фиксирует
// чаевые и создает финансовую операцию revenue с привязкой к записи
// Обе операции выполняются атомарно в одной транзакции
func (s *Service) ClosePayment(ctx context.Context, appointmentID int64, req *models.ClosePaymentRequest) error {
	s.logger.Info("ClosePayment: closing payment for appointment id=%d by user=%d", appointmentID, req.UserID)

	appointment, err := s.getAppointment(ctx, appointmentID, "ClosePayment")
	if err != nil {
		return err
	}

	if err := s.checkOwnerAccess(ctx, appointment.NegocioID, req.UserID); err != nil {
		return err
	}

	if appointment.IsPaid() {
		s.logger.Warn("ClosePayment: appointment id=%d is already paid", appointmentID)
		return ErrAlreadyPaid
	}

	if req.Tip < 0 {
		s.logger.Warn("ClosePayment: negative tip for appointment id=%d", appointmentID)
		return fmt.Errorf("%w: tip must not be negative", ErrInvalidInput)
	}

	method, err := models.ToDomainPaymentMethod(req.PaymentMethod)
	if err != nil {
		s.logger.Warn("ClosePayment: invalid payment method=%s for appointment id=%d", req.PaymentMethod, appointmentID)
		return fmt.Errorf("%w: invalid payment method", ErrInvalidInput)
	}

	// Цена услуги на момент закрытия оплаты
	var price float64
	var description string
	service, err := s.serviceRepo.GetByID(ctx, appointment.ServiceID)
	if err != nil {
		s.logger.Warn("ClosePayment: failed to get service id=%d: %v", appointment.ServiceID, err)
	} else {
		if service.Price != nil {
			price = *service.Price
		}
		if service.Name != nil {
			description = *service.Name
		}
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.appointmentRepo.ClosePayment(txCtx, appointmentID, req.Tip); err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: ClosePayment - repository error: %v", ErrInternal, err)
		}

		transaction := &domain.Transaction{
			NegocioID:      appointment.NegocioID,
			Type:           domain.TransactionRevenue,
			Amount:         price + req.Tip,
			Description:    description,
			Date:           appointment.Date,
			SourceType:     ptr.Ptr(domain.SourceAppointment),
			SourceID:       ptr.Ptr(appointment.ID),
			ClientID:       ptr.Ptr(appointment.ClientID),
			ProfessionalID: ptr.Ptr(appointment.ProfessionalID),
			ServiceID:      ptr.Ptr(appointment.ServiceID),
			PaymentMethod:  ptr.Ptr(method),
		}

		if _, err := s.transactionRepo.Create(txCtx, transaction); err != nil {
			return fmt.Errorf("%w: ClosePayment - failed to create transaction: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		s.logger.Error("ClosePayment: failed for appointment id=%d: %v", appointmentID, err)
		return err
	}

	s.logger.Info("ClosePayment: successfully closed payment for appointment id=%d, amount=%.2f",
		appointmentID, price+req.Tip)
	return nil
}

// Вспомогательные методы

func (s *Service) getAppointment(ctx context.Context, id int64, op string) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return appointment, nil
}

// checkOwnerAccess проверяет, что пользователь является владельцем негосио
func (s *Service) checkOwnerAccess(ctx context.Context, negocioID int64, userID int64) error {
	negocio, err := s.negocioRepo.GetByID(ctx, negocioID)
	if err != nil {
		if errors.Is(err, negocioRepo.ErrNegocioNotFound) {
			s.logger.Warn("checkOwnerAccess: negocio id=%d not found", negocioID)
			return ErrNegocioNotFound
		}
		s.logger.Error("checkOwnerAccess: failed to get negocio id=%d: %v", negocioID, err)
		return fmt.Errorf("%w: checkOwnerAccess - failed to get negocio: %v", ErrInternal, err)
	}

	if negocio.OwnerID != userID {
		s.logger.Warn("checkOwnerAccess: user=%d is not the owner of negocio=%d", userID, negocioID)
		return ErrAccessDenied
	}

	return nil
}
