package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/agendavip/booking-service/internal/domain"
	appointmentRepo "github.com/agendavip/booking-service/internal/infra/storage/appointment"
	clientRepo "github.com/agendavip/booking-service/internal/infra/storage/client"
	negocioRepo "github.com/agendavip/booking-service/internal/infra/storage/negocio"
	professionalRepo "github.com/agendavip/booking-service/internal/infra/storage/professional"
	serviceRepo "github.com/agendavip/booking-service/internal/infra/storage/service"
	"github.com/agendavip/booking-service/pkg/ptr"
)

// UseCase use case для создания записи с публичной страницы бронирования
type UseCase struct {
	negocioRepo      NegocioRepository
	professionalRepo ProfessionalRepository
	serviceRepo      ServiceRepository
	clientRepo       ClientRepository
	appointmentRepo  AppointmentRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	negocioRepo NegocioRepository,
	professionalRepo ProfessionalRepository,
	serviceRepo ServiceRepository,
	clientRepo ClientRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		negocioRepo:      negocioRepo,
		professionalRepo: professionalRepo,
		serviceRepo:      serviceRepo,
		clientRepo:       clientRepo,
		appointmentRepo:  appointmentRepo,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// проверка доступности слота и вставка выполняются атомарно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: negocio=%d, professional=%d, service=%d, date=%s, time=%s",
		req.NegocioID, req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем телефон клиента
	phone, err := normalizePhone(req.ClientPhone)
	if err != nil {
		uc.logger.Warn("CreateBooking: phone normalization failed: %v", err)
		return nil, err
	}

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	// 4. Получаем негосио
	negocio, err := uc.negocioRepo.GetByID(ctx, req.NegocioID)
	if err != nil {
		if errors.Is(err, negocioRepo.ErrNegocioNotFound) {
			uc.logger.Warn("CreateBooking: negocio id=%d not found", req.NegocioID)
			return nil, ErrNegocioNotFound
		}
		uc.logger.Error("CreateBooking: failed to get negocio id=%d: %v", req.NegocioID, err)
		return nil, fmt.Errorf("%w: failed to get negocio: %v", ErrInternal, err)
	}

	// 5. Получаем профессионала и проверяем принадлежность негосио
	professional, err := uc.professionalRepo.GetByID(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("CreateBooking: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("CreateBooking: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	if professional.NegocioID != req.NegocioID {
		uc.logger.Warn("CreateBooking: professional id=%d does not belong to negocio id=%d",
			req.ProfessionalID, req.NegocioID)
		return nil, ErrProfessionalNotFound
	}

	// 6. Получаем услугу и проверяем принадлежность негосио
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if service.NegocioID != req.NegocioID {
		uc.logger.Warn("CreateBooking: service id=%d does not belong to negocio id=%d",
			req.ServiceID, req.NegocioID)
		return nil, ErrServiceNotFound
	}

	if !service.IsBookable() {
		uc.logger.Warn("CreateBooking: service id=%d has no valid duration", req.ServiceID)
		return nil, ErrServiceNotBookable
	}

	// 7. Проверяем, что профессионал выполняет услугу
	if !professional.PerformsService(req.ServiceID) {
		uc.logger.Warn("CreateBooking: professional id=%d does not perform service id=%d",
			req.ProfessionalID, req.ServiceID)
		return nil, ErrServiceNotPerformed
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 8. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Находим или создаем клиента по нормализованному телефону
		client, err := uc.findOrCreateClient(txCtx, req.NegocioID, strings.TrimSpace(req.ClientName), phone)
		if err != nil {
			return err
		}

		// 8.2. Получаем активные записи профессионала на эту дату с блокировкой (FOR UPDATE)
		appointments, err := uc.appointmentRepo.ListForProfessionalOnDate(txCtx, req.ProfessionalID, req.Date, false)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 8.3. Длительности услуг негосио для расчёта занятых интервалов
		services, err := uc.serviceRepo.ListByNegocio(txCtx, req.NegocioID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list services: %v", err)
			return fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
		}

		serviceDurations := make(map[int64]int, len(services))
		for _, s := range services {
			serviceDurations[s.ID] = s.DurationMinutes
		}

		// 8.4. Повторно проверяем доступность слота на актуальных данных
		if !isStartTimeAvailable(req.StartTime, negocio, professional, service.DurationMinutes,
			req.Date, now, appointments, serviceDurations) {
			uc.logger.Warn("CreateBooking: slot %s on %s is not available for professional id=%d",
				req.StartTime, req.Date.Format(domain.DateFormat), req.ProfessionalID)
			return ErrSlotNotAvailable
		}

		// 8.5. Создаем запись
		appointment := &domain.Appointment{
			NegocioID:      req.NegocioID,
			ClientID:       client.ID,
			ServiceID:      req.ServiceID,
			ProfessionalID: req.ProfessionalID,
			Date:           req.Date,
			StartTime:      req.StartTime,
			Status:         domain.StatusConfirmed,
			PaymentStatus:  domain.PaymentPending,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			// Уникальный индекс на слот - последний рубеж против двойного бронирования
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot %s on %s already taken", req.StartTime, req.Date.Format(domain.DateFormat))
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		NegocioID:       result.NegocioID,
		ClientID:        result.ClientID,
		ServiceID:       result.ServiceID,
		ProfessionalID:  result.ProfessionalID,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: service.DurationMinutes,
		Status:          string(result.Status),
		PaymentStatus:   string(result.PaymentStatus),
		CreatedAt:       result.CreatedAt,
	}, nil
}

// findOrCreateClient находит клиента по телефону или создает нового
// Телефон уникален в рамках негосио, повторная запись с того же номера
// присоединяется к существующему клиенту
func (uc *UseCase) findOrCreateClient(ctx context.Context, negocioID int64, name, phone string) (*domain.Client, error) {
	client, err := uc.clientRepo.GetByPhone(ctx, negocioID, phone)
	if err == nil {
		uc.logger.Info("CreateBooking: found existing client id=%d by phone", client.ID)
		return client, nil
	}

	if !errors.Is(err, clientRepo.ErrClientNotFound) {
		uc.logger.Error("CreateBooking: failed to get client by phone: %v", err)
		return nil, fmt.Errorf("%w: failed to get client by phone: %v", ErrInternal, err)
	}

	created, err := uc.clientRepo.Create(ctx, &domain.Client{
		NegocioID: negocioID,
		Name:      ptr.Ptr(name),
		Phone:     phone,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create client: %v", err)
		return nil, fmt.Errorf("%w: failed to create client: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: created new client id=%d", created.ID)
	return created, nil
}
