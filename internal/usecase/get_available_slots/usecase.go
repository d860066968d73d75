package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendavip/booking-service/internal/domain"
	negocioRepo "github.com/agendavip/booking-service/internal/infra/storage/negocio"
	professionalRepo "github.com/agendavip/booking-service/internal/infra/storage/professional"
	serviceRepo "github.com/agendavip/booking-service/internal/infra/storage/service"
	"github.com/agendavip/booking-service/pkg/types"
)

// UseCase use case для получения доступных слотов для записи
type UseCase struct {
	negocioRepo      NegocioRepository
	professionalRepo ProfessionalRepository
	serviceRepo      ServiceRepository
	appointmentRepo  AppointmentRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	negocioRepo NegocioRepository,
	professionalRepo ProfessionalRepository,
	serviceRepo ServiceRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		negocioRepo:      negocioRepo,
		professionalRepo: professionalRepo,
		serviceRepo:      serviceRepo,
		appointmentRepo:  appointmentRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: negocio=%d, professional=%d, service=%d, date=%s",
		req.NegocioID, req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем негосио
	negocio, err := uc.negocioRepo.GetByID(ctx, req.NegocioID)
	if err != nil {
		if errors.Is(err, negocioRepo.ErrNegocioNotFound) {
			uc.logger.Warn("GetAvailableSlots: negocio id=%d not found", req.NegocioID)
			return nil, ErrNegocioNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get negocio id=%d: %v", req.NegocioID, err)
		return nil, fmt.Errorf("%w: failed to get negocio: %v", ErrInternal, err)
	}

	// 4. Получаем профессионала и проверяем принадлежность негосио
	professional, err := uc.professionalRepo.GetByID(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("GetAvailableSlots: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	if professional.NegocioID != req.NegocioID {
		uc.logger.Warn("GetAvailableSlots: professional id=%d does not belong to negocio id=%d",
			req.ProfessionalID, req.NegocioID)
		return nil, ErrProfessionalNotFound
	}

	// 5. Получаем услугу и проверяем принадлежность негосио
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if service.NegocioID != req.NegocioID {
		uc.logger.Warn("GetAvailableSlots: service id=%d does not belong to negocio id=%d",
			req.ServiceID, req.NegocioID)
		return nil, ErrServiceNotFound
	}

	// Дальше движок работает по принципу fail-closed: любая проблема с данными
	// дает пустой список слотов, а не ошибку

	// 6. Услуга без корректной длительности не может быть забронирована
	if !service.IsBookable() {
		uc.logger.Info("GetAvailableSlots: service id=%d has no valid duration", req.ServiceID)
		return uc.emptyResponse(req, service.DurationMinutes), nil
	}

	// 7. Профессионал должен выполнять запрошенную услугу
	if !professional.PerformsService(req.ServiceID) {
		uc.logger.Info("GetAvailableSlots: professional id=%d does not perform service id=%d",
			req.ProfessionalID, req.ServiceID)
		return uc.emptyResponse(req, service.DurationMinutes), nil
	}

	// 8. Даты в прошлом слотов не имеют
	if isDateInPast(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return uc.emptyResponse(req, service.DurationMinutes), nil
	}

	// 9. Вычисляем эффективное рабочее окно дня:
	// пересечение часов негосио и переопределения профессионала
	weekday := req.Date.Weekday()
	window, ok := effectiveWindow(negocio.HoursFor(weekday), professional.HoursFor(weekday))
	if !ok {
		uc.logger.Info("GetAvailableSlots: no working window for negocio=%d, professional=%d on %s",
			req.NegocioID, req.ProfessionalID, req.Date.Format(domain.DateFormat))
		return uc.emptyResponse(req, service.DurationMinutes), nil
	}

	// 10. Генерируем кандидатов с шагом 15 минут
	candidates := generateCandidateSlots(window, service.DurationMinutes)

	// 11. Получаем активные записи профессионала на эту дату
	appointments, err := uc.appointmentRepo.ListForProfessionalOnDate(ctx, req.ProfessionalID, req.Date, false)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 12. Длительности услуг негосио: каждая запись блокирует интервал своей услуги
	services, err := uc.serviceRepo.ListByNegocio(ctx, req.NegocioID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
	}

	serviceDurations := make(map[int64]int, len(services))
	for _, s := range services {
		serviceDurations[s.ID] = s.DurationMinutes
	}

	// 13. Убираем кандидатов, пересекающихся с существующими записями
	busy := buildBusyIntervals(appointments, serviceDurations)
	available := filterAvailableSlots(candidates, service.DurationMinutes, busy)

	// 14. Для сегодняшней даты убираем уже прошедшие слоты
	if isSameDay(req.Date, now) {
		available = applySameDayCutoff(available, now)
	}

	slots := toTimeStrings(available)

	uc.logger.Info("GetAvailableSlots: %d slots for negocio=%d, professional=%d, service=%d, date=%s",
		len(slots), req.NegocioID, req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		NegocioID:       req.NegocioID,
		ProfessionalID:  req.ProfessionalID,
		ServiceID:       req.ServiceID,
		DurationMinutes: service.DurationMinutes,
		Slots:           slots,
	}, nil
}

func (uc *UseCase) emptyResponse(req *Request, durationMinutes int) *Response {
	return &Response{
		Date:            req.Date,
		NegocioID:       req.NegocioID,
		ProfessionalID:  req.ProfessionalID,
		ServiceID:       req.ServiceID,
		DurationMinutes: durationMinutes,
		Slots:           []types.TimeString{},
	}
}
