package negocios

import (
	"context"
	"errors"
	"fmt"

	negocioRepo "github.com/agendavip/booking-service/internal/infra/storage/negocio"
	"github.com/agendavip/booking-service/internal/service/negocios/models"
)

// Service сервис для работы с публичным профилем и расписанием негосио
type Service struct {
	negocioRepo      NegocioRepository
	serviceRepo      ServiceRepository
	professionalRepo ProfessionalRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса негосио
func NewService(
	negocioRepo NegocioRepository,
	serviceRepo ServiceRepository,
	professionalRepo ProfessionalRepository,
	logger Logger,
) *Service {
	return &Service{
		negocioRepo:      negocioRepo,
		serviceRepo:      serviceRepo,
		professionalRepo: professionalRepo,
		logger:           logger,
	}
}

// GetBySlug возвращает публичный профиль негосио для страницы бронирования:
// профиль, каталог услуг и список профессионалов
// Публичный эндпоинт, авторизация не требуется
func (s *Service) GetBySlug(ctx context.Context, slug string) (*models.NegocioResponse, error) {
	s.logger.Info("GetBySlug: fetching negocio slug=%s", slug)

	if slug == "" {
		return nil, fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}

	negocio, err := s.negocioRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, negocioRepo.ErrNegocioNotFound) {
			s.logger.Warn("GetBySlug: negocio slug=%s not found", slug)
			return nil, ErrNegocioNotFound
		}
		s.logger.Error("GetBySlug: repository error for slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: GetBySlug - repository error: %v", ErrInternal, err)
	}

	services, err := s.serviceRepo.ListByNegocio(ctx, negocio.ID)
	if err != nil {
		s.logger.Error("GetBySlug: failed to list services for negocio=%d: %v", negocio.ID, err)
		return nil, fmt.Errorf("%w: GetBySlug - failed to list services: %v", ErrInternal, err)
	}

	professionals, err := s.professionalRepo.ListByNegocio(ctx, negocio.ID)
	if err != nil {
		s.logger.Error("GetBySlug: failed to list professionals for negocio=%d: %v", negocio.ID, err)
		return nil, fmt.Errorf("%w: GetBySlug - failed to list professionals: %v", ErrInternal, err)
	}

	s.logger.Info("GetBySlug: successfully fetched negocio id=%d with %d services, %d professionals",
		negocio.ID, len(services), len(professionals))
	return models.FromDomainNegocio(negocio, services, professionals), nil
}

// UpdateOperatingHours обновляет расписание работы негосио
// Доступно только владельцу
func (s *Service) UpdateOperatingHours(ctx context.Context, negocioID int64, req *models.UpdateOperatingHoursRequest) error {
	s.logger.Info("UpdateOperatingHours: updating hours for negocio=%d by user=%d", negocioID, req.UserID)

	negocio, err := s.negocioRepo.GetByID(ctx, negocioID)
	if err != nil {
		if errors.Is(err, negocioRepo.ErrNegocioNotFound) {
			s.logger.Warn("UpdateOperatingHours: negocio id=%d not found", negocioID)
			return ErrNegocioNotFound
		}
		s.logger.Error("UpdateOperatingHours: repository error for negocio id=%d: %v", negocioID, err)
		return fmt.Errorf("%w: UpdateOperatingHours - repository error: %v", ErrInternal, err)
	}

	if negocio.OwnerID != req.UserID {
		s.logger.Warn("UpdateOperatingHours: user=%d is not the owner of negocio=%d", req.UserID, negocioID)
		return ErrAccessDenied
	}

	hours, err := req.ToDomainHours()
	if err != nil {
		s.logger.Warn("UpdateOperatingHours: invalid hours for negocio=%d: %v", negocioID, err)
		return fmt.Errorf("%w: %v", ErrInvalidHours, err)
	}

	if err := s.negocioRepo.UpdateOperatingHours(ctx, negocioID, hours); err != nil {
		if errors.Is(err, negocioRepo.ErrNegocioNotFound) {
			s.logger.Warn("UpdateOperatingHours: negocio id=%d not found during update", negocioID)
			return ErrNegocioNotFound
		}
		s.logger.Error("UpdateOperatingHours: repository error for negocio id=%d: %v", negocioID, err)
		return fmt.Errorf("%w: UpdateOperatingHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateOperatingHours: successfully updated hours for negocio=%d", negocioID)
	return nil
}
