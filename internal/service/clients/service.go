package clients

import (
	"context"
	"errors"
	"fmt"

	negocioRepo "github.com/agendavip/booking-service/internal/infra/storage/negocio"
	"github.com/agendavip/booking-service/internal/service/clients/models"
)

// Service сервис для работы с базой клиентов негосио
type Service struct {
	clientRepo  ClientRepository
	negocioRepo NegocioRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(
	clientRepo ClientRepository,
	negocioRepo NegocioRepository,
	logger Logger,
) *Service {
	return &Service{
		clientRepo:  clientRepo,
		negocioRepo: negocioRepo,
		logger:      logger,
	}
}

// ListByNegocio получает клиентов негосио
// Доступно только владельцу
func (s *Service) ListByNegocio(ctx context.Context, negocioID int64, userID int64) (*models.ClientListResponse, error) {
	s.logger.Info("ListByNegocio: fetching clients for negocio=%d, user=%d", negocioID, userID)

	negocio, err := s.negocioRepo.GetByID(ctx, negocioID)
	if err != nil {
		if errors.Is(err, negocioRepo.ErrNegocioNotFound) {
			s.logger.Warn("ListByNegocio: negocio id=%d not found", negocioID)
			return nil, ErrNegocioNotFound
		}
		s.logger.Error("ListByNegocio: failed to get negocio id=%d: %v", negocioID, err)
		return nil, fmt.Errorf("%w: ListByNegocio - failed to get negocio: %v", ErrInternal, err)
	}

	if negocio.OwnerID != userID {
		s.logger.Warn("ListByNegocio: user=%d is not the owner of negocio=%d", userID, negocioID)
		return nil, ErrAccessDenied
	}

	clients, err := s.clientRepo.ListByNegocio(ctx, negocioID)
	if err != nil {
		s.logger.Error("ListByNegocio: repository error for negocio=%d: %v", negocioID, err)
		return nil, fmt.Errorf("%w: ListByNegocio - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByNegocio: successfully fetched %d clients for negocio=%d", len(clients), negocioID)
	return models.FromDomainClientList(clients), nil
}
