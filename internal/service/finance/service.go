package finance

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendavip/booking-service/internal/domain"
	negocioRepo "github.com/agendavip/booking-service/internal/infra/storage/negocio"
	"github.com/agendavip/booking-service/internal/service/finance/models"
)

// Service сервис для работы с финансами негосио
type Service struct {
	transactionRepo TransactionRepository
	negocioRepo     NegocioRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса финансов
func NewService(
	transactionRepo TransactionRepository,
	negocioRepo NegocioRepository,
	logger Logger,
) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		negocioRepo:     negocioRepo,
		logger:          logger,
	}
}

// CreateTransaction создает ручную финансовую операцию
// Доступно только владельцу негосио
func (s *Service) CreateTransaction(ctx context.Context, negocioID int64, req *models.CreateTransactionRequest) (*models.TransactionResponse, error) {
	s.logger.Info("CreateTransaction: creating %s transaction for negocio=%d by user=%d",
		req.Type, negocioID, req.UserID)

	if err := s.checkOwnerAccess(ctx, negocioID, req.UserID); err != nil {
		return nil, err
	}

	if req.Amount <= 0 {
		s.logger.Warn("CreateTransaction: non-positive amount for negocio=%d", negocioID)
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		s.logger.Warn("CreateTransaction: missing date for negocio=%d", negocioID)
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	transaction, err := req.ToDomainTransaction(negocioID)
	if err != nil {
		s.logger.Warn("CreateTransaction: invalid transaction for negocio=%d: %v", negocioID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.transactionRepo.Create(ctx, transaction)
	if err != nil {
		s.logger.Error("CreateTransaction: repository error for negocio=%d: %v", negocioID, err)
		return nil, fmt.Errorf("%w: CreateTransaction - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateTransaction: successfully created transaction id=%d for negocio=%d", created.ID, negocioID)
	return models.FromDomainTransaction(created), nil
}

// GetSummary возвращает финансовую сводку негосио за период:
// суммы по типам операций и чистый результат
// Доступно только владельцу
func (s *Service) GetSummary(ctx context.Context, req *models.GetSummaryRequest) (*models.SummaryResponse, error) {
	s.logger.Info("GetSummary: fetching summary for negocio=%d, user=%d, period=%s to %s",
		req.NegocioID, req.UserID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	if err := s.checkOwnerAccess(ctx, req.NegocioID, req.UserID); err != nil {
		return nil, err
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		s.logger.Warn("GetSummary: missing period bounds for negocio=%d", req.NegocioID)
		return nil, fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if req.EndDate.Before(req.StartDate) {
		s.logger.Warn("GetSummary: endDate before startDate for negocio=%d", req.NegocioID)
		return nil, fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	summary, err := s.transactionRepo.SumByTypeForPeriod(ctx, req.NegocioID, req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Error("GetSummary: repository error for negocio=%d: %v", req.NegocioID, err)
		return nil, fmt.Errorf("%w: GetSummary - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSummary: successfully fetched summary for negocio=%d", req.NegocioID)
	return models.FromDomainSummary(summary), nil
}

// ListTransactions возвращает финансовые операции негосио за период
// Доступно только владельцу
func (s *Service) ListTransactions(ctx context.Context, req *models.GetSummaryRequest) (*models.TransactionListResponse, error) {
	s.logger.Info("ListTransactions: fetching transactions for negocio=%d, user=%d", req.NegocioID, req.UserID)

	if err := s.checkOwnerAccess(ctx, req.NegocioID, req.UserID); err != nil {
		return nil, err
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		s.logger.Warn("ListTransactions: missing period bounds for negocio=%d", req.NegocioID)
		return nil, fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	transactions, err := s.transactionRepo.ListByNegocioPeriod(ctx, req.NegocioID, req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Error("ListTransactions: repository error for negocio=%d: %v", req.NegocioID, err)
		return nil, fmt.Errorf("%w: ListTransactions - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListTransactions: successfully fetched %d transactions for negocio=%d",
		len(transactions), req.NegocioID)
	return models.FromDomainTransactionList(transactions), nil
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
