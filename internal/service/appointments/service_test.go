package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendavip/booking-service/internal/domain"
	appointmentRepo "github.com/agendavip/booking-service/internal/infra/storage/appointment"
	negocioRepo "github.com/agendavip/booking-service/internal/infra/storage/negocio"
	"github.com/agendavip/booking-service/internal/service/appointments/models"
	"github.com/agendavip/booking-service/pkg/ptr"
)

// Моки репозиториев

type mockAppointmentRepo struct {
	appointment    *domain.Appointment
	getErr         error
	updatedStatus  *domain.AppointmentStatus
	updateErr      error
	closedTip      *float64
	closePayErr    error
	listResult     []*domain.Appointment
	receivedFilter domain.NegocioAppointmentsFilter
}

func (m *mockAppointmentRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	return m.appointment, m.getErr
}

func (m *mockAppointmentRepo) ListByNegocioWithFilter(_ context.Context, filter domain.NegocioAppointmentsFilter) ([]*domain.Appointment, error) {
	m.receivedFilter = filter
	return m.listResult, nil
}

func (m *mockAppointmentRepo) UpdateStatus(_ context.Context, _ int64, status domain.AppointmentStatus) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updatedStatus = &status
	return nil
}

func (m *mockAppointmentRepo) ClosePayment(_ context.Context, _ int64, tip float64) error {
	if m.closePayErr != nil {
		return m.closePayErr
	}
	m.closedTip = &tip
	return nil
}

type mockNegocioRepo struct {
	negocio *domain.Negocio
	err     error
}

func (m *mockNegocioRepo) GetByID(_ context.Context, _ int64) (*domain.Negocio, error) {
	return m.negocio, m.err
}

type mockServiceRepo struct {
	service *domain.Service
	err     error
}

func (m *mockServiceRepo) GetByID(_ context.Context, _ int64) (*domain.Service, error) {
	return m.service, m.err
}

type mockTransactionRepo struct {
	created   *domain.Transaction
	createErr error
}

func (m *mockTransactionRepo) Create(_ context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	created := *t
	created.ID = 900
	m.created = &created
	return &created, nil
}

type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Фикстуры

const ownerID = int64(100)

func testAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:             10,
		NegocioID:      1,
		ClientID:       20,
		ServiceID:      3,
		ProfessionalID: 2,
		Date:           time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:      "10:00",
		Status:         domain.StatusConfirmed,
		PaymentStatus:  domain.PaymentPending,
	}
}

type testEnv struct {
	appointmentRepo *mockAppointmentRepo
	negocioRepo     *mockNegocioRepo
	serviceRepo     *mockServiceRepo
	transactionRepo *mockTransactionRepo
	txManager       *fakeTxManager
	service         *Service
}

func newTestEnv() *testEnv {
	env := &testEnv{
		appointmentRepo: &mockAppointmentRepo{appointment: testAppointment()},
		negocioRepo:     &mockNegocioRepo{negocio: &domain.Negocio{ID: 1, OwnerID: ownerID}},
		serviceRepo: &mockServiceRepo{service: &domain.Service{
			ID:        3,
			NegocioID: 1,
			Name:      ptr.Ptr("Corte"),
			Price:     ptr.Ptr(50.0),
		}},
		transactionRepo: &mockTransactionRepo{},
		txManager:       &fakeTxManager{},
	}

	env.service = NewService(
		env.appointmentRepo,
		env.negocioRepo,
		env.serviceRepo,
		env.transactionRepo,
		env.txManager,
		nopLogger{},
	)

	return env
}

func TestGetByID(t *testing.T) {
	t.Run("owner gets appointment", func(t *testing.T) {
		env := newTestEnv()

		resp, err := env.service.GetByID(context.Background(), 10, ownerID)

		require.NoError(t, err)
		assert.Equal(t, int64(10), resp.ID)
		assert.Equal(t, "10:00", resp.StartTime)
	})

	t.Run("non-owner denied", func(t *testing.T) {
		env := newTestEnv()

		_, err := env.service.GetByID(context.Background(), 10, 999)

		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("not found", func(t *testing.T) {
		env := newTestEnv()
		env.appointmentRepo.appointment = nil
		env.appointmentRepo.getErr = appointmentRepo.ErrAppointmentNotFound

		_, err := env.service.GetByID(context.Background(), 10, ownerID)

		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestCancel(t *testing.T) {
	t.Run("confirmed appointment cancelled", func(t *testing.T) {
		env := newTestEnv()

		err := env.service.Cancel(context.Background(), 10, &models.CancelAppointmentRequest{UserID: ownerID})

		require.NoError(t, err)
		require.NotNil(t, env.appointmentRepo.updatedStatus)
		assert.Equal(t, domain.StatusCancelled, *env.appointmentRepo.updatedStatus)
	})

	t.Run("completed appointment cannot be cancelled", func(t *testing.T) {
		env := newTestEnv()
		env.appointmentRepo.appointment.Status = domain.StatusCompleted

		err := env.service.Cancel(context.Background(), 10, &models.CancelAppointmentRequest{UserID: ownerID})

		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("non-owner denied", func(t *testing.T) {
		env := newTestEnv()

		err := env.service.Cancel(context.Background(), 10, &models.CancelAppointmentRequest{UserID: 999})

		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Nil(t, env.appointmentRepo.updatedStatus)
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("valid status applied", func(t *testing.T) {
		env := newTestEnv()

		err := env.service.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{
			UserID: ownerID,
			Status: "completed",
		})

		require.NoError(t, err)
		require.NotNil(t, env.appointmentRepo.updatedStatus)
		assert.Equal(t, domain.StatusCompleted, *env.appointmentRepo.updatedStatus)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		env := newTestEnv()

		err := env.service.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{
			UserID: ownerID,
			Status: "teleported",
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestClosePayment(t *testing.T) {
	t.Run("marks paid and creates revenue transaction", func(t *testing.T) {
		env := newTestEnv()

		err := env.service.ClosePayment(context.Background(), 10, &models.ClosePaymentRequest{
			UserID:        ownerID,
			Tip:           10,
			PaymentMethod: "pix",
		})

		require.NoError(t, err)
		assert.Equal(t, 1, env.txManager.calls)

		require.NotNil(t, env.appointmentRepo.closedTip)
		assert.Equal(t, 10.0, *env.appointmentRepo.closedTip)

		// Финансовая операция: цена услуги + чаевые, с привязкой к записи
		tx := env.transactionRepo.created
		require.NotNil(t, tx)
		assert.Equal(t, domain.TransactionRevenue, tx.Type)
		assert.Equal(t, 60.0, tx.Amount)
		assert.Equal(t, "Corte", tx.Description)
		assert.Equal(t, domain.SourceAppointment, *tx.SourceType)
		assert.Equal(t, int64(10), *tx.SourceID)
		assert.Equal(t, int64(20), *tx.ClientID)
		assert.Equal(t, int64(2), *tx.ProfessionalID)
		assert.Equal(t, int64(3), *tx.ServiceID)
		assert.Equal(t, domain.MethodPix, *tx.PaymentMethod)
	})

	t.Run("already paid", func(t *testing.T) {
		env := newTestEnv()
		env.appointmentRepo.appointment.PaymentStatus = domain.PaymentPaid

		err := env.service.ClosePayment(context.Background(), 10, &models.ClosePaymentRequest{
			UserID:        ownerID,
			PaymentMethod: "cash",
		})

		assert.ErrorIs(t, err, ErrAlreadyPaid)
		assert.Equal(t, 0, env.txManager.calls)
	})

	t.Run("negative tip rejected", func(t *testing.T) {
		env := newTestEnv()

		err := env.service.ClosePayment(context.Background(), 10, &models.ClosePaymentRequest{
			UserID:        ownerID,
			Tip:           -5,
			PaymentMethod: "cash",
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("invalid payment method rejected", func(t *testing.T) {
		env := newTestEnv()

		err := env.service.ClosePayment(context.Background(), 10, &models.ClosePaymentRequest{
			UserID:        ownerID,
			PaymentMethod: "barter",
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("non-owner denied", func(t *testing.T) {
		env := newTestEnv()

		err := env.service.ClosePayment(context.Background(), 10, &models.ClosePaymentRequest{
			UserID:        999,
			PaymentMethod: "cash",
		})

		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestListByNegocio(t *testing.T) {
	t.Run("passes filter to repository", func(t *testing.T) {
		env := newTestEnv()
		env.appointmentRepo.listResult = []*domain.Appointment{testAppointment()}

		professionalID := int64(2)
		resp, err := env.service.ListByNegocio(context.Background(), &models.GetNegocioAppointmentsRequest{
			UserID:         ownerID,
			NegocioID:      1,
			ProfessionalID: &professionalID,
		})

		require.NoError(t, err)
		assert.Len(t, resp.Appointments, 1)
		assert.Equal(t, int64(1), env.appointmentRepo.receivedFilter.NegocioID)
		require.NotNil(t, env.appointmentRepo.receivedFilter.ProfessionalID)
		assert.Equal(t, professionalID, *env.appointmentRepo.receivedFilter.ProfessionalID)
	})

	t.Run("negocio not found", func(t *testing.T) {
		env := newTestEnv()
		env.negocioRepo.negocio = nil
		env.negocioRepo.err = negocioRepo.ErrNegocioNotFound

		_, err := env.service.ListByNegocio(context.Background(), &models.GetNegocioAppointmentsRequest{
			UserID:    ownerID,
			NegocioID: 1,
		})

		assert.ErrorIs(t, err, ErrNegocioNotFound)
	})
}
