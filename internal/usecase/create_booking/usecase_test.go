package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendavip/booking-service/internal/domain"
	appointmentRepo "github.com/agendavip/booking-service/internal/infra/storage/appointment"
	clientRepo "github.com/agendavip/booking-service/internal/infra/storage/client"
	negocioRepo "github.com/agendavip/booking-service/internal/infra/storage/negocio"
	"github.com/agendavip/booking-service/pkg/ptr"
	"github.com/agendavip/booking-service/pkg/types"
)

// Моки репозиториев

type mockNegocioRepo struct {
	negocio *domain.Negocio
	err     error
}

func (m *mockNegocioRepo) GetByID(_ context.Context, _ int64) (*domain.Negocio, error) {
	return m.negocio, m.err
}

type mockProfessionalRepo struct {
	professional *domain.Professional
	err          error
}

func (m *mockProfessionalRepo) GetByID(_ context.Context, _ int64) (*domain.Professional, error) {
	return m.professional, m.err
}

type mockServiceRepo struct {
	service  *domain.Service
	services []*domain.Service
	err      error
}

func (m *mockServiceRepo) GetByID(_ context.Context, _ int64) (*domain.Service, error) {
	return m.service, m.err
}

func (m *mockServiceRepo) ListByNegocio(_ context.Context, _ int64) ([]*domain.Service, error) {
	return m.services, nil
}

type mockClientRepo struct {
	existing    *domain.Client
	getErr      error
	created     *domain.Client
	createCalls int
}

func (m *mockClientRepo) GetByPhone(_ context.Context, _ int64, _ string) (*domain.Client, error) {
	if m.existing != nil {
		return m.existing, nil
	}
	return nil, m.getErr
}

func (m *mockClientRepo) Create(_ context.Context, c *domain.Client) (*domain.Client, error) {
	m.createCalls++
	created := *c
	created.ID = 77
	m.created = &created
	return &created, nil
}

type mockAppointmentRepo struct {
	appointments []*domain.Appointment
	createErr    error
	created      *domain.Appointment
}

func (m *mockAppointmentRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	created := *a
	created.ID = 500
	created.CreatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.created = &created
	return &created, nil
}

func (m *mockAppointmentRepo) ListForProfessionalOnDate(_ context.Context, _ int64, _ time.Time, _ bool) ([]*domain.Appointment, error) {
	return m.appointments, nil
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Фикстуры: негосио работает 09:00-18:00 во вторник, услуга 30 минут

var testHours = &domain.OperatingHours{
	Monday:    domain.DayHours{Closed: true},
	Tuesday:   domain.DayHours{Open: "09:00", Close: "18:00"},
	Wednesday: domain.DayHours{Open: "09:00", Close: "18:00"},
	Thursday:  domain.DayHours{Closed: true},
	Friday:    domain.DayHours{Closed: true},
	Saturday:  domain.DayHours{Closed: true},
	Sunday:    domain.DayHours{Closed: true},
}

// 2026-03-10 - вторник
var testDate = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

var testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

type testEnv struct {
	negocioRepo      *mockNegocioRepo
	professionalRepo *mockProfessionalRepo
	serviceRepo      *mockServiceRepo
	clientRepo       *mockClientRepo
	appointmentRepo  *mockAppointmentRepo
	txManager        *fakeTxManager
	useCase          *UseCase
}

func newTestEnv() *testEnv {
	svc := &domain.Service{ID: 3, NegocioID: 1, Name: ptr.Ptr("Corte"), DurationMinutes: 30}

	env := &testEnv{
		negocioRepo: &mockNegocioRepo{negocio: &domain.Negocio{
			ID:             1,
			OwnerID:        100,
			Name:           "Barbearia Teste",
			Slug:           "barbearia-teste",
			OperatingHours: testHours,
			Status:         domain.NegocioActive,
		}},
		professionalRepo: &mockProfessionalRepo{professional: &domain.Professional{
			ID:         2,
			NegocioID:  1,
			Name:       ptr.Ptr("Carlos"),
			ServiceIDs: []int64{3},
		}},
		serviceRepo:     &mockServiceRepo{service: svc, services: []*domain.Service{svc}},
		clientRepo:      &mockClientRepo{getErr: clientRepo.ErrClientNotFound},
		appointmentRepo: &mockAppointmentRepo{},
		txManager:       &fakeTxManager{},
	}

	env.useCase = NewUseCase(
		env.negocioRepo,
		env.professionalRepo,
		env.serviceRepo,
		env.clientRepo,
		env.appointmentRepo,
		env.txManager,
		nopLogger{},
	)
	env.useCase.timeProvider = &fakeTimeProvider{now: testNow}

	return env
}

func validRequest() *Request {
	return &Request{
		NegocioID:      1,
		ProfessionalID: 2,
		ServiceID:      3,
		Date:           testDate,
		StartTime:      "10:00",
		ClientName:     "João Silva",
		ClientPhone:    "(11) 98765-4321",
	}
}

func TestExecute_CreatesBookingWithNewClient(t *testing.T) {
	env := newTestEnv()

	resp, err := env.useCase.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(500), resp.ID)
	assert.Equal(t, int64(77), resp.ClientID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, string(domain.PaymentPending), resp.PaymentStatus)
	assert.Equal(t, 30, resp.DurationMinutes)

	// Клиент создан с нормализованным телефоном (только цифры)
	assert.Equal(t, 1, env.clientRepo.createCalls)
	assert.Equal(t, "11987654321", env.clientRepo.created.Phone)
	assert.Equal(t, "João Silva", *env.clientRepo.created.Name)

	// Вся работа с БД прошла внутри транзакции
	assert.Equal(t, 1, env.txManager.calls)
}

func TestExecute_ReusesExistingClient(t *testing.T) {
	env := newTestEnv()
	env.clientRepo.existing = &domain.Client{ID: 42, NegocioID: 1, Phone: "11987654321"}

	resp, err := env.useCase.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ClientID)
	assert.Equal(t, 0, env.clientRepo.createCalls)
}

func TestExecute_SlotAlreadyBooked(t *testing.T) {
	env := newTestEnv()
	env.appointmentRepo.appointments = []*domain.Appointment{
		{ServiceID: 3, StartTime: "10:00", Status: domain.StatusConfirmed},
	}

	_, err := env.useCase.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_OverlappingBookingRejected(t *testing.T) {
	env := newTestEnv()
	// Запись 09:45-10:15 пересекается с запрошенным слотом 10:00-10:30
	env.appointmentRepo.appointments = []*domain.Appointment{
		{ServiceID: 3, StartTime: "09:45", Status: domain.StatusConfirmed},
	}

	_, err := env.useCase.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_BackToBackBookingAllowed(t *testing.T) {
	env := newTestEnv()
	// Запись 09:30-10:00 заканчивается ровно в начале запрошенного слота
	env.appointmentRepo.appointments = []*domain.Appointment{
		{ServiceID: 3, StartTime: "09:30", Status: domain.StatusConfirmed},
	}

	resp, err := env.useCase.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(500), resp.ID)
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	env := newTestEnv()
	env.appointmentRepo.appointments = []*domain.Appointment{
		{ServiceID: 3, StartTime: "10:00", Status: domain.StatusCancelled},
	}

	_, err := env.useCase.Execute(context.Background(), validRequest())

	require.NoError(t, err)
}

func TestExecute_UniqueViolationMapsToSlotNotAvailable(t *testing.T) {
	env := newTestEnv()
	env.appointmentRepo.createErr = appointmentRepo.ErrSlotTaken

	_, err := env.useCase.Execute(context.Background(), validRequest())

	// Конкурирующая транзакция успела занять слот: уникальный индекс сработал
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_OffGridTimeRejected(t *testing.T) {
	env := newTestEnv()
	req := validRequest()
	req.StartTime = "10:05"

	_, err := env.useCase.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_OutsideWorkingHoursRejected(t *testing.T) {
	env := newTestEnv()

	tests := []struct {
		name      string
		startTime string
	}{
		{"before opening", "08:00"},
		{"service does not fit before close", "17:45"},
		{"after close", "19:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.StartTime = types.TimeString(tt.startTime)

			_, err := env.useCase.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrSlotNotAvailable)
		})
	}
}

func TestExecute_ClosedDayRejected(t *testing.T) {
	env := newTestEnv()
	req := validRequest()
	req.Date = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC) // понедельник, закрыто

	_, err := env.useCase.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_PastDateRejected(t *testing.T) {
	env := newTestEnv()
	env.useCase.timeProvider = &fakeTimeProvider{now: time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)}

	_, err := env.useCase.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_SameDayPastTimeRejected(t *testing.T) {
	env := newTestEnv()
	// Сейчас 10:00 того же дня, слот 10:00 уже не доступен (нужно строго позже)
	env.useCase.timeProvider = &fakeTimeProvider{now: time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)}

	_, err := env.useCase.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_ServiceNotPerformed(t *testing.T) {
	env := newTestEnv()
	env.professionalRepo.professional.ServiceIDs = []int64{99}

	_, err := env.useCase.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrServiceNotPerformed)
}

func TestExecute_ServiceWithoutDurationNotBookable(t *testing.T) {
	env := newTestEnv()
	env.serviceRepo.service.DurationMinutes = 0

	_, err := env.useCase.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrServiceNotBookable)
}

func TestExecute_NegocioNotFound(t *testing.T) {
	env := newTestEnv()
	env.negocioRepo.negocio = nil
	env.negocioRepo.err = negocioRepo.ErrNegocioNotFound

	_, err := env.useCase.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrNegocioNotFound)
}

func TestExecute_TenantChecks(t *testing.T) {
	t.Run("professional from another negocio", func(t *testing.T) {
		env := newTestEnv()
		env.professionalRepo.professional.NegocioID = 999

		_, err := env.useCase.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrProfessionalNotFound)
	})

	t.Run("service from another negocio", func(t *testing.T) {
		env := newTestEnv()
		env.serviceRepo.service.NegocioID = 999

		_, err := env.useCase.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})
}

func TestExecute_InvalidInput(t *testing.T) {
	env := newTestEnv()

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"empty client name", func(r *Request) { r.ClientName = "   " }, ErrInvalidInput},
		{"malformed start time", func(r *Request) { r.StartTime = "25:99" }, ErrInvalidInput},
		{"phone too short", func(r *Request) { r.ClientPhone = "1234" }, ErrInvalidPhone},
		{"phone too long", func(r *Request) { r.ClientPhone = "5511987654321" }, ErrInvalidPhone},
		{"zero date", func(r *Request) { r.Date = time.Time{} }, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := env.useCase.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
