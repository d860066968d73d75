package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendavip/booking-service/internal/domain"
	negocioRepo "github.com/agendavip/booking-service/internal/infra/storage/negocio"
	professionalRepo "github.com/agendavip/booking-service/internal/infra/storage/professional"
	serviceRepo "github.com/agendavip/booking-service/internal/infra/storage/service"
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

type mockAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (m *mockAppointmentRepo) ListForProfessionalOnDate(_ context.Context, _ int64, _ time.Time, _ bool) ([]*domain.Appointment, error) {
	return m.appointments, m.err
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

// Фикстуры: негосио работает 09:00-12:00 во вторник, услуга 30 минут

var testHours = &domain.OperatingHours{
	Monday:    domain.DayHours{Closed: true},
	Tuesday:   domain.DayHours{Open: "09:00", Close: "12:00"},
	Wednesday: domain.DayHours{Open: "09:00", Close: "18:00"},
	Thursday:  domain.DayHours{Closed: true},
	Friday:    domain.DayHours{Closed: true},
	Saturday:  domain.DayHours{Closed: true},
	Sunday:    domain.DayHours{Closed: true},
}

// 2026-03-10 - вторник
var testDate = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func testNegocio() *domain.Negocio {
	return &domain.Negocio{
		ID:             1,
		OwnerID:        100,
		Name:           "Barbearia Teste",
		Slug:           "barbearia-teste",
		OperatingHours: testHours,
		Status:         domain.NegocioActive,
	}
}

func testProfessional() *domain.Professional {
	return &domain.Professional{
		ID:         2,
		NegocioID:  1,
		Name:       ptr.Ptr("Carlos"),
		ServiceIDs: []int64{3},
	}
}

func testService() *domain.Service {
	return &domain.Service{
		ID:              3,
		NegocioID:       1,
		Name:            ptr.Ptr("Corte"),
		DurationMinutes: 30,
	}
}

func newTestUseCase(
	negocio *mockNegocioRepo,
	professional *mockProfessionalRepo,
	service *mockServiceRepo,
	appointment *mockAppointmentRepo,
	now time.Time,
) *UseCase {
	uc := NewUseCase(negocio, professional, service, appointment, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		NegocioID:      1,
		ProfessionalID: 2,
		ServiceID:      3,
		Date:           testDate,
	}
}

func TestExecute_ReturnsFreeSlots(t *testing.T) {
	svc := testService()
	uc := newTestUseCase(
		&mockNegocioRepo{negocio: testNegocio()},
		&mockProfessionalRepo{professional: testProfessional()},
		&mockServiceRepo{service: svc, services: []*domain.Service{svc}},
		&mockAppointmentRepo{},
		time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, 30, resp.DurationMinutes)
	// 09:00-12:00, шаг 15 минут, последний старт 30-минутной услуги - 11:30
	require.Len(t, resp.Slots, 11)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0])
	assert.Equal(t, types.TimeString("11:30"), resp.Slots[10])
}

func TestExecute_ExistingBookingBlocksSlots(t *testing.T) {
	svc := testService()
	appointments := []*domain.Appointment{
		{ServiceID: 3, StartTime: "10:00", Status: domain.StatusConfirmed},
	}
	uc := newTestUseCase(
		&mockNegocioRepo{negocio: testNegocio()},
		&mockProfessionalRepo{professional: testProfessional()},
		&mockServiceRepo{service: svc, services: []*domain.Service{svc}},
		&mockAppointmentRepo{appointments: appointments},
		time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	// Запись 10:00-10:30 выбивает 09:45, 10:00 и 10:15
	assert.NotContains(t, resp.Slots, types.TimeString("09:45"))
	assert.NotContains(t, resp.Slots, types.TimeString("10:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("10:15"))
	assert.Contains(t, resp.Slots, types.TimeString("09:30"))
	assert.Contains(t, resp.Slots, types.TimeString("10:30"))
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	svc := testService()
	appointments := []*domain.Appointment{
		{ServiceID: 3, StartTime: "10:00", Status: domain.StatusCancelled},
	}
	uc := newTestUseCase(
		&mockNegocioRepo{negocio: testNegocio()},
		&mockProfessionalRepo{professional: testProfessional()},
		&mockServiceRepo{service: svc, services: []*domain.Service{svc}},
		&mockAppointmentRepo{appointments: appointments},
		time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Contains(t, resp.Slots, types.TimeString("10:00"))
}

func TestExecute_SameDayCutoff(t *testing.T) {
	svc := testService()
	uc := newTestUseCase(
		&mockNegocioRepo{negocio: testNegocio()},
		&mockProfessionalRepo{professional: testProfessional()},
		&mockServiceRepo{service: svc, services: []*domain.Service{svc}},
		&mockAppointmentRepo{},
		// Запрашиваемая дата - сегодня, сейчас 10:07
		time.Date(2026, 3, 10, 10, 7, 0, 0, time.UTC),
	)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	// Остаются только слоты строго позже 10:07
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, types.TimeString("10:15"), resp.Slots[0])
	assert.NotContains(t, resp.Slots, types.TimeString("10:00"))
}

func TestExecute_PastDateGivesEmptySlots(t *testing.T) {
	svc := testService()
	uc := newTestUseCase(
		&mockNegocioRepo{negocio: testNegocio()},
		&mockProfessionalRepo{professional: testProfessional()},
		&mockServiceRepo{service: svc, services: []*domain.Service{svc}},
		&mockAppointmentRepo{},
		time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
	)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ClosedDayGivesEmptySlots(t *testing.T) {
	svc := testService()
	req := validRequest()
	req.Date = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC) // понедельник, закрыто

	uc := newTestUseCase(
		&mockNegocioRepo{negocio: testNegocio()},
		&mockProfessionalRepo{professional: testProfessional()},
		&mockServiceRepo{service: svc, services: []*domain.Service{svc}},
		&mockAppointmentRepo{},
		time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	)

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ProfessionalOverrideNarrowsWindow(t *testing.T) {
	svc := testService()
	professional := testProfessional()
	professional.WorkingHours = &domain.OperatingHours{
		Monday:    domain.DayHours{Closed: true},
		Tuesday:   domain.DayHours{Open: "10:00", Close: "11:00"},
		Wednesday: domain.DayHours{Closed: true},
		Thursday:  domain.DayHours{Closed: true},
		Friday:    domain.DayHours{Closed: true},
		Saturday:  domain.DayHours{Closed: true},
		Sunday:    domain.DayHours{Closed: true},
	}

	uc := newTestUseCase(
		&mockNegocioRepo{negocio: testNegocio()},
		&mockProfessionalRepo{professional: professional},
		&mockServiceRepo{service: svc, services: []*domain.Service{svc}},
		&mockAppointmentRepo{},
		time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	// 10:00-11:00, 30-минутная услуга: 10:00, 10:15, 10:30
	assert.Equal(t, []types.TimeString{"10:00", "10:15", "10:30"}, resp.Slots)
}

func TestExecute_PartialOverrideInheritsBusinessHours(t *testing.T) {
	svc := testService()
	professional := testProfessional()
	// Вторник в расписании профессионала не перечислен: нулевой DayHours
	// не переопределение, слоты считаются по часам негосио
	professional.WorkingHours = &domain.OperatingHours{
		Saturday: domain.DayHours{Closed: true},
	}

	uc := newTestUseCase(
		&mockNegocioRepo{negocio: testNegocio()},
		&mockProfessionalRepo{professional: professional},
		&mockServiceRepo{service: svc, services: []*domain.Service{svc}},
		&mockAppointmentRepo{},
		time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.Len(t, resp.Slots, 11)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0])
	assert.Equal(t, types.TimeString("11:30"), resp.Slots[len(resp.Slots)-1])
}

func TestExecute_ServiceNotPerformedGivesEmptySlots(t *testing.T) {
	svc := testService()
	professional := testProfessional()
	professional.ServiceIDs = []int64{99}

	uc := newTestUseCase(
		&mockNegocioRepo{negocio: testNegocio()},
		&mockProfessionalRepo{professional: professional},
		&mockServiceRepo{service: svc, services: []*domain.Service{svc}},
		&mockAppointmentRepo{},
		time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_NegocioNotFound(t *testing.T) {
	uc := newTestUseCase(
		&mockNegocioRepo{err: negocioRepo.ErrNegocioNotFound},
		&mockProfessionalRepo{},
		&mockServiceRepo{},
		&mockAppointmentRepo{},
		time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrNegocioNotFound)
}

func TestExecute_ProfessionalFromAnotherNegocio(t *testing.T) {
	professional := testProfessional()
	professional.NegocioID = 999

	uc := newTestUseCase(
		&mockNegocioRepo{negocio: testNegocio()},
		&mockProfessionalRepo{professional: professional},
		&mockServiceRepo{},
		&mockAppointmentRepo{},
		time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecute_ServiceFromAnotherNegocio(t *testing.T) {
	svc := testService()
	svc.NegocioID = 999

	uc := newTestUseCase(
		&mockNegocioRepo{negocio: testNegocio()},
		&mockProfessionalRepo{professional: testProfessional()},
		&mockServiceRepo{service: svc},
		&mockAppointmentRepo{},
		time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_NotFoundErrors(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("professional not found", func(t *testing.T) {
		uc := newTestUseCase(
			&mockNegocioRepo{negocio: testNegocio()},
			&mockProfessionalRepo{err: professionalRepo.ErrProfessionalNotFound},
			&mockServiceRepo{},
			&mockAppointmentRepo{},
			now,
		)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrProfessionalNotFound)
	})

	t.Run("service not found", func(t *testing.T) {
		uc := newTestUseCase(
			&mockNegocioRepo{negocio: testNegocio()},
			&mockProfessionalRepo{professional: testProfessional()},
			&mockServiceRepo{err: serviceRepo.ErrServiceNotFound},
			&mockAppointmentRepo{},
			now,
		)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})
}

func TestExecute_InvalidRequest(t *testing.T) {
	uc := newTestUseCase(
		&mockNegocioRepo{},
		&mockProfessionalRepo{},
		&mockServiceRepo{},
		&mockAppointmentRepo{},
		time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	)

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero negocio id", &Request{ProfessionalID: 2, ServiceID: 3, Date: testDate}},
		{"zero professional id", &Request{NegocioID: 1, ServiceID: 3, Date: testDate}},
		{"zero service id", &Request{NegocioID: 1, ProfessionalID: 2, Date: testDate}},
		{"zero date", &Request{NegocioID: 1, ProfessionalID: 2, ServiceID: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
