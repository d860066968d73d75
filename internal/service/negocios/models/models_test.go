package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendavip/booking-service/internal/domain"
	"github.com/agendavip/booking-service/pkg/ptr"
)

func weekendClosed() OperatingHoursPayload {
	workday := DayHoursPayload{Open: "09:00", Close: "18:00"}
	return OperatingHoursPayload{
		Monday:    workday,
		Tuesday:   workday,
		Wednesday: workday,
		Thursday:  workday,
		Friday:    workday,
		Saturday:  DayHoursPayload{Closed: true},
		Sunday:    DayHoursPayload{Closed: true},
	}
}

func TestToDomainHours(t *testing.T) {
	t.Run("valid schedule", func(t *testing.T) {
		req := &UpdateOperatingHoursRequest{Hours: weekendClosed()}

		hours, err := req.ToDomainHours()

		require.NoError(t, err)
		assert.Equal(t, domain.DayHours{Open: "09:00", Close: "18:00"}, hours.Monday)
		assert.Equal(t, domain.DayHours{Closed: true}, hours.Saturday)
	})

	t.Run("closed day ignores open and close", func(t *testing.T) {
		payload := weekendClosed()
		payload.Sunday = DayHoursPayload{Open: "garbage", Close: "", Closed: true}
		req := &UpdateOperatingHoursRequest{Hours: payload}

		hours, err := req.ToDomainHours()

		require.NoError(t, err)
		assert.Equal(t, domain.DayHours{Closed: true}, hours.Sunday)
	})

	t.Run("open must be before close", func(t *testing.T) {
		payload := weekendClosed()
		payload.Tuesday = DayHoursPayload{Open: "18:00", Close: "09:00"}
		req := &UpdateOperatingHoursRequest{Hours: payload}

		_, err := req.ToDomainHours()

		assert.ErrorIs(t, err, ErrInvalidDayHours)
	})

	t.Run("malformed time rejected", func(t *testing.T) {
		payload := weekendClosed()
		payload.Friday = DayHoursPayload{Open: "9:00", Close: "18:00"}
		req := &UpdateOperatingHoursRequest{Hours: payload}

		_, err := req.ToDomainHours()

		assert.ErrorIs(t, err, ErrInvalidDayHours)
	})

	t.Run("open equals close rejected", func(t *testing.T) {
		payload := weekendClosed()
		payload.Wednesday = DayHoursPayload{Open: "12:00", Close: "12:00"}
		req := &UpdateOperatingHoursRequest{Hours: payload}

		_, err := req.ToDomainHours()

		assert.ErrorIs(t, err, ErrInvalidDayHours)
	})
}

func TestFromDomainNegocio(t *testing.T) {
	negocio := &domain.Negocio{
		ID:   1,
		Name: "Barbearia Teste",
		Slug: "barbearia-teste",
		OperatingHours: &domain.OperatingHours{
			Monday: domain.DayHours{Open: "09:00", Close: "18:00"},
		},
	}

	services := []*domain.Service{
		{ID: 3, Name: ptr.Ptr("Corte"), DurationMinutes: 30, Price: ptr.Ptr(50.0)},
		{ID: 4, Name: ptr.Ptr("Quebrado"), DurationMinutes: 0}, // не бронируется
	}

	professionals := []*domain.Professional{
		{ID: 2, Name: ptr.Ptr("Carlos"), ServiceIDs: []int64{3}},
		{ID: 5, Name: ptr.Ptr("Ana"), ServiceIDs: nil},
	}

	resp := FromDomainNegocio(negocio, services, professionals)

	assert.Equal(t, "barbearia-teste", resp.Slug)
	require.NotNil(t, resp.OperatingHours)
	assert.Equal(t, "09:00", resp.OperatingHours.Monday.Open)

	// Услуги без корректной длительности в публичный каталог не попадают
	require.Len(t, resp.Services, 1)
	assert.Equal(t, int64(3), resp.Services[0].ID)

	require.Len(t, resp.Professionals, 2)
	// nil ServiceIDs сериализуется как пустой массив, а не null
	assert.NotNil(t, resp.Professionals[1].ServiceIDs)
	assert.Empty(t, resp.Professionals[1].ServiceIDs)
}
