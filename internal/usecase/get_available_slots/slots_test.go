package get_available_slots

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendavip/booking-service/internal/domain"
	"github.com/agendavip/booking-service/pkg/types"
)

func TestEffectiveWindow(t *testing.T) {
	tests := []struct {
		name            string
		businessDay     domain.DayHours
		professionalDay *domain.DayHours
		wantOpen        int
		wantClose       int
		wantOK          bool
	}{
		{
			name:        "business hours only",
			businessDay: domain.DayHours{Open: "09:00", Close: "18:00"},
			wantOpen:    540,
			wantClose:   1080,
			wantOK:      true,
		},
		{
			name:        "business day closed",
			businessDay: domain.DayHours{Closed: true},
			wantOK:      false,
		},
		{
			name:            "professional narrows window",
			businessDay:     domain.DayHours{Open: "09:00", Close: "18:00"},
			professionalDay: &domain.DayHours{Open: "10:00", Close: "16:00"},
			wantOpen:        600,
			wantClose:       960,
			wantOK:          true,
		},
		{
			name:            "professional cannot widen window",
			businessDay:     domain.DayHours{Open: "09:00", Close: "18:00"},
			professionalDay: &domain.DayHours{Open: "08:00", Close: "20:00"},
			wantOpen:        540,
			wantClose:       1080,
			wantOK:          true,
		},
		{
			name:            "professional day closed",
			businessDay:     domain.DayHours{Open: "09:00", Close: "18:00"},
			professionalDay: &domain.DayHours{Closed: true},
			wantOK:          false,
		},
		{
			name:            "disjoint windows",
			businessDay:     domain.DayHours{Open: "09:00", Close: "12:00"},
			professionalDay: &domain.DayHours{Open: "14:00", Close: "18:00"},
			wantOK:          false,
		},
		{
			name:        "malformed business open time",
			businessDay: domain.DayHours{Open: "9am", Close: "18:00"},
			wantOK:      false,
		},
		{
			// Частичное расписание профессионала (день без границ, например
			// не перечисленный в JSONB) - не переопределение, а наследование
			name:            "empty override falls back to business hours",
			businessDay:     domain.DayHours{Open: "09:00", Close: "18:00"},
			professionalDay: &domain.DayHours{},
			wantOpen:        540,
			wantClose:       1080,
			wantOK:          true,
		},
		{
			name:            "override with only open bound falls back",
			businessDay:     domain.DayHours{Open: "09:00", Close: "18:00"},
			professionalDay: &domain.DayHours{Open: "10:00"},
			wantOpen:        540,
			wantClose:       1080,
			wantOK:          true,
		},
		{
			name:            "malformed professional time falls back",
			businessDay:     domain.DayHours{Open: "09:00", Close: "18:00"},
			professionalDay: &domain.DayHours{Open: "10:00", Close: "sixteen"},
			wantOpen:        540,
			wantClose:       1080,
			wantOK:          true,
		},
		{
			name:        "degenerate window open equals close",
			businessDay: domain.DayHours{Open: "12:00", Close: "12:00"},
			wantOK:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, ok := effectiveWindow(tt.businessDay, tt.professionalDay)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantOpen, window.open)
				assert.Equal(t, tt.wantClose, window.close)
			}
		})
	}
}

func TestGenerateCandidateSlots(t *testing.T) {
	t.Run("30 minute service in full day", func(t *testing.T) {
		// 09:00-18:00, шаг 15 минут, услуга должна целиком помещаться до закрытия
		candidates := generateCandidateSlots(timeWindow{open: 540, close: 1080}, 30)

		require.NotEmpty(t, candidates)
		assert.Equal(t, 540, candidates[0])           // 09:00
		assert.Equal(t, 1050, candidates[len(candidates)-1]) // 17:30 - последний старт 30-минутной услуги
		assert.Len(t, candidates, 35)
	})

	t.Run("service longer than window", func(t *testing.T) {
		candidates := generateCandidateSlots(timeWindow{open: 540, close: 600}, 90)
		assert.Empty(t, candidates)
	})

	t.Run("service exactly fits window", func(t *testing.T) {
		candidates := generateCandidateSlots(timeWindow{open: 540, close: 600}, 60)
		assert.Equal(t, []int{540}, candidates)
	})
}

func TestFilterAvailableSlots(t *testing.T) {
	t.Run("booking blocks overlapping slots", func(t *testing.T) {
		// Запись 10:00-10:30, услуга из запроса 30 минут
		// Должны выпасть 09:45, 10:00 и 10:15; 09:30 и 10:30 остаются
		candidates := []int{570, 585, 600, 615, 630} // 09:30 09:45 10:00 10:15 10:30
		busy := []busyInterval{{start: 600, end: 630}}

		available := filterAvailableSlots(candidates, 30, busy)

		assert.Equal(t, []int{570, 630}, available)
	})

	t.Run("back to back slots do not conflict", func(t *testing.T) {
		// Интервалы полуоткрытые: слот, начинающийся ровно в конце записи, свободен
		busy := []busyInterval{{start: 600, end: 660}}

		available := filterAvailableSlots([]int{540, 660}, 60, busy)

		assert.Equal(t, []int{540, 660}, available)
	})

	t.Run("zero length interval blocks only strictly containing slots", func(t *testing.T) {
		// Запись с неизвестной длительностью услуги вырождается в точку 10:00
		busy := []busyInterval{{start: 600, end: 600}}

		available := filterAvailableSlots([]int{570, 585, 600}, 30, busy)

		// 09:45-10:15 строго содержит точку 10:00 и выпадает,
		// 09:30-10:00 и 10:00-10:30 только касаются её и остаются
		assert.Equal(t, []int{570, 600}, available)
	})

	t.Run("no busy intervals keeps all candidates", func(t *testing.T) {
		available := filterAvailableSlots([]int{540, 555, 570}, 30, nil)
		assert.Equal(t, []int{540, 555, 570}, available)
	})
}

func TestBuildBusyIntervals(t *testing.T) {
	durations := map[int64]int{10: 30, 11: 60}

	appointments := []*domain.Appointment{
		{ServiceID: 10, StartTime: "10:00", Status: domain.StatusConfirmed},
		{ServiceID: 11, StartTime: "14:00", Status: domain.StatusPending},
		{ServiceID: 10, StartTime: "11:00", Status: domain.StatusCancelled}, // не блокирует
		{ServiceID: 10, StartTime: "12:00", Status: domain.StatusNoShow},    // не блокирует
		{ServiceID: 10, StartTime: "xx:yy", Status: domain.StatusConfirmed}, // некорректное время
		{ServiceID: 99, StartTime: "16:00", Status: domain.StatusConfirmed}, // неизвестная услуга
	}

	intervals := buildBusyIntervals(appointments, durations)

	require.Len(t, intervals, 3)
	assert.Equal(t, busyInterval{start: 600, end: 630}, intervals[0])
	assert.Equal(t, busyInterval{start: 840, end: 900}, intervals[1])
	// Неизвестная длительность дает вырожденный интервал-точку
	assert.Equal(t, busyInterval{start: 960, end: 960}, intervals[2])
}

func TestApplySameDayCutoff(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 32, 45, 0, time.UTC)
	slots := []int{840, 870, 872, 885, 900} // 14:00 14:30 14:32 14:45 15:00

	filtered := applySameDayCutoff(slots, now)

	// Остаются только слоты СТРОГО позже 14:32
	assert.Equal(t, []int{885, 900}, filtered)
}

// Отсечка считается в минутах, но должна быть неотличима от лексикографического
// сравнения "HH:MM" строк с ведущими нулями
func TestSameDayCutoffMatchesStringComparison(t *testing.T) {
	t.Run("string order of HH:MM equals numeric order", func(t *testing.T) {
		// Строки всех 1440 минут суток строго возрастают лексикографически,
		// значит для любой пары сравнение строк эквивалентно сравнению минут
		prev := ""
		for m := 0; m < 24*60; m++ {
			s := fmt.Sprintf("%02d:%02d", m/60, m%60)
			if m > 0 {
				require.Greater(t, s, prev)
			}
			prev = s
		}
	})

	t.Run("cutoff equals string filtered result", func(t *testing.T) {
		now := time.Date(2026, 3, 10, 14, 32, 45, 0, time.UTC)
		nowString := fmt.Sprintf("%02d:%02d", now.Hour(), now.Minute())
		slots := []int{0, 555, 870, 872, 873, 885, 1439}

		filtered := applySameDayCutoff(slots, now)

		expected := make([]int, 0)
		for _, slot := range slots {
			if fmt.Sprintf("%02d:%02d", slot/60, slot%60) > nowString {
				expected = append(expected, slot)
			}
		}
		assert.Equal(t, expected, filtered)
		assert.Equal(t, []int{873, 885, 1439}, filtered)
	})
}

func TestToTimeStrings(t *testing.T) {
	slots := toTimeStrings([]int{540, 555, 1050})

	assert.Equal(t, []types.TimeString{"09:00", "09:15", "17:30"}, slots)
}

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"00:00", 0, true},
		{"09:05", 545, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"9:00", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseMinutes(tt.input)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestIsDateInPast(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 50, 0, 0, time.UTC)

	assert.True(t, isDateInPast(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), now))
	// Сегодняшняя дата не считается прошедшей даже поздним вечером
	assert.False(t, isDateInPast(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, isDateInPast(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), now))
}
