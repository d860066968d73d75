package create_booking

import (
	"time"

	"github.com/agendavip/booking-service/internal/domain"
	"github.com/agendavip/booking-service/pkg/types"
)

// isStartTimeAvailable повторяет расчёт доступности на момент записи
// Вызывается внутри сериализуемой транзакции с заблокированными записями дня,
// поэтому результат не может устареть между проверкой и вставкой
//
// Время считается доступным, если:
//   - дата не в прошлом
//   - день открыт и время попадает в эффективное окно (негосио + профессионал)
//   - время лежит на сетке 15 минут от начала окна
//   - услуга целиком помещается до закрытия
//   - интервал не пересекается ни с одной активной записью
//   - для сегодняшней даты время строго позже текущего
func isStartTimeAvailable(
	startTime types.TimeString,
	negocio *domain.Negocio,
	professional *domain.Professional,
	durationMinutes int,
	date time.Time,
	now time.Time,
	appointments []*domain.Appointment,
	serviceDurations map[int64]int,
) bool {
	if isDateInPast(date, now) {
		return false
	}

	weekday := date.Weekday()
	open, close, ok := effectiveWindow(negocio.HoursFor(weekday), professional.HoursFor(weekday))
	if !ok {
		return false
	}

	start, ok := parseMinutes(string(startTime))
	if !ok {
		return false
	}

	// Время должно лежать на сетке слотов и помещаться в окно целиком
	if start < open || (start-open)%domain.SlotStepMinutes != 0 {
		return false
	}

	end := start + durationMinutes
	if end > close {
		return false
	}

	// Полуоткрытые интервалы: граничащие записи не конфликтуют
	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}

		apptStart, ok := parseMinutes(string(appt.StartTime))
		if !ok {
			continue
		}
		apptEnd := apptStart + serviceDurations[appt.ServiceID]

		if apptStart < end && apptEnd > start {
			return false
		}
	}

	// Сегодняшние слоты доступны только строго позже текущего времени
	if isSameDay(date, now) {
		nowMinutes := now.Hour()*60 + now.Minute()
		if start <= nowMinutes {
			return false
		}
	}

	return true
}

// effectiveWindow вычисляет эффективное рабочее окно дня в минутах:
// пересечение часов негосио и переопределения профессионала
func effectiveWindow(businessDay domain.DayHours, professionalDay *domain.DayHours) (int, int, bool) {
	if businessDay.Closed {
		return 0, 0, false
	}

	open, ok := parseMinutes(businessDay.Open)
	if !ok {
		return 0, 0, false
	}
	close, ok := parseMinutes(businessDay.Close)
	if !ok {
		return 0, 0, false
	}

	// Переопределение учитывается, только если день не закрыт и заданы обе
	// границы: частичное расписание означает отсутствие переопределения
	if professionalDay != nil {
		if professionalDay.Closed {
			return 0, 0, false
		}

		profOpen, okOpen := parseMinutes(professionalDay.Open)
		profClose, okClose := parseMinutes(professionalDay.Close)
		if okOpen && okClose {
			if profOpen > open {
				open = profOpen
			}
			if profClose < close {
				close = profClose
			}
		}
	}

	if open >= close {
		return 0, 0, false
	}

	return open, close, true
}

// parseMinutes парсит "HH:MM" в минуты с начала суток
func parseMinutes(s string) (int, bool) {
	ts, err := types.NewTimeStringFromString(s)
	if err != nil {
		return 0, false
	}

	minutes, err := ts.Minutes()
	if err != nil {
		return 0, false
	}

	return minutes, true
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
