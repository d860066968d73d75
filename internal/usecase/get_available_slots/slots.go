package get_available_slots

import (
	"time"

	"github.com/agendavip/booking-service/internal/domain"
	"github.com/agendavip/booking-service/pkg/types"
)

// Все вычисления внутри движка ведутся в минутах с начала суток.
// Для корректных "HH:MM" строк это эквивалентно лексикографическому
// сравнению, но числа не требуют аккуратности с ведущими нулями

// timeWindow эффективное рабочее окно дня в минутах с начала суток
type timeWindow struct {
	open  int
	close int
}

// busyInterval занятый интервал [start, end) в минутах с начала суток
type busyInterval struct {
	start int
	end   int
}

// effectiveWindow вычисляет эффективное рабочее окно дня:
// пересечение часов негосио и переопределения профессионала
//
// Движок работает по принципу fail-closed: закрытый день, отсутствующее
// расписание или некорректный формат часов негосио дают пустое окно, а не
// ошибку. Лучше не показать свободный слот, чем принять запись в нерабочее
// время. Исключение - неполное переопределение профессионала: оно
// игнорируется, и день живёт по часам негосио
func effectiveWindow(businessDay domain.DayHours, professionalDay *domain.DayHours) (timeWindow, bool) {
	if businessDay.Closed {
		return timeWindow{}, false
	}

	open, ok := parseMinutes(businessDay.Open)
	if !ok {
		return timeWindow{}, false
	}
	close, ok := parseMinutes(businessDay.Close)
	if !ok {
		return timeWindow{}, false
	}

	// Переопределение профессионала сужает окно негосио, но не расширяет его.
	// Переопределение учитывается, только если день не закрыт и заданы ОБЕ
	// границы: частичное расписание (день без границ) означает отсутствие
	// переопределения, и день наследует часы негосио как есть
	if professionalDay != nil {
		if professionalDay.Closed {
			return timeWindow{}, false
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

	// Пустое или вырожденное пересечение - слотов нет
	if open >= close {
		return timeWindow{}, false
	}

	return timeWindow{open: open, close: close}, true
}

// generateCandidateSlots генерирует кандидатов с фиксированным шагом
// Шаг всегда domain.SlotStepMinutes независимо от длительности услуги
// Кандидат допустим, только если услуга целиком помещается до закрытия
func generateCandidateSlots(window timeWindow, durationMinutes int) []int {
	candidates := make([]int, 0)

	for start := window.open; start+durationMinutes <= window.close; start += domain.SlotStepMinutes {
		candidates = append(candidates, start)
	}

	return candidates
}

// buildBusyIntervals строит занятые интервалы из существующих записей
// Каждая запись блокирует интервал длительностью СВОЕЙ услуги, а не услуги
// из запроса. Если длительность услуги записи неизвестна, интервал
// вырождается в точку и блокирует только слоты, строго содержащие её
func buildBusyIntervals(appointments []*domain.Appointment, serviceDurations map[int64]int) []busyInterval {
	intervals := make([]busyInterval, 0, len(appointments))

	for _, appt := range appointments {
		// Отменённые записи и неявки слоты не блокируют
		if !appt.IsActive() {
			continue
		}

		start, ok := parseMinutes(string(appt.StartTime))
		if !ok {
			continue
		}

		intervals = append(intervals, busyInterval{
			start: start,
			end:   start + serviceDurations[appt.ServiceID],
		})
	}

	return intervals
}

// filterAvailableSlots оставляет кандидатов, не пересекающихся ни с одним занятым интервалом
//
// Интервалы полуоткрытые: запись 10:00-10:30 и слот, начинающийся в 10:30,
// НЕ конфликтуют. Пересечение есть, только если начало занятого интервала
// СТРОГО раньше конца слота И конец занятого интервала СТРОГО позже начала слота
func filterAvailableSlots(candidates []int, durationMinutes int, busy []busyInterval) []int {
	available := make([]int, 0, len(candidates))

	for _, slotStart := range candidates {
		slotEnd := slotStart + durationMinutes

		overlaps := false
		for _, interval := range busy {
			if interval.start < slotEnd && interval.end > slotStart {
				overlaps = true
				break
			}
		}

		if !overlaps {
			available = append(available, slotStart)
		}
	}

	return available
}

// applySameDayCutoff убирает слоты, не начинающиеся строго позже текущего времени
// Применяется только когда запрошенная дата - сегодня
func applySameDayCutoff(slots []int, now time.Time) []int {
	nowMinutes := now.Hour()*60 + now.Minute()

	filtered := make([]int, 0, len(slots))
	for _, slot := range slots {
		if slot > nowMinutes {
			filtered = append(filtered, slot)
		}
	}

	return filtered
}

// toTimeStrings конвертирует минуты обратно в "HH:MM"
func toTimeStrings(slots []int) []types.TimeString {
	result := make([]types.TimeString, 0, len(slots))

	for _, slot := range slots {
		ts, err := types.NewTimeStringFromMinutes(slot)
		if err != nil {
			continue
		}
		result = append(result, ts)
	}

	return result
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
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
