// Package slots содержит чистый движок расчета доступных слотов.
// Движок не хранит состояния и не ходит в БД: все данные (правила,
// исключения, записи, текущее время) передаются параметрами, результат
// полностью детерминирован.
package slots

import (
	"fmt"
	"sort"
	"time"

	"github.com/ytopal/Barbershop-BookingService/internal/domain"
	"github.com/ytopal/Barbershop-BookingService/pkg/types"
)

// Window рабочее окно в пределах одной даты
type Window struct {
	Start time.Time
	End   time.Time
}

// ResolveDayWindows определяет рабочие окна даты.
//
// Приоритет:
//  1. Исключение "blocked" без времени - день полностью закрыт
//  2. Исключение со временем (blocked или extra) - окно исключения
//     ЗАМЕНЯЕТ окна недельных правил (override, не вычитание)
//  3. Активные недельные правила для дня недели (несколько правил -
//     несколько окон, например сплит-смены)
//  4. Ничего не подошло - день закрыт
//
// При нескольких исключениях на одну дату действует первое по порядку.
func ResolveDayWindows(date time.Time, rules []domain.WeeklyRule, exceptions []domain.DateException) ([]Window, error) {
	exc := findException(date, exceptions)

	if exc != nil && exc.BlocksWholeDay() {
		return nil, nil
	}

	if exc != nil && exc.HasWindow() {
		w, err := windowAt(date, *exc.StartTime, *exc.EndTime)
		if err != nil {
			return nil, fmt.Errorf("exception id=%d: %w", exc.ID, err)
		}
		return []Window{w}, nil
	}

	var windows []Window
	for _, rule := range rules {
		if !rule.AppliesTo(date) {
			continue
		}
		w, err := windowAt(date, rule.StartTime, rule.EndTime)
		if err != nil {
			return nil, fmt.Errorf("rule id=%d: %w", rule.ID, err)
		}
		windows = append(windows, w)
	}

	sort.Slice(windows, func(i, j int) bool {
		return windows[i].Start.Before(windows[j].Start)
	})

	return windows, nil
}

// ComputeDaySlots вычисляет упорядоченный список бронируемых времен начала
// для одной даты и одной услуги.
//
// Слоты генерируются от начала каждого рабочего окна с шагом
// duration + buffer. Слот отбрасывается, если:
//   - он уже начался относительно now (предлагаются строго будущие старты)
//   - его интервал [t, t+duration) пересекается с активной записью;
//     касание границ (t == apt.End или t+duration == apt.Start)
//     пересечением НЕ считается
func ComputeDaySlots(
	date time.Time,
	service *domain.Service,
	rules []domain.WeeklyRule,
	exceptions []domain.DateException,
	appointments []*domain.Appointment,
	now time.Time,
) ([]time.Time, error) {
	windows, err := ResolveDayWindows(date, rules, exceptions)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(service.DurationMinutes) * time.Minute
	step := time.Duration(service.SlotStepMinutes()) * time.Minute

	result := make([]time.Time, 0)

	for _, w := range windows {
		for t := w.Start; t.Before(w.End); t = t.Add(step) {
			slotEnd := t.Add(duration)

			// Слот должен целиком помещаться в окно
			if slotEnd.After(w.End) {
				break
			}

			// Только строго будущие старты
			if !t.After(now) {
				continue
			}

			if hasConflict(t, slotEnd, appointments) {
				continue
			}

			result = append(result, t)
		}
	}

	// Окна могут пересекаться (несколько правил на день) -
	// гарантируем возрастающий порядок и отсутствие дублей
	sort.Slice(result, func(i, j int) bool { return result[i].Before(result[j]) })
	return dedupe(result), nil
}

// IsDateOpen проверяет, доступна ли дата для выбора в календаре.
// Дата открыта, если она не в прошлом, не закрыта целодневным blocked
// исключением и при этом для нее есть недельное правило либо extra
// исключение с окном.
func IsDateOpen(date time.Time, rules []domain.WeeklyRule, exceptions []domain.DateException, now time.Time) bool {
	if dateOnly(date).Before(dateOnly(now)) {
		return false
	}

	exc := findException(date, exceptions)
	if exc != nil && exc.BlocksWholeDay() {
		return false
	}

	if exc != nil && exc.Type == domain.ExceptionExtra && exc.HasWindow() {
		return true
	}

	for _, rule := range rules {
		if rule.AppliesTo(date) {
			return true
		}
	}

	return false
}

// ContainsSlot проверяет, что start присутствует в списке слотов.
// Используется как pre-commit guard перед записью бронирования.
func ContainsSlot(slots []time.Time, start time.Time) bool {
	for _, s := range slots {
		if s.Equal(start) {
			return true
		}
	}
	return false
}

// hasConflict проверяет пересечение интервала [start, end) с активными записями
// Пересечение строгое: start < apt.End && end > apt.Start
func hasConflict(start, end time.Time, appointments []*domain.Appointment) bool {
	for _, apt := range appointments {
		if !apt.IsActive() {
			continue
		}
		if apt.Overlaps(start, end) {
			return true
		}
	}
	return false
}

// findException возвращает первое исключение на дату или nil
func findException(date time.Time, exceptions []domain.DateException) *domain.DateException {
	for i := range exceptions {
		if exceptions[i].MatchesDate(date) {
			return &exceptions[i]
		}
	}
	return nil
}

// windowAt привязывает времена "HH:MM" к календарной дате
func windowAt(date time.Time, start, end types.TimeString) (Window, error) {
	s, err := start.At(date)
	if err != nil {
		return Window{}, err
	}
	e, err := end.At(date)
	if err != nil {
		return Window{}, err
	}
	if !s.Before(e) {
		return Window{}, fmt.Errorf("window start %s is not before end %s", start, end)
	}
	return Window{Start: s, End: e}, nil
}

// dateOnly обнуляет время, оставляя только календарную дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dedupe убирает дубли из отсортированного списка
func dedupe(ts []time.Time) []time.Time {
	if len(ts) < 2 {
		return ts
	}
	out := ts[:1]
	for _, t := range ts[1:] {
		if !t.Equal(out[len(out)-1]) {
			out = append(out, t)
		}
	}
	return out
}
