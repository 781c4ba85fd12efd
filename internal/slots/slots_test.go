package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytopal/Barbershop-BookingService/internal/domain"
	"github.com/ytopal/Barbershop-BookingService/pkg/ptr"
	"github.com/ytopal/Barbershop-BookingService/pkg/types"
)

// Вторник 14 октября 2025
var testDate = time.Date(2025, 10, 14, 0, 0, 0, 0, time.Local)

func at(hour, minute int) time.Time {
	return time.Date(2025, 10, 14, hour, minute, 0, 0, time.Local)
}

func haircut() *domain.Service {
	return &domain.Service{
		ID:                 1,
		Name:               "Knippen",
		DurationMinutes:    30,
		BufferAfterMinutes: 5,
		PriceEUR:           25,
		IsActive:           true,
	}
}

func tuesdayRule(start, end types.TimeString) domain.WeeklyRule {
	return domain.WeeklyRule{ID: 1, Weekday: 2, StartTime: start, EndTime: end, IsActive: true}
}

func confirmed(start, end time.Time) *domain.Appointment {
	return &domain.Appointment{
		ServiceID:     1,
		StartDateTime: start,
		EndDateTime:   end,
		Status:        domain.StatusConfirmed,
	}
}

func TestComputeDaySlots_NoRuleNoException(t *testing.T) {
	got, err := ComputeDaySlots(testDate, haircut(), nil, nil, nil, at(8, 0))

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestComputeDaySlots_WholeDayBlocked(t *testing.T) {
	rules := []domain.WeeklyRule{tuesdayRule("09:00", "18:00")}
	exceptions := []domain.DateException{
		{ID: 1, Date: testDate, Type: domain.ExceptionBlocked},
	}

	got, err := ComputeDaySlots(testDate, haircut(), rules, exceptions, nil, at(8, 0))

	require.NoError(t, err)
	assert.Empty(t, got, "целодневный blocked перекрывает недельные правила")
}

func TestComputeDaySlots_FullGrid(t *testing.T) {
	// Правило 09:00-18:00, услуга 30 мин + 5 мин буфер => шаг 35 минут
	rules := []domain.WeeklyRule{tuesdayRule("09:00", "18:00")}

	got, err := ComputeDaySlots(testDate, haircut(), rules, nil, nil, at(8, 0))

	require.NoError(t, err)
	want := []time.Time{
		at(9, 0), at(9, 35), at(10, 10), at(10, 45), at(11, 20), at(11, 55),
		at(12, 30), at(13, 5), at(13, 40), at(14, 15), at(14, 50), at(15, 25),
		at(16, 0), at(16, 35), at(17, 10),
	}
	assert.Equal(t, want, got, "последний слот - тот, чей конец <= 18:00")
}

func TestComputeDaySlots_Idempotent(t *testing.T) {
	rules := []domain.WeeklyRule{tuesdayRule("09:00", "18:00")}
	appointments := []*domain.Appointment{confirmed(at(10, 0), at(10, 30))}

	first, err := ComputeDaySlots(testDate, haircut(), rules, nil, appointments, at(8, 0))
	require.NoError(t, err)

	second, err := ComputeDaySlots(testDate, haircut(), rules, nil, appointments, at(8, 0))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeDaySlots_OverlapExcluded(t *testing.T) {
	rules := []domain.WeeklyRule{tuesdayRule("09:00", "18:00")}
	// Запись [10:00, 10:30)
	appointments := []*domain.Appointment{confirmed(at(10, 0), at(10, 30))}

	got, err := ComputeDaySlots(testDate, haircut(), rules, nil, appointments, at(8, 0))

	require.NoError(t, err)
	// 09:35 заканчивается в 10:05 - пересекается; 10:10 начинается внутри записи
	assert.NotContains(t, got, at(9, 35))
	assert.NotContains(t, got, at(10, 0))
	assert.NotContains(t, got, at(10, 10))
	assert.Contains(t, got, at(9, 0))
	assert.Contains(t, got, at(10, 45))
}

func TestComputeDaySlots_BoundaryTouchIsNotConflict(t *testing.T) {
	// Без буфера сетка попадает ровно на границы записи
	service := haircut()
	service.BufferAfterMinutes = 0

	rules := []domain.WeeklyRule{tuesdayRule("09:00", "18:00")}
	appointments := []*domain.Appointment{confirmed(at(10, 0), at(10, 30))}

	got, err := ComputeDaySlots(testDate, service, rules, nil, appointments, at(8, 0))

	require.NoError(t, err)
	// Слот 09:30 заканчивается ровно в 10:00 - не конфликт
	assert.Contains(t, got, at(9, 30))
	// Слот 10:30 начинается ровно в конце записи - не конфликт
	assert.Contains(t, got, at(10, 30))
	assert.NotContains(t, got, at(10, 0))
}

func TestComputeDaySlots_PastSlotsExcluded(t *testing.T) {
	rules := []domain.WeeklyRule{tuesdayRule("09:00", "18:00")}

	got, err := ComputeDaySlots(testDate, haircut(), rules, nil, nil, at(9, 10))

	require.NoError(t, err)
	assert.NotContains(t, got, at(9, 0), "уже начавшийся слот не предлагается")
	assert.Contains(t, got, at(9, 35))
}

func TestComputeDaySlots_ParsedDateMatchesServerClock(t *testing.T) {
	// Сервер в поясе UTC+2: дата из запроса разбирается в поясе сервера,
	// иначе отсечка уже начавшихся слотов смещается на величину смещения
	restore := time.Local
	time.Local = time.FixedZone("UTC+2", 2*60*60)
	defer func() { time.Local = restore }()

	date, err := domain.ParseDate("2025-10-14")
	require.NoError(t, err)

	rules := []domain.WeeklyRule{tuesdayRule("09:00", "18:00")}
	now := time.Date(2025, 10, 14, 9, 10, 0, 0, time.Local)

	got, err := ComputeDaySlots(date, haircut(), rules, nil, nil, now)

	require.NoError(t, err)
	assert.NotContains(t, got, time.Date(2025, 10, 14, 9, 0, 0, 0, time.Local),
		"в 09:10 по часам сервера слот 09:00 уже начался")
	assert.Contains(t, got, time.Date(2025, 10, 14, 9, 35, 0, 0, time.Local))
}

func TestComputeDaySlots_SlotStartingExactlyNowExcluded(t *testing.T) {
	rules := []domain.WeeklyRule{tuesdayRule("09:00", "18:00")}

	got, err := ComputeDaySlots(testDate, haircut(), rules, nil, nil, at(9, 0))

	require.NoError(t, err)
	assert.NotContains(t, got, at(9, 0), "предлагаются строго будущие старты")
}

func TestComputeDaySlots_ExtraExceptionOpensClosedWeekday(t *testing.T) {
	// Недельных правил нет вообще - день закрыт по умолчанию
	exceptions := []domain.DateException{
		{
			ID:        1,
			Date:      testDate,
			Type:      domain.ExceptionExtra,
			StartTime: ptr.Ptr(types.TimeString("10:00")),
			EndTime:   ptr.Ptr(types.TimeString("14:00")),
		},
	}

	got, err := ComputeDaySlots(testDate, haircut(), nil, exceptions, nil, at(8, 0))

	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, at(10, 0), got[0])
	last := got[len(got)-1]
	assert.False(t, last.Add(30*time.Minute).After(at(14, 0)), "слоты не выходят за окно исключения")
}

func TestComputeDaySlots_ExceptionWindowReplacesRule(t *testing.T) {
	rules := []domain.WeeklyRule{tuesdayRule("09:00", "18:00")}
	exceptions := []domain.DateException{
		{
			ID:        1,
			Date:      testDate,
			Type:      domain.ExceptionBlocked,
			StartTime: ptr.Ptr(types.TimeString("12:00")),
			EndTime:   ptr.Ptr(types.TimeString("15:00")),
		},
	}

	got, err := ComputeDaySlots(testDate, haircut(), rules, exceptions, nil, at(8, 0))

	require.NoError(t, err)
	// Окно исключения замещает окно правила, а не вычитается из него
	require.NotEmpty(t, got)
	assert.Equal(t, at(12, 0), got[0])
	assert.NotContains(t, got, at(9, 0))
}

func TestComputeDaySlots_CancelledAppointmentFreesInterval(t *testing.T) {
	rules := []domain.WeeklyRule{tuesdayRule("09:00", "18:00")}

	apt := confirmed(at(10, 45), at(11, 15))
	appointments := []*domain.Appointment{apt}

	got, err := ComputeDaySlots(testDate, haircut(), rules, nil, appointments, at(8, 0))
	require.NoError(t, err)
	assert.NotContains(t, got, at(10, 45))

	// Отмена записи немедленно освобождает интервал
	apt.Status = domain.StatusCancelled

	got, err = ComputeDaySlots(testDate, haircut(), rules, nil, appointments, at(8, 0))
	require.NoError(t, err)
	assert.Contains(t, got, at(10, 45))
}

func TestComputeDaySlots_SplitShifts(t *testing.T) {
	rules := []domain.WeeklyRule{
		{ID: 1, Weekday: 2, StartTime: "09:00", EndTime: "12:00", IsActive: true},
		{ID: 2, Weekday: 2, StartTime: "14:00", EndTime: "18:00", IsActive: true},
	}

	got, err := ComputeDaySlots(testDate, haircut(), rules, nil, nil, at(8, 0))

	require.NoError(t, err)
	assert.Contains(t, got, at(9, 0))
	assert.Contains(t, got, at(14, 0))
	// Обеденный перерыв не генерирует слотов
	for _, s := range got {
		inBreak := !s.Before(at(12, 0)) && s.Before(at(14, 0))
		assert.False(t, inBreak, "слот %s попал в перерыв", s)
	}
}

func TestComputeDaySlots_InactiveRuleIgnored(t *testing.T) {
	rule := tuesdayRule("09:00", "18:00")
	rule.IsActive = false

	got, err := ComputeDaySlots(testDate, haircut(), []domain.WeeklyRule{rule}, nil, nil, at(8, 0))

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestResolveDayWindows_FirstExceptionWins(t *testing.T) {
	exceptions := []domain.DateException{
		{
			ID: 1, Date: testDate, Type: domain.ExceptionExtra,
			StartTime: ptr.Ptr(types.TimeString("10:00")),
			EndTime:   ptr.Ptr(types.TimeString("12:00")),
		},
		{ID: 2, Date: testDate, Type: domain.ExceptionBlocked},
	}

	windows, err := ResolveDayWindows(testDate, nil, exceptions)

	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, at(10, 0), windows[0].Start)
	assert.Equal(t, at(12, 0), windows[0].End)
}

func TestIsDateOpen(t *testing.T) {
	rules := []domain.WeeklyRule{tuesdayRule("09:00", "18:00")}
	now := at(8, 0)

	tests := []struct {
		name       string
		date       time.Time
		rules      []domain.WeeklyRule
		exceptions []domain.DateException
		want       bool
	}{
		{
			name:  "дата в прошлом закрыта",
			date:  testDate.AddDate(0, 0, -7),
			rules: rules,
			want:  false,
		},
		{
			name:  "день с правилом открыт",
			date:  testDate,
			rules: rules,
			want:  true,
		},
		{
			name: "день без правила закрыт",
			// Среда - правил нет
			date:  testDate.AddDate(0, 0, 1),
			rules: rules,
			want:  false,
		},
		{
			name:  "целодневный blocked закрывает день с правилом",
			date:  testDate,
			rules: rules,
			exceptions: []domain.DateException{
				{ID: 1, Date: testDate, Type: domain.ExceptionBlocked},
			},
			want: false,
		},
		{
			name: "extra исключение открывает день без правила",
			date: testDate.AddDate(0, 0, 1),
			exceptions: []domain.DateException{
				{
					ID: 1, Date: testDate.AddDate(0, 0, 1), Type: domain.ExceptionExtra,
					StartTime: ptr.Ptr(types.TimeString("10:00")),
					EndTime:   ptr.Ptr(types.TimeString("14:00")),
				},
			},
			want: true,
		},
		{
			name:  "blocked с окном не закрывает день целиком",
			date:  testDate,
			rules: rules,
			exceptions: []domain.DateException{
				{
					ID: 1, Date: testDate, Type: domain.ExceptionBlocked,
					StartTime: ptr.Ptr(types.TimeString("12:00")),
					EndTime:   ptr.Ptr(types.TimeString("15:00")),
				},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsDateOpen(tt.date, tt.rules, tt.exceptions, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContainsSlot(t *testing.T) {
	slots := []time.Time{at(9, 0), at(9, 35), at(10, 10)}

	assert.True(t, ContainsSlot(slots, at(9, 35)))
	assert.False(t, ContainsSlot(slots, at(9, 36)))
	assert.False(t, ContainsSlot(nil, at(9, 0)))
}
