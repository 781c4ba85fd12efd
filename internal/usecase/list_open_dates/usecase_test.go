package list_open_dates

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytopal/Barbershop-BookingService/internal/domain"
	"github.com/ytopal/Barbershop-BookingService/pkg/types"
)

// Понедельник
var testNow = time.Date(2025, 10, 13, 8, 0, 0, 0, time.UTC)

type fakeRuleRepo struct {
	rules []domain.WeeklyRule
}

func (f *fakeRuleRepo) List(_ context.Context, _ bool) ([]domain.WeeklyRule, error) {
	return f.rules, nil
}

type fakeExceptionRepo struct {
	exceptions []domain.DateException
}

func (f *fakeExceptionRepo) ListByDateRange(_ context.Context, _ domain.ExceptionsFilter) ([]domain.DateException, error) {
	return f.exceptions, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(rules []domain.WeeklyRule, exceptions []domain.DateException) *UseCase {
	uc := NewUseCase(
		&fakeRuleRepo{rules: rules},
		&fakeExceptionRepo{exceptions: exceptions},
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func date(day int) time.Time {
	return time.Date(2025, 10, day, 0, 0, 0, 0, time.UTC)
}

func TestExecute_OpenDatesFollowWeeklyRules(t *testing.T) {
	// Работаем по вторникам и четвергам
	uc := newTestUseCase([]domain.WeeklyRule{
		{ID: 1, Weekday: 2, StartTime: "09:00", EndTime: "18:00", IsActive: true},
		{ID: 2, Weekday: 4, StartTime: "09:00", EndTime: "18:00", IsActive: true},
	}, nil)

	// Понедельник 13-е .. воскресенье 19-е
	resp, err := uc.Execute(context.Background(), &Request{From: date(13), To: date(19)})
	require.NoError(t, err)

	require.Len(t, resp.Dates, 2)
	assert.Equal(t, date(14), resp.Dates[0])
	assert.Equal(t, date(16), resp.Dates[1])
}

func TestExecute_BlockedDateClosed(t *testing.T) {
	uc := newTestUseCase(
		[]domain.WeeklyRule{{ID: 1, Weekday: 2, StartTime: "09:00", EndTime: "18:00", IsActive: true}},
		[]domain.DateException{{ID: 1, Date: date(14), Type: domain.ExceptionBlocked}},
	)

	resp, err := uc.Execute(context.Background(), &Request{From: date(13), To: date(19)})
	require.NoError(t, err)
	assert.Empty(t, resp.Dates)
}

func TestExecute_ExtraExceptionOpensDate(t *testing.T) {
	start := types.TimeString("10:00")
	end := types.TimeString("14:00")
	uc := newTestUseCase(nil, []domain.DateException{
		{ID: 1, Date: date(18), Type: domain.ExceptionExtra, StartTime: &start, EndTime: &end},
	})

	resp, err := uc.Execute(context.Background(), &Request{From: date(13), To: date(19)})
	require.NoError(t, err)

	require.Len(t, resp.Dates, 1)
	assert.Equal(t, date(18), resp.Dates[0])
}

func TestExecute_PastDatesExcluded(t *testing.T) {
	// Правило на каждый день недели
	var rules []domain.WeeklyRule
	for wd := 0; wd <= 6; wd++ {
		rules = append(rules, domain.WeeklyRule{
			ID: int64(wd + 1), Weekday: wd, StartTime: "09:00", EndTime: "18:00", IsActive: true,
		})
	}
	uc := newTestUseCase(rules, nil)

	resp, err := uc.Execute(context.Background(), &Request{From: date(10), To: date(15)})
	require.NoError(t, err)

	// 10-12 октября в прошлом, сегодня (13-е) и будущее открыты
	require.Len(t, resp.Dates, 3)
	assert.Equal(t, date(13), resp.Dates[0])
	assert.Equal(t, date(15), resp.Dates[2])
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(nil, nil)

	_, err := uc.Execute(context.Background(), &Request{To: date(15)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{From: date(15)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{From: date(15), To: date(14)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		From: date(13),
		To:   date(13).AddDate(0, 0, domain.MaxOpenDatesRangeDays),
	})
	assert.ErrorIs(t, err, ErrRangeTooLarge)
}
