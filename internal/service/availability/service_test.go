package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytopal/Barbershop-BookingService/internal/domain"
	exceptionRepo "github.com/ytopal/Barbershop-BookingService/internal/infra/storage/exception"
	ruleRepo "github.com/ytopal/Barbershop-BookingService/internal/infra/storage/rule"
	"github.com/ytopal/Barbershop-BookingService/internal/service/availability/models"
	"github.com/ytopal/Barbershop-BookingService/pkg/ptr"
)

type fakeRuleRepo struct {
	rules  []domain.WeeklyRule
	nextID int64
}

func (f *fakeRuleRepo) Create(_ context.Context, rule *domain.WeeklyRule) (*domain.WeeklyRule, error) {
	f.nextID++
	created := *rule
	created.ID = f.nextID
	f.rules = append(f.rules, created)
	return &created, nil
}

func (f *fakeRuleRepo) List(_ context.Context, _ bool) ([]domain.WeeklyRule, error) {
	return f.rules, nil
}

func (f *fakeRuleRepo) SetActive(_ context.Context, id int64, active bool) error {
	for i := range f.rules {
		if f.rules[i].ID == id {
			f.rules[i].IsActive = active
			return nil
		}
	}
	return ruleRepo.ErrRuleNotFound
}

func (f *fakeRuleRepo) Delete(_ context.Context, id int64) error {
	for i := range f.rules {
		if f.rules[i].ID == id {
			f.rules = append(f.rules[:i], f.rules[i+1:]...)
			return nil
		}
	}
	return ruleRepo.ErrRuleNotFound
}

type fakeExceptionRepo struct {
	exceptions []domain.DateException
	nextID     int64
}

func (f *fakeExceptionRepo) Create(_ context.Context, exception *domain.DateException) (*domain.DateException, error) {
	f.nextID++
	created := *exception
	created.ID = f.nextID
	f.exceptions = append(f.exceptions, created)
	return &created, nil
}

func (f *fakeExceptionRepo) ListByDateRange(_ context.Context, _ domain.ExceptionsFilter) ([]domain.DateException, error) {
	return f.exceptions, nil
}

func (f *fakeExceptionRepo) Delete(_ context.Context, id int64) error {
	for i := range f.exceptions {
		if f.exceptions[i].ID == id {
			f.exceptions = append(f.exceptions[:i], f.exceptions[i+1:]...)
			return nil
		}
	}
	return exceptionRepo.ErrExceptionNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *fakeRuleRepo, *fakeExceptionRepo) {
	rules := &fakeRuleRepo{}
	exceptions := &fakeExceptionRepo{}
	return NewService(rules, exceptions, nopLogger{}), rules, exceptions
}

func TestCreateRule(t *testing.T) {
	svc, _, _ := newTestService()

	resp, err := svc.CreateRule(context.Background(), &models.CreateRuleRequest{
		Weekday:   2,
		StartTime: "09:00",
		EndTime:   "18:00",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, 2, resp.Weekday)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.True(t, resp.IsActive)
}

func TestCreateRule_Validation(t *testing.T) {
	svc, _, _ := newTestService()

	tests := []struct {
		name    string
		req     models.CreateRuleRequest
		wantErr error
	}{
		{"weekday below range", models.CreateRuleRequest{Weekday: -1, StartTime: "09:00", EndTime: "18:00"}, ErrInvalidInput},
		{"weekday above range", models.CreateRuleRequest{Weekday: 7, StartTime: "09:00", EndTime: "18:00"}, ErrInvalidInput},
		{"malformed start time", models.CreateRuleRequest{Weekday: 1, StartTime: "9 uur", EndTime: "18:00"}, ErrInvalidInput},
		{"start equals end", models.CreateRuleRequest{Weekday: 1, StartTime: "09:00", EndTime: "09:00"}, ErrInvalidTimeRange},
		{"start after end", models.CreateRuleRequest{Weekday: 1, StartTime: "18:00", EndTime: "09:00"}, ErrInvalidTimeRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateRule(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSetRuleActive(t *testing.T) {
	svc, rules, _ := newTestService()
	rules.rules = []domain.WeeklyRule{{ID: 1, Weekday: 2, StartTime: "09:00", EndTime: "18:00", IsActive: true}}

	require.NoError(t, svc.SetRuleActive(context.Background(), 1, false))
	assert.False(t, rules.rules[0].IsActive)

	err := svc.SetRuleActive(context.Background(), 99, false)
	assert.ErrorIs(t, err, ErrRuleNotFound)
}

func TestDeleteRule(t *testing.T) {
	svc, rules, _ := newTestService()
	rules.rules = []domain.WeeklyRule{{ID: 1, Weekday: 2, StartTime: "09:00", EndTime: "18:00", IsActive: true}}

	require.NoError(t, svc.DeleteRule(context.Background(), 1))
	assert.Empty(t, rules.rules)

	err := svc.DeleteRule(context.Background(), 1)
	assert.ErrorIs(t, err, ErrRuleNotFound)
}

func TestCreateException_BlockedWholeDay(t *testing.T) {
	svc, _, _ := newTestService()

	resp, err := svc.CreateException(context.Background(), &models.CreateExceptionRequest{
		Date: "2025-12-25",
		Type: "blocked",
		Note: ptr.Ptr("Kerstmis"),
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-12-25", resp.Date)
	assert.Equal(t, "blocked", resp.Type)
	assert.Nil(t, resp.StartTime)
	require.NotNil(t, resp.Note)
	assert.Equal(t, "Kerstmis", *resp.Note)
}

func TestCreateException_ExtraWithWindow(t *testing.T) {
	svc, _, exceptions := newTestService()

	resp, err := svc.CreateException(context.Background(), &models.CreateExceptionRequest{
		Date:      "2025-10-18",
		Type:      "extra",
		StartTime: ptr.Ptr("10:00"),
		EndTime:   ptr.Ptr("14:00"),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.StartTime)
	assert.Equal(t, "10:00", *resp.StartTime)
	require.Len(t, exceptions.exceptions, 1)
	assert.Equal(t, domain.ExceptionExtra, exceptions.exceptions[0].Type)
}

func TestCreateException_Validation(t *testing.T) {
	svc, _, _ := newTestService()

	tests := []struct {
		name    string
		req     models.CreateExceptionRequest
		wantErr error
	}{
		{"invalid date", models.CreateExceptionRequest{Date: "25-12-2025", Type: "blocked"}, ErrInvalidInput},
		{"unknown type", models.CreateExceptionRequest{Date: "2025-12-25", Type: "holiday"}, ErrInvalidInput},
		{"start without end", models.CreateExceptionRequest{Date: "2025-12-25", Type: "blocked", StartTime: ptr.Ptr("10:00")}, ErrInvalidInput},
		{"extra without window", models.CreateExceptionRequest{Date: "2025-12-25", Type: "extra"}, ErrInvalidInput},
		{"start after end", models.CreateExceptionRequest{Date: "2025-12-25", Type: "extra", StartTime: ptr.Ptr("14:00"), EndTime: ptr.Ptr("10:00")}, ErrInvalidTimeRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateException(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDeleteException(t *testing.T) {
	svc, _, exceptions := newTestService()
	exceptions.exceptions = []domain.DateException{
		{ID: 1, Date: time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC), Type: domain.ExceptionBlocked},
	}

	require.NoError(t, svc.DeleteException(context.Background(), 1))
	assert.Empty(t, exceptions.exceptions)

	err := svc.DeleteException(context.Background(), 1)
	assert.ErrorIs(t, err, ErrExceptionNotFound)
}
