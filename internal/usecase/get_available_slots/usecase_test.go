package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytopal/Barbershop-BookingService/internal/domain"
	catalogRepo "github.com/ytopal/Barbershop-BookingService/internal/infra/storage/catalog"
	"github.com/ytopal/Barbershop-BookingService/pkg/types"
)

// Вторник
var testDate = time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)

// Понедельник, за день до запрошенной даты
var testNow = time.Date(2025, 10, 13, 12, 0, 0, 0, time.UTC)

type fakeServiceRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeServiceRepo) GetByID(_ context.Context, _ int64) (*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.service, nil
}

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

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeAppointmentRepo) GetByFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return f.appointments, nil
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

func haircut() *domain.Service {
	return &domain.Service{
		ID:                 1,
		Name:               "Knippen",
		DurationMinutes:    30,
		BufferAfterMinutes: 30,
		PriceEUR:           27.5,
		IsActive:           true,
	}
}

func newTestUseCase(appointments []*domain.Appointment) *UseCase {
	uc := NewUseCase(
		&fakeServiceRepo{service: haircut()},
		&fakeRuleRepo{rules: []domain.WeeklyRule{
			{ID: 1, Weekday: 2, StartTime: "09:00", EndTime: "12:00", IsActive: true},
		}},
		&fakeExceptionRepo{},
		&fakeAppointmentRepo{appointments: appointments},
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestExecute_ReturnsSlotGrid(t *testing.T) {
	uc := newTestUseCase(nil)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate})
	require.NoError(t, err)

	// Шаг слота 60 минут (30 + 30) в окне 09:00-12:00: 09:00, 10:00, 11:00
	require.Len(t, resp.Slots, 3)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("10:00"), resp.Slots[1].StartTime)
	assert.Equal(t, types.TimeString("11:00"), resp.Slots[2].StartTime)

	// Клиенту показывается чистая длительность услуги, без буфера
	assert.Equal(t, 30, resp.Slots[0].DurationMinutes)
}

func TestExecute_ExcludesBookedSlots(t *testing.T) {
	booked := []*domain.Appointment{
		{
			ID:            1,
			StartDateTime: testDate.Add(10 * time.Hour),
			EndDateTime:   testDate.Add(11 * time.Hour),
			Status:        domain.StatusConfirmed,
		},
	}
	uc := newTestUseCase(booked)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 2)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("11:00"), resp.Slots[1].StartTime)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(nil)
	uc.serviceRepo = &fakeServiceRepo{err: catalogRepo.ErrServiceNotFound}

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 42, Date: testDate})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InactiveService(t *testing.T) {
	inactive := haircut()
	inactive.IsActive = false

	uc := newTestUseCase(nil)
	uc.serviceRepo = &fakeServiceRepo{service: inactive}

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate})
	assert.ErrorIs(t, err, ErrServiceInactive)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(nil)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 0, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ServiceID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_PastDateYieldsEmptyGrid(t *testing.T) {
	uc := newTestUseCase(nil)
	uc.timeProvider = &fixedTimeProvider{now: testDate.AddDate(0, 0, 7)}

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}
