package create_appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytopal/Barbershop-BookingService/internal/domain"
	appointmentRepo "github.com/ytopal/Barbershop-BookingService/internal/infra/storage/appointment"
	catalogRepo "github.com/ytopal/Barbershop-BookingService/internal/infra/storage/catalog"
	"github.com/ytopal/Barbershop-BookingService/internal/integrations/mailservice"
	"github.com/ytopal/Barbershop-BookingService/internal/slots"
	"github.com/ytopal/Barbershop-BookingService/pkg/types"
)

// Вторник
var testDate = time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)

// Понедельник, за день до записи
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

// fakeAppointmentStore хранит записи в памяти и воспроизводит
// эксклюзивное ограничение БД на пересечение интервалов
type fakeAppointmentStore struct {
	mu           sync.Mutex
	appointments []*domain.Appointment
	nextID       int64
	createErr    error
}

func (f *fakeAppointmentStore) GetByFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []*domain.Appointment
	for _, a := range f.appointments {
		if !filter.IncludeCancelled && !a.IsActive() {
			continue
		}
		if a.StartDateTime.Before(filter.From) || !a.StartDateTime.Before(filter.To) {
			continue
		}
		copied := *a
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeAppointmentStore) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return nil, f.createErr
	}

	for _, existing := range f.appointments {
		if !existing.IsActive() {
			continue
		}
		if a.StartDateTime.Before(existing.EndDateTime) && a.EndDateTime.After(existing.StartDateTime) {
			return nil, appointmentRepo.ErrSlotTaken
		}
	}

	f.nextID++
	created := *a
	created.ID = f.nextID
	created.CreatedAt = testNow
	created.UpdatedAt = testNow
	f.appointments = append(f.appointments, &created)

	result := created
	return &result, nil
}

type fakeMailClient struct {
	mu   sync.Mutex
	sent []mailservice.BookingEmailRequest
	err  error
}

func (f *fakeMailClient) SendBookingEmailWithGracefulDegradation(_ context.Context, email mailservice.BookingEmailRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, email)
	return f.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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
		BufferAfterMinutes: 5,
		PriceEUR:           27.5,
		IsActive:           true,
	}
}

// Сетка слотов с шагом 35 минут: 10:00, 10:35, 11:10, ...
func tuesdayRule() domain.WeeklyRule {
	return domain.WeeklyRule{
		ID:        1,
		Weekday:   2,
		StartTime: "10:00",
		EndTime:   "18:00",
		IsActive:  true,
	}
}

func newTestUseCase(store *fakeAppointmentStore, mail *fakeMailClient) *UseCase {
	uc := NewUseCase(
		&fakeServiceRepo{service: haircut()},
		&fakeRuleRepo{rules: []domain.WeeklyRule{tuesdayRule()}},
		&fakeExceptionRepo{},
		store,
		mail,
		fakeTxManager{},
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		ServiceID:     1,
		Date:          testDate,
		StartTime:     types.TimeString("10:00"),
		CustomerName:  "Jan de Vries",
		CustomerEmail: "jan@example.com",
	}
}

func TestExecute_Success(t *testing.T) {
	store := &fakeAppointmentStore{}
	mail := &fakeMailClient{}
	uc := newTestUseCase(store, mail)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", resp.ConfirmationCode.String())
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, "Knippen", resp.ServiceName)
	assert.Equal(t, 30, resp.DurationMinutes)

	require.Len(t, store.appointments, 1)
	created := store.appointments[0]
	assert.Equal(t, testDate.Add(10*time.Hour), created.StartDateTime)
	// Конец интервала = начало + длительность услуги, без буфера
	assert.Equal(t, testDate.Add(10*time.Hour+30*time.Minute), created.EndDateTime)

	require.Len(t, mail.sent, 1)
	assert.Equal(t, mailservice.EmailConfirmation, mail.sent[0].Type)
	assert.Equal(t, "jan@example.com", mail.sent[0].CustomerEmail)
}

func TestExecute_SlotAlreadyBooked(t *testing.T) {
	store := &fakeAppointmentStore{}
	mail := &fakeMailClient{}
	uc := newTestUseCase(store, mail)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	second := validRequest()
	second.CustomerName = "Piet Bakker"
	second.CustomerEmail = "piet@example.com"

	_, err = uc.Execute(context.Background(), second)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Len(t, store.appointments, 1)
	// Письмо уходит только по созданной записи
	assert.Len(t, mail.sent, 1)
}

func TestExecute_OverlappingSlotRejected(t *testing.T) {
	// Существующая запись 10:30-11:00 (другая услуга, не по сетке)
	// пересекает слот 10:35 с интервалом 10:35-11:05
	store := &fakeAppointmentStore{
		appointments: []*domain.Appointment{{
			ID:            99,
			ServiceID:     2,
			StartDateTime: testDate.Add(10*time.Hour + 30*time.Minute),
			EndDateTime:   testDate.Add(11 * time.Hour),
			Status:        domain.StatusConfirmed,
		}},
		nextID: 99,
	}
	uc := newTestUseCase(store, &fakeMailClient{})

	req := validRequest()
	req.StartTime = types.TimeString("10:35")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Len(t, store.appointments, 1)
}

func TestExecute_BufferDoesNotBlockBoundarySlot(t *testing.T) {
	// Запись 10:00 занимает [10:00, 10:30): буфер двигает сетку слотов,
	// но не входит в сохраненный интервал
	store := &fakeAppointmentStore{}
	uc := newTestUseCase(store, &fakeMailClient{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	appointments, err := store.GetByFilter(context.Background(), domain.AppointmentsFilter{
		From: testDate,
		To:   testDate.AddDate(0, 0, 1),
	})
	require.NoError(t, err)

	// Услуга без буфера с сеткой 10:00, 10:30, 11:00, ...
	walkIn := &domain.Service{ID: 2, Name: "Tondeuse", DurationMinutes: 30, IsActive: true}

	available, err := slots.ComputeDaySlots(testDate, walkIn,
		[]domain.WeeklyRule{tuesdayRule()}, nil, appointments, testNow)
	require.NoError(t, err)

	assert.NotContains(t, available, testDate.Add(10*time.Hour))
	// Слот, начинающийся ровно в конце записи, доступен
	assert.Contains(t, available, testDate.Add(10*time.Hour+30*time.Minute))
}

func TestExecute_InsertLosesRace(t *testing.T) {
	store := &fakeAppointmentStore{createErr: appointmentRepo.ErrSlotTaken}
	uc := newTestUseCase(store, &fakeMailClient{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_MailFailureDoesNotFailBooking(t *testing.T) {
	store := &fakeAppointmentStore{}
	mail := &fakeMailClient{err: mailservice.ErrServiceDegraded}
	uc := newTestUseCase(store, mail)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Len(t, store.appointments, 1)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentStore{}, &fakeMailClient{})
	uc.serviceRepo = &fakeServiceRepo{err: catalogRepo.ErrServiceNotFound}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InactiveService(t *testing.T) {
	inactive := haircut()
	inactive.IsActive = false

	uc := newTestUseCase(&fakeAppointmentStore{}, &fakeMailClient{})
	uc.serviceRepo = &fakeServiceRepo{service: inactive}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceInactive)
}

func TestExecute_PastDateRejected(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentStore{}, &fakeMailClient{})

	req := validRequest()
	req.Date = testNow.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_BlockedDayRejected(t *testing.T) {
	store := &fakeAppointmentStore{}
	uc := newTestUseCase(store, &fakeMailClient{})
	uc.exceptionRepo = &fakeExceptionRepo{exceptions: []domain.DateException{
		{ID: 1, Date: testDate, Type: domain.ExceptionBlocked},
	}}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, store.appointments)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentStore{}, &fakeMailClient{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing service id", func(r *Request) { r.ServiceID = 0 }},
		{"missing date", func(r *Request) { r.Date = time.Time{} }},
		{"missing start time", func(r *Request) { r.StartTime = "" }},
		{"invalid start time", func(r *Request) { r.StartTime = "25:99" }},
		{"missing customer name", func(r *Request) { r.CustomerName = "  " }},
		{"missing customer email", func(r *Request) { r.CustomerEmail = "" }},
		{"invalid customer email", func(r *Request) { r.CustomerEmail = "not-an-email" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_ConcurrentBookingOnlyOneSucceeds(t *testing.T) {
	store := &fakeAppointmentStore{}
	uc := newTestUseCase(store, &fakeMailClient{})

	const attempts = 8

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			_, errs[idx] = uc.Execute(context.Background(), validRequest())
		}(i)
	}
	wg.Wait()

	var succeeded, conflicted int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		default:
			require.ErrorIs(t, err, ErrSlotNotAvailable)
			conflicted++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, conflicted)
	assert.Len(t, store.appointments, 1)
}
