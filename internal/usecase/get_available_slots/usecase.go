package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/ytopal/Barbershop-BookingService/internal/domain"
	catalogRepo "github.com/ytopal/Barbershop-BookingService/internal/infra/storage/catalog"
	"github.com/ytopal/Barbershop-BookingService/internal/slots"
	"github.com/ytopal/Barbershop-BookingService/pkg/types"
)

// UseCase use case для получения доступных слотов записи на услугу
type UseCase struct {
	serviceRepo     ServiceRepository
	ruleRepo        RuleRepository
	exceptionRepo   ExceptionRepository
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	serviceRepo ServiceRepository,
	ruleRepo RuleRepository,
	exceptionRepo ExceptionRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:     serviceRepo,
		ruleRepo:        ruleRepo,
		exceptionRepo:   exceptionRepo,
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Проверяем, что услуга доступна для записи
	if !service.IsActive {
		uc.logger.Warn("GetAvailableSlots: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	// 5. Получаем активные еженедельные правила
	rules, err := uc.ruleRepo.List(ctx, true)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get rules: %v", err)
		return nil, fmt.Errorf("%w: failed to get rules: %v", ErrInternal, err)
	}

	// 6. Получаем исключения на запрошенную дату
	exceptions, err := uc.exceptionRepo.ListByDateRange(ctx, domain.ExceptionsFilter{
		From: req.Date,
		To:   req.Date,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get exceptions: %v", err)
		return nil, fmt.Errorf("%w: failed to get exceptions: %v", ErrInternal, err)
	}

	// 7. Получаем активные записи на эту дату
	dayStart := req.Date
	appointments, err := uc.appointmentRepo.GetByFilter(ctx, domain.AppointmentsFilter{
		From: dayStart,
		To:   dayStart.AddDate(0, 0, 1),
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 8. Вычисляем доступные слоты
	starts, err := slots.ComputeDaySlots(req.Date, service, rules, exceptions, appointments, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to compute slots: %v", err)
		return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}

	result := make([]Slot, 0, len(starts))
	for _, start := range starts {
		result = append(result, Slot{
			StartTime:       types.NewTimeString(start),
			DurationMinutes: service.DurationMinutes,
		})
	}

	uc.logger.Info("GetAvailableSlots: computed %d slots for service=%d, date=%s",
		len(result), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:      req.Date,
		ServiceID: req.ServiceID,
		Slots:     result,
	}, nil
}
