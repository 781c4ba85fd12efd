package list_open_dates

import (
	"context"
	"fmt"
	"time"

	"github.com/ytopal/Barbershop-BookingService/internal/domain"
	"github.com/ytopal/Barbershop-BookingService/internal/slots"
)

// UseCase use case для получения дат, открытых для записи
type UseCase struct {
	ruleRepo      RuleRepository
	exceptionRepo ExceptionRepository
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(ruleRepo RuleRepository, exceptionRepo ExceptionRepository, logger Logger) *UseCase {
	return &UseCase{
		ruleRepo:      ruleRepo,
		exceptionRepo: exceptionRepo,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case получения открытых дат
//
// Дата считается открытой, если на неё существует хотя бы одно окно работы:
// ни одна запись при этом не проверяется, заполненность дня не учитывается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ListOpenDates: from=%s, to=%s",
		req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ListOpenDates: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем активные еженедельные правила
	rules, err := uc.ruleRepo.List(ctx, true)
	if err != nil {
		uc.logger.Error("ListOpenDates: failed to get rules: %v", err)
		return nil, fmt.Errorf("%w: failed to get rules: %v", ErrInternal, err)
	}

	// 4. Получаем исключения на весь диапазон одним запросом
	exceptions, err := uc.exceptionRepo.ListByDateRange(ctx, domain.ExceptionsFilter{
		From: req.From,
		To:   req.To,
	})
	if err != nil {
		uc.logger.Error("ListOpenDates: failed to get exceptions: %v", err)
		return nil, fmt.Errorf("%w: failed to get exceptions: %v", ErrInternal, err)
	}

	// 5. Проверяем каждую дату диапазона
	dates := make([]time.Time, 0)
	for d := req.From; !d.After(req.To); d = d.AddDate(0, 0, 1) {
		if slots.IsDateOpen(d, rules, exceptions, now) {
			dates = append(dates, d)
		}
	}

	uc.logger.Info("ListOpenDates: found %d open dates in range %s..%s",
		len(dates), req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	return &Response{
		From:  req.From,
		To:    req.To,
		Dates: dates,
	}, nil
}
