package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/ytopal/Barbershop-BookingService/internal/domain"
	exceptionRepo "github.com/ytopal/Barbershop-BookingService/internal/infra/storage/exception"
	ruleRepo "github.com/ytopal/Barbershop-BookingService/internal/infra/storage/rule"
	"github.com/ytopal/Barbershop-BookingService/internal/service/availability/models"
	"github.com/ytopal/Barbershop-BookingService/pkg/types"
)

// Service сервис для управления расписанием доступности
type Service struct {
	ruleRepo      RuleRepository
	exceptionRepo ExceptionRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(ruleRepo RuleRepository, exceptionRepo ExceptionRepository, logger Logger) *Service {
	return &Service{
		ruleRepo:      ruleRepo,
		exceptionRepo: exceptionRepo,
		logger:        logger,
	}
}

// ListRules получает все еженедельные правила, включая неактивные
func (s *Service) ListRules(ctx context.Context) (*models.RuleListResponse, error) {
	s.logger.Info("ListRules: fetching all rules")

	rules, err := s.ruleRepo.List(ctx, false)
	if err != nil {
		s.logger.Error("ListRules: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRules - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListRules: successfully fetched %d rules", len(rules))
	return models.FromDomainRuleList(rules), nil
}

// CreateRule создает еженедельное правило доступности
// Несколько правил на один день недели образуют раздельные смены
func (s *Service) CreateRule(ctx context.Context, req *models.CreateRuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("CreateRule: creating rule weekday=%d, %s-%s", req.Weekday, req.StartTime, req.EndTime)

	if req.Weekday < domain.MinWeekday || req.Weekday > domain.MaxWeekday {
		return nil, fmt.Errorf("%w: weekday must be between %d and %d",
			ErrInvalidInput, domain.MinWeekday, domain.MaxWeekday)
	}

	start, end, err := parseTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		s.logger.Warn("CreateRule: validation failed: %v", err)
		return nil, err
	}

	rule := &domain.WeeklyRule{
		Weekday:   req.Weekday,
		StartTime: start,
		EndTime:   end,
		IsActive:  true,
	}

	created, err := s.ruleRepo.Create(ctx, rule)
	if err != nil {
		s.logger.Error("CreateRule: failed to create rule: %v", err)
		return nil, fmt.Errorf("%w: CreateRule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateRule: successfully created rule id=%d", created.ID)
	return models.FromDomainRule(created), nil
}

// SetRuleActive включает или выключает правило без удаления
func (s *Service) SetRuleActive(ctx context.Context, id int64, active bool) error {
	s.logger.Info("SetRuleActive: rule id=%d, active=%t", id, active)

	if id <= 0 {
		return fmt.Errorf("%w: rule id must be positive", ErrInvalidInput)
	}

	if err := s.ruleRepo.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			s.logger.Warn("SetRuleActive: rule id=%d not found", id)
			return ErrRuleNotFound
		}
		s.logger.Error("SetRuleActive: repository error for rule id=%d: %v", id, err)
		return fmt.Errorf("%w: SetRuleActive - repository error: %v", ErrInternal, err)
	}

	return nil
}

// DeleteRule удаляет правило
// Уже созданные записи при этом не отменяются
func (s *Service) DeleteRule(ctx context.Context, id int64) error {
	s.logger.Info("DeleteRule: deleting rule id=%d", id)

	if id <= 0 {
		return fmt.Errorf("%w: rule id must be positive", ErrInvalidInput)
	}

	if err := s.ruleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			s.logger.Warn("DeleteRule: rule id=%d not found", id)
			return ErrRuleNotFound
		}
		s.logger.Error("DeleteRule: repository error for rule id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteRule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteRule: successfully deleted rule id=%d", id)
	return nil
}

// ListExceptions получает исключения за период (границы включительно)
func (s *Service) ListExceptions(ctx context.Context, req *models.ListExceptionsRequest) (*models.ExceptionListResponse, error) {
	s.logger.Info("ListExceptions: fetching exceptions from=%s, to=%s",
		req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	if req.From.IsZero() || req.To.IsZero() {
		return nil, fmt.Errorf("%w: from and to dates are required", ErrInvalidInput)
	}
	if req.To.Before(req.From) {
		return nil, fmt.Errorf("%w: to date must not be before from date", ErrInvalidInput)
	}

	exceptions, err := s.exceptionRepo.ListByDateRange(ctx, domain.ExceptionsFilter{
		From: req.From,
		To:   req.To,
	})
	if err != nil {
		s.logger.Error("ListExceptions: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListExceptions - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListExceptions: successfully fetched %d exceptions", len(exceptions))
	return models.FromDomainExceptionList(exceptions), nil
}

// CreateException создает исключение по дате
// blocked без времени закрывает весь день, blocked со временем заменяет окна дня,
// extra открывает дополнительное окно в закрытый по правилам день
func (s *Service) CreateException(ctx context.Context, req *models.CreateExceptionRequest) (*models.ExceptionResponse, error) {
	s.logger.Info("CreateException: creating exception date=%s, type=%s", req.Date, req.Type)

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	exceptionType := domain.ExceptionType(req.Type)
	if exceptionType != domain.ExceptionBlocked && exceptionType != domain.ExceptionExtra {
		return nil, fmt.Errorf("%w: type must be %q or %q",
			ErrInvalidInput, domain.ExceptionBlocked, domain.ExceptionExtra)
	}

	// Время задаётся либо парой, либо не задаётся вовсе
	if (req.StartTime == nil) != (req.EndTime == nil) {
		return nil, fmt.Errorf("%w: startTime and endTime must be set together", ErrInvalidInput)
	}

	// Дополнительное окно без времени не имеет смысла
	if exceptionType == domain.ExceptionExtra && req.StartTime == nil {
		return nil, fmt.Errorf("%w: extra exception requires startTime and endTime", ErrInvalidInput)
	}

	exception := &domain.DateException{
		Date: date,
		Type: exceptionType,
		Note: req.Note,
	}

	if req.StartTime != nil {
		start, end, err := parseTimeRange(*req.StartTime, *req.EndTime)
		if err != nil {
			s.logger.Warn("CreateException: validation failed: %v", err)
			return nil, err
		}
		exception.StartTime = &start
		exception.EndTime = &end
	}

	if req.Note != nil && len(*req.Note) > domain.MaxExceptionNoteLength {
		return nil, fmt.Errorf("%w: note must be at most %d characters", ErrInvalidInput, domain.MaxExceptionNoteLength)
	}

	created, err := s.exceptionRepo.Create(ctx, exception)
	if err != nil {
		s.logger.Error("CreateException: failed to create exception: %v", err)
		return nil, fmt.Errorf("%w: CreateException - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateException: successfully created exception id=%d", created.ID)
	return models.FromDomainException(created), nil
}

// DeleteException удаляет исключение
func (s *Service) DeleteException(ctx context.Context, id int64) error {
	s.logger.Info("DeleteException: deleting exception id=%d", id)

	if id <= 0 {
		return fmt.Errorf("%w: exception id must be positive", ErrInvalidInput)
	}

	if err := s.exceptionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, exceptionRepo.ErrExceptionNotFound) {
			s.logger.Warn("DeleteException: exception id=%d not found", id)
			return ErrExceptionNotFound
		}
		s.logger.Error("DeleteException: repository error for exception id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteException - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteException: successfully deleted exception id=%d", id)
	return nil
}

// parseTimeRange парсит пару "HH:MM" и проверяет, что начало раньше конца
func parseTimeRange(startStr, endStr string) (types.TimeString, types.TimeString, error) {
	start, err := types.NewTimeStringFromString(startStr)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	end, err := types.NewTimeStringFromString(endStr)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	if !start.IsBefore(end) {
		return "", "", fmt.Errorf("%w: startTime must be before endTime", ErrInvalidTimeRange)
	}

	return start, end, nil
}
