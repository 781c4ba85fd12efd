package availability

import (
	"context"

	"github.com/ytopal/Barbershop-BookingService/internal/domain"
)

// RuleRepository интерфейс репозитория еженедельных правил доступности
type RuleRepository interface {
	Create(ctx context.Context, rule *domain.WeeklyRule) (*domain.WeeklyRule, error)
	List(ctx context.Context, activeOnly bool) ([]domain.WeeklyRule, error)
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
}

// ExceptionRepository интерфейс репозитория исключений по датам
type ExceptionRepository interface {
	Create(ctx context.Context, exception *domain.DateException) (*domain.DateException, error)
	ListByDateRange(ctx context.Context, filter domain.ExceptionsFilter) ([]domain.DateException, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
