package list_open_dates

import (
	"context"
	"time"

	"github.com/ytopal/Barbershop-BookingService/internal/domain"
)

// RuleRepository интерфейс репозитория еженедельных правил доступности
type RuleRepository interface {
	// List получает правила доступности; activeOnly ограничивает выборку активными
	List(ctx context.Context, activeOnly bool) ([]domain.WeeklyRule, error)
}

// ExceptionRepository интерфейс репозитория исключений по датам
type ExceptionRepository interface {
	// ListByDateRange получает исключения в диапазоне дат (включительно)
	ListByDateRange(ctx context.Context, filter domain.ExceptionsFilter) ([]domain.DateException, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
