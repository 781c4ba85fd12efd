package get_available_slots

import (
	"context"
	"time"

	"github.com/ytopal/Barbershop-BookingService/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	// GetByID получает услугу по идентификатору
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

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

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetByFilter получает записи по фильтру
	GetByFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
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
