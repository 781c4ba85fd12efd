package create_appointment

import (
	"context"
	"time"

	"github.com/ytopal/Barbershop-BookingService/internal/domain"
	"github.com/ytopal/Barbershop-BookingService/internal/integrations/mailservice"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// RuleRepository интерфейс репозитория еженедельных правил доступности
type RuleRepository interface {
	List(ctx context.Context, activeOnly bool) ([]domain.WeeklyRule, error)
}

// ExceptionRepository интерфейс репозитория исключений по датам
type ExceptionRepository interface {
	ListByDateRange(ctx context.Context, filter domain.ExceptionsFilter) ([]domain.DateException, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	GetByFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// MailServiceClient интерфейс клиента сервиса отправки писем
type MailServiceClient interface {
	SendBookingEmailWithGracefulDegradation(ctx context.Context, email mailservice.BookingEmailRequest) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
