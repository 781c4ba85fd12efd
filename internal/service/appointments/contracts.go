package appointments

import (
	"context"

	"github.com/google/uuid"

	"github.com/ytopal/Barbershop-BookingService/internal/domain"
	"github.com/ytopal/Barbershop-BookingService/internal/integrations/mailservice"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByConfirmationCode(ctx context.Context, code uuid.UUID) (*domain.Appointment, error)
	GetByFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	Cancel(ctx context.Context, id int64) error
}

// MailServiceClient интерфейс клиента сервиса отправки писем
type MailServiceClient interface {
	SendBookingEmailWithGracefulDegradation(ctx context.Context, email mailservice.BookingEmailRequest) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
