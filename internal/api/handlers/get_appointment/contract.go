package get_appointment

import (
	"context"

	"github.com/google/uuid"

	appointmentModels "github.com/ytopal/Barbershop-BookingService/internal/service/appointments/models"
)

type AppointmentsService interface {
	GetByConfirmationCode(ctx context.Context, code uuid.UUID) (*appointmentModels.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
