package create_appointment

import (
	"context"

	createAppointment "github.com/ytopal/Barbershop-BookingService/internal/usecase/create_appointment"
)

type CreateAppointmentUseCase interface {
	Execute(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error)
}

// BookingMetrics доменные счетчики бронирований
type BookingMetrics interface {
	BookingCreated()
	BookingConflict()
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
