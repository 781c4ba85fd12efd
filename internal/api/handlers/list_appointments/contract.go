package list_appointments

import (
	"context"

	appointmentModels "github.com/ytopal/Barbershop-BookingService/internal/service/appointments/models"
)

type AppointmentsService interface {
	GetDayAppointments(ctx context.Context, req *appointmentModels.GetDayAppointmentsRequest) (*appointmentModels.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
