package list_exceptions

import (
	"context"

	availabilityModels "github.com/ytopal/Barbershop-BookingService/internal/service/availability/models"
)

type AvailabilityService interface {
	ListExceptions(ctx context.Context, req *availabilityModels.ListExceptionsRequest) (*availabilityModels.ExceptionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
