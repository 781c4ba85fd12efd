package list_open_dates

import (
	"context"

	listOpenDates "github.com/ytopal/Barbershop-BookingService/internal/usecase/list_open_dates"
)

type ListOpenDatesUseCase interface {
	Execute(ctx context.Context, req *listOpenDates.Request) (*listOpenDates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
