package list_rules

import (
	"context"

	availabilityModels "github.com/ytopal/Barbershop-BookingService/internal/service/availability/models"
)

type AvailabilityService interface {
	ListRules(ctx context.Context) (*availabilityModels.RuleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
