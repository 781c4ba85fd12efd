package create_rule

import (
	"context"

	availabilityModels "github.com/ytopal/Barbershop-BookingService/internal/service/availability/models"
)

type AvailabilityService interface {
	CreateRule(ctx context.Context, req *availabilityModels.CreateRuleRequest) (*availabilityModels.RuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
