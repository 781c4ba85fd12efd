package list_open_dates

import (
	"fmt"

	"github.com/ytopal/Barbershop-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.From.IsZero() {
		return fmt.Errorf("%w: from date is required", ErrInvalidInput)
	}

	if req.To.IsZero() {
		return fmt.Errorf("%w: to date is required", ErrInvalidInput)
	}

	if req.To.Before(req.From) {
		return fmt.Errorf("%w: to date must not be before from date", ErrInvalidInput)
	}

	// Ограничиваем диапазон, чтобы не перебирать произвольно большие интервалы
	days := int(req.To.Sub(req.From).Hours()/24) + 1
	if days > domain.MaxOpenDatesRangeDays {
		return fmt.Errorf("%w: at most %d days per request", ErrRangeTooLarge, domain.MaxOpenDatesRangeDays)
	}

	return nil
}
