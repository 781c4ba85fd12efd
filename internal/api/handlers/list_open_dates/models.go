package list_open_dates

import (
	"github.com/ytopal/Barbershop-BookingService/internal/domain"
	listOpenDates "github.com/ytopal/Barbershop-BookingService/internal/usecase/list_open_dates"
)

// OpenDatesResponse HTTP модель ответа с открытыми датами
type OpenDatesResponse struct {
	From  string   `json:"from"`
	To    string   `json:"to"`
	Dates []string `json:"dates"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *listOpenDates.Response) *OpenDatesResponse {
	result := &OpenDatesResponse{
		From:  resp.From.Format(domain.DateFormat),
		To:    resp.To.Format(domain.DateFormat),
		Dates: make([]string, 0, len(resp.Dates)),
	}

	for _, date := range resp.Dates {
		result.Dates = append(result.Dates, date.Format(domain.DateFormat))
	}

	return result
}
