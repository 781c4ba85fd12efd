package models

import (
	"time"

	"github.com/ytopal/Barbershop-BookingService/internal/domain"
)

// Request модели

// GetDayAppointmentsRequest запрос на получение записей за день
type GetDayAppointmentsRequest struct {
	Date             time.Time `json:"date"`                       // День, за который запрашиваются записи
	ServiceID        *int64    `json:"serviceId,omitempty"`        // Фильтр по услуге (опционально)
	IncludeCancelled bool      `json:"includeCancelled,omitempty"` // Включить отменённые записи
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetDayAppointmentsRequest) ToDomainFilter() domain.AppointmentsFilter {
	return domain.AppointmentsFilter{
		From:             r.Date,
		To:               r.Date.AddDate(0, 0, 1),
		ServiceID:        r.ServiceID,
		IncludeCancelled: r.IncludeCancelled,
	}
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID               int64  `json:"id"`
	ConfirmationCode string `json:"confirmationCode"`
	ServiceID        int64  `json:"serviceId"`
	Date             string `json:"date"`      // "2025-10-15"
	StartTime        string `json:"startTime"` // "10:00"
	EndTime          string `json:"endTime"`   // "10:30", начало + длительность услуги
	DurationMinutes  int    `json:"durationMinutes"`
	Status           string `json:"status"`

	// Денормализованные данные услуги
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`

	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	Notes         *string `json:"notes,omitempty"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:               a.ID,
		ConfirmationCode: a.ConfirmationCode.String(),
		ServiceID:        a.ServiceID,
		Date:             a.StartDateTime.Format(domain.DateFormat),
		StartTime:        a.StartDateTime.Format(domain.TimeFormat),
		EndTime:          a.EndDateTime.Format(domain.TimeFormat),
		DurationMinutes:  a.DurationMinutes,
		Status:           string(a.Status),
		ServiceName:      a.ServiceName,
		ServicePrice:     a.ServicePrice,
		CustomerName:     a.CustomerName,
		CustomerEmail:    a.CustomerEmail,
		CustomerPhone:    a.CustomerPhone,
		Notes:            a.Notes,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}

	if a.CancelledAt != nil {
		cancelled := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelled
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(items []*domain.Appointment) *AppointmentListResponse {
	result := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(items)),
	}

	for _, a := range items {
		if resp := FromDomainAppointment(a); resp != nil {
			result.Appointments = append(result.Appointments, *resp)
		}
	}

	return result
}
