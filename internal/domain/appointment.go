package domain

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a booked appointment for the single barber chair.
// Appointments are never physically deleted: cancelled ones are excluded
// from conflict checks but retained for audit.
type Appointment struct {
	ID               int64
	ConfirmationCode uuid.UUID // public reference used in emails and the confirmation page
	ServiceID        int64

	StartDateTime time.Time
	EndDateTime   time.Time // StartDateTime + service duration (buffer only affects the slot grid step)

	CustomerName  string
	CustomerEmail string
	CustomerPhone *string
	Notes         *string

	Status AppointmentStatus

	// Denormalized service data for history and notifications
	ServiceName     string
	ServicePrice    float64
	DurationMinutes int

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive returns true if the appointment still occupies its interval
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusConfirmed
}

// Overlaps reports whether the appointment's [start, end) interval overlaps
// the given [start, end) interval. Boundary touch is not an overlap.
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return a.StartDateTime.Before(end) && a.EndDateTime.After(start)
}

// AppointmentsFilter типизированный фильтр выборки записей
// Передается в репозиторий вместо строкового построения запроса
type AppointmentsFilter struct {
	From             time.Time // Начало периода (включительно)
	To               time.Time // Конец периода (исключительно)
	ServiceID        *int64    // Фильтр по услуге (опционально)
	IncludeCancelled bool      // Включать ли отмененные записи
}
