package domain

import "time"

// Service represents a bookable service from the catalog (haircut, beard trim, ...).
// Owned by the admin; read-only to the booking flow.
type Service struct {
	ID                 int64
	Name               string
	Description        *string
	DurationMinutes    int     // time the service itself occupies, > 0
	BufferAfterMinutes int     // idle time enforced after the service, >= 0
	PriceEUR           float64 // price in euros
	IsActive           bool
	SortOrder          int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// SlotStepMinutes returns the spacing between consecutive candidate slot
// starts: service duration plus the post-service buffer
func (s *Service) SlotStepMinutes() int {
	return s.DurationMinutes + s.BufferAfterMinutes
}
