package domain

import (
	"time"

	"github.com/ytopal/Barbershop-BookingService/pkg/types"
)

// ExceptionType represents the kind of date-specific availability override
type ExceptionType string

const (
	// ExceptionBlocked closes availability: the whole date when no times are
	// given, or replaces the day's window with the given sub-window
	ExceptionBlocked ExceptionType = "blocked"

	// ExceptionExtra opens an additional working window on the date,
	// replacing the weekday rule's window
	ExceptionExtra ExceptionType = "extra"
)

// DateException represents a date-specific override of the weekly schedule.
// At most one exception is expected per date; duplicates resolve to the
// first match.
type DateException struct {
	ID        int64
	Date      time.Time // calendar date, time part ignored
	Type      ExceptionType
	StartTime *types.TimeString // both set or both nil
	EndTime   *types.TimeString
	Note      *string
	CreatedAt time.Time
}

// MatchesDate returns true if the exception falls on the given calendar date
func (e *DateException) MatchesDate(date time.Time) bool {
	y1, m1, d1 := e.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// BlocksWholeDay returns true for a blocked exception without times,
// which closes the entire date regardless of weekly rules
func (e *DateException) BlocksWholeDay() bool {
	return e.Type == ExceptionBlocked && e.StartTime == nil
}

// HasWindow returns true if the exception carries its own time window
func (e *DateException) HasWindow() bool {
	return e.StartTime != nil && e.EndTime != nil
}

// ExceptionsFilter типизированный фильтр выборки исключений по периоду
type ExceptionsFilter struct {
	From time.Time // Начало периода (включительно)
	To   time.Time // Конец периода (включительно)
}
