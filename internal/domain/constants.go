package domain

import "time"

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MaxBufferMinutes          = 120
	MaxServiceNameLength      = 100
	MaxNotesLength            = 500
	MaxExceptionNoteLength    = 200
	MaxCustomerNameLength     = 100

	// Maximum span a single open-dates query may cover
	MaxOpenDatesRangeDays = 60
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Weekday bounds (0=Sunday .. 6=Saturday)
const (
	MinWeekday = 0
	MaxWeekday = 6
)

// ParseDate разбирает дату "YYYY-MM-DD" в часовом поясе сервера.
// Дата обязана жить в том же поясе, что и текущее время: сравнение
// "слот уже начался" идет по абсолютным моментам, и разбор в UTC
// сдвигал бы границу на величину смещения пояса.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, time.Local)
}
