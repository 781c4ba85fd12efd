package domain

import (
	"time"

	"github.com/ytopal/Barbershop-BookingService/pkg/types"
)

// WeeklyRule represents a recurring default working window for one weekday.
// Multiple rules may exist per weekday (split shifts); the active rules for
// a weekday together define its default availability. No rule for a weekday
// means the shop is closed that day.
type WeeklyRule struct {
	ID        int64
	Weekday   int // 0=Sunday .. 6=Saturday
	StartTime types.TimeString
	EndTime   types.TimeString // StartTime < EndTime
	IsActive  bool
	CreatedAt time.Time
}

// AppliesTo returns true if the rule is active and covers the date's weekday
func (r *WeeklyRule) AppliesTo(date time.Time) bool {
	return r.IsActive && int(date.Weekday()) == r.Weekday
}
