package progress

import "time"

// dayEndPrecision is the smallest step the store keeps for timestamps.
const dayEndPrecision = time.Microsecond

// DayStart returns the start of the day containing now in tz, converted to UTC.
func DayStart(now time.Time, tz *time.Location) time.Time {
	userNow := now.In(tz)
	dayStart := time.Date(userNow.Year(), userNow.Month(), userNow.Day(), 0, 0, 0, 0, tz)
	return dayStart.UTC()
}

// NextDayStart returns the start of the next day in tz, converted to UTC.
func NextDayStart(now time.Time, tz *time.Location) time.Time {
	dayStart := DayStart(now, tz)
	// AddDate handles DST correctly, Add(24h) does not
	nextDay := dayStart.In(tz).AddDate(0, 0, 1)
	return time.Date(nextDay.Year(), nextDay.Month(), nextDay.Day(), 0, 0, 0, 0, tz).UTC()
}

// DayBounds returns the inclusive [start, end] range of the calendar day
// containing now in tz. End is the last representable instant of the day.
func DayBounds(now time.Time, tz *time.Location) (time.Time, time.Time) {
	return DayStart(now, tz), NextDayStart(now, tz).Add(-dayEndPrecision)
}

// ParseTimezone parses a timezone string, returning UTC as fallback.
func ParseTimezone(tz string) *time.Location {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}
