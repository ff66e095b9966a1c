package pipeline

import "time"

const (
	hour   = 3600
	day    = 24 * hour
	week   = 7 * day
	month  = 30 * day
	year   = 365 * day
	decade = 10 * year
)

// timeBucket derives the date-group label for a modified time relative to
// now, using the exact second thresholds of the canonical time buckets.
// A nil time (never observed by the provider) buckets as "unknown".
func timeBucket(modified *time.Time, now time.Time) string {
	if modified == nil {
		return "unknown"
	}

	secs := int64(now.Sub(*modified).Seconds())
	if secs < 0 {
		// A modified time in the future is as meaningless as an absent
		// one for bucketing purposes.
		return "unknown"
	}

	switch {
	case secs < hour:
		return "last_hour"
	case secs < day:
		return "today"
	case secs < 2*day:
		return "yesterday"
	case secs < week:
		return "this_week"
	case secs < month:
		return "this_month"
	case secs < year:
		return "this_year"
	case secs < decade:
		return "last_decade"
	default:
		return "older"
	}
}
