package analytics

import (
	"iter"
	"time"

	"github.com/sangkips/autocare-api/internal/domain/enum"
)

// DateLayout is the canonical calendar-date form used for bucket keys and range echoes
const DateLayout = "2006-01-02"

// DayStart truncates t to midnight of its UTC calendar day
func DayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// BucketStart returns the start of the bucket containing t. Weeks start on Monday.
func BucketStart(t time.Time, g enum.Granularity) time.Time {
	day := DayStart(t)
	switch g {
	case enum.GranularityWeek:
		// Go: 0=Sun, 1=Mon; shift so Monday is offset 0 and Sunday offset 6
		daysBack := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -daysBack)
	case enum.GranularityMonth:
		return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return day
	}
}

// NextBucket returns the start of the bucket following b
func NextBucket(b time.Time, g enum.Granularity) time.Time {
	switch g {
	case enum.GranularityWeek:
		return b.AddDate(0, 0, 7)
	case enum.GranularityMonth:
		// time.Date normalizes month 13 into January of the next year
		return time.Date(b.Year(), b.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	default:
		return b.AddDate(0, 0, 1)
	}
}

// EnumerateBuckets yields every bucket start from BucketStart(from) through DayStart(to)
// inclusive. The sequence holds no state and can be ranged over any number of times.
func EnumerateBuckets(from, to time.Time, g enum.Granularity) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		end := DayStart(to)
		for cur := BucketStart(from, g); !cur.After(end); cur = NextBucket(cur, g) {
			if !yield(cur) {
				return
			}
		}
	}
}

// BucketKey formats a bucket start as its canonical key
func BucketKey(b time.Time) string {
	return b.UTC().Format(DateLayout)
}
