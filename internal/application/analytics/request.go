package analytics

import (
	"time"

	"github.com/sangkips/autocare-api/internal/domain/enum"
	"github.com/sangkips/autocare-api/internal/domain/repository"
)

// Request is the engine input: an inclusive calendar-date range and a bucket width.
// Callers validate From <= To and the granularity before invoking the engine.
type Request struct {
	From        time.Time
	To          time.Time
	Granularity enum.Granularity
}

// Normalize drops the time-of-day component of both range ends
func (r Request) Normalize() Request {
	return Request{
		From:        DayStart(r.From),
		To:          DayStart(r.To),
		Granularity: r.Granularity,
	}
}

// Window returns the half-open read window [DayStart(From), DayStart(To)+1 day)
func (r Request) Window() repository.Window {
	return repository.Window{
		Start: DayStart(r.From),
		End:   DayStart(r.To).AddDate(0, 0, 1),
	}
}

// CacheKey identifies the request once normalized
func (r Request) CacheKey() string {
	return DayStart(r.From).Format(DateLayout) + "|" + DayStart(r.To).Format(DateLayout) + "|" + r.Granularity.String()
}
