package analytics

import (
	"time"

	"github.com/sangkips/autocare-api/internal/domain/enum"
)

type bucketTotals struct {
	income   float64
	expenses float64
	orders   int
}

// Series holds per-bucket accumulators in EnumerateBuckets order. Rows arriving in any
// order land in their bucket; output order is always the enumeration order.
type Series struct {
	granularity enum.Granularity
	starts      []time.Time
	index       map[string]int
	totals      []bucketTotals
}

// NewSeries allocates one zeroed bucket for every bucket of the request range
func NewSeries(req Request) *Series {
	s := &Series{
		granularity: req.Granularity,
		index:       make(map[string]int),
	}
	for b := range EnumerateBuckets(req.From, req.To, req.Granularity) {
		s.index[BucketKey(b)] = len(s.starts)
		s.starts = append(s.starts, b)
	}
	s.totals = make([]bucketTotals, len(s.starts))
	return s
}

// Len returns the number of buckets
func (s *Series) Len() int {
	return len(s.starts)
}

// slot returns the accumulator for the bucket containing t, or nil when t is outside the range
func (s *Series) slot(t time.Time) *bucketTotals {
	i, ok := s.index[BucketKey(BucketStart(t, s.granularity))]
	if !ok {
		return nil
	}
	return &s.totals[i]
}
