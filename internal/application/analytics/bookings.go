package analytics

import (
	"github.com/sangkips/autocare-api/internal/domain/entity"
	"github.com/sangkips/autocare-api/internal/domain/enum"
)

// StatusCount is the number of bookings observed with a given status
type StatusCount struct {
	Status enum.BookingStatus `json:"status"`
	Count  int                `json:"count"`
}

// BookingSummary holds order counts and completed-order value for a range
type BookingSummary struct {
	TotalOrders      int
	StatusCounts     []StatusCount
	CompletedCount   int
	CompletedRevenue float64
	AvgOrderValue    float64
}

// FilterCompletedPriced keeps the bookings that count as completed revenue:
// status COMPLETED, a completion time and a final price. Input order is preserved.
func FilterCompletedPriced(bookings []entity.Booking) []entity.Booking {
	out := make([]entity.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Status == enum.BookingStatusCompleted && b.CompletedAt != nil && b.FinalPrice.Valid {
			out = append(out, b)
		}
	}
	return out
}

// AggregateBookings counts appointments per bucket and per status, and computes the
// average final price over the completed, priced subset.
func AggregateBookings(appointments []entity.Booking, completed []entity.Booking, series *Series) BookingSummary {
	var sum BookingSummary

	counts := make(map[enum.BookingStatus]int)
	var unknown []enum.BookingStatus
	known := make(map[enum.BookingStatus]bool, len(enum.BookingStatuses()))
	for _, st := range enum.BookingStatuses() {
		known[st] = true
	}

	for i := range appointments {
		b := &appointments[i]
		bucket := series.slot(b.AppointmentAt)
		if bucket == nil {
			continue
		}
		bucket.orders++
		sum.TotalOrders++
		if counts[b.Status] == 0 && !known[b.Status] {
			unknown = append(unknown, b.Status)
		}
		counts[b.Status]++
	}

	// Only observed statuses are emitted, in lifecycle order, unknown ones last.
	for _, st := range append(enum.BookingStatuses(), unknown...) {
		if n := counts[st]; n > 0 {
			sum.StatusCounts = append(sum.StatusCounts, StatusCount{Status: st, Count: n})
		}
	}

	for i := range completed {
		sum.CompletedRevenue += ToAmount(completed[i].FinalPrice)
	}
	sum.CompletedCount = len(completed)
	if sum.CompletedCount > 0 {
		sum.AvgOrderValue = sum.CompletedRevenue / float64(sum.CompletedCount)
	}
	return sum
}
