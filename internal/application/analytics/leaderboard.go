package analytics

import (
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/autocare-api/internal/domain/entity"
	"github.com/sangkips/autocare-api/internal/domain/repository"
)

// TopN caps every leaderboard
const TopN = 10

// ServiceStat is the unrounded revenue and order count of one catalogue service
type ServiceStat struct {
	NameEn  string
	NameAr  string
	Revenue float64
	Orders  int
}

// EmployeeStat is the unrounded revenue and order count of one employee
type EmployeeStat struct {
	EmployeeID uuid.UUID
	Revenue    float64
	Orders     int
}

// RatingStat is the rating total and count of one employee
type RatingStat struct {
	Sum   int
	Count int
}

// Average returns the mean rating, or nil when the employee has no ratings
func (r RatingStat) Average() *float64 {
	if r.Count == 0 {
		return nil
	}
	avg := Round2(float64(r.Sum) / float64(r.Count))
	return &avg
}

type serviceKey struct {
	en string
	ar string
}

// RankServices groups completed bookings by service name pair and returns two
// independently sorted top lists. Ties keep first-seen order.
func RankServices(completed []entity.Booking) (byRevenue, byOrders []ServiceStat) {
	index := make(map[serviceKey]int)
	var groups []ServiceStat
	for i := range completed {
		b := &completed[i]
		key := serviceKey{en: b.Service.NameEn, ar: b.Service.NameAr}
		pos, ok := index[key]
		if !ok {
			pos = len(groups)
			index[key] = pos
			groups = append(groups, ServiceStat{NameEn: key.en, NameAr: key.ar})
		}
		groups[pos].Revenue += ToAmount(b.FinalPrice)
		groups[pos].Orders++
	}

	byRevenue = slices.Clone(groups)
	slices.SortStableFunc(byRevenue, func(a, b ServiceStat) int {
		return cmp.Compare(b.Revenue, a.Revenue)
	})
	byOrders = slices.Clone(groups)
	slices.SortStableFunc(byOrders, func(a, b ServiceStat) int {
		return cmp.Compare(b.Orders, a.Orders)
	})
	return truncate(byRevenue, TopN), truncate(byOrders, TopN)
}

// RankEmployees groups completed bookings by the employee who performed them and returns
// the top earners. Bookings without an assigned employee are skipped.
func RankEmployees(completed []entity.Booking) []EmployeeStat {
	index := make(map[uuid.UUID]int)
	var groups []EmployeeStat
	for i := range completed {
		b := &completed[i]
		if b.PerformedByEmployeeID == nil {
			continue
		}
		id := *b.PerformedByEmployeeID
		pos, ok := index[id]
		if !ok {
			pos = len(groups)
			index[id] = pos
			groups = append(groups, EmployeeStat{EmployeeID: id})
		}
		groups[pos].Revenue += ToAmount(b.FinalPrice)
		groups[pos].Orders++
	}

	slices.SortStableFunc(groups, func(a, b EmployeeStat) int {
		return cmp.Compare(b.Revenue, a.Revenue)
	})
	return truncate(groups, TopN)
}

// EmployeeIDs returns the ids of the ranked employees in rank order
func EmployeeIDs(stats []EmployeeStat) []uuid.UUID {
	ids := make([]uuid.UUID, len(stats))
	for i, s := range stats {
		ids[i] = s.EmployeeID
	}
	return ids
}

// WorkedMinutes sums shift durations per employee. An open shift runs until openShiftEnd.
func WorkedMinutes(rows []entity.Attendance, openShiftEnd time.Time) map[uuid.UUID]float64 {
	out := make(map[uuid.UUID]float64)
	for _, r := range rows {
		end := openShiftEnd
		if r.CheckOutAt != nil {
			end = *r.CheckOutAt
		}
		if d := end.Sub(r.CheckInAt); d > 0 {
			out[r.EmployeeID] += d.Minutes()
		}
	}
	return out
}

// OpenShiftEnd is where an unclosed shift stops counting: the range end, or now if earlier
func OpenShiftEnd(now time.Time, w repository.Window) time.Time {
	if now.Before(w.End) {
		return now
	}
	return w.End
}

// CollectRatings totals ratings per employee
func CollectRatings(rows []repository.RatingResult) map[uuid.UUID]RatingStat {
	out := make(map[uuid.UUID]RatingStat)
	for _, r := range rows {
		st := out[r.EmployeeID]
		st.Sum += r.Rating
		st.Count++
		out[r.EmployeeID] = st
	}
	return out
}

func truncate[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
