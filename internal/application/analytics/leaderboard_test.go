package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/autocare-api/internal/domain/entity"
	"github.com/sangkips/autocare-api/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankServices_IndependentOrderings(t *testing.T) {
	ts := at("2024-04-02T10:00:00Z")
	completed := []entity.Booking{
		completedBooking("300", ts, withService("Detailing", "تلميع")),
		completedBooking("20", ts, withService("Wash", "غسيل")),
		completedBooking("20", ts, withService("Wash", "غسيل")),
		completedBooking("25", ts, withService("Wash", "غسيل")),
		completedBooking("100", ts, withService("Polish", "تلميع خفيف")),
	}

	byRevenue, byOrders := RankServices(completed)

	require.Len(t, byRevenue, 3)
	assert.Equal(t, "Detailing", byRevenue[0].NameEn)
	assert.Equal(t, "Polish", byRevenue[1].NameEn)
	assert.Equal(t, "Wash", byRevenue[2].NameEn)
	assert.InDelta(t, 65.0, byRevenue[2].Revenue, 1e-9)

	require.Len(t, byOrders, 3)
	assert.Equal(t, "Wash", byOrders[0].NameEn)
	assert.Equal(t, 3, byOrders[0].Orders)
	// Detailing and Polish tie on orders and keep first-seen order
	assert.Equal(t, "Detailing", byOrders[1].NameEn)
	assert.Equal(t, "Polish", byOrders[2].NameEn)
}

func TestRankServices_RevenueTiesKeepFirstSeenOrder(t *testing.T) {
	ts := at("2024-04-02T10:00:00Z")
	// Wax is seen before Vacuum, and both trail Ceramic
	completed := []entity.Booking{
		completedBooking("30", ts, withService("Wax", "شمع")),
		completedBooking("20", ts, withService("Vacuum", "شفط")),
		completedBooking("500", ts, withService("Ceramic", "سيراميك")),
		completedBooking("40", ts, withService("Vacuum", "شفط")),
		completedBooking("30", ts, withService("Wax", "شمع")),
	}

	byRevenue, byOrders := RankServices(completed)

	require.Len(t, byRevenue, 3)
	assert.Equal(t, "Ceramic", byRevenue[0].NameEn)
	assert.Equal(t, "Wax", byRevenue[1].NameEn)
	assert.Equal(t, "Vacuum", byRevenue[2].NameEn)
	assert.InDelta(t, byRevenue[1].Revenue, byRevenue[2].Revenue, 1e-9)

	require.Len(t, byOrders, 3)
	assert.Equal(t, "Wax", byOrders[0].NameEn)
	assert.Equal(t, "Vacuum", byOrders[1].NameEn)
	assert.Equal(t, 2, byOrders[1].Orders)
	assert.Equal(t, "Ceramic", byOrders[2].NameEn)

	// reversing first appearance flips both tie orders
	completed[0], completed[1] = completed[1], completed[0]
	byRevenue, byOrders = RankServices(completed)
	assert.Equal(t, "Vacuum", byRevenue[1].NameEn)
	assert.Equal(t, "Wax", byRevenue[2].NameEn)
	assert.Equal(t, "Vacuum", byOrders[0].NameEn)
	assert.Equal(t, "Wax", byOrders[1].NameEn)
}

func TestRankServices_GroupsByNamePair(t *testing.T) {
	ts := at("2024-04-02T10:00:00Z")
	completed := []entity.Booking{
		completedBooking("10", ts, withService("Wash", "غسيل")),
		completedBooking("10", ts, withService("Wash", "غسيل سريع")),
	}

	byRevenue, _ := RankServices(completed)

	assert.Len(t, byRevenue, 2)
}

func TestRankServices_CappedAtTopN(t *testing.T) {
	ts := at("2024-04-02T10:00:00Z")
	var completed []entity.Booking
	for i := range 15 {
		completed = append(completed, completedBooking(fmt.Sprintf("%d", 100+i), ts, withService(fmt.Sprintf("S%d", i), "")))
	}

	byRevenue, byOrders := RankServices(completed)

	require.Len(t, byRevenue, TopN)
	require.Len(t, byOrders, TopN)
	assert.Equal(t, "S14", byRevenue[0].NameEn)
	for i := 1; i < len(byRevenue); i++ {
		assert.GreaterOrEqual(t, byRevenue[i-1].Revenue, byRevenue[i].Revenue)
	}
	// all tie on one order each, so the first ten seen win
	assert.Equal(t, "S0", byOrders[0].NameEn)
	assert.Equal(t, "S9", byOrders[9].NameEn)
}

func TestRankEmployees(t *testing.T) {
	ts := at("2024-04-02T10:00:00Z")
	e1, e2 := uuid.New(), uuid.New()
	completed := []entity.Booking{
		completedBooking("50", ts, withEmployee(e1)),
		completedBooking("80", ts, withEmployee(e2)),
		completedBooking("40", ts, withEmployee(e1)),
		completedBooking("500", ts), // unassigned
	}

	ranked := RankEmployees(completed)

	require.Len(t, ranked, 2)
	assert.Equal(t, e1, ranked[0].EmployeeID)
	assert.InDelta(t, 90.0, ranked[0].Revenue, 1e-9)
	assert.Equal(t, 2, ranked[0].Orders)
	assert.Equal(t, e2, ranked[1].EmployeeID)
	assert.Equal(t, []uuid.UUID{e1, e2}, EmployeeIDs(ranked))
}

func TestWorkedMinutes_OpenShiftRunsToRangeEnd(t *testing.T) {
	e := uuid.New()
	w := repository.Window{Start: date("2024-04-02"), End: date("2024-04-03")}
	now := at("2024-04-02T18:00:00Z")
	rows := []entity.Attendance{
		{EmployeeID: e, CheckInAt: at("2024-04-02T09:00:00Z")},
	}

	minutes := WorkedMinutes(rows, OpenShiftEnd(now, w))

	assert.InDelta(t, 540.0, minutes[e], 1e-9)
	assert.Equal(t, 9.0, Round2(minutes[e]/60))
}

func TestWorkedMinutes_ClosedShiftsAndPastRange(t *testing.T) {
	e := uuid.New()
	checkOut := at("2024-04-01T12:30:00Z")
	w := repository.Window{Start: date("2024-04-01"), End: date("2024-04-02")}
	rows := []entity.Attendance{
		{EmployeeID: e, CheckInAt: at("2024-04-01T08:00:00Z"), CheckOutAt: &checkOut},
		{EmployeeID: e, CheckInAt: at("2024-04-01T20:00:00Z")},
	}

	// the range is in the past, so the open shift stops at the range end
	minutes := WorkedMinutes(rows, OpenShiftEnd(at("2024-05-01T00:00:00Z"), w))

	assert.InDelta(t, 270.0+240.0, minutes[e], 1e-9)
}

func TestOpenShiftEnd(t *testing.T) {
	w := repository.Window{Start: date("2024-04-01"), End: date("2024-04-02")}
	now := at("2024-04-01T10:00:00Z")
	assert.Equal(t, now, OpenShiftEnd(now, w))
	assert.Equal(t, w.End, OpenShiftEnd(w.End.Add(time.Hour), w))
}

func TestCollectRatings(t *testing.T) {
	e1, e2 := uuid.New(), uuid.New()
	stats := CollectRatings([]repository.RatingResult{
		{EmployeeID: e1, BookingID: uuid.New(), Rating: 5},
		{EmployeeID: e1, BookingID: uuid.New(), Rating: 4},
		{EmployeeID: e1, BookingID: uuid.New(), Rating: 4},
	})

	avg := stats[e1].Average()
	require.NotNil(t, avg)
	assert.Equal(t, 4.33, *avg)
	assert.Equal(t, 3, stats[e1].Count)

	assert.Nil(t, stats[e2].Average())
	assert.Zero(t, stats[e2].Count)
}
