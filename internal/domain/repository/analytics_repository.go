package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/autocare-api/internal/domain/entity"
)

// Window is a half-open time interval [Start, End)
type Window struct {
	Start time.Time
	End   time.Time
}

// RatingResult is a booking rating attributed to the employee who performed the booking
type RatingResult struct {
	EmployeeID uuid.UUID
	BookingID  uuid.UUID
	Rating     int
}

// AnalyticsRepository is the read side consumed by the analytics engine.
// Every method only reads already-committed records.
type AnalyticsRepository interface {
	// ListLedgerEntries returns ledger entries with occurred_at inside w
	ListLedgerEntries(ctx context.Context, w Window) ([]entity.LedgerEntry, error)

	// ListBookingsByAppointment returns bookings with appointment_at inside w
	ListBookingsByAppointment(ctx context.Context, w Window) ([]entity.Booking, error)

	// ListCompletedBookings returns COMPLETED bookings with completed_at inside w and a
	// non-null final price, in storage order, with Service and Customer loaded
	ListCompletedBookings(ctx context.Context, w Window) ([]entity.Booking, error)

	// ListAttendance returns attendance rows with check_in_at inside w for the given employees
	ListAttendance(ctx context.Context, w Window, employeeIDs []uuid.UUID) ([]entity.Attendance, error)

	// ListRatings returns ratings of completed, priced bookings completed inside w and
	// performed by the given employees
	ListRatings(ctx context.Context, w Window, employeeIDs []uuid.UUID) ([]RatingResult, error)

	// ListEmployees returns the employee profiles for the given ids
	ListEmployees(ctx context.Context, ids []uuid.UUID) ([]entity.Employee, error)

	// ListMembershipOrdersCreated returns membership orders with created_at inside w
	ListMembershipOrdersCreated(ctx context.Context, w Window) ([]entity.MembershipOrder, error)

	// CountMembershipOrdersEnding counts membership orders with end_date inside w
	CountMembershipOrdersEnding(ctx context.Context, w Window) (int64, error)

	// ListPriorMembershipCustomers returns distinct customer ids with a membership order created before t
	ListPriorMembershipCustomers(ctx context.Context, before time.Time) ([]uuid.UUID, error)

	// CountActiveMemberships counts membership orders active at the given instant
	CountActiveMemberships(ctx context.Context, at time.Time) (int64, error)
}
