package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/autocare-api/internal/domain/entity"
	"github.com/sangkips/autocare-api/internal/domain/enum"
	domainRepo "github.com/sangkips/autocare-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// includeDeleted lifts the soft-delete filter so history keeps the names it was recorded under
func includeDeleted(db *gorm.DB) *gorm.DB {
	return db.Unscoped()
}

func (r *analyticsRepository) ListLedgerEntries(ctx context.Context, w domainRepo.Window) ([]entity.LedgerEntry, error) {
	var entries []entity.LedgerEntry
	err := r.db.WithContext(ctx).
		Where("occurred_at >= ? AND occurred_at < ?", w.Start, w.End).
		Order("occurred_at ASC, id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *analyticsRepository) ListBookingsByAppointment(ctx context.Context, w domainRepo.Window) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.db.WithContext(ctx).
		Select("id", "appointment_at", "status").
		Where("appointment_at >= ? AND appointment_at < ?", w.Start, w.End).
		Order("appointment_at ASC, id ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *analyticsRepository) ListCompletedBookings(ctx context.Context, w domainRepo.Window) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.db.WithContext(ctx).
		Preload("Service", includeDeleted).
		Preload("Customer", includeDeleted).
		Where("status = ?", enum.BookingStatusCompleted).
		Where("completed_at >= ? AND completed_at < ?", w.Start, w.End).
		Where("final_price IS NOT NULL").
		Order("completed_at ASC, id ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *analyticsRepository) ListAttendance(ctx context.Context, w domainRepo.Window, employeeIDs []uuid.UUID) ([]entity.Attendance, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}
	var rows []entity.Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id IN ?", employeeIDs).
		Where("check_in_at >= ? AND check_in_at < ?", w.Start, w.End).
		Order("check_in_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *analyticsRepository) ListRatings(ctx context.Context, w domainRepo.Window, employeeIDs []uuid.UUID) ([]domainRepo.RatingResult, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}
	var results []domainRepo.RatingResult
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			b.performed_by_employee_id AS employee_id,
			b.id AS booking_id,
			rt.rating AS rating
		FROM ratings rt
		JOIN bookings b ON b.id = rt.booking_id
		WHERE b.status = ?
		AND b.completed_at >= ? AND b.completed_at < ?
		AND b.final_price IS NOT NULL
		AND b.performed_by_employee_id IN ?
		AND b.deleted_at IS NULL
	`, enum.BookingStatusCompleted, w.Start, w.End, employeeIDs).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *analyticsRepository) ListEmployees(ctx context.Context, ids []uuid.UUID) ([]entity.Employee, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var employees []entity.Employee
	// a deleted employee still owns the revenue they produced
	err := r.db.WithContext(ctx).Scopes(includeDeleted).Where("id IN ?", ids).Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *analyticsRepository) ListMembershipOrdersCreated(ctx context.Context, w domainRepo.Window) ([]entity.MembershipOrder, error) {
	var orders []entity.MembershipOrder
	err := r.db.WithContext(ctx).
		Select("id", "customer_id", "created_at", "end_date").
		Where("created_at >= ? AND created_at < ?", w.Start, w.End).
		Order("created_at ASC, id ASC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *analyticsRepository) CountMembershipOrdersEnding(ctx context.Context, w domainRepo.Window) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.MembershipOrder{}).
		Where("end_date >= ? AND end_date < ?", w.Start, w.End).
		Count(&count).Error
	return count, err
}

func (r *analyticsRepository) ListPriorMembershipCustomers(ctx context.Context, before time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&entity.MembershipOrder{}).
		Where("created_at < ?", before).
		Distinct().
		Pluck("customer_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *analyticsRepository) CountActiveMemberships(ctx context.Context, at time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.MembershipOrder{}).
		Where("start_date <= ?", at).
		Where("(end_date IS NULL OR end_date >= ?)", at).
		Count(&count).Error
	return count, err
}
