package analytics

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/autocare-api/internal/domain/entity"
	"github.com/sangkips/autocare-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

func dayRequest(from, to string) Request {
	return Request{From: date(from), To: date(to), Granularity: enum.GranularityDay}
}

func income(amount string, occurredAt time.Time, src enum.IncomeSource) entity.LedgerEntry {
	return entity.LedgerEntry{
		ID:           uuid.New(),
		Type:         enum.LedgerTypeIncome,
		Amount:       decimal.RequireFromString(amount),
		OccurredAt:   occurredAt,
		IncomeSource: &src,
	}
}

func expense(amount string, occurredAt time.Time, cat *enum.ExpenseCategory) entity.LedgerEntry {
	return entity.LedgerEntry{
		ID:              uuid.New(),
		Type:            enum.LedgerTypeExpense,
		Amount:          decimal.RequireFromString(amount),
		OccurredAt:      occurredAt,
		ExpenseCategory: cat,
	}
}

func categoryPtr(c enum.ExpenseCategory) *enum.ExpenseCategory { return &c }

type bookingOpt func(*entity.Booking)

func withEmployee(id uuid.UUID) bookingOpt {
	return func(b *entity.Booking) { b.PerformedByEmployeeID = &id }
}

func withService(en, ar string) bookingOpt {
	return func(b *entity.Booking) { b.Service = entity.Service{NameEn: en, NameAr: ar} }
}

func completedBooking(price string, completedAt time.Time, opts ...bookingOpt) entity.Booking {
	b := entity.Booking{
		ID:            uuid.New(),
		AppointmentAt: completedAt,
		Status:        enum.BookingStatusCompleted,
		CompletedAt:   &completedAt,
		FinalPrice:    decimal.NewNullDecimal(decimal.RequireFromString(price)),
		Service:       entity.Service{NameEn: "Wash", NameAr: "غسيل"},
		Customer:      entity.Customer{Name: "Sara", Phone: "0500000000"},
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func appointment(status enum.BookingStatus, appointmentAt time.Time) entity.Booking {
	return entity.Booking{ID: uuid.New(), Status: status, AppointmentAt: appointmentAt}
}
