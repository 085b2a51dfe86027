package analytics

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/autocare-api/internal/domain/entity"
	"github.com/sangkips/autocare-api/internal/domain/enum"
)

const (
	// RecentTransactionsLimit caps recent.transactions
	RecentTransactionsLimit = 20
	// RecentBookingsLimit caps recent.completedBookings
	RecentBookingsLimit = 20
)

// Inputs gathers everything the pipeline computed for one request
type Inputs struct {
	Request   Request
	Series    *Series
	Ledger    LedgerSummary
	Bookings  BookingSummary
	Lifecycle Lifecycle

	ExpiredCount          int64
	ActiveMemberships     int64
	NewMembershipsInRange int

	ServicesByRevenue []ServiceStat
	ServicesByOrders  []ServiceStat
	Employees         []EmployeeStat
	EmployeeProfiles  map[uuid.UUID]entity.Employee
	WorkedMinutes     map[uuid.UUID]float64
	Ratings           map[uuid.UUID]RatingStat

	LedgerEntries     []entity.LedgerEntry
	CompletedBookings []entity.Booking

	GeneratedAt time.Time
}

// Assemble shapes computed values into the response payload, rounding every monetary
// figure as it is written.
func Assemble(in Inputs) *Payload {
	req := in.Request.Normalize()
	totalIncome := Round2(in.Ledger.TotalIncome)
	totalExpenses := Round2(in.Ledger.TotalExpenses)

	p := &Payload{
		Range: RangeEcho{
			From:    req.From.Format(DateLayout),
			To:      req.To.Format(DateLayout),
			GroupBy: req.Granularity,
		},
		KPIs: KPIs{
			TotalIncome:           totalIncome,
			TotalExpenses:         totalExpenses,
			TotalProfit:           Round2(totalIncome - totalExpenses),
			TotalOrders:           in.Bookings.TotalOrders,
			AvgOrderValue:         Round2(in.Bookings.AvgOrderValue),
			ActiveMemberships:     in.ActiveMemberships,
			NewMembershipsInRange: in.NewMembershipsInRange,
		},
		Timeseries: timeseries(in.Series),
		Breakdowns: Breakdowns{
			IncomeBySource:     make([]SourceTotal, 0, len(enum.IncomeSources())),
			ExpensesByCategory: make([]CategoryTotal, 0, len(enum.ExpenseCategories())),
			OrdersByStatus:     slices.Clone(in.Bookings.StatusCounts),
		},
		Membership: MembershipBlock{
			NewCount:          in.Lifecycle.NewCount,
			RenewedCount:      in.Lifecycle.RenewedCount,
			ExpiredCount:      in.ExpiredCount,
			MembershipRevenue: Round2(in.Ledger.IncomeBySource[enum.IncomeSourceMembership]),
		},
		Top: TopBlock{
			Services: ServiceLeaderboards{
				ByRevenue: serviceEntries(in.ServicesByRevenue),
				ByOrders:  serviceEntries(in.ServicesByOrders),
			},
			Employees: employeeEntries(in),
		},
		Recent: RecentBlock{
			Transactions:      recentTransactions(in.LedgerEntries, RecentTransactionsLimit),
			CompletedBookings: recentBookings(in.CompletedBookings, min(RecentBookingsLimit, in.Bookings.CompletedCount)),
		},
		GeneratedAt: in.GeneratedAt,
	}
	if p.Breakdowns.OrdersByStatus == nil {
		p.Breakdowns.OrdersByStatus = []StatusCount{}
	}

	for _, src := range enum.IncomeSources() {
		p.Breakdowns.IncomeBySource = append(p.Breakdowns.IncomeBySource, SourceTotal{
			Source: src,
			Total:  Round2(in.Ledger.IncomeBySource[src]),
		})
	}
	for _, cat := range enum.ExpenseCategories() {
		p.Breakdowns.ExpensesByCategory = append(p.Breakdowns.ExpensesByCategory, CategoryTotal{
			Category: cat,
			Total:    Round2(in.Ledger.ExpensesByCategory[cat]),
		})
	}
	return p
}

func timeseries(s *Series) []TimeSeriesRow {
	rows := make([]TimeSeriesRow, 0, s.Len())
	for i, start := range s.starts {
		t := s.totals[i]
		income := Round2(t.income)
		expenses := Round2(t.expenses)
		rows = append(rows, TimeSeriesRow{
			BucketStart: BucketKey(start),
			Income:      income,
			Expenses:    expenses,
			Profit:      Round2(income - expenses),
			Orders:      t.orders,
		})
	}
	return rows
}

func serviceEntries(stats []ServiceStat) []ServiceEntry {
	out := make([]ServiceEntry, 0, len(stats))
	for _, s := range stats {
		out = append(out, ServiceEntry{
			ServiceNameEn: s.NameEn,
			ServiceNameAr: s.NameAr,
			Revenue:       Round2(s.Revenue),
			Orders:        s.Orders,
		})
	}
	return out
}

func employeeEntries(in Inputs) []EmployeeEntry {
	out := make([]EmployeeEntry, 0, len(in.Employees))
	for _, e := range in.Employees {
		rating := in.Ratings[e.EmployeeID]
		out = append(out, EmployeeEntry{
			EmployeeID:  e.EmployeeID,
			Name:        in.EmployeeProfiles[e.EmployeeID].Name,
			Revenue:     Round2(e.Revenue),
			Orders:      e.Orders,
			WorkHours:   Round2(in.WorkedMinutes[e.EmployeeID] / 60),
			AvgRating:   rating.Average(),
			RatingCount: rating.Count,
		})
	}
	return out
}

func recentTransactions(entries []entity.LedgerEntry, limit int) []RecentTransaction {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b entity.LedgerEntry) int {
		return b.OccurredAt.Compare(a.OccurredAt)
	})
	sorted = truncate(sorted, limit)

	out := make([]RecentTransaction, 0, len(sorted))
	for _, e := range sorted {
		out = append(out, RecentTransaction{
			ID:              e.ID,
			Type:            e.Type,
			Amount:          Round2(ToAmount(e.Amount)),
			OccurredAt:      e.OccurredAt.UTC(),
			IncomeSource:    e.IncomeSource,
			ExpenseCategory: e.ExpenseCategory,
			Note:            e.Note,
		})
	}
	return out
}

func recentBookings(bookings []entity.Booking, limit int) []RecentBooking {
	sorted := slices.Clone(bookings)
	slices.SortStableFunc(sorted, func(a, b entity.Booking) int {
		return b.CompletedAt.Compare(*a.CompletedAt)
	})
	sorted = truncate(sorted, max(limit, 0))

	out := make([]RecentBooking, 0, len(sorted))
	for _, b := range sorted {
		out = append(out, RecentBooking{
			ID:            b.ID,
			CompletedAt:   b.CompletedAt.UTC(),
			FinalPrice:    Round2(ToAmount(b.FinalPrice)),
			ServiceNameEn: b.Service.NameEn,
			ServiceNameAr: b.Service.NameAr,
			CustomerName:  b.Customer.Name,
			CustomerPhone: b.Customer.Phone,
		})
	}
	return out
}
