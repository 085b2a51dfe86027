package analytics

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/autocare-api/internal/domain/enum"
)

// Payload is the analytics overview returned to dashboard clients. Once built it is
// never mutated; cached copies are shared between callers.
type Payload struct {
	Range       RangeEcho       `json:"range"`
	KPIs        KPIs            `json:"kpis"`
	Timeseries  []TimeSeriesRow `json:"timeseries"`
	Breakdowns  Breakdowns      `json:"breakdowns"`
	Membership  MembershipBlock `json:"membership"`
	Top         TopBlock        `json:"top"`
	Recent      RecentBlock     `json:"recent"`
	GeneratedAt time.Time       `json:"generatedAt"`
}

// RangeEcho repeats the normalized request
type RangeEcho struct {
	From    string           `json:"from"`
	To      string           `json:"to"`
	GroupBy enum.Granularity `json:"groupBy"`
}

// KPIs are the headline figures of the range
type KPIs struct {
	TotalIncome           float64 `json:"totalIncome"`
	TotalExpenses         float64 `json:"totalExpenses"`
	TotalProfit           float64 `json:"totalProfit"`
	TotalOrders           int     `json:"totalOrders"`
	AvgOrderValue         float64 `json:"avgOrderValue"`
	ActiveMemberships     int64   `json:"activeMemberships"`
	NewMembershipsInRange int     `json:"newMembershipsInRange"`
}

// TimeSeriesRow is one bucket of the chart. Profit always equals Round2(Income - Expenses).
type TimeSeriesRow struct {
	BucketStart string  `json:"bucketStart"`
	Income      float64 `json:"income"`
	Expenses    float64 `json:"expenses"`
	Profit      float64 `json:"profit"`
	Orders      int     `json:"orders"`
}

type Breakdowns struct {
	IncomeBySource     []SourceTotal   `json:"incomeBySource"`
	ExpensesByCategory []CategoryTotal `json:"expensesByCategory"`
	OrdersByStatus     []StatusCount   `json:"ordersByStatus"`
}

type SourceTotal struct {
	Source enum.IncomeSource `json:"source"`
	Total  float64           `json:"total"`
}

type CategoryTotal struct {
	Category enum.ExpenseCategory `json:"category"`
	Total    float64              `json:"total"`
}

type MembershipBlock struct {
	NewCount          int     `json:"newCount"`
	RenewedCount      int     `json:"renewedCount"`
	ExpiredCount      int64   `json:"expiredCount"`
	MembershipRevenue float64 `json:"membershipRevenue"`
}

type TopBlock struct {
	Services  ServiceLeaderboards `json:"services"`
	Employees []EmployeeEntry     `json:"employees"`
}

type ServiceLeaderboards struct {
	ByRevenue []ServiceEntry `json:"byRevenue"`
	ByOrders  []ServiceEntry `json:"byOrders"`
}

type ServiceEntry struct {
	ServiceNameEn string  `json:"serviceNameEn"`
	ServiceNameAr string  `json:"serviceNameAr"`
	Revenue       float64 `json:"revenue"`
	Orders        int     `json:"orders"`
}

// EmployeeEntry is an employee leaderboard row. AvgRating is nil when nobody rated them.
type EmployeeEntry struct {
	EmployeeID  uuid.UUID `json:"employeeId"`
	Name        string    `json:"name"`
	Revenue     float64   `json:"revenue"`
	Orders      int       `json:"orders"`
	WorkHours   float64   `json:"workHours"`
	AvgRating   *float64  `json:"avgRating"`
	RatingCount int       `json:"ratingCount"`
}

type RecentBlock struct {
	Transactions      []RecentTransaction `json:"transactions"`
	CompletedBookings []RecentBooking     `json:"completedBookings"`
}

type RecentTransaction struct {
	ID              uuid.UUID             `json:"id"`
	Type            enum.LedgerType       `json:"type"`
	Amount          float64               `json:"amount"`
	OccurredAt      time.Time             `json:"occurredAt"`
	IncomeSource    *enum.IncomeSource    `json:"incomeSource,omitempty"`
	ExpenseCategory *enum.ExpenseCategory `json:"expenseCategory,omitempty"`
	Note            *string               `json:"note,omitempty"`
}

type RecentBooking struct {
	ID            uuid.UUID `json:"id"`
	CompletedAt   time.Time `json:"completedAt"`
	FinalPrice    float64   `json:"finalPrice"`
	ServiceNameEn string    `json:"serviceNameEn"`
	ServiceNameAr string    `json:"serviceNameAr"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
}
