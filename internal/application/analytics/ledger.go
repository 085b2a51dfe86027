package analytics

import (
	"github.com/sangkips/autocare-api/internal/domain/entity"
	"github.com/sangkips/autocare-api/internal/domain/enum"
)

// LedgerSummary holds the unrounded ledger totals for a range
type LedgerSummary struct {
	TotalIncome        float64
	TotalExpenses      float64
	IncomeBySource     map[enum.IncomeSource]float64
	ExpensesByCategory map[enum.ExpenseCategory]float64
}

// AggregateLedger folds ledger entries into the series buckets and the source/category
// breakdowns. Entries whose occurrence falls outside the series range are ignored.
func AggregateLedger(entries []entity.LedgerEntry, series *Series) LedgerSummary {
	sum := LedgerSummary{
		IncomeBySource:     make(map[enum.IncomeSource]float64, len(enum.IncomeSources())),
		ExpensesByCategory: make(map[enum.ExpenseCategory]float64, len(enum.ExpenseCategories())),
	}
	for _, src := range enum.IncomeSources() {
		sum.IncomeBySource[src] = 0
	}
	for _, cat := range enum.ExpenseCategories() {
		sum.ExpensesByCategory[cat] = 0
	}

	for i := range entries {
		e := &entries[i]
		bucket := series.slot(e.OccurredAt)
		if bucket == nil {
			continue
		}
		amount := ToAmount(e.Amount)

		switch e.Type {
		case enum.LedgerTypeIncome:
			sum.TotalIncome += amount
			bucket.income += amount
			if e.IncomeSource != nil {
				sum.IncomeBySource[*e.IncomeSource] += amount
			}
		case enum.LedgerTypeExpense:
			sum.TotalExpenses += amount
			bucket.expenses += amount
			category := enum.ExpenseCategoryGeneral
			if e.ExpenseCategory != nil && *e.ExpenseCategory != "" {
				category = *e.ExpenseCategory
			}
			sum.ExpensesByCategory[category] += amount
		}
	}
	return sum
}
