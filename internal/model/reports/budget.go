package reports

import (
	"max.ks1230/expense-tracker/internal/entity/budget"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

type BudgetStatus int

const (
	StatusUnder BudgetStatus = iota
	StatusExact
	StatusOver
)

func (s BudgetStatus) String() string {
	switch s {
	case StatusOver:
		return "Over"
	case StatusExact:
		return "Exact"
	default:
		return "Under"
	}
}

// BudgetLine is one row of a budget-vs-spending report.
type BudgetLine struct {
	Category  string
	Limit     float64
	Spent     float64
	Remaining float64
	Status    BudgetStatus
}

// EvaluateBudgets compares per-category spending against configured
// limits. The report is budget-driven: it lists exactly the configured
// categories, in the order they were configured, regardless of how much
// was spent where. A category with a limit but no spending reports
// Spent 0; spending in a category without a limit is not checked at
// all — no budget means no check, not an implicit zero limit.
func EvaluateBudgets(records []expense.Record, budgets *budget.Map) []BudgetLine {
	spending := CategoryTotals(records)

	res := make([]BudgetLine, 0, budgets.Len())
	for _, category := range budgets.Categories() {
		limit, _ := budgets.Limit(category)
		spent := spending[category]
		remaining := limit - spent

		status := StatusUnder
		switch {
		case remaining < 0:
			status = StatusOver
		case remaining == 0:
			status = StatusExact
		}

		res = append(res, BudgetLine{
			Category:  category,
			Limit:     limit,
			Spent:     spent,
			Remaining: remaining,
			Status:    status,
		})
	}
	return res
}
