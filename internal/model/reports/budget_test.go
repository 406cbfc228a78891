package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"max.ks1230/expense-tracker/internal/entity/budget"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

func Test_OnEvaluateBudgets_ShouldReportOverspending(t *testing.T) {
	budgets := budget.NewMap()
	assert.NoError(t, budgets.Set("Food", 120))

	lines := EvaluateBudgets(scenarioRecords(), budgets)

	assert.Equal(t, []BudgetLine{{
		Category:  "Food",
		Limit:     120,
		Spent:     150,
		Remaining: -30,
		Status:    StatusOver,
	}}, lines)
}

func Test_OnEvaluateBudgets_ShouldClassifyExactAndUnder(t *testing.T) {
	records := []expense.Record{
		{Amount: 100, Category: "Rent", Date: "2024-01-01"},
		{Amount: 40, Category: "Food", Date: "2024-01-02"},
	}
	budgets := budget.NewMap()
	assert.NoError(t, budgets.Set("Rent", 100))
	assert.NoError(t, budgets.Set("Food", 50))

	lines := EvaluateBudgets(records, budgets)

	assert.Equal(t, StatusExact, lines[0].Status)
	assert.Equal(t, 0.0, lines[0].Remaining)
	assert.Equal(t, StatusUnder, lines[1].Status)
	assert.Equal(t, 10.0, lines[1].Remaining)
}

func Test_OnEvaluateBudgets_ShouldReportUnspentBudgetAsZeroSpend(t *testing.T) {
	budgets := budget.NewMap()
	assert.NoError(t, budgets.Set("Travel", 500))

	lines := EvaluateBudgets(scenarioRecords(), budgets)

	assert.Len(t, lines, 1)
	assert.Equal(t, 0.0, lines[0].Spent)
	assert.Equal(t, 500.0, lines[0].Remaining)
	assert.Equal(t, StatusUnder, lines[0].Status)
}

func Test_OnEvaluateBudgets_ShouldIgnoreUnbudgetedSpending(t *testing.T) {
	budgets := budget.NewMap()
	assert.NoError(t, budgets.Set("Rent", 1000))

	lines := EvaluateBudgets(scenarioRecords(), budgets)

	assert.Len(t, lines, 1)
	assert.Equal(t, "Rent", lines[0].Category)
}

func Test_OnEvaluateBudgets_ShouldKeepConfiguredOrder(t *testing.T) {
	budgets := budget.NewMap()
	assert.NoError(t, budgets.Set("Shopping", 10))
	assert.NoError(t, budgets.Set("Food", 9000))
	assert.NoError(t, budgets.Set("Rent", 1))

	lines := EvaluateBudgets(scenarioRecords(), budgets)

	assert.Equal(t, "Shopping", lines[0].Category)
	assert.Equal(t, "Food", lines[1].Category)
	assert.Equal(t, "Rent", lines[2].Category)
}

func Test_OnEvaluateBudgets_ShouldReturnEmptyForEmptyBudgets(t *testing.T) {
	assert.Empty(t, EvaluateBudgets(scenarioRecords(), budget.NewMap()))
}
