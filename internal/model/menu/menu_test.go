package menu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/storage"
	"max.ks1230/expense-tracker/internal/model/users"
)

func runScript(t *testing.T, mem *storage.InMemStorage, lines ...string) string {
	t.Helper()
	registry := users.NewRegistry(mem)
	out := &bytes.Buffer{}
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")

	New(&config.AppConfig{}, mem, registry, in, out).Run()
	return out.String()
}

func Test_OnCreateUserAndAddExpense_ShouldPersistRecord(t *testing.T) {
	mem := storage.NewInMemStorage()

	out := runScript(t, mem,
		"2", "alice", // create user
		"1", "25.50", "1", "", // add: amount, category Food, date today
		"8", // exit
	)

	assert.Contains(t, out, "User 'alice' created and selected.")
	assert.Contains(t, out, "Logged ₹25.50 for 'Food'")
	records := mem.LoadExpenses(mem.ExpensesLocation("alice"))
	require.Len(t, records, 1)
	assert.Equal(t, 25.5, records[0].Amount)
	assert.Equal(t, "Food", records[0].Category)
}

func Test_OnNonFiniteAmountInput_ShouldRepromptUntilValid(t *testing.T) {
	mem := storage.NewInMemStorage()

	out := runScript(t, mem,
		"2", "alice",
		"1", "nan", "inf", "10", "1", "", // add: nan and inf rejected, then 10
		"8",
	)

	assert.Contains(t, out, "Invalid input. Please enter a valid number for the amount.")
	records := mem.LoadExpenses(mem.ExpensesLocation("alice"))
	require.Len(t, records, 1)
	assert.Equal(t, 10.0, records[0].Amount)
}

func Test_OnNonFiniteBudgetInput_ShouldRepromptUntilValid(t *testing.T) {
	mem := storage.NewInMemStorage()

	out := runScript(t, mem,
		"2", "alice",
		"4", "1", "nan", "20", // budget Food: nan rejected, then 20
		"8",
	)

	assert.Contains(t, out, "Invalid amount. Please enter a number.")
	budgets := mem.LoadBudgets(mem.BudgetsLocation("alice"))
	limit, ok := budgets.Limit("Food")
	require.True(t, ok)
	assert.Equal(t, 20.0, limit)
}

func Test_OnCheckBudgets_ShouldReportOverspending(t *testing.T) {
	mem := storage.NewInMemStorage()

	out := runScript(t, mem,
		"2", "alice",
		"1", "25.50", "1", "", // spend 25.50 on Food
		"4", "1", "20", // budget Food at 20
		"5", // check budgets
		"8",
	)

	assert.Contains(t, out, "Budget of ₹20.00 set for 'Food'.")
	assert.Contains(t, out, "Food: Spent ₹25.50 / Budget ₹20.00 - OVER budget by ₹5.50!")
}

func Test_OnManageDelete_ShouldTranslateDisplayedPosition(t *testing.T) {
	mem := storage.NewInMemStorage()
	require.NoError(t, mem.SaveUsers([]string{"alice"}))
	require.NoError(t, mem.SaveExpenses(mem.ExpensesLocation("alice"), []expense.Record{
		{Amount: 100, Category: "Food", Date: "2024-01-05"},
		{Amount: 50, Category: "Transport", Date: "2024-02-01"},
	}))

	// Management lists newest first, so displayed #1 is the Transport
	// record stored at canonical index 1.
	out := runScript(t, mem,
		"1", "1", // select alice
		"3", "d", "1", "y", // delete displayed #1
		"8",
	)

	assert.Contains(t, out, "Expense of ₹50.00 in 'Transport' deleted.")
	records := mem.LoadExpenses(mem.ExpensesLocation("alice"))
	require.Len(t, records, 1)
	assert.Equal(t, "Food", records[0].Category)
}

func Test_OnManageEdit_ShouldAmendStoredRecord(t *testing.T) {
	mem := storage.NewInMemStorage()
	require.NoError(t, mem.SaveUsers([]string{"alice"}))
	require.NoError(t, mem.SaveExpenses(mem.ExpensesLocation("alice"), []expense.Record{
		{Amount: 100, Category: "Food", Date: "2024-01-05"},
	}))

	out := runScript(t, mem,
		"1", "1",
		"3", "e", "1",
		"75", // new amount
		"",   // keep category
		"",   // keep date
		"8",
	)

	assert.Contains(t, out, "Expense updated successfully.")
	records := mem.LoadExpenses(mem.ExpensesLocation("alice"))
	require.Len(t, records, 1)
	assert.Equal(t, 75.0, records[0].Amount)
	assert.Equal(t, "Food", records[0].Category)
}

func Test_OnSummary_ShouldPrintTotalsAndBreakdowns(t *testing.T) {
	mem := storage.NewInMemStorage()
	require.NoError(t, mem.SaveUsers([]string{"alice"}))
	require.NoError(t, mem.SaveExpenses(mem.ExpensesLocation("alice"), []expense.Record{
		{Amount: 100, Category: "Food", Date: "2024-01-05"},
		{Amount: 50, Category: "Food", Date: "2024-02-01"},
	}))

	out := runScript(t, mem,
		"1", "1",
		"2", "", "1", // summary, no period filter, monthly view
		"8",
	)

	assert.Contains(t, out, "Overall Total Spending: ₹150.00")
	assert.Contains(t, out, "- Food: ₹150.00")
	assert.Contains(t, out, "2024-01: ₹100.00")
	assert.Contains(t, out, "2024-02: ₹50.00")
}

func Test_OnResetData_ShouldTruncateStores(t *testing.T) {
	mem := storage.NewInMemStorage()
	require.NoError(t, mem.SaveUsers([]string{"alice"}))
	require.NoError(t, mem.SaveExpenses(mem.ExpensesLocation("alice"), []expense.Record{
		{Amount: 100, Category: "Food", Date: "2024-01-05"},
	}))

	out := runScript(t, mem,
		"1", "1",
		"6", "y", // reset, confirm
		"8",
	)

	assert.Contains(t, out, "All data for 'alice' has been reset.")
	assert.Empty(t, mem.LoadExpenses(mem.ExpensesLocation("alice")))
	assert.Equal(t, []string{"alice"}, mem.LoadUsers())
}

func Test_OnExhaustedInput_ShouldReturnWithoutPanicking(t *testing.T) {
	mem := storage.NewInMemStorage()
	registry := users.NewRegistry(mem)
	out := &bytes.Buffer{}

	New(&config.AppConfig{}, mem, registry, strings.NewReader(""), out).Run()

	assert.Contains(t, out.String(), "--- User Management ---")
}
