package menu

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/expenses"
	"max.ks1230/expense-tracker/internal/model/reports"
	"max.ks1230/expense-tracker/internal/model/users"
)

func (s *Service) handleAddExpense(session users.Session) error {
	amount, ok := s.promptAmount("Enter the amount: " + s.conf.Currency())
	if !ok {
		return nil
	}
	category, ok := s.promptCategory(session)
	if !ok {
		return nil
	}
	date, ok := s.promptDate("Enter the date", "")
	if !ok {
		return nil
	}

	rec, err := expense.New(amount, category, date)
	if err != nil {
		s.println("Could not log the expense: " + err.Error())
		return nil
	}

	records := s.storage.LoadExpenses(session.ExpensesLocation)
	records, err = expenses.Add(records, rec)
	if err != nil {
		return err
	}
	if err = s.storage.SaveExpenses(session.ExpensesLocation, records); err != nil {
		return err
	}
	s.println(fmt.Sprintf("Logged %s for '%s' on %s.", s.amount(rec.Amount), rec.Category, rec.Date))
	return nil
}

func (s *Service) handleSummary(session users.Session) error {
	records := s.storage.LoadExpenses(session.ExpensesLocation)
	if len(records) == 0 {
		s.println(noExpensesMessage)
		return nil
	}

	s.print("Period to cover (week/month/year, blank for everything): ")
	period, err := s.readLine()
	if err != nil {
		return nil
	}
	records, err = reports.FilterPeriod(records, period)
	if err != nil {
		s.println("Unknown period '" + period + "'. Showing everything.")
		records = s.storage.LoadExpenses(session.ExpensesLocation)
	}
	if len(records) == 0 {
		s.println("No expenses in that period.")
		return nil
	}

	s.println("")
	s.println("--- Expense Summary ---")
	s.println("Overall Total Spending: " + s.amount(reports.Total(records)))
	s.println("Spending by Category:")
	for _, row := range reports.ByCategory(records) {
		s.println("  - " + row.Category + ": " + s.amount(row.Amount))
	}

	s.println("")
	s.println("  1. Monthly Spending  2. Annual Spending  3. All Expenses by Date  4. Back")
	s.print("Your choice: ")
	choice, err := s.readLine()
	if err != nil {
		return nil
	}
	switch choice {
	case "1":
		s.println("--- Monthly Spending Overview ---")
		for _, row := range reports.ByMonth(records) {
			s.println("  " + row.Period + ": " + s.amount(row.Amount))
		}
	case "2":
		s.println("--- Annual Spending Overview ---")
		for _, row := range reports.ByYear(records) {
			s.println("  " + row.Period + ": " + s.amount(row.Amount))
		}
	case "3":
		s.println("--- All Recorded Expenses (Sorted by Date) ---")
		for i, rec := range reports.SortedByDate(records, true) {
			s.println(fmt.Sprintf("  %d. Date: %s | Category: %s | Amount: %s",
				i+1, rec.Date, rec.Category, s.amount(rec.Amount)))
		}
	}
	return nil
}

func (s *Service) handleManage(session users.Session) error {
	records := s.storage.LoadExpenses(session.ExpensesLocation)
	if len(records) == 0 {
		s.println("No expenses to manage yet.")
		return nil
	}

	// Most recent first for picking, but edits and removals address the
	// canonical stored sequence, so displayed positions are translated
	// through the sort permutation.
	order := sortedIndices(records)
	s.println("")
	s.println("--- Manage Expenses ---")
	for display, canonical := range order {
		rec := records[canonical]
		s.println(fmt.Sprintf("  %d. %s - %s (%s)", display+1, s.amount(rec.Amount), rec.Category, rec.Date))
	}
	s.print("'E' to edit, 'D' to delete, anything else to go back: ")

	choice, err := s.readLine()
	if err != nil {
		return nil
	}
	switch choice {
	case "e", "E":
		return s.editExpense(session, records, order)
	case "d", "D":
		return s.deleteExpense(session, records, order)
	}
	return nil
}

func (s *Service) editExpense(session users.Session, records []expense.Record, order []int) error {
	display, ok := s.promptIndex("Enter the number of the expense to edit: ", len(order))
	if !ok {
		return nil
	}
	canonical := order[display]
	current := records[canonical]

	s.println("Enter new details (leave blank to keep current value):")
	patch := expenses.Patch{}

	s.print(fmt.Sprintf("New amount (current: %s): ", s.amount(current.Amount)))
	if text, err := s.readLine(); err == nil && text != "" {
		amount, err := strconv.ParseFloat(text, 64)
		if err != nil {
			s.println("Invalid amount format. Keeping current amount.")
		} else {
			patch.Amount = &amount
		}
	}

	s.print("New category (current: " + current.Category + "): ")
	if text, err := s.readLine(); err == nil && text != "" {
		patch.Category = &text
	}

	if date, ok := s.promptDate("New date", current.Date); ok && date != current.Date {
		patch.Date = &date
	}

	if err := expenses.Amend(records, canonical, patch); err != nil {
		s.println("Could not update the expense: " + err.Error())
		return nil
	}
	if err := s.storage.SaveExpenses(session.ExpensesLocation, records); err != nil {
		return err
	}
	s.println("Expense updated successfully.")
	return nil
}

func (s *Service) deleteExpense(session users.Session, records []expense.Record, order []int) error {
	display, ok := s.promptIndex("Enter the number of the expense to delete: ", len(order))
	if !ok {
		return nil
	}
	canonical := order[display]
	rec := records[canonical]

	prompt := fmt.Sprintf("Delete the expense %s - %s (%s)? (y/n): ", s.amount(rec.Amount), rec.Category, rec.Date)
	if !s.confirm(prompt) {
		s.println("Deletion cancelled.")
		return nil
	}

	rest, removed, err := expenses.Remove(records, canonical)
	if err != nil {
		s.println("Could not delete the expense: " + err.Error())
		return nil
	}
	if err = s.storage.SaveExpenses(session.ExpensesLocation, rest); err != nil {
		return err
	}
	s.println(fmt.Sprintf("Expense of %s in '%s' deleted.", s.amount(removed.Amount), removed.Category))
	return nil
}

func (s *Service) handleSetBudget(session users.Session) error {
	category, ok := s.promptCategory(session)
	if !ok {
		return nil
	}
	limit, ok := s.promptLimit("Enter budget limit for '" + category + "': " + s.conf.Currency())
	if !ok {
		return nil
	}

	budgets := s.storage.LoadBudgets(session.BudgetsLocation)
	if err := budgets.Set(category, limit); err != nil {
		s.println("Could not set the budget: " + err.Error())
		return nil
	}
	if err := s.storage.SaveBudgets(session.BudgetsLocation, budgets); err != nil {
		return err
	}
	s.println(fmt.Sprintf("Budget of %s set for '%s'.", s.amount(limit), expense.NormalizeCategory(category)))
	return nil
}

func (s *Service) handleCheckBudgets(session users.Session) error {
	budgets := s.storage.LoadBudgets(session.BudgetsLocation)
	if budgets.Len() == 0 {
		s.println("No budgets set yet. Use option 4 to set one!")
		return nil
	}
	records := s.storage.LoadExpenses(session.ExpensesLocation)

	s.println("")
	s.println("--- Budget vs. Spending Overview ---")
	for _, line := range reports.EvaluateBudgets(records, budgets) {
		var status string
		switch line.Status {
		case reports.StatusOver:
			status = "OVER budget by " + s.amount(-line.Remaining) + "!"
		case reports.StatusExact:
			status = "Exactly on budget!"
		default:
			status = s.amount(line.Remaining) + " remaining."
		}
		s.println(fmt.Sprintf("  %s: Spent %s / Budget %s - %s",
			line.Category, s.amount(line.Spent), s.amount(line.Limit), status))
	}
	return nil
}

func (s *Service) handleReset(session users.Session) error {
	prompt := "Delete ALL expense and budget data for '" + session.Username + "'? This cannot be undone (y/n): "
	if !s.confirm(prompt) {
		s.println("Reset cancelled. Your data is safe.")
		return nil
	}
	if err := s.registry.Reset(session.Username); err != nil {
		return err
	}
	s.println("All data for '" + session.Username + "' has been reset.")
	return nil
}

// sortedIndices returns the canonical indices ordered by date
// descending, ties keeping stored order. order[display] = canonical.
func sortedIndices(records []expense.Record) []int {
	order := make([]int, len(records))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return records[order[i]].Date > records[order[j]].Date
	})
	return order
}

func today() string {
	return time.Now().Format(expense.DateLayout)
}

func yesterday() string {
	return time.Now().AddDate(0, 0, -1).Format(expense.DateLayout)
}
