package storage

import (
	"max.ks1230/expense-tracker/internal/entity/budget"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

// InMemStorage mirrors FileStorage without touching disk. It backs
// tests and keeps the same location semantics, including deletion.
type InMemStorage struct {
	expenses map[string][]expense.Record
	budgets  map[string]*budget.Map
	users    []string
}

func NewInMemStorage() *InMemStorage {
	return &InMemStorage{
		expenses: make(map[string][]expense.Record),
		budgets:  make(map[string]*budget.Map),
	}
}

func (s *InMemStorage) ExpensesLocation(username string) string {
	return username + expensesSuffix
}

func (s *InMemStorage) BudgetsLocation(username string) string {
	return username + budgetsSuffix
}

func (s *InMemStorage) LoadExpenses(location string) []expense.Record {
	records := s.expenses[location]
	res := make([]expense.Record, len(records))
	copy(res, records)
	return res
}

func (s *InMemStorage) SaveExpenses(location string, records []expense.Record) error {
	stored := make([]expense.Record, len(records))
	copy(stored, records)
	s.expenses[location] = stored
	return nil
}

func (s *InMemStorage) LoadBudgets(location string) *budget.Map {
	budgets, ok := s.budgets[location]
	if !ok {
		return budget.NewMap()
	}
	return budgets.Clone()
}

func (s *InMemStorage) SaveBudgets(location string, budgets *budget.Map) error {
	s.budgets[location] = budgets.Clone()
	return nil
}

func (s *InMemStorage) LoadUsers() []string {
	res := make([]string, len(s.users))
	copy(res, s.users)
	return res
}

func (s *InMemStorage) SaveUsers(users []string) error {
	s.users = make([]string, len(users))
	copy(s.users, users)
	return nil
}

func (s *InMemStorage) Delete(location string) error {
	delete(s.expenses, location)
	delete(s.budgets, location)
	return nil
}
