package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/entity/budget"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
)

const (
	usersFile      = "users.json"
	expensesSuffix = "_expenses.json"
	budgetsSuffix  = "_budgets.json"

	fileMode = 0o644
	dirMode  = 0o755
)

type config interface {
	Dir() string
}

// FileStorage persists every store as an indented JSON file under one
// data directory. Reads never fail: a missing, unreadable or malformed
// file degrades to the empty default for its shape, which trades
// corruption detection for availability.
type FileStorage struct {
	dir string
}

func NewFileStorage(conf config) (*FileStorage, error) {
	dir := conf.Dir()
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return nil, errors.Wrap(err, "create data dir")
	}
	return &FileStorage{dir: dir}, nil
}

func (s *FileStorage) ExpensesLocation(username string) string {
	return filepath.Join(s.dir, username+expensesSuffix)
}

func (s *FileStorage) BudgetsLocation(username string) string {
	return filepath.Join(s.dir, username+budgetsSuffix)
}

func (s *FileStorage) usersLocation() string {
	return filepath.Join(s.dir, usersFile)
}

func (s *FileStorage) LoadExpenses(location string) []expense.Record {
	var records []expense.Record
	if !s.loadJSON(location, &records) {
		return nil
	}
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			logger.Error("discarding expense store with invalid record",
				zap.String("location", location), zap.Error(err))
			return nil
		}
	}
	return records
}

func (s *FileStorage) SaveExpenses(location string, records []expense.Record) error {
	if records == nil {
		records = []expense.Record{}
	}
	return s.saveJSON(location, records)
}

func (s *FileStorage) LoadBudgets(location string) *budget.Map {
	budgets := budget.NewMap()
	if !s.loadJSON(location, budgets) {
		return budget.NewMap()
	}
	return budgets
}

func (s *FileStorage) SaveBudgets(location string, budgets *budget.Map) error {
	return s.saveJSON(location, budgets)
}

func (s *FileStorage) LoadUsers() []string {
	var users []string
	if !s.loadJSON(s.usersLocation(), &users) {
		return nil
	}
	return users
}

func (s *FileStorage) SaveUsers(users []string) error {
	if users == nil {
		users = []string{}
	}
	return s.saveJSON(s.usersLocation(), users)
}

// Delete removes the backing file. A location that is already gone is
// not an error, which makes store deletion idempotent.
func (s *FileStorage) Delete(location string) error {
	err := os.Remove(location)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "delete store")
	}
	return nil
}

func (s *FileStorage) loadJSON(location string, target interface{}) bool {
	data, err := os.ReadFile(location)
	if err != nil {
		return false
	}
	if err = json.Unmarshal(data, target); err != nil {
		logger.Error("discarding malformed store",
			zap.String("location", location), zap.Error(err))
		return false
	}
	return true
}

func (s *FileStorage) saveJSON(location string, data interface{}) error {
	raw, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return errors.Wrap(err, "save store")
	}
	if err = os.WriteFile(location, raw, fileMode); err != nil {
		return errors.Wrap(err, "save store")
	}
	return nil
}
