package expenses

import (
	"github.com/pkg/errors"

	"max.ks1230/expense-tracker/internal/entity/expense"
)

var ErrOutOfRange = errors.New("expense reference is out of range")

// Patch carries the fields of an amendment. Nil fields keep the stored
// value; present fields are validated exactly like a new record.
type Patch struct {
	Amount   *float64
	Category *string
	Date     *string
}

// Add validates the record and appends it. Duplicate records are legal;
// a user can buy the same coffee twice a day.
func Add(records []expense.Record, rec expense.Record) ([]expense.Record, error) {
	if err := rec.Validate(); err != nil {
		return records, err
	}
	return append(records, rec), nil
}

// Amend overwrites the patched fields of the record at index. The index
// is a position in the canonical unsorted sequence; callers translate
// displayed positions back before calling. On any validation failure
// the stored record is left untouched.
func Amend(records []expense.Record, index int, patch Patch) error {
	if index < 0 || index >= len(records) {
		return ErrOutOfRange
	}

	rec := records[index]
	if patch.Amount != nil {
		rec.Amount = *patch.Amount
	}
	if patch.Category != nil {
		rec.Category = expense.NormalizeCategory(*patch.Category)
	}
	if patch.Date != nil {
		rec.Date = *patch.Date
	}
	if err := rec.Validate(); err != nil {
		return err
	}

	records[index] = rec
	return nil
}

// Remove deletes the record at index and returns it together with the
// remaining sequence, preserving the order of what is left.
func Remove(records []expense.Record, index int) ([]expense.Record, expense.Record, error) {
	if index < 0 || index >= len(records) {
		return records, expense.Record{}, ErrOutOfRange
	}
	removed := records[index]
	res := make([]expense.Record, 0, len(records)-1)
	res = append(res, records[:index]...)
	res = append(res, records[index+1:]...)
	return res, removed, nil
}
