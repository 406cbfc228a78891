package expense

import (
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidAmount = errors.New("amount must be a positive number")
	ErrEmptyCategory = errors.New("category must not be empty")
	ErrInvalidDate   = errors.New("date must be a valid YYYY-MM-DD date")
)

var titleCaser = cases.Title(language.English)

// Record is one logged expense. Records have no identity of their own:
// they are addressed by position in the user's stored sequence.
type Record struct {
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
}

// New validates the fields and normalizes the category to title case
// so that "food" and "Food" aggregate together.
func New(amount float64, category, date string) (Record, error) {
	rec := Record{
		Amount:   amount,
		Category: NormalizeCategory(category),
		Date:     date,
	}
	if err := rec.Validate(); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (r Record) Validate() error {
	// NaN compares false against everything, so <= 0 alone lets it through.
	if math.IsNaN(r.Amount) || math.IsInf(r.Amount, 0) || r.Amount <= 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(r.Category) == "" {
		return ErrEmptyCategory
	}
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// Time parses the record's date. Records are validated on the way in,
// so a zero time only comes back for a record built by hand.
func (r Record) Time() time.Time {
	t, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

func NormalizeCategory(category string) string {
	return titleCaser.String(strings.TrimSpace(category))
}
