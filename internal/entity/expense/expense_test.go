package expense

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_OnNew_ShouldNormalizeCategory(t *testing.T) {
	rec, err := New(42, "  eating out ", "2024-06-01")

	assert.NoError(t, err)
	assert.Equal(t, "Eating Out", rec.Category)
	assert.Equal(t, 42.0, rec.Amount)
}

func Test_OnNew_ShouldRejectNonPositiveAmount(t *testing.T) {
	_, err := New(0, "Food", "2024-06-01")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = New(-3, "Food", "2024-06-01")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func Test_OnNew_ShouldRejectNonFiniteAmount(t *testing.T) {
	for _, amount := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := New(amount, "Food", "2024-06-01")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}
}

func Test_OnNew_ShouldRejectEmptyCategory(t *testing.T) {
	_, err := New(10, "   ", "2024-06-01")

	assert.ErrorIs(t, err, ErrEmptyCategory)
}

func Test_OnNew_ShouldRejectBadDates(t *testing.T) {
	for _, date := range []string{"", "2024/06/01", "01-06-2024", "2024-13-01", "2024-02-30"} {
		_, err := New(10, "Food", date)
		assert.ErrorIs(t, err, ErrInvalidDate, date)
	}
}

func Test_OnTime_ShouldParseStoredDate(t *testing.T) {
	rec := Record{Amount: 1, Category: "Food", Date: "2024-06-01"}

	parsed := rec.Time()

	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, 6, int(parsed.Month()))
	assert.Equal(t, 1, parsed.Day())
}
