package reports

import (
	"sort"
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"

	"max.ks1230/expense-tracker/internal/entity/expense"
)

var ErrUnknownPeriod = errors.New("report period is not supported")

var periodStarts = map[string]func() time.Time{
	"":      func() time.Time { return time.Time{} },
	"week":  now.BeginningOfWeek,
	"month": now.BeginningOfMonth,
	"year":  now.BeginningOfYear,
}

// CategoryTotal is one row of a by-category breakdown.
type CategoryTotal struct {
	Category string
	Amount   float64
}

// PeriodTotal is one row of a monthly or annual breakdown. Period is
// "YYYY-MM" or "YYYY".
type PeriodTotal struct {
	Period string
	Amount float64
}

// Total sums all amounts. Zero for an empty sequence.
func Total(records []expense.Record) float64 {
	total := 0.0
	for _, rec := range records {
		total += rec.Amount
	}
	return total
}

// ByCategory sums amounts per category, largest first. Equal totals
// keep the order the categories were first encountered in.
func ByCategory(records []expense.Record) []CategoryTotal {
	totals := make(map[string]float64)
	order := make([]string, 0)
	for _, rec := range records {
		if _, seen := totals[rec.Category]; !seen {
			order = append(order, rec.Category)
		}
		totals[rec.Category] += rec.Amount
	}

	res := make([]CategoryTotal, 0, len(order))
	for _, category := range order {
		res = append(res, CategoryTotal{Category: category, Amount: totals[category]})
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Amount > res[j].Amount
	})
	return res
}

// CategoryTotals is the plain category→total mapping consumed by
// external renderers such as the chart view.
func CategoryTotals(records []expense.Record) map[string]float64 {
	totals := make(map[string]float64, len(records))
	for _, rec := range records {
		totals[rec.Category] += rec.Amount
	}
	return totals
}

// ByMonth sums amounts per "YYYY-MM" month, in chronological order.
func ByMonth(records []expense.Record) []PeriodTotal {
	return byPeriod(records, func(t time.Time) string {
		return t.Format("2006-01")
	})
}

// ByYear sums amounts per "YYYY" year, in chronological order.
func ByYear(records []expense.Record) []PeriodTotal {
	return byPeriod(records, func(t time.Time) string {
		return t.Format("2006")
	})
}

func byPeriod(records []expense.Record, key func(time.Time) string) []PeriodTotal {
	totals := make(map[string]float64)
	for _, rec := range records {
		totals[key(rec.Time())] += rec.Amount
	}

	periods := make([]string, 0, len(totals))
	for period := range totals {
		periods = append(periods, period)
	}
	sort.Strings(periods)

	res := make([]PeriodTotal, 0, len(periods))
	for _, period := range periods {
		res = append(res, PeriodTotal{Period: period, Amount: totals[period]})
	}
	return res
}

// SortedByDate returns a copy of the records sorted by date. The sort
// is stable: records sharing a date keep their relative input order.
// Listing views sort ascending, management views descending.
func SortedByDate(records []expense.Record, ascending bool) []expense.Record {
	res := make([]expense.Record, len(records))
	copy(res, records)
	sort.SliceStable(res, func(i, j int) bool {
		if ascending {
			return res[i].Date < res[j].Date
		}
		return res[i].Date > res[j].Date
	})
	return res
}

// FilterPeriod narrows records to the current week, month or year. The
// empty period keeps everything.
func FilterPeriod(records []expense.Record, period string) ([]expense.Record, error) {
	start, ok := periodStarts[period]
	if !ok {
		return nil, ErrUnknownPeriod
	}
	return filterAfter(records, start()), nil
}

// Periods lists the supported report periods.
func Periods() []string {
	res := make([]string, 0, len(periodStarts))
	for period := range periodStarts {
		res = append(res, period)
	}
	sort.Strings(res)
	return res
}

func filterAfter(records []expense.Record, after time.Time) []expense.Record {
	res := make([]expense.Record, 0)
	for _, rec := range records {
		if after.Before(rec.Time()) {
			res = append(res, rec)
		}
	}
	return res
}
