// Package report implements the aggregations behind the dashboard
// charts. All functions are pure: they operate on a record slice that
// the caller already loaded and never touch the database.
//
// Sums are plain float64 additions over amounts that were validated at
// write time. Repeated floating point addition can accumulate
// representation error in the last digits; that is acceptable for
// reporting and the tests use approximate comparisons.
package report

import (
	"sort"
	"strings"

	"github.com/cashsheet/backend/internal/models"
	"github.com/cashsheet/backend/internal/types"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// CategoryTotal is the summed amount of one category.
type CategoryTotal struct {
	Category string  `json:"category" example:"grocery"`
	Total    float64 `json:"total" example:"421.5"`
}

// Line is the per-date value sequence of one category. Values aligns
// with the Dates axis of the containing Series.
type Line struct {
	Category string    `json:"category" example:"grocery"`
	Values   []float64 `json:"values"`
}

// Series is a per-category time series over a shared date axis.
type Series struct {
	Dates []string `json:"dates"`
	Lines []Line   `json:"lines"`
}

// MonthSummary is the rollup of one "YYYY-MM" month.
type MonthSummary struct {
	Month    string  `json:"month" example:"2025-05"`
	Expenses float64 `json:"expenses" example:"1250.00"`
	Income   float64 `json:"income" example:"2000.00"`
	CashFlow float64 `json:"cashFlow" example:"750.00"` // Income minus expenses
}

// Monthly is the month-by-month rollup over all supplied records,
// including grand totals and the arithmetic mean per distinct month.
type Monthly struct {
	Months        []MonthSummary `json:"months"`
	TotalExpenses float64        `json:"totalExpenses"`
	TotalIncome   float64        `json:"totalIncome"`
	TotalCashFlow float64        `json:"totalCashFlow"`
	MeanExpenses  float64        `json:"meanExpenses"`
	MeanIncome    float64        `json:"meanIncome"`
	MeanCashFlow  float64        `json:"meanCashFlow"`
}

// Comparison is the per-category result of a two-window comparison.
type Comparison struct {
	Category string  `json:"category" example:"grocery"`
	First    float64 `json:"first" example:"100"`
	Second   float64 `json:"second" example:"150"`
	Diff     float64 `json:"diff" example:"50"` // Second minus first
}

// Window is an inclusive date range. Empty bounds leave that side open.
type Window struct {
	From  types.Date
	Until types.Date
}

// Contains reports whether the date falls inside the window. The
// comparison is lexical, which is exact for zero-padded ISO dates.
func (w Window) Contains(date types.Date) bool {
	if w.From != "" && date < w.From {
		return false
	}
	if w.Until != "" && date > w.Until {
		return false
	}
	return true
}

// CategoryTotals groups the records inside the window by category and
// sums their amounts. The result is ordered by descending total; ties
// keep the order in which the category was first encountered.
func CategoryTotals(records []models.Record, window Window) []CategoryTotal {
	totals := make([]CategoryTotal, 0)
	index := make(map[string]int)

	for _, record := range records {
		if !window.Contains(record.Date) {
			continue
		}

		i, ok := index[record.Category]
		if !ok {
			i = len(totals)
			index[record.Category] = i
			totals = append(totals, CategoryTotal{Category: record.Category})
		}

		totals[i].Total += record.Amount
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total > totals[j].Total
	})

	return totals
}

// selectCategories expands the selection patterns against the distinct
// categories present in the records. Patterns support * globs; a
// pattern without a wildcard is kept even when no record matches it,
// so an explicitly selected category always gets a (zero) line. An
// empty selection means every category present, in first-encountered
// order.
func selectCategories(records []models.Record, patterns []string) []string {
	var present []string
	seen := make(map[string]bool)
	for _, record := range records {
		if !seen[record.Category] {
			seen[record.Category] = true
			present = append(present, record.Category)
		}
	}

	if len(patterns) == 0 {
		return present
	}

	var selected []string
	picked := make(map[string]bool)
	for _, pattern := range patterns {
		matched := false
		for _, category := range present {
			if glob.Glob(pattern, category) && !picked[category] {
				picked[category] = true
				selected = append(selected, category)
				matched = true
			}
		}

		if !matched && !strings.Contains(pattern, glob.GLOB) && !picked[pattern] {
			picked[pattern] = true
			selected = append(selected, pattern)
		}
	}

	return selected
}

// dateAxis returns the sorted distinct dates of all records in the
// selected categories.
func dateAxis(records []models.Record, selected []string) []string {
	seen := make(map[string]bool)
	dates := make([]string, 0)
	for _, record := range records {
		if !slices.Contains(selected, record.Category) || seen[record.Date.String()] {
			continue
		}
		seen[record.Date.String()] = true
		dates = append(dates, record.Date.String())
	}

	sort.Strings(dates)
	return dates
}

// DailySeries produces one per-date sum sequence for every selected
// category over the distinct dates present in the selection. Dates
// without a matching record in a category yield 0.
func DailySeries(records []models.Record, categories []string) Series {
	selected := selectCategories(records, categories)
	dates := dateAxis(records, selected)

	series := Series{Dates: dates, Lines: make([]Line, 0, len(selected))}
	for _, category := range selected {
		line := Line{Category: category, Values: make([]float64, len(dates))}

		for i, date := range dates {
			for _, record := range records {
				if record.Category == category && record.Date.String() == date {
					line.Values[i] += record.Amount
				}
			}
		}

		series.Lines = append(series.Lines, line)
	}

	return series
}

// CumulativeSeries is DailySeries with running totals: the value at
// each date is the sum of every record in the category dated at or
// before it. Each point is recomputed from scratch, so out-of-order
// input does not change the result.
func CumulativeSeries(records []models.Record, categories []string) Series {
	selected := selectCategories(records, categories)
	dates := dateAxis(records, selected)

	series := Series{Dates: dates, Lines: make([]Line, 0, len(selected))}
	for _, category := range selected {
		line := Line{Category: category, Values: make([]float64, len(dates))}

		for i, date := range dates {
			for _, record := range records {
				if record.Category == category && record.Date.String() <= date {
					line.Values[i] += record.Amount
				}
			}
		}

		series.Lines = append(series.Lines, line)
	}

	return series
}

// MonthlyRollup groups expenses and income by the "YYYY-MM" prefix of
// their dates and computes the cash flow per month, the grand totals
// and the arithmetic mean over the distinct months present.
func MonthlyRollup(expenses, income []models.Record) Monthly {
	summaries := make(map[string]*MonthSummary)
	var keys []string

	add := func(records []models.Record, expense bool) {
		for _, record := range records {
			month := record.Date.Month()

			s, ok := summaries[month]
			if !ok {
				s = &MonthSummary{Month: month}
				summaries[month] = s
				keys = append(keys, month)
			}

			if expense {
				s.Expenses += record.Amount
			} else {
				s.Income += record.Amount
			}
		}
	}

	add(expenses, true)
	add(income, false)
	sort.Strings(keys)

	result := Monthly{Months: make([]MonthSummary, 0, len(keys))}
	for _, key := range keys {
		s := summaries[key]
		s.CashFlow = s.Income - s.Expenses

		result.Months = append(result.Months, *s)
		result.TotalExpenses += s.Expenses
		result.TotalIncome += s.Income
	}
	result.TotalCashFlow = result.TotalIncome - result.TotalExpenses

	if months := float64(len(keys)); months > 0 {
		result.MeanExpenses = result.TotalExpenses / months
		result.MeanIncome = result.TotalIncome / months
		result.MeanCashFlow = result.TotalCashFlow / months
	}

	return result
}

// Compare totals the selected categories in two inclusive date windows
// and returns the signed difference (second minus first) per category.
func Compare(records []models.Record, first, second Window, categories []string) []Comparison {
	selected := selectCategories(records, categories)

	comparisons := make([]Comparison, 0, len(selected))
	for _, category := range selected {
		c := Comparison{Category: category}

		for _, record := range records {
			if record.Category != category {
				continue
			}
			if first.Contains(record.Date) {
				c.First += record.Amount
			}
			if second.Contains(record.Date) {
				c.Second += record.Amount
			}
		}

		c.Diff = c.Second - c.First
		comparisons = append(comparisons, c)
	}

	return comparisons
}
