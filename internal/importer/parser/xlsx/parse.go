// Package xlsx parses uploaded workbooks into normalized rows.
//
// A workbook is expected to carry an "expense" and/or an "income" tab,
// matched case-insensitively. Each tab has a header row naming the
// columns date, expense/income, category and amount in any order.
package xlsx

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cashsheet/backend/internal/models"
	"github.com/cashsheet/backend/internal/types"
	"github.com/xuri/excelize/v2"
)

var (
	// ErrNoTransactionTabs is returned when the workbook has neither
	// tab. A workbook with at least one recognized tab is processed.
	ErrNoTransactionTabs = errors.New("the workbook contains neither an expense nor an income tab")

	// ErrTabEmpty marks a tab that exists but has no data rows. This is
	// distinct from the tab being absent.
	ErrTabEmpty = errors.New("the tab contains no data rows")

	// ErrColumnsMissing marks a tab whose header row lacks required
	// columns. The missing column names are appended to the message.
	ErrColumnsMissing = errors.New("required columns are missing")
)

// Row is one normalized data row. Label and Amount are kept as the raw
// cell text; the amount is validated when the row is written to the
// store, not here.
type Row struct {
	Date     types.Date `json:"date"`
	Label    string     `json:"label"`
	Category string     `json:"category"`
	Amount   string     `json:"amount"`
}

// Tab is the outcome for one recognized transaction tab.
type Tab struct {
	Present bool  // whether a matching tab exists in the workbook
	Rows    []Row // normalized data rows, nil when Err is set
	Err     error // set when the tab is present but invalid
}

// Result holds the outcome for both recognized tabs.
type Result struct {
	Expense Tab
	Income  Tab
}

// Parse reads a workbook and normalizes the rows of the expense and
// income tabs. An invalid tab only aborts itself: its error is recorded
// in the Result and the other tab still parses. Parse returns an error
// when the blob is not a workbook or when neither tab is present.
func Parse(r io.Reader) (Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Result{}, fmt.Errorf("could not read workbook: %w", err)
	}
	defer f.Close()

	var result Result
	result.Expense = parseTab(f, models.KindExpense)
	result.Income = parseTab(f, models.KindIncome)

	if !result.Expense.Present && !result.Income.Present {
		return Result{}, ErrNoTransactionTabs
	}

	return result, nil
}

// parseTab locates the tab for one record kind and normalizes its rows.
func parseTab(f *excelize.File, kind models.Kind) Tab {
	name, ok := findTab(f, string(kind))
	if !ok {
		return Tab{}
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return Tab{Present: true, Err: err}
	}

	if len(rows) == 0 {
		return Tab{Present: true, Err: ErrTabEmpty}
	}

	columns, missing := mapColumns(rows[0], kind)
	if len(missing) > 0 {
		return Tab{Present: true, Err: fmt.Errorf("%w: %s", ErrColumnsMissing, strings.Join(missing, ", "))}
	}

	var normalized []Row
	for _, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}

		normalized = append(normalized, Row{
			Date:     normalizeDate(cell(row, columns[0])),
			Label:    cell(row, columns[1]),
			Category: cell(row, columns[2]),
			Amount:   cell(row, columns[3]),
		})
	}

	if len(normalized) == 0 {
		return Tab{Present: true, Err: ErrTabEmpty}
	}

	return Tab{Present: true, Rows: normalized}
}

// findTab returns the name of the tab matching wanted, ignoring case.
func findTab(f *excelize.File, wanted string) (string, bool) {
	for _, name := range f.GetSheetList() {
		if strings.EqualFold(name, wanted) {
			return name, true
		}
	}

	return "", false
}

// mapColumns maps the expected columns (date, <kind>, category, amount)
// to their indices in the header row. Headers are compared lowercased;
// when a header occurs twice, the last occurrence wins. The second
// return value lists the expected columns that are missing.
func mapColumns(header []string, kind models.Kind) ([4]int, []string) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}

	expected := [4]string{"date", string(kind), "category", "amount"}

	var columns [4]int
	var missing []string
	for i, name := range expected {
		col, ok := index[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		columns[i] = col
	}

	return columns, missing
}

// normalizeDate converts spreadsheet date serials to ISO dates. Textual
// values pass through unchanged, as does an empty cell.
func normalizeDate(value string) types.Date {
	if value == "" {
		return ""
	}

	if date, ok := types.ParseSerial(value); ok {
		return date
	}

	return types.Date(value)
}

// cell returns the value at index i, tolerating ragged rows.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[i])
}

func emptyRow(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}

	return true
}
