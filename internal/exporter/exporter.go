// Package exporter builds downloadable workbooks from stored records.
package exporter

import (
	"fmt"

	"github.com/cashsheet/backend/internal/models"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultFilename is used for downloads when the client does not
// request a specific file name.
const DefaultFilename = "financial_data.xlsx"

var headers = []string{"date", "label", "category", "amount"}

// Workbook builds a workbook with one tab per record kind. Both tabs
// are always present so that the file round-trips through the importer,
// a kind without records gets a header-only tab. The caller owns the
// returned file and must Close it.
func Workbook(expenses, income []models.Record) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeTab(f, models.KindExpense, expenses); err != nil {
		f.Close()
		return nil, err
	}

	if err := writeTab(f, models.KindIncome, income); err != nil {
		f.Close()
		return nil, err
	}

	// Drop the default tab that NewFile creates.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, err
	}

	index, err := f.GetSheetIndex(string(models.KindExpense))
	if err != nil {
		f.Close()
		return nil, err
	}
	f.SetActiveSheet(index)

	return f, nil
}

// writeTab writes the header row and one row per record. Headers are
// capitalized for display, the importer lowercases them again.
func writeTab(f *excelize.File, kind models.Kind, records []models.Record) error {
	name := string(kind)
	if _, err := f.NewSheet(name); err != nil {
		return err
	}

	title := cases.Title(language.English)

	row := make([]any, 0, len(headers))
	for _, header := range headers {
		if header == "label" {
			header = string(kind)
		}
		row = append(row, title.String(header))
	}

	if err := setRow(f, name, 1, row); err != nil {
		return err
	}

	for i, record := range records {
		row := []any{record.Date.String(), record.Label, record.Category, record.Amount}
		if err := setRow(f, name, i+2, row); err != nil {
			return err
		}
	}

	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}

	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("could not write row %d of tab %s: %w", row, sheet, err)
	}

	return nil
}
