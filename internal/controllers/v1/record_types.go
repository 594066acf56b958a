package v1

import (
	"github.com/cashsheet/backend/internal/models"
	"github.com/cashsheet/backend/internal/types"
	"github.com/shopspring/decimal"
)

// RecordEditable are the fields of a record that clients can set. The
// description field is named after the record kind in the JSON body, so
// both names are accepted and the one matching the endpoint is used.
type RecordEditable struct {
	Date     types.Date `json:"date" example:"2023-03-15"`
	Expense  string     `json:"expense" example:"Groceries"`
	Income   string     `json:"income" example:"Salary"`
	Category string     `json:"category" example:"food"`

	// The amount is accepted as a JSON number or a numeric string.
	Amount decimal.Decimal `json:"amount" example:"14.03" minimum:"0"`

	SheetName string `json:"sheet_name" example:"default" default:"default"`
}

// label returns the description for the record kind of the endpoint.
func (editable RecordEditable) label(kind models.Kind) string {
	if kind == models.KindIncome {
		return editable.Income
	}

	return editable.Expense
}

// model returns the database resource for the API representation of the editable fields
func (editable RecordEditable) model(kind models.Kind) models.Record {
	return models.Record{
		Kind:     kind,
		Date:     editable.Date,
		Label:    editable.label(kind),
		Category: editable.Category,
		Amount:   editable.Amount.InexactFloat64(),
		Sheet:    editable.SheetName,
	}
}

// RecordUpdate is the request body for replacing an existing record.
type RecordUpdate struct {
	ID uint `json:"id" example:"17"` // ID of the record to replace
	RecordEditable
}

// Record is the representation of a Record in API v1. Exactly one of
// the expense and income fields is set, matching the record kind.
type Record struct {
	ID        uint       `json:"id" example:"17"`
	Date      types.Date `json:"date" example:"2023-03-15"`
	Expense   string     `json:"expense,omitempty" example:"Groceries"`
	Income    string     `json:"income,omitempty" example:"Salary"`
	Category  string     `json:"category" example:"food"`
	Amount    float64    `json:"amount" example:"14.03"`
	SheetName string     `json:"sheet_name" example:"default"`
}

// newRecord returns the API v1 representation of the resource
func newRecord(model models.Record) Record {
	record := Record{
		ID:        model.ID,
		Date:      model.Date,
		Category:  model.Category,
		Amount:    model.Amount,
		SheetName: model.Sheet,
	}

	if model.Kind == models.KindIncome {
		record.Income = model.Label
	} else {
		record.Expense = model.Label
	}

	return record
}

// RecordResponse is the response for a single record.
type RecordResponse struct {
	Success bool   `json:"success" example:"true"`
	Data    Record `json:"data"`
}

// RecordListResponse is the response for a record list.
type RecordListResponse struct {
	Success bool     `json:"success" example:"true"`
	Data    []Record `json:"data"`
}
