package models

import (
	"math"
	"strings"

	"github.com/cashsheet/backend/internal/types"
	"gorm.io/gorm"
)

// Kind is the variant tag of a Record. Expense and income records share
// one shape and are distinguished by this tag only.
type Kind string

const (
	KindExpense Kind = "expense"
	KindIncome  Kind = "income"
)

// Valid reports whether the Kind is one of the two known variants.
func (k Kind) Valid() bool {
	return k == KindExpense || k == KindIncome
}

// Record is a single expense or income transaction entry. Every record
// belongs to exactly one sheet.
type Record struct {
	DefaultModel
	Kind     Kind       `gorm:"index:idx_records_kind_sheet"`
	Date     types.Date // "YYYY-MM-DD". May be empty or unparsed after a permissive import.
	Label    string     // The free-text description. Maps to the "expense" or "income" field, depending on the kind.
	Category string
	Amount   float64 `gorm:"type:REAL"`
	Sheet    string  `gorm:"column:sheet_name;index:idx_records_kind_sheet"`
}

// BeforeSave trims string fields, defaults the sheet and rejects
// records that would corrupt aggregation later: unknown kinds and
// amounts that are negative or not a finite number.
func (r *Record) BeforeSave(_ *gorm.DB) error {
	r.Label = strings.TrimSpace(r.Label)
	r.Category = strings.TrimSpace(r.Category)
	r.Sheet = strings.TrimSpace(r.Sheet)

	if r.Sheet == "" {
		r.Sheet = DefaultSheet
	}

	if !r.Kind.Valid() {
		return ErrRecordKindInvalid
	}

	if math.IsNaN(r.Amount) || math.IsInf(r.Amount, 0) || r.Amount < 0 {
		return ErrAmountInvalid
	}

	return nil
}

// Records returns the records of one kind on one sheet, most recently
// created first. A limit of 0 returns all records.
func Records(db *gorm.DB, kind Kind, sheet string, limit int) ([]Record, error) {
	if sheet == "" {
		sheet = DefaultSheet
	}

	q := db.
		Where(&Record{Kind: kind, Sheet: sheet}, "Kind", "Sheet").
		Order("datetime(records.created_at) DESC, records.id DESC")

	if limit > 0 {
		q = q.Limit(limit)
	}

	var records []Record
	err := q.Find(&records).Error
	return records, err
}

// DeleteLastRecords deletes the n most recently created records of one
// kind on one sheet.
func DeleteLastRecords(db *gorm.DB, kind Kind, sheet string, n int) error {
	records, err := Records(db, kind, sheet, n)
	if err != nil {
		return err
	}

	for _, record := range records {
		if err := db.Delete(&record).Error; err != nil {
			return err
		}
	}

	return nil
}

// DeleteAllRecords permanently deletes every record of one kind, across
// all sheets.
func DeleteAllRecords(db *gorm.DB, kind Kind) error {
	return db.Unscoped().Where(&Record{Kind: kind}, "Kind").Delete(&Record{}).Error
}
