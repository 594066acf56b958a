package models

import (
	"strings"

	"gorm.io/gorm"
)

// DefaultSheet is the reserved sheet every record falls back to. It is
// created on connect and cannot be deleted.
const DefaultSheet = "default"

// Sheet is a named partition isolating one set of expense and income
// records from another.
type Sheet struct {
	DefaultModel
	Name string `gorm:"uniqueIndex"`
}

func (s *Sheet) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)
	return nil
}

// Sheets returns all sheet names, oldest first.
func Sheets(db *gorm.DB) ([]Sheet, error) {
	var sheets []Sheet
	err := db.Order("datetime(sheets.created_at) ASC, sheets.id ASC").Find(&sheets).Error
	return sheets, err
}

// DeleteSheet removes a sheet and every record on it. The records are
// deleted first, then the sheet itself; both happen in one database
// transaction so a failure leaves everything in place.
func DeleteSheet(db *gorm.DB, name string) error {
	if name == DefaultSheet {
		return ErrSheetIsDefault
	}

	var sheet Sheet
	err := db.Where(&Sheet{Name: name}).First(&sheet).Error
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Unscoped().Where(&Record{Sheet: name}, "Sheet").Delete(&Record{}).Error
		if err != nil {
			return err
		}

		return tx.Unscoped().Delete(&sheet).Error
	})
}
