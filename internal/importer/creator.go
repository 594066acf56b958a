// Package importer turns parsed workbook rows into records.
package importer

import (
	"github.com/cashsheet/backend/internal/importer/parser/xlsx"
	"github.com/cashsheet/backend/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateRecords inserts the rows as records of the given kind on the
// given sheet. Rows are written one by one so that a single bad row
// does not abort the import: rows with an unparseable amount or a
// failed insert are counted as skipped and logged.
func CreateRecords(db *gorm.DB, kind models.Kind, sheet string, rows []xlsx.Row) (created, skipped int) {
	for _, row := range rows {
		amount, err := decimal.NewFromString(row.Amount)
		if err != nil {
			log.Debug().Str("amount", row.Amount).Str("label", row.Label).Msg("skipping row with invalid amount")
			skipped++
			continue
		}

		record := models.Record{
			Kind:     kind,
			Date:     row.Date,
			Label:    row.Label,
			Category: row.Category,
			Amount:   amount.InexactFloat64(),
			Sheet:    sheet,
		}

		if err := db.Create(&record).Error; err != nil {
			log.Debug().Err(err).Str("label", row.Label).Msg("skipping row that could not be saved")
			skipped++
			continue
		}

		created++
	}

	return created, skipped
}
