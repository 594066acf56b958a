package models_test

import (
	"math"
	"testing"

	"github.com/cashsheet/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createTestRecord(record models.Record) models.Record {
	err := models.DB.Create(&record).Error
	require.Nil(suite.T(), err, "record could not be saved")
	return record
}

func (suite *TestSuiteStandard) TestRecordDefaultSheet() {
	record := suite.createTestRecord(models.Record{
		Kind:     models.KindExpense,
		Date:     "2025-05-10",
		Label:    "Coffee",
		Category: "misc",
		Amount:   3.5,
	})

	assert.Equal(suite.T(), models.DefaultSheet, record.Sheet)
}

func (suite *TestSuiteStandard) TestRecordTrimsWhitespace() {
	record := suite.createTestRecord(models.Record{
		Kind:     models.KindIncome,
		Label:    " Salary ",
		Category: " work ",
		Amount:   100,
		Sheet:    " household ",
	})

	assert.Equal(suite.T(), "Salary", record.Label)
	assert.Equal(suite.T(), "work", record.Category)
	assert.Equal(suite.T(), "household", record.Sheet)
}

func (suite *TestSuiteStandard) TestRecordInvalid() {
	tests := []struct {
		name   string
		record models.Record
		err    error
	}{
		{"no kind", models.Record{Amount: 1}, models.ErrRecordKindInvalid},
		{"unknown kind", models.Record{Kind: "transfer", Amount: 1}, models.ErrRecordKindInvalid},
		{"negative amount", models.Record{Kind: models.KindExpense, Amount: -0.01}, models.ErrAmountInvalid},
		{"NaN amount", models.Record{Kind: models.KindExpense, Amount: math.NaN()}, models.ErrAmountInvalid},
		{"infinite amount", models.Record{Kind: models.KindIncome, Amount: math.Inf(1)}, models.ErrAmountInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.record).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestRecordsOrderAndLimit() {
	for _, label := range []string{"first", "second", "third"} {
		_ = suite.createTestRecord(models.Record{Kind: models.KindExpense, Label: label, Amount: 1})
	}
	_ = suite.createTestRecord(models.Record{Kind: models.KindIncome, Label: "not an expense", Amount: 1})
	_ = suite.createTestRecord(models.Record{Kind: models.KindExpense, Label: "elsewhere", Amount: 1, Sheet: "other"})

	records, err := models.Records(models.DB, models.KindExpense, "", 0)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), records, 3)

	// Records are created within the same second, the ID breaks the tie
	assert.Equal(suite.T(), "third", records[0].Label)
	assert.Equal(suite.T(), "first", records[2].Label)

	records, err = models.Records(models.DB, models.KindExpense, "", 2)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), records, 2)
}

func (suite *TestSuiteStandard) TestDeleteLastRecords() {
	for i := 0; i < 7; i++ {
		_ = suite.createTestRecord(models.Record{Kind: models.KindExpense, Amount: float64(i)})
	}

	err := models.DeleteLastRecords(models.DB, models.KindExpense, "", 5)
	require.Nil(suite.T(), err)

	records, err := models.Records(models.DB, models.KindExpense, "", 0)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), records, 2)
}

func (suite *TestSuiteStandard) TestDeleteAllRecords() {
	_ = suite.createTestRecord(models.Record{Kind: models.KindExpense, Amount: 1})
	_ = suite.createTestRecord(models.Record{Kind: models.KindExpense, Amount: 2, Sheet: "other"})
	_ = suite.createTestRecord(models.Record{Kind: models.KindIncome, Amount: 3})

	err := models.DeleteAllRecords(models.DB, models.KindExpense)
	require.Nil(suite.T(), err)

	// Expenses are gone on every sheet
	for _, sheet := range []string{models.DefaultSheet, "other"} {
		records, err := models.Records(models.DB, models.KindExpense, sheet, 0)
		require.Nil(suite.T(), err)
		assert.Len(suite.T(), records, 0)
	}

	// Income is untouched
	records, err := models.Records(models.DB, models.KindIncome, "", 0)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), records, 1)
}
