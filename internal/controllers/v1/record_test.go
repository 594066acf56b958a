package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/cashsheet/backend/internal/controllers/v1"
	"github.com/cashsheet/backend/internal/models"
	"github.com/cashsheet/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsRecords() {
	for _, path := range []string{"/v1/expenses", "/v1/income"} {
		recorder := test.Request(suite.T(), http.MethodOptions, path, "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
		suite.Assert().Equal("GET, POST, PUT, DELETE", recorder.Header().Get("allow"))
	}
}

func (suite *TestSuiteStandard) TestCreateRecord() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/expenses", `{"date": "2023-03-15", "expense": "Groceries", "category": "food", "amount": 42.5}`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.RecordResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().True(response.Success)
	suite.Assert().Equal("Groceries", response.Data.Expense)
	suite.Assert().Equal("", response.Data.Income)
	suite.Assert().Equal(42.5, response.Data.Amount)
	suite.Assert().Equal(models.DefaultSheet, response.Data.SheetName)
}

func (suite *TestSuiteStandard) TestCreateRecordStringAmount() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/income", `{"date": "2023-03-15", "income": "Salary", "category": "work", "amount": "2500.00"}`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.RecordResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal("Salary", response.Data.Income)
	suite.Assert().Equal(2500.0, response.Data.Amount)
}

func (suite *TestSuiteStandard) TestCreateRecordInvalidAmount() {
	tests := []struct {
		name string
		body string
	}{
		{"negative", `{"expense": "Refund", "amount": -10}`},
		{"non-numeric", `{"expense": "Refund", "amount": "a lot"}`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "/v1/expenses", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

			var response v1.RecordResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.False(t, response.Success)
		})
	}
}

func (suite *TestSuiteStandard) TestGetRecords() {
	for i := 0; i < 12; i++ {
		suite.createTestRecord(models.Record{Kind: models.KindExpense, Label: fmt.Sprintf("Entry %d", i), Amount: float64(i)})
	}
	suite.createTestRecord(models.Record{Kind: models.KindIncome, Label: "Salary", Amount: 2500})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.RecordListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// The list is capped to the 10 most recent records
	suite.Assert().True(response.Success)
	suite.Assert().Len(response.Data, 10)
	suite.Assert().Equal("Entry 11", response.Data[0].Expense)
}

func (suite *TestSuiteStandard) TestGetRecordsLimit() {
	for i := 0; i < 3; i++ {
		suite.createTestRecord(models.Record{Kind: models.KindExpense, Label: fmt.Sprintf("Entry %d", i), Amount: 1})
	}

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/expenses?limit=0", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.RecordListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 3)
}

func (suite *TestSuiteStandard) TestGetRecordsSheet() {
	suite.createTestRecord(models.Record{Kind: models.KindExpense, Label: "Default entry", Amount: 1})
	suite.createTestRecord(models.Record{Kind: models.KindExpense, Label: "Trip entry", Amount: 1, Sheet: "trip"})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/expenses?sheet=trip", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.RecordListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("Trip entry", response.Data[0].Expense)
}

func (suite *TestSuiteStandard) TestGetRecordsEmpty() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/income", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	// The data field must be an empty list, not null
	suite.Assert().Contains(recorder.Body.String(), `"data":[]`)
}

func (suite *TestSuiteStandard) TestUpdateRecord() {
	record := suite.createTestRecord(models.Record{Kind: models.KindExpense, Date: "2023-03-01", Label: "Grocerys", Category: "food", Amount: 40})

	body := fmt.Sprintf(`{"id": %d, "date": "2023-03-02", "expense": "Groceries", "category": "food", "amount": 42.5}`, record.ID)
	recorder := test.Request(suite.T(), http.MethodPut, "/v1/expenses", body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.RecordResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal("Groceries", response.Data.Expense)
	suite.Assert().Equal(42.5, response.Data.Amount)

	var reloaded models.Record
	suite.Require().NoError(models.DB.First(&reloaded, record.ID).Error)
	suite.Assert().Equal("Groceries", reloaded.Label)
}

func (suite *TestSuiteStandard) TestUpdateRecordNonexistent() {
	recorder := test.Request(suite.T(), http.MethodPut, "/v1/expenses", `{"id": 4879, "expense": "Ghost", "amount": 1}`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.RecordResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Success)
}

func (suite *TestSuiteStandard) TestUpdateRecordWrongKind() {
	record := suite.createTestRecord(models.Record{Kind: models.KindIncome, Label: "Salary", Amount: 2500})

	// An income record must not be editable through the expense endpoint.
	body := fmt.Sprintf(`{"id": %d, "expense": "Hijacked", "amount": 1}`, record.ID)
	recorder := test.Request(suite.T(), http.MethodPut, "/v1/expenses", body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var reloaded models.Record
	suite.Require().NoError(models.DB.First(&reloaded, record.ID).Error)
	suite.Assert().Equal("Salary", reloaded.Label)
}

func (suite *TestSuiteStandard) TestDeleteRecordByID() {
	record := suite.createTestRecord(models.Record{Kind: models.KindExpense, Label: "Groceries", Amount: 42.5})
	keep := suite.createTestRecord(models.Record{Kind: models.KindExpense, Label: "Bus ticket", Amount: 2.8})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/expenses?id=%d", record.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	records, err := models.Records(models.DB, models.KindExpense, "", 0)
	suite.Require().NoError(err)
	suite.Require().Len(records, 1)
	suite.Assert().Equal(keep.ID, records[0].ID)
}

func (suite *TestSuiteStandard) TestDeleteRecordNonexistent() {
	recorder := test.Request(suite.T(), http.MethodDelete, "/v1/expenses?id=4879", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestDeleteLastRecords() {
	for i := 0; i < 7; i++ {
		suite.createTestRecord(models.Record{Kind: models.KindExpense, Label: fmt.Sprintf("Entry %d", i), Amount: 1})
	}

	recorder := test.Request(suite.T(), http.MethodDelete, "/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	records, err := models.Records(models.DB, models.KindExpense, "", 0)
	suite.Require().NoError(err)
	suite.Require().Len(records, 2)
	suite.Assert().Equal("Entry 1", records[0].Label)
	suite.Assert().Equal("Entry 0", records[1].Label)
}
