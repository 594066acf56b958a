package v1_test

import (
	"net/http"

	v1 "github.com/cashsheet/backend/internal/controllers/v1"
	"github.com/cashsheet/backend/internal/models"
	"github.com/cashsheet/backend/test"
)

func (suite *TestSuiteStandard) createReportRecords() {
	suite.createTestRecord(models.Record{Kind: models.KindExpense, Date: "2023-03-01", Label: "Rent", Category: "housing", Amount: 850})
	suite.createTestRecord(models.Record{Kind: models.KindExpense, Date: "2023-03-02", Label: "Groceries", Category: "food", Amount: 42.5})
	suite.createTestRecord(models.Record{Kind: models.KindExpense, Date: "2023-04-05", Label: "Groceries", Category: "food", Amount: 60})
	suite.createTestRecord(models.Record{Kind: models.KindIncome, Date: "2023-03-15", Label: "Salary", Category: "work", Amount: 2500})
}

func (suite *TestSuiteStandard) TestGetCategoryTotals() {
	suite.createReportRecords()

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/reports/categories", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryTotalsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("housing", response.Data[0].Category)
	suite.Assert().Equal(850.0, response.Data[0].Total)
	suite.Assert().Equal("food", response.Data[1].Category)
	suite.Assert().Equal(102.5, response.Data[1].Total)
}

func (suite *TestSuiteStandard) TestGetCategoryTotalsWindow() {
	suite.createReportRecords()

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/reports/categories?from=2023-04-01&to=2023-04-30", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryTotalsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("food", response.Data[0].Category)
	suite.Assert().Equal(60.0, response.Data[0].Total)
}

func (suite *TestSuiteStandard) TestGetCategoryTotalsInvalidKind() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/reports/categories?kind=subscription", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Contains(recorder.Body.String(), "expense or income")
}

func (suite *TestSuiteStandard) TestGetSeries() {
	suite.createReportRecords()

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/reports/series?categories=food", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SeriesResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal([]string{"2023-03-02", "2023-04-05"}, response.Data.Dates)
	suite.Require().Len(response.Data.Lines, 1)
	suite.Assert().Equal([]float64{42.5, 60}, response.Data.Lines[0].Values)
}

func (suite *TestSuiteStandard) TestGetSeriesCumulative() {
	suite.createReportRecords()

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/reports/series?categories=food&cumulative=true", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SeriesResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data.Lines, 1)
	suite.Assert().Equal([]float64{42.5, 102.5}, response.Data.Lines[0].Values)
}

func (suite *TestSuiteStandard) TestGetMonthly() {
	suite.createReportRecords()

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/reports/monthly", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MonthlyResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data.Months, 2)
	suite.Assert().Equal("2023-03", response.Data.Months[0].Month)
	suite.Assert().Equal(892.5, response.Data.Months[0].Expenses)
	suite.Assert().Equal(2500.0, response.Data.Months[0].Income)
	suite.Assert().Equal(1607.5, response.Data.Months[0].CashFlow)
	suite.Assert().Equal("2023-04", response.Data.Months[1].Month)
	suite.Assert().Equal(-60.0, response.Data.Months[1].CashFlow)
}

func (suite *TestSuiteStandard) TestGetCompare() {
	suite.createReportRecords()

	url := "/v1/reports/compare?categories=food&firstFrom=2023-03-01&firstUntil=2023-03-31&secondFrom=2023-04-01&secondUntil=2023-04-30"
	recorder := test.Request(suite.T(), http.MethodGet, url, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CompareResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("food", response.Data[0].Category)
	suite.Assert().Equal(42.5, response.Data[0].First)
	suite.Assert().Equal(60.0, response.Data[0].Second)
	suite.Assert().Equal(17.5, response.Data[0].Diff)
}
