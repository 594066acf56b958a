package v1_test

import (
	"net/http"

	v1 "github.com/cashsheet/backend/internal/controllers/v1"
	"github.com/cashsheet/backend/test"
)

func (suite *TestSuiteStandard) TestGetV1() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal("http://example.com/v1/expenses", response.Links.Expenses)
	suite.Assert().Equal("http://example.com/v1/income", response.Links.Income)
	suite.Assert().Equal("http://example.com/v1/sheets", response.Links.Sheets)
	suite.Assert().Equal("http://example.com/v1/import", response.Links.Import)
	suite.Assert().Equal("http://example.com/v1/export", response.Links.Export)
	suite.Assert().Equal("http://example.com/v1/reports", response.Links.Reports)
}

func (suite *TestSuiteStandard) TestOptionsV1() {
	recorder := test.Request(suite.T(), http.MethodOptions, "/v1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("GET", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetRoot() {
	recorder := test.Request(suite.T(), http.MethodGet, "/", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().Contains(recorder.Body.String(), "http://example.com/v1")
	suite.Assert().Contains(recorder.Body.String(), "http://example.com/docs/index.html")
}

func (suite *TestSuiteStandard) TestNoMethod() {
	recorder := test.Request(suite.T(), http.MethodPatch, "/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusMethodNotAllowed)
	suite.Assert().Contains(recorder.Body.String(), `"success":false`)
}

func (suite *TestSuiteStandard) TestMetrics() {
	// At least one observed request is needed for the counter to show up
	recorder := test.Request(suite.T(), http.MethodGet, "/v1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodGet, "/metrics", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().Contains(recorder.Body.String(), "requests_total")
}
