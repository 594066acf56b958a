package v1

import (
	"net/http"
	"strings"

	"github.com/cashsheet/backend/internal/httputil"
	"github.com/cashsheet/backend/internal/models"
	"github.com/cashsheet/backend/internal/report"
	"github.com/cashsheet/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// CategoryTotalsResponse is the response for the category totals report.
type CategoryTotalsResponse struct {
	Success bool                   `json:"success" example:"true"`
	Data    []report.CategoryTotal `json:"data"`
}

// SeriesResponse is the response for the time series report.
type SeriesResponse struct {
	Success bool          `json:"success" example:"true"`
	Data    report.Series `json:"data"`
}

// MonthlyResponse is the response for the monthly rollup report.
type MonthlyResponse struct {
	Success bool           `json:"success" example:"true"`
	Data    report.Monthly `json:"data"`
}

// CompareResponse is the response for the period comparison report.
type CompareResponse struct {
	Success bool                `json:"success" example:"true"`
	Data    []report.Comparison `json:"data"`
}

// RegisterReportRoutes registers the routes for reports with the
// RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/categories", httputil.OptionsGet)
	r.GET("/categories", GetCategoryTotals)

	r.OPTIONS("/series", httputil.OptionsGet)
	r.GET("/series", GetSeries)

	r.OPTIONS("/monthly", httputil.OptionsGet)
	r.GET("/monthly", GetMonthly)

	r.OPTIONS("/compare", httputil.OptionsGet)
	r.GET("/compare", GetCompare)
}

// reportKind parses the kind query parameter, defaulting to expenses.
func reportKind(value string) (models.Kind, error) {
	if value == "" {
		return models.KindExpense, nil
	}

	kind := models.Kind(value)
	if !kind.Valid() {
		return "", models.ErrRecordKindInvalid
	}

	return kind, nil
}

// splitCategories splits the comma separated categories parameter into
// patterns, dropping empty entries.
func splitCategories(value string) []string {
	var patterns []string
	for _, pattern := range strings.Split(value, ",") {
		pattern = strings.TrimSpace(pattern)
		if pattern != "" {
			patterns = append(patterns, pattern)
		}
	}

	return patterns
}

// @Summary		Category totals
// @Description	Returns the per-category totals of one record kind, ordered by total descending
// @Tags			Reports
// @Produce		json
// @Success		200			{object}	CategoryTotalsResponse
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			kind		query		string	false	"Record kind, expense or income. Defaults to expense"
// @Param			sheet		query		string	false	"Sheet to report on. Defaults to the default sheet"
// @Param			from		query		string	false	"Start of the date range, YYYY-MM-DD, inclusive"
// @Param			to			query		string	false	"End of the date range, YYYY-MM-DD, inclusive"
// @Router			/v1/reports/categories [get]
func GetCategoryTotals(c *gin.Context) {
	var query struct {
		Kind  string `form:"kind"`
		Sheet string `form:"sheet"`
		From  string `form:"from"`
		To    string `form:"to"`
	}

	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, newHTTPError(err))
		return
	}

	kind, err := reportKind(query.Kind)
	if err != nil {
		c.JSON(http.StatusBadRequest, newHTTPError(err))
		return
	}

	records, err := models.Records(models.DB, kind, query.Sheet, 0)
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	window := report.Window{From: types.Date(query.From), Until: types.Date(query.To)}
	c.JSON(http.StatusOK, CategoryTotalsResponse{
		Success: true,
		Data:    report.CategoryTotals(records, window),
	})
}

// @Summary		Time series
// @Description	Returns per-date sums for the selected categories, either daily or cumulative. Categories are glob patterns, an empty selection means all categories
// @Tags			Reports
// @Produce		json
// @Success		200			{object}	SeriesResponse
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			kind		query		string	false	"Record kind, expense or income. Defaults to expense"
// @Param			sheet		query		string	false	"Sheet to report on. Defaults to the default sheet"
// @Param			categories	query		string	false	"Comma separated category patterns"
// @Param			cumulative	query		bool	false	"Accumulate the sums over time"
// @Router			/v1/reports/series [get]
func GetSeries(c *gin.Context) {
	var query struct {
		Kind       string `form:"kind"`
		Sheet      string `form:"sheet"`
		Categories string `form:"categories"`
		Cumulative bool   `form:"cumulative"`
	}

	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, newHTTPError(err))
		return
	}

	kind, err := reportKind(query.Kind)
	if err != nil {
		c.JSON(http.StatusBadRequest, newHTTPError(err))
		return
	}

	records, err := models.Records(models.DB, kind, query.Sheet, 0)
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	categories := splitCategories(query.Categories)

	var series report.Series
	if query.Cumulative {
		series = report.CumulativeSeries(records, categories)
	} else {
		series = report.DailySeries(records, categories)
	}

	c.JSON(http.StatusOK, SeriesResponse{Success: true, Data: series})
}

// @Summary		Monthly rollup
// @Description	Returns per-month expense and income totals with cash flow, plus grand totals and monthly means
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	MonthlyResponse
// @Failure		500		{object}	httpError
// @Param			sheet	query		string	false	"Sheet to report on. Defaults to the default sheet"
// @Router			/v1/reports/monthly [get]
func GetMonthly(c *gin.Context) {
	var query struct {
		Sheet string `form:"sheet"`
	}

	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, newHTTPError(err))
		return
	}

	expenses, err := models.Records(models.DB, models.KindExpense, query.Sheet, 0)
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	income, err := models.Records(models.DB, models.KindIncome, query.Sheet, 0)
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	c.JSON(http.StatusOK, MonthlyResponse{
		Success: true,
		Data:    report.MonthlyRollup(expenses, income),
	})
}

// @Summary		Compare periods
// @Description	Returns per-category totals for two date ranges and the signed difference between them
// @Tags			Reports
// @Produce		json
// @Success		200			{object}	CompareResponse
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			kind		query		string	false	"Record kind, expense or income. Defaults to expense"
// @Param			sheet		query		string	false	"Sheet to report on. Defaults to the default sheet"
// @Param			categories	query		string	false	"Comma separated category patterns"
// @Param			firstFrom	query		string	false	"Start of the first range, YYYY-MM-DD, inclusive"
// @Param			firstUntil	query		string	false	"End of the first range, YYYY-MM-DD, inclusive"
// @Param			secondFrom	query		string	false	"Start of the second range, YYYY-MM-DD, inclusive"
// @Param			secondUntil	query		string	false	"End of the second range, YYYY-MM-DD, inclusive"
// @Router			/v1/reports/compare [get]
func GetCompare(c *gin.Context) {
	var query struct {
		Kind        string `form:"kind"`
		Sheet       string `form:"sheet"`
		Categories  string `form:"categories"`
		FirstFrom   string `form:"firstFrom"`
		FirstUntil  string `form:"firstUntil"`
		SecondFrom  string `form:"secondFrom"`
		SecondUntil string `form:"secondUntil"`
	}

	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, newHTTPError(err))
		return
	}

	kind, err := reportKind(query.Kind)
	if err != nil {
		c.JSON(http.StatusBadRequest, newHTTPError(err))
		return
	}

	records, err := models.Records(models.DB, kind, query.Sheet, 0)
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	first := report.Window{From: types.Date(query.FirstFrom), Until: types.Date(query.FirstUntil)}
	second := report.Window{From: types.Date(query.SecondFrom), Until: types.Date(query.SecondUntil)}

	c.JSON(http.StatusOK, CompareResponse{
		Success: true,
		Data:    report.Compare(records, first, second, splitCategories(query.Categories)),
	})
}
