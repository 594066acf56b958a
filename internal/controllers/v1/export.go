package v1

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/cashsheet/backend/internal/exporter"
	"github.com/cashsheet/backend/internal/httputil"
	"github.com/cashsheet/backend/internal/models"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// RegisterExportRoutes registers the routes for the export with the
// RouterGroup that is passed.
func RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsExport)
	r.GET("", Export)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export records
// @Description	Downloads all records of a sheet as an xlsx workbook with one tab per record kind
// @Tags			Export
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success		200
// @Failure		500			{object}	httpError
// @Param			sheet		query		string	false	"Sheet to export. Defaults to the default sheet"
// @Param			filename	query		string	false	"File name for the download. Defaults to financial_data.xlsx, '.xlsx' is appended when missing"
// @Router			/v1/export [get]
func Export(c *gin.Context) {
	var query struct {
		Sheet    string `form:"sheet"`
		Filename string `form:"filename"`
	}

	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, newHTTPError(err))
		return
	}

	filename := query.Filename
	if filename == "" {
		filename = exporter.DefaultFilename
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		filename += ".xlsx"
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

	f, err := exporter.Workbook(expenses, income)
	if err != nil {
		c.JSON(http.StatusInternalServerError, newHTTPError(err))
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", xlsxContentType)
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		// The header is already sent, all we can do is log.
		_ = c.Error(err)
	}
}
