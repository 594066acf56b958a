package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/cashsheet/backend/internal/httputil"
	"github.com/cashsheet/backend/internal/importer"
	"github.com/cashsheet/backend/internal/importer/parser/xlsx"
	"github.com/cashsheet/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// previewRowCount is how many normalized rows per kind are echoed back
// for confirmation display. This truncation is a UI convenience, every
// valid row is stored.
const previewRowCount = 10

// ImportTab is the import outcome for one workbook tab.
type ImportTab struct {
	Preview []xlsx.Row `json:"preview"`         // The first rows, for confirmation display
	Created int        `json:"created"`         // Number of records created from this tab
	Skipped int        `json:"skipped"`         // Number of rows that could not be stored
	Error   string     `json:"error,omitempty"` // Set when the tab could not be processed
}

// ImportData is the import outcome for the whole workbook.
type ImportData struct {
	Expense ImportTab `json:"expense"`
	Income  ImportTab `json:"income"`
}

// ImportResponse is the response for a workbook import.
type ImportResponse struct {
	Success bool       `json:"success" example:"true"`
	Data    ImportData `json:"data"`
}

// RegisterImportRoutes registers the routes for the import with the
// RouterGroup that is passed.
func RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsImport)
	r.POST("", Import)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}

	return f, nil
}

// @Summary		Import records
// @Description	Imports expense and income records from an xlsx workbook. The workbook needs an "expense" and/or an "income" tab with the columns date, expense/income, category and amount
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		200		{object}	ImportResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			file	formData	file	true	"The workbook to import"
// @Param			sheet	query		string	false	"Sheet to import into. Defaults to the default sheet"
// @Router			/v1/import [post]
func Import(c *gin.Context) {
	var query struct {
		Sheet string `form:"sheet"`
	}

	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, newHTTPError(err))
		return
	}
	if query.Sheet == "" {
		query.Sheet = models.DefaultSheet
	}

	f, err := getUploadedFile(c, ".xlsx")
	if err != nil {
		c.JSON(http.StatusBadRequest, newHTTPError(err))
		return
	}
	defer f.Close()

	result, err := xlsx.Parse(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, newHTTPError(err))
		return
	}

	c.JSON(http.StatusOK, ImportResponse{
		Success: true,
		Data: ImportData{
			Expense: importTab(result.Expense, models.KindExpense, query.Sheet),
			Income:  importTab(result.Income, models.KindIncome, query.Sheet),
		},
	})
}

// importTab stores the rows of one parsed tab and builds its outcome.
// A tab that is absent or failed to parse creates no records, an absent
// tab is not an error since the other tab carried data.
func importTab(tab xlsx.Tab, kind models.Kind, sheet string) ImportTab {
	out := ImportTab{Preview: make([]xlsx.Row, 0)}

	if !tab.Present {
		return out
	}

	if tab.Err != nil {
		out.Error = tab.Err.Error()
		return out
	}

	out.Created, out.Skipped = importer.CreateRecords(models.DB, kind, sheet, tab.Rows)

	out.Preview = tab.Rows
	if len(out.Preview) > previewRowCount {
		out.Preview = out.Preview[:previewRowCount]
	}

	return out
}
