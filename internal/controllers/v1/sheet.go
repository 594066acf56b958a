package v1

import (
	"net/http"
	"strings"

	"github.com/cashsheet/backend/internal/httputil"
	"github.com/cashsheet/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterSheetRoutes registers the routes for sheets with the
// RouterGroup that is passed.
func RegisterSheetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSheetList)
	r.GET("", GetSheets)
	r.POST("", CreateSheet)
	r.DELETE("", DeleteSheet)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Sheets
// @Success		204
// @Router			/v1/sheets [options]
func OptionsSheetList(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// @Summary		List sheets
// @Description	Returns all sheets in creation order
// @Tags			Sheets
// @Produce		json
// @Success		200	{object}	SheetListResponse
// @Failure		500	{object}	httpError
// @Router			/v1/sheets [get]
func GetSheets(c *gin.Context) {
	sheets, err := models.Sheets(models.DB)
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	// When there are no resources, we want an empty list, not null
	data := make([]Sheet, 0, len(sheets))
	for _, sheet := range sheets {
		data = append(data, newSheet(sheet))
	}

	c.JSON(http.StatusOK, SheetListResponse{Success: true, Data: data})
}

// @Summary		Create sheet
// @Description	Creates a new sheet. Sheet names are unique
// @Tags			Sheets
// @Produce		json
// @Success		200		{object}	SheetResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			sheet	body		SheetEditable	true	"Sheet"
// @Router			/v1/sheets [post]
func CreateSheet(c *gin.Context) {
	var editable SheetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(http.StatusBadRequest, newHTTPError(err))
		return
	}

	sheet := models.Sheet{Name: strings.TrimSpace(editable.Name)}
	if err := models.DB.Create(&sheet).Error; err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	c.JSON(http.StatusOK, SheetResponse{Success: true, Data: newSheet(sheet)})
}

// @Summary		Delete sheet
// @Description	Deletes the sheet with the given name and all of its records. The default sheet cannot be deleted
// @Tags			Sheets
// @Produce		json
// @Success		200		{object}	SheetListResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			name	query		string	true	"Name of the sheet to delete"
// @Router			/v1/sheets [delete]
func DeleteSheet(c *gin.Context) {
	var query struct {
		Name string `form:"name"`
	}

	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, newHTTPError(err))
		return
	}

	if err := models.DeleteSheet(models.DB, query.Name); err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	GetSheets(c)
}
