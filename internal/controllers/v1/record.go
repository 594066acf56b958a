package v1

import (
	"errors"
	"net/http"

	"github.com/cashsheet/backend/internal/httputil"
	"github.com/cashsheet/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// deleteLastCount is how many records a DELETE without an id removes.
const deleteLastCount = 5

// defaultListLimit is how many records a list request returns when the
// client does not specify a limit. The dashboard shows the most recent
// entries only.
const defaultListLimit = 10

// RegisterRecordRoutes registers the routes for one record kind with
// the RouterGroup that is passed.
func RegisterRecordRoutes(r *gin.RouterGroup, kind models.Kind) {
	r.OPTIONS("", OptionsRecordList)
	r.GET("", GetRecords(kind))
	r.POST("", CreateRecord(kind))
	r.PUT("", UpdateRecord(kind))
	r.DELETE("", DeleteRecords(kind))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Records
// @Success		204
// @Router			/v1/expenses [options]
// @Router			/v1/income [options]
func OptionsRecordList(c *gin.Context) {
	httputil.OptionsGetPostPutDelete(c)
}

// @Summary		List records
// @Description	Returns the most recently created records of the endpoint's kind
// @Tags			Records
// @Produce		json
// @Success		200		{object}	RecordListResponse
// @Failure		500		{object}	httpError
// @Param			sheet	query		string	false	"Sheet to read from. Defaults to the default sheet"
// @Param			limit	query		int		false	"Maximum number of records. Defaults to 10, 0 returns all records"
// @Router			/v1/expenses [get]
// @Router			/v1/income [get]
func GetRecords(kind models.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var query struct {
			Sheet string `form:"sheet"`
			Limit *int   `form:"limit"`
		}

		if err := c.ShouldBindQuery(&query); err != nil {
			c.JSON(http.StatusBadRequest, newHTTPError(err))
			return
		}

		limit := defaultListLimit
		if query.Limit != nil {
			limit = *query.Limit
		}

		records, err := models.Records(models.DB, kind, query.Sheet, limit)
		if err != nil {
			c.JSON(status(err), newHTTPError(err))
			return
		}

		// When there are no resources, we want an empty list, not null
		data := make([]Record, 0, len(records))
		for _, record := range records {
			data = append(data, newRecord(record))
		}

		c.JSON(http.StatusOK, RecordListResponse{Success: true, Data: data})
	}
}

// @Summary		Create record
// @Description	Creates a new record of the endpoint's kind
// @Tags			Records
// @Produce		json
// @Success		200		{object}	RecordResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			record	body		RecordEditable	true	"Record"
// @Router			/v1/expenses [post]
// @Router			/v1/income [post]
func CreateRecord(kind models.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var editable RecordEditable
		if err := httputil.BindData(c, &editable); err != nil {
			c.JSON(http.StatusBadRequest, newHTTPError(err))
			return
		}

		if editable.Amount.IsNegative() {
			c.JSON(http.StatusBadRequest, newHTTPError(models.ErrAmountInvalid))
			return
		}

		record := editable.model(kind)
		if err := models.DB.Create(&record).Error; err != nil {
			c.JSON(status(err), newHTTPError(err))
			return
		}

		c.JSON(http.StatusOK, RecordResponse{Success: true, Data: newRecord(record)})
	}
}

// @Summary		Update record
// @Description	Replaces the date, description, category and amount of the record with the given id. A nonexistent id is a no-op
// @Tags			Records
// @Produce		json
// @Success		200		{object}	RecordResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			record	body		RecordUpdate	true	"Record"
// @Router			/v1/expenses [put]
// @Router			/v1/income [put]
func UpdateRecord(kind models.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var update RecordUpdate
		if err := httputil.BindData(c, &update); err != nil {
			c.JSON(http.StatusBadRequest, newHTTPError(err))
			return
		}

		if update.Amount.IsNegative() {
			c.JSON(http.StatusBadRequest, newHTTPError(models.ErrAmountInvalid))
			return
		}

		var record models.Record
		err := models.DB.
			Where(&models.Record{Kind: kind}, "Kind").
			First(&record, update.ID).Error
		if errors.Is(err, models.ErrResourceNotFound) {
			// Updating a record that does not exist is a no-op.
			c.JSON(http.StatusOK, RecordResponse{Success: true})
			return
		}
		if err != nil {
			c.JSON(status(err), newHTTPError(err))
			return
		}

		record.Date = update.Date
		record.Label = update.label(kind)
		record.Category = update.Category
		record.Amount = update.Amount.InexactFloat64()

		if err := models.DB.Save(&record).Error; err != nil {
			c.JSON(status(err), newHTTPError(err))
			return
		}

		c.JSON(http.StatusOK, RecordResponse{Success: true, Data: newRecord(record)})
	}
}

// @Summary		Delete records
// @Description	Deletes the record with the given id. Without an id, deletes the five most recently created records of the endpoint's kind
// @Tags			Records
// @Produce		json
// @Success		200		{object}	RecordListResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		query		int		false	"ID of the record to delete. A nonexistent id is a no-op"
// @Param			sheet	query		string	false	"Sheet to delete from when no id is given. Defaults to the default sheet"
// @Router			/v1/expenses [delete]
// @Router			/v1/income [delete]
func DeleteRecords(kind models.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var query struct {
			ID    *uint  `form:"id"`
			Sheet string `form:"sheet"`
		}

		if err := c.ShouldBindQuery(&query); err != nil {
			c.JSON(http.StatusBadRequest, newHTTPError(err))
			return
		}

		if query.ID != nil {
			err := models.DB.
				Where(&models.Record{Kind: kind}, "Kind").
				Delete(&models.Record{}, *query.ID).Error
			if err != nil {
				c.JSON(status(err), newHTTPError(err))
				return
			}

			c.JSON(http.StatusOK, RecordListResponse{Success: true, Data: make([]Record, 0)})
			return
		}

		if err := models.DeleteLastRecords(models.DB, kind, query.Sheet, deleteLastCount); err != nil {
			c.JSON(status(err), newHTTPError(err))
			return
		}

		c.JSON(http.StatusOK, RecordListResponse{Success: true, Data: make([]Record, 0)})
	}
}
