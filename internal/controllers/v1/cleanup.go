package v1

import (
	"net/http"

	"github.com/cashsheet/backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CleanupResponse is the response for the bulk clear.
type CleanupResponse struct {
	Success bool `json:"success" example:"true"`
}

// @Summary		Delete all records
// @Description	Permanently deletes every expense and income record across all sheets. Sheets themselves are kept
// @Tags			v1
// @Produce		json
// @Success		200	{object}	CleanupResponse
// @Failure		500	{object}	httpError
// @Router			/v1/clear [post]
func Cleanup(c *gin.Context) {
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		for _, kind := range []models.Kind{models.KindExpense, models.KindIncome} {
			if err := models.DeleteAllRecords(tx, kind); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	c.JSON(http.StatusOK, CleanupResponse{Success: true})
}
