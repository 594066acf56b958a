package v1

import (
	"net/http"

	"github.com/cashsheet/backend/internal/httputil"
	"github.com/cashsheet/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterRootRoutes registers the root routes for v1 with the
// RouterGroup that is passed.
func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

// Response is the link list for the v1 API.
type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Expenses string `json:"expenses" example:"https://example.com/v1/expenses"` // URL of the expense record collection endpoint
	Income   string `json:"income" example:"https://example.com/v1/income"`     // URL of the income record collection endpoint
	Sheets   string `json:"sheets" example:"https://example.com/v1/sheets"`     // URL of the sheet collection endpoint
	Clear    string `json:"clear" example:"https://example.com/v1/clear"`       // URL of the bulk clear endpoint
	Import   string `json:"import" example:"https://example.com/v1/import"`     // URL of the workbook import endpoint
	Export   string `json:"export" example:"https://example.com/v1/export"`     // URL of the workbook export endpoint
	Reports  string `json:"reports" example:"https://example.com/v1/reports"`   // URL prefix of the report endpoints
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Expenses: url + "/v1/expenses",
			Income:   url + "/v1/income",
			Sheets:   url + "/v1/sheets",
			Clear:    url + "/v1/clear",
			Import:   url + "/v1/import",
			Export:   url + "/v1/export",
			Reports:  url + "/v1/reports",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
