package v1

import (
	"time"

	"github.com/cashsheet/backend/internal/models"
)

// SheetEditable are the fields of a sheet that clients can set.
type SheetEditable struct {
	Name string `json:"name" example:"vacation 2023"` // Name of the sheet
}

// Sheet is the representation of a Sheet in API v1.
type Sheet struct {
	ID        uint      `json:"id" example:"2"`
	Name      string    `json:"name" example:"vacation 2023"`
	CreatedAt time.Time `json:"created_at" example:"2023-03-15T09:31:00.000000Z"`
}

// newSheet returns the API v1 representation of the resource
func newSheet(model models.Sheet) Sheet {
	return Sheet{
		ID:        model.ID,
		Name:      model.Name,
		CreatedAt: model.CreatedAt,
	}
}

// SheetResponse is the response for a single sheet.
type SheetResponse struct {
	Success bool  `json:"success" example:"true"`
	Data    Sheet `json:"data"`
}

// SheetListResponse is the response for the sheet list.
type SheetListResponse struct {
	Success bool    `json:"success" example:"true"`
	Data    []Sheet `json:"data"`
}
