package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultModel is the base model for all models in the Cashsheet backend.
type DefaultModel struct {
	ID        uint            `json:"id" example:"17"`                                                           // Unique numeric ID of the resource
	CreatedAt time.Time       `json:"createdAt" example:"2022-04-02T19:28:44.491514Z"`                           // Time the resource was created
	UpdatedAt time.Time       `json:"updatedAt" example:"2022-04-17T20:14:01.048145Z"`                           // Last time the resource was updated
	DeletedAt *gorm.DeletedAt `json:"-" gorm:"index" example:"2022-04-22T21:01:05.058161Z" swaggerignore:"true"` // Time the resource was marked as deleted
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (m *DefaultModel) AfterFind(_ *gorm.DB) (err error) {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)

	if m.DeletedAt != nil {
		m.DeletedAt.Time = m.DeletedAt.Time.In(time.UTC)
	}

	return nil
}
