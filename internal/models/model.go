package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// DefaultModel is the base model for all models.
type DefaultModel struct {
	ID uint64 `json:"id" gorm:"primaryKey" example:"42"` // ID of the resource
	Timestamps
}

// Timestamps contains the timestamps that gorm sets automatically.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at" example:"2026-04-02T19:28:44.491514Z"` // Time the resource was created
	UpdatedAt time.Time `json:"updated_at" example:"2026-04-17T20:14:01.048145Z"` // Last time the resource was updated
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000.
//
// We already store them in UTC, but reading
// them from the database returns them as +0000.
func (m *DefaultModel) AfterFind(_ *gorm.DB) (err error) {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)

	return nil
}

// organizationExists verifies that the organization exists.
func organizationExists(tx *gorm.DB, id uint64) error {
	return tx.First(&Organization{}, id).Error
}

// ownedBy loads a resource by ID, requiring it to belong to the organization.
func ownedBy(tx *gorm.DB, resource any, id, organizationID uint64) error {
	return tx.Where("organization_id = ?", organizationID).First(resource, id).Error
}

// trim removes leading and trailing whitespace from all strings.
func trim(s ...*string) {
	for _, p := range s {
		*p = strings.TrimSpace(*p)
	}
}
