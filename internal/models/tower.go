package models

import (
	"github.com/leasedesk/backend/internal/formschema"
	"gorm.io/gorm"
)

// Tower is a building of an organization.
type Tower struct {
	DefaultModel
	OrganizationID uint64 `gorm:"uniqueIndex:tower_code"`
	Code           string `gorm:"uniqueIndex:tower_code"`
	Name           string
	Floors         []Floor `gorm:"constraint:OnDelete:CASCADE"`
}

func (t *Tower) BeforeSave(_ *gorm.DB) error {
	trim(&t.Code, &t.Name)
	return nil
}

func (t *Tower) AfterSave(tx *gorm.DB) error {
	if t.Code == "" {
		return ErrCodeEmpty
	}

	return organizationExists(tx, t.OrganizationID)
}

// Floor is a level of a tower.
type Floor struct {
	DefaultModel
	TowerID uint64 `gorm:"uniqueIndex:floor_name"`
	Name    string `gorm:"uniqueIndex:floor_name"`
	Level   int
}

func (f *Floor) BeforeSave(_ *gorm.DB) error {
	trim(&f.Name)
	return nil
}

func (f *Floor) AfterSave(tx *gorm.DB) error {
	if f.Name == "" {
		return ErrNameEmpty
	}

	return tx.First(&Tower{}, f.TowerID).Error
}

// TowerOptions returns the towers of an organization with their floors,
// ordered by code and level, as options for tower and floor fields.
func TowerOptions(db *gorm.DB, organizationID uint64) ([]formschema.Tower, error) {
	var towers []Tower
	err := db.
		Preload("Floors", func(db *gorm.DB) *gorm.DB {
			return db.Order("floors.level ASC, floors.name ASC")
		}).
		Where(&Tower{OrganizationID: organizationID}).
		Order("towers.code ASC").
		Find(&towers).Error
	if err != nil {
		return nil, err
	}

	options := make([]formschema.Tower, 0, len(towers))
	for _, t := range towers {
		o := formschema.Tower{ID: t.ID, Name: t.Name}
		for _, f := range t.Floors {
			o.Floors = append(o.Floors, formschema.Floor{ID: f.ID, Name: f.Name})
		}
		options = append(options, o)
	}

	return options, nil
}
