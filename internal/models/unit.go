package models

import (
	"github.com/leasedesk/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type UnitStatus string

const (
	UnitVacant   UnitStatus = "VACANT"
	UnitOccupied UnitStatus = "OCCUPIED"
)

// Unit is a leasable space on a floor of a tower.
type Unit struct {
	DefaultModel
	OrganizationID uint64 `gorm:"uniqueIndex:unit_code"`
	Code           string `gorm:"uniqueIndex:unit_code"`
	TowerID        uint64
	Tower          Tower
	FloorID        uint64
	Floor          Floor
	AreaSqft       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Status         UnitStatus
	CustomFields   types.Values
}

func (u *Unit) BeforeSave(_ *gorm.DB) error {
	trim(&u.Code)

	if u.Status == "" {
		u.Status = UnitVacant
	}

	return nil
}

// AfterSave verifies that the unit's floor is a floor of the unit's tower
// and that the tower belongs to the unit's organization.
func (u *Unit) AfterSave(tx *gorm.DB) error {
	if u.Code == "" {
		return ErrCodeEmpty
	}

	if !slices.Contains([]UnitStatus{UnitVacant, UnitOccupied}, u.Status) {
		return ErrUnitStatusInvalid
	}

	if u.AreaSqft.IsNegative() {
		return ErrUnitAreaNegative
	}

	err := ownedBy(tx, &Tower{}, u.TowerID, u.OrganizationID)
	if err != nil {
		return err
	}

	return tx.Where("tower_id = ?", u.TowerID).First(&Floor{}, u.FloorID).Error
}
