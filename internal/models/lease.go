package models

import (
	"github.com/leasedesk/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type LeaseStatus string

const (
	LeaseActive     LeaseStatus = "ACTIVE"
	LeaseTerminated LeaseStatus = "TERMINATED"
)

// Lease is the contract of a tenant for a unit.
type Lease struct {
	DefaultModel
	OrganizationID uint64 `gorm:"index"`
	TenantID       uint64
	Tenant         Tenant
	UnitID         uint64
	Unit           Unit
	StartDate      types.Date
	EndDate        types.Date      // zero for open-ended leases
	MonthlyRent    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	CAMRate        decimal.Decimal `gorm:"type:DECIMAL(20,8);column:cam_rate"` // per sq ft and month
	Status         LeaseStatus
	CustomFields   types.Values
}

func (l *Lease) BeforeSave(_ *gorm.DB) error {
	if l.Status == "" {
		l.Status = LeaseActive
	}

	return nil
}

func (l *Lease) AfterSave(tx *gorm.DB) error {
	if l.StartDate.IsZero() {
		return ErrLeaseStartMissing
	}

	if !l.EndDate.IsZero() && l.EndDate.Before(l.StartDate) {
		return ErrLeaseDates
	}

	if l.MonthlyRent.IsNegative() || l.CAMRate.IsNegative() {
		return ErrLeaseAmountNegative
	}

	if !slices.Contains([]LeaseStatus{LeaseActive, LeaseTerminated}, l.Status) {
		return ErrLeaseStatusInvalid
	}

	err := ownedBy(tx, &Tenant{}, l.TenantID, l.OrganizationID)
	if err != nil {
		return err
	}

	return ownedBy(tx, &Unit{}, l.UnitID, l.OrganizationID)
}
