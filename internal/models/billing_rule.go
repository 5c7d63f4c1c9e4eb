package models

import (
	"fmt"
	"strings"

	"github.com/leasedesk/backend/internal/billing"
	"github.com/leasedesk/backend/internal/scope"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BillingRule defines a recurring charge that billing runs apply to leases.
type BillingRule struct {
	DefaultModel
	OrganizationID uint64 `gorm:"index"`
	Name           string
	ChargeType     string
	UnitPattern    string          // glob on the unit code
	Formula        string          // empty uses the default formula of the charge type
	Rate           decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Active         bool
}

func (r *BillingRule) BeforeSave(_ *gorm.DB) error {
	trim(&r.Name, &r.ChargeType, &r.UnitPattern, &r.Formula)
	r.ChargeType = strings.ToUpper(r.ChargeType)

	if r.UnitPattern == "" {
		r.UnitPattern = "*"
	}

	return nil
}

func (r *BillingRule) AfterSave(tx *gorm.DB) error {
	if r.Name == "" {
		return ErrNameEmpty
	}

	if r.ChargeType == "" {
		return ErrBillingRuleChargeType
	}

	if _, err := billing.Compile(r.source()); err != nil {
		return fmt.Errorf("%w: %w", ErrBillingRuleFormula, err)
	}

	return organizationExists(tx, r.OrganizationID)
}

func (r BillingRule) source() string {
	if r.Formula == "" {
		return billing.DefaultFormula(r.ChargeType)
	}
	return r.Formula
}

// Rule returns the rule for billing runs.
func (r BillingRule) Rule() billing.Rule {
	return billing.Rule{
		ID:          r.ID,
		Name:        r.Name,
		ChargeType:  r.ChargeType,
		UnitPattern: r.UnitPattern,
		Formula:     r.Formula,
		Rate:        r.Rate,
	}
}

// BillingInput loads the active billing rules of the organization and the
// active leases in scope that overlap the period.
func BillingInput(db *gorm.DB, s scope.Scope, period billing.Period) ([]billing.Lease, []billing.Rule, error) {
	var rules []BillingRule
	err := db.
		Scopes(s.Owned("billing_rules")).
		Where("billing_rules.active = ?", true).
		Order("billing_rules.id ASC").
		Find(&rules).Error
	if err != nil {
		return nil, nil, err
	}

	var leases []Lease
	err = db.
		Preload("Unit").
		Joins("JOIN units ON units.id = leases.unit_id").
		Scopes(s.Owned("leases"), s.InTower("units.tower_id")).
		Where("leases.status = ?", LeaseActive).
		Where("leases.start_date <= ?", period.End).
		Where("leases.end_date IS NULL OR leases.end_date >= ?", period.Start).
		Order("leases.id ASC").
		Find(&leases).Error
	if err != nil {
		return nil, nil, err
	}

	billingRules := make([]billing.Rule, 0, len(rules))
	for _, r := range rules {
		billingRules = append(billingRules, r.Rule())
	}

	billingLeases := make([]billing.Lease, 0, len(leases))
	for _, l := range leases {
		billingLeases = append(billingLeases, billing.Lease{
			ID:          l.ID,
			TenantID:    l.TenantID,
			UnitID:      l.UnitID,
			UnitCode:    l.Unit.Code,
			AreaSqft:    l.Unit.AreaSqft,
			MonthlyRent: l.MonthlyRent,
			CAMRate:     l.CAMRate,
			Start:       l.StartDate,
			End:         l.EndDate,
		})
	}

	return billingLeases, billingRules, nil
}
