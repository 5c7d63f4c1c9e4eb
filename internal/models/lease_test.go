package models_test

import (
	"github.com/leasedesk/backend/internal/billing"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/scope"
	"github.com/leasedesk/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestLeaseValidation() {
	l := suite.createTestLocation()
	tenant := suite.createTestTenant(models.Tenant{OrganizationID: l.Organization.ID})
	other := suite.createTestOrganization(models.Organization{})
	foreignTenant := suite.createTestTenant(models.Tenant{OrganizationID: other.ID})

	tests := []struct {
		name  string
		lease models.Lease
		err   error
	}{
		{"No start", models.Lease{TenantID: tenant.ID}, models.ErrLeaseStartMissing},
		{"End before start", models.Lease{TenantID: tenant.ID, StartDate: types.NewDate(2026, 2, 1), EndDate: types.NewDate(2026, 1, 1)}, models.ErrLeaseDates},
		{"Negative rent", models.Lease{TenantID: tenant.ID, StartDate: types.NewDate(2026, 2, 1), MonthlyRent: decimal.NewFromInt(-1)}, models.ErrLeaseAmountNegative},
		{"Invalid status", models.Lease{TenantID: tenant.ID, StartDate: types.NewDate(2026, 2, 1), Status: "EXPIRED"}, models.ErrLeaseStatusInvalid},
		{"Tenant of other organization", models.Lease{TenantID: foreignTenant.ID, StartDate: types.NewDate(2026, 2, 1)}, models.ErrResourceNotFound},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			lease := tt.lease
			lease.OrganizationID = l.Organization.ID
			lease.UnitID = l.Unit.ID

			err := models.DB.Create(&lease).Error
			assert.ErrorIs(suite.T(), err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestBillingRuleFormula() {
	organization := suite.createTestOrganization(models.Organization{})

	rule := models.BillingRule{OrganizationID: organization.ID, Name: "Broken", ChargeType: "cam", Formula: "area * (", Active: true}
	assert.ErrorIs(suite.T(), models.DB.Create(&rule).Error, models.ErrBillingRuleFormula)

	rule = models.BillingRule{OrganizationID: organization.ID, Name: "CAM", ChargeType: " cam ", Active: true}
	require.Nil(suite.T(), models.DB.Create(&rule).Error)
	assert.Equal(suite.T(), "CAM", rule.ChargeType)
	assert.Equal(suite.T(), "*", rule.UnitPattern)
}

func (suite *TestSuiteStandard) TestBillingInput() {
	l := suite.createTestLocation()
	otherTower := suite.createTestTower(models.Tower{OrganizationID: l.Organization.ID})
	otherFloor := suite.createTestFloor(models.Floor{TowerID: otherTower.ID})
	otherUnit := suite.createTestUnit(models.Unit{OrganizationID: l.Organization.ID, TowerID: otherTower.ID, FloorID: otherFloor.ID})
	tenant := suite.createTestTenant(models.Tenant{OrganizationID: l.Organization.ID})

	active := suite.createTestLease(models.Lease{OrganizationID: l.Organization.ID, TenantID: tenant.ID, UnitID: l.Unit.ID, CAMRate: decimal.NewFromInt(5)})
	_ = suite.createTestLease(models.Lease{OrganizationID: l.Organization.ID, TenantID: tenant.ID, UnitID: otherUnit.ID})
	_ = suite.createTestLease(models.Lease{OrganizationID: l.Organization.ID, TenantID: tenant.ID, UnitID: l.Unit.ID, StartDate: types.NewDate(2025, 1, 1), EndDate: types.NewDate(2025, 12, 31)})
	_ = suite.createTestLease(models.Lease{OrganizationID: l.Organization.ID, TenantID: tenant.ID, UnitID: l.Unit.ID, Status: models.LeaseTerminated})

	require.Nil(suite.T(), models.DB.Create(&models.BillingRule{OrganizationID: l.Organization.ID, Name: "CAM", ChargeType: "CAM", Active: true}).Error)
	require.Nil(suite.T(), models.DB.Create(&models.BillingRule{OrganizationID: l.Organization.ID, Name: "Old CAM", ChargeType: "CAM"}).Error)

	period := billing.MonthPeriod(types.NewMonth(2026, 4))

	leases, rules, err := models.BillingInput(models.DB, scope.Organization(l.Organization.ID), period)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), leases, 2)
	require.Len(suite.T(), rules, 1)
	assert.Equal(suite.T(), "CAM", rules[0].Name)

	leases, _, err = models.BillingInput(models.DB, scope.Tower(l.Organization.ID, l.Tower.ID), period)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), leases, 1)
	assert.Equal(suite.T(), active.ID, leases[0].ID)
	assert.Equal(suite.T(), l.Unit.Code, leases[0].UnitCode)
	assert.True(suite.T(), decimal.NewFromInt(1200).Equal(leases[0].AreaSqft))
}
