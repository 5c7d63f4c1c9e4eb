package models_test

import (
	"testing"

	"github.com/leasedesk/backend/internal/allocation"
	"github.com/leasedesk/backend/internal/billing"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/scope"
	"github.com/leasedesk/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestInvoiceNumbering() {
	l := suite.createTestLocation()
	tenant := suite.createTestTenant(models.Tenant{OrganizationID: l.Organization.ID})

	first := suite.createTestInvoice(models.Invoice{OrganizationID: l.Organization.ID, TenantID: tenant.ID, PeriodStart: types.NewDate(2026, 3, 1)})
	second := suite.createTestInvoice(models.Invoice{OrganizationID: l.Organization.ID, TenantID: tenant.ID, PeriodStart: types.NewDate(2026, 4, 1)})
	nextYear := suite.createTestInvoice(models.Invoice{OrganizationID: l.Organization.ID, TenantID: tenant.ID, PeriodStart: types.NewDate(2027, 1, 1)})

	assert.Equal(suite.T(), "INV-2026-00001", first.Number)
	assert.Equal(suite.T(), "INV-2026-00002", second.Number)
	assert.Equal(suite.T(), "INV-2027-00001", nextYear.Number)

	other := suite.createTestOrganization(models.Organization{})
	otherTenant := suite.createTestTenant(models.Tenant{OrganizationID: other.ID})
	otherInvoice := suite.createTestInvoice(models.Invoice{OrganizationID: other.ID, TenantID: otherTenant.ID, PeriodStart: types.NewDate(2026, 3, 1)})
	assert.Equal(suite.T(), "INV-2026-00001", otherInvoice.Number)
}

func (suite *TestSuiteStandard) TestInvoiceDefaults() {
	l := suite.createTestLocation()
	tenant := suite.createTestTenant(models.Tenant{OrganizationID: l.Organization.ID})

	invoice := suite.createTestInvoice(models.Invoice{OrganizationID: l.Organization.ID, TenantID: tenant.ID})

	assert.Equal(suite.T(), models.InvoiceDraft, invoice.Status)
	assert.Equal(suite.T(), models.InvoiceManual, invoice.Kind)
}

func (suite *TestSuiteStandard) TestInvoiceValidation() {
	l := suite.createTestLocation()
	tenant := suite.createTestTenant(models.Tenant{OrganizationID: l.Organization.ID})
	otherTenant := suite.createTestTenant(models.Tenant{OrganizationID: l.Organization.ID})
	lease := suite.createTestLease(models.Lease{OrganizationID: l.Organization.ID, TenantID: otherTenant.ID, UnitID: l.Unit.ID})

	tests := []struct {
		name    string
		invoice models.Invoice
		err     error
	}{
		{"No due date", models.Invoice{}, models.ErrInvoiceDueDateMissing},
		{"Invalid status", models.Invoice{Status: "OPEN", DueDate: types.NewDate(2026, 1, 1)}, models.ErrInvoiceStatusInvalid},
		{"Invalid period", models.Invoice{PeriodStart: types.NewDate(2026, 2, 1), PeriodEnd: types.NewDate(2026, 1, 31), DueDate: types.NewDate(2026, 1, 1)}, models.ErrInvoicePeriod},
		{"Lease of other tenant", models.Invoice{LeaseID: &lease.ID, DueDate: types.NewDate(2026, 1, 1)}, models.ErrInvoiceLeaseTenant},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			invoice := tt.invoice
			invoice.OrganizationID = l.Organization.ID
			invoice.TenantID = tenant.ID

			err := models.DB.Create(&invoice).Error
			assert.ErrorIs(suite.T(), err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestInvoiceLineRounding() {
	l := suite.createTestLocation()
	tenant := suite.createTestTenant(models.Tenant{OrganizationID: l.Organization.ID})
	invoice := suite.createTestInvoice(models.Invoice{
		OrganizationID: l.Organization.ID,
		TenantID:       tenant.ID,
		Lines: []models.InvoiceLine{
			{ChargeType: " rent ", Amount: decimal.RequireFromString("1000.005")},
		},
	})

	assert.Equal(suite.T(), "RENT", invoice.Lines[0].ChargeType)
	assert.True(suite.T(), decimal.RequireFromString("1000.01").Equal(invoice.Lines[0].Amount), invoice.Lines[0].Amount.String())
}

func (suite *TestSuiteStandard) TestInvoiceLineAmountPositive() {
	l := suite.createTestLocation()
	tenant := suite.createTestTenant(models.Tenant{OrganizationID: l.Organization.ID})
	invoice := suite.createTestInvoice(models.Invoice{OrganizationID: l.Organization.ID, TenantID: tenant.ID})

	err := models.DB.Create(&models.InvoiceLine{InvoiceID: invoice.ID, Amount: decimal.Zero}).Error
	assert.ErrorIs(suite.T(), err, models.ErrInvoiceLineAmount)
}

func (suite *TestSuiteStandard) TestInvoiceIssue() {
	l := suite.createTestLocation()
	tenant := suite.createTestTenant(models.Tenant{OrganizationID: l.Organization.ID})

	empty := suite.createTestInvoice(models.Invoice{OrganizationID: l.Organization.ID, TenantID: tenant.ID})
	assert.ErrorIs(suite.T(), empty.Issue(models.DB, types.Today()), models.ErrInvoiceEmpty)

	invoice := suite.createIssuedInvoice(l.Organization.ID, tenant.ID, types.NewDate(2026, 4, 15), "500")
	assert.Equal(suite.T(), models.InvoiceIssued, invoice.Status)
	assert.Equal(suite.T(), types.NewDate(2026, 3, 31), invoice.IssuedOn)

	assert.ErrorIs(suite.T(), invoice.Issue(models.DB, types.Today()), models.ErrInvoiceNotDraft)
}

func (suite *TestSuiteStandard) TestInvoiceLinesLockedAfterIssue() {
	l := suite.createTestLocation()
	tenant := suite.createTestTenant(models.Tenant{OrganizationID: l.Organization.ID})
	invoice := suite.createIssuedInvoice(l.Organization.ID, tenant.ID, types.NewDate(2026, 4, 15), "500")

	err := models.DB.Create(&models.InvoiceLine{InvoiceID: invoice.ID, Amount: decimal.NewFromInt(10)}).Error
	assert.ErrorIs(suite.T(), err, models.ErrInvoiceNotEditable)

	line := invoice.Lines[0]
	err = models.DB.Model(&line).Updates(models.InvoiceLine{Description: "Changed"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrInvoiceNotEditable)

	err = models.DB.Delete(&line).Error
	assert.ErrorIs(suite.T(), err, models.ErrInvoiceNotEditable)
}

func (suite *TestSuiteStandard) TestIssueInvoicesAllOrNothing() {
	l := suite.createTestLocation()
	tenant := suite.createTestTenant(models.Tenant{OrganizationID: l.Organization.ID})

	withLines := suite.createTestInvoice(models.Invoice{
		OrganizationID: l.Organization.ID,
		TenantID:       tenant.ID,
		Lines:          []models.InvoiceLine{{ChargeType: "RENT", Amount: decimal.NewFromInt(100)}},
	})
	empty := suite.createTestInvoice(models.Invoice{OrganizationID: l.Organization.ID, TenantID: tenant.ID})

	_, err := models.IssueInvoices(models.DB, scope.Organization(l.Organization.ID), []uint64{withLines.ID, empty.ID}, types.Today())
	require.ErrorIs(suite.T(), err, models.ErrInvoiceEmpty)

	var reloaded models.Invoice
	require.Nil(suite.T(), models.DB.First(&reloaded, withLines.ID).Error)
	assert.Equal(suite.T(), models.InvoiceDraft, reloaded.Status)

	issued, err := models.IssueInvoices(models.DB, scope.Organization(l.Organization.ID), []uint64{withLines.ID}, types.Today())
	require.Nil(suite.T(), err)
	require.Len(suite.T(), issued, 1)
	assert.Equal(suite.T(), models.InvoiceIssued, issued[0].Status)
}

func (suite *TestSuiteStandard) TestInvoiceCancel() {
	l := suite.createTestLocation()
	tenant := suite.createTestTenant(models.Tenant{OrganizationID: l.Organization.ID})

	unpaid := suite.createIssuedInvoice(l.Organization.ID, tenant.ID, types.NewDate(2026, 4, 15), "500")
	require.Nil(suite.T(), unpaid.Cancel(models.DB))
	assert.Equal(suite.T(), models.InvoiceCancelled, unpaid.Status)
	assert.ErrorIs(suite.T(), unpaid.Cancel(models.DB), models.ErrInvoiceAlreadyCanceled)

	paid := suite.createIssuedInvoice(l.Organization.ID, tenant.ID, types.NewDate(2026, 4, 15), "500")
	_, _, err := models.RecordPayment(models.DB, l.Organization.ID, allocation.Submission{
		Payment: allocation.Payment{
			TenantID: tenant.ID,
			Amount:   types.MustMoney("100"),
			Mode:     allocation.ModeCash,
		},
		Allocations: []allocation.SubmissionAllocation{
			{InvoiceLineID: paid.Lines[0].ID, AllocatedAmount: types.MustMoney("100")},
		},
	}, "")
	require.Nil(suite.T(), err)

	assert.ErrorIs(suite.T(), paid.Cancel(models.DB), models.ErrInvoiceNotCancellable)
}

func (suite *TestSuiteStandard) TestCommitDrafts() {
	l := suite.createTestLocation()
	tenant := suite.createTestTenant(models.Tenant{OrganizationID: l.Organization.ID})
	lease := suite.createTestLease(models.Lease{OrganizationID: l.Organization.ID, TenantID: tenant.ID, UnitID: l.Unit.ID})

	period := billing.MonthPeriod(types.NewMonth(2026, 4))
	drafts := []billing.Draft{
		{
			LeaseID:  lease.ID,
			TenantID: tenant.ID,
			UnitID:   l.Unit.ID,
			Period:   period,
			Lines: []billing.DraftLine{
				{ChargeType: "CAM", Description: "CAM April 2026", Amount: decimal.RequireFromString("6000")},
			},
		},
	}

	created, skipped, err := models.CommitDrafts(models.DB, l.Organization.ID, drafts, 15)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), 0, skipped)
	require.Len(suite.T(), created, 1)
	assert.Equal(suite.T(), models.InvoiceGenerated, created[0].Kind)
	assert.Equal(suite.T(), models.InvoiceDraft, created[0].Status)
	assert.Equal(suite.T(), types.NewDate(2026, 4, 16), created[0].DueDate)
	assert.Equal(suite.T(), "INV-2026-00001", created[0].Number)

	created, skipped, err = models.CommitDrafts(models.DB, l.Organization.ID, drafts, 15)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), 1, skipped)
	assert.Len(suite.T(), created, 0)
}

func (suite *TestSuiteStandard) TestInvoicesInScope() {
	l := suite.createTestLocation()
	tenant := suite.createTestTenant(models.Tenant{OrganizationID: l.Organization.ID})
	lease := suite.createTestLease(models.Lease{OrganizationID: l.Organization.ID, TenantID: tenant.ID, UnitID: l.Unit.ID})
	other := suite.createTestTower(models.Tower{OrganizationID: l.Organization.ID})

	_ = suite.createTestInvoice(models.Invoice{OrganizationID: l.Organization.ID, TenantID: tenant.ID, LeaseID: &lease.ID})
	_ = suite.createTestInvoice(models.Invoice{OrganizationID: l.Organization.ID, TenantID: tenant.ID})

	tests := []struct {
		name  string
		scope scope.Scope
		count int64
	}{
		{"Organization", scope.Organization(l.Organization.ID), 2},
		{"Tower of the lease", scope.Tower(l.Organization.ID, l.Tower.ID), 1},
		{"Other tower", scope.Tower(l.Organization.ID, other.ID), 0},
		{"Other organization", scope.Organization(l.Organization.ID + 1), 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var count int64
			require.Nil(t, models.InvoicesInScope(models.DB, tt.scope).Count(&count).Error)
			assert.Equal(t, tt.count, count)
		})
	}
}
