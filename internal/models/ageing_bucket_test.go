package models_test

import (
	"github.com/leasedesk/backend/internal/ageing"
	"github.com/leasedesk/backend/internal/allocation"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/scope"
	"github.com/leasedesk/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestAgeingBucketsDefault() {
	organization := suite.createTestOrganization(models.Organization{})

	buckets, err := models.AgeingBuckets(models.DB, organization.ID)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), ageing.DefaultBuckets(), buckets)
}

func (suite *TestSuiteStandard) TestReplaceAgeingBuckets() {
	organization := suite.createTestOrganization(models.Organization{})
	fifteen := 15

	err := models.ReplaceAgeingBuckets(models.DB, organization.ID, []ageing.Bucket{
		{Label: " Fresh ", FromDays: 1, ToDays: &fifteen},
		{Label: "Stale", FromDays: 16},
	})
	require.Nil(suite.T(), err)

	buckets, err := models.AgeingBuckets(models.DB, organization.ID)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), buckets, 2)
	assert.Equal(suite.T(), "Fresh", buckets[0].Label)
	assert.Equal(suite.T(), 15, *buckets[0].ToDays)
	assert.Nil(suite.T(), buckets[1].ToDays)

	err = models.ReplaceAgeingBuckets(models.DB, organization.ID, []ageing.Bucket{{Label: "Late", FromDays: 5}})
	assert.ErrorIs(suite.T(), err, ageing.ErrBucketStart)

	buckets, err = models.AgeingBuckets(models.DB, organization.ID)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), buckets, 2, "invalid buckets must not replace the configured ones")
}

func (suite *TestSuiteStandard) TestAgeingReport() {
	l := suite.createTestLocation()
	tenant := suite.createTestTenant(models.Tenant{OrganizationID: l.Organization.ID})

	// 45 days overdue, partially paid
	overdue := suite.createIssuedInvoice(l.Organization.ID, tenant.ID, types.NewDate(2026, 3, 1), "1000")
	_, _, err := models.RecordPayment(models.DB, l.Organization.ID, cash(tenant.ID, "400", allocate(overdue.Lines[0].ID, "400")), "")
	require.Nil(suite.T(), err)

	// Not due yet
	_ = suite.createIssuedInvoice(l.Organization.ID, tenant.ID, types.NewDate(2026, 4, 30), "250")

	// Fully paid, not part of the report
	paid := suite.createIssuedInvoice(l.Organization.ID, tenant.ID, types.NewDate(2026, 1, 1), "100")
	_, _, err = models.RecordPayment(models.DB, l.Organization.ID, allocation.Submission{
		Payment: allocation.Payment{
			TenantID: tenant.ID,
			Amount:   types.MustMoney("100"),
			Mode:     allocation.ModeUPI,
		},
		Allocations: []allocation.SubmissionAllocation{allocate(paid.Lines[0].ID, "100")},
	}, "")
	require.Nil(suite.T(), err)

	report, err := models.AgeingReport(models.DB, scope.Organization(l.Organization.ID), types.NewDate(2026, 4, 15))
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), []string{ageing.CurrentLabel, "1-30", "31-60", "61-90", "90+"}, report.Labels)
	require.Len(suite.T(), report.Rows, 1)
	assert.Equal(suite.T(), "250.00", types.Format(report.Rows[0].Amounts[0]))
	assert.Equal(suite.T(), "600.00", types.Format(report.Rows[0].Amounts[2]))
	assert.Equal(suite.T(), "850.00", types.Format(report.Total))
	assert.Equal(suite.T(), 2, report.Entries)
}
