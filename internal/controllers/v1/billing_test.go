package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/leasedesk/backend/internal/controllers/v1"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/types"
	"github.com/leasedesk/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestBillingRule(t *testing.T, organizationID uint64, rule v1.BillingRuleEditable, expectedStatus ...int) v1.BillingRuleResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/billing-rules", []v1.BillingRuleEditable{rule}, orgHeaders(organizationID))
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.BillingRuleCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.BillingRuleResponse{}
}

func (suite *TestSuiteStandard) TestBillingRules() {
	f := createTestFixture(suite.T())
	h := orgHeaders(f.OrganizationID)

	rule := createTestBillingRule(suite.T(), f.OrganizationID, v1.BillingRuleEditable{Name: "CAM", ChargeType: "cam", Active: true})
	assert.Equal(suite.T(), "CAM", rule.Data.ChargeType)
	assert.Equal(suite.T(), "*", rule.Data.UnitPattern)

	tests := []struct {
		name string
		rule v1.BillingRuleEditable
	}{
		{"No name", v1.BillingRuleEditable{ChargeType: "CAM"}},
		{"No charge type", v1.BillingRuleEditable{Name: "Parking"}},
		{"Invalid formula", v1.BillingRuleEditable{Name: "Parking", ChargeType: "PARKING", Formula: "rate * ("}},
		{"Unknown variable", v1.BillingRuleEditable{Name: "Parking", ChargeType: "PARKING", Formula: "rate * floors"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			createTestBillingRule(t, f.OrganizationID, tt.rule, http.StatusBadRequest)
		})
	}

	r := test.Request(suite.T(), http.MethodPatch, rule.Data.Links.Self, map[string]any{"active": false}, h)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.BillingRuleResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.False(suite.T(), updated.Data.Active)
	assert.Equal(suite.T(), "CAM", updated.Data.Name)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/billing-rules?active=false", "", h)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.BillingRuleListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Len(suite.T(), list.Data, 1)

	r = test.Request(suite.T(), http.MethodDelete, rule.Data.Links.Self, "", h)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestBillingPreview() {
	f := createTestFixture(suite.T())
	createTestBillingRule(suite.T(), f.OrganizationID, v1.BillingRuleEditable{Name: "CAM", ChargeType: "CAM", UnitPattern: "T1-*", Active: true})
	createTestBillingRule(suite.T(), f.OrganizationID, v1.BillingRuleEditable{Name: "Rent", ChargeType: "RENT", Active: true})
	createTestBillingRule(suite.T(), f.OrganizationID, v1.BillingRuleEditable{Name: "Signage", ChargeType: "SIGNAGE", UnitPattern: "T2-*", Rate: types.MustMoney("900"), Active: true})
	createTestBillingRule(suite.T(), f.OrganizationID, v1.BillingRuleEditable{Name: "Parking", ChargeType: "PARKING", Rate: types.MustMoney("500"), Active: false})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/billing/cam-preview", v1.BillingRun{Period: "2026-10"}, orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var preview v1.BillingPreviewResponse
	test.DecodeResponse(suite.T(), &r, &preview)

	require.Len(suite.T(), preview.Data.Drafts, 1)
	draft := preview.Data.Drafts[0]
	assert.Equal(suite.T(), f.LeaseID, draft.LeaseID)
	assert.Equal(suite.T(), "2026-10-01", draft.PeriodStart.String())
	assert.Equal(suite.T(), "2026-10-31", draft.PeriodEnd.String())

	require.Len(suite.T(), draft.Lines, 2, "only active rules matching the unit code create lines")
	assert.Equal(suite.T(), "CAM", draft.Lines[0].ChargeType)
	assert.Equal(suite.T(), "15000.00", draft.Lines[0].Amount.String())
	assert.Equal(suite.T(), "RENT", draft.Lines[1].ChargeType)
	assert.Equal(suite.T(), "85000.00", draft.Lines[1].Amount.String())
	assert.Equal(suite.T(), "100000.00", preview.Data.Total.String())

	// Previews do not create invoices
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/invoices", "", orgHeaders(f.OrganizationID))
	var list v1.InvoiceListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Len(suite.T(), list.Data, 0)
}

// TestBillingProration verifies that leases starting within the period are billed for their active days.
func (suite *TestSuiteStandard) TestBillingProration() {
	f := createTestFixture(suite.T())
	unit := createTestUnit(suite.T(), f.OrganizationID, v1.UnitEditable{Code: "T1-0002", TowerID: f.TowerID, FloorID: f.FloorID})
	createTestLease(suite.T(), f.OrganizationID, v1.LeaseEditable{
		TenantID:    f.TenantID,
		UnitID:      unit.Data.ID,
		StartDate:   types.NewDate(2026, 11, 16),
		MonthlyRent: types.MustMoney("30000"),
	})
	createTestBillingRule(suite.T(), f.OrganizationID, v1.BillingRuleEditable{Name: "Rent", ChargeType: "RENT", Active: true})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/billing/cam-preview", v1.BillingRun{Period: "2026-11"}, orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var preview v1.BillingPreviewResponse
	test.DecodeResponse(suite.T(), &r, &preview)

	require.Len(suite.T(), preview.Data.Drafts, 2)
	assert.Equal(suite.T(), "85000.00", preview.Data.Drafts[0].Total.String())
	assert.Equal(suite.T(), "15000.00", preview.Data.Drafts[1].Total.String(), "15 of 30 days")
}

func (suite *TestSuiteStandard) TestBillingCommit() {
	f := createTestFixture(suite.T())
	createTestBillingRule(suite.T(), f.OrganizationID, v1.BillingRuleEditable{Name: "CAM", ChargeType: "CAM", Active: true})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/billing/cam-commit", v1.BillingRun{Period: "2026-10"}, orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var commit v1.BillingCommitResponse
	test.DecodeResponse(suite.T(), &r, &commit)
	require.Len(suite.T(), commit.Data.Created, 1)
	assert.Equal(suite.T(), 0, commit.Data.Skipped)

	invoice := commit.Data.Created[0]
	assert.Equal(suite.T(), models.InvoiceDraft, invoice.Status)
	assert.Equal(suite.T(), models.InvoiceGenerated, invoice.Kind)
	assert.Equal(suite.T(), "2026-10-16", invoice.DueDate.String())
	assert.Equal(suite.T(), "15000.00", invoice.Total.String())
	require.Len(suite.T(), invoice.Lines, 1)
	assert.NotNil(suite.T(), invoice.Lines[0].BillingRuleID)

	// A second run for the same period skips the lease
	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/billing/cam-commit", v1.BillingRun{Period: "2026-10"}, orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
	test.DecodeResponse(suite.T(), &r, &commit)
	assert.Len(suite.T(), commit.Data.Created, 0)
	assert.Equal(suite.T(), 1, commit.Data.Skipped)

	// Cancelled invoices can be generated again
	r = test.Request(suite.T(), http.MethodPost, invoice.Links.Cancel, "", orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/billing/cam-commit", v1.BillingRun{Period: "2026-10"}, orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
	test.DecodeResponse(suite.T(), &r, &commit)
	assert.Len(suite.T(), commit.Data.Created, 1)
}

func (suite *TestSuiteStandard) TestBillingPeriodInvalid() {
	f := createTestFixture(suite.T())

	for _, period := range []string{"", "2026-13", "October"} {
		suite.T().Run(period, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/billing/cam-preview", v1.BillingRun{Period: period}, orgHeaders(f.OrganizationID))
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Equal(t, "the period must be a month in YYYY-MM format", test.DecodeError(t, r.Body.Bytes()))
		})
	}
}

// TestBillingTowerScope verifies that billing runs in tower scopes only bill leases in the tower.
func (suite *TestSuiteStandard) TestBillingTowerScope() {
	f := createTestFixture(suite.T())
	other := createTestTower(suite.T(), f.OrganizationID, v1.TowerEditable{})
	createTestBillingRule(suite.T(), f.OrganizationID, v1.BillingRuleEditable{Name: "Rent", ChargeType: "RENT", Active: true})

	for _, tt := range []struct {
		towerID uint64
		drafts  int
	}{
		{f.TowerID, 1},
		{other.Data.ID, 0},
	} {
		r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/billing/cam-preview", v1.BillingRun{Period: "2026-10"}, towerHeaders(f.OrganizationID, tt.towerID))
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var preview v1.BillingPreviewResponse
		test.DecodeResponse(suite.T(), &r, &preview)
		assert.Len(suite.T(), preview.Data.Drafts, tt.drafts)
	}
}
