package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/leasedesk/backend/internal/ageing"
	v1 "github.com/leasedesk/backend/internal/controllers/v1"
	"github.com/leasedesk/backend/internal/types"
	"github.com/leasedesk/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCleanup() {
	f := createTestFixture(suite.T())
	other := createTestFixture(suite.T())

	invoice := createIssuedInvoice(suite.T(), f, "500", "300")
	recordPayment(suite.T(), f.OrganizationID, submission(f.TenantID, "300", []v1.AllocationRow{{
		InvoiceID:       invoice.Data.ID,
		InvoiceLineID:   invoice.Data.Lines[0].ID,
		AllocatedAmount: types.MustMoney("300"),
	}}), http.StatusCreated)

	createTestBillingRule(suite.T(), f.OrganizationID, v1.BillingRuleEditable{Name: "CAM", ChargeType: "CAM", Active: true})
	createTestFieldDefinition(suite.T(), f.OrganizationID, v1.FieldDefinitionEditable{Entity: "unit", Key: "view"})

	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/ageing/buckets", []ageing.Bucket{{Label: "Overdue", FromDays: 1}}, orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// Resources of the other organization are kept
	tests := []struct {
		url   string
		other int
	}{
		{"http://example.com/v1/towers", 1},
		{"http://example.com/v1/units", 1},
		{"http://example.com/v1/tenants", 1},
		{"http://example.com/v1/leases", 1},
		{"http://example.com/v1/invoices", 0},
		{"http://example.com/v1/payments", 0},
		{"http://example.com/v1/billing-rules", 0},
		{"http://example.com/v1/field-definitions", 0},
	}

	// Delete
	r = test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "", orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// Verify
	for _, tt := range tests {
		suite.T().Run(tt.url, func(t *testing.T) {
			for organizationID, count := range map[uint64]int{f.OrganizationID: 0, other.OrganizationID: tt.other} {
				r := test.Request(t, http.MethodGet, tt.url, "", orgHeaders(organizationID))
				test.AssertHTTPStatus(t, &r, http.StatusOK)

				var response struct {
					Data []any `json:"data"`
				}

				test.DecodeResponse(t, &r, &response)
				assert.Len(t, response.Data, count, "Unexpected number of resources for organization %d", organizationID)
			}
		})
	}

	// Ageing buckets are back to the defaults
	var buckets v1.AgeingBucketListResponse
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/ageing/buckets", "", orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &buckets)
	assert.Len(suite.T(), buckets.Data, len(ageing.DefaultBuckets()))

	// The organization itself is kept
	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/organizations/%d", f.OrganizationID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	org := createTestOrganization(suite.T(), v1.OrganizationEditable{}).Data.ID

	tests := []struct {
		name string
		path string
	}{
		{"Invalid path", "confirm=2"},
		{"Confirmation wrong", "confirm=invalid-confirmation"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1?%s", tt.path), "", orgHeaders(org))
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupDBError() {
	org := createTestOrganization(suite.T(), v1.OrganizationEditable{}).Data.ID
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "", orgHeaders(org))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
