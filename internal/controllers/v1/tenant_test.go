package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/leasedesk/backend/internal/controllers/v1"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/types"
	"github.com/leasedesk/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestTenants() {
	organization := createTestOrganization(suite.T(), v1.OrganizationEditable{})
	org := organization.Data.ID

	tenant := createTestTenant(suite.T(), org, v1.TenantEditable{
		Name:  " Acme Retail ",
		Email: "accounts@acme.example",
		Phone: "+91 80 4000 1234",
		GSTIN: "29abcde1234f1z5",
	})
	assert.Equal(suite.T(), "Acme Retail", tenant.Data.Name)
	assert.Equal(suite.T(), "29ABCDE1234F1Z5", tenant.Data.GSTIN)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/tenants/%d/activity", tenant.Data.ID), tenant.Data.Links.Activity)

	createTestTenant(suite.T(), org, v1.TenantEditable{Name: "Brew & Co", Email: "hello@brew.example"})
	createTestTenant(suite.T(), org, v1.TenantEditable{Name: "Zen Offices", Phone: "+91 80 4000 9999"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/tenants", []v1.TenantEditable{{Name: " "}}, orgHeaders(org))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Equal(suite.T(), models.ErrNameEmpty.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))

	tests := []struct {
		query string
		names []string
	}{
		{"", []string{"Acme Retail", "Brew & Co", "Zen Offices"}},
		{"search=4000", []string{"Acme Retail", "Zen Offices"}},
		{"search=brew.example", []string{"Brew & Co"}},
		{"name=Offices", []string{"Zen Offices"}},
		{"gstin=29ABCDE1234F1Z5", []string{"Acme Retail"}},
		{"limit=1&offset=1", []string{"Brew & Co"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/tenants?%s", tt.query), "", orgHeaders(org))
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var list v1.TenantListResponse
			test.DecodeResponse(t, &r, &list)

			names := []string{}
			for _, tenant := range list.Data {
				names = append(names, tenant.Name)
			}
			assert.Equal(t, tt.names, names)
		})
	}

	r = test.Request(suite.T(), http.MethodPatch, tenant.Data.Links.Self, map[string]any{"email": "billing@acme.example"}, orgHeaders(org))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.TenantResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), "billing@acme.example", updated.Data.Email)
	assert.Equal(suite.T(), "Acme Retail", updated.Data.Name)

	r = test.Request(suite.T(), http.MethodDelete, tenant.Data.Links.Self, "", orgHeaders(org))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, tenant.Data.Links.Self, "", orgHeaders(org))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTenantDeleteInUse() {
	f := createTestFixture(suite.T())

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/tenants/%d", f.TenantID), "", orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Equal(suite.T(), models.ErrResourceInUse.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestTenantActivity() {
	f := createTestFixture(suite.T())
	first := createIssuedInvoice(suite.T(), f, "800")
	second := createIssuedInvoice(suite.T(), f, "300")

	// Drafts are not part of the activity
	createTestInvoice(suite.T(), f.OrganizationID, v1.InvoiceCreate{
		InvoiceEditable: v1.InvoiceEditable{TenantID: f.TenantID},
		Lines:           lines("1000"),
	})

	amount := types.MustMoney("500")
	preview := previewAllocation(suite.T(), f.OrganizationID, v1.AllocationPreviewRequest{InvoiceIDs: []uint64{first.Data.ID}, Amount: &amount}, http.StatusOK)
	r := recordPayment(suite.T(), f.OrganizationID, submission(f.TenantID, "500", preview.Data.Rows), http.StatusCreated)

	var payment v1.PaymentResponse
	test.DecodeResponse(suite.T(), &r, &payment)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/tenants/%d/activity", f.TenantID), "", orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var activity v1.TenantActivityResponse
	test.DecodeResponse(suite.T(), &r, &activity)
	require.Len(suite.T(), activity.Data, 3)

	tests := []struct {
		kind    models.ActivityKind
		number  string
		debit   string
		credit  string
		balance string
		link    string
	}{
		{models.ActivityInvoice, first.Data.Number, "800.00", "0.00", "800.00", first.Data.Links.Self},
		{models.ActivityInvoice, second.Data.Number, "300.00", "0.00", "1100.00", second.Data.Links.Self},
		{models.ActivityPayment, payment.Data.Number, "0.00", "500.00", "600.00", payment.Data.Links.Self},
	}

	for i, tt := range tests {
		entry := activity.Data[i]
		assert.Equal(suite.T(), tt.kind, entry.Kind, "entry %d", i)
		assert.Equal(suite.T(), tt.number, entry.Number, "entry %d", i)
		assert.Equal(suite.T(), tt.debit, entry.Debit.String(), "entry %d", i)
		assert.Equal(suite.T(), tt.credit, entry.Credit.String(), "entry %d", i)
		assert.Equal(suite.T(), tt.balance, entry.Balance.String(), "entry %d", i)
		assert.Equal(suite.T(), tt.link, entry.Link, "entry %d", i)
	}

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/tenants/9999/activity", "", orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
