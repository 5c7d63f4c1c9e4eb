package v1_test

import (
	"bytes"
	"fmt"
	"net/http"
	"testing"

	"github.com/leasedesk/backend/internal/allocation"
	v1 "github.com/leasedesk/backend/internal/controllers/v1"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/types"
	"github.com/leasedesk/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func (suite *TestSuiteStandard) TestInvoiceCreate() {
	f := createTestFixture(suite.T())
	leaseID := f.LeaseID

	invoice := createTestInvoice(suite.T(), f.OrganizationID, v1.InvoiceCreate{
		InvoiceEditable: v1.InvoiceEditable{
			TenantID:    f.TenantID,
			LeaseID:     &leaseID,
			PeriodStart: types.NewDate(2026, 10, 1),
			PeriodEnd:   types.NewDate(2026, 10, 31),
			Note:        "  Fit-out  ",
		},
		Lines: lines("1000", "150"),
	})

	assert.Equal(suite.T(), "INV-2026-00001", invoice.Data.Number)
	assert.Equal(suite.T(), models.InvoiceDraft, invoice.Data.Status)
	assert.Equal(suite.T(), models.InvoiceManual, invoice.Data.Kind)
	assert.Equal(suite.T(), "Fit-out", invoice.Data.Note)
	assert.Equal(suite.T(), "1150.00", invoice.Data.Total.String())
	assert.Equal(suite.T(), "1150.00", invoice.Data.Balance.String())
	assert.Equal(suite.T(), "0.00", invoice.Data.Paid.String())
	assert.Equal(suite.T(), "INR", invoice.Data.Currency)
	assert.Equal(suite.T(), "₹", invoice.Data.CurrencySymbol)
	assert.Equal(suite.T(), "INR one thousand one hundred fifty and 00/100", invoice.Data.AmountInWords)
	require.Len(suite.T(), invoice.Data.Lines, 2)
	assert.Equal(suite.T(), "CAM", invoice.Data.Lines[0].ChargeType)

	second := createTestInvoice(suite.T(), f.OrganizationID, v1.InvoiceCreate{
		InvoiceEditable: v1.InvoiceEditable{TenantID: f.TenantID, PeriodStart: types.NewDate(2026, 11, 1)},
		Lines:           lines("10"),
	})
	assert.Equal(suite.T(), "INV-2026-00002", second.Data.Number)
}

func (suite *TestSuiteStandard) TestInvoiceCreateFails() {
	f := createTestFixture(suite.T())
	other := createTestTenant(suite.T(), f.OrganizationID, v1.TenantEditable{})
	leaseID := f.LeaseID
	unknownLease := uint64(9999)

	tests := []struct {
		name    string
		invoice v1.InvoiceCreate
		status  int
	}{
		{"No tenant", v1.InvoiceCreate{Lines: lines("10")}, http.StatusBadRequest},
		{"Zero amount", v1.InvoiceCreate{InvoiceEditable: v1.InvoiceEditable{TenantID: f.TenantID}, Lines: lines("0")}, http.StatusBadRequest},
		{"Lease of other tenant", v1.InvoiceCreate{InvoiceEditable: v1.InvoiceEditable{TenantID: other.Data.ID, LeaseID: &leaseID}, Lines: lines("10")}, http.StatusBadRequest},
		{"Unknown lease", v1.InvoiceCreate{InvoiceEditable: v1.InvoiceEditable{TenantID: f.TenantID, LeaseID: &unknownLease}, Lines: lines("10")}, http.StatusNotFound},
		{"Period end before start", v1.InvoiceCreate{InvoiceEditable: v1.InvoiceEditable{
			TenantID:    f.TenantID,
			PeriodStart: types.NewDate(2026, 10, 31),
			PeriodEnd:   types.NewDate(2026, 10, 1),
		}, Lines: lines("10")}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			createTestInvoice(t, f.OrganizationID, tt.invoice, tt.status)
		})
	}
}

// TestInvoiceTowerScope verifies that invoices without a lease cannot be
// created in tower scopes and invoices of other towers are invisible.
func (suite *TestSuiteStandard) TestInvoiceTowerScope() {
	f := createTestFixture(suite.T())
	other := createTestTower(suite.T(), f.OrganizationID, v1.TowerEditable{})
	invoice := createIssuedInvoice(suite.T(), f, "500")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/invoices", []v1.InvoiceCreate{{
		InvoiceEditable: v1.InvoiceEditable{TenantID: f.TenantID, DueDate: types.NewDate(2026, 10, 15)},
		Lines:           lines("10"),
	}}, towerHeaders(f.OrganizationID, f.TowerID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodGet, invoice.Data.Links.Self, "", towerHeaders(f.OrganizationID, f.TowerID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, invoice.Data.Links.Self, "", towerHeaders(f.OrganizationID, other.Data.ID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/invoices", "", towerHeaders(f.OrganizationID, other.Data.ID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.InvoiceListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Len(suite.T(), list.Data, 0)
}

func (suite *TestSuiteStandard) TestInvoiceLifecycle() {
	f := createTestFixture(suite.T())
	invoice := createTestInvoice(suite.T(), f.OrganizationID, v1.InvoiceCreate{
		InvoiceEditable: v1.InvoiceEditable{TenantID: f.TenantID},
		Lines:           lines("500"),
	})
	url := invoice.Data.Links.Self
	h := orgHeaders(f.OrganizationID)

	// Drafts can be edited
	r := test.Request(suite.T(), http.MethodPatch, url, map[string]any{"note": "Deposit"}, h)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.InvoiceResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), "Deposit", updated.Data.Note)
	assert.Equal(suite.T(), f.TenantID, updated.Data.TenantID, "fields not in the body must not change")

	// Issue
	issued := issueTestInvoice(suite.T(), f.OrganizationID, invoice.Data.ID)
	assert.Equal(suite.T(), models.InvoiceIssued, issued.Data.Status)
	assert.Equal(suite.T(), "2026-10-01", issued.Data.IssuedOn.String())

	// Issued invoices are immutable
	r = test.Request(suite.T(), http.MethodPatch, url, map[string]any{"note": "Changed"}, h)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Equal(suite.T(), models.ErrInvoiceNotEditable.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))

	r = test.Request(suite.T(), http.MethodPost, invoice.Data.Links.Lines, []v1.InvoiceLineEditable{{ChargeType: "RENT", Amount: types.MustMoney("10")}}, h)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPost, invoice.Data.Links.Issue, "", h)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodDelete, url, "", h)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// Cancel
	r = test.Request(suite.T(), http.MethodPost, invoice.Data.Links.Cancel, "", h)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var cancelled v1.InvoiceResponse
	test.DecodeResponse(suite.T(), &r, &cancelled)
	assert.Equal(suite.T(), models.InvoiceCancelled, cancelled.Data.Status)

	r = test.Request(suite.T(), http.MethodPost, invoice.Data.Links.Cancel, "", h)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestInvoiceIssueEmpty() {
	f := createTestFixture(suite.T())
	invoice := createTestInvoice(suite.T(), f.OrganizationID, v1.InvoiceCreate{
		InvoiceEditable: v1.InvoiceEditable{TenantID: f.TenantID},
	})

	r := test.Request(suite.T(), http.MethodPost, invoice.Data.Links.Issue, "", orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Equal(suite.T(), models.ErrInvoiceEmpty.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
}

// TestInvoiceIssueBulk verifies that either all invoices are issued or none.
func (suite *TestSuiteStandard) TestInvoiceIssueBulk() {
	f := createTestFixture(suite.T())
	h := orgHeaders(f.OrganizationID)

	first := createTestInvoice(suite.T(), f.OrganizationID, v1.InvoiceCreate{InvoiceEditable: v1.InvoiceEditable{TenantID: f.TenantID}, Lines: lines("100")})
	second := createTestInvoice(suite.T(), f.OrganizationID, v1.InvoiceCreate{InvoiceEditable: v1.InvoiceEditable{TenantID: f.TenantID}, Lines: lines("200")})
	empty := createTestInvoice(suite.T(), f.OrganizationID, v1.InvoiceCreate{InvoiceEditable: v1.InvoiceEditable{TenantID: f.TenantID}})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/invoices/issue", v1.InvoiceIssue{
		InvoiceIDs: []uint64{first.Data.ID, empty.Data.ID},
	}, h)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Equal(suite.T(), models.InvoiceDraft, getInvoice(suite.T(), f.OrganizationID, first.Data.ID).Status)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/invoices/issue", v1.InvoiceIssue{}, h)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/invoices/issue", v1.InvoiceIssue{
		InvoiceIDs: []uint64{first.Data.ID, second.Data.ID},
		IssuedOn:   types.NewDate(2026, 10, 5),
	}, h)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.InvoiceListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	require.Len(suite.T(), list.Data, 2)
	for _, i := range list.Data {
		assert.Equal(suite.T(), models.InvoiceIssued, i.Status)
		assert.Equal(suite.T(), "2026-10-05", i.IssuedOn.String())
	}
}

func (suite *TestSuiteStandard) TestInvoiceCancelPaid() {
	f := createTestFixture(suite.T())
	invoice := createIssuedInvoice(suite.T(), f, "500")

	recordPayment(suite.T(), f.OrganizationID, allocation.Submission{
		Payment: allocation.Payment{
			TenantID: f.TenantID,
			Amount:   types.MustMoney("100"),
			Mode:     allocation.ModeCash,
		},
		Allocations: []allocation.SubmissionAllocation{
			{InvoiceLineID: invoice.Data.Lines[0].ID, AllocatedAmount: types.MustMoney("100")},
		},
	}, http.StatusCreated)

	r := test.Request(suite.T(), http.MethodPost, invoice.Data.Links.Cancel, "", orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Equal(suite.T(), models.ErrInvoiceNotCancellable.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))

	i := getInvoice(suite.T(), f.OrganizationID, invoice.Data.ID)
	assert.Equal(suite.T(), models.InvoicePartiallyPaid, i.Status)
	assert.Equal(suite.T(), "100.00", i.Paid.String())
	assert.Equal(suite.T(), "400.00", i.Balance.String())
}

func (suite *TestSuiteStandard) TestInvoiceDelete() {
	f := createTestFixture(suite.T())
	invoice := createTestInvoice(suite.T(), f.OrganizationID, v1.InvoiceCreate{
		InvoiceEditable: v1.InvoiceEditable{TenantID: f.TenantID},
		Lines:           lines("500", "20"),
	})

	r := test.Request(suite.T(), http.MethodDelete, invoice.Data.Links.Self, "", orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, invoice.Data.Links.Self, "", orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var count int64
	models.DB.Model(&models.InvoiceLine{}).Where("invoice_id = ?", invoice.Data.ID).Count(&count)
	assert.Equal(suite.T(), int64(0), count, "lines must be deleted with the invoice")
}

func (suite *TestSuiteStandard) TestInvoiceLines() {
	f := createTestFixture(suite.T())
	invoice := createTestInvoice(suite.T(), f.OrganizationID, v1.InvoiceCreate{
		InvoiceEditable: v1.InvoiceEditable{TenantID: f.TenantID},
		Lines:           lines("500"),
	})
	h := orgHeaders(f.OrganizationID)

	r := test.Request(suite.T(), http.MethodPost, invoice.Data.Links.Lines, []v1.InvoiceLineEditable{
		{Position: 5, ChargeType: "parking", Description: "Parking slot B2-14", Amount: types.MustMoney("1500.005")},
	}, h)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var created v1.InvoiceLineCreateResponse
	test.DecodeResponse(suite.T(), &r, &created)
	line := created.Data[0].Data
	assert.Equal(suite.T(), "PARKING", line.ChargeType)
	assert.Equal(suite.T(), "1500.01", line.Amount.String())

	r = test.Request(suite.T(), http.MethodPatch, line.Links.Self, map[string]any{"amount": "1200"}, h)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, invoice.Data.Links.Lines, "", h)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.InvoiceLineListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	require.Len(suite.T(), list.Data, 2)
	assert.Equal(suite.T(), "1200.00", list.Data[1].Amount.String())

	assert.Equal(suite.T(), "1700.00", getInvoice(suite.T(), f.OrganizationID, invoice.Data.ID).Total.String())

	r = test.Request(suite.T(), http.MethodDelete, line.Links.Self, "", h)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, line.Links.Self, "", h)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// Lines are only visible through their own invoice
	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/invoices/%d/lines/%d", invoice.Data.ID+1, invoice.Data.Lines[0].ID), "", h)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestInvoicesFilter() {
	f := createTestFixture(suite.T())
	createIssuedInvoice(suite.T(), f, "500")
	createTestInvoice(suite.T(), f.OrganizationID, v1.InvoiceCreate{
		InvoiceEditable: v1.InvoiceEditable{
			TenantID:    f.TenantID,
			PeriodStart: types.NewDate(2026, 9, 1),
			PeriodEnd:   types.NewDate(2026, 9, 30),
		},
		Lines: lines("100"),
	})

	tests := []struct {
		query string
		len   int
	}{
		{"", 2},
		{"status=DRAFT", 1},
		{"status=ISSUED", 1},
		{"kind=GENERATED", 0},
		{fmt.Sprintf("lease_id=%d", f.LeaseID), 1},
		{"number=INV-2026-*", 2},
		{"number=INV-2026-00002", 1},
		{"period_from=2026-09-01", 1},
		{"period_to=2026-08-31", 0},
		{"offset=1", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/invoices?%s", tt.query), "", orgHeaders(f.OrganizationID))
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var list v1.InvoiceListResponse
			test.DecodeResponse(t, &r, &list)
			assert.Len(t, list.Data, tt.len)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/invoices?period_from=tomorrow", "", orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestInvoiceExport() {
	f := createTestFixture(suite.T())
	invoice := createIssuedInvoice(suite.T(), f, "500", "300")

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/invoices/export?status=ISSUED", "", orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	assert.Equal(suite.T(), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", r.Header().Get("Content-Type"))
	assert.Contains(suite.T(), r.Header().Get("Content-Disposition"), "invoices_")

	file, err := excelize.OpenReader(bytes.NewReader(r.Body.Bytes()))
	require.Nil(suite.T(), err)
	defer file.Close()

	rows, err := file.GetRows("Invoices")
	require.Nil(suite.T(), err)
	require.Len(suite.T(), rows, 2)
	assert.Equal(suite.T(), "Number", rows[0][0])
	assert.Equal(suite.T(), invoice.Data.Number, rows[1][0])
	assert.Equal(suite.T(), "ISSUED", rows[1][1])
	assert.Equal(suite.T(), "Acme Retail", rows[1][3])
	assert.Equal(suite.T(), "800", rows[1][8])
}
