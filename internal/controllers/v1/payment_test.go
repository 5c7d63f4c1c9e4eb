package v1_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/leasedesk/backend/internal/allocation"
	v1 "github.com/leasedesk/backend/internal/controllers/v1"
	"github.com/leasedesk/backend/internal/metrics"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/types"
	"github.com/leasedesk/backend/test"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allocationErrorResponse is the body of rejected allocations.
type allocationErrorResponse struct {
	Error         string          `json:"error"`
	Kind          allocation.Kind `json:"kind"`
	InvoiceID     uint64          `json:"invoice_id"`
	InvoiceLineID uint64          `json:"invoice_line_id"`
}

func previewAllocation(t *testing.T, organizationID uint64, request v1.AllocationPreviewRequest, expectedStatus int) v1.AllocationPreviewResponse {
	r := test.Request(t, http.MethodPost, "http://example.com/v1/payments/allocation-preview", request, orgHeaders(organizationID))
	test.AssertHTTPStatus(t, &r, expectedStatus)

	var response v1.AllocationPreviewResponse
	test.DecodeResponse(t, &r, &response)
	return response
}

// submission builds a cash payment from allocation rows, skipping rows with
// nothing allocated.
func submission(tenantID uint64, amount string, rows []v1.AllocationRow) allocation.Submission {
	s := allocation.Submission{
		Payment: allocation.Payment{
			TenantID:   tenantID,
			Amount:     types.MustMoney(amount),
			ReceivedOn: types.NewDate(2026, 10, 18),
			Mode:       allocation.ModeCash,
		},
	}

	for _, row := range rows {
		if row.AllocatedAmount.IsZero() {
			continue
		}

		s.Allocations = append(s.Allocations, allocation.SubmissionAllocation{
			InvoiceLineID:   row.InvoiceLineID,
			AllocatedAmount: row.AllocatedAmount,
		})
	}

	return s
}

func recordPayment(t *testing.T, organizationID uint64, s allocation.Submission, expectedStatus int, headers ...map[string]string) httptest.ResponseRecorder {
	h := orgHeaders(organizationID)
	for _, m := range headers {
		for k, v := range m {
			h[k] = v
		}
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/payments", s, h)
	test.AssertHTTPStatus(t, &r, expectedStatus)
	return r
}

func getInvoice(t *testing.T, organizationID, id uint64) v1.Invoice {
	r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/invoices/%d", id), "", orgHeaders(organizationID))
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var invoice v1.InvoiceResponse
	test.DecodeResponse(t, &r, &invoice)
	return *invoice.Data
}

// TestPaymentScenarios covers auto-allocation and submission of payments
// against two invoices with lines of 500.00 and 300.00.
func (suite *TestSuiteStandard) TestPaymentScenarios() {
	tests := []struct {
		name      string
		amount    string
		allocated []string
		remaining string
		status    int
		kind      allocation.Kind
		statuses  []models.InvoiceStatus
	}{
		{"Exact amount", "800", []string{"500.00", "300.00"}, "0.00", http.StatusCreated, "", []models.InvoiceStatus{models.InvoicePaid, models.InvoicePaid}},
		{"Partial amount", "450", []string{"450.00", "0.00"}, "0.00", http.StatusCreated, "", []models.InvoiceStatus{models.InvoicePartiallyPaid, models.InvoiceIssued}},
		{"Amount above ceiling", "900", []string{"500.00", "300.00"}, "100.00", http.StatusBadRequest, allocation.KindSumMismatch, []models.InvoiceStatus{models.InvoiceIssued, models.InvoiceIssued}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			f := createTestFixture(t)
			first := createIssuedInvoice(t, f, "500")
			second := createIssuedInvoice(t, f, "300")

			amount := types.MustMoney(tt.amount)
			preview := previewAllocation(t, f.OrganizationID, v1.AllocationPreviewRequest{
				InvoiceIDs: []uint64{first.Data.ID, second.Data.ID},
				Amount:     &amount,
			}, http.StatusOK)

			require.Len(t, preview.Data.Rows, 2)
			for i, a := range tt.allocated {
				assert.Equal(t, a, preview.Data.Rows[i].AllocatedAmount.String(), "row %d", i)
			}
			assert.Equal(t, "800.00", preview.Data.Total.String())
			assert.Equal(t, tt.remaining, preview.Data.Remaining.String())

			r := recordPayment(t, f.OrganizationID, submission(f.TenantID, tt.amount, preview.Data.Rows), tt.status)
			if tt.kind != "" {
				var e allocationErrorResponse
				test.DecodeResponse(t, &r, &e)
				assert.Equal(t, tt.kind, e.Kind)
			}

			assert.Equal(t, tt.statuses[0], getInvoice(t, f.OrganizationID, first.Data.ID).Status)
			assert.Equal(t, tt.statuses[1], getInvoice(t, f.OrganizationID, second.Data.ID).Status)
		})
	}
}

func (suite *TestSuiteStandard) TestPaymentLineCeilingExceeded() {
	f := createTestFixture(suite.T())
	invoice := createIssuedInvoice(suite.T(), f, "500", "300")
	lineID := invoice.Data.Lines[0].ID

	s := allocation.Submission{
		Payment: allocation.Payment{
			TenantID: f.TenantID,
			Amount:   types.MustMoney("600"),
			Mode:     allocation.ModeBank,
		},
		Allocations: []allocation.SubmissionAllocation{
			{InvoiceLineID: lineID, AllocatedAmount: types.MustMoney("600")},
		},
	}

	before := testutil.ToFloat64(metrics.AllocationRejections.WithLabelValues(string(allocation.KindLineCeilingExceeded)))

	r := recordPayment(suite.T(), f.OrganizationID, s, http.StatusBadRequest)

	var e allocationErrorResponse
	test.DecodeResponse(suite.T(), &r, &e)
	assert.Equal(suite.T(), allocation.KindLineCeilingExceeded, e.Kind)
	assert.Equal(suite.T(), lineID, e.InvoiceLineID)

	after := testutil.ToFloat64(metrics.AllocationRejections.WithLabelValues(string(allocation.KindLineCeilingExceeded)))
	assert.Equal(suite.T(), before+1, after)
}

func (suite *TestSuiteStandard) TestPaymentMultipleTenants() {
	f := createTestFixture(suite.T())
	other := createTestTenant(suite.T(), f.OrganizationID, v1.TenantEditable{})

	first := createIssuedInvoice(suite.T(), f, "500")
	second := createTestInvoice(suite.T(), f.OrganizationID, v1.InvoiceCreate{
		InvoiceEditable: v1.InvoiceEditable{TenantID: other.Data.ID},
		Lines:           lines("300"),
	})
	issueTestInvoice(suite.T(), f.OrganizationID, second.Data.ID)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/payments/allocation-preview", v1.AllocationPreviewRequest{
		InvoiceIDs: []uint64{first.Data.ID, second.Data.ID},
	}, orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var e allocationErrorResponse
	test.DecodeResponse(suite.T(), &r, &e)
	assert.Equal(suite.T(), allocation.KindMultipleTenants, e.Kind)
}

// TestPaymentOtherTenantLine verifies that a line of another tenant is
// reported as a tenant mismatch.
func (suite *TestSuiteStandard) TestPaymentOtherTenantLine() {
	f := createTestFixture(suite.T())
	other := createTestTenant(suite.T(), f.OrganizationID, v1.TenantEditable{})

	own := createIssuedInvoice(suite.T(), f, "500")
	foreign := createTestInvoice(suite.T(), f.OrganizationID, v1.InvoiceCreate{
		InvoiceEditable: v1.InvoiceEditable{TenantID: other.Data.ID},
		Lines:           lines("300"),
	})
	issueTestInvoice(suite.T(), f.OrganizationID, foreign.Data.ID)

	s := submission(f.TenantID, "800", []v1.AllocationRow{
		{InvoiceID: own.Data.ID, InvoiceLineID: own.Data.Lines[0].ID, AllocatedAmount: types.MustMoney("500")},
		{InvoiceID: foreign.Data.ID, InvoiceLineID: foreign.Data.Lines[0].ID, AllocatedAmount: types.MustMoney("300")},
	})

	r := recordPayment(suite.T(), f.OrganizationID, s, http.StatusBadRequest)

	var e allocationErrorResponse
	test.DecodeResponse(suite.T(), &r, &e)
	assert.Equal(suite.T(), allocation.KindMultipleTenants, e.Kind)
	assert.Equal(suite.T(), foreign.Data.ID, e.InvoiceID)
	assert.Equal(suite.T(), foreign.Data.Lines[0].ID, e.InvoiceLineID)
	assert.Equal(suite.T(), models.InvoiceIssued, getInvoice(suite.T(), f.OrganizationID, own.Data.ID).Status)
}

// TestPaymentRecordPayload posts the submission payload as a client sends it.
func (suite *TestSuiteStandard) TestPaymentRecordPayload() {
	f := createTestFixture(suite.T())
	invoice := createIssuedInvoice(suite.T(), f, "500", "300")

	body := fmt.Sprintf(`{
		"payment": {
			"tenant_id":    %d,
			"amount":       "650.00",
			"received_on":  "2026-10-18",
			"mode":         "BANK",
			"reference_no": "UTR-0001",
			"note":         "October",
			"meta": { "bank_name": "HDFC", "received_at": "2026-10-18T10:15:00+05:30" }
		},
		"allocations": [
			{ "invoice_line_id": %d, "allocated_amount": "500.00" },
			{ "invoice_line_id": %d, "allocated_amount": "150.00" }
		]
	}`, f.TenantID, invoice.Data.Lines[0].ID, invoice.Data.Lines[1].ID)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/payments", body, orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var raw struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	test.DecodeResponse(suite.T(), &r, &raw)
	require.Contains(suite.T(), raw.Data, "payment")
	require.Contains(suite.T(), raw.Data, "allocations")
	assert.NotContains(suite.T(), raw.Data, "tenant_id", "payment fields are nested")

	var payment allocation.Payment
	require.Nil(suite.T(), json.Unmarshal(raw.Data["payment"], &payment))
	assert.Equal(suite.T(), f.TenantID, payment.TenantID)
	assert.Equal(suite.T(), "650.00", payment.Amount.String())
	assert.Equal(suite.T(), types.NewDate(2026, 10, 18), payment.ReceivedOn)
	assert.Equal(suite.T(), allocation.ModeBank, payment.Mode)
	assert.Equal(suite.T(), "UTR-0001", payment.ReferenceNo)
	assert.Equal(suite.T(), "October", payment.Note)
	assert.Equal(suite.T(), allocation.Meta{BankName: "HDFC", ReceivedAt: "2026-10-18T10:15:00+05:30"}, payment.Meta)
	assert.Equal(suite.T(), models.InvoicePartiallyPaid, getInvoice(suite.T(), f.OrganizationID, invoice.Data.ID).Status)
}

func (suite *TestSuiteStandard) TestPaymentPreviewErrors() {
	f := createTestFixture(suite.T())
	draft := createTestInvoice(suite.T(), f.OrganizationID, v1.InvoiceCreate{
		InvoiceEditable: v1.InvoiceEditable{TenantID: f.TenantID},
		Lines:           lines("100"),
	})

	tests := []struct {
		name   string
		ids    []uint64
		status int
		kind   allocation.Kind
	}{
		{"No invoices", []uint64{}, http.StatusBadRequest, allocation.KindNoInvoices},
		{"Draft invoice", []uint64{draft.Data.ID}, http.StatusBadRequest, allocation.KindNotPayable},
		{"Unknown invoice", []uint64{9999}, http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/payments/allocation-preview", v1.AllocationPreviewRequest{InvoiceIDs: tt.ids}, orgHeaders(f.OrganizationID))
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.kind != "" {
				var e allocationErrorResponse
				test.DecodeResponse(t, &r, &e)
				assert.Equal(t, tt.kind, e.Kind)
			}
		})
	}
}

// TestPaymentPreviewOutstanding verifies that earlier payments reduce the line amounts.
func (suite *TestSuiteStandard) TestPaymentPreviewOutstanding() {
	f := createTestFixture(suite.T())
	invoice := createIssuedInvoice(suite.T(), f, "500", "300")

	s := allocation.Submission{
		Payment: allocation.Payment{
			TenantID: f.TenantID,
			Amount:   types.MustMoney("500"),
			Mode:     allocation.ModeUPI,
		},
		Allocations: []allocation.SubmissionAllocation{
			{InvoiceLineID: invoice.Data.Lines[0].ID, AllocatedAmount: types.MustMoney("500")},
		},
	}
	recordPayment(suite.T(), f.OrganizationID, s, http.StatusCreated)

	preview := previewAllocation(suite.T(), f.OrganizationID, v1.AllocationPreviewRequest{InvoiceIDs: []uint64{invoice.Data.ID}}, http.StatusOK)
	require.Len(suite.T(), preview.Data.Rows, 1, "the fully paid line must not be offered again")
	assert.Equal(suite.T(), invoice.Data.Lines[1].ID, preview.Data.Rows[0].InvoiceLineID)
	assert.Equal(suite.T(), "300.00", preview.Data.Rows[0].LineAmount.String())
	assert.Equal(suite.T(), "300.00", preview.Data.Allocated.String(), "rows start fully allocated")
}

func (suite *TestSuiteStandard) TestPaymentIdempotency() {
	f := createTestFixture(suite.T())
	invoice := createIssuedInvoice(suite.T(), f, "500")

	s := allocation.Submission{
		Payment: allocation.Payment{
			TenantID: f.TenantID,
			Amount:   types.MustMoney("200"),
			Mode:     allocation.ModeCheque,
		},
		Allocations: []allocation.SubmissionAllocation{
			{InvoiceLineID: invoice.Data.Lines[0].ID, AllocatedAmount: types.MustMoney("200")},
		},
	}

	key := map[string]string{"Idempotency-Key": uuid.NewString()}
	before := testutil.ToFloat64(metrics.PaymentsRecorded.WithLabelValues(string(allocation.ModeCheque)))

	first := recordPayment(suite.T(), f.OrganizationID, s, http.StatusCreated, key)
	second := recordPayment(suite.T(), f.OrganizationID, s, http.StatusOK, key)

	var p1, p2 v1.PaymentResponse
	test.DecodeResponse(suite.T(), &first, &p1)
	test.DecodeResponse(suite.T(), &second, &p2)
	assert.Equal(suite.T(), p1.Data.ID, p2.Data.ID)
	assert.Equal(suite.T(), p1.Data.Number, p2.Data.Number)

	after := testutil.ToFloat64(metrics.PaymentsRecorded.WithLabelValues(string(allocation.ModeCheque)))
	assert.Equal(suite.T(), before+1, after, "replays must not be counted")

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/payments", "", orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.PaymentListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Len(suite.T(), list.Data, 1)
	assert.Equal(suite.T(), "300.00", getInvoice(suite.T(), f.OrganizationID, invoice.Data.ID).Balance.String())
}

func (suite *TestSuiteStandard) TestPaymentIdempotencyKeyInvalid() {
	f := createTestFixture(suite.T())

	r := recordPayment(suite.T(), f.OrganizationID, allocation.Submission{}, http.StatusBadRequest, map[string]string{"Idempotency-Key": "not-a-uuid"})
	assert.Equal(suite.T(), "the Idempotency-Key header must be a UUID", test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestPaymentValidate() {
	f := createTestFixture(suite.T())
	invoice := createIssuedInvoice(suite.T(), f, "500", "300")

	s := allocation.Submission{
		Payment: allocation.Payment{
			TenantID: f.TenantID,
			Amount:   types.MustMoney("650"),
			Mode:     allocation.ModeCash,
		},
		Allocations: []allocation.SubmissionAllocation{
			{InvoiceLineID: invoice.Data.Lines[0].ID, AllocatedAmount: types.MustMoney("500")},
			{InvoiceLineID: invoice.Data.Lines[1].ID, AllocatedAmount: types.MustMoney("150")},
		},
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/payments/validate", s, orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PaymentValidationResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data.Allocations, 2)
	assert.Equal(suite.T(), invoice.Data.ID, response.Data.Allocations[1].InvoiceID)
	assert.Equal(suite.T(), "150.00", response.Data.Allocations[1].Amount.String())

	// Validation stores nothing
	assert.Equal(suite.T(), models.InvoiceIssued, getInvoice(suite.T(), f.OrganizationID, invoice.Data.ID).Status)

	s.Payment.Mode = "CARD"
	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/payments/validate", s, orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Equal(suite.T(), allocation.ErrModeInvalid.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestPaymentMeta() {
	f := createTestFixture(suite.T())
	invoice := createIssuedInvoice(suite.T(), f, "500")

	s := allocation.Submission{
		Payment: allocation.Payment{
			TenantID:    f.TenantID,
			Amount:      types.MustMoney("500"),
			Mode:        allocation.ModeBank,
			ReferenceNo: " UTR-1234 ",
			Meta: allocation.Meta{
				BankName:   "HDFC",
				ReceivedAt: "2026-10-18T04:45:00Z",
			},
		},
		Allocations: []allocation.SubmissionAllocation{
			{InvoiceLineID: invoice.Data.Lines[0].ID, AllocatedAmount: types.MustMoney("500")},
		},
	}

	r := recordPayment(suite.T(), f.OrganizationID, s, http.StatusCreated)

	var payment v1.PaymentResponse
	test.DecodeResponse(suite.T(), &r, &payment)
	assert.Equal(suite.T(), "UTR-1234", payment.Data.Payment.ReferenceNo)
	assert.Equal(suite.T(), "2026-10-18T04:45:00+00:00", payment.Data.Payment.Meta.ReceivedAt)
	assert.Equal(suite.T(), "HDFC", payment.Data.Payment.Meta.BankName)
	assert.Regexp(suite.T(), `^RCPT-\d{4}-00001$`, payment.Data.Number)

	s.Payment.Meta.ReceivedAt = "yesterday"
	r = recordPayment(suite.T(), f.OrganizationID, s, http.StatusBadRequest)
	assert.Contains(suite.T(), test.DecodeError(suite.T(), r.Body.Bytes()), allocation.ErrReceivedAtInvalid.Error())
}

func (suite *TestSuiteStandard) TestPaymentsFilter() {
	f := createTestFixture(suite.T())
	first := createIssuedInvoice(suite.T(), f, "500")
	second := createIssuedInvoice(suite.T(), f, "300")

	for _, i := range []v1.InvoiceResponse{first, second} {
		recordPayment(suite.T(), f.OrganizationID, allocation.Submission{
			Payment: allocation.Payment{
				TenantID: f.TenantID,
				Amount:   types.MustMoney("100"),
				Mode:     allocation.ModeCash,
			},
			Allocations: []allocation.SubmissionAllocation{
				{InvoiceLineID: i.Data.Lines[0].ID, AllocatedAmount: types.MustMoney("100")},
			},
		}, http.StatusCreated)
	}

	tests := []struct {
		query string
		len   int
	}{
		{"", 2},
		{fmt.Sprintf("invoice_id=%d", first.Data.ID), 1},
		{fmt.Sprintf("tenant_id=%d", f.TenantID), 2},
		{"mode=BANK", 0},
		{"mode=CASH&limit=1", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/payments?%s", tt.query), "", orgHeaders(f.OrganizationID))
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var list v1.PaymentListResponse
			test.DecodeResponse(t, &r, &list)
			assert.Len(t, list.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestPaymentGet() {
	f := createTestFixture(suite.T())
	invoice := createIssuedInvoice(suite.T(), f, "500")

	r := recordPayment(suite.T(), f.OrganizationID, allocation.Submission{
		Payment: allocation.Payment{
			TenantID: f.TenantID,
			Amount:   types.MustMoney("500"),
			Mode:     allocation.ModeOther,
		},
		Allocations: []allocation.SubmissionAllocation{
			{InvoiceLineID: invoice.Data.Lines[0].ID, AllocatedAmount: types.MustMoney("500")},
		},
	}, http.StatusCreated)

	var created v1.PaymentResponse
	test.DecodeResponse(suite.T(), &r, &created)

	recorder := test.Request(suite.T(), http.MethodGet, created.Data.Links.Self, "", orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var payment v1.PaymentResponse
	test.DecodeResponse(suite.T(), &recorder, &payment)
	require.Len(suite.T(), payment.Data.Allocations, 1)
	assert.Equal(suite.T(), "500.00", payment.Data.Allocations[0].AllocatedAmount.String())

	// Payments of other organizations are not visible
	other := createTestOrganization(suite.T(), v1.OrganizationEditable{})
	recorder = test.Request(suite.T(), http.MethodGet, created.Data.Links.Self, "", orgHeaders(other.Data.ID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

// TestPaymentTowerScope verifies that invoices outside of the scoped tower
// cannot be paid.
func (suite *TestSuiteStandard) TestPaymentTowerScope() {
	f := createTestFixture(suite.T())
	invoice := createIssuedInvoice(suite.T(), f, "500")
	other := createTestTower(suite.T(), f.OrganizationID, v1.TowerEditable{})

	request := v1.AllocationPreviewRequest{InvoiceIDs: []uint64{invoice.Data.ID}}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/payments/allocation-preview", request, towerHeaders(f.OrganizationID, f.TowerID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/payments/allocation-preview", request, towerHeaders(f.OrganizationID, other.Data.ID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	s := allocation.Submission{
		Payment: allocation.Payment{
			TenantID: f.TenantID,
			Amount:   types.MustMoney("500"),
			Mode:     allocation.ModeCash,
		},
		Allocations: []allocation.SubmissionAllocation{
			{InvoiceLineID: invoice.Data.Lines[0].ID, AllocatedAmount: types.MustMoney("500")},
		},
	}

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/payments", s, towerHeaders(f.OrganizationID, other.Data.ID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	assert.Equal(suite.T(), models.InvoiceIssued, getInvoice(suite.T(), f.OrganizationID, invoice.Data.ID).Status)
}
