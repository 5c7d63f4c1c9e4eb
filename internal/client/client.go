// Package client is a Go client for the LeaseDesk API.
//
// Every call takes the scope it operates in. Failed calls return an *Error. The
// client never retries a request.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/leasedesk/backend/internal/ageing"
	"github.com/leasedesk/backend/internal/allocation"
	v1 "github.com/leasedesk/backend/internal/controllers/v1"
	"github.com/leasedesk/backend/internal/scope"
	"github.com/leasedesk/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Client wraps the HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

// New returns a client for the API at baseURL, e.g. https://leasedesk.example.com/api.
func New(baseURL string, options ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, o := range options {
		o(c)
	}

	return c
}

// Do sends a request to path with body encoded as JSON and decodes the
// response into out. body and out may be nil.
func (c *Client) Do(ctx context.Context, s scope.Scope, method, path string, body, out any, headers ...http.Header) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: encoding request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if s.OrganizationID != 0 {
		s.Apply(req.Header)
	}

	for _, h := range headers {
		for k, v := range h {
			req.Header[k] = v
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("client: decoding response: %w", err)
	}

	return nil
}

// Invoice returns an invoice with its lines, totals and balance.
func (c *Client) Invoice(ctx context.Context, s scope.Scope, id uint64) (v1.Invoice, error) {
	var r v1.InvoiceResponse
	err := c.Do(ctx, s, http.MethodGet, fmt.Sprintf("/v1/invoices/%d", id), nil, &r)
	if err != nil {
		return v1.Invoice{}, err
	}

	return *r.Data, nil
}

// Invoices lists invoices. query holds the filters, e.g. status=ISSUED and tenant_id=4.
func (c *Client) Invoices(ctx context.Context, s scope.Scope, query url.Values) ([]v1.Invoice, error) {
	path := "/v1/invoices"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var r v1.InvoiceListResponse
	err := c.Do(ctx, s, http.MethodGet, path, nil, &r)
	if err != nil {
		return nil, err
	}

	return r.Data, nil
}

// IssueInvoices issues draft invoices. Either all of them are issued or none.
func (c *Client) IssueInvoices(ctx context.Context, s scope.Scope, ids []uint64, issuedOn types.Date) ([]v1.Invoice, error) {
	var r v1.InvoiceListResponse
	err := c.Do(ctx, s, http.MethodPost, "/v1/invoices/issue", v1.InvoiceIssue{InvoiceIDs: ids, IssuedOn: issuedOn}, &r)
	if err != nil {
		return nil, err
	}

	return r.Data, nil
}

// AllocationRows returns one fully allocated row per outstanding line of the
// selected invoices, in selection order.
func (c *Client) AllocationRows(ctx context.Context, s scope.Scope, invoiceIDs []uint64) ([]allocation.Row, error) {
	return c.allocationPreview(ctx, s, v1.AllocationPreviewRequest{InvoiceIDs: invoiceIDs})
}

// AutoAllocate returns the rows of the selected invoices filled greedily up to amount.
func (c *Client) AutoAllocate(ctx context.Context, s scope.Scope, invoiceIDs []uint64, amount decimal.Decimal) ([]allocation.Row, error) {
	m := types.NewMoney(amount)
	return c.allocationPreview(ctx, s, v1.AllocationPreviewRequest{InvoiceIDs: invoiceIDs, Amount: &m})
}

func (c *Client) allocationPreview(ctx context.Context, s scope.Scope, request v1.AllocationPreviewRequest) ([]allocation.Row, error) {
	var r v1.AllocationPreviewResponse
	err := c.Do(ctx, s, http.MethodPost, "/v1/payments/allocation-preview", request, &r)
	if err != nil {
		return nil, err
	}

	rows := make([]allocation.Row, 0, len(r.Data.Rows))
	for _, row := range r.Data.Rows {
		rows = append(rows, allocation.Row{
			InvoiceID:       row.InvoiceID,
			InvoiceLineID:   row.InvoiceLineID,
			TenantID:        row.TenantID,
			LineAmount:      row.LineAmount.Decimal,
			AllocatedAmount: row.AllocatedAmount.Decimal,
		})
	}

	return rows, nil
}

// RecordPayment validates the payment and its rows and records it.
//
// Validation failures are returned before any request is sent. A payment
// without a receipt date is dated today. A non-empty idempotencyKey, which
// must be a UUID, makes resubmitting the same payment safe.
func (c *Client) RecordPayment(ctx context.Context, s scope.Scope, payment allocation.Payment, rows []allocation.Row, idempotencyKey string) (v1.Payment, error) {
	meta, err := payment.Check()
	if err != nil {
		return v1.Payment{}, err
	}
	payment.Meta = meta

	allocations, err := allocation.Validate(payment.Draft(), rows)
	if err != nil {
		return v1.Payment{}, err
	}

	var headers http.Header
	if idempotencyKey != "" {
		headers = http.Header{"Idempotency-Key": []string{idempotencyKey}}
	}

	var r v1.PaymentResponse
	err = c.Do(ctx, s, http.MethodPost, "/v1/payments", allocation.NewSubmission(payment, allocations), &r, headers)
	if err != nil {
		return v1.Payment{}, err
	}

	return *r.Data, nil
}

// Payment returns a recorded payment.
func (c *Client) Payment(ctx context.Context, s scope.Scope, id uint64) (v1.Payment, error) {
	var r v1.PaymentResponse
	err := c.Do(ctx, s, http.MethodGet, fmt.Sprintf("/v1/payments/%d", id), nil, &r)
	if err != nil {
		return v1.Payment{}, err
	}

	return *r.Data, nil
}

// Form returns the form of an entity: system fields and the organization's custom fields.
func (c *Client) Form(ctx context.Context, s scope.Scope, entity string) (v1.Form, error) {
	var r v1.FormResponse
	err := c.Do(ctx, s, http.MethodGet, "/v1/forms/"+url.PathEscape(entity), nil, &r)
	if err != nil {
		return v1.Form{}, err
	}

	return *r.Data, nil
}

// SelectLocation selects a tower, a floor or both in a TOWER_FLOOR field of a
// form and returns the values after the selection with the selectable floors.
func (c *Client) SelectLocation(ctx context.Context, s scope.Scope, entity string, selection v1.FormCascade) (v1.FormCascadeResult, error) {
	var r v1.FormCascadeResponse
	err := c.Do(ctx, s, http.MethodPost, "/v1/forms/"+url.PathEscape(entity)+"/cascade", selection, &r)
	if err != nil {
		return v1.FormCascadeResult{}, err
	}

	return *r.Data, nil
}

// AgeingReport returns the outstanding receivables of the scope by days overdue as of a date.
func (c *Client) AgeingReport(ctx context.Context, s scope.Scope, asOf types.Date) (v1.AgeingReport, error) {
	path := "/v1/ageing/report"
	if !asOf.IsZero() {
		path += "?as_of=" + asOf.String()
	}

	var r v1.AgeingReportResponse
	err := c.Do(ctx, s, http.MethodGet, path, nil, &r)
	if err != nil {
		return v1.AgeingReport{}, err
	}

	return *r.Data, nil
}

// AgeingBuckets replaces the ageing buckets of the organization.
func (c *Client) AgeingBuckets(ctx context.Context, s scope.Scope, buckets []ageing.Bucket) ([]ageing.Bucket, error) {
	var r v1.AgeingBucketListResponse
	err := c.Do(ctx, s, http.MethodPut, "/v1/ageing/buckets", buckets, &r)
	if err != nil {
		return nil, err
	}

	return r.Data, nil
}
