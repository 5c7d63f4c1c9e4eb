package v1

import (
	"fmt"

	"github.com/divan/num2words"
	"github.com/gin-gonic/gin"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/types"
	"github.com/shopspring/decimal"
)

type InvoiceEditable struct {
	TenantID    uint64     `json:"tenant_id" example:"4"`                                  // ID of the billed tenant
	LeaseID     *uint64    `json:"lease_id" example:"9"`                                   // ID of the lease the invoice is for. Must belong to the tenant
	PeriodStart types.Date `json:"period_start" swaggertype:"string" example:"2026-10-01"` // First day of the billed period
	PeriodEnd   types.Date `json:"period_end" swaggertype:"string" example:"2026-10-31"`   // Last day of the billed period
	DueDate     types.Date `json:"due_date" swaggertype:"string" example:"2026-10-15"`     // Date the invoice is due
	Note        string     `json:"note" example:"Fit-out charges, phase 2" default:""`     // A note printed on the invoice
}

func (editable InvoiceEditable) model(organizationID uint64) models.Invoice {
	return models.Invoice{
		OrganizationID: organizationID,
		TenantID:       editable.TenantID,
		LeaseID:        editable.LeaseID,
		PeriodStart:    editable.PeriodStart,
		PeriodEnd:      editable.PeriodEnd,
		DueDate:        editable.DueDate,
		Note:           editable.Note,
	}
}

// InvoiceCreate is a new draft invoice with its lines.
type InvoiceCreate struct {
	InvoiceEditable
	Lines []InvoiceLineEditable `json:"lines"` // Lines of the invoice, in order
}

func (create InvoiceCreate) model(organizationID uint64) models.Invoice {
	invoice := create.InvoiceEditable.model(organizationID)
	invoice.Status = models.InvoiceDraft
	invoice.Kind = models.InvoiceManual

	for position, l := range create.Lines {
		line := l.model(0)
		if line.Position == 0 {
			line.Position = position
		}
		invoice.Lines = append(invoice.Lines, line)
	}

	return invoice
}

type InvoiceLineEditable struct {
	Position    int         `json:"position" example:"1" default:"0"`                            // Lines are sorted by position
	ChargeType  string      `json:"charge_type" example:"RENT"`                                  // Charge type, e.g. RENT, CAM or PARKING
	Description string      `json:"description" example:"Rent October 2026" default:""`          // Description of the charge
	Amount      types.Money `json:"amount" swaggertype:"string" example:"800.00" minimum:"0.01"` // Amount of the charge, must be larger than zero
}

func (editable InvoiceLineEditable) model(invoiceID uint64) models.InvoiceLine {
	return models.InvoiceLine{
		InvoiceID:   invoiceID,
		Position:    editable.Position,
		ChargeType:  editable.ChargeType,
		Description: editable.Description,
		Amount:      types.Round(editable.Amount.Decimal),
	}
}

type InvoiceLineLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/invoices/12/lines/31"` // The invoice line itself
	Invoice string `json:"invoice" example:"https://example.com/api/v1/invoices/12"`       // The invoice the line is on
}

type InvoiceLine struct {
	models.DefaultModel
	InvoiceID uint64 `json:"invoice_id" example:"12"` // ID of the invoice
	InvoiceLineEditable
	BillingRuleID *uint64          `json:"billing_rule_id" example:"4"` // ID of the billing rule that generated the line
	Links         InvoiceLineLinks `json:"links"`
}

func newInvoiceLine(c *gin.Context, model models.InvoiceLine) InvoiceLine {
	url := c.GetString(string(models.DBContextURL))

	return InvoiceLine{
		DefaultModel: model.DefaultModel,
		InvoiceID:    model.InvoiceID,
		InvoiceLineEditable: InvoiceLineEditable{
			Position:    model.Position,
			ChargeType:  model.ChargeType,
			Description: model.Description,
			Amount:      types.NewMoney(model.Amount),
		},
		BillingRuleID: model.BillingRuleID,
		Links: InvoiceLineLinks{
			Self:    fmt.Sprintf("%s/v1/invoices/%d/lines/%d", url, model.InvoiceID, model.ID),
			Invoice: fmt.Sprintf("%s/v1/invoices/%d", url, model.InvoiceID),
		},
	}
}

type InvoiceLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/invoices/12"`                // The invoice itself
	Lines    string `json:"lines" example:"https://example.com/api/v1/invoices/12/lines"`         // Lines of the invoice
	Tenant   string `json:"tenant" example:"https://example.com/api/v1/tenants/4"`                // The billed tenant
	Lease    string `json:"lease" example:"https://example.com/api/v1/leases/9"`                  // The lease, empty for invoices without a lease
	Issue    string `json:"issue" example:"https://example.com/api/v1/invoices/12/issue"`         // Issues the draft invoice
	Cancel   string `json:"cancel" example:"https://example.com/api/v1/invoices/12/cancel"`       // Cancels the invoice
	Payments string `json:"payments" example:"https://example.com/api/v1/payments?invoice_id=12"` // Payments allocated to the invoice
}

type Invoice struct {
	models.DefaultModel
	OrganizationID uint64               `json:"organization_id" example:"1"`                                                // ID of the organization the invoice belongs to
	Number         string               `json:"number" example:"INV-2026-00042"`                                            // Invoice number, assigned on creation
	Status         models.InvoiceStatus `json:"status" example:"ISSUED" enums:"DRAFT,ISSUED,PARTIALLY_PAID,PAID,CANCELLED"` // Status of the invoice
	Kind           models.InvoiceKind   `json:"kind" example:"MANUAL" enums:"MANUAL,GENERATED"`                             // MANUAL invoices are created by users, GENERATED ones by billing runs
	IssuedOn       types.Date           `json:"issued_on" swaggertype:"string" example:"2026-10-01"`                        // Date the invoice was issued
	InvoiceEditable
	Lines          []InvoiceLine `json:"lines"`                                                                   // Lines of the invoice
	Total          types.Money   `json:"total" swaggertype:"string" example:"1150.00"`                            // Sum of all lines
	Paid           types.Money   `json:"paid" swaggertype:"string" example:"800.00"`                              // Sum of all payment allocations
	Balance        types.Money   `json:"balance" swaggertype:"string" example:"350.00"`                           // Total minus paid
	Currency       string        `json:"currency" example:"INR"`                                                  // ISO 4217 code of the organization's currency
	CurrencySymbol string        `json:"currency_symbol" example:"₹"`                                             // Symbol of the currency
	AmountInWords  string        `json:"amount_in_words" example:"INR one thousand one hundred fifty and 00/100"` // The total spelled out
	Links          InvoiceLinks  `json:"links"`
}

// amountInWords spells out an amount with its currency and the fraction in hundredths.
func amountInWords(amount decimal.Decimal, currency string) string {
	amount = types.Round(amount)
	whole := amount.Truncate(0)
	hundredths := amount.Sub(whole).Shift(2).IntPart()

	return fmt.Sprintf("%s %s and %02d/100", currency, num2words.Convert(int(whole.IntPart())), hundredths)
}

func newInvoice(c *gin.Context, model models.Invoice, summary models.PaymentSummary, organization models.Organization) Invoice {
	url := c.GetString(string(models.DBContextURL))

	lines := make([]InvoiceLine, 0, len(model.Lines))
	for _, l := range model.Lines {
		lines = append(lines, newInvoiceLine(c, l))
	}

	lease := ""
	if model.LeaseID != nil {
		lease = fmt.Sprintf("%s/v1/leases/%d", url, *model.LeaseID)
	}

	total := types.Round(model.Total())

	return Invoice{
		DefaultModel:   model.DefaultModel,
		OrganizationID: model.OrganizationID,
		Number:         model.Number,
		Status:         model.Status,
		Kind:           model.Kind,
		IssuedOn:       model.IssuedOn,
		InvoiceEditable: InvoiceEditable{
			TenantID:    model.TenantID,
			LeaseID:     model.LeaseID,
			PeriodStart: model.PeriodStart,
			PeriodEnd:   model.PeriodEnd,
			DueDate:     model.DueDate,
			Note:        model.Note,
		},
		Lines:          lines,
		Total:          types.NewMoney(total),
		Paid:           types.NewMoney(summary.Paid),
		Balance:        types.NewMoney(summary.Balance),
		Currency:       organization.Currency,
		CurrencySymbol: organization.Symbol(),
		AmountInWords:  amountInWords(total, organization.Currency),
		Links: InvoiceLinks{
			Self:     fmt.Sprintf("%s/v1/invoices/%d", url, model.ID),
			Lines:    fmt.Sprintf("%s/v1/invoices/%d/lines", url, model.ID),
			Tenant:   fmt.Sprintf("%s/v1/tenants/%d", url, model.TenantID),
			Lease:    lease,
			Issue:    fmt.Sprintf("%s/v1/invoices/%d/issue", url, model.ID),
			Cancel:   fmt.Sprintf("%s/v1/invoices/%d/cancel", url, model.ID),
			Payments: fmt.Sprintf("%s/v1/payments?invoice_id=%d", url, model.ID),
		},
	}
}

type InvoiceListResponse struct {
	Data       []Invoice   `json:"data"`                                                    // List of invoices
	Error      *string     `json:"error" example:"the invoice status must be one of DRAFT"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                              // Pagination information
}

type InvoiceCreateResponse struct {
	Error *string           `json:"error" example:"the invoice due date must be set"` // The error, if any occurred
	Data  []InvoiceResponse `json:"data"`                                             // List of created invoices
}

func (i *InvoiceCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	i.Data = append(i.Data, InvoiceResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type InvoiceResponse struct {
	Error *string  `json:"error" example:"there is no invoice matching your query"` // The error, if any occurred
	Data  *Invoice `json:"data"`                                                    // Data for the invoice
}

type InvoiceQueryFilter struct {
	Status     models.InvoiceStatus `form:"status"`                          // By status
	Kind       models.InvoiceKind   `form:"kind"`                            // By kind
	TenantID   uint64               `form:"tenant_id"`                       // By tenant
	LeaseID    uint64               `form:"lease_id" filterField:"false"`    // By lease
	Number     string               `form:"number" filterField:"false"`      // By number, * and ? are wildcards
	PeriodFrom string               `form:"period_from" filterField:"false"` // Invoices with a period starting on or after this date
	PeriodTo   string               `form:"period_to" filterField:"false"`   // Invoices with a period ending on or before this date
	Offset     uint                 `form:"offset" filterField:"false"`      // The offset of the first invoice returned. Defaults to 0.
	Limit      int                  `form:"limit" filterField:"false"`       // Maximum number of invoices to return. Defaults to 50.
}

func (f InvoiceQueryFilter) model() models.Invoice {
	return models.Invoice{
		Status:   f.Status,
		Kind:     f.Kind,
		TenantID: f.TenantID,
	}
}

// InvoiceIssue issues several draft invoices at once.
type InvoiceIssue struct {
	InvoiceIDs []uint64   `json:"invoice_ids" example:"12,13"`                         // IDs of the draft invoices to issue
	IssuedOn   types.Date `json:"issued_on" swaggertype:"string" example:"2026-10-01"` // Issue date, defaults to today
}

// InvoiceIssueDate is the optional body for issuing a single invoice.
type InvoiceIssueDate struct {
	IssuedOn types.Date `json:"issued_on" swaggertype:"string" example:"2026-10-01"` // Issue date, defaults to today
}

type InvoiceLineListResponse struct {
	Data  []InvoiceLine `json:"data"`                                                    // List of invoice lines
	Error *string       `json:"error" example:"there is no invoice matching your query"` // The error, if any occurred
}

type InvoiceLineCreateResponse struct {
	Error *string               `json:"error" example:"only draft invoices can be edited"` // The error, if any occurred
	Data  []InvoiceLineResponse `json:"data"`                                              // List of created invoice lines
}

func (i *InvoiceLineCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	i.Data = append(i.Data, InvoiceLineResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type InvoiceLineResponse struct {
	Error *string      `json:"error" example:"invoice line amounts must be larger than zero"` // The error, if any occurred
	Data  *InvoiceLine `json:"data"`                                                          // Data for the invoice line
}
