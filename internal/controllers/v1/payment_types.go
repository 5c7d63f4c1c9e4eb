package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/leasedesk/backend/internal/allocation"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/types"
)

// AllocationPreviewRequest selects the invoices a payment is allocated to.
type AllocationPreviewRequest struct {
	InvoiceIDs []uint64     `json:"invoice_ids" example:"12,13"`                  // Invoices in the order they are paid
	Amount     *types.Money `json:"amount" swaggertype:"string" example:"800.00"` // When set, the rows are allocated automatically up to this amount
}

type AllocationRow struct {
	InvoiceID       uint64      `json:"invoice_id" example:"12"`                                // ID of the invoice
	InvoiceLineID   uint64      `json:"invoice_line_id" example:"31"`                           // ID of the invoice line
	TenantID        uint64      `json:"tenant_id" example:"4"`                                  // ID of the tenant the invoice is billed to
	LineAmount      types.Money `json:"line_amount" swaggertype:"string" example:"500.00"`      // Outstanding amount of the line, the most that can be allocated
	AllocatedAmount types.Money `json:"allocated_amount" swaggertype:"string" example:"500.00"` // Amount allocated to the line
}

func newAllocationRows(rows []allocation.Row) []AllocationRow {
	data := make([]AllocationRow, 0, len(rows))
	for _, r := range rows {
		data = append(data, AllocationRow{
			InvoiceID:       r.InvoiceID,
			InvoiceLineID:   r.InvoiceLineID,
			TenantID:        r.TenantID,
			LineAmount:      types.NewMoney(r.LineAmount),
			AllocatedAmount: types.NewMoney(r.AllocatedAmount),
		})
	}
	return data
}

type AllocationPreview struct {
	Rows      []AllocationRow `json:"rows"`                                            // One row per outstanding invoice line
	Total     types.Money     `json:"total" swaggertype:"string" example:"1150.00"`    // Sum of all line amounts
	Allocated types.Money     `json:"allocated" swaggertype:"string" example:"800.00"` // Sum of all allocated amounts
	Remaining types.Money     `json:"remaining" swaggertype:"string" example:"0.00"`   // Part of the amount no line could absorb
}

type AllocationPreviewResponse struct {
	Error *string            `json:"error" example:"multiple tenants in selection"` // The error, if any occurred
	Data  *AllocationPreview `json:"data"`                                          // The allocation rows
}

type ValidatedAllocation struct {
	InvoiceID     uint64      `json:"invoice_id" example:"12"`                      // ID of the invoice
	InvoiceLineID uint64      `json:"invoice_line_id" example:"31"`                 // ID of the invoice line
	Amount        types.Money `json:"amount" swaggertype:"string" example:"500.00"` // Allocated amount
}

type PaymentValidation struct {
	Allocations []ValidatedAllocation `json:"allocations"` // The allocations that would be recorded
}

type PaymentValidationResponse struct {
	Data *PaymentValidation `json:"data"` // The validated allocations
}

type PaymentLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/payments/7"`  // The payment itself
	Tenant string `json:"tenant" example:"https://example.com/api/v1/tenants/4"` // The paying tenant
}

// Payment is a recorded payment in the shape it was submitted in.
type Payment struct {
	models.DefaultModel
	OrganizationID uint64 `json:"organization_id" example:"1"`      // ID of the organization the payment belongs to
	Number         string `json:"number" example:"RCPT-2026-00007"` // Receipt number, assigned on creation
	allocation.Submission
	Links PaymentLinks `json:"links"`
}

func newPayment(c *gin.Context, model models.Payment) Payment {
	url := c.GetString(string(models.DBContextURL))

	return Payment{
		DefaultModel:   model.DefaultModel,
		OrganizationID: model.OrganizationID,
		Number:         model.Number,
		Submission:     model.Submission(),
		Links: PaymentLinks{
			Self:   fmt.Sprintf("%s/v1/payments/%d", url, model.ID),
			Tenant: fmt.Sprintf("%s/v1/tenants/%d", url, model.TenantID),
		},
	}
}

type PaymentListResponse struct {
	Data       []Payment   `json:"data"`                                                 // List of payments
	Error      *string     `json:"error" example:"the payment mode must be one of CASH"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                           // Pagination information
}

type PaymentResponse struct {
	Error *string  `json:"error" example:"there is no payment matching your query"` // The error, if any occurred
	Data  *Payment `json:"data"`                                                    // Data for the payment
}

type PaymentQueryFilter struct {
	TenantID  uint64          `form:"tenant_id"`                      // By tenant
	Mode      allocation.Mode `form:"mode"`                           // By payment mode
	InvoiceID uint64          `form:"invoice_id" filterField:"false"` // Payments allocated to this invoice
	Offset    uint            `form:"offset" filterField:"false"`     // The offset of the first payment returned. Defaults to 0.
	Limit     int             `form:"limit" filterField:"false"`      // Maximum number of payments to return. Defaults to 50.
}

func (f PaymentQueryFilter) model() models.Payment {
	return models.Payment{
		TenantID: f.TenantID,
		Mode:     f.Mode,
	}
}
