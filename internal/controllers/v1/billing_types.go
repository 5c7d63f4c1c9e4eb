package v1

import (
	"github.com/leasedesk/backend/internal/billing"
	"github.com/leasedesk/backend/internal/types"
)

// BillingRun selects the month a billing run is for.
type BillingRun struct {
	Period string `json:"period" example:"2026-10"` // Month to bill, YYYY-MM
}

type BillingDraftLine struct {
	BillingRuleID uint64      `json:"billing_rule_id" example:"4"`                                  // ID of the rule that generated the line
	ChargeType    string      `json:"charge_type" example:"CAM"`                                    // Charge type of the rule
	Description   string      `json:"description" example:"CAM T1-0402 (2026-10-01 to 2026-10-31)"` // Description of the line
	Amount        types.Money `json:"amount" swaggertype:"string" example:"4500.00"`                // Amount of the line
}

// BillingDraft is the invoice a billing run generates for a lease.
type BillingDraft struct {
	LeaseID     uint64             `json:"lease_id" example:"9"`                                   // ID of the lease
	TenantID    uint64             `json:"tenant_id" example:"4"`                                  // ID of the tenant
	UnitID      uint64             `json:"unit_id" example:"17"`                                   // ID of the unit
	PeriodStart types.Date         `json:"period_start" swaggertype:"string" example:"2026-10-01"` // First day of the period
	PeriodEnd   types.Date         `json:"period_end" swaggertype:"string" example:"2026-10-31"`   // Last day of the period
	Lines       []BillingDraftLine `json:"lines"`                                                  // Generated lines
	Total       types.Money        `json:"total" swaggertype:"string" example:"4500.00"`           // Sum of all lines
}

func newBillingDraft(d billing.Draft) BillingDraft {
	lines := make([]BillingDraftLine, 0, len(d.Lines))
	for _, l := range d.Lines {
		lines = append(lines, BillingDraftLine{
			BillingRuleID: l.RuleID,
			ChargeType:    l.ChargeType,
			Description:   l.Description,
			Amount:        types.NewMoney(l.Amount),
		})
	}

	return BillingDraft{
		LeaseID:     d.LeaseID,
		TenantID:    d.TenantID,
		UnitID:      d.UnitID,
		PeriodStart: d.Period.Start,
		PeriodEnd:   d.Period.End,
		Lines:       lines,
		Total:       types.NewMoney(d.Total()),
	}
}

type BillingPreview struct {
	PeriodStart types.Date     `json:"period_start" swaggertype:"string" example:"2026-10-01"` // First day of the period
	PeriodEnd   types.Date     `json:"period_end" swaggertype:"string" example:"2026-10-31"`   // Last day of the period
	Drafts      []BillingDraft `json:"drafts"`                                                 // One draft per billed lease
	Total       types.Money    `json:"total" swaggertype:"string" example:"13500.00"`          // Sum of all drafts
}

type BillingPreviewResponse struct {
	Error *string         `json:"error" example:"the period must be a month in YYYY-MM format"` // The error, if any occurred
	Data  *BillingPreview `json:"data"`                                                         // The drafts of the billing run
}

type BillingCommit struct {
	Created []Invoice `json:"created"`             // Draft invoices created by the run
	Skipped int       `json:"skipped" example:"2"` // Leases skipped because they already have an invoice for the period
}

type BillingCommitResponse struct {
	Error *string        `json:"error" example:"the period must be a month in YYYY-MM format"` // The error, if any occurred
	Data  *BillingCommit `json:"data"`                                                         // The result of the billing run
}
