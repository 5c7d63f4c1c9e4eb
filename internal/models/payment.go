package models

import (
	"errors"
	"fmt"

	"github.com/leasedesk/backend/internal/allocation"
	"github.com/leasedesk/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment is money received from a tenant, split across invoice lines.
type Payment struct {
	DefaultModel
	OrganizationID uint64  `gorm:"uniqueIndex:payment_number;uniqueIndex:payment_idempotency"`
	Number         string  `gorm:"uniqueIndex:payment_number"`
	IdempotencyKey *string `gorm:"uniqueIndex:payment_idempotency"`
	TenantID       uint64
	Tenant         Tenant
	Amount         decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	ReceivedOn     types.Date
	Mode           allocation.Mode
	ReferenceNo    string
	Note           string
	BankName       string
	ReceivedAt     string
	Allocations    []PaymentAllocation `gorm:"constraint:OnDelete:CASCADE"`
}

// PaymentAllocation is the part of a payment applied to one invoice line.
type PaymentAllocation struct {
	DefaultModel
	PaymentID     uint64          `gorm:"index"`
	InvoiceID     uint64          `gorm:"index"`
	InvoiceLineID uint64          `gorm:"index"`
	Amount        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

// BeforeCreate assigns the next receipt number, e.g. RCPT-2026-00007.
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.Number != "" {
		return nil
	}

	year := types.Today().Time().Year()
	if !p.ReceivedOn.IsZero() {
		year = p.ReceivedOn.Time().Year()
	}

	number, err := nextNumber(tx, "payments", p.OrganizationID, fmt.Sprintf("RCPT-%d-", year))
	if err != nil {
		return err
	}

	p.Number = number
	return nil
}

func (p *Payment) BeforeSave(_ *gorm.DB) error {
	trim(&p.ReferenceNo, &p.Note, &p.BankName)
	p.Amount = types.Round(p.Amount)

	if p.ReceivedOn.IsZero() {
		p.ReceivedOn = types.Today()
	}

	return nil
}

func (p *Payment) AfterSave(tx *gorm.DB) error {
	if !p.Mode.Valid() {
		return allocation.ErrModeInvalid
	}

	return ownedBy(tx, &Tenant{}, p.TenantID, p.OrganizationID)
}

// Meta returns the optional payment details.
func (p Payment) Meta() allocation.Meta {
	return allocation.Meta{
		BankName:   p.BankName,
		ReceivedAt: p.ReceivedAt,
	}
}

// Submission returns the payment in the shape it was submitted in.
func (p Payment) Submission() allocation.Submission {
	allocations := make([]allocation.Allocation, 0, len(p.Allocations))
	for _, a := range p.Allocations {
		allocations = append(allocations, allocation.Allocation{
			InvoiceID:     a.InvoiceID,
			InvoiceLineID: a.InvoiceLineID,
			Amount:        a.Amount,
		})
	}

	return allocation.NewSubmission(allocation.Payment{
		TenantID:    p.TenantID,
		Amount:      types.NewMoney(p.Amount),
		ReceivedOn:  p.ReceivedOn,
		Mode:        p.Mode,
		ReferenceNo: p.ReferenceNo,
		Note:        p.Note,
		Meta:        p.Meta(),
	}, allocations)
}

// allocatedPerLine sums earlier allocations for the given invoice lines.
func allocatedPerLine(tx *gorm.DB, lineIDs []uint64) (map[uint64]decimal.Decimal, error) {
	sums := make(map[uint64]decimal.Decimal, len(lineIDs))
	if len(lineIDs) == 0 {
		return sums, nil
	}

	var allocations []PaymentAllocation
	err := tx.Where("invoice_line_id IN ?", lineIDs).Find(&allocations).Error
	if err != nil {
		return nil, err
	}

	for _, a := range allocations {
		sums[a.InvoiceLineID] = sums[a.InvoiceLineID].Add(a.Amount)
	}

	return sums, nil
}

// allocatedPerInvoice sums all allocations for the given invoices.
func allocatedPerInvoice(tx *gorm.DB, invoiceIDs []uint64) (map[uint64]decimal.Decimal, error) {
	sums := make(map[uint64]decimal.Decimal, len(invoiceIDs))
	if len(invoiceIDs) == 0 {
		return sums, nil
	}

	var allocations []PaymentAllocation
	err := tx.Where("invoice_id IN ?", invoiceIDs).Find(&allocations).Error
	if err != nil {
		return nil, err
	}

	for _, a := range allocations {
		sums[a.InvoiceID] = sums[a.InvoiceID].Add(a.Amount)
	}

	return sums, nil
}

// outstanding returns the invoice lines with the amount that can still be
// allocated to them. Fully paid lines are omitted.
func outstanding(tx *gorm.DB, invoice Invoice) ([]allocation.Line, error) {
	ids := make([]uint64, 0, len(invoice.Lines))
	for _, l := range invoice.Lines {
		ids = append(ids, l.ID)
	}

	allocated, err := allocatedPerLine(tx, ids)
	if err != nil {
		return nil, err
	}

	lines := make([]allocation.Line, 0, len(invoice.Lines))
	for _, l := range invoice.Lines {
		balance := types.Round(l.Amount.Sub(allocated[l.ID]))
		if !balance.IsPositive() {
			continue
		}
		lines = append(lines, allocation.Line{ID: l.ID, Amount: balance})
	}

	return lines, nil
}

// AllocationInvoices loads the invoices in the given order for the allocation
// row builder. Line amounts are the outstanding balances.
func AllocationInvoices(db *gorm.DB, organizationID uint64, invoiceIDs []uint64) ([]allocation.Invoice, error) {
	invoices := make([]allocation.Invoice, 0, len(invoiceIDs))

	for _, id := range invoiceIDs {
		var invoice Invoice
		err := db.
			Preload("Lines", orderLines).
			Where("organization_id = ?", organizationID).
			First(&invoice, id).Error
		if err != nil {
			return nil, err
		}

		lines, err := outstanding(db, invoice)
		if err != nil {
			return nil, err
		}

		invoices = append(invoices, allocation.Invoice{
			ID:       invoice.ID,
			TenantID: invoice.TenantID,
			Payable:  invoice.Status.Payable(),
			Lines:    lines,
		})
	}

	return invoices, nil
}

// ValidatePayment checks a submission the same way RecordPayment does without
// storing anything and returns the allocations that would be recorded.
func ValidatePayment(db *gorm.DB, organizationID uint64, s allocation.Submission) ([]allocation.Allocation, error) {
	input := s.Payment

	_, err := input.Check()
	if err != nil {
		return nil, err
	}

	rows, err := submissionRows(db, organizationID, s)
	if err != nil {
		return nil, err
	}

	return allocation.Validate(input.Draft(), rows)
}

// RecordPayment persists a payment with its allocations and updates the status
// of every invoice it pays into.
//
// When the idempotency key matches an earlier payment of the organization,
// that payment is returned with replayed set to true and nothing is written.
func RecordPayment(db *gorm.DB, organizationID uint64, s allocation.Submission, idempotencyKey string) (payment Payment, replayed bool, err error) {
	input := s.Payment

	meta, err := input.Check()
	if err != nil {
		return Payment{}, false, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if idempotencyKey != "" {
			err := tx.
				Preload("Allocations").
				Where("organization_id = ? AND idempotency_key = ?", organizationID, idempotencyKey).
				First(&payment).Error
			if err == nil {
				replayed = true
				return nil
			}

			if !errors.Is(err, ErrResourceNotFound) {
				return err
			}
		}

		rows, err := submissionRows(tx, organizationID, s)
		if err != nil {
			return err
		}

		allocations, err := allocation.Validate(input.Draft(), rows)
		if err != nil {
			return err
		}

		payment = Payment{
			OrganizationID: organizationID,
			TenantID:       input.TenantID,
			Amount:         input.Amount.Decimal,
			ReceivedOn:     input.ReceivedOn,
			Mode:           input.Mode,
			ReferenceNo:    input.ReferenceNo,
			Note:           input.Note,
			BankName:       meta.BankName,
			ReceivedAt:     meta.ReceivedAt,
		}

		if idempotencyKey != "" {
			payment.IdempotencyKey = &idempotencyKey
		}

		for _, a := range allocations {
			payment.Allocations = append(payment.Allocations, PaymentAllocation{
				InvoiceID:     a.InvoiceID,
				InvoiceLineID: a.InvoiceLineID,
				Amount:        a.Amount,
			})
		}

		err = tx.Create(&payment).Error
		if err != nil {
			return err
		}

		var invoiceIDs []uint64
		seen := make(map[uint64]bool)
		for _, a := range allocations {
			if !seen[a.InvoiceID] {
				seen[a.InvoiceID] = true
				invoiceIDs = append(invoiceIDs, a.InvoiceID)
			}
		}

		return updatePaymentStatus(tx, invoiceIDs)
	})

	return payment, replayed, err
}

// submissionRows builds the rows to validate a submission against. The line
// amount of each row is the outstanding balance of the line. Lines of other
// tenants are kept so that validation reports them.
func submissionRows(tx *gorm.DB, organizationID uint64, s allocation.Submission) ([]allocation.Row, error) {
	lineIDs := s.LineIDs()

	seen := make(map[uint64]bool, len(lineIDs))
	for _, id := range lineIDs {
		if seen[id] {
			return nil, ErrPaymentLineTwice
		}
		seen[id] = true
	}

	var lines []InvoiceLine
	if len(lineIDs) > 0 {
		err := tx.
			Joins("JOIN invoices ON invoices.id = invoice_lines.invoice_id").
			Where("invoices.organization_id = ?", organizationID).
			Where("invoices.status IN ?", []InvoiceStatus{InvoiceIssued, InvoicePartiallyPaid, InvoicePaid}).
			Where("invoice_lines.id IN ?", lineIDs).
			Find(&lines).Error
		if err != nil {
			return nil, err
		}
	}

	if len(lines) != len(lineIDs) {
		return nil, ErrPaymentLineUnknown
	}

	byID := make(map[uint64]InvoiceLine, len(lines))
	invoiceIDs := make([]uint64, 0, len(lines))
	for _, l := range lines {
		byID[l.ID] = l
		invoiceIDs = append(invoiceIDs, l.InvoiceID)
	}

	var invoices []Invoice
	if len(invoiceIDs) > 0 {
		err := tx.Select("id", "tenant_id").Where("id IN ?", invoiceIDs).Find(&invoices).Error
		if err != nil {
			return nil, err
		}
	}

	tenants := make(map[uint64]uint64, len(invoices))
	for _, i := range invoices {
		tenants[i.ID] = i.TenantID
	}

	allocated, err := allocatedPerLine(tx, lineIDs)
	if err != nil {
		return nil, err
	}

	rows := make([]allocation.Row, 0, len(s.Allocations))
	for _, a := range s.Allocations {
		line := byID[a.InvoiceLineID]
		rows = append(rows, allocation.Row{
			InvoiceID:       line.InvoiceID,
			InvoiceLineID:   line.ID,
			TenantID:        tenants[line.InvoiceID],
			LineAmount:      types.Round(line.Amount.Sub(allocated[line.ID])),
			AllocatedAmount: a.AllocatedAmount.Decimal,
		})
	}

	return rows, nil
}

// updatePaymentStatus sets invoices to PAID when all of their lines are fully
// allocated and to PARTIALLY_PAID when anything is allocated.
func updatePaymentStatus(tx *gorm.DB, invoiceIDs []uint64) error {
	allocated, err := allocatedPerInvoice(tx, invoiceIDs)
	if err != nil {
		return err
	}

	for _, id := range invoiceIDs {
		var invoice Invoice
		err := tx.Preload("Lines").First(&invoice, id).Error
		if err != nil {
			return err
		}

		status := invoice.Status
		switch paid := types.Round(allocated[id]); {
		case paid.GreaterThanOrEqual(types.Round(invoice.Total())):
			status = InvoicePaid
		case paid.IsPositive():
			status = InvoicePartiallyPaid
		}

		if status == invoice.Status {
			continue
		}

		err = tx.Model(&invoice).Omit("Lines").Update("status", status).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// PaymentSummary is the paid amount and balance of an invoice.
type PaymentSummary struct {
	Paid    decimal.Decimal
	Balance decimal.Decimal
}

// InvoiceSummaries returns paid amount and balance for each invoice.
func InvoiceSummaries(db *gorm.DB, invoices []Invoice) (map[uint64]PaymentSummary, error) {
	ids := make([]uint64, 0, len(invoices))
	for _, i := range invoices {
		ids = append(ids, i.ID)
	}

	allocated, err := allocatedPerInvoice(db, ids)
	if err != nil {
		return nil, err
	}

	summaries := make(map[uint64]PaymentSummary, len(invoices))
	for _, i := range invoices {
		paid := types.Round(allocated[i.ID])
		summaries[i.ID] = PaymentSummary{
			Paid:    paid,
			Balance: types.Round(i.Total()).Sub(paid),
		}
	}

	return summaries, nil
}

func orderLines(db *gorm.DB) *gorm.DB {
	return db.Order("invoice_lines.position ASC, invoice_lines.id ASC")
}
