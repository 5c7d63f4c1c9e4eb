// Package allocation distributes a tenant payment across invoice lines.
//
// BuildRows turns a selection of invoices into one row per invoice line,
// AutoAllocate fills those rows greedily from a target amount and Validate
// checks the result before it is submitted.
package allocation

import (
	"github.com/leasedesk/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Invoice is the part of an invoice that allocation needs.
type Invoice struct {
	ID       uint64
	TenantID uint64
	Payable  bool
	Lines    []Line
}

// Line is a chargeable invoice line. Amount is the most that can be allocated to it.
type Line struct {
	ID     uint64
	Amount decimal.Decimal
}

// Row is the editable allocation state of one invoice line.
type Row struct {
	InvoiceID       uint64
	InvoiceLineID   uint64
	TenantID        uint64
	LineAmount      decimal.Decimal
	AllocatedAmount decimal.Decimal
}

// BuildRows flattens the selected invoices into allocation rows.
//
// Rows keep the order of the invoices and of the lines within each invoice.
// Every row starts fully allocated.
func BuildRows(invoices []Invoice) ([]Row, error) {
	if len(invoices) == 0 {
		return nil, &ValidationError{Kind: KindNoInvoices}
	}

	tenant := invoices[0].TenantID
	for _, invoice := range invoices[1:] {
		if invoice.TenantID != tenant {
			return nil, &ValidationError{Kind: KindMultipleTenants}
		}
	}

	var rows []Row
	for _, invoice := range invoices {
		if !invoice.Payable {
			return nil, &ValidationError{Kind: KindNotPayable, InvoiceID: invoice.ID}
		}

		for _, line := range invoice.Lines {
			amount := types.Round(line.Amount)
			rows = append(rows, Row{
				InvoiceID:       invoice.ID,
				InvoiceLineID:   line.ID,
				TenantID:        invoice.TenantID,
				LineAmount:      amount,
				AllocatedAmount: amount,
			})
		}
	}

	return rows, nil
}

// Total returns the sum of all line amounts.
func Total(rows []Row) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range rows {
		sum = sum.Add(r.LineAmount)
	}
	return sum
}

// Allocated returns the sum of all allocated amounts.
func Allocated(rows []Row) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range rows {
		sum = sum.Add(r.AllocatedAmount)
	}
	return sum
}

// SetAllocated returns a copy of rows with the allocated amount of one line replaced.
// Manual edits are not clamped here, Validate rejects out of range values.
func SetAllocated(rows []Row, lineID uint64, amount decimal.Decimal) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)

	for i := range out {
		if out[i].InvoiceLineID == lineID {
			out[i].AllocatedAmount = amount
		}
	}

	return out
}
