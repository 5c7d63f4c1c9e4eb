package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leasedesk/backend/internal/billing"
	"github.com/leasedesk/backend/internal/scope"
	"github.com/leasedesk/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type InvoiceStatus string

const (
	InvoiceDraft         InvoiceStatus = "DRAFT"
	InvoiceIssued        InvoiceStatus = "ISSUED"
	InvoicePartiallyPaid InvoiceStatus = "PARTIALLY_PAID"
	InvoicePaid          InvoiceStatus = "PAID"
	InvoiceCancelled     InvoiceStatus = "CANCELLED"
)

// InvoiceStatuses lists all invoice statuses.
var InvoiceStatuses = []InvoiceStatus{InvoiceDraft, InvoiceIssued, InvoicePartiallyPaid, InvoicePaid, InvoiceCancelled}

// Payable reports whether payments can be allocated to invoices in this status.
func (s InvoiceStatus) Payable() bool {
	return s == InvoiceIssued || s == InvoicePartiallyPaid || s == InvoicePaid
}

type InvoiceKind string

const (
	InvoiceManual    InvoiceKind = "MANUAL"
	InvoiceGenerated InvoiceKind = "GENERATED"
)

// Invoice is a bill to a tenant, consisting of ordered lines.
type Invoice struct {
	DefaultModel
	OrganizationID uint64 `gorm:"uniqueIndex:invoice_number"`
	Number         string `gorm:"uniqueIndex:invoice_number"`
	Status         InvoiceStatus
	Kind           InvoiceKind
	TenantID       uint64
	Tenant         Tenant
	LeaseID        *uint64
	Lease          *Lease
	PeriodStart    types.Date
	PeriodEnd      types.Date
	DueDate        types.Date
	IssuedOn       types.Date
	Note           string
	Lines          []InvoiceLine `gorm:"constraint:OnDelete:CASCADE"`
}

// InvoiceLine is a single charge on an invoice.
type InvoiceLine struct {
	DefaultModel
	InvoiceID     uint64 `gorm:"index"`
	Position      int
	ChargeType    string
	Description   string
	Amount        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	BillingRuleID *uint64
}

// Total returns the sum of all line amounts.
func (i Invoice) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range i.Lines {
		total = total.Add(l.Amount)
	}
	return total
}

// BeforeCreate assigns the next invoice number of the organization for the
// year of the period start, e.g. INV-2026-00042.
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.Number != "" {
		return nil
	}

	year := types.Today().Time().Year()
	if !i.PeriodStart.IsZero() {
		year = i.PeriodStart.Time().Year()
	}

	number, err := nextNumber(tx, "invoices", i.OrganizationID, fmt.Sprintf("INV-%d-", year))
	if err != nil {
		return err
	}

	i.Number = number
	return nil
}

// nextNumber returns the prefix followed by the next five digit sequence
// number for the table and organization.
func nextNumber(tx *gorm.DB, table string, organizationID uint64, prefix string) (string, error) {
	var numbers []string
	err := tx.
		Table(table).
		Where("organization_id = ? AND number LIKE ?", organizationID, prefix+"%").
		Order("number DESC").
		Limit(1).
		Pluck("number", &numbers).Error
	if err != nil {
		return "", err
	}

	sequence := 1
	if len(numbers) > 0 {
		last, err := strconv.Atoi(strings.TrimPrefix(numbers[0], prefix))
		if err == nil {
			sequence = last + 1
		}
	}

	return fmt.Sprintf("%s%05d", prefix, sequence), nil
}

func (i *Invoice) BeforeSave(_ *gorm.DB) error {
	trim(&i.Note)

	if i.Status == "" {
		i.Status = InvoiceDraft
	}

	if i.Kind == "" {
		i.Kind = InvoiceManual
	}

	return nil
}

func (i *Invoice) AfterSave(tx *gorm.DB) error {
	if !slices.Contains(InvoiceStatuses, i.Status) {
		return ErrInvoiceStatusInvalid
	}

	if !slices.Contains([]InvoiceKind{InvoiceManual, InvoiceGenerated}, i.Kind) {
		return ErrInvoiceKindInvalid
	}

	if !i.PeriodStart.IsZero() && !i.PeriodEnd.IsZero() && i.PeriodEnd.Before(i.PeriodStart) {
		return ErrInvoicePeriod
	}

	if i.DueDate.IsZero() {
		return ErrInvoiceDueDateMissing
	}

	err := ownedBy(tx, &Tenant{}, i.TenantID, i.OrganizationID)
	if err != nil {
		return err
	}

	if i.LeaseID != nil {
		var lease Lease
		err = ownedBy(tx, &lease, *i.LeaseID, i.OrganizationID)
		if err != nil {
			return err
		}

		if lease.TenantID != i.TenantID {
			return ErrInvoiceLeaseTenant
		}
	}

	return nil
}

// BeforeSave rounds the amount to two decimal places.
func (l *InvoiceLine) BeforeSave(_ *gorm.DB) error {
	trim(&l.ChargeType, &l.Description)
	l.ChargeType = strings.ToUpper(l.ChargeType)
	l.Amount = types.Round(l.Amount)

	return nil
}

// AfterSave verifies the amount and that the invoice is still a draft.
func (l *InvoiceLine) AfterSave(tx *gorm.DB) error {
	if !types.Round(l.Amount).IsPositive() {
		return ErrInvoiceLineAmount
	}

	return l.editable(tx)
}

func (l *InvoiceLine) BeforeDelete(tx *gorm.DB) error {
	return l.editable(tx)
}

func (l *InvoiceLine) editable(tx *gorm.DB) error {
	var invoice Invoice
	err := tx.First(&invoice, l.InvoiceID).Error
	if err != nil {
		return err
	}

	if invoice.Status != InvoiceDraft {
		return ErrInvoiceNotEditable
	}

	return nil
}

// InvoicesInScope returns a query on the invoices of the scope. Tower scopes
// only include invoices for leases of units in the tower.
func InvoicesInScope(db *gorm.DB, s scope.Scope) *gorm.DB {
	q := db.Model(&Invoice{}).Scopes(s.Owned("invoices"))

	if s.Type == scope.TypeTower {
		q = q.
			Joins("JOIN leases ON leases.id = invoices.lease_id").
			Joins("JOIN units ON units.id = leases.unit_id").
			Scopes(s.InTower("units.tower_id"))
	}

	return q
}

// Issue moves a draft invoice with at least one line to ISSUED.
func (i *Invoice) Issue(tx *gorm.DB, issuedOn types.Date) error {
	if i.Status != InvoiceDraft {
		return ErrInvoiceNotDraft
	}

	var lines int64
	err := tx.Model(&InvoiceLine{}).Where("invoice_id = ?", i.ID).Count(&lines).Error
	if err != nil {
		return err
	}

	if lines == 0 {
		return ErrInvoiceEmpty
	}

	if issuedOn.IsZero() {
		issuedOn = types.Today()
	}

	return tx.Model(i).Omit("Lines").Updates(map[string]any{
		"status":    InvoiceIssued,
		"issued_on": issuedOn,
	}).Error
}

// IssueInvoices issues all invoices or none of them.
func IssueInvoices(db *gorm.DB, s scope.Scope, ids []uint64, issuedOn types.Date) ([]Invoice, error) {
	invoices := make([]Invoice, 0, len(ids))

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, id := range ids {
			var invoice Invoice
			err := InvoicesInScope(tx, s).First(&invoice, "invoices.id = ?", id).Error
			if err != nil {
				return err
			}

			err = invoice.Issue(tx, issuedOn)
			if err != nil {
				return fmt.Errorf("invoice %s: %w", invoice.Number, err)
			}

			invoices = append(invoices, invoice)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return invoices, nil
}

// Cancel cancels an invoice that has no payments allocated to it.
func (i *Invoice) Cancel(tx *gorm.DB) error {
	if i.Status == InvoiceCancelled {
		return ErrInvoiceAlreadyCanceled
	}

	var allocations int64
	err := tx.Model(&PaymentAllocation{}).Where("invoice_id = ?", i.ID).Count(&allocations).Error
	if err != nil {
		return err
	}

	if allocations > 0 {
		return ErrInvoiceNotCancellable
	}

	return tx.Model(i).Omit("Lines").Update("status", InvoiceCancelled).Error
}

// CommitDrafts stores generated drafts as DRAFT invoices due dueDays after
// the period start. Leases that already have a generated invoice for the
// period that is not cancelled are skipped.
func CommitDrafts(db *gorm.DB, organizationID uint64, drafts []billing.Draft, dueDays int) (created []Invoice, skipped int, err error) {
	err = db.Transaction(func(tx *gorm.DB) error {
		for _, d := range drafts {
			var existing int64
			err := tx.
				Model(&Invoice{}).
				Where("organization_id = ? AND lease_id = ? AND kind = ?", organizationID, d.LeaseID, InvoiceGenerated).
				Where("period_start = ? AND period_end = ?", d.Period.Start, d.Period.End).
				Where("status <> ?", InvoiceCancelled).
				Count(&existing).Error
			if err != nil {
				return err
			}

			if existing > 0 {
				skipped++
				continue
			}

			leaseID := d.LeaseID
			invoice := Invoice{
				OrganizationID: organizationID,
				Status:         InvoiceDraft,
				Kind:           InvoiceGenerated,
				TenantID:       d.TenantID,
				LeaseID:        &leaseID,
				PeriodStart:    d.Period.Start,
				PeriodEnd:      d.Period.End,
				DueDate:        d.Period.Start.AddDays(dueDays),
			}

			for position, l := range d.Lines {
				line := InvoiceLine{
					Position:    position,
					ChargeType:  l.ChargeType,
					Description: l.Description,
					Amount:      l.Amount,
				}

				if l.RuleID != 0 {
					ruleID := l.RuleID
					line.BillingRuleID = &ruleID
				}

				invoice.Lines = append(invoice.Lines, line)
			}

			err = tx.Create(&invoice).Error
			if err != nil {
				return err
			}

			created = append(created, invoice)
		}

		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return created, skipped, nil
}
