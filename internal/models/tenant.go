package models

import (
	"sort"
	"strings"

	"github.com/leasedesk/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Tenant is a business that leases units.
type Tenant struct {
	DefaultModel
	OrganizationID uint64 `gorm:"index"`
	Name           string
	Email          string
	Phone          string
	GSTIN          string `gorm:"column:gstin"`
	CustomFields   types.Values
}

func (t *Tenant) BeforeSave(_ *gorm.DB) error {
	trim(&t.Name, &t.Email, &t.Phone, &t.GSTIN)
	t.GSTIN = strings.ToUpper(t.GSTIN)

	return nil
}

func (t *Tenant) AfterSave(tx *gorm.DB) error {
	if t.Name == "" {
		return ErrNameEmpty
	}

	return organizationExists(tx, t.OrganizationID)
}

// ActivityKind distinguishes entries of the tenant activity.
type ActivityKind string

const (
	ActivityInvoice ActivityKind = "INVOICE"
	ActivityPayment ActivityKind = "PAYMENT"
)

// ActivityEntry is an invoice or payment of a tenant. Balance is the running
// balance after the entry, positive when the tenant owes money.
type ActivityEntry struct {
	Kind    ActivityKind
	ID      uint64
	Number  string
	Date    types.Date
	Debit   decimal.Decimal
	Credit  decimal.Decimal
	Balance decimal.Decimal
}

// TenantActivity returns the issued invoices and the payments of a tenant in
// date order. Invoices come before payments on the same day.
func TenantActivity(db *gorm.DB, organizationID, tenantID uint64) ([]ActivityEntry, error) {
	err := ownedBy(db, &Tenant{}, tenantID, organizationID)
	if err != nil {
		return nil, err
	}

	var invoices []Invoice
	err = db.
		Preload("Lines").
		Where("organization_id = ? AND tenant_id = ?", organizationID, tenantID).
		Where("status NOT IN ?", []InvoiceStatus{InvoiceDraft, InvoiceCancelled}).
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}

	var payments []Payment
	err = db.
		Where("organization_id = ? AND tenant_id = ?", organizationID, tenantID).
		Find(&payments).Error
	if err != nil {
		return nil, err
	}

	entries := make([]ActivityEntry, 0, len(invoices)+len(payments))
	for _, i := range invoices {
		entries = append(entries, ActivityEntry{
			Kind:   ActivityInvoice,
			ID:     i.ID,
			Number: i.Number,
			Date:   i.IssuedOn,
			Debit:  types.Round(i.Total()),
			Credit: decimal.Zero,
		})
	}

	for _, p := range payments {
		entries = append(entries, ActivityEntry{
			Kind:   ActivityPayment,
			ID:     p.ID,
			Number: p.Number,
			Date:   p.ReceivedOn,
			Debit:  decimal.Zero,
			Credit: types.Round(p.Amount),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.Kind != b.Kind {
			return a.Kind == ActivityInvoice
		}
		return a.ID < b.ID
	})

	balance := decimal.Zero
	for i := range entries {
		balance = balance.Add(entries[i].Debit).Sub(entries[i].Credit)
		entries[i].Balance = balance
	}

	return entries, nil
}
