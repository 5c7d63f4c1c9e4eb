package models

import (
	"github.com/leasedesk/backend/internal/ageing"
	"github.com/leasedesk/backend/internal/scope"
	"github.com/leasedesk/backend/internal/types"
	"gorm.io/gorm"
)

// AgeingBucket is a configured range of days overdue for ageing reports.
type AgeingBucket struct {
	DefaultModel
	OrganizationID uint64 `gorm:"index"`
	Position       int
	Label          string
	FromDays       int
	ToDays         *int
}

func (b *AgeingBucket) BeforeSave(_ *gorm.DB) error {
	trim(&b.Label)
	return nil
}

func (b *AgeingBucket) AfterSave(tx *gorm.DB) error {
	return organizationExists(tx, b.OrganizationID)
}

// Bucket returns the bucket for ageing reports.
func (b AgeingBucket) Bucket() ageing.Bucket {
	return ageing.Bucket{
		Label:    b.Label,
		FromDays: b.FromDays,
		ToDays:   b.ToDays,
	}
}

// AgeingBuckets returns the buckets of the organization, or the default
// buckets when none are configured.
func AgeingBuckets(db *gorm.DB, organizationID uint64) ([]ageing.Bucket, error) {
	var configured []AgeingBucket
	err := db.
		Where("organization_id = ?", organizationID).
		Order("position ASC, id ASC").
		Find(&configured).Error
	if err != nil {
		return nil, err
	}

	if len(configured) == 0 {
		return ageing.DefaultBuckets(), nil
	}

	buckets := make([]ageing.Bucket, 0, len(configured))
	for _, b := range configured {
		buckets = append(buckets, b.Bucket())
	}

	return buckets, nil
}

// ReplaceAgeingBuckets validates the buckets and replaces the configured
// buckets of the organization with them.
func ReplaceAgeingBuckets(db *gorm.DB, organizationID uint64, buckets []ageing.Bucket) error {
	for i := range buckets {
		trim(&buckets[i].Label)
	}

	err := ageing.Validate(buckets)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("organization_id = ?", organizationID).Delete(&AgeingBucket{}).Error
		if err != nil {
			return err
		}

		for i, b := range buckets {
			err = tx.Create(&AgeingBucket{
				OrganizationID: organizationID,
				Position:       i,
				Label:          b.Label,
				FromDays:       b.FromDays,
				ToDays:         b.ToDays,
			}).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// AgeingItems returns the outstanding receivables in scope: issued and
// partially paid invoices with a positive balance.
//
// Tower scopes only include invoices for leases of units in the tower.
func AgeingItems(db *gorm.DB, s scope.Scope) ([]ageing.Item, error) {
	q := db.
		Preload("Lines").
		Scopes(s.Owned("invoices")).
		Where("invoices.status IN ?", []InvoiceStatus{InvoiceIssued, InvoicePartiallyPaid})

	if s.Type == scope.TypeTower {
		q = q.
			Joins("JOIN leases ON leases.id = invoices.lease_id").
			Joins("JOIN units ON units.id = leases.unit_id").
			Scopes(s.InTower("units.tower_id"))
	}

	var invoices []Invoice
	err := q.Order("invoices.id ASC").Find(&invoices).Error
	if err != nil {
		return nil, err
	}

	summaries, err := InvoiceSummaries(db, invoices)
	if err != nil {
		return nil, err
	}

	items := make([]ageing.Item, 0, len(invoices))
	for _, i := range invoices {
		items = append(items, ageing.Item{
			InvoiceID:   i.ID,
			TenantID:    i.TenantID,
			DueDate:     i.DueDate,
			Outstanding: summaries[i.ID].Balance,
		})
	}

	return items, nil
}

// AgeingReport computes the ageing report of the scope as of a date.
func AgeingReport(db *gorm.DB, s scope.Scope, asOf types.Date) (ageing.Report, error) {
	buckets, err := AgeingBuckets(db, s.OrganizationID)
	if err != nil {
		return ageing.Report{}, err
	}

	items, err := AgeingItems(db, s)
	if err != nil {
		return ageing.Report{}, err
	}

	return ageing.Compute(asOf, items, buckets), nil
}
