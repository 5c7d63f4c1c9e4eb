// Package ageing groups outstanding receivables by how long they are overdue.
package ageing

import (
	"errors"
	"fmt"
	"sort"

	"github.com/leasedesk/backend/internal/types"
	"github.com/shopspring/decimal"
)

// CurrentLabel is the label of receivables that are not yet overdue.
const CurrentLabel = "Current"

var (
	ErrNoBuckets        = errors.New("at least one ageing bucket is required")
	ErrBucketStart      = errors.New("the first ageing bucket must start at 1 day overdue")
	ErrBucketGap        = errors.New("ageing buckets must follow each other without gaps or overlaps")
	ErrBucketOpenEnd    = errors.New("only the last ageing bucket can be open ended, and it must be")
	ErrBucketLabelEmpty = errors.New("ageing buckets need a label")
)

// Bucket is a range of days overdue, inclusive on both ends. A nil ToDays is open ended.
type Bucket struct {
	Label    string `json:"label"`
	FromDays int    `json:"from_days"`
	ToDays   *int   `json:"to_days"`
}

func days(n int) *int {
	return &n
}

// DefaultBuckets are used when an organization has not configured any.
func DefaultBuckets() []Bucket {
	return []Bucket{
		{Label: "1-30", FromDays: 1, ToDays: days(30)},
		{Label: "31-60", FromDays: 31, ToDays: days(60)},
		{Label: "61-90", FromDays: 61, ToDays: days(90)},
		{Label: "90+", FromDays: 91},
	}
}

// Validate checks that the buckets cover every overdue day exactly once.
func Validate(buckets []Bucket) error {
	if len(buckets) == 0 {
		return ErrNoBuckets
	}

	next := 1
	for i, b := range buckets {
		if b.Label == "" {
			return ErrBucketLabelEmpty
		}

		if i == 0 && b.FromDays != 1 {
			return ErrBucketStart
		}

		if b.FromDays != next {
			return fmt.Errorf("%w: %q starts at %d, expected %d", ErrBucketGap, b.Label, b.FromDays, next)
		}

		last := i == len(buckets)-1
		if last != (b.ToDays == nil) {
			return ErrBucketOpenEnd
		}

		if b.ToDays != nil {
			if *b.ToDays < b.FromDays {
				return fmt.Errorf("%w: %q ends before it starts", ErrBucketGap, b.Label)
			}
			next = *b.ToDays + 1
		}
	}

	return nil
}

// index returns the position of the bucket for a number of days overdue.
// Receivables that are not overdue return -1.
func index(buckets []Bucket, overdue int) int {
	if overdue <= 0 {
		return -1
	}

	for i, b := range buckets {
		if overdue >= b.FromDays && (b.ToDays == nil || overdue <= *b.ToDays) {
			return i
		}
	}

	return len(buckets) - 1
}

// Item is an outstanding receivable.
type Item struct {
	InvoiceID   uint64
	TenantID    uint64
	DueDate     types.Date
	Outstanding decimal.Decimal
}

// Row holds the amounts of one tenant. Amounts[0] is the current amount,
// Amounts[i+1] the amount in bucket i.
type Row struct {
	TenantID uint64
	Amounts  []decimal.Decimal
	Total    decimal.Decimal
}

// Report is an ageing report.
type Report struct {
	AsOf    types.Date
	Labels  []string
	Rows    []Row
	Totals  []decimal.Decimal
	Total   decimal.Decimal
	Entries int
}

// Compute assigns every item with a positive outstanding amount to the
// current column or a bucket, per tenant. Rows are sorted by tenant ID.
func Compute(asOf types.Date, items []Item, buckets []Bucket) Report {
	labels := []string{CurrentLabel}
	for _, b := range buckets {
		labels = append(labels, b.Label)
	}

	report := Report{
		AsOf:   asOf,
		Labels: labels,
		Totals: zeros(len(labels)),
		Total:  decimal.Zero,
	}

	rows := map[uint64]*Row{}
	for _, item := range items {
		if !item.Outstanding.IsPositive() {
			continue
		}

		row, ok := rows[item.TenantID]
		if !ok {
			row = &Row{TenantID: item.TenantID, Amounts: zeros(len(labels)), Total: decimal.Zero}
			rows[item.TenantID] = row
		}

		column := index(buckets, item.DueDate.DaysUntil(asOf)) + 1

		row.Amounts[column] = row.Amounts[column].Add(item.Outstanding)
		row.Total = row.Total.Add(item.Outstanding)
		report.Totals[column] = report.Totals[column].Add(item.Outstanding)
		report.Total = report.Total.Add(item.Outstanding)
		report.Entries++
	}

	for _, row := range rows {
		report.Rows = append(report.Rows, *row)
	}

	sort.Slice(report.Rows, func(i, j int) bool {
		return report.Rows[i].TenantID < report.Rows[j].TenantID
	})

	return report
}

func zeros(n int) []decimal.Decimal {
	out := make([]decimal.Decimal, n)
	for i := range out {
		out[i] = decimal.Zero
	}
	return out
}
