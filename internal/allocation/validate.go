package allocation

import (
	"github.com/leasedesk/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Draft is what Validate needs from a payment being recorded.
type Draft struct {
	TenantID uint64
	Amount   decimal.Decimal
}

// Allocation is a validated, non-zero allocation of a payment to one invoice line.
// Amount is quantized to two places.
type Allocation struct {
	InvoiceID     uint64
	InvoiceLineID uint64
	Amount        decimal.Decimal
}

// CheckDraft runs the checks of Validate that do not need any rows.
func CheckDraft(draft Draft) error {
	if draft.TenantID == 0 {
		return &ValidationError{Kind: KindMissingTenant}
	}

	if !types.Round(draft.Amount).IsPositive() {
		return &ValidationError{Kind: KindNonPositiveAmount}
	}

	return nil
}

// Validate checks a payment and its allocation rows before submission.
//
// Checks run in this order: tenant present, positive amount, every row of the
// payment's tenant and within [0, line amount], at least one positive row,
// allocated total equal to the payment amount. Rows and the payment amount are
// compared quantized to two places. The allocated total is the sum of the
// positive rows at full precision, quantized once.
//
// Rows with nothing allocated are dropped from the result. The amounts of the
// remaining rows are quantized so that they add up to the payment amount.
func Validate(draft Draft, rows []Row) ([]Allocation, error) {
	if err := CheckDraft(draft); err != nil {
		return nil, err
	}

	for _, row := range rows {
		if row.TenantID != 0 && row.TenantID != draft.TenantID {
			return nil, &ValidationError{Kind: KindMultipleTenants, InvoiceID: row.InvoiceID, InvoiceLineID: row.InvoiceLineID}
		}

		allocated := types.Round(row.AllocatedAmount)

		if allocated.IsNegative() {
			return nil, &ValidationError{Kind: KindNegativeAllocation, InvoiceLineID: row.InvoiceLineID}
		}

		if allocated.GreaterThan(types.Round(row.LineAmount)) {
			return nil, &ValidationError{Kind: KindLineCeilingExceeded, InvoiceLineID: row.InvoiceLineID}
		}
	}

	var positive []Row
	sum := decimal.Zero
	for _, row := range rows {
		if row.AllocatedAmount.IsPositive() {
			positive = append(positive, row)
			sum = sum.Add(row.AllocatedAmount)
		}
	}

	if len(positive) == 0 {
		return nil, &ValidationError{Kind: KindEmptyAllocation}
	}

	target := types.Round(draft.Amount)
	if total := types.Round(sum); !total.Equal(target) {
		return nil, &ValidationError{Kind: KindSumMismatch, Sum: total, Target: target}
	}

	allocations, ok := quantize(positive, target)
	if !ok {
		return nil, &ValidationError{Kind: KindSumMismatch, Sum: types.Round(sum), Target: target}
	}

	return allocations, nil
}

var (
	hundred = decimal.NewFromInt(100)
	cent    = decimal.NewFromInt(1)
)

// quantize rounds the allocated amounts of rows down to whole cents and hands
// the cents that adds up to on top of that out to the rows with the largest
// remainders, in row order on ties. No row gets more than its line amount.
// Rows that end up with nothing are dropped.
func quantize(rows []Row, total decimal.Decimal) ([]Allocation, bool) {
	cents := make([]decimal.Decimal, len(rows))
	remainders := make([]decimal.Decimal, len(rows))
	order := make([]int, len(rows))

	left := total.Mul(hundred)
	for i, row := range rows {
		exact := row.AllocatedAmount.Mul(hundred)
		cents[i] = exact.Floor()
		remainders[i] = exact.Sub(cents[i])
		left = left.Sub(cents[i])
		order[i] = i
	}

	slices.SortStableFunc(order, func(a, b int) int {
		return remainders[b].Cmp(remainders[a])
	})

	for _, i := range order {
		if !left.IsPositive() || remainders[i].IsZero() {
			break
		}

		if cents[i].Add(cent).GreaterThan(types.Round(rows[i].LineAmount).Mul(hundred)) {
			continue
		}

		cents[i] = cents[i].Add(cent)
		left = left.Sub(cent)
	}

	if !left.IsZero() {
		return nil, false
	}

	var allocations []Allocation
	for i, row := range rows {
		if !cents[i].IsPositive() {
			continue
		}

		allocations = append(allocations, Allocation{
			InvoiceID:     row.InvoiceID,
			InvoiceLineID: row.InvoiceLineID,
			Amount:        cents[i].Div(hundred),
		})
	}

	return allocations, true
}
