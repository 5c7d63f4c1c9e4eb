package allocation

import (
	"github.com/leasedesk/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Result is the outcome of AutoAllocate.
type Result struct {
	Rows      []Row
	Allocated decimal.Decimal
	Remaining decimal.Decimal // part of the target that no line could absorb
}

// AutoAllocate fills rows in order, each up to its line amount, until target is used up.
//
// A target of zero or less clears every row. A target larger than the sum of all
// line amounts allocates every line fully and reports the excess as Remaining.
// The input rows are not modified.
func AutoAllocate(target decimal.Decimal, rows []Row) Result {
	remaining := types.Round(target)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	out := make([]Row, len(rows))
	allocated := decimal.Zero

	for i, row := range rows {
		amount := decimal.Zero
		ceiling := types.Round(row.LineAmount)

		if remaining.IsPositive() && ceiling.IsPositive() {
			amount = decimal.Min(ceiling, remaining)
		}

		out[i] = row
		out[i].AllocatedAmount = amount

		remaining = remaining.Sub(amount)
		allocated = allocated.Add(amount)
	}

	return Result{
		Rows:      out,
		Allocated: allocated,
		Remaining: remaining,
	}
}
