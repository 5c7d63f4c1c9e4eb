package allocation

import (
	"fmt"

	"github.com/leasedesk/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Kind identifies why an allocation was rejected.
type Kind string

const (
	KindNoInvoices          Kind = "NO_INVOICES"
	KindMultipleTenants     Kind = "MULTIPLE_TENANTS"
	KindNotPayable          Kind = "NOT_PAYABLE"
	KindMissingTenant       Kind = "MISSING_TENANT"
	KindNonPositiveAmount   Kind = "NON_POSITIVE_AMOUNT"
	KindEmptyAllocation     Kind = "EMPTY_ALLOCATION"
	KindSumMismatch         Kind = "SUM_MISMATCH"
	KindLineCeilingExceeded Kind = "LINE_CEILING_EXCEEDED"
	KindNegativeAllocation  Kind = "NEGATIVE_ALLOCATION"
)

// ValidationError is returned by BuildRows and Validate.
//
// Use errors.Is with the Err* values to test for a kind, and errors.As
// to read the details.
type ValidationError struct {
	Kind          Kind
	InvoiceID     uint64          // set for KindNotPayable, and for KindMultipleTenants from Validate
	InvoiceLineID uint64          // set for KindLineCeilingExceeded, KindNegativeAllocation and KindMultipleTenants from Validate
	Sum           decimal.Decimal // set for KindSumMismatch
	Target        decimal.Decimal // set for KindSumMismatch
}

var (
	ErrNoInvoices          = &ValidationError{Kind: KindNoInvoices}
	ErrMultipleTenants     = &ValidationError{Kind: KindMultipleTenants}
	ErrNotPayable          = &ValidationError{Kind: KindNotPayable}
	ErrMissingTenant       = &ValidationError{Kind: KindMissingTenant}
	ErrNonPositiveAmount   = &ValidationError{Kind: KindNonPositiveAmount}
	ErrEmptyAllocation     = &ValidationError{Kind: KindEmptyAllocation}
	ErrSumMismatch         = &ValidationError{Kind: KindSumMismatch}
	ErrLineCeilingExceeded = &ValidationError{Kind: KindLineCeilingExceeded}
	ErrNegativeAllocation  = &ValidationError{Kind: KindNegativeAllocation}
)

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindNoInvoices:
		return "no invoices selected"
	case KindMultipleTenants:
		if e.InvoiceLineID != 0 {
			return fmt.Sprintf("invoice line %d belongs to another tenant than the payment", e.InvoiceLineID)
		}
		return "multiple tenants in selection"
	case KindNotPayable:
		return fmt.Sprintf("invoice %d is not payable", e.InvoiceID)
	case KindMissingTenant:
		return "a tenant must be selected"
	case KindNonPositiveAmount:
		return "the payment amount must be greater than zero"
	case KindEmptyAllocation:
		return "at least one invoice line must have an allocated amount greater than zero"
	case KindSumMismatch:
		return fmt.Sprintf("the allocated total %s must equal the payment amount %s", types.Format(e.Sum), types.Format(e.Target))
	case KindLineCeilingExceeded:
		return fmt.Sprintf("the allocated amount for invoice line %d exceeds its line amount", e.InvoiceLineID)
	case KindNegativeAllocation:
		return fmt.Sprintf("the allocated amount for invoice line %d must not be negative", e.InvoiceLineID)
	}

	return fmt.Sprintf("invalid allocation: %s", e.Kind)
}

// Is reports whether target is a ValidationError of the same kind.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}
