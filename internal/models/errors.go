package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrReferenceMissing = errors.New("a resource ID you specified does not identify an existing resource")
	ErrResourceInUse    = errors.New("the resource is still referenced by other resources and cannot be deleted")
)

// Uniqueness errors
var (
	ErrOrganizationNameNotUnique = errors.New("the organization name must be unique")
	ErrTowerCodeNotUnique        = errors.New("the tower code must be unique in the organization")
	ErrFloorNameNotUnique        = errors.New("the floor name must be unique in the tower")
	ErrUnitCodeNotUnique         = errors.New("the unit code must be unique in the organization")
	ErrFieldKeyNotUnique         = errors.New("the field key must be unique for the entity")
	ErrInvoiceNumberNotUnique    = errors.New("the invoice number must be unique in the organization")
	ErrPaymentNumberNotUnique    = errors.New("the receipt number must be unique in the organization")
	ErrPaymentDuplicate          = errors.New("a payment with this idempotency key has already been recorded")
)

// Validation errors
var (
	ErrNameEmpty             = errors.New("the name must not be empty")
	ErrCodeEmpty             = errors.New("the code must not be empty")
	ErrLocaleInvalid         = errors.New("the locale must be a valid BCP 47 language tag, e.g. en-IN")
	ErrCurrencyInvalid       = errors.New("the currency must be a valid ISO 4217 code, e.g. INR")
	ErrUnitStatusInvalid     = errors.New("the unit status must be one of VACANT, OCCUPIED")
	ErrUnitAreaNegative      = errors.New("the unit area must not be negative")
	ErrLeaseDates            = errors.New("the lease end date must not be before its start date")
	ErrLeaseStartMissing     = errors.New("the lease start date must be set")
	ErrLeaseAmountNegative   = errors.New("the monthly rent and CAM rate must not be negative")
	ErrLeaseStatusInvalid    = errors.New("the lease status must be one of ACTIVE, TERMINATED")
	ErrBillingRuleFormula    = errors.New("the billing rule formula is invalid")
	ErrBillingRuleChargeType = errors.New("the billing rule charge type must not be empty")
	ErrFieldEntityInvalid    = errors.New("the entity must be one of tenant, unit, lease")
	ErrFieldKeyInvalid       = errors.New("the field key must only contain lowercase letters, digits and underscores, and start with a letter")
	ErrFieldKeySystem        = errors.New("the field key is used by a system field")
)

// Invoice errors
var (
	ErrInvoiceStatusInvalid   = errors.New("the invoice status must be one of DRAFT, ISSUED, PARTIALLY_PAID, PAID, CANCELLED")
	ErrInvoiceKindInvalid     = errors.New("the invoice kind must be one of MANUAL, GENERATED")
	ErrInvoicePeriod          = errors.New("the invoice period end must not be before its start")
	ErrInvoiceDueDateMissing  = errors.New("the invoice due date must be set")
	ErrInvoiceNotEditable     = errors.New("only draft invoices can be edited")
	ErrInvoiceNotDraft        = errors.New("only draft invoices can be issued")
	ErrInvoiceEmpty           = errors.New("an invoice needs at least one line to be issued")
	ErrInvoiceNotCancellable  = errors.New("invoices with recorded payments cannot be cancelled")
	ErrInvoiceAlreadyCanceled = errors.New("the invoice is already cancelled")
	ErrInvoiceLeaseTenant     = errors.New("the lease of the invoice belongs to a different tenant")
	ErrInvoiceLineAmount      = errors.New("invoice line amounts must be larger than zero")
)

// Payment errors
var (
	ErrPaymentLineUnknown = errors.New("an allocated invoice line does not belong to a payable invoice of the organization")
	ErrPaymentLineTwice   = errors.New("an invoice line can only be allocated once per payment")
)
