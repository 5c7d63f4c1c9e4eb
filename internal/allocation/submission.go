package allocation

import (
	"errors"
	"fmt"
	"time"

	"github.com/leasedesk/backend/internal/types"
	"golang.org/x/exp/slices"
)

// Mode is the way a payment was received.
type Mode string

const (
	ModeCash   Mode = "CASH"
	ModeBank   Mode = "BANK"
	ModeUPI    Mode = "UPI"
	ModeCheque Mode = "CHEQUE"
	ModeOther  Mode = "OTHER"
)

// Modes lists all payment modes.
var Modes = []Mode{ModeCash, ModeBank, ModeUPI, ModeCheque, ModeOther}

// ErrModeInvalid is returned for unknown payment modes.
var ErrModeInvalid = errors.New("the payment mode must be one of CASH, BANK, UPI, CHEQUE or OTHER")

// ErrReceivedAtInvalid is returned when meta.received_at is not an ISO 8601 timestamp.
var ErrReceivedAtInvalid = errors.New("meta.received_at must be an ISO 8601 timestamp with a UTC offset")

// Valid reports whether m is a known payment mode.
func (m Mode) Valid() bool {
	return slices.Contains(Modes, m)
}

// ReceivedAtFormat renders timestamps with a numeric UTC offset, e.g. 2026-10-18T10:15:00+05:30.
const ReceivedAtFormat = "2006-01-02T15:04:05-07:00"

// Meta holds optional payment details.
type Meta struct {
	BankName   string `json:"bank_name,omitempty"`
	ReceivedAt string `json:"received_at,omitempty"`
}

// Normalize validates ReceivedAt and rewrites it with a numeric offset.
func (m Meta) Normalize() (Meta, error) {
	if m.ReceivedAt == "" {
		return m, nil
	}

	t, err := time.Parse(time.RFC3339, m.ReceivedAt)
	if err != nil {
		return m, fmt.Errorf("%w: %s", ErrReceivedAtInvalid, m.ReceivedAt)
	}

	m.ReceivedAt = t.Format(ReceivedAtFormat)
	return m, nil
}

// SubmissionAllocation is one allocation in the submission payload.
type SubmissionAllocation struct {
	InvoiceLineID   uint64      `json:"invoice_line_id"`
	AllocatedAmount types.Money `json:"allocated_amount"`
}

// Payment is the payment part of a submission.
type Payment struct {
	TenantID    uint64      `json:"tenant_id"`
	Amount      types.Money `json:"amount"`
	ReceivedOn  types.Date  `json:"received_on"`
	Mode        Mode        `json:"mode"`
	ReferenceNo string      `json:"reference_no"`
	Note        string      `json:"note"`
	Meta        Meta        `json:"meta"`
}

// Draft returns the fields Validate checks.
func (p Payment) Draft() Draft {
	return Draft{TenantID: p.TenantID, Amount: p.Amount.Decimal}
}

// Check runs the checks that need no allocation rows and returns the
// normalized meta data.
func (p Payment) Check() (Meta, error) {
	if err := CheckDraft(p.Draft()); err != nil {
		return Meta{}, err
	}

	if !p.Mode.Valid() {
		return Meta{}, ErrModeInvalid
	}

	return p.Meta.Normalize()
}

// Submission is the payload that records a payment together with its allocations.
type Submission struct {
	Payment     Payment                `json:"payment"`
	Allocations []SubmissionAllocation `json:"allocations"`
}

// NewSubmission builds the payload from a payment and its validated allocations.
// A payment without a receipt date is dated today.
func NewSubmission(p Payment, allocations []Allocation) Submission {
	p.Amount = types.NewMoney(p.Amount.Rounded())
	if p.ReceivedOn.IsZero() {
		p.ReceivedOn = types.Today()
	}

	s := Submission{
		Payment:     p,
		Allocations: make([]SubmissionAllocation, 0, len(allocations)),
	}

	for _, a := range allocations {
		s.Allocations = append(s.Allocations, SubmissionAllocation{
			InvoiceLineID:   a.InvoiceLineID,
			AllocatedAmount: types.NewMoney(a.Amount),
		})
	}

	return s
}

// LineIDs returns the invoice line IDs referenced by the submission in payload order.
func (s Submission) LineIDs() []uint64 {
	ids := make([]uint64, 0, len(s.Allocations))
	for _, a := range s.Allocations {
		ids = append(ids, a.InvoiceLineID)
	}
	return ids
}
