// Package billing generates recurring charges such as CAM for active leases.
package billing

import (
	"fmt"

	"github.com/leasedesk/backend/internal/types"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
)

// Period is an inclusive range of days.
type Period struct {
	Start types.Date
	End   types.Date
}

// MonthPeriod returns the period covering a whole month.
func MonthPeriod(m types.Month) Period {
	return Period{Start: m.First(), End: m.Last()}
}

// Days returns the number of days in the period.
func (p Period) Days() int {
	return p.Start.DaysUntil(p.End) + 1
}

// Valid reports whether the period is non-empty.
func (p Period) Valid() bool {
	return !p.Start.IsZero() && !p.End.Before(p.Start)
}

func (p Period) String() string {
	return fmt.Sprintf("%s to %s", p.Start, p.End)
}

// Rule is an active billing rule.
type Rule struct {
	ID          uint64
	Name        string
	ChargeType  string
	UnitPattern string // glob on the unit code, empty matches all units
	Formula     string // empty uses DefaultFormula
	Rate        decimal.Decimal
}

// Matches reports whether the rule applies to a unit.
func (r Rule) Matches(unitCode string) bool {
	if r.UnitPattern == "" {
		return true
	}
	return glob.Glob(r.UnitPattern, unitCode)
}

// Lease is the part of a lease that billing needs.
type Lease struct {
	ID          uint64
	TenantID    uint64
	UnitID      uint64
	UnitCode    string
	AreaSqft    decimal.Decimal
	MonthlyRent decimal.Decimal
	CAMRate     decimal.Decimal
	Start       types.Date
	End         types.Date // zero for open-ended leases
}

// ActiveDays returns how many days of the period the lease runs.
func (l Lease) ActiveDays(p Period) int {
	start := l.Start.Max(p.Start)
	end := p.End
	if !l.End.IsZero() {
		end = l.End.Min(p.End)
	}

	if end.Before(start) {
		return 0
	}
	return start.DaysUntil(end) + 1
}

// DraftLine is a generated invoice line.
type DraftLine struct {
	RuleID      uint64
	ChargeType  string
	Description string
	Amount      decimal.Decimal
}

// Draft is a generated invoice for one lease.
type Draft struct {
	LeaseID  uint64
	TenantID uint64
	UnitID   uint64
	Period   Period
	Lines    []DraftLine
}

// Total returns the sum of all line amounts.
func (d Draft) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range d.Lines {
		sum = sum.Add(l.Amount)
	}
	return sum
}

// Generate creates one draft per lease that is active during the period, with
// one line per matching rule. Leases without any positive charge are skipped.
func Generate(period Period, leases []Lease, rules []Rule) ([]Draft, error) {
	if !period.Valid() {
		return nil, fmt.Errorf("invalid billing period %s", period)
	}

	formulas := make([]*Formula, len(rules))
	for i, rule := range rules {
		source := rule.Formula
		if source == "" {
			source = DefaultFormula(rule.ChargeType)
		}

		f, err := Compile(source)
		if err != nil {
			return nil, fmt.Errorf("billing rule %q: %w", rule.Name, err)
		}
		formulas[i] = f
	}

	var drafts []Draft
	for _, lease := range leases {
		days := lease.ActiveDays(period)
		if days == 0 {
			continue
		}

		vars := map[string]decimal.Decimal{
			VarArea:       lease.AreaSqft,
			VarCAMRate:    lease.CAMRate,
			VarRent:       lease.MonthlyRent,
			VarDays:       decimal.NewFromInt(int64(days)),
			VarPeriodDays: decimal.NewFromInt(int64(period.Days())),
		}

		draft := Draft{
			LeaseID:  lease.ID,
			TenantID: lease.TenantID,
			UnitID:   lease.UnitID,
			Period:   period,
		}

		for i, rule := range rules {
			if !rule.Matches(lease.UnitCode) {
				continue
			}

			vars[VarRate] = rule.Rate
			amount, err := formulas[i].Evaluate(vars)
			if err != nil {
				return nil, fmt.Errorf("billing rule %q for lease %d: %w", rule.Name, lease.ID, err)
			}

			if !amount.IsPositive() {
				continue
			}

			draft.Lines = append(draft.Lines, DraftLine{
				RuleID:      rule.ID,
				ChargeType:  rule.ChargeType,
				Description: fmt.Sprintf("%s %s (%s)", rule.Name, lease.UnitCode, period),
				Amount:      amount,
			})
		}

		if len(draft.Lines) > 0 {
			drafts = append(drafts, draft)
		}
	}

	return drafts, nil
}
