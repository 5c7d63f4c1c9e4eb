package billing

import (
	"errors"
	"fmt"
	"math"

	"github.com/Knetic/govaluate"
	"github.com/leasedesk/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Variables available in billing rule formulas.
const (
	VarArea       = "area"        // leasable area of the unit in sq ft
	VarRate       = "rate"        // rate configured on the rule
	VarCAMRate    = "cam_rate"    // CAM rate per sq ft and month of the lease
	VarRent       = "rent"        // monthly rent of the lease
	VarDays       = "days"        // days of the period the lease is active
	VarPeriodDays = "period_days" // days in the period
)

// Variables lists all formula variables.
var Variables = []string{VarArea, VarRate, VarCAMRate, VarRent, VarDays, VarPeriodDays}

var (
	ErrFormulaInvalid  = errors.New("the formula is not a valid expression")
	ErrFormulaVariable = errors.New("the formula uses an unknown variable")
	ErrFormulaResult   = errors.New("the formula did not evaluate to a number")
)

// Charge types with a default formula.
const (
	ChargeCAM  = "CAM"
	ChargeRent = "RENT"
)

// DefaultFormula returns the formula used when a rule does not define one.
func DefaultFormula(chargeType string) string {
	switch chargeType {
	case ChargeCAM:
		return "area * cam_rate * days / period_days"
	case ChargeRent:
		return "rent * days / period_days"
	}
	return "rate * days / period_days"
}

// Formula is a compiled billing formula.
type Formula struct {
	source     string
	expression *govaluate.EvaluableExpression
}

// Compile parses a formula and checks that it only uses known variables.
func Compile(source string) (*Formula, error) {
	expression, err := govaluate.NewEvaluableExpression(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFormulaInvalid, err)
	}

	for _, v := range expression.Vars() {
		if !slices.Contains(Variables, v) {
			return nil, fmt.Errorf("%w: %s", ErrFormulaVariable, v)
		}
	}

	return &Formula{source: source, expression: expression}, nil
}

// String returns the source of the formula.
func (f *Formula) String() string {
	return f.source
}

// floatPlaces is the precision a formula result is trusted to. govaluate
// computes in float64, so results like 350.03499999999997 are first rounded
// to this many places and then quantized half away from zero to two places.
const floatPlaces = 6

// Evaluate computes the formula and quantizes the result to two places.
func (f *Formula) Evaluate(vars map[string]decimal.Decimal) (decimal.Decimal, error) {
	params := make(map[string]interface{}, len(Variables))
	for _, name := range Variables {
		params[name] = vars[name].InexactFloat64()
	}

	result, err := f.expression.Evaluate(params)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrFormulaResult, err)
	}

	number, ok := result.(float64)
	if !ok || math.IsNaN(number) || math.IsInf(number, 0) {
		return decimal.Zero, fmt.Errorf("%w: got %v", ErrFormulaResult, result)
	}

	return types.Round(decimal.NewFromFloat(number).Round(floatPlaces)), nil
}
