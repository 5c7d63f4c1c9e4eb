// Package formschema describes the dynamic forms of tenants, units and leases.
//
// A Schema is a list of fields grouped by category. Every field kind is its own
// type implementing Field and knows how to normalize the values entered for it.
package formschema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/leasedesk/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Kind is the kind of a field.
type Kind string

const (
	KindText       Kind = "TEXT"
	KindNumber     Kind = "NUMBER"
	KindDate       Kind = "DATE"
	KindSelect     Kind = "SELECT"
	KindBool       Kind = "BOOL"
	KindAttachment Kind = "ATTACHMENT"
	KindTowerFloor Kind = "TOWER_FLOOR"
)

// Kinds lists all field kinds.
var Kinds = []Kind{KindText, KindNumber, KindDate, KindSelect, KindBool, KindAttachment, KindTowerFloor}

var (
	ErrRequired      = errors.New("is required")
	ErrUnknownKind   = errors.New("unknown field kind")
	ErrNoOptions     = errors.New("a SELECT field needs at least one option")
	ErrUnknownField  = errors.New("is not a field of this form")
	ErrFloorNotFound = errors.New("the floor does not belong to the selected tower")
	ErrTowerNotFound = errors.New("the tower does not exist")
)

// maxTextLength is the longest accepted TEXT value.
const maxTextLength = 1024

// Base holds the attributes every field has.
type Base struct {
	Key      string
	Label    string
	Category string
	Required bool
	Position int
	System   bool // built into the entity, not defined by the organization
}

// Field is a single form field.
type Field interface {
	Meta() Base
	Kind() Kind

	// Normalize validates a submitted value and returns its canonical form.
	// value is never nil.
	Normalize(value any) (any, error)
	Describe() Description
}

// Description is the JSON representation of a field for form renderers.
type Description struct {
	Key      string   `json:"key"`
	Label    string   `json:"label"`
	Category string   `json:"category"`
	Kind     Kind     `json:"kind"`
	Required bool     `json:"required"`
	System   bool     `json:"system"`
	Position int      `json:"position"`
	Options  []string `json:"options,omitempty"`
	Towers   []Tower  `json:"towers,omitempty"`
}

func describe(b Base, k Kind) Description {
	return Description{
		Key:      b.Key,
		Label:    b.Label,
		Category: b.Category,
		Kind:     k,
		Required: b.Required,
		System:   b.System,
		Position: b.Position,
	}
}

// Text is a free text field.
type Text struct{ Base }

func (f Text) Meta() Base            { return f.Base }
func (Text) Kind() Kind              { return KindText }
func (f Text) Describe() Description { return describe(f.Base, KindText) }

func (f Text) Normalize(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, errors.New("must be text")
	}

	s = strings.TrimSpace(s)
	if s == "" && f.Required {
		return nil, ErrRequired
	}

	if len(s) > maxTextLength {
		return nil, fmt.Errorf("must not be longer than %d characters", maxTextLength)
	}

	return s, nil
}

// Number is a decimal number field. Values are normalized to decimal strings.
type Number struct{ Base }

func (f Number) Meta() Base            { return f.Base }
func (Number) Kind() Kind              { return KindNumber }
func (f Number) Describe() Description { return describe(f.Base, KindNumber) }

func (f Number) Normalize(value any) (any, error) {
	var d decimal.Decimal
	var err error

	switch v := value.(type) {
	case float64:
		d = decimal.NewFromFloat(v)
	case int:
		d = decimal.NewFromInt(int64(v))
	case json.Number:
		d, err = decimal.NewFromString(v.String())
	case string:
		if strings.TrimSpace(v) == "" && !f.Required {
			return "", nil
		}
		d, err = decimal.NewFromString(strings.TrimSpace(v))
	default:
		err = fmt.Errorf("unsupported type %T", value)
	}

	if err != nil {
		return nil, errors.New("must be a number")
	}

	return d.String(), nil
}

// Date is a calendar date field in YYYY-MM-DD format.
type Date struct{ Base }

func (f Date) Meta() Base            { return f.Base }
func (Date) Kind() Kind              { return KindDate }
func (f Date) Describe() Description { return describe(f.Base, KindDate) }

func (f Date) Normalize(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, errors.New("must be a date in YYYY-MM-DD format")
	}

	if s == "" {
		if f.Required {
			return nil, ErrRequired
		}
		return "", nil
	}

	d, err := types.ParseDate(s)
	if err != nil {
		return nil, errors.New("must be a date in YYYY-MM-DD format")
	}

	return d.String(), nil
}

// Select allows one of a fixed list of options.
type Select struct {
	Base
	Options []string
}

func (f Select) Meta() Base { return f.Base }
func (Select) Kind() Kind   { return KindSelect }

func (f Select) Describe() Description {
	d := describe(f.Base, KindSelect)
	d.Options = f.Options
	return d
}

func (f Select) Normalize(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, errors.New("must be one of the options")
	}

	if s == "" && !f.Required {
		return "", nil
	}

	if !slices.Contains(f.Options, s) {
		return nil, fmt.Errorf("must be one of %s", strings.Join(f.Options, ", "))
	}

	return s, nil
}

// Bool is a checkbox.
type Bool struct{ Base }

func (f Bool) Meta() Base            { return f.Base }
func (Bool) Kind() Kind              { return KindBool }
func (f Bool) Describe() Description { return describe(f.Base, KindBool) }

func (f Bool) Normalize(value any) (any, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b, nil
		}
	}

	return nil, errors.New("must be true or false")
}

// Attachment references an uploaded document by its storage key or URL.
type Attachment struct{ Base }

func (f Attachment) Meta() Base            { return f.Base }
func (Attachment) Kind() Kind              { return KindAttachment }
func (f Attachment) Describe() Description { return describe(f.Base, KindAttachment) }

func (f Attachment) Normalize(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, errors.New("must be a document reference")
	}

	s = strings.TrimSpace(s)
	if s == "" && f.Required {
		return nil, ErrRequired
	}

	if strings.ContainsAny(s, " \t\n") {
		return nil, errors.New("must be a document reference without whitespace")
	}

	return s, nil
}

// FromDescription builds a field from its description. Towers are only used
// for TOWER_FLOOR fields.
func FromDescription(d Description, towers []Tower) (Field, error) {
	base := Base{
		Key:      d.Key,
		Label:    d.Label,
		Category: d.Category,
		Required: d.Required,
		Position: d.Position,
		System:   d.System,
	}

	switch d.Kind {
	case KindText:
		return Text{base}, nil
	case KindNumber:
		return Number{base}, nil
	case KindDate:
		return Date{base}, nil
	case KindSelect:
		if len(d.Options) == 0 {
			return nil, fmt.Errorf("field %s: %w", d.Key, ErrNoOptions)
		}
		return Select{Base: base, Options: d.Options}, nil
	case KindBool:
		return Bool{base}, nil
	case KindAttachment:
		return Attachment{base}, nil
	case KindTowerFloor:
		return TowerFloor{Base: base, Towers: towers}, nil
	}

	return nil, fmt.Errorf("field %s: %w %q", d.Key, ErrUnknownKind, d.Kind)
}
