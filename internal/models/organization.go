package models

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gorm.io/gorm"
)

// DefaultLocale is used for organizations that do not set a locale.
const DefaultLocale = "en-IN"

// Organization is a landlord or property manager. All other resources
// belong to exactly one organization.
type Organization struct {
	DefaultModel
	Name     string `gorm:"uniqueIndex"`
	Locale   string
	Currency string
}

// BeforeSave normalizes the locale and derives the currency from it
// when none is set.
func (o *Organization) BeforeSave(_ *gorm.DB) error {
	trim(&o.Name, &o.Locale, &o.Currency)

	if o.Locale == "" {
		o.Locale = DefaultLocale
	}

	tag, err := language.Parse(o.Locale)
	if err != nil {
		return ErrLocaleInvalid
	}
	o.Locale = tag.String()

	if o.Currency == "" {
		unit, _ := currency.FromTag(tag)
		o.Currency = unit.String()
	}

	unit, err := currency.ParseISO(o.Currency)
	if err != nil {
		return ErrCurrencyInvalid
	}
	o.Currency = unit.String()

	return nil
}

func (o *Organization) AfterSave(_ *gorm.DB) error {
	if o.Name == "" {
		return ErrNameEmpty
	}

	if _, err := language.Parse(o.Locale); err != nil {
		return ErrLocaleInvalid
	}

	if _, err := currency.ParseISO(o.Currency); err != nil {
		return ErrCurrencyInvalid
	}

	return nil
}

// Tag returns the language tag of the organization's locale.
func (o Organization) Tag() language.Tag {
	tag, err := language.Parse(o.Locale)
	if err != nil {
		return language.MustParse(DefaultLocale)
	}
	return tag
}

// Symbol returns the currency symbol in the organization's locale, e.g. ₹ for INR.
func (o Organization) Symbol() string {
	unit, err := currency.ParseISO(o.Currency)
	if err != nil {
		return o.Currency
	}

	return message.NewPrinter(o.Tag()).Sprint(currency.Symbol(unit))
}
