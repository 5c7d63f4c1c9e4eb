package types

import (
	"database/sql"
	"database/sql/driver"
	"strings"
	"time"
)

// DateFormat is the wire format of a Date.
const DateFormat = "2006-01-02"

// Date is a calendar day without a time of day. It is always stored at midnight UTC.
type Date time.Time

// NewDate returns a new Date.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the Date on which t occurs in t's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return NewDate(year, month, day)
}

// Today returns the current date in UTC.
func Today() Date {
	return DateOf(time.Now().UTC())
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, err
	}

	return DateOf(t), nil
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	return time.Time(d).Format(DateFormat)
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Scan writes the value from the database.
func (d *Date) Scan(value interface{}) error {
	nullTime := &sql.NullTime{}
	err := nullTime.Scan(value)
	if err != nil {
		return err
	}

	if !nullTime.Valid {
		*d = Date{}
		return nil
	}

	*d = DateOf(nullTime.Time.UTC())
	return nil
}

// Value returns the value for the SQL driver to write to the database.
// The zero date is stored as NULL.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return time.Time(d), nil
}

// GormDataType defines the data type used by gorm the type.
func (Date) GormDataType() string {
	return "date"
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// Time returns the date as time.Time at midnight UTC.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// AddDays returns the date n days later.
func (d Date) AddDays(n int) Date {
	return Date(time.Time(d).AddDate(0, 0, n))
}

// Before reports whether d is before e.
func (d Date) Before(e Date) bool {
	return time.Time(d).Before(time.Time(e))
}

// After reports whether d is after e.
func (d Date) After(e Date) bool {
	return time.Time(d).After(time.Time(e))
}

// Equal reports whether d and e are the same day.
func (d Date) Equal(e Date) bool {
	return time.Time(d).Equal(time.Time(e))
}

// DaysUntil returns the number of days from d to e. It is negative when e is before d.
func (d Date) DaysUntil(e Date) int {
	return int(time.Time(e).Sub(time.Time(d)).Hours() / 24)
}

// Min returns the earlier of both dates.
func (d Date) Min(e Date) Date {
	if e.Before(d) {
		return e
	}
	return d
}

// Max returns the later of both dates.
func (d Date) Max(e Date) Date {
	if e.After(d) {
		return e
	}
	return d
}
