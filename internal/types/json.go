package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a list of strings stored as a JSON array.
type StringList []string

// Scan writes the value from the database.
func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// Value returns the value for the SQL driver to write to the database.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}

	b, err := json.Marshal(l)
	return string(b), err
}

// GormDataType defines the data type used by gorm the type.
func (StringList) GormDataType() string {
	return "text"
}

// Values are free-form values keyed by field key, stored as a JSON object.
type Values map[string]any

// Scan writes the value from the database.
func (v *Values) Scan(value interface{}) error {
	return scanJSON(value, v)
}

// Value returns the value for the SQL driver to write to the database.
func (v Values) Value() (driver.Value, error) {
	if v == nil {
		return "{}", nil
	}

	b, err := json.Marshal(v)
	return string(b), err
}

// GormDataType defines the data type used by gorm the type.
func (Values) GormDataType() string {
	return "text"
}

func scanJSON(value interface{}, target any) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into %T", value, target)
	}

	if len(data) == 0 {
		return nil
	}

	return json.Unmarshal(data, target)
}
