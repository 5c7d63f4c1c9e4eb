package models

import (
	"fmt"
	"regexp"

	"github.com/leasedesk/backend/internal/formschema"
	"github.com/leasedesk/backend/internal/types"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

var fieldKey = regexp.MustCompile(`^[a-z][a-z0-9_]{0,62}$`)

// FieldDefinition is a custom form field an organization defines for an entity.
type FieldDefinition struct {
	DefaultModel
	OrganizationID uint64 `gorm:"uniqueIndex:field_key"`
	Entity         string `gorm:"uniqueIndex:field_key"`
	Key            string `gorm:"uniqueIndex:field_key"`
	Label          string
	Category       string
	Kind           formschema.Kind
	Options        types.StringList
	Required       bool
	Position       int
}

func (f *FieldDefinition) BeforeSave(_ *gorm.DB) error {
	trim(&f.Entity, &f.Key, &f.Label, &f.Category)

	if f.Label == "" {
		f.Label = f.Key
	}

	if f.Category == "" {
		f.Category = formschema.DefaultCategory
	}

	return nil
}

func (f *FieldDefinition) AfterSave(tx *gorm.DB) error {
	if !slices.Contains(formschema.Entities, f.Entity) {
		return ErrFieldEntityInvalid
	}

	if !fieldKey.MatchString(f.Key) {
		return ErrFieldKeyInvalid
	}

	for _, system := range formschema.SystemFields(f.Entity, nil) {
		if system.Meta().Key == f.Key {
			return fmt.Errorf("%w: %s", ErrFieldKeySystem, f.Key)
		}
	}

	if _, err := formschema.FromDescription(f.Description(), nil); err != nil {
		return err
	}

	return organizationExists(tx, f.OrganizationID)
}

// Description returns the field as rendered in forms.
func (f FieldDefinition) Description() formschema.Description {
	d := formschema.Description{
		Key:      f.Key,
		Label:    f.Label,
		Category: f.Category,
		Kind:     f.Kind,
		Required: f.Required,
		Position: f.Position,
	}

	if f.Kind == formschema.KindSelect {
		d.Options = f.Options
	}

	return d
}

// FormSchema returns the form of an entity for an organization: the system
// fields merged with the organization's custom fields.
func FormSchema(db *gorm.DB, organizationID uint64, entity string) (formschema.Schema, error) {
	if !slices.Contains(formschema.Entities, entity) {
		return formschema.Schema{}, ErrFieldEntityInvalid
	}

	towers, err := TowerOptions(db, organizationID)
	if err != nil {
		return formschema.Schema{}, err
	}

	var definitions []FieldDefinition
	err = db.
		Where(&FieldDefinition{OrganizationID: organizationID, Entity: entity}).
		Order("position ASC, id ASC").
		Find(&definitions).Error
	if err != nil {
		return formschema.Schema{}, err
	}

	fields := formschema.SystemFields(entity, towers)
	for _, d := range definitions {
		field, err := formschema.FromDescription(d.Description(), towers)
		if err != nil {
			return formschema.Schema{}, err
		}
		fields = append(fields, field)
	}

	return formschema.New(entity, fields...), nil
}
