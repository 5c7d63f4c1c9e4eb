package models_test

import (
	"github.com/leasedesk/backend/internal/formschema"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestFieldDefinitionValidation() {
	organization := suite.createTestOrganization(models.Organization{})

	tests := []struct {
		name       string
		definition models.FieldDefinition
		err        error
	}{
		{"Unknown entity", models.FieldDefinition{Entity: "invoice", Key: "po_number", Kind: formschema.KindText}, models.ErrFieldEntityInvalid},
		{"Invalid key", models.FieldDefinition{Entity: formschema.EntityTenant, Key: "PO Number", Kind: formschema.KindText}, models.ErrFieldKeyInvalid},
		{"System key", models.FieldDefinition{Entity: formschema.EntityTenant, Key: "gstin", Kind: formschema.KindText}, models.ErrFieldKeySystem},
		{"Unknown kind", models.FieldDefinition{Entity: formschema.EntityTenant, Key: "po_number", Kind: "COLOR"}, formschema.ErrUnknownKind},
		{"Select without options", models.FieldDefinition{Entity: formschema.EntityTenant, Key: "segment", Kind: formschema.KindSelect}, formschema.ErrNoOptions},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			definition := tt.definition
			definition.OrganizationID = organization.ID

			err := models.DB.Create(&definition).Error
			assert.ErrorIs(suite.T(), err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestFieldDefinitionKeyUnique() {
	organization := suite.createTestOrganization(models.Organization{})

	definition := models.FieldDefinition{OrganizationID: organization.ID, Entity: formschema.EntityLease, Key: "lock_in", Kind: formschema.KindNumber}
	require.Nil(suite.T(), models.DB.Create(&definition).Error)

	duplicate := models.FieldDefinition{OrganizationID: organization.ID, Entity: formschema.EntityLease, Key: "lock_in", Kind: formschema.KindText}
	assert.ErrorIs(suite.T(), models.DB.Create(&duplicate).Error, models.ErrFieldKeyNotUnique)

	// The same key is fine for another entity
	other := models.FieldDefinition{OrganizationID: organization.ID, Entity: formschema.EntityUnit, Key: "lock_in", Kind: formschema.KindText}
	assert.Nil(suite.T(), models.DB.Create(&other).Error)
}

func (suite *TestSuiteStandard) TestFormSchema() {
	l := suite.createTestLocation()

	definitions := []models.FieldDefinition{
		{OrganizationID: l.Organization.ID, Entity: formschema.EntityUnit, Key: "fit_out", Kind: formschema.KindSelect, Options: types.StringList{"Bare shell", "Warm shell"}, Position: 40},
		{OrganizationID: l.Organization.ID, Entity: formschema.EntityUnit, Key: "parking_slots", Label: "Parking slots", Category: "Amenities", Kind: formschema.KindNumber, Position: 50},
		{OrganizationID: l.Organization.ID, Entity: formschema.EntityTenant, Key: "industry", Kind: formschema.KindText},
	}
	for i := range definitions {
		require.Nil(suite.T(), models.DB.Create(&definitions[i]).Error)
	}

	schema, err := models.FormSchema(models.DB, l.Organization.ID, formschema.EntityUnit)
	require.Nil(suite.T(), err)

	keys := make([]string, 0, len(schema.Fields))
	for _, f := range schema.Fields {
		keys = append(keys, f.Meta().Key)
	}
	assert.Equal(suite.T(), []string{"code", "location", "area_sqft", "fit_out", "parking_slots"}, keys)

	location, ok := schema.Field("location")
	require.True(suite.T(), ok)
	towers := location.(formschema.TowerFloor).Towers
	require.Len(suite.T(), towers, 1)
	assert.Equal(suite.T(), l.Tower.ID, towers[0].ID)

	fitOut, _ := schema.Field("fit_out")
	assert.Equal(suite.T(), formschema.DefaultCategory, fitOut.Meta().Category)
	assert.Equal(suite.T(), "fit_out", fitOut.Meta().Label)

	_, err = models.FormSchema(models.DB, l.Organization.ID, "invoice")
	assert.ErrorIs(suite.T(), err, models.ErrFieldEntityInvalid)
}
