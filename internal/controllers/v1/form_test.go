package v1_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/leasedesk/backend/internal/controllers/v1"
	"github.com/leasedesk/backend/internal/formschema"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fieldErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

func createTestFieldDefinition(t *testing.T, organizationID uint64, field v1.FieldDefinitionEditable, expectedStatus ...int) v1.FieldDefinitionResponse {
	if field.Kind == "" {
		field.Kind = formschema.KindText
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/field-definitions", []v1.FieldDefinitionEditable{field}, orgHeaders(organizationID))
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.FieldDefinitionCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.FieldDefinitionResponse{}
}

func getForm(t *testing.T, organizationID uint64, entity string) v1.Form {
	r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/forms/%s", entity), "", orgHeaders(organizationID))
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.FormResponse
	test.DecodeResponse(t, &r, &response)
	require.NotNil(t, response.Data)

	return *response.Data
}

// formField finds a field of a form by its key.
func formField(form v1.Form, key string) (formschema.Description, bool) {
	for _, c := range form.Categories {
		for _, f := range c.Fields {
			if f.Key == key {
				return f, true
			}
		}
	}
	return formschema.Description{}, false
}

func (suite *TestSuiteStandard) TestFormUnit() {
	f := createTestFixture(suite.T())
	other := createTestTower(suite.T(), f.OrganizationID, v1.TowerEditable{Code: "T2", Name: "Tower Two"})

	form := getForm(suite.T(), f.OrganizationID, "unit")
	assert.Equal(suite.T(), "unit", form.Entity)
	assert.Equal(suite.T(), "http://example.com/v1/forms/unit/cascade", form.Links.Cascade)

	require.Len(suite.T(), form.Categories, 1)
	assert.Equal(suite.T(), "Unit", form.Categories[0].Name)

	keys := []string{}
	for _, field := range form.Categories[0].Fields {
		keys = append(keys, field.Key)
	}
	assert.Equal(suite.T(), []string{"code", "location", "area_sqft"}, keys)

	location, ok := formField(form, "location")
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), formschema.KindTowerFloor, location.Kind)
	assert.True(suite.T(), location.System)
	require.Len(suite.T(), location.Towers, 2, "all towers of the organization are options")
	assert.Equal(suite.T(), f.TowerID, location.Towers[0].ID)
	assert.Equal(suite.T(), []formschema.Floor{{ID: f.FloorID, Name: "Ground"}}, location.Towers[0].Floors)
	assert.Equal(suite.T(), other.Data.ID, location.Towers[1].ID)
	assert.Len(suite.T(), location.Towers[1].Floors, 0)
}

func (suite *TestSuiteStandard) TestFormCustomFields() {
	f := createTestFixture(suite.T())

	createTestFieldDefinition(suite.T(), f.OrganizationID, v1.FieldDefinitionEditable{
		Entity:   "tenant",
		Key:      "segment",
		Label:    "Segment",
		Kind:     formschema.KindSelect,
		Options:  []string{"Retail", "Office"},
		Required: true,
		Position: 20,
	})
	pan := createTestFieldDefinition(suite.T(), f.OrganizationID, v1.FieldDefinitionEditable{
		Entity:   "tenant",
		Key:      "pan_number",
		Category: "Compliance",
		Position: 210,
	})
	assert.Equal(suite.T(), "pan_number", pan.Data.Label, "the label defaults to the key")

	form := getForm(suite.T(), f.OrganizationID, "tenant")

	names := []string{}
	for _, c := range form.Categories {
		names = append(names, c.Name)
	}
	assert.Equal(suite.T(), []string{"Profile", "General", "Contact", "Compliance"}, names)

	segment, ok := formField(form, "segment")
	require.True(suite.T(), ok)
	assert.False(suite.T(), segment.System)
	assert.Equal(suite.T(), []string{"Retail", "Office"}, segment.Options)

	require.Len(suite.T(), form.Categories[3].Fields, 2)
	assert.Equal(suite.T(), "gstin", form.Categories[3].Fields[0].Key)
	assert.Equal(suite.T(), "pan_number", form.Categories[3].Fields[1].Key)

	// Other organizations do not see the fields
	organization := createTestOrganization(suite.T(), v1.OrganizationEditable{})
	_, ok = formField(getForm(suite.T(), organization.Data.ID, "tenant"), "segment")
	assert.False(suite.T(), ok)
}

// TestFormCustomFieldsEnforced verifies that custom field values of resources are validated against the form.
func (suite *TestSuiteStandard) TestFormCustomFieldsEnforced() {
	f := createTestFixture(suite.T())

	createTestFieldDefinition(suite.T(), f.OrganizationID, v1.FieldDefinitionEditable{
		Entity:   "tenant",
		Key:      "segment",
		Kind:     formschema.KindSelect,
		Options:  []string{"Retail", "Office"},
		Required: true,
	})

	createTestTenant(suite.T(), f.OrganizationID, v1.TenantEditable{Name: "No segment"}, http.StatusBadRequest)
	createTestTenant(suite.T(), f.OrganizationID, v1.TenantEditable{Name: "Bad segment", CustomFields: map[string]any{"segment": "Warehouse"}}, http.StatusBadRequest)
	createTestTenant(suite.T(), f.OrganizationID, v1.TenantEditable{Name: "Unknown field", CustomFields: map[string]any{"segment": "Retail", "floor": "3"}}, http.StatusBadRequest)

	tenant := createTestTenant(suite.T(), f.OrganizationID, v1.TenantEditable{Name: "Retail tenant", CustomFields: map[string]any{"segment": "Retail"}})
	assert.Equal(suite.T(), "Retail", tenant.Data.CustomFields["segment"])
}

func (suite *TestSuiteStandard) TestFormValidate() {
	f := createTestFixture(suite.T())
	url := "http://example.com/v1/forms/unit/validate"

	r := test.Request(suite.T(), http.MethodPost, url, v1.FormValues{Values: map[string]any{"code": "  "}}, orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var errs fieldErrorResponse
	require.Nil(suite.T(), json.Unmarshal(r.Body.Bytes(), &errs))
	assert.Equal(suite.T(), map[string]string{
		"code":      formschema.ErrRequired.Error(),
		"location":  formschema.ErrRequired.Error(),
		"area_sqft": formschema.ErrRequired.Error(),
	}, errs.Fields)
	assert.Equal(suite.T(), "invalid field values: area_sqft is required; code is required; location is required", errs.Error)

	r = test.Request(suite.T(), http.MethodPost, url, v1.FormValues{Values: map[string]any{
		"code":      " T1-0402 ",
		"location":  map[string]any{"tower_id": f.TowerID, "floor_id": f.FloorID},
		"area_sqft": 1250.5,
	}}, orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.FormValuesResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "T1-0402", response.Data.Values["code"])
	assert.Equal(suite.T(), "1250.5", response.Data.Values["area_sqft"])
	assert.Equal(suite.T(), map[string]any{"tower_id": float64(f.TowerID), "floor_id": float64(f.FloorID)}, response.Data.Values["location"])
}

func (suite *TestSuiteStandard) TestFormValidateFloorOfOtherTower() {
	f := createTestFixture(suite.T())
	other := createTestTower(suite.T(), f.OrganizationID, v1.TowerEditable{})
	floor := createTestFloor(suite.T(), f.OrganizationID, other.Data.ID, v1.FloorEditable{})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/forms/unit/validate", v1.FormValues{Values: map[string]any{
		"code":      "T1-0402",
		"location":  map[string]any{"tower_id": f.TowerID, "floor_id": floor.Data.ID},
		"area_sqft": "800",
	}}, orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var errs fieldErrorResponse
	require.Nil(suite.T(), json.Unmarshal(r.Body.Bytes(), &errs))
	assert.Equal(suite.T(), map[string]string{"location": formschema.ErrFloorNotFound.Error()}, errs.Fields)
}

func (suite *TestSuiteStandard) TestFormCascade() {
	f := createTestFixture(suite.T())
	other := createTestTower(suite.T(), f.OrganizationID, v1.TowerEditable{Code: "T2"})
	upper := createTestFloor(suite.T(), f.OrganizationID, other.Data.ID, v1.FloorEditable{Name: "First", Level: 1})
	url := "http://example.com/v1/forms/unit/cascade"

	cascade := func(t *testing.T, c v1.FormCascade, expectedStatus int) v1.FormCascadeResponse {
		r := test.Request(t, http.MethodPost, url, c, orgHeaders(f.OrganizationID))
		test.AssertHTTPStatus(t, &r, expectedStatus)

		var response v1.FormCascadeResponse
		test.DecodeResponse(t, &r, &response)
		return response
	}

	towerID := f.TowerID
	floorID := f.FloorID
	otherID := other.Data.ID
	upperID := upper.Data.ID

	// Selecting a tower lists its floors
	response := cascade(suite.T(), v1.FormCascade{Key: "location", TowerID: &towerID}, http.StatusOK)
	assert.Equal(suite.T(), []formschema.Floor{{ID: f.FloorID, Name: "Ground"}}, response.Data.FloorOptions)
	assert.Equal(suite.T(), map[string]any{"tower_id": float64(f.TowerID)}, response.Data.Values["location"])

	// Selecting a floor of the tower
	values := response.Data.Values
	values["code"] = "T1-0402"
	response = cascade(suite.T(), v1.FormCascade{Key: "location", Values: values, FloorID: &floorID}, http.StatusOK)
	assert.Equal(suite.T(), map[string]any{"tower_id": float64(f.TowerID), "floor_id": float64(f.FloorID)}, response.Data.Values["location"])
	assert.Equal(suite.T(), "T1-0402", response.Data.Values["code"], "other values are kept")

	// A floor of another tower is rejected
	rejected := cascade(suite.T(), v1.FormCascade{Key: "location", Values: response.Data.Values, FloorID: &upperID}, http.StatusBadRequest)
	assert.Contains(suite.T(), *rejected.Error, formschema.ErrFloorNotFound.Error())

	// Changing the tower clears the floor
	response = cascade(suite.T(), v1.FormCascade{Key: "location", Values: response.Data.Values, TowerID: &otherID}, http.StatusOK)
	assert.Equal(suite.T(), map[string]any{"tower_id": float64(other.Data.ID)}, response.Data.Values["location"])
	assert.Equal(suite.T(), []formschema.Floor{{ID: upper.Data.ID, Name: "First"}}, response.Data.FloorOptions)

	// Tower and floor can be selected together
	response = cascade(suite.T(), v1.FormCascade{Key: "location", TowerID: &otherID, FloorID: &upperID}, http.StatusOK)
	assert.Equal(suite.T(), map[string]any{"tower_id": float64(other.Data.ID), "floor_id": float64(upper.Data.ID)}, response.Data.Values["location"])

	unknown := uint64(9999)
	rejected = cascade(suite.T(), v1.FormCascade{Key: "location", TowerID: &unknown}, http.StatusBadRequest)
	assert.Contains(suite.T(), *rejected.Error, formschema.ErrTowerNotFound.Error())

	rejected = cascade(suite.T(), v1.FormCascade{Key: "code", TowerID: &towerID}, http.StatusBadRequest)
	assert.Equal(suite.T(), "key must name a TOWER_FLOOR field of the form", *rejected.Error)
}

func (suite *TestSuiteStandard) TestFormEntityInvalid() {
	f := createTestFixture(suite.T())

	for _, tt := range []struct {
		method string
		url    string
	}{
		{http.MethodGet, "http://example.com/v1/forms/invoice"},
		{http.MethodPost, "http://example.com/v1/forms/invoice/validate"},
		{http.MethodPost, "http://example.com/v1/forms/invoice/cascade"},
	} {
		suite.T().Run(tt.url, func(t *testing.T) {
			r := test.Request(t, tt.method, tt.url, v1.FormValues{}, orgHeaders(f.OrganizationID))
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Equal(t, "Entity must be one of tenant, unit, lease", test.DecodeError(t, r.Body.Bytes()))
		})
	}
}

func (suite *TestSuiteStandard) TestFieldDefinitionsCreateFails() {
	f := createTestFixture(suite.T())
	createTestFieldDefinition(suite.T(), f.OrganizationID, v1.FieldDefinitionEditable{Entity: "unit", Key: "view"})

	tests := []struct {
		name  string
		field v1.FieldDefinitionEditable
		err   error
	}{
		{"Unknown entity", v1.FieldDefinitionEditable{Entity: "invoice", Key: "po_number"}, models.ErrFieldEntityInvalid},
		{"Invalid key", v1.FieldDefinitionEditable{Entity: "unit", Key: "Sea View"}, models.ErrFieldKeyInvalid},
		{"System key", v1.FieldDefinitionEditable{Entity: "unit", Key: "code"}, models.ErrFieldKeySystem},
		{"Duplicate key", v1.FieldDefinitionEditable{Entity: "unit", Key: "view"}, models.ErrFieldKeyNotUnique},
		{"Select without options", v1.FieldDefinitionEditable{Entity: "unit", Key: "facing", Kind: formschema.KindSelect}, formschema.ErrNoOptions},
		{"Unknown kind", v1.FieldDefinitionEditable{Entity: "unit", Key: "facing", Kind: "COLOR"}, formschema.ErrUnknownKind},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/field-definitions", []v1.FieldDefinitionEditable{tt.field}, orgHeaders(f.OrganizationID))
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), tt.err.Error())
		})
	}

	// The same key is allowed for another entity
	createTestFieldDefinition(suite.T(), f.OrganizationID, v1.FieldDefinitionEditable{Entity: "lease", Key: "view"})
}

func (suite *TestSuiteStandard) TestFieldDefinitionsUpdate() {
	f := createTestFixture(suite.T())
	field := createTestFieldDefinition(suite.T(), f.OrganizationID, v1.FieldDefinitionEditable{Entity: "unit", Key: "view", Label: "View"})

	// Load the form so that it is cached when caching is enabled
	getForm(suite.T(), f.OrganizationID, "unit")

	r := test.Request(suite.T(), http.MethodPatch, field.Data.Links.Self, map[string]any{"label": "Facing", "required": true}, orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	view, ok := formField(getForm(suite.T(), f.OrganizationID, "unit"), "view")
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), "Facing", view.Label)
	assert.True(suite.T(), view.Required)

	r = test.Request(suite.T(), http.MethodPatch, field.Data.Links.Self, map[string]any{"key": "code"}, orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/field-definitions?entity=unit", "", orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.FieldDefinitionListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Len(suite.T(), list.Data, 1)

	r = test.Request(suite.T(), http.MethodDelete, field.Data.Links.Self, "", orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	_, ok = formField(getForm(suite.T(), f.OrganizationID, "unit"), "view")
	assert.False(suite.T(), ok)
}
