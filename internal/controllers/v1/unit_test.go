package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/leasedesk/backend/internal/controllers/v1"
	"github.com/leasedesk/backend/internal/formschema"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestUnitCreate() {
	f := createTestFixture(suite.T())

	unit := createTestUnit(suite.T(), f.OrganizationID, v1.UnitEditable{
		Code:     " T1-0002 ",
		TowerID:  f.TowerID,
		FloorID:  f.FloorID,
		AreaSqft: decimal.NewFromFloat(1250.5),
	})
	assert.Equal(suite.T(), "T1-0002", unit.Data.Code)
	assert.Equal(suite.T(), models.UnitVacant, unit.Data.Status)
	assert.True(suite.T(), decimal.NewFromFloat(1250.5).Equal(unit.Data.AreaSqft))
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/floors/%d", f.FloorID), unit.Data.Links.Floor)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/leases?unit_id=%d", unit.Data.ID), unit.Data.Links.Leases)
}

func (suite *TestSuiteStandard) TestUnitCreateFails() {
	f := createTestFixture(suite.T())
	other := createTestTower(suite.T(), f.OrganizationID, v1.TowerEditable{})
	otherFloor := createTestFloor(suite.T(), f.OrganizationID, other.Data.ID, v1.FloorEditable{})

	foreign := createTestOrganization(suite.T(), v1.OrganizationEditable{})
	foreignTower := createTestTower(suite.T(), foreign.Data.ID, v1.TowerEditable{})
	foreignFloor := createTestFloor(suite.T(), foreign.Data.ID, foreignTower.Data.ID, v1.FloorEditable{})

	tests := []struct {
		name     string
		editable v1.UnitEditable
		status   int
	}{
		{"Duplicate code", v1.UnitEditable{Code: "T1-0001", TowerID: f.TowerID, FloorID: f.FloorID}, http.StatusBadRequest},
		{"Negative area", v1.UnitEditable{TowerID: f.TowerID, FloorID: f.FloorID, AreaSqft: decimal.NewFromInt(-1)}, http.StatusBadRequest},
		{"Invalid status", v1.UnitEditable{TowerID: f.TowerID, FloorID: f.FloorID, Status: "DEMOLISHED"}, http.StatusBadRequest},
		{"No tower", v1.UnitEditable{FloorID: f.FloorID}, http.StatusBadRequest},
		{"Floor of other tower", v1.UnitEditable{TowerID: f.TowerID, FloorID: otherFloor.Data.ID}, http.StatusNotFound},
		{"Tower of other organization", v1.UnitEditable{TowerID: foreignTower.Data.ID, FloorID: foreignFloor.Data.ID}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			createTestUnit(t, f.OrganizationID, tt.editable, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestUnitCustomFields() {
	f := createTestFixture(suite.T())
	createTestFieldDefinition(suite.T(), f.OrganizationID, v1.FieldDefinitionEditable{
		Entity:  "unit",
		Key:     "facing",
		Kind:    formschema.KindSelect,
		Options: []string{"North", "South"},
	})
	createTestFieldDefinition(suite.T(), f.OrganizationID, v1.FieldDefinitionEditable{
		Entity: "unit",
		Key:    "carpet_area",
		Kind:   formschema.KindNumber,
	})

	unit := createTestUnit(suite.T(), f.OrganizationID, v1.UnitEditable{
		TowerID:      f.TowerID,
		FloorID:      f.FloorID,
		CustomFields: map[string]any{"facing": "North", "carpet_area": 980},
	})
	assert.Equal(suite.T(), "North", unit.Data.CustomFields["facing"])
	assert.Equal(suite.T(), "980", unit.Data.CustomFields["carpet_area"])

	createTestUnit(suite.T(), f.OrganizationID, v1.UnitEditable{
		TowerID:      f.TowerID,
		FloorID:      f.FloorID,
		CustomFields: map[string]any{"facing": "East"},
	}, http.StatusBadRequest)

	// System fields are not custom fields
	createTestUnit(suite.T(), f.OrganizationID, v1.UnitEditable{
		TowerID:      f.TowerID,
		FloorID:      f.FloorID,
		CustomFields: map[string]any{"code": "T1-0009"},
	}, http.StatusBadRequest)

	r := test.Request(suite.T(), http.MethodPatch, unit.Data.Links.Self, map[string]any{"custom_fields": map[string]any{"facing": "South"}}, orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.UnitResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), map[string]any{"facing": "South"}, map[string]any(updated.Data.CustomFields))
}

func (suite *TestSuiteStandard) TestUnitsFilter() {
	f := createTestFixture(suite.T())
	upper := createTestFloor(suite.T(), f.OrganizationID, f.TowerID, v1.FloorEditable{Level: 1})
	createTestUnit(suite.T(), f.OrganizationID, v1.UnitEditable{Code: "T1-0101", TowerID: f.TowerID, FloorID: upper.Data.ID, Status: models.UnitOccupied})

	other := createTestTower(suite.T(), f.OrganizationID, v1.TowerEditable{})
	otherFloor := createTestFloor(suite.T(), f.OrganizationID, other.Data.ID, v1.FloorEditable{})
	createTestUnit(suite.T(), f.OrganizationID, v1.UnitEditable{Code: "T2-0001", TowerID: other.Data.ID, FloorID: otherFloor.Data.ID})

	tests := []struct {
		name    string
		query   string
		headers map[string]string
		codes   []string
	}{
		{"All", "", orgHeaders(f.OrganizationID), []string{"T1-0001", "T1-0101", "T2-0001"}},
		{"Code", "code=T1", orgHeaders(f.OrganizationID), []string{"T1-0001", "T1-0101"}},
		{"Tower", fmt.Sprintf("tower_id=%d", other.Data.ID), orgHeaders(f.OrganizationID), []string{"T2-0001"}},
		{"Floor", fmt.Sprintf("floor_id=%d", upper.Data.ID), orgHeaders(f.OrganizationID), []string{"T1-0101"}},
		{"Status", "status=VACANT", orgHeaders(f.OrganizationID), []string{"T1-0001", "T2-0001"}},
		{"Tower scope", "", towerHeaders(f.OrganizationID, other.Data.ID), []string{"T2-0001"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/units?%s", tt.query), "", tt.headers)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var list v1.UnitListResponse
			test.DecodeResponse(t, &r, &list)

			codes := []string{}
			for _, u := range list.Data {
				codes = append(codes, u.Code)
			}
			assert.Equal(t, tt.codes, codes)
		})
	}
}

func (suite *TestSuiteStandard) TestUnitTowerScope() {
	f := createTestFixture(suite.T())
	other := createTestTower(suite.T(), f.OrganizationID, v1.TowerEditable{})
	otherFloor := createTestFloor(suite.T(), f.OrganizationID, other.Data.ID, v1.FloorEditable{})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/units", []v1.UnitEditable{{
		Code:     "T2-0001",
		TowerID:  other.Data.ID,
		FloorID:  otherFloor.Data.ID,
		AreaSqft: decimal.NewFromInt(500),
	}}, towerHeaders(f.OrganizationID, f.TowerID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Equal(suite.T(), "the resource is outside of the tower in the request scope", test.DecodeError(suite.T(), r.Body.Bytes()))

	// Units cannot be moved out of the tower of the scope
	r = test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/units/%d", f.UnitID), map[string]any{"tower_id": other.Data.ID, "floor_id": otherFloor.Data.ID}, towerHeaders(f.OrganizationID, f.TowerID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUnitUpdateAndDelete() {
	f := createTestFixture(suite.T())
	upper := createTestFloor(suite.T(), f.OrganizationID, f.TowerID, v1.FloorEditable{Level: 1})
	url := fmt.Sprintf("http://example.com/v1/units/%d", f.UnitID)

	r := test.Request(suite.T(), http.MethodPatch, url, map[string]any{"floor_id": upper.Data.ID, "status": "OCCUPIED"}, orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.UnitResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), upper.Data.ID, updated.Data.FloorID)
	assert.Equal(suite.T(), models.UnitOccupied, updated.Data.Status)
	assert.Equal(suite.T(), "T1-0001", updated.Data.Code)

	// The unit is leased
	r = test.Request(suite.T(), http.MethodDelete, url, "", orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	unit := createTestUnit(suite.T(), f.OrganizationID, v1.UnitEditable{TowerID: f.TowerID, FloorID: f.FloorID})
	r = test.Request(suite.T(), http.MethodDelete, unit.Data.Links.Self, "", orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}
