package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/leasedesk/backend/internal/controllers/v1"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestTowers() {
	organization := createTestOrganization(suite.T(), v1.OrganizationEditable{})
	org := organization.Data.ID

	tower := createTestTower(suite.T(), org, v1.TowerEditable{Code: " T1 ", Name: "Tower One"})
	assert.Equal(suite.T(), "T1", tower.Data.Code)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/towers/%d/floors", tower.Data.ID), tower.Data.Links.Floors)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/units?tower_id=%d", tower.Data.ID), tower.Data.Links.Units)

	createTestTower(suite.T(), org, v1.TowerEditable{Code: "T2", Name: "Tower Two"})

	tests := []struct {
		name     string
		editable v1.TowerEditable
		err      error
	}{
		{"Duplicate code", v1.TowerEditable{Code: "T1"}, models.ErrTowerCodeNotUnique},
		{"Empty code", v1.TowerEditable{Code: "  "}, models.ErrCodeEmpty},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/towers", []v1.TowerEditable{tt.editable}, orgHeaders(org))
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Equal(t, tt.err.Error(), test.DecodeError(t, r.Body.Bytes()))
		})
	}

	// Tower codes are unique per organization only
	other := createTestOrganization(suite.T(), v1.OrganizationEditable{})
	createTestTower(suite.T(), other.Data.ID, v1.TowerEditable{Code: "T1"})

	for _, tt := range []struct {
		query string
		len   int
	}{
		{"", 2},
		{"code=T2", 1},
		{"name=Tower", 2},
		{"name=One", 1},
	} {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/towers?%s", tt.query), "", orgHeaders(org))
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var list v1.TowerListResponse
			test.DecodeResponse(t, &r, &list)
			assert.Len(t, list.Data, tt.len)
		})
	}

	r := test.Request(suite.T(), http.MethodPatch, tower.Data.Links.Self, map[string]any{"name": "Tower A"}, orgHeaders(org))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.TowerResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), "Tower A", updated.Data.Name)
	assert.Equal(suite.T(), "T1", updated.Data.Code)

	// Towers of other organizations are not found
	r = test.Request(suite.T(), http.MethodGet, tower.Data.Links.Self, "", orgHeaders(other.Data.ID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTowerScope() {
	f := createTestFixture(suite.T())
	other := createTestTower(suite.T(), f.OrganizationID, v1.TowerEditable{})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/towers", "", towerHeaders(f.OrganizationID, f.TowerID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.TowerListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	require.Len(suite.T(), list.Data, 1)
	assert.Equal(suite.T(), f.TowerID, list.Data[0].ID)

	r = test.Request(suite.T(), http.MethodGet, other.Data.Links.Self, "", towerHeaders(f.OrganizationID, f.TowerID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestFloors() {
	organization := createTestOrganization(suite.T(), v1.OrganizationEditable{})
	org := organization.Data.ID
	tower := createTestTower(suite.T(), org, v1.TowerEditable{})

	createTestFloor(suite.T(), org, tower.Data.ID, v1.FloorEditable{Name: "Second", Level: 2})
	ground := createTestFloor(suite.T(), org, tower.Data.ID, v1.FloorEditable{Name: "Ground", Level: 0})
	createTestFloor(suite.T(), org, tower.Data.ID, v1.FloorEditable{Name: "First", Level: 1})
	assert.Equal(suite.T(), tower.Data.Links.Self, ground.Data.Links.Tower)

	createTestFloor(suite.T(), org, tower.Data.ID, v1.FloorEditable{Name: "Ground"}, http.StatusBadRequest)
	createTestFloor(suite.T(), org, 9999, v1.FloorEditable{Name: "Ground"}, http.StatusNotFound)

	// Floor names are unique per tower only
	createTestFloor(suite.T(), org, createTestTower(suite.T(), org, v1.TowerEditable{}).Data.ID, v1.FloorEditable{Name: "Ground"})

	r := test.Request(suite.T(), http.MethodGet, tower.Data.Links.Floors, "", orgHeaders(org))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var floors v1.FloorListResponse
	test.DecodeResponse(suite.T(), &r, &floors)
	require.Len(suite.T(), floors.Data, 3)

	names := []string{}
	for _, f := range floors.Data {
		names = append(names, f.Name)
	}
	assert.Equal(suite.T(), []string{"Ground", "First", "Second"}, names, "floors are ordered by level")

	r = test.Request(suite.T(), http.MethodPatch, ground.Data.Links.Self, map[string]any{"name": "Lobby"}, orgHeaders(org))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var floor v1.FloorResponse
	test.DecodeResponse(suite.T(), &r, &floor)
	assert.Equal(suite.T(), "Lobby", floor.Data.Name)

	r = test.Request(suite.T(), http.MethodDelete, ground.Data.Links.Self, "", orgHeaders(org))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, ground.Data.Links.Self, "", orgHeaders(org))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTowerDelete() {
	f := createTestFixture(suite.T())
	tower := createTestTower(suite.T(), f.OrganizationID, v1.TowerEditable{})
	createTestFloor(suite.T(), f.OrganizationID, tower.Data.ID, v1.FloorEditable{})

	// Towers and floors with units cannot be deleted
	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/towers/%d", f.TowerID), "", orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Equal(suite.T(), models.ErrResourceInUse.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/floors/%d", f.FloorID), "", orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// Floors are deleted with their tower
	r = test.Request(suite.T(), http.MethodDelete, tower.Data.Links.Self, "", orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, tower.Data.Links.Floors, "", orgHeaders(f.OrganizationID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
