package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/leasedesk/backend/internal/models"
)

type TowerEditable struct {
	Code string `json:"code" example:"T1" default:""`        // Code of the tower, unique in the organization
	Name string `json:"name" example:"Tower One" default:""` // Name of the tower
}

func (editable TowerEditable) model(organizationID uint64) models.Tower {
	return models.Tower{
		OrganizationID: organizationID,
		Code:           editable.Code,
		Name:           editable.Name,
	}
}

type TowerLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/towers/3"`          // The tower itself
	Floors string `json:"floors" example:"https://example.com/api/v1/towers/3/floors"` // Floors of the tower
	Units  string `json:"units" example:"https://example.com/api/v1/units?tower_id=3"` // Units in the tower
}

type Tower struct {
	models.DefaultModel
	OrganizationID uint64 `json:"organization_id" example:"1"` // ID of the organization the tower belongs to
	TowerEditable
	Links TowerLinks `json:"links"`
}

func newTower(c *gin.Context, model models.Tower) Tower {
	url := c.GetString(string(models.DBContextURL))

	return Tower{
		DefaultModel:   model.DefaultModel,
		OrganizationID: model.OrganizationID,
		TowerEditable: TowerEditable{
			Code: model.Code,
			Name: model.Name,
		},
		Links: TowerLinks{
			Self:   fmt.Sprintf("%s/v1/towers/%d", url, model.ID),
			Floors: fmt.Sprintf("%s/v1/towers/%d/floors", url, model.ID),
			Units:  fmt.Sprintf("%s/v1/units?tower_id=%d", url, model.ID),
		},
	}
}

type TowerListResponse struct {
	Data       []Tower     `json:"data"`                                             // List of towers
	Error      *string     `json:"error" example:"the tower code must not be empty"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                       // Pagination information
}

type TowerCreateResponse struct {
	Error *string         `json:"error" example:"the tower code must be unique in the organization"` // The error, if any occurred
	Data  []TowerResponse `json:"data"`                                                              // List of created towers
}

func (t *TowerCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TowerResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TowerResponse struct {
	Error *string `json:"error" example:"there is no tower matching your query"` // The error, if any occurred
	Data  *Tower  `json:"data"`                                                  // Data for the tower
}

type TowerQueryFilter struct {
	Code   string `form:"code"`                       // By code
	Name   string `form:"name" filterField:"false"`   // By name
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first tower returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of towers to return. Defaults to 50.
}

func (f TowerQueryFilter) model() models.Tower {
	return models.Tower{
		Code: f.Code,
	}
}

type FloorEditable struct {
	Name  string `json:"name" example:"Ground" default:""` // Name of the floor, unique in the tower
	Level int    `json:"level" example:"0" default:"0"`    // Level of the floor, used for ordering
}

func (editable FloorEditable) model(towerID uint64) models.Floor {
	return models.Floor{
		TowerID: towerID,
		Name:    editable.Name,
		Level:   editable.Level,
	}
}

type FloorLinks struct {
	Self  string `json:"self" example:"https://example.com/api/v1/floors/8"`  // The floor itself
	Tower string `json:"tower" example:"https://example.com/api/v1/towers/3"` // The tower of the floor
}

type Floor struct {
	models.DefaultModel
	TowerID uint64 `json:"tower_id" example:"3"` // ID of the tower
	FloorEditable
	Links FloorLinks `json:"links"`
}

func newFloor(c *gin.Context, model models.Floor) Floor {
	url := c.GetString(string(models.DBContextURL))

	return Floor{
		DefaultModel: model.DefaultModel,
		TowerID:      model.TowerID,
		FloorEditable: FloorEditable{
			Name:  model.Name,
			Level: model.Level,
		},
		Links: FloorLinks{
			Self:  fmt.Sprintf("%s/v1/floors/%d", url, model.ID),
			Tower: fmt.Sprintf("%s/v1/towers/%d", url, model.TowerID),
		},
	}
}

type FloorListResponse struct {
	Data  []Floor `json:"data"`                                                  // Floors of the tower, ordered by level
	Error *string `json:"error" example:"there is no tower matching your query"` // The error, if any occurred
}

type FloorCreateResponse struct {
	Error *string         `json:"error" example:"the floor name must be unique in the tower"` // The error, if any occurred
	Data  []FloorResponse `json:"data"`                                                       // List of created floors
}

func (f *FloorCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	f.Data = append(f.Data, FloorResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type FloorResponse struct {
	Error *string `json:"error" example:"there is no floor matching your query"` // The error, if any occurred
	Data  *Floor  `json:"data"`                                                  // Data for the floor
}
