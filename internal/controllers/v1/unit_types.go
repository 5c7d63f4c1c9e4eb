package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/types"
	"github.com/shopspring/decimal"
)

type UnitEditable struct {
	Code         string            `json:"code" example:"T1-0402" default:""`                                          // Code of the unit, unique in the organization
	TowerID      uint64            `json:"tower_id" example:"3"`                                                       // ID of the tower the unit is in
	FloorID      uint64            `json:"floor_id" example:"8"`                                                       // ID of the floor the unit is on. Must be a floor of the tower
	AreaSqft     decimal.Decimal   `json:"area_sqft" example:"1250.5" minimum:"0" multipleOf:"0.00000001" default:"0"` // Leasable area in square feet
	Status       models.UnitStatus `json:"status" example:"VACANT" enums:"VACANT,OCCUPIED" default:"VACANT"`           // Occupancy status
	CustomFields types.Values      `json:"custom_fields"`                                                              // Values of the custom fields defined for units
}

func (editable UnitEditable) model(organizationID uint64) models.Unit {
	return models.Unit{
		OrganizationID: organizationID,
		Code:           editable.Code,
		TowerID:        editable.TowerID,
		FloorID:        editable.FloorID,
		AreaSqft:       editable.AreaSqft,
		Status:         editable.Status,
		CustomFields:   editable.CustomFields,
	}
}

type UnitLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/units/17"`            // The unit itself
	Tower  string `json:"tower" example:"https://example.com/api/v1/towers/3"`           // The tower of the unit
	Floor  string `json:"floor" example:"https://example.com/api/v1/floors/8"`           // The floor of the unit
	Leases string `json:"leases" example:"https://example.com/api/v1/leases?unit_id=17"` // Leases for the unit
}

type Unit struct {
	models.DefaultModel
	OrganizationID uint64 `json:"organization_id" example:"1"` // ID of the organization the unit belongs to
	UnitEditable
	Links UnitLinks `json:"links"`
}

func newUnit(c *gin.Context, model models.Unit) Unit {
	url := c.GetString(string(models.DBContextURL))

	customFields := model.CustomFields
	if customFields == nil {
		customFields = types.Values{}
	}

	return Unit{
		DefaultModel:   model.DefaultModel,
		OrganizationID: model.OrganizationID,
		UnitEditable: UnitEditable{
			Code:         model.Code,
			TowerID:      model.TowerID,
			FloorID:      model.FloorID,
			AreaSqft:     model.AreaSqft,
			Status:       model.Status,
			CustomFields: customFields,
		},
		Links: UnitLinks{
			Self:   fmt.Sprintf("%s/v1/units/%d", url, model.ID),
			Tower:  fmt.Sprintf("%s/v1/towers/%d", url, model.TowerID),
			Floor:  fmt.Sprintf("%s/v1/floors/%d", url, model.FloorID),
			Leases: fmt.Sprintf("%s/v1/leases?unit_id=%d", url, model.ID),
		},
	}
}

type UnitListResponse struct {
	Data       []Unit      `json:"data"`                                                  // List of units
	Error      *string     `json:"error" example:"the unit status must be one of VACANT"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                            // Pagination information
}

type UnitCreateResponse struct {
	Error *string        `json:"error" example:"the unit code must be unique in the organization"` // The error, if any occurred
	Data  []UnitResponse `json:"data"`                                                             // List of created units
}

func (u *UnitCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	u.Data = append(u.Data, UnitResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type UnitResponse struct {
	Error *string `json:"error" example:"there is no unit matching your query"` // The error, if any occurred
	Data  *Unit   `json:"data"`                                                 // Data for the unit
}

type UnitQueryFilter struct {
	Code    string            `form:"code" filterField:"false"`   // By code
	TowerID uint64            `form:"tower_id"`                   // By tower
	FloorID uint64            `form:"floor_id"`                   // By floor
	Status  models.UnitStatus `form:"status"`                     // By status
	Offset  uint              `form:"offset" filterField:"false"` // The offset of the first unit returned. Defaults to 0.
	Limit   int               `form:"limit" filterField:"false"`  // Maximum number of units to return. Defaults to 50.
}

func (f UnitQueryFilter) model() models.Unit {
	return models.Unit{
		TowerID: f.TowerID,
		FloorID: f.FloorID,
		Status:  f.Status,
	}
}
