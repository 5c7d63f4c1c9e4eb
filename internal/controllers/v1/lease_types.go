package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/types"
)

type LeaseEditable struct {
	TenantID     uint64             `json:"tenant_id" example:"5"`                                              // ID of the tenant
	UnitID       uint64             `json:"unit_id" example:"17"`                                               // ID of the leased unit
	StartDate    types.Date         `json:"start_date" example:"2026-04-01"`                                    // First day of the lease
	EndDate      types.Date         `json:"end_date" example:"2029-03-31"`                                      // Last day of the lease, null for open-ended leases
	MonthlyRent  types.Money        `json:"monthly_rent" example:"85000.00" swaggertype:"string"`               // Rent per month
	CAMRate      types.Money        `json:"cam_rate" example:"12.50" swaggertype:"string"`                      // Common area maintenance charge per square foot and month
	Status       models.LeaseStatus `json:"status" example:"ACTIVE" enums:"ACTIVE,TERMINATED" default:"ACTIVE"` // Status of the lease
	CustomFields types.Values       `json:"custom_fields"`                                                      // Values of the custom fields defined for leases
}

func (editable LeaseEditable) model(organizationID uint64) models.Lease {
	return models.Lease{
		OrganizationID: organizationID,
		TenantID:       editable.TenantID,
		UnitID:         editable.UnitID,
		StartDate:      editable.StartDate,
		EndDate:        editable.EndDate,
		MonthlyRent:    editable.MonthlyRent.Decimal,
		CAMRate:        editable.CAMRate.Decimal,
		Status:         editable.Status,
		CustomFields:   editable.CustomFields,
	}
}

type LeaseLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/leases/9"`
	Tenant   string `json:"tenant" example:"https://example.com/api/v1/tenants/5"`
	Unit     string `json:"unit" example:"https://example.com/api/v1/units/17"`
	Invoices string `json:"invoices" example:"https://example.com/api/v1/invoices?lease_id=9"`
}

type Lease struct {
	models.DefaultModel
	OrganizationID uint64 `json:"organization_id" example:"1"` // ID of the organization the lease belongs to
	LeaseEditable
	Links LeaseLinks `json:"links"`
}

func newLease(c *gin.Context, model models.Lease) Lease {
	url := c.GetString(string(models.DBContextURL))

	customFields := model.CustomFields
	if customFields == nil {
		customFields = types.Values{}
	}

	return Lease{
		DefaultModel:   model.DefaultModel,
		OrganizationID: model.OrganizationID,
		LeaseEditable: LeaseEditable{
			TenantID:     model.TenantID,
			UnitID:       model.UnitID,
			StartDate:    model.StartDate,
			EndDate:      model.EndDate,
			MonthlyRent:  types.NewMoney(model.MonthlyRent),
			CAMRate:      types.NewMoney(model.CAMRate),
			Status:       model.Status,
			CustomFields: customFields,
		},
		Links: LeaseLinks{
			Self:     fmt.Sprintf("%s/v1/leases/%d", url, model.ID),
			Tenant:   fmt.Sprintf("%s/v1/tenants/%d", url, model.TenantID),
			Unit:     fmt.Sprintf("%s/v1/units/%d", url, model.UnitID),
			Invoices: fmt.Sprintf("%s/v1/invoices?lease_id=%d", url, model.ID),
		},
	}
}

type LeaseListResponse struct {
	Data       []Lease     `json:"data"`                                             // List of leases
	Error      *string     `json:"error" example:"the lease start date must be set"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                       // Pagination information
}

type LeaseCreateResponse struct {
	Error *string         `json:"error" example:"the lease start date must be set"` // The error, if any occurred
	Data  []LeaseResponse `json:"data"`                                             // List of created leases
}

func (l *LeaseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	l.Data = append(l.Data, LeaseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type LeaseResponse struct {
	Error *string `json:"error" example:"there is no lease matching your query"` // The error, if any occurred
	Data  *Lease  `json:"data"`                                                  // Data for the lease
}

type LeaseQueryFilter struct {
	TenantID uint64             `form:"tenant_id"`                     // By tenant
	UnitID   uint64             `form:"unit_id"`                       // By unit
	Status   models.LeaseStatus `form:"status"`                        // By status
	ActiveOn string             `form:"active_on" filterField:"false"` // Leases running on this date
	Offset   uint               `form:"offset" filterField:"false"`    // The offset of the first lease returned. Defaults to 0.
	Limit    int                `form:"limit" filterField:"false"`     // Maximum number of leases to return. Defaults to 50.
}

func (f LeaseQueryFilter) model() models.Lease {
	return models.Lease{
		TenantID: f.TenantID,
		UnitID:   f.UnitID,
		Status:   f.Status,
	}
}
