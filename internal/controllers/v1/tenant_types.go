package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/types"
)

type TenantEditable struct {
	Name         string       `json:"name" example:"Acme Retail Pvt Ltd" default:""`    // Name of the tenant
	Email        string       `json:"email" example:"accounts@acme.example" default:""` // Billing email address
	Phone        string       `json:"phone" example:"+91 80 4000 1234" default:""`      // Phone number
	GSTIN        string       `json:"gstin" example:"29ABCDE1234F1Z5" default:""`       // GST identification number
	CustomFields types.Values `json:"custom_fields"`                                    // Values of the custom fields defined for tenants
}

func (editable TenantEditable) model(organizationID uint64) models.Tenant {
	return models.Tenant{
		OrganizationID: organizationID,
		Name:           editable.Name,
		Email:          editable.Email,
		Phone:          editable.Phone,
		GSTIN:          editable.GSTIN,
		CustomFields:   editable.CustomFields,
	}
}

type TenantLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/tenants/5"`
	Leases   string `json:"leases" example:"https://example.com/api/v1/leases?tenant_id=5"`
	Invoices string `json:"invoices" example:"https://example.com/api/v1/invoices?tenant_id=5"`
	Payments string `json:"payments" example:"https://example.com/api/v1/payments?tenant_id=5"`
	Activity string `json:"activity" example:"https://example.com/api/v1/tenants/5/activity"`
}

type Tenant struct {
	models.DefaultModel
	OrganizationID uint64 `json:"organization_id" example:"1"` // ID of the organization the tenant belongs to
	TenantEditable
	Links TenantLinks `json:"links"`
}

func newTenant(c *gin.Context, model models.Tenant) Tenant {
	url := c.GetString(string(models.DBContextURL))

	customFields := model.CustomFields
	if customFields == nil {
		customFields = types.Values{}
	}

	return Tenant{
		DefaultModel:   model.DefaultModel,
		OrganizationID: model.OrganizationID,
		TenantEditable: TenantEditable{
			Name:         model.Name,
			Email:        model.Email,
			Phone:        model.Phone,
			GSTIN:        model.GSTIN,
			CustomFields: customFields,
		},
		Links: TenantLinks{
			Self:     fmt.Sprintf("%s/v1/tenants/%d", url, model.ID),
			Leases:   fmt.Sprintf("%s/v1/leases?tenant_id=%d", url, model.ID),
			Invoices: fmt.Sprintf("%s/v1/invoices?tenant_id=%d", url, model.ID),
			Payments: fmt.Sprintf("%s/v1/payments?tenant_id=%d", url, model.ID),
			Activity: fmt.Sprintf("%s/v1/tenants/%d/activity", url, model.ID),
		},
	}
}

type TenantListResponse struct {
	Data       []Tenant    `json:"data"`                                       // List of tenants
	Error      *string     `json:"error" example:"the name must not be empty"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                 // Pagination information
}

type TenantCreateResponse struct {
	Error *string          `json:"error" example:"the name must not be empty"` // The error, if any occurred
	Data  []TenantResponse `json:"data"`                                       // List of created tenants
}

func (t *TenantCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TenantResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TenantResponse struct {
	Error *string `json:"error" example:"there is no tenant matching your query"` // The error, if any occurred
	Data  *Tenant `json:"data"`                                                   // Data for the tenant
}

type TenantQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name
	Email  string `form:"email" filterField:"false"`  // By email
	GSTIN  string `form:"gstin"`                      // By exact GSTIN
	Search string `form:"search" filterField:"false"` // By string in name, email or phone
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first tenant returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of tenants to return. Defaults to 50.
}

func (f TenantQueryFilter) model() models.Tenant {
	return models.Tenant{
		GSTIN: f.GSTIN,
	}
}

// ActivityEntry is an invoice or a payment in the activity of a tenant.
type ActivityEntry struct {
	Kind    models.ActivityKind `json:"kind" example:"INVOICE" enums:"INVOICE,PAYMENT"` // Kind of the entry
	ID      uint64              `json:"id" example:"12"`                                // ID of the invoice or payment
	Number  string              `json:"number" example:"INV-2026-00012"`                // Invoice or receipt number
	Date    types.Date          `json:"date" example:"2026-10-01"`                      // Issue date for invoices, receipt date for payments
	Debit   types.Money         `json:"debit" example:"11800.00"`                       // Amount invoiced
	Credit  types.Money         `json:"credit" example:"0.00"`                          // Amount paid
	Balance types.Money         `json:"balance" example:"11800.00"`                     // Running balance after the entry
	Link    string              `json:"link" example:"https://example.com/api/v1/invoices/12"`
}

type TenantActivityResponse struct {
	Error *string         `json:"error" example:"there is no tenant matching your query"` // The error, if any occurred
	Data  []ActivityEntry `json:"data"`                                                   // Invoices and payments in date order
}
