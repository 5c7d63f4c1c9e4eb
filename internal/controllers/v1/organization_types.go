package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/leasedesk/backend/internal/models"
)

type OrganizationEditable struct {
	Name     string `json:"name" example:"Prestige Estates" default:""` // Name of the organization
	Locale   string `json:"locale" example:"en-IN" default:"en-IN"`     // BCP 47 language tag used for formatting
	Currency string `json:"currency" example:"INR" default:""`          // ISO 4217 currency code. Derived from the locale when empty
}

// model returns the database resource for the API representation of the editable fields
func (editable OrganizationEditable) model() models.Organization {
	return models.Organization{
		Name:     editable.Name,
		Locale:   editable.Locale,
		Currency: editable.Currency,
	}
}

type OrganizationLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/organizations/1"` // The organization itself
}

type Organization struct {
	models.DefaultModel
	OrganizationEditable
	CurrencySymbol string            `json:"currency_symbol" example:"₹"` // Symbol of the currency in the organization's locale
	Links          OrganizationLinks `json:"links"`
}

func newOrganization(c *gin.Context, model models.Organization) Organization {
	url := c.GetString(string(models.DBContextURL))

	return Organization{
		DefaultModel: model.DefaultModel,
		OrganizationEditable: OrganizationEditable{
			Name:     model.Name,
			Locale:   model.Locale,
			Currency: model.Currency,
		},
		CurrencySymbol: model.Symbol(),
		Links: OrganizationLinks{
			Self: fmt.Sprintf("%s/v1/organizations/%d", url, model.ID),
		},
	}
}

type OrganizationListResponse struct {
	Data       []Organization `json:"data"`                                                 // List of organizations
	Error      *string        `json:"error" example:"the organization name must be unique"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                           // Pagination information
}

type OrganizationCreateResponse struct {
	Error *string                `json:"error" example:"the organization name must be unique"` // The error, if any occurred
	Data  []OrganizationResponse `json:"data"`                                                 // List of created organizations
}

func (o *OrganizationCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	o.Data = append(o.Data, OrganizationResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type OrganizationResponse struct {
	Error *string       `json:"error" example:"there is no organization matching your query"` // The error, if any occurred
	Data  *Organization `json:"data"`                                                         // Data for the organization
}

type OrganizationQueryFilter struct {
	Name     string `form:"name" filterField:"false"`   // By name
	Currency string `form:"currency"`                   // By currency
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first organization returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of organizations to return. Defaults to 50.
}

func (f OrganizationQueryFilter) model() models.Organization {
	return models.Organization{
		Currency: f.Currency,
	}
}
