// Package v1 implements the REST API for organizations and everything they own.
package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leasedesk/backend/internal/httputil"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/scope"
)

// RegisterRoutes registers the routes for v1 with
// the RouterGroup that is passed.
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)

	RegisterOrganizationRoutes(r.Group("/organizations"))

	// All other resources belong to the organization of the request scope
	scoped := r.Group("", scope.Middleware())
	scoped.DELETE("", Cleanup)

	RegisterTowerRoutes(scoped.Group("/towers"))
	RegisterFloorRoutes(scoped.Group("/floors"))
	RegisterUnitRoutes(scoped.Group("/units"))
	RegisterTenantRoutes(scoped.Group("/tenants"))
	RegisterLeaseRoutes(scoped.Group("/leases"))
	RegisterBillingRuleRoutes(scoped.Group("/billing-rules"))
	RegisterBillingRoutes(scoped.Group("/billing"))
	RegisterFieldDefinitionRoutes(scoped.Group("/field-definitions"))
	RegisterFormRoutes(scoped.Group("/forms"))
	RegisterInvoiceRoutes(scoped.Group("/invoices"))
	RegisterPaymentRoutes(scoped.Group("/payments"))
	RegisterAgeingRoutes(scoped.Group("/ageing"))
}

type Links struct {
	Organizations    string `json:"organizations" example:"https://example.com/api/v1/organizations"`
	Towers           string `json:"towers" example:"https://example.com/api/v1/towers"`
	Units            string `json:"units" example:"https://example.com/api/v1/units"`
	Tenants          string `json:"tenants" example:"https://example.com/api/v1/tenants"`
	Leases           string `json:"leases" example:"https://example.com/api/v1/leases"`
	BillingRules     string `json:"billing_rules" example:"https://example.com/api/v1/billing-rules"`
	Billing          string `json:"billing" example:"https://example.com/api/v1/billing"`
	FieldDefinitions string `json:"field_definitions" example:"https://example.com/api/v1/field-definitions"`
	Forms            string `json:"forms" example:"https://example.com/api/v1/forms"`
	Invoices         string `json:"invoices" example:"https://example.com/api/v1/invoices"`
	Payments         string `json:"payments" example:"https://example.com/api/v1/payments"`
	Ageing           string `json:"ageing" example:"https://example.com/api/v1/ageing"`
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	Response
// @Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Organizations:    url + "/v1/organizations",
			Towers:           url + "/v1/towers",
			Units:            url + "/v1/units",
			Tenants:          url + "/v1/tenants",
			Leases:           url + "/v1/leases",
			BillingRules:     url + "/v1/billing-rules",
			Billing:          url + "/v1/billing",
			FieldDefinitions: url + "/v1/field-definitions",
			Forms:            url + "/v1/forms",
			Invoices:         url + "/v1/invoices",
			Payments:         url + "/v1/payments",
			Ageing:           url + "/v1/ageing",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
