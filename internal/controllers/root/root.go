// Package root serves the entrypoint of the API.
package root

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leasedesk/backend/internal/httputil"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/scope"
)

type Response struct {
	Links   Links        `json:"links"`
	Scoping ScopeHeaders `json:"scoping"` // Headers every organization-owned request needs
}

type Links struct {
	Docs    string `json:"docs" example:"https://leasedesk.example.com/api/docs/index.html"` // Swagger API documentation
	Healthz string `json:"healthz" example:"https://leasedesk.example.com/api/healthz"`      // Liveness of the backend and its database
	Version string `json:"version" example:"https://leasedesk.example.com/api/version"`      // Build information
	Metrics string `json:"metrics" example:"https://leasedesk.example.com/api/metrics"`      // Prometheus metrics
	V1      string `json:"v1" example:"https://leasedesk.example.com/api/v1"`                // Resources of the v1 API
}

// ScopeHeaders names the headers that select the organization and tower a request works on.
type ScopeHeaders struct {
	Organization string       `json:"organization" example:"X-Org-ID"` // ID of the organization
	Type         string       `json:"type" example:"X-Scope-Type"`     // ORG or TOWER, defaults to ORG
	ID           string       `json:"id" example:"X-Scope-ID"`         // ID of the tower for TOWER scopes
	Types        []scope.Type `json:"types" example:"ORG,TOWER"`       // Allowed scope types
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		API root
// @Description	Entrypoint for the API, listing the top level endpoints and the scope headers
// @Tags			General
// @Success		200	{object}	Response
// @Router			/ [get]
func Get(c *gin.Context) {
	base := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Docs:    base + "/docs/index.html",
			Healthz: base + "/healthz",
			Version: base + "/version",
			Metrics: base + "/metrics",
			V1:      base + "/v1",
		},
		Scoping: ScopeHeaders{
			Organization: scope.HeaderOrganization,
			Type:         scope.HeaderType,
			ID:           scope.HeaderID,
			Types:        []scope.Type{scope.TypeOrganization, scope.TypeTower},
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
