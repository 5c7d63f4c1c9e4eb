package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leasedesk/backend/internal/formschema"
	"github.com/leasedesk/backend/internal/httputil"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/scope"
	"github.com/leasedesk/backend/internal/types"
	"golang.org/x/exp/slices"
)

func RegisterTenantRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsTenants)
		r.GET("", GetTenants)
		r.POST("", CreateTenants)
	}
	{
		r.OPTIONS("/:id", OptionsTenantDetail)
		r.GET("/:id", GetTenant)
		r.PATCH("/:id", UpdateTenant)
		r.DELETE("/:id", DeleteTenant)
	}
	{
		r.OPTIONS("/:id/activity", OptionsTenantActivity)
		r.GET("/:id/activity", GetTenantActivity)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Tenants
// @Success		204
// @Router			/v1/tenants [options]
func OptionsTenants(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Tenants
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/tenants/{id} [options]
func OptionsTenantDetail(c *gin.Context) {
	resourceOptionsDetail[models.Tenant](c, tenantsQuery(scope.FromContext(c)), "tenants")
}

// @Summary		Create tenants
// @Description	Creates new tenants. Custom field values are validated against the tenant form of the organization.
// @Tags			Tenants
// @Produce		json
// @Success		201			{object}	TenantCreateResponse
// @Failure		400			{object}	TenantCreateResponse
// @Failure		404			{object}	TenantCreateResponse
// @Failure		500			{object}	TenantCreateResponse
// @Param			X-Org-ID	header		int					true	"Organization ID"
// @Param			tenants		body		[]TenantEditable	true	"Tenants"
// @Router			/v1/tenants [post]
func CreateTenants(c *gin.Context) {
	var tenants []TenantEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &tenants)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TenantCreateResponse{
			Error: &e,
		})
		return
	}

	s := scope.FromContext(c)

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := TenantCreateResponse{}

	for _, create := range tenants {
		create.CustomFields, err = customFields(s.OrganizationID, formschema.EntityTenant, create.CustomFields)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		tenant := create.model(s.OrganizationID)
		err = models.DB.Create(&tenant).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newTenant(c, tenant)
		r.Data = append(r.Data, TenantResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get tenants
// @Description	Returns the tenants of the organization, ordered by name
// @Tags			Tenants
// @Produce		json
// @Success		200			{object}	TenantListResponse
// @Failure		400			{object}	TenantListResponse
// @Failure		500			{object}	TenantListResponse
// @Router			/v1/tenants [get]
// @Param			X-Org-ID	header	int		true	"Organization ID"
// @Param			name		query	string	false	"Filter by name"
// @Param			email		query	string	false	"Filter by email"
// @Param			gstin		query	string	false	"Filter by GSTIN"
// @Param			search		query	string	false	"Search for this text in name, email and phone"
// @Param			offset		query	uint	false	"The offset of the first tenant returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of tenants to return. Defaults to 50."
func GetTenants(c *gin.Context) {
	var filter TenantQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TenantListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()
	q := tenantsQuery(scope.FromContext(c)).
		Order("tenants.name ASC, tenants.id ASC").
		Where(&where, queryFields...)

	q = likeFilter(q, setFields, "Name", "tenants.name", filter.Name)
	q = likeFilter(q, setFields, "Email", "tenants.email", filter.Email)
	q = searchFilter(models.DB, q, filter.Search, "tenants.name", "tenants.email", "tenants.phone")

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var tenants []models.Tenant
	err := q.Find(&tenants).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TenantListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TenantListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Tenant, 0, len(tenants))
	for _, tenant := range tenants {
		data = append(data, newTenant(c, tenant))
	}

	c.JSON(http.StatusOK, TenantListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get tenant
// @Description	Returns a specific tenant
// @Tags			Tenants
// @Produce		json
// @Success		200			{object}	TenantResponse
// @Failure		400			{object}	TenantResponse
// @Failure		404			{object}	TenantResponse
// @Failure		500			{object}	TenantResponse
// @Param			X-Org-ID	header		int		true	"Organization ID"
// @Param			id			path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/tenants/{id} [get]
func GetTenant(c *gin.Context) {
	tenant, ok := getResource[models.Tenant](c, tenantsQuery(scope.FromContext(c)), "tenants")
	if !ok {
		return
	}

	apiResource := newTenant(c, tenant)
	c.JSON(http.StatusOK, TenantResponse{Data: &apiResource})
}

// @Summary		Update tenant
// @Description	Updates an existing tenant. Only values to be updated need to be specified.
// @Tags			Tenants
// @Accept			json
// @Produce		json
// @Success		200			{object}	TenantResponse
// @Failure		400			{object}	TenantResponse
// @Failure		404			{object}	TenantResponse
// @Failure		500			{object}	TenantResponse
// @Param			X-Org-ID	header		int				true	"Organization ID"
// @Param			id			path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			tenant		body		TenantEditable	true	"Tenant"
// @Router			/v1/tenants/{id} [patch]
func UpdateTenant(c *gin.Context) {
	s := scope.FromContext(c)
	tenant, ok := getResource[models.Tenant](c, tenantsQuery(s), "tenants")
	if !ok {
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, TenantEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TenantResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data TenantEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TenantResponse{
			Error: &e,
		})
		return
	}

	if slices.Contains(updateFields, "CustomFields") {
		data.CustomFields, err = customFields(s.OrganizationID, formschema.EntityTenant, data.CustomFields)
		if err != nil {
			writeError(c, err)
			return
		}
	}

	err = models.DB.Model(&tenant).Select("", updateFields...).Updates(data.model(s.OrganizationID)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TenantResponse{
			Error: &e,
		})
		return
	}

	apiResource := newTenant(c, tenant)
	c.JSON(http.StatusOK, TenantResponse{Data: &apiResource})
}

// @Summary		Delete tenant
// @Description	Deletes a tenant. Tenants with leases, invoices or payments cannot be deleted.
// @Tags			Tenants
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			X-Org-ID	header		int		true	"Organization ID"
// @Param			id			path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/tenants/{id} [delete]
func DeleteTenant(c *gin.Context) {
	tenant, ok := getResource[models.Tenant](c, tenantsQuery(scope.FromContext(c)), "tenants")
	if !ok {
		return
	}

	err := models.DB.Delete(&tenant).Error
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Tenants
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/tenants/{id}/activity [options]
func OptionsTenantActivity(c *gin.Context) {
	_, ok := getResource[models.Tenant](c, tenantsQuery(scope.FromContext(c)), "tenants")
	if !ok {
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get tenant activity
// @Description	Returns the issued invoices and the payments of a tenant in date order with the running balance
// @Tags			Tenants
// @Produce		json
// @Success		200			{object}	TenantActivityResponse
// @Failure		400			{object}	TenantActivityResponse
// @Failure		404			{object}	TenantActivityResponse
// @Failure		500			{object}	TenantActivityResponse
// @Param			X-Org-ID	header		int		true	"Organization ID"
// @Param			id			path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/tenants/{id}/activity [get]
func GetTenantActivity(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TenantActivityResponse{
			Error: &e,
		})
		return
	}

	entries, err := models.TenantActivity(models.DB, scope.FromContext(c).OrganizationID, uri.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TenantActivityResponse{
			Error: &e,
		})
		return
	}

	url := c.GetString(string(models.DBContextURL))

	data := make([]ActivityEntry, 0, len(entries))
	for _, entry := range entries {
		link := fmt.Sprintf("%s/v1/invoices/%d", url, entry.ID)
		if entry.Kind == models.ActivityPayment {
			link = fmt.Sprintf("%s/v1/payments/%d", url, entry.ID)
		}

		data = append(data, ActivityEntry{
			Kind:    entry.Kind,
			ID:      entry.ID,
			Number:  entry.Number,
			Date:    entry.Date,
			Debit:   types.NewMoney(entry.Debit),
			Credit:  types.NewMoney(entry.Credit),
			Balance: types.NewMoney(entry.Balance),
			Link:    link,
		})
	}

	c.JSON(http.StatusOK, TenantActivityResponse{Data: data})
}
