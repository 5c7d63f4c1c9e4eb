package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leasedesk/backend/internal/formschema"
	"github.com/leasedesk/backend/internal/httputil"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/scope"
	"github.com/leasedesk/backend/internal/types"
	"golang.org/x/exp/slices"
)

func RegisterLeaseRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsLeases)
		r.GET("", GetLeases)
		r.POST("", CreateLeases)
	}
	{
		r.OPTIONS("/:id", OptionsLeaseDetail)
		r.GET("/:id", GetLease)
		r.PATCH("/:id", UpdateLease)
		r.DELETE("/:id", DeleteLease)
	}
}

// unitInScope verifies that the unit exists in the request scope.
func unitInScope(s scope.Scope, unitID uint64) error {
	return unitsQuery(s).First(&models.Unit{}, "units.id = ?", unitID).Error
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Leases
// @Success		204
// @Router			/v1/leases [options]
func OptionsLeases(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Leases
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/leases/{id} [options]
func OptionsLeaseDetail(c *gin.Context) {
	resourceOptionsDetail[models.Lease](c, leasesQuery(scope.FromContext(c)), "leases")
}

// @Summary		Create leases
// @Description	Creates new leases. Custom field values are validated against the lease form of the organization.
// @Tags			Leases
// @Produce		json
// @Success		201			{object}	LeaseCreateResponse
// @Failure		400			{object}	LeaseCreateResponse
// @Failure		404			{object}	LeaseCreateResponse
// @Failure		500			{object}	LeaseCreateResponse
// @Param			X-Org-ID	header		int				true	"Organization ID"
// @Param			leases		body		[]LeaseEditable	true	"Leases"
// @Router			/v1/leases [post]
func CreateLeases(c *gin.Context) {
	var leases []LeaseEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &leases)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LeaseCreateResponse{
			Error: &e,
		})
		return
	}

	s := scope.FromContext(c)

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := LeaseCreateResponse{}

	for _, create := range leases {
		lease, err := createLease(s, create)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newLease(c, lease)
		r.Data = append(r.Data, LeaseResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

func createLease(s scope.Scope, create LeaseEditable) (models.Lease, error) {
	err := unitInScope(s, create.UnitID)
	if err != nil {
		return models.Lease{}, err
	}

	create.CustomFields, err = customFields(s.OrganizationID, formschema.EntityLease, create.CustomFields)
	if err != nil {
		return models.Lease{}, err
	}

	lease := create.model(s.OrganizationID)
	err = models.DB.Create(&lease).Error
	if err != nil {
		return models.Lease{}, err
	}

	return lease, nil
}

// @Summary		Get leases
// @Description	Returns the leases in scope, ordered by start date
// @Tags			Leases
// @Produce		json
// @Success		200				{object}	LeaseListResponse
// @Failure		400				{object}	LeaseListResponse
// @Failure		500				{object}	LeaseListResponse
// @Router			/v1/leases [get]
// @Param			X-Org-ID		header	int		true	"Organization ID"
// @Param			X-Scope-Type	header	string	false	"ORG or TOWER"
// @Param			X-Scope-ID		header	int		false	"Tower ID for TOWER scopes"
// @Param			tenant_id		query	int		false	"Filter by tenant ID"
// @Param			unit_id			query	int		false	"Filter by unit ID"
// @Param			status			query	string	false	"Filter by status"
// @Param			active_on		query	string	false	"Leases running on this date, YYYY-MM-DD"
// @Param			offset			query	uint	false	"The offset of the first lease returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of leases to return. Defaults to 50."
func GetLeases(c *gin.Context) {
	var filter LeaseQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, LeaseListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()
	q := leasesQuery(scope.FromContext(c)).
		Order("leases.start_date ASC, leases.id ASC").
		Where(&where, queryFields...)

	if filter.ActiveOn != "" {
		date, err := types.ParseDate(filter.ActiveOn)
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, LeaseListResponse{
				Error: &s,
			})
			return
		}

		q = q.
			Where("leases.start_date <= ?", date).
			Where("leases.end_date IS NULL OR leases.end_date >= ?", date)
	}

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var leases []models.Lease
	err := q.Find(&leases).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LeaseListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LeaseListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Lease, 0, len(leases))
	for _, lease := range leases {
		data = append(data, newLease(c, lease))
	}

	c.JSON(http.StatusOK, LeaseListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get lease
// @Description	Returns a specific lease
// @Tags			Leases
// @Produce		json
// @Success		200			{object}	LeaseResponse
// @Failure		400			{object}	LeaseResponse
// @Failure		404			{object}	LeaseResponse
// @Failure		500			{object}	LeaseResponse
// @Param			X-Org-ID	header		int		true	"Organization ID"
// @Param			id			path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/leases/{id} [get]
func GetLease(c *gin.Context) {
	lease, ok := getResource[models.Lease](c, leasesQuery(scope.FromContext(c)), "leases")
	if !ok {
		return
	}

	apiResource := newLease(c, lease)
	c.JSON(http.StatusOK, LeaseResponse{Data: &apiResource})
}

// @Summary		Update lease
// @Description	Updates an existing lease. Only values to be updated need to be specified.
// @Tags			Leases
// @Accept			json
// @Produce		json
// @Success		200			{object}	LeaseResponse
// @Failure		400			{object}	LeaseResponse
// @Failure		404			{object}	LeaseResponse
// @Failure		500			{object}	LeaseResponse
// @Param			X-Org-ID	header		int				true	"Organization ID"
// @Param			id			path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			lease		body		LeaseEditable	true	"Lease"
// @Router			/v1/leases/{id} [patch]
func UpdateLease(c *gin.Context) {
	s := scope.FromContext(c)
	lease, ok := getResource[models.Lease](c, leasesQuery(s), "leases")
	if !ok {
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, LeaseEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LeaseResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data LeaseEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LeaseResponse{
			Error: &e,
		})
		return
	}

	if slices.Contains(updateFields, "UnitID") {
		err = unitInScope(s, data.UnitID)
		if err != nil {
			writeError(c, err)
			return
		}
	}

	if slices.Contains(updateFields, "CustomFields") {
		data.CustomFields, err = customFields(s.OrganizationID, formschema.EntityLease, data.CustomFields)
		if err != nil {
			writeError(c, err)
			return
		}
	}

	err = models.DB.Model(&lease).Select("", updateFields...).Updates(data.model(s.OrganizationID)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LeaseResponse{
			Error: &e,
		})
		return
	}

	apiResource := newLease(c, lease)
	c.JSON(http.StatusOK, LeaseResponse{Data: &apiResource})
}

// @Summary		Delete lease
// @Description	Deletes a lease. Leases with invoices cannot be deleted.
// @Tags			Leases
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			X-Org-ID	header		int		true	"Organization ID"
// @Param			id			path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/leases/{id} [delete]
func DeleteLease(c *gin.Context) {
	lease, ok := getResource[models.Lease](c, leasesQuery(scope.FromContext(c)), "leases")
	if !ok {
		return
	}

	err := models.DB.Delete(&lease).Error
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
