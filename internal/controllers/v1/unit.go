package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leasedesk/backend/internal/formschema"
	"github.com/leasedesk/backend/internal/httputil"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/scope"
	"golang.org/x/exp/slices"
)

func RegisterUnitRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsUnits)
		r.GET("", GetUnits)
		r.POST("", CreateUnits)
	}
	{
		r.OPTIONS("/:id", OptionsUnitDetail)
		r.GET("/:id", GetUnit)
		r.PATCH("/:id", UpdateUnit)
		r.DELETE("/:id", DeleteUnit)
	}
}

// inScope verifies that a tower is part of the request scope.
func inScope(s scope.Scope, towerID uint64) error {
	if s.Type == scope.TypeTower && s.ID != towerID {
		return errOutOfScope
	}
	return nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Units
// @Success		204
// @Router			/v1/units [options]
func OptionsUnits(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Units
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/units/{id} [options]
func OptionsUnitDetail(c *gin.Context) {
	resourceOptionsDetail[models.Unit](c, unitsQuery(scope.FromContext(c)), "units")
}

// @Summary		Create units
// @Description	Creates new units. Custom field values are validated against the unit form of the organization.
// @Tags			Units
// @Produce		json
// @Success		201			{object}	UnitCreateResponse
// @Failure		400			{object}	UnitCreateResponse
// @Failure		404			{object}	UnitCreateResponse
// @Failure		500			{object}	UnitCreateResponse
// @Param			X-Org-ID	header		int				true	"Organization ID"
// @Param			units		body		[]UnitEditable	true	"Units"
// @Router			/v1/units [post]
func CreateUnits(c *gin.Context) {
	var units []UnitEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &units)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UnitCreateResponse{
			Error: &e,
		})
		return
	}

	s := scope.FromContext(c)

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := UnitCreateResponse{}

	for _, create := range units {
		unit, err := createUnit(s, create)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newUnit(c, unit)
		r.Data = append(r.Data, UnitResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

func createUnit(s scope.Scope, create UnitEditable) (models.Unit, error) {
	err := inScope(s, create.TowerID)
	if err != nil {
		return models.Unit{}, err
	}

	create.CustomFields, err = customFields(s.OrganizationID, formschema.EntityUnit, create.CustomFields)
	if err != nil {
		return models.Unit{}, err
	}

	unit := create.model(s.OrganizationID)
	err = models.DB.Create(&unit).Error
	if err != nil {
		return models.Unit{}, err
	}

	return unit, nil
}

// @Summary		Get units
// @Description	Returns the units in scope, ordered by code
// @Tags			Units
// @Produce		json
// @Success		200				{object}	UnitListResponse
// @Failure		400				{object}	UnitListResponse
// @Failure		500				{object}	UnitListResponse
// @Router			/v1/units [get]
// @Param			X-Org-ID		header	int		true	"Organization ID"
// @Param			X-Scope-Type	header	string	false	"ORG or TOWER"
// @Param			X-Scope-ID		header	int		false	"Tower ID for TOWER scopes"
// @Param			code			query	string	false	"Filter by code"
// @Param			tower_id		query	int		false	"Filter by tower ID"
// @Param			floor_id		query	int		false	"Filter by floor ID"
// @Param			status			query	string	false	"Filter by status"
// @Param			offset			query	uint	false	"The offset of the first unit returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of units to return. Defaults to 50."
func GetUnits(c *gin.Context) {
	var filter UnitQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, UnitListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()
	q := unitsQuery(scope.FromContext(c)).
		Order("units.code ASC").
		Where(&where, queryFields...)

	q = likeFilter(q, setFields, "Code", "units.code", filter.Code)

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var units []models.Unit
	err := q.Find(&units).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UnitListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UnitListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Unit, 0, len(units))
	for _, unit := range units {
		data = append(data, newUnit(c, unit))
	}

	c.JSON(http.StatusOK, UnitListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get unit
// @Description	Returns a specific unit
// @Tags			Units
// @Produce		json
// @Success		200			{object}	UnitResponse
// @Failure		400			{object}	UnitResponse
// @Failure		404			{object}	UnitResponse
// @Failure		500			{object}	UnitResponse
// @Param			X-Org-ID	header		int		true	"Organization ID"
// @Param			id			path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/units/{id} [get]
func GetUnit(c *gin.Context) {
	unit, ok := getResource[models.Unit](c, unitsQuery(scope.FromContext(c)), "units")
	if !ok {
		return
	}

	apiResource := newUnit(c, unit)
	c.JSON(http.StatusOK, UnitResponse{Data: &apiResource})
}

// @Summary		Update unit
// @Description	Updates an existing unit. Only values to be updated need to be specified.
// @Tags			Units
// @Accept			json
// @Produce		json
// @Success		200			{object}	UnitResponse
// @Failure		400			{object}	UnitResponse
// @Failure		404			{object}	UnitResponse
// @Failure		500			{object}	UnitResponse
// @Param			X-Org-ID	header		int				true	"Organization ID"
// @Param			id			path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			unit		body		UnitEditable	true	"Unit"
// @Router			/v1/units/{id} [patch]
func UpdateUnit(c *gin.Context) {
	s := scope.FromContext(c)
	unit, ok := getResource[models.Unit](c, unitsQuery(s), "units")
	if !ok {
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, UnitEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UnitResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data UnitEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UnitResponse{
			Error: &e,
		})
		return
	}

	if slices.Contains(updateFields, "TowerID") {
		err = inScope(s, data.TowerID)
		if err != nil {
			writeError(c, err)
			return
		}
	}

	if slices.Contains(updateFields, "CustomFields") {
		data.CustomFields, err = customFields(s.OrganizationID, formschema.EntityUnit, data.CustomFields)
		if err != nil {
			writeError(c, err)
			return
		}
	}

	err = models.DB.Model(&unit).Select("", updateFields...).Updates(data.model(s.OrganizationID)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UnitResponse{
			Error: &e,
		})
		return
	}

	apiResource := newUnit(c, unit)
	c.JSON(http.StatusOK, UnitResponse{Data: &apiResource})
}

// @Summary		Delete unit
// @Description	Deletes a unit. Units with leases cannot be deleted.
// @Tags			Units
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			X-Org-ID	header		int		true	"Organization ID"
// @Param			id			path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/units/{id} [delete]
func DeleteUnit(c *gin.Context) {
	unit, ok := getResource[models.Unit](c, unitsQuery(scope.FromContext(c)), "units")
	if !ok {
		return
	}

	err := models.DB.Delete(&unit).Error
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
