package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leasedesk/backend/internal/httputil"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/scope"
)

func RegisterTowerRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsTowers)
		r.GET("", GetTowers)
		r.POST("", CreateTowers)
	}
	{
		r.OPTIONS("/:id", OptionsTowerDetail)
		r.GET("/:id", GetTower)
		r.PATCH("/:id", UpdateTower)
		r.DELETE("/:id", DeleteTower)
	}
	{
		r.OPTIONS("/:id/floors", OptionsTowerFloors)
		r.GET("/:id/floors", GetTowerFloors)
		r.POST("/:id/floors", CreateFloors)
	}
}

func RegisterFloorRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:id", OptionsFloorDetail)
	r.GET("/:id", GetFloor)
	r.PATCH("/:id", UpdateFloor)
	r.DELETE("/:id", DeleteFloor)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Towers
// @Success		204
// @Router			/v1/towers [options]
func OptionsTowers(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Towers
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/towers/{id} [options]
func OptionsTowerDetail(c *gin.Context) {
	resourceOptionsDetail[models.Tower](c, towersQuery(scope.FromContext(c)), "towers")
}

// @Summary		Create towers
// @Description	Creates new towers for the organization of the request
// @Tags			Towers
// @Produce		json
// @Success		201			{object}	TowerCreateResponse
// @Failure		400			{object}	TowerCreateResponse
// @Failure		404			{object}	TowerCreateResponse
// @Failure		500			{object}	TowerCreateResponse
// @Param			X-Org-ID	header		int				true	"Organization ID"
// @Param			towers		body		[]TowerEditable	true	"Towers"
// @Router			/v1/towers [post]
func CreateTowers(c *gin.Context) {
	var towers []TowerEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &towers)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TowerCreateResponse{
			Error: &e,
		})
		return
	}

	s := scope.FromContext(c)

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := TowerCreateResponse{}

	for _, create := range towers {
		tower := create.model(s.OrganizationID)
		err = models.DB.Create(&tower).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newTower(c, tower)
		r.Data = append(r.Data, TowerResponse{Data: &apiResource})
	}

	invalidateForms(c, s.OrganizationID)
	c.JSON(status, r)
}

// @Summary		Get towers
// @Description	Returns the towers in scope, ordered by code
// @Tags			Towers
// @Produce		json
// @Success		200			{object}	TowerListResponse
// @Failure		400			{object}	TowerListResponse
// @Failure		500			{object}	TowerListResponse
// @Router			/v1/towers [get]
// @Param			X-Org-ID	header	int		true	"Organization ID"
// @Param			code		query	string	false	"Filter by code"
// @Param			name		query	string	false	"Filter by name"
// @Param			offset		query	uint	false	"The offset of the first tower returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of towers to return. Defaults to 50."
func GetTowers(c *gin.Context) {
	var filter TowerQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TowerListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()
	q := towersQuery(scope.FromContext(c)).
		Order("towers.code ASC").
		Where(&where, queryFields...)

	q = likeFilter(q, setFields, "Name", "towers.name", filter.Name)

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var towers []models.Tower
	err := q.Find(&towers).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TowerListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TowerListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Tower, 0, len(towers))
	for _, tower := range towers {
		data = append(data, newTower(c, tower))
	}

	c.JSON(http.StatusOK, TowerListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get tower
// @Description	Returns a specific tower
// @Tags			Towers
// @Produce		json
// @Success		200			{object}	TowerResponse
// @Failure		400			{object}	TowerResponse
// @Failure		404			{object}	TowerResponse
// @Failure		500			{object}	TowerResponse
// @Param			X-Org-ID	header		int		true	"Organization ID"
// @Param			id			path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/towers/{id} [get]
func GetTower(c *gin.Context) {
	tower, ok := getResource[models.Tower](c, towersQuery(scope.FromContext(c)), "towers")
	if !ok {
		return
	}

	apiResource := newTower(c, tower)
	c.JSON(http.StatusOK, TowerResponse{Data: &apiResource})
}

// @Summary		Update tower
// @Description	Updates an existing tower. Only values to be updated need to be specified.
// @Tags			Towers
// @Accept			json
// @Produce		json
// @Success		200			{object}	TowerResponse
// @Failure		400			{object}	TowerResponse
// @Failure		404			{object}	TowerResponse
// @Failure		500			{object}	TowerResponse
// @Param			X-Org-ID	header		int				true	"Organization ID"
// @Param			id			path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			tower		body		TowerEditable	true	"Tower"
// @Router			/v1/towers/{id} [patch]
func UpdateTower(c *gin.Context) {
	s := scope.FromContext(c)
	tower, ok := getResource[models.Tower](c, towersQuery(s), "towers")
	if !ok {
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, TowerEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TowerResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data TowerEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TowerResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&tower).Select("", updateFields...).Updates(data.model(s.OrganizationID)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TowerResponse{
			Error: &e,
		})
		return
	}

	invalidateForms(c, s.OrganizationID)

	apiResource := newTower(c, tower)
	c.JSON(http.StatusOK, TowerResponse{Data: &apiResource})
}

// @Summary		Delete tower
// @Description	Deletes a tower with its floors. Towers with units cannot be deleted.
// @Tags			Towers
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			X-Org-ID	header		int		true	"Organization ID"
// @Param			id			path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/towers/{id} [delete]
func DeleteTower(c *gin.Context) {
	tower, ok := getResource[models.Tower](c, towersQuery(scope.FromContext(c)), "towers")
	if !ok {
		return
	}

	err := models.DB.Delete(&tower).Error
	if err != nil {
		writeError(c, err)
		return
	}

	invalidateForms(c, tower.OrganizationID)
	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Towers
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/towers/{id}/floors [options]
func OptionsTowerFloors(c *gin.Context) {
	_, ok := getResource[models.Tower](c, towersQuery(scope.FromContext(c)), "towers")
	if !ok {
		return
	}

	httputil.OptionsGetPost(c)
}

// @Summary		Get floors
// @Description	Returns the floors of a tower, ordered by level
// @Tags			Towers
// @Produce		json
// @Success		200			{object}	FloorListResponse
// @Failure		400			{object}	FloorListResponse
// @Failure		404			{object}	FloorListResponse
// @Failure		500			{object}	FloorListResponse
// @Param			X-Org-ID	header		int		true	"Organization ID"
// @Param			id			path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/towers/{id}/floors [get]
func GetTowerFloors(c *gin.Context) {
	tower, ok := getResource[models.Tower](c, towersQuery(scope.FromContext(c)), "towers")
	if !ok {
		return
	}

	var floors []models.Floor
	err := models.DB.
		Where(&models.Floor{TowerID: tower.ID}).
		Order("floors.level ASC, floors.name ASC").
		Find(&floors).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FloorListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Floor, 0, len(floors))
	for _, floor := range floors {
		data = append(data, newFloor(c, floor))
	}

	c.JSON(http.StatusOK, FloorListResponse{Data: data})
}

// @Summary		Create floors
// @Description	Creates new floors for a tower
// @Tags			Towers
// @Produce		json
// @Success		201			{object}	FloorCreateResponse
// @Failure		400			{object}	FloorCreateResponse
// @Failure		404			{object}	FloorCreateResponse
// @Failure		500			{object}	FloorCreateResponse
// @Param			X-Org-ID	header		int				true	"Organization ID"
// @Param			id			path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			floors		body		[]FloorEditable	true	"Floors"
// @Router			/v1/towers/{id}/floors [post]
func CreateFloors(c *gin.Context) {
	tower, ok := getResource[models.Tower](c, towersQuery(scope.FromContext(c)), "towers")
	if !ok {
		return
	}

	var floors []FloorEditable
	err := httputil.BindData(c, &floors)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FloorCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := FloorCreateResponse{}

	for _, create := range floors {
		floor := create.model(tower.ID)
		err = models.DB.Create(&floor).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newFloor(c, floor)
		r.Data = append(r.Data, FloorResponse{Data: &apiResource})
	}

	invalidateForms(c, tower.OrganizationID)
	c.JSON(status, r)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Floors
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/floors/{id} [options]
func OptionsFloorDetail(c *gin.Context) {
	resourceOptionsDetail[models.Floor](c, floorsQuery(scope.FromContext(c)), "floors")
}

// @Summary		Get floor
// @Description	Returns a specific floor
// @Tags			Floors
// @Produce		json
// @Success		200			{object}	FloorResponse
// @Failure		400			{object}	FloorResponse
// @Failure		404			{object}	FloorResponse
// @Failure		500			{object}	FloorResponse
// @Param			X-Org-ID	header		int		true	"Organization ID"
// @Param			id			path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/floors/{id} [get]
func GetFloor(c *gin.Context) {
	floor, ok := getResource[models.Floor](c, floorsQuery(scope.FromContext(c)), "floors")
	if !ok {
		return
	}

	apiResource := newFloor(c, floor)
	c.JSON(http.StatusOK, FloorResponse{Data: &apiResource})
}

// @Summary		Update floor
// @Description	Updates an existing floor. Only values to be updated need to be specified.
// @Tags			Floors
// @Accept			json
// @Produce		json
// @Success		200			{object}	FloorResponse
// @Failure		400			{object}	FloorResponse
// @Failure		404			{object}	FloorResponse
// @Failure		500			{object}	FloorResponse
// @Param			X-Org-ID	header		int				true	"Organization ID"
// @Param			id			path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			floor		body		FloorEditable	true	"Floor"
// @Router			/v1/floors/{id} [patch]
func UpdateFloor(c *gin.Context) {
	floor, ok := getResource[models.Floor](c, floorsQuery(scope.FromContext(c)), "floors")
	if !ok {
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, FloorEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FloorResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data FloorEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FloorResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&floor).Select("", updateFields...).Updates(data.model(floor.TowerID)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FloorResponse{
			Error: &e,
		})
		return
	}

	invalidateForms(c, scope.FromContext(c).OrganizationID)

	apiResource := newFloor(c, floor)
	c.JSON(http.StatusOK, FloorResponse{Data: &apiResource})
}

// @Summary		Delete floor
// @Description	Deletes a floor. Floors with units cannot be deleted.
// @Tags			Floors
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			X-Org-ID	header		int		true	"Organization ID"
// @Param			id			path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/floors/{id} [delete]
func DeleteFloor(c *gin.Context) {
	floor, ok := getResource[models.Floor](c, floorsQuery(scope.FromContext(c)), "floors")
	if !ok {
		return
	}

	err := models.DB.Delete(&floor).Error
	if err != nil {
		writeError(c, err)
		return
	}

	invalidateForms(c, scope.FromContext(c).OrganizationID)
	c.JSON(http.StatusNoContent, nil)
}
