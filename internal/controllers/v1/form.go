package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leasedesk/backend/internal/cache"
	"github.com/leasedesk/backend/internal/formschema"
	"github.com/leasedesk/backend/internal/httputil"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/scope"
)

func RegisterFormRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/:entity", OptionsForm)
		r.GET("/:entity", GetForm)
	}
	{
		r.OPTIONS("/:entity/validate", OptionsFormAction)
		r.POST("/:entity/validate", ValidateForm)
		r.OPTIONS("/:entity/cascade", OptionsFormAction)
		r.POST("/:entity/cascade", CascadeForm)
	}
}

// formSchema loads the form of the entity in the request path. If that fails,
// the error response is written and ok is false.
func formSchema(c *gin.Context) (schema formschema.Schema, ok bool) {
	var uri URIEntity
	err := c.ShouldBindUri(&uri)
	if err != nil {
		writeError(c, err)
		return schema, false
	}

	schema, err = models.FormSchema(models.DB, scope.FromContext(c).OrganizationID, uri.Entity)
	if err != nil {
		writeError(c, err)
		return schema, false
	}

	return schema, true
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Forms
// @Success		204
// @Param			entity	path	string	true	"Entity"	Enums(tenant, unit, lease)
// @Router			/v1/forms/{entity} [options]
func OptionsForm(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Forms
// @Success		204
// @Param			entity	path	string	true	"Entity"	Enums(tenant, unit, lease)
// @Router			/v1/forms/{entity}/validate [options]
// @Router			/v1/forms/{entity}/cascade [options]
func OptionsFormAction(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get form
// @Description	Returns the form of an entity: its system fields and the custom fields of the organization, grouped by category.
// @Description	TOWER_FLOOR fields list the towers of the organization with their floors.
// @Tags			Forms
// @Produce		json
// @Success		200			{object}	FormResponse
// @Failure		400			{object}	FormResponse
// @Failure		500			{object}	FormResponse
// @Param			X-Org-ID	header		int		true	"Organization ID"
// @Param			entity		path		string	true	"Entity"	Enums(tenant, unit, lease)
// @Router			/v1/forms/{entity} [get]
func GetForm(c *gin.Context) {
	var uri URIEntity
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ValidationError(err).Error()
		c.JSON(status(err), FormResponse{
			Error: &e,
		})
		return
	}

	organizationID := scope.FromContext(c).OrganizationID

	var categories []formschema.Category
	err = cache.Default.FetchJSON(c.Request.Context(), formsNamespace(organizationID), []string{uri.Entity}, &categories, func(context.Context) (any, error) {
		schema, err := models.FormSchema(models.DB, organizationID, uri.Entity)
		if err != nil {
			return nil, err
		}
		return schema.Categories(), nil
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FormResponse{
			Error: &e,
		})
		return
	}

	form := newForm(c, uri.Entity, categories)
	c.JSON(http.StatusOK, FormResponse{Data: &form})
}

// @Summary		Validate form values
// @Description	Validates values against the complete form of an entity and returns them normalized.
// @Description	Invalid values are reported per field.
// @Tags			Forms
// @Accept			json
// @Produce		json
// @Success		200			{object}	FormValuesResponse
// @Failure		400			{object}	fieldError
// @Failure		500			{object}	httpError
// @Param			X-Org-ID	header		int			true	"Organization ID"
// @Param			entity		path		string		true	"Entity"	Enums(tenant, unit, lease)
// @Param			values		body		FormValues	true	"Values"
// @Router			/v1/forms/{entity}/validate [post]
func ValidateForm(c *gin.Context) {
	schema, ok := formSchema(c)
	if !ok {
		return
	}

	var data FormValues
	err := httputil.BindData(c, &data)
	if err != nil {
		writeError(c, err)
		return
	}

	values, err := schema.Validate(data.Values)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, FormValuesResponse{Data: &FormValues{Values: values}})
}

// @Summary		Select tower or floor
// @Description	Applies a tower or floor selection to a TOWER_FLOOR field and returns the resulting values
// @Description	together with the floors that can be selected. Selecting a different tower clears the floor.
// @Tags			Forms
// @Accept			json
// @Produce		json
// @Success		200			{object}	FormCascadeResponse
// @Failure		400			{object}	FormCascadeResponse
// @Failure		500			{object}	FormCascadeResponse
// @Param			X-Org-ID	header		int			true	"Organization ID"
// @Param			entity		path		string		true	"Entity"	Enums(tenant, unit, lease)
// @Param			selection	body		FormCascade	true	"Selection"
// @Router			/v1/forms/{entity}/cascade [post]
func CascadeForm(c *gin.Context) {
	schema, ok := formSchema(c)
	if !ok {
		return
	}

	var data FormCascade
	err := httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FormCascadeResponse{
			Error: &e,
		})
		return
	}

	field, ok := schema.Field(data.Key)
	if !ok || field.Kind() != formschema.KindTowerFloor {
		e := errCascadeKey.Error()
		c.JSON(http.StatusBadRequest, FormCascadeResponse{
			Error: &e,
		})
		return
	}

	state := schema.NewState(data.Values)

	if data.TowerID != nil {
		err = state.SelectTower(data.Key, *data.TowerID)
	}

	if err == nil && data.FloorID != nil {
		err = state.SelectFloor(data.Key, *data.FloorID)
	}

	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, FormCascadeResponse{
			Error: &e,
		})
		return
	}

	floors := state.FloorOptions(data.Key)
	if floors == nil {
		floors = []formschema.Floor{}
	}

	c.JSON(http.StatusOK, FormCascadeResponse{Data: &FormCascadeResult{
		Values:       state.Values(),
		FloorOptions: floors,
	}})
}
