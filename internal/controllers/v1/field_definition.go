package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leasedesk/backend/internal/cache"
	"github.com/leasedesk/backend/internal/httputil"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/scope"
	"github.com/rs/zerolog/log"
)

func RegisterFieldDefinitionRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsFieldDefinitions)
		r.GET("", GetFieldDefinitions)
		r.POST("", CreateFieldDefinitions)
	}
	{
		r.OPTIONS("/:id", OptionsFieldDefinitionDetail)
		r.GET("/:id", GetFieldDefinition)
		r.PATCH("/:id", UpdateFieldDefinition)
		r.DELETE("/:id", DeleteFieldDefinition)
	}
}

// formsNamespace is the cache namespace of the rendered forms of an organization.
func formsNamespace(organizationID uint64) string {
	return fmt.Sprintf("forms:%d", organizationID)
}

// invalidateForms drops the cached forms of the organization.
func invalidateForms(c *gin.Context, organizationID uint64) {
	err := cache.Default.Invalidate(c.Request.Context(), formsNamespace(organizationID))
	if err != nil {
		log.Warn().Err(err).Uint64("organization", organizationID).Msg("could not invalidate cached forms")
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Field Definitions
// @Success		204
// @Router			/v1/field-definitions [options]
func OptionsFieldDefinitions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Field Definitions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/field-definitions/{id} [options]
func OptionsFieldDefinitionDetail(c *gin.Context) {
	resourceOptionsDetail[models.FieldDefinition](c, fieldDefinitionsQuery(scope.FromContext(c)), "field_definitions")
}

// @Summary		Create field definitions
// @Description	Adds custom fields to the forms of tenants, units or leases
// @Tags			Field Definitions
// @Produce		json
// @Success		201					{object}	FieldDefinitionCreateResponse
// @Failure		400					{object}	FieldDefinitionCreateResponse
// @Failure		404					{object}	FieldDefinitionCreateResponse
// @Failure		500					{object}	FieldDefinitionCreateResponse
// @Param			X-Org-ID			header		int							true	"Organization ID"
// @Param			fieldDefinitions	body		[]FieldDefinitionEditable	true	"Field definitions"
// @Router			/v1/field-definitions [post]
func CreateFieldDefinitions(c *gin.Context) {
	var editables []FieldDefinitionEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FieldDefinitionCreateResponse{
			Error: &e,
		})
		return
	}

	s := scope.FromContext(c)

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := FieldDefinitionCreateResponse{}

	for _, create := range editables {
		definition := create.model(s.OrganizationID)

		err = models.DB.Create(&definition).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newFieldDefinition(c, definition)
		r.Data = append(r.Data, FieldDefinitionResponse{Data: &apiResource})
	}

	invalidateForms(c, s.OrganizationID)
	c.JSON(status, r)
}

// @Summary		Get field definitions
// @Description	Returns the custom fields of the organization, ordered by entity and position
// @Tags			Field Definitions
// @Produce		json
// @Success		200			{object}	FieldDefinitionListResponse
// @Failure		400			{object}	FieldDefinitionListResponse
// @Failure		500			{object}	FieldDefinitionListResponse
// @Router			/v1/field-definitions [get]
// @Param			X-Org-ID	header	int		true	"Organization ID"
// @Param			entity		query	string	false	"Filter by entity"
// @Param			kind		query	string	false	"Filter by kind"
// @Param			category	query	string	false	"Filter by category"
// @Param			offset		query	uint	false	"The offset of the first field definition returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of field definitions to return. Defaults to 50."
func GetFieldDefinitions(c *gin.Context) {
	var filter FieldDefinitionQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, FieldDefinitionListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()
	q := fieldDefinitionsQuery(scope.FromContext(c)).
		Order("field_definitions.entity ASC, field_definitions.position ASC, field_definitions.id ASC").
		Where(&where, queryFields...)

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var definitions []models.FieldDefinition
	err := q.Find(&definitions).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FieldDefinitionListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FieldDefinitionListResponse{
			Error: &e,
		})
		return
	}

	data := make([]FieldDefinition, 0, len(definitions))
	for _, definition := range definitions {
		data = append(data, newFieldDefinition(c, definition))
	}

	c.JSON(http.StatusOK, FieldDefinitionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get field definition
// @Description	Returns a specific field definition
// @Tags			Field Definitions
// @Produce		json
// @Success		200			{object}	FieldDefinitionResponse
// @Failure		400			{object}	FieldDefinitionResponse
// @Failure		404			{object}	FieldDefinitionResponse
// @Failure		500			{object}	FieldDefinitionResponse
// @Param			X-Org-ID	header		int		true	"Organization ID"
// @Param			id			path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/field-definitions/{id} [get]
func GetFieldDefinition(c *gin.Context) {
	definition, ok := getResource[models.FieldDefinition](c, fieldDefinitionsQuery(scope.FromContext(c)), "field_definitions")
	if !ok {
		return
	}

	apiResource := newFieldDefinition(c, definition)
	c.JSON(http.StatusOK, FieldDefinitionResponse{Data: &apiResource})
}

// @Summary		Update field definition
// @Description	Updates an existing field definition. Only values to be updated need to be specified.
// @Description	Values already stored for the field are not migrated.
// @Tags			Field Definitions
// @Accept			json
// @Produce		json
// @Success		200				{object}	FieldDefinitionResponse
// @Failure		400				{object}	FieldDefinitionResponse
// @Failure		404				{object}	FieldDefinitionResponse
// @Failure		500				{object}	FieldDefinitionResponse
// @Param			X-Org-ID		header		int						true	"Organization ID"
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			fieldDefinition	body		FieldDefinitionEditable	true	"Field definition"
// @Router			/v1/field-definitions/{id} [patch]
func UpdateFieldDefinition(c *gin.Context) {
	s := scope.FromContext(c)
	definition, ok := getResource[models.FieldDefinition](c, fieldDefinitionsQuery(s), "field_definitions")
	if !ok {
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, FieldDefinitionEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FieldDefinitionResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data FieldDefinitionEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FieldDefinitionResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&definition).Select("", updateFields...).Updates(data.model(s.OrganizationID)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FieldDefinitionResponse{
			Error: &e,
		})
		return
	}

	invalidateForms(c, s.OrganizationID)

	apiResource := newFieldDefinition(c, definition)
	c.JSON(http.StatusOK, FieldDefinitionResponse{Data: &apiResource})
}

// @Summary		Delete field definition
// @Description	Removes a custom field from its form. Stored values are kept.
// @Tags			Field Definitions
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			X-Org-ID	header		int		true	"Organization ID"
// @Param			id			path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/field-definitions/{id} [delete]
func DeleteFieldDefinition(c *gin.Context) {
	s := scope.FromContext(c)
	definition, ok := getResource[models.FieldDefinition](c, fieldDefinitionsQuery(s), "field_definitions")
	if !ok {
		return
	}

	err := models.DB.Delete(&definition).Error
	if err != nil {
		writeError(c, err)
		return
	}

	invalidateForms(c, s.OrganizationID)
	c.JSON(http.StatusNoContent, nil)
}
