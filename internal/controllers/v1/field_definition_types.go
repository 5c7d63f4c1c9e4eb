package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/leasedesk/backend/internal/formschema"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/types"
)

type FieldDefinitionEditable struct {
	Entity   string           `json:"entity" example:"tenant" enums:"tenant,unit,lease"`                               // Entity whose form the field is added to
	Key      string           `json:"key" example:"pan_number"`                                                        // Key of the value in custom_fields. Lowercase letters, digits and underscores
	Label    string           `json:"label" example:"PAN"`                                                             // Label shown in forms. Defaults to the key
	Category string           `json:"category" example:"Compliance" default:"General"`                                 // Category the field is grouped in
	Kind     formschema.Kind  `json:"kind" example:"TEXT" enums:"TEXT,NUMBER,DATE,SELECT,BOOL,ATTACHMENT,TOWER_FLOOR"` // Kind of the field
	Options  types.StringList `json:"options" swaggertype:"array,string" example:"Retail,Office"`                      // Options of SELECT fields
	Required bool             `json:"required" example:"false" default:"false"`                                        // If a value must be provided
	Position int              `json:"position" example:"120" default:"0"`                                              // Fields are sorted by position, system fields use multiples of 10
}

func (editable FieldDefinitionEditable) model(organizationID uint64) models.FieldDefinition {
	return models.FieldDefinition{
		OrganizationID: organizationID,
		Entity:         editable.Entity,
		Key:            editable.Key,
		Label:          editable.Label,
		Category:       editable.Category,
		Kind:           editable.Kind,
		Options:        editable.Options,
		Required:       editable.Required,
		Position:       editable.Position,
	}
}

type FieldDefinitionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/field-definitions/6"` // The field definition itself
	Form string `json:"form" example:"https://example.com/api/v1/forms/tenant"`        // The form the field is part of
}

type FieldDefinition struct {
	models.DefaultModel
	OrganizationID uint64 `json:"organization_id" example:"1"` // ID of the organization the field belongs to
	FieldDefinitionEditable
	Links FieldDefinitionLinks `json:"links"`
}

func newFieldDefinition(c *gin.Context, model models.FieldDefinition) FieldDefinition {
	url := c.GetString(string(models.DBContextURL))

	options := model.Options
	if options == nil {
		options = types.StringList{}
	}

	return FieldDefinition{
		DefaultModel:   model.DefaultModel,
		OrganizationID: model.OrganizationID,
		FieldDefinitionEditable: FieldDefinitionEditable{
			Entity:   model.Entity,
			Key:      model.Key,
			Label:    model.Label,
			Category: model.Category,
			Kind:     model.Kind,
			Options:  options,
			Required: model.Required,
			Position: model.Position,
		},
		Links: FieldDefinitionLinks{
			Self: fmt.Sprintf("%s/v1/field-definitions/%d", url, model.ID),
			Form: fmt.Sprintf("%s/v1/forms/%s", url, model.Entity),
		},
	}
}

type FieldDefinitionListResponse struct {
	Data       []FieldDefinition `json:"data"`                                                          // List of field definitions
	Error      *string           `json:"error" example:"the entity must be one of tenant, unit, lease"` // The error, if any occurred
	Pagination *Pagination       `json:"pagination"`                                                    // Pagination information
}

type FieldDefinitionCreateResponse struct {
	Error *string                   `json:"error" example:"the field key must be unique for the entity"` // The error, if any occurred
	Data  []FieldDefinitionResponse `json:"data"`                                                        // List of created field definitions
}

func (f *FieldDefinitionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	f.Data = append(f.Data, FieldDefinitionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type FieldDefinitionResponse struct {
	Error *string          `json:"error" example:"there is no field definition matching your query"` // The error, if any occurred
	Data  *FieldDefinition `json:"data"`                                                             // Data for the field definition
}

type FieldDefinitionQueryFilter struct {
	Entity   string          `form:"entity"`                     // By entity
	Kind     formschema.Kind `form:"kind"`                       // By kind
	Category string          `form:"category"`                   // By category
	Offset   uint            `form:"offset" filterField:"false"` // The offset of the first field definition returned. Defaults to 0.
	Limit    int             `form:"limit" filterField:"false"`  // Maximum number of field definitions to return. Defaults to 50.
}

func (f FieldDefinitionQueryFilter) model() models.FieldDefinition {
	return models.FieldDefinition{
		Entity:   f.Entity,
		Kind:     f.Kind,
		Category: f.Category,
	}
}
