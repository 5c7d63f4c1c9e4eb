package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/leasedesk/backend/internal/formschema"
	"github.com/leasedesk/backend/internal/models"
)

type FormLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/forms/unit"`                      // The form itself
	Validate string `json:"validate" example:"https://example.com/api/v1/forms/unit/validate"`         // Validates values against the form
	Cascade  string `json:"cascade" example:"https://example.com/api/v1/forms/unit/cascade"`           // Applies tower and floor selections
	Fields   string `json:"fields" example:"https://example.com/api/v1/field-definitions?entity=unit"` // Custom fields of the form
}

// Form is the rendered form of an entity.
type Form struct {
	Entity     string                `json:"entity" example:"unit"` // Entity the form is for
	Categories []formschema.Category `json:"categories"`            // Fields grouped by category, in render order
	Links      FormLinks             `json:"links"`
}

func newForm(c *gin.Context, entity string, categories []formschema.Category) Form {
	url := c.GetString(string(models.DBContextURL))

	if categories == nil {
		categories = []formschema.Category{}
	}

	return Form{
		Entity:     entity,
		Categories: categories,
		Links: FormLinks{
			Self:     fmt.Sprintf("%s/v1/forms/%s", url, entity),
			Validate: fmt.Sprintf("%s/v1/forms/%s/validate", url, entity),
			Cascade:  fmt.Sprintf("%s/v1/forms/%s/cascade", url, entity),
			Fields:   fmt.Sprintf("%s/v1/field-definitions?entity=%s", url, entity),
		},
	}
}

type FormResponse struct {
	Error *string `json:"error" example:"the entity must be one of tenant, unit, lease"` // The error, if any occurred
	Data  *Form   `json:"data"`                                                          // The form
}

type FormValues struct {
	Values map[string]any `json:"values"` // Values keyed by field key
}

type FormValuesResponse struct {
	Error *string     `json:"error" example:"invalid field values: code is required"` // The error, if any occurred
	Data  *FormValues `json:"data"`                                                   // The normalized values
}

// FormCascade selects a tower or floor in a TOWER_FLOOR field.
type FormCascade struct {
	Values  map[string]any `json:"values"`                 // Current values of the form
	Key     string         `json:"key" example:"location"` // Key of the TOWER_FLOOR field
	TowerID *uint64        `json:"tower_id" example:"3"`   // Tower to select. Changing the tower clears the floor
	FloorID *uint64        `json:"floor_id" example:"8"`   // Floor to select, must be a floor of the selected tower
}

type FormCascadeResult struct {
	Values       map[string]any     `json:"values"`        // Values after the selection
	FloorOptions []formschema.Floor `json:"floor_options"` // Floors selectable for the selected tower
}

type FormCascadeResponse struct {
	Error *string            `json:"error" example:"the floor does not belong to the selected tower"` // The error, if any occurred
	Data  *FormCascadeResult `json:"data"`                                                            // The state of the form after the selection
}
