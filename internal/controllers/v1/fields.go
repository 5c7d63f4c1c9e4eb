package v1

import (
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/types"
)

// customFields validates values against the custom fields the organization
// defined for the entity and returns the normalized values.
func customFields(organizationID uint64, entity string, values types.Values) (types.Values, error) {
	schema, err := models.FormSchema(models.DB, organizationID, entity)
	if err != nil {
		return nil, err
	}

	normalized, err := schema.Custom().Validate(values)
	if err != nil {
		return nil, err
	}

	return types.Values(normalized), nil
}
