package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/types"
)

type BillingRuleEditable struct {
	Name        string      `json:"name" example:"CAM Tower 1" default:""`                              // Name of the rule
	ChargeType  string      `json:"charge_type" example:"CAM" default:""`                               // Charge type of the generated invoice lines, e.g. CAM, RENT or PARKING
	UnitPattern string      `json:"unit_pattern" example:"T1-*" default:"*"`                            // Glob on the unit code. Only units matching it are billed
	Formula     string      `json:"formula" example:"area_sqft * rate * days / period_days" default:""` // Formula for the line amount. Empty uses the default formula of the charge type
	Rate        types.Money `json:"rate" swaggertype:"string" example:"12.50" default:"0"`              // Rate available to the formula as rate
	Active      bool        `json:"active" example:"true" default:"true"`                               // Inactive rules are ignored by billing runs
}

func (editable BillingRuleEditable) model(organizationID uint64) models.BillingRule {
	return models.BillingRule{
		OrganizationID: organizationID,
		Name:           editable.Name,
		ChargeType:     editable.ChargeType,
		UnitPattern:    editable.UnitPattern,
		Formula:        editable.Formula,
		Rate:           editable.Rate.Decimal,
		Active:         editable.Active,
	}
}

type BillingRuleLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/billing-rules/4"` // The billing rule itself
}

type BillingRule struct {
	models.DefaultModel
	OrganizationID uint64 `json:"organization_id" example:"1"` // ID of the organization the rule belongs to
	BillingRuleEditable
	Links BillingRuleLinks `json:"links"`
}

func newBillingRule(c *gin.Context, model models.BillingRule) BillingRule {
	url := c.GetString(string(models.DBContextURL))

	return BillingRule{
		DefaultModel:   model.DefaultModel,
		OrganizationID: model.OrganizationID,
		BillingRuleEditable: BillingRuleEditable{
			Name:        model.Name,
			ChargeType:  model.ChargeType,
			UnitPattern: model.UnitPattern,
			Formula:     model.Formula,
			Rate:        types.NewMoney(model.Rate),
			Active:      model.Active,
		},
		Links: BillingRuleLinks{
			Self: fmt.Sprintf("%s/v1/billing-rules/%d", url, model.ID),
		},
	}
}

type BillingRuleListResponse struct {
	Data       []BillingRule `json:"data"`                                                // List of billing rules
	Error      *string       `json:"error" example:"the billing rule formula is invalid"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                          // Pagination information
}

type BillingRuleCreateResponse struct {
	Error *string               `json:"error" example:"the billing rule charge type must not be empty"` // The error, if any occurred
	Data  []BillingRuleResponse `json:"data"`                                                           // List of created billing rules
}

func (b *BillingRuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BillingRuleResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BillingRuleResponse struct {
	Error *string      `json:"error" example:"there is no billing rule matching your query"` // The error, if any occurred
	Data  *BillingRule `json:"data"`                                                         // Data for the billing rule
}

type BillingRuleQueryFilter struct {
	Name       string `form:"name" filterField:"false"`   // By name
	ChargeType string `form:"charge_type"`                // By charge type
	Active     bool   `form:"active"`                     // By active state
	Offset     uint   `form:"offset" filterField:"false"` // The offset of the first billing rule returned. Defaults to 0.
	Limit      int    `form:"limit" filterField:"false"`  // Maximum number of billing rules to return. Defaults to 50.
}

func (f BillingRuleQueryFilter) model() models.BillingRule {
	return models.BillingRule{
		ChargeType: f.ChargeType,
		Active:     f.Active,
	}
}
