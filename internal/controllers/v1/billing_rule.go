package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leasedesk/backend/internal/httputil"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/scope"
)

func RegisterBillingRuleRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsBillingRules)
		r.GET("", GetBillingRules)
		r.POST("", CreateBillingRules)
	}
	{
		r.OPTIONS("/:id", OptionsBillingRuleDetail)
		r.GET("/:id", GetBillingRule)
		r.PATCH("/:id", UpdateBillingRule)
		r.DELETE("/:id", DeleteBillingRule)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Billing Rules
// @Success		204
// @Router			/v1/billing-rules [options]
func OptionsBillingRules(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Billing Rules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/billing-rules/{id} [options]
func OptionsBillingRuleDetail(c *gin.Context) {
	resourceOptionsDetail[models.BillingRule](c, billingRulesQuery(scope.FromContext(c)), "billing_rules")
}

// @Summary		Create billing rules
// @Description	Creates new billing rules. Formulas are checked when the rule is saved.
// @Tags			Billing Rules
// @Produce		json
// @Success		201				{object}	BillingRuleCreateResponse
// @Failure		400				{object}	BillingRuleCreateResponse
// @Failure		404				{object}	BillingRuleCreateResponse
// @Failure		500				{object}	BillingRuleCreateResponse
// @Param			X-Org-ID		header		int						true	"Organization ID"
// @Param			billingRules	body		[]BillingRuleEditable	true	"Billing rules"
// @Router			/v1/billing-rules [post]
func CreateBillingRules(c *gin.Context) {
	var editables []BillingRuleEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillingRuleCreateResponse{
			Error: &e,
		})
		return
	}

	s := scope.FromContext(c)

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BillingRuleCreateResponse{}

	for _, create := range editables {
		rule := create.model(s.OrganizationID)

		err = models.DB.Create(&rule).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newBillingRule(c, rule)
		r.Data = append(r.Data, BillingRuleResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get billing rules
// @Description	Returns the billing rules of the organization
// @Tags			Billing Rules
// @Produce		json
// @Success		200			{object}	BillingRuleListResponse
// @Failure		400			{object}	BillingRuleListResponse
// @Failure		500			{object}	BillingRuleListResponse
// @Router			/v1/billing-rules [get]
// @Param			X-Org-ID	header	int		true	"Organization ID"
// @Param			name		query	string	false	"Filter by name"
// @Param			charge_type	query	string	false	"Filter by charge type"
// @Param			active		query	bool	false	"Filter by active state"
// @Param			offset		query	uint	false	"The offset of the first billing rule returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of billing rules to return. Defaults to 50."
func GetBillingRules(c *gin.Context) {
	var filter BillingRuleQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BillingRuleListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()
	q := billingRulesQuery(scope.FromContext(c)).
		Order("billing_rules.name ASC, billing_rules.id ASC").
		Where(&where, queryFields...)

	q = likeFilter(q, setFields, "Name", "billing_rules.name", filter.Name)
	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var rules []models.BillingRule
	err := q.Find(&rules).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillingRuleListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillingRuleListResponse{
			Error: &e,
		})
		return
	}

	data := make([]BillingRule, 0, len(rules))
	for _, rule := range rules {
		data = append(data, newBillingRule(c, rule))
	}

	c.JSON(http.StatusOK, BillingRuleListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get billing rule
// @Description	Returns a specific billing rule
// @Tags			Billing Rules
// @Produce		json
// @Success		200			{object}	BillingRuleResponse
// @Failure		400			{object}	BillingRuleResponse
// @Failure		404			{object}	BillingRuleResponse
// @Failure		500			{object}	BillingRuleResponse
// @Param			X-Org-ID	header		int		true	"Organization ID"
// @Param			id			path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/billing-rules/{id} [get]
func GetBillingRule(c *gin.Context) {
	rule, ok := getResource[models.BillingRule](c, billingRulesQuery(scope.FromContext(c)), "billing_rules")
	if !ok {
		return
	}

	apiResource := newBillingRule(c, rule)
	c.JSON(http.StatusOK, BillingRuleResponse{Data: &apiResource})
}

// @Summary		Update billing rule
// @Description	Updates an existing billing rule. Only values to be updated need to be specified.
// @Tags			Billing Rules
// @Accept			json
// @Produce		json
// @Success		200			{object}	BillingRuleResponse
// @Failure		400			{object}	BillingRuleResponse
// @Failure		404			{object}	BillingRuleResponse
// @Failure		500			{object}	BillingRuleResponse
// @Param			X-Org-ID	header		int					true	"Organization ID"
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			billingRule	body		BillingRuleEditable	true	"Billing rule"
// @Router			/v1/billing-rules/{id} [patch]
func UpdateBillingRule(c *gin.Context) {
	s := scope.FromContext(c)
	rule, ok := getResource[models.BillingRule](c, billingRulesQuery(s), "billing_rules")
	if !ok {
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, BillingRuleEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillingRuleResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data BillingRuleEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillingRuleResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&rule).Select("", updateFields...).Updates(data.model(s.OrganizationID)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillingRuleResponse{
			Error: &e,
		})
		return
	}

	apiResource := newBillingRule(c, rule)
	c.JSON(http.StatusOK, BillingRuleResponse{Data: &apiResource})
}

// @Summary		Delete billing rule
// @Description	Deletes a billing rule. Invoice lines generated from it keep their amounts.
// @Tags			Billing Rules
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			X-Org-ID	header		int		true	"Organization ID"
// @Param			id			path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/billing-rules/{id} [delete]
func DeleteBillingRule(c *gin.Context) {
	rule, ok := getResource[models.BillingRule](c, billingRulesQuery(scope.FromContext(c)), "billing_rules")
	if !ok {
		return
	}

	err := models.DB.Delete(&rule).Error
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
