package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leasedesk/backend/internal/billing"
	"github.com/leasedesk/backend/internal/httputil"
	"github.com/leasedesk/backend/internal/metrics"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/scope"
	"github.com/leasedesk/backend/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// camDueDays is the number of days after the period start generated invoices are due.
const camDueDays = 15

func RegisterBillingRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/cam-preview", OptionsBillingRun)
		r.POST("/cam-preview", PreviewBilling)
		r.OPTIONS("/cam-commit", OptionsBillingRun)
		r.POST("/cam-commit", CommitBilling)
	}
}

// generateDrafts parses the billing run from the request body and generates
// the drafts for the leases in scope.
func generateDrafts(c *gin.Context) (billing.Period, []billing.Draft, error) {
	var run BillingRun
	err := httputil.BindData(c, &run)
	if err != nil {
		return billing.Period{}, nil, err
	}

	month, err := types.ParseMonth(run.Period)
	if err != nil {
		return billing.Period{}, nil, errPeriodInvalid
	}

	period := billing.MonthPeriod(month)
	leases, rules, err := models.BillingInput(models.DB, scope.FromContext(c), period)
	if err != nil {
		return billing.Period{}, nil, err
	}

	drafts, err := billing.Generate(period, leases, rules)
	if err != nil {
		return billing.Period{}, nil, err
	}

	return period, drafts, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Billing
// @Success		204
// @Router			/v1/billing/cam-preview [options]
// @Router			/v1/billing/cam-commit [options]
func OptionsBillingRun(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Preview billing run
// @Description	Generates the CAM and recurring charges of a month for all active leases in scope
// @Description	without storing anything. Charges are prorated by the days the lease is active in the month.
// @Tags			Billing
// @Accept			json
// @Produce		json
// @Success		200				{object}	BillingPreviewResponse
// @Failure		400				{object}	BillingPreviewResponse
// @Failure		500				{object}	BillingPreviewResponse
// @Param			X-Org-ID		header		int			true	"Organization ID"
// @Param			X-Scope-Type	header		string		false	"ORG or TOWER"
// @Param			X-Scope-ID		header		int			false	"Tower ID for TOWER scopes"
// @Param			run				body		BillingRun	true	"Billing run"
// @Router			/v1/billing/cam-preview [post]
func PreviewBilling(c *gin.Context) {
	period, drafts, err := generateDrafts(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillingPreviewResponse{
			Error: &e,
		})
		return
	}

	preview := BillingPreview{
		PeriodStart: period.Start,
		PeriodEnd:   period.End,
		Drafts:      make([]BillingDraft, 0, len(drafts)),
	}

	total := decimal.Zero
	for _, d := range drafts {
		preview.Drafts = append(preview.Drafts, newBillingDraft(d))
		total = total.Add(d.Total())
	}
	preview.Total = types.NewMoney(total)

	c.JSON(http.StatusOK, BillingPreviewResponse{Data: &preview})
}

// @Summary		Commit billing run
// @Description	Stores the drafts of a billing run as DRAFT invoices. Leases that already have a generated invoice
// @Description	for the month that is not cancelled are skipped, so the run can be repeated safely.
// @Tags			Billing
// @Accept			json
// @Produce		json
// @Success		201				{object}	BillingCommitResponse
// @Failure		400				{object}	BillingCommitResponse
// @Failure		500				{object}	BillingCommitResponse
// @Param			X-Org-ID		header		int			true	"Organization ID"
// @Param			X-Scope-Type	header		string		false	"ORG or TOWER"
// @Param			X-Scope-ID		header		int			false	"Tower ID for TOWER scopes"
// @Param			run				body		BillingRun	true	"Billing run"
// @Router			/v1/billing/cam-commit [post]
func CommitBilling(c *gin.Context) {
	period, drafts, err := generateDrafts(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillingCommitResponse{
			Error: &e,
		})
		return
	}

	s := scope.FromContext(c)
	created, skipped, err := models.CommitDrafts(models.DB, s.OrganizationID, drafts, camDueDays)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillingCommitResponse{
			Error: &e,
		})
		return
	}

	metrics.InvoicesGenerated.Add(float64(len(created)))
	log.Info().Str("scope", s.String()).Str("period", period.String()).Int("created", len(created)).Int("skipped", skipped).Msg("billing run")

	invoices, err := invoiceResponses(c, created)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillingCommitResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, BillingCommitResponse{Data: &BillingCommit{
		Created: invoices,
		Skipped: skipped,
	}})
}
