package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leasedesk/backend/internal/ageing"
	"github.com/leasedesk/backend/internal/httputil"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/scope"
	"github.com/leasedesk/backend/internal/types"
)

func RegisterAgeingRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/buckets", OptionsAgeingBuckets)
	r.GET("/buckets", GetAgeingBuckets)
	r.PUT("/buckets", SetAgeingBuckets)
	r.OPTIONS("/report", OptionsAgeingReport)
	r.GET("/report", GetAgeingReport)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Ageing
// @Success		204
// @Router			/v1/ageing/buckets [options]
func OptionsAgeingBuckets(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Ageing
// @Success		204
// @Router			/v1/ageing/report [options]
func OptionsAgeingReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get ageing buckets
// @Description	Returns the ageing buckets of the organization. Organizations without configured buckets use 1-30, 31-60, 61-90 and 90+.
// @Tags			Ageing
// @Produce		json
// @Success		200			{object}	AgeingBucketListResponse
// @Failure		500			{object}	httpError
// @Param			X-Org-ID	header		int	true	"Organization ID"
// @Router			/v1/ageing/buckets [get]
func GetAgeingBuckets(c *gin.Context) {
	buckets, err := models.AgeingBuckets(models.DB, scope.FromContext(c).OrganizationID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, AgeingBucketListResponse{Data: buckets})
}

// @Summary		Set ageing buckets
// @Description	Replaces the ageing buckets of the organization. Buckets must start at 1 day overdue, follow each other without gaps and end with an open bucket.
// @Tags			Ageing
// @Produce		json
// @Success		200			{object}	AgeingBucketListResponse
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			X-Org-ID	header		int				true	"Organization ID"
// @Param			buckets		body		[]ageing.Bucket	true	"Buckets"
// @Router			/v1/ageing/buckets [put]
func SetAgeingBuckets(c *gin.Context) {
	var buckets []ageing.Bucket
	err := httputil.BindData(c, &buckets)
	if err != nil {
		writeError(c, err)
		return
	}

	organizationID := scope.FromContext(c).OrganizationID

	err = models.ReplaceAgeingBuckets(models.DB, organizationID, buckets)
	if err != nil {
		writeError(c, err)
		return
	}

	buckets, err = models.AgeingBuckets(models.DB, organizationID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, AgeingBucketListResponse{Data: buckets})
}

// @Summary		Get ageing report
// @Description	Returns the outstanding receivables in scope per tenant, grouped by days overdue
// @Tags			Ageing
// @Produce		json
// @Success		200				{object}	AgeingReportResponse
// @Failure		400				{object}	AgeingReportResponse
// @Failure		500				{object}	AgeingReportResponse
// @Param			X-Org-ID		header	int		true	"Organization ID"
// @Param			X-Scope-Type	header	string	false	"ORG or TOWER"
// @Param			X-Scope-ID		header	int		false	"Tower ID for TOWER scopes"
// @Param			as_of			query	string	false	"Date to count days overdue to, YYYY-MM-DD. Defaults to today."
// @Router			/v1/ageing/report [get]
func GetAgeingReport(c *gin.Context) {
	var query AgeingReportQuery
	if err := c.Bind(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, AgeingReportResponse{Error: &e})
		return
	}

	asOf := types.Today()
	if query.AsOf != "" {
		var err error
		asOf, err = types.ParseDate(query.AsOf)
		if err != nil {
			e := err.Error()
			c.JSON(http.StatusBadRequest, AgeingReportResponse{Error: &e})
			return
		}
	}

	report, err := models.AgeingReport(models.DB, scope.FromContext(c), asOf)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AgeingReportResponse{Error: &e})
		return
	}

	data := newAgeingReport(c, report)
	c.JSON(http.StatusOK, AgeingReportResponse{Data: &data})
}
