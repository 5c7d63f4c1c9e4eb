package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leasedesk/backend/internal/httputil"
	"github.com/leasedesk/backend/internal/metrics"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/scope"
	"github.com/leasedesk/backend/internal/types"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

func RegisterInvoiceRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsInvoices)
		r.GET("", GetInvoices)
		r.POST("", CreateInvoices)
		r.OPTIONS("/export", OptionsInvoiceExport)
		r.GET("/export", ExportInvoices)
		r.OPTIONS("/issue", OptionsInvoiceAction)
		r.POST("/issue", IssueInvoices)
	}
	{
		r.OPTIONS("/:id", OptionsInvoiceDetail)
		r.GET("/:id", GetInvoice)
		r.PATCH("/:id", UpdateInvoice)
		r.DELETE("/:id", DeleteInvoice)
		r.OPTIONS("/:id/issue", OptionsInvoiceAction)
		r.POST("/:id/issue", IssueInvoice)
		r.OPTIONS("/:id/cancel", OptionsInvoiceAction)
		r.POST("/:id/cancel", CancelInvoice)
	}
	{
		r.OPTIONS("/:id/lines", OptionsInvoiceLines)
		r.GET("/:id/lines", GetInvoiceLines)
		r.POST("/:id/lines", CreateInvoiceLines)
		r.OPTIONS("/:id/lines/:lineId", OptionsInvoiceLineDetail)
		r.GET("/:id/lines/:lineId", GetInvoiceLine)
		r.PATCH("/:id/lines/:lineId", UpdateInvoiceLine)
		r.DELETE("/:id/lines/:lineId", DeleteInvoiceLine)
	}
}

func linesByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("invoice_lines.position ASC, invoice_lines.id ASC")
}

// getInvoice loads the invoice from the request path with its lines.
func getInvoice(c *gin.Context) (models.Invoice, bool) {
	return getResource[models.Invoice](c, invoicesQuery(scope.FromContext(c)).Preload("Lines", linesByPosition), "invoices")
}

// invoiceInScope verifies that an invoice for the lease is visible in the
// scope. In tower scopes, invoices need a lease for a unit in the tower.
func invoiceInScope(s scope.Scope, leaseID *uint64) error {
	if leaseID == nil {
		if s.Type == scope.TypeTower {
			return errOutOfScope
		}
		return nil
	}

	return leasesQuery(s).First(&models.Lease{}, "leases.id = ?", *leaseID).Error
}

// requestOrganization loads the organization of the request scope.
func requestOrganization(c *gin.Context) (models.Organization, error) {
	var organization models.Organization
	err := models.DB.First(&organization, scope.FromContext(c).OrganizationID).Error
	return organization, err
}

// invoiceResponses converts invoices to their API representation with
// payment summaries and the currency of the organization.
func invoiceResponses(c *gin.Context, invoices []models.Invoice) ([]Invoice, error) {
	organization, err := requestOrganization(c)
	if err != nil {
		return nil, err
	}

	summaries, err := models.InvoiceSummaries(models.DB, invoices)
	if err != nil {
		return nil, err
	}

	data := make([]Invoice, 0, len(invoices))
	for _, invoice := range invoices {
		data = append(data, newInvoice(c, invoice, summaries[invoice.ID], organization))
	}

	return data, nil
}

// writeInvoice reloads the invoice with its lines and writes it with the given status.
func writeInvoice(c *gin.Context, httpStatus int, id uint64) {
	var invoice models.Invoice
	err := models.DB.Preload("Lines", linesByPosition).First(&invoice, id).Error
	if err != nil {
		writeError(c, err)
		return
	}

	data, err := invoiceResponses(c, []models.Invoice{invoice})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(httpStatus, InvoiceResponse{Data: &data[0]})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Invoices
// @Success		204
// @Router			/v1/invoices [options]
func OptionsInvoices(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Invoices
// @Success		204
// @Router			/v1/invoices/issue [options]
// @Router			/v1/invoices/{id}/issue [options]
// @Router			/v1/invoices/{id}/cancel [options]
func OptionsInvoiceAction(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Invoices
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/invoices/{id} [options]
func OptionsInvoiceDetail(c *gin.Context) {
	resourceOptionsDetail[models.Invoice](c, invoicesQuery(scope.FromContext(c)), "invoices")
}

// @Summary		Create invoices
// @Description	Creates draft invoices with their lines. Invoice numbers are assigned per organization and year.
// @Tags			Invoices
// @Produce		json
// @Success		201			{object}	InvoiceCreateResponse
// @Failure		400			{object}	InvoiceCreateResponse
// @Failure		404			{object}	InvoiceCreateResponse
// @Failure		500			{object}	InvoiceCreateResponse
// @Param			X-Org-ID	header		int				true	"Organization ID"
// @Param			invoices	body		[]InvoiceCreate	true	"Invoices"
// @Router			/v1/invoices [post]
func CreateInvoices(c *gin.Context) {
	var creates []InvoiceCreate

	// Bind data and return error if not possible
	err := httputil.BindData(c, &creates)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceCreateResponse{
			Error: &e,
		})
		return
	}

	s := scope.FromContext(c)

	organization, err := requestOrganization(c)
	if err != nil {
		writeError(c, err)
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := InvoiceCreateResponse{}

	for _, create := range creates {
		err = invoiceInScope(s, create.LeaseID)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		invoice := create.model(s.OrganizationID)
		err = models.DB.Create(&invoice).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		// New invoices have no payments
		summary := models.PaymentSummary{Balance: types.Round(invoice.Total())}

		apiResource := newInvoice(c, invoice, summary, organization)
		r.Data = append(r.Data, InvoiceResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// filterInvoices returns the invoices query for the filter. Invalid dates
// are returned as error.
func filterInvoices(c *gin.Context, filter InvoiceQueryFilter) (*gorm.DB, []string, error) {
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()
	q := invoicesQuery(scope.FromContext(c)).
		Order("invoices.number ASC, invoices.id ASC").
		Where(&where, queryFields...)

	if filter.LeaseID != 0 {
		q = q.Where("invoices.lease_id = ?", filter.LeaseID)
	}

	q = globFilter(q, "invoices.number", filter.Number)

	if filter.PeriodFrom != "" {
		from, err := types.ParseDate(filter.PeriodFrom)
		if err != nil {
			return nil, nil, err
		}
		q = q.Where("invoices.period_start >= ?", from)
	}

	if filter.PeriodTo != "" {
		to, err := types.ParseDate(filter.PeriodTo)
		if err != nil {
			return nil, nil, err
		}
		q = q.Where("invoices.period_end <= ?", to)
	}

	return q, setFields, nil
}

// @Summary		Get invoices
// @Description	Returns the invoices in scope. In tower scopes, only invoices for leases in the tower are returned.
// @Tags			Invoices
// @Produce		json
// @Success		200				{object}	InvoiceListResponse
// @Failure		400				{object}	InvoiceListResponse
// @Failure		500				{object}	InvoiceListResponse
// @Router			/v1/invoices [get]
// @Param			X-Org-ID		header	int		true	"Organization ID"
// @Param			X-Scope-Type	header	string	false	"ORG or TOWER"
// @Param			X-Scope-ID		header	int		false	"Tower ID for TOWER scopes"
// @Param			status			query	string	false	"Filter by status"
// @Param			kind			query	string	false	"Filter by kind"
// @Param			tenant_id		query	int		false	"Filter by tenant ID"
// @Param			lease_id		query	int		false	"Filter by lease ID"
// @Param			number			query	string	false	"Filter by number, * and ? are wildcards"
// @Param			period_from		query	string	false	"Invoices with a period starting on or after this date, YYYY-MM-DD"
// @Param			period_to		query	string	false	"Invoices with a period ending on or before this date, YYYY-MM-DD"
// @Param			offset			query	uint	false	"The offset of the first invoice returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of invoices to return. Defaults to 50."
func GetInvoices(c *gin.Context) {
	var filter InvoiceQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, InvoiceListResponse{
			Error: &s,
		})
		return
	}

	q, setFields, err := filterInvoices(c, filter)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, InvoiceListResponse{
			Error: &e,
		})
		return
	}

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var invoices []models.Invoice
	err = q.Session(&gorm.Session{}).Preload("Lines", linesByPosition).Find(&invoices).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceListResponse{
			Error: &e,
		})
		return
	}

	data, err := invoiceResponses(c, invoices)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, InvoiceListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get invoice
// @Description	Returns a specific invoice with its lines, payment summary and the total in words
// @Tags			Invoices
// @Produce		json
// @Success		200			{object}	InvoiceResponse
// @Failure		400			{object}	InvoiceResponse
// @Failure		404			{object}	InvoiceResponse
// @Failure		500			{object}	InvoiceResponse
// @Param			X-Org-ID	header		int		true	"Organization ID"
// @Param			id			path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/invoices/{id} [get]
func GetInvoice(c *gin.Context) {
	invoice, ok := getInvoice(c)
	if !ok {
		return
	}

	data, err := invoiceResponses(c, []models.Invoice{invoice})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, InvoiceResponse{Data: &data[0]})
}

// @Summary		Update invoice
// @Description	Updates a draft invoice. Only values to be updated need to be specified.
// @Tags			Invoices
// @Accept			json
// @Produce		json
// @Success		200			{object}	InvoiceResponse
// @Failure		400			{object}	InvoiceResponse
// @Failure		404			{object}	InvoiceResponse
// @Failure		500			{object}	InvoiceResponse
// @Param			X-Org-ID	header		int				true	"Organization ID"
// @Param			id			path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			invoice		body		InvoiceEditable	true	"Invoice"
// @Router			/v1/invoices/{id} [patch]
func UpdateInvoice(c *gin.Context) {
	s := scope.FromContext(c)
	invoice, ok := getResource[models.Invoice](c, invoicesQuery(s), "invoices")
	if !ok {
		return
	}

	if invoice.Status != models.InvoiceDraft {
		writeError(c, models.ErrInvoiceNotEditable)
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, InvoiceEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data InvoiceEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceResponse{
			Error: &e,
		})
		return
	}

	if slices.Contains(updateFields, "LeaseID") {
		err = invoiceInScope(s, data.LeaseID)
		if err != nil {
			writeError(c, err)
			return
		}
	}

	err = models.DB.Model(&invoice).Select("", updateFields...).Updates(data.model(s.OrganizationID)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceResponse{
			Error: &e,
		})
		return
	}

	writeInvoice(c, http.StatusOK, invoice.ID)
}

// @Summary		Delete invoice
// @Description	Deletes a draft invoice with its lines. Issued invoices must be cancelled instead.
// @Tags			Invoices
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			X-Org-ID	header		int		true	"Organization ID"
// @Param			id			path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/invoices/{id} [delete]
func DeleteInvoice(c *gin.Context) {
	invoice, ok := getResource[models.Invoice](c, invoicesQuery(scope.FromContext(c)), "invoices")
	if !ok {
		return
	}

	if invoice.Status != models.InvoiceDraft {
		writeError(c, errInvoiceNotDeletable)
		return
	}

	err := models.DB.Delete(&invoice).Error
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Issue invoice
// @Description	Issues a draft invoice. Invoices need at least one line to be issued.
// @Tags			Invoices
// @Accept			json
// @Produce		json
// @Success		200			{object}	InvoiceResponse
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			X-Org-ID	header		int					true	"Organization ID"
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			issue		body		InvoiceIssueDate	false	"Issue date"
// @Router			/v1/invoices/{id}/issue [post]
func IssueInvoice(c *gin.Context) {
	invoice, ok := getResource[models.Invoice](c, invoicesQuery(scope.FromContext(c)), "invoices")
	if !ok {
		return
	}

	// The body is optional
	var data InvoiceIssueDate
	err := httputil.BindData(c, &data)
	if err != nil && !errors.Is(err, httputil.ErrRequestBodyEmpty) {
		writeError(c, err)
		return
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		return invoice.Issue(tx, data.IssuedOn)
	})
	if err != nil {
		writeError(c, err)
		return
	}

	metrics.InvoicesIssued.Inc()
	writeInvoice(c, http.StatusOK, invoice.ID)
}

// @Summary		Issue invoices
// @Description	Issues several draft invoices. Either all invoices are issued or none.
// @Tags			Invoices
// @Accept			json
// @Produce		json
// @Success		200			{object}	InvoiceListResponse
// @Failure		400			{object}	InvoiceListResponse
// @Failure		404			{object}	InvoiceListResponse
// @Failure		500			{object}	InvoiceListResponse
// @Param			X-Org-ID	header		int				true	"Organization ID"
// @Param			issue		body		InvoiceIssue	true	"Invoices to issue"
// @Router			/v1/invoices/issue [post]
func IssueInvoices(c *gin.Context) {
	var data InvoiceIssue
	err := httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceListResponse{
			Error: &e,
		})
		return
	}

	if len(data.InvoiceIDs) == 0 {
		e := errInvoiceIDsEmpty.Error()
		c.JSON(http.StatusBadRequest, InvoiceListResponse{
			Error: &e,
		})
		return
	}

	issued, err := models.IssueInvoices(models.DB, scope.FromContext(c), data.InvoiceIDs, data.IssuedOn)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceListResponse{
			Error: &e,
		})
		return
	}

	metrics.InvoicesIssued.Add(float64(len(issued)))

	ids := make([]uint64, 0, len(issued))
	for _, invoice := range issued {
		ids = append(ids, invoice.ID)
	}

	var invoices []models.Invoice
	err = models.DB.Preload("Lines", linesByPosition).Order("number ASC").Find(&invoices, ids).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceListResponse{
			Error: &e,
		})
		return
	}

	response, err := invoiceResponses(c, invoices)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, InvoiceListResponse{Data: response})
}

// @Summary		Cancel invoice
// @Description	Cancels an invoice. Invoices with recorded payments cannot be cancelled.
// @Tags			Invoices
// @Produce		json
// @Success		200			{object}	InvoiceResponse
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			X-Org-ID	header		int		true	"Organization ID"
// @Param			id			path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/invoices/{id}/cancel [post]
func CancelInvoice(c *gin.Context) {
	invoice, ok := getResource[models.Invoice](c, invoicesQuery(scope.FromContext(c)), "invoices")
	if !ok {
		return
	}

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		return invoice.Cancel(tx)
	})
	if err != nil {
		writeError(c, err)
		return
	}

	writeInvoice(c, http.StatusOK, invoice.ID)
}
