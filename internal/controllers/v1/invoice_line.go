package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leasedesk/backend/internal/httputil"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/scope"
)

// getInvoiceLine loads the invoice line from the request path. The invoice
// must be in scope. If that fails, the error response is written and ok is false.
func getInvoiceLine(c *gin.Context) (line models.InvoiceLine, ok bool) {
	var uri URIInvoiceLine
	err := c.ShouldBindUri(&uri)
	if err != nil {
		writeError(c, err)
		return line, false
	}

	err = invoicesQuery(scope.FromContext(c)).First(&models.Invoice{}, "invoices.id = ?", uri.ID).Error
	if err != nil {
		writeError(c, err)
		return line, false
	}

	err = models.DB.First(&line, "invoice_lines.id = ? AND invoice_lines.invoice_id = ?", uri.LineID, uri.ID).Error
	if err != nil {
		writeError(c, err)
		return line, false
	}

	return line, true
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Invoices
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/invoices/{id}/lines [options]
func OptionsInvoiceLines(c *gin.Context) {
	_, ok := getResource[models.Invoice](c, invoicesQuery(scope.FromContext(c)), "invoices")
	if !ok {
		return
	}

	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Invoices
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			lineId	path		int		true	"ID of the invoice line"
// @Router			/v1/invoices/{id}/lines/{lineId} [options]
func OptionsInvoiceLineDetail(c *gin.Context) {
	_, ok := getInvoiceLine(c)
	if !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Get invoice lines
// @Description	Returns the lines of an invoice, ordered by position
// @Tags			Invoices
// @Produce		json
// @Success		200			{object}	InvoiceLineListResponse
// @Failure		400			{object}	InvoiceLineListResponse
// @Failure		404			{object}	InvoiceLineListResponse
// @Failure		500			{object}	InvoiceLineListResponse
// @Param			X-Org-ID	header		int		true	"Organization ID"
// @Param			id			path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/invoices/{id}/lines [get]
func GetInvoiceLines(c *gin.Context) {
	invoice, ok := getInvoice(c)
	if !ok {
		return
	}

	data := make([]InvoiceLine, 0, len(invoice.Lines))
	for _, line := range invoice.Lines {
		data = append(data, newInvoiceLine(c, line))
	}

	c.JSON(http.StatusOK, InvoiceLineListResponse{Data: data})
}

// @Summary		Create invoice lines
// @Description	Adds lines to a draft invoice
// @Tags			Invoices
// @Produce		json
// @Success		201			{object}	InvoiceLineCreateResponse
// @Failure		400			{object}	InvoiceLineCreateResponse
// @Failure		404			{object}	InvoiceLineCreateResponse
// @Failure		500			{object}	InvoiceLineCreateResponse
// @Param			X-Org-ID	header		int						true	"Organization ID"
// @Param			id			path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			lines		body		[]InvoiceLineEditable	true	"Invoice lines"
// @Router			/v1/invoices/{id}/lines [post]
func CreateInvoiceLines(c *gin.Context) {
	invoice, ok := getResource[models.Invoice](c, invoicesQuery(scope.FromContext(c)), "invoices")
	if !ok {
		return
	}

	var editables []InvoiceLineEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceLineCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := InvoiceLineCreateResponse{}

	for _, create := range editables {
		line := create.model(invoice.ID)

		err = models.DB.Create(&line).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newInvoiceLine(c, line)
		r.Data = append(r.Data, InvoiceLineResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get invoice line
// @Description	Returns a specific invoice line
// @Tags			Invoices
// @Produce		json
// @Success		200			{object}	InvoiceLineResponse
// @Failure		400			{object}	InvoiceLineResponse
// @Failure		404			{object}	InvoiceLineResponse
// @Failure		500			{object}	InvoiceLineResponse
// @Param			X-Org-ID	header		int		true	"Organization ID"
// @Param			id			path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			lineId		path		int		true	"ID of the invoice line"
// @Router			/v1/invoices/{id}/lines/{lineId} [get]
func GetInvoiceLine(c *gin.Context) {
	line, ok := getInvoiceLine(c)
	if !ok {
		return
	}

	apiResource := newInvoiceLine(c, line)
	c.JSON(http.StatusOK, InvoiceLineResponse{Data: &apiResource})
}

// @Summary		Update invoice line
// @Description	Updates a line of a draft invoice. Only values to be updated need to be specified.
// @Tags			Invoices
// @Accept			json
// @Produce		json
// @Success		200			{object}	InvoiceLineResponse
// @Failure		400			{object}	InvoiceLineResponse
// @Failure		404			{object}	InvoiceLineResponse
// @Failure		500			{object}	InvoiceLineResponse
// @Param			X-Org-ID	header		int					true	"Organization ID"
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			lineId		path		int					true	"ID of the invoice line"
// @Param			line		body		InvoiceLineEditable	true	"Invoice line"
// @Router			/v1/invoices/{id}/lines/{lineId} [patch]
func UpdateInvoiceLine(c *gin.Context) {
	line, ok := getInvoiceLine(c)
	if !ok {
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, InvoiceLineEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceLineResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data InvoiceLineEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceLineResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&line).Select("", updateFields...).Updates(data.model(line.InvoiceID)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceLineResponse{
			Error: &e,
		})
		return
	}

	apiResource := newInvoiceLine(c, line)
	c.JSON(http.StatusOK, InvoiceLineResponse{Data: &apiResource})
}

// @Summary		Delete invoice line
// @Description	Deletes a line of a draft invoice
// @Tags			Invoices
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			X-Org-ID	header		int		true	"Organization ID"
// @Param			id			path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			lineId		path		int		true	"ID of the invoice line"
// @Router			/v1/invoices/{id}/lines/{lineId} [delete]
func DeleteInvoiceLine(c *gin.Context) {
	line, ok := getInvoiceLine(c)
	if !ok {
		return
	}

	err := models.DB.Delete(&line).Error
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
