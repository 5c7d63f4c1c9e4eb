package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leasedesk/backend/internal/httputil"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/types"
	"github.com/xuri/excelize/v2"
)

const invoiceSheet = "Invoices"

var invoiceExportHeaders = []string{"Number", "Status", "Kind", "Tenant", "Period start", "Period end", "Due date", "Issued on", "Total", "Paid", "Balance"}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Invoices
// @Success		204
// @Router			/v1/invoices/export [options]
func OptionsInvoiceExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export invoices
// @Description	Exports the invoices matching the filter as XLSX workbook. Pagination parameters are ignored.
// @Tags			Invoices
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success		200
// @Failure		400				{object}	httpError
// @Failure		500				{object}	httpError
// @Router			/v1/invoices/export [get]
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
func ExportInvoices(c *gin.Context) {
	var filter InvoiceQueryFilter

	if err := c.Bind(&filter); err != nil {
		writeError(c, err)
		return
	}

	q, _, err := filterInvoices(c, filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	var invoices []models.Invoice
	err = q.Preload("Lines").Preload("Tenant").Find(&invoices).Error
	if err != nil {
		writeError(c, err)
		return
	}

	summaries, err := models.InvoiceSummaries(models.DB, invoices)
	if err != nil {
		writeError(c, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	err = f.SetSheetName("Sheet1", invoiceSheet)
	if err != nil {
		writeError(c, err)
		return
	}

	for i, header := range invoiceExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(invoiceSheet, cell, header)
	}

	for i, invoice := range invoices {
		row := i + 2
		summary := summaries[invoice.ID]

		values := []any{
			invoice.Number,
			string(invoice.Status),
			string(invoice.Kind),
			invoice.Tenant.Name,
			dateCell(invoice.PeriodStart),
			dateCell(invoice.PeriodEnd),
			dateCell(invoice.DueDate),
			dateCell(invoice.IssuedOn),
			types.Round(invoice.Total()).InexactFloat64(),
			summary.Paid.InexactFloat64(),
			summary.Balance.InexactFloat64(),
		}

		for column, value := range values {
			cell, _ := excelize.CoordinatesToCellName(column+1, row)
			f.SetCellValue(invoiceSheet, cell, value)
		}
	}

	fileName := fmt.Sprintf("invoices_%s.xlsx", types.Today())
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
	}
}

// dateCell renders a date for a spreadsheet cell, empty for unset dates.
func dateCell(d types.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}
