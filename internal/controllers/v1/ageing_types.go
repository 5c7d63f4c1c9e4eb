package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/leasedesk/backend/internal/ageing"
	"github.com/leasedesk/backend/internal/models"
	"github.com/leasedesk/backend/internal/types"
	"github.com/shopspring/decimal"
)

type AgeingBucketListResponse struct {
	Data []ageing.Bucket `json:"data"` // Buckets in ascending order of days overdue
}

type AgeingReportRow struct {
	TenantID uint64        `json:"tenant_id" example:"4"`                                          // ID of the tenant
	Tenant   string        `json:"tenant" example:"https://example.com/api/v1/tenants/4"`          // Link to the tenant
	Amounts  []types.Money `json:"amounts" swaggertype:"array,string" example:"0.00,1200.00,0.00"` // Outstanding amounts per column, starting with the amount not yet due
	Total    types.Money   `json:"total" swaggertype:"string" example:"1200.00"`                   // Outstanding amount of the tenant
}

type AgeingReport struct {
	AsOf    types.Date        `json:"as_of" swaggertype:"string" example:"2026-10-18"`               // Date the days overdue are counted to
	Labels  []string          `json:"labels" example:"Current,1-30,31-60"`                           // Column labels, starting with the amount not yet due
	Rows    []AgeingReportRow `json:"rows"`                                                          // One row per tenant with outstanding invoices
	Totals  []types.Money     `json:"totals" swaggertype:"array,string" example:"0.00,1200.00,0.00"` // Column totals
	Total   types.Money       `json:"total" swaggertype:"string" example:"1200.00"`                  // Total outstanding amount
	Entries int               `json:"entries" example:"3"`                                           // Number of outstanding invoices in the report
}

func moneys(amounts []decimal.Decimal) []types.Money {
	m := make([]types.Money, 0, len(amounts))
	for _, a := range amounts {
		m = append(m, types.NewMoney(a))
	}
	return m
}

func newAgeingReport(c *gin.Context, report ageing.Report) AgeingReport {
	url := c.GetString(string(models.DBContextURL))

	rows := make([]AgeingReportRow, 0, len(report.Rows))
	for _, r := range report.Rows {
		rows = append(rows, AgeingReportRow{
			TenantID: r.TenantID,
			Tenant:   fmt.Sprintf("%s/v1/tenants/%d", url, r.TenantID),
			Amounts:  moneys(r.Amounts),
			Total:    types.NewMoney(r.Total),
		})
	}

	return AgeingReport{
		AsOf:    report.AsOf,
		Labels:  report.Labels,
		Rows:    rows,
		Totals:  moneys(report.Totals),
		Total:   types.NewMoney(report.Total),
		Entries: report.Entries,
	}
}

type AgeingReportResponse struct {
	Error *string       `json:"error" example:"the as_of date must be formatted as YYYY-MM-DD"` // The error, if any occurred
	Data  *AgeingReport `json:"data"`                                                           // The report
}

type AgeingReportQuery struct {
	AsOf string `form:"as_of"` // Date to count days overdue to, YYYY-MM-DD. Defaults to today.
}
