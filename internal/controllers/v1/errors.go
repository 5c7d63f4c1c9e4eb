package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leasedesk/backend/internal/allocation"
	"github.com/leasedesk/backend/internal/formschema"
	"github.com/leasedesk/backend/internal/httputil"
	"github.com/leasedesk/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no tenant matching your query"`
}

// allocationError is the response for rejected payment allocations.
type allocationError struct {
	Error         string          `json:"error" example:"the allocated total 700.00 must equal the payment amount 800.00"`
	Kind          allocation.Kind `json:"kind" example:"SUM_MISMATCH"`
	InvoiceID     uint64          `json:"invoice_id,omitempty" example:"12"`      // Set for NOT_PAYABLE
	InvoiceLineID uint64          `json:"invoice_line_id,omitempty" example:"31"` // Set for LINE_CEILING_EXCEEDED and NEGATIVE_ALLOCATION
}

// fieldError is the response for custom field values that do not match the form.
type fieldError struct {
	Error  string            `json:"error" example:"invalid field values: floor is required"`
	Fields map[string]string `json:"fields"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// writeError writes the error response. Allocation and form validation
// errors carry their details.
func writeError(c *gin.Context, err error) {
	var v *allocation.ValidationError
	if errors.As(err, &v) {
		c.JSON(http.StatusBadRequest, allocationError{
			Error:         err.Error(),
			Kind:          v.Kind,
			InvoiceID:     v.InvoiceID,
			InvoiceLineID: v.InvoiceLineID,
		})
		return
	}

	var f formschema.FieldErrors
	if errors.As(err, &f) {
		c.JSON(http.StatusBadRequest, fieldError{
			Error:  err.Error(),
			Fields: f,
		})
		return
	}

	c.JSON(status(err), httpError{
		Error: httputil.ValidationError(err).Error(),
	})
}

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)

// Invoice errors
var (
	errInvoiceNotDeletable = errors.New("only draft invoices can be deleted")
	errInvoiceIDsEmpty     = errors.New("invoice_ids must contain at least one invoice ID")
)

// Request errors
var (
	errPeriodInvalid  = errors.New("the period must be a month in YYYY-MM format")
	errIdempotencyKey = errors.New("the Idempotency-Key header must be a UUID")
	errCascadeKey     = errors.New("key must name a TOWER_FLOOR field of the form")
	errOutOfScope     = errors.New("the resource is outside of the tower in the request scope")
)
