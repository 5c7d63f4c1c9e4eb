package client

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/leasedesk/backend/internal/allocation"
)

// Error is a failed API call. Message is the error reported by the API, or a
// generic message when the response body does not carry one.
type Error struct {
	StatusCode    int
	Message       string
	Kind          allocation.Kind   // set for allocation validation failures
	InvoiceID     uint64            // set for allocation validation failures
	InvoiceLineID uint64            // set for allocation validation failures
	Fields        map[string]string // set for invalid form values
}

func (e *Error) Error() string {
	return e.Message
}

// NotFound reports whether the resource does not exist or is outside of the scope.
func (e *Error) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// apiError is the union of all error bodies the API sends.
type apiError struct {
	Error         string            `json:"error"`
	Kind          allocation.Kind   `json:"kind"`
	InvoiceID     uint64            `json:"invoice_id"`
	InvoiceLineID uint64            `json:"invoice_line_id"`
	Fields        map[string]string `json:"fields"`
}

// newError builds the error for a non-2xx response.
func newError(status int, body []byte) *Error {
	e := &Error{
		StatusCode: status,
		Message:    fmt.Sprintf("the request failed with status %d %s", status, http.StatusText(status)),
	}

	var b apiError
	if err := json.Unmarshal(body, &b); err != nil || b.Error == "" {
		return e
	}

	e.Message = b.Error
	e.Kind = b.Kind
	e.InvoiceID = b.InvoiceID
	e.InvoiceLineID = b.InvoiceLineID
	e.Fields = b.Fields

	return e
}
