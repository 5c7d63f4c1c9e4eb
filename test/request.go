// Package test contains helpers for tests running requests against the API.
package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/leasedesk/backend/internal/config"
	"github.com/leasedesk/backend/internal/router"
	"github.com/leasedesk/backend/internal/scope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Router returns the fully configured API router, mounted at the root path.
// It is configured from the environment, so API_URL needs to be set.
//
// Only one router can exist at a time since routers share the Prometheus
// registry. teardown must be called before the next one is created.
func Router(t *testing.T) (r *gin.Engine, teardown func()) {
	cfg, err := config.Load()
	require.Nil(t, err, "configuration could not be loaded")

	r, teardown, err = router.Config(cfg)
	require.Nil(t, err, "router could not be initialized")

	router.AttachRoutes(cfg, r.Group("/"))
	return r, teardown
}

// ScopeHeaders returns the request headers selecting s.
func ScopeHeaders(s scope.Scope) map[string]string {
	h := http.Header{}
	s.Apply(h)

	headers := make(map[string]string, len(h))
	for k := range h {
		headers[k] = h.Get(k)
	}
	return headers
}

// Request sends a request to a fresh router and returns the recorded response.
//
// A string or []byte body is sent as is, anything else is encoded as JSON.
func Request(t *testing.T, method, url string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	var raw []byte
	switch b := body.(type) {
	case nil:
	case string:
		raw = []byte(b)
	case []byte:
		raw = b
	default:
		var err error
		raw, err = json.Marshal(b)
		require.Nil(t, err, "request body could not be encoded")
	}

	req, err := http.NewRequest(method, url, bytes.NewReader(raw))
	require.Nil(t, err)

	for _, h := range headers {
		for k, v := range h {
			req.Header.Set(k, v)
		}
	}

	r, teardown := Router(t)
	defer teardown()

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)

	return *recorder
}

// AssertHTTPStatus verifies that the HTTP response status is one of the expected ones.
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	require.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Request ID: '%s' Response body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}

// DecodeResponse decodes an HTTP response into target.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.Unmarshal(r.Body.Bytes(), target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v', Request ID: %s", r.Body, reflect.TypeOf(target), err, r.Result().Header.Get("x-request-id"))
	}
}

// DecodeError returns the error message of a JSON error response.
//
// Create responses carry their errors per resource, for those the first
// error in the data array is returned.
func DecodeError(t *testing.T, s []byte) string {
	var r struct {
		Error string `json:"error"`
		Data  any    `json:"data"`
	}

	if err := json.Unmarshal(s, &r); err != nil {
		assert.Fail(t, "Not valid JSON!", "%s", s)
	}

	if r.Error != "" {
		return r.Error
	}

	resources, _ := r.Data.([]any)
	for _, resource := range resources {
		m, _ := resource.(map[string]any)
		if e, ok := m["error"].(string); ok && e != "" {
			return e
		}
	}

	return ""
}
