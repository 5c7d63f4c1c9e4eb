package httputil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/url"
	"reflect"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GetURLFields reports which fields of filter are set in the query of url.
//
// queryFields holds the names that can be passed to a gorm Where as the
// fields to filter on. It is []any because that is what Where accepts.
// setFields holds every field set in the query, including those tagged
// filterField:"false" which the caller handles itself, e.g. active_on on
// leases or overdue on invoices. It also allows filtering for zero values
// without pointer fields.
func GetURLFields(url *url.URL, filter any) (queryFields []any, setFields []string) {
	query := url.Query()

	for _, f := range structFields(filter) {
		if !query.Has(f.Tag.Get("form")) {
			continue
		}

		setFields = append(setFields, f.Name)
		if f.Tag.Get("filterField") != "false" {
			queryFields = append(queryFields, f.Name)
		}
	}

	return queryFields, setFields
}

// GetBodyFields returns the names of the fields of resource whose json key
// is present in the request body, even with a null value. PATCH handlers pass
// them to gorm's Select so that only these columns are updated.
//
// The body is restored afterwards, so BindData can be called after it.
func GetBodyFields(c *gin.Context, resource any) ([]any, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, MaxBodySize))
	if err != nil {
		return []any{}, ErrInvalidBody
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(body, &keys); err != nil {
		log.Debug().Str("request-id", requestid.Get(c)).Str("path", c.FullPath()).Msgf("%T: %v", err, err.Error())
		return []any{}, ErrInvalidBody
	}

	var bodyFields []any
	for _, f := range structFields(resource) {
		key, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if _, ok := keys[key]; ok {
			bodyFields = append(bodyFields, f.Name)
		}
	}

	return bodyFields, nil
}

func structFields(v any) []reflect.StructField {
	t := reflect.Indirect(reflect.ValueOf(v)).Type()

	fields := make([]reflect.StructField, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		fields = append(fields, t.Field(i))
	}

	return fields
}
