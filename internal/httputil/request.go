package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// MaxBodySize is the largest request body BindData accepts. Bulk submissions
// like invoice creation stay well below it.
const MaxBodySize = 1 << 20

// BindData decodes the JSON body of the request into data, which must be a pointer.
//
// Fields with a value of the wrong JSON type are reported by name, e.g.
// "amount has the wrong type, expected string".
func BindData(c *gin.Context, data any) error {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodySize)

	err := c.ShouldBindJSON(data)
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		return ErrRequestBodyEmpty
	}

	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		return ErrRequestBodyTooLarge
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return ValidationError(validationErrs)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return fmt.Errorf("%s %w, expected %s", field, ErrInvalidType, typeErr.Type)
	}

	log.Debug().Str("request-id", requestid.Get(c)).Str("path", c.FullPath()).Msgf("%T: %v", err, err.Error())
	return ErrInvalidBody
}
