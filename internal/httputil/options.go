package httputil

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Options returns a handler that answers OPTIONS requests for a resource
// supporting the given methods.
func Options(methods ...string) gin.HandlerFunc {
	allow := strings.Join(append([]string{http.MethodOptions}, methods...), ", ")

	return func(c *gin.Context) {
		c.Header("allow", allow)
		c.Status(http.StatusNoContent)
		c.Writer.WriteHeaderNow()
	}
}

var (
	OptionsGet            = Options(http.MethodGet)
	OptionsPost           = Options(http.MethodPost)
	OptionsGetPost        = Options(http.MethodGet, http.MethodPost)
	OptionsGetPut         = Options(http.MethodGet, http.MethodPut)
	OptionsGetDelete      = Options(http.MethodGet, http.MethodDelete)
	OptionsGetPatch       = Options(http.MethodGet, http.MethodPatch)
	OptionsGetPatchDelete = Options(http.MethodGet, http.MethodPatch, http.MethodDelete)
	OptionsPatchDelete    = Options(http.MethodPatch, http.MethodDelete)
)
