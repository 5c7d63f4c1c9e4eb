package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/leasedesk/backend/internal/httputil"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// getResource loads the resource with the ID from the request path using a
// scoped query. If that fails, the error response is written and ok is false.
func getResource[R any](c *gin.Context, q *gorm.DB, table string) (resource R, ok bool) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		writeError(c, err)
		return resource, false
	}

	err = q.First(&resource, fmt.Sprintf("%s.id = ?", table), uri.ID).Error
	if err != nil {
		writeError(c, err)
		return resource, false
	}

	return resource, true
}

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
func resourceOptionsDetail[R any](c *gin.Context, q *gorm.DB, table string) {
	_, ok := getResource[R](c, q, table)
	if !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// paginate applies offset and limit to a list query. The limit defaults to 50.
func paginate(q *gorm.DB, setFields []string, offset uint, limit int) (*gorm.DB, int) {
	q = q.Offset(int(offset))

	// Default to 50 resources and set the limit
	l := 50
	if slices.Contains(setFields, "Limit") {
		l = limit
	}

	return q.Limit(l), l
}
