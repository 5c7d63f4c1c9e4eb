package scope

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type contextKey string

const scopeKey contextKey = "leasedesk-scope"

// Middleware parses the scope headers and rejects requests without a valid scope.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := Parse(c.Request.Header)
		if err != nil {
			log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("scope")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.Set(string(scopeKey), s)
		c.Next()
	}
}

// FromContext returns the scope set by Middleware.
//
// It panics when the middleware did not run for the route, which is a
// programming error.
func FromContext(c *gin.Context) Scope {
	return c.MustGet(string(scopeKey)).(Scope)
}
