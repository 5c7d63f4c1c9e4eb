package router

import (
	"net/url"
	"strconv"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/leasedesk/backend/internal/metrics"
	"github.com/leasedesk/backend/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/unrolled/secure"
)

// URLMiddleware makes the public base URL of the API available to handlers
// building links.
func URLMiddleware(base *url.URL) gin.HandlerFunc {
	u := base.String()

	return func(c *gin.Context) {
		c.Set(string(models.DBContextURL), u)
		c.Next()
	}
}

// SecureMiddleware sets security headers on all responses and rejects
// requests to hosts that are not allowed.
func SecureMiddleware(options secure.Options) gin.HandlerFunc {
	s := secure.New(options)

	return func(c *gin.Context) {
		if err := s.Process(c.Writer, c.Request); err != nil {
			log.Warn().Str("request-id", requestid.Get(c)).Str("host", c.Request.Host).Err(err).Msg("secure headers blocked request")
			c.Abort()
			return
		}

		// SSL redirects written by secure end the request
		if status := c.Writer.Status(); status >= 300 && status < 400 {
			c.Abort()
		}
	}
}

// MetricsMiddleware records the count and latency of requests. Requests are
// labelled with their route template, e.g. /v1/invoices/:id, so that IDs do
// not multiply the label values.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		code := strconv.Itoa(c.Writer.Status())
		metrics.RequestDuration.WithLabelValues(code, c.Request.Method, route).Observe(time.Since(start).Seconds())
		metrics.Requests.WithLabelValues(code, c.Request.Method, route).Inc()
	}
}
