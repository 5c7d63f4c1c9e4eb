// Package healthz reports whether the backend can serve requests.
package healthz

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/leasedesk/backend/internal/cache"
	"github.com/leasedesk/backend/internal/httputil"
	"github.com/leasedesk/backend/internal/models"
	"github.com/rs/zerolog/log"
)

const (
	StatusOK       = "ok"
	StatusFailed   = "failed"
	StatusDisabled = "disabled"
)

// Response is the health of the backend and the services it depends on.
type Response struct {
	Database string `json:"database" example:"ok"`                   // ok or failed
	Cache    string `json:"cache" example:"disabled"`                // ok, failed or disabled when no Redis is configured
	Error    string `json:"error,omitempty" example:"redis: closed"` // The first failure
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Checks the database and, if configured, the cache. Any failure makes the backend unhealthy.
// @Tags			General
// @Produce		json
// @Success		200	{object}	Response
// @Failure		503	{object}	Response
// @Router			/healthz [get]
func Get(c *gin.Context) {
	ctx := c.Request.Context()
	r := Response{Database: StatusOK, Cache: StatusDisabled}

	sqlDB, err := models.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		r.Database = StatusFailed
		r.Error = err.Error()
	}

	if cache.Default.Enabled() {
		r.Cache = StatusOK
		if err := cache.Default.Ping(ctx); err != nil {
			r.Cache = StatusFailed
			if r.Error == "" {
				r.Error = err.Error()
			}
		}
	}

	if r.Error != "" {
		log.Error().Str("request-id", requestid.Get(c)).Str("database", r.Database).Str("cache", r.Cache).Msg(r.Error)
		c.JSON(http.StatusServiceUnavailable, r)
		return
	}

	c.JSON(http.StatusOK, r)
}
