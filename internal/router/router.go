package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	docs "github.com/leasedesk/backend/api"
	"github.com/leasedesk/backend/internal/config"
	"github.com/leasedesk/backend/internal/controllers/healthz"
	"github.com/leasedesk/backend/internal/controllers/root"
	v1 "github.com/leasedesk/backend/internal/controllers/v1"
	"github.com/leasedesk/backend/internal/controllers/version"
	"github.com/leasedesk/backend/internal/metrics"
	"github.com/leasedesk/backend/internal/scope"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/unrolled/secure"
)

// Version is set at build time with -ldflags "-X github.com/leasedesk/backend/internal/router.Version=..."
var Version = "0.0.0"

// Config sets up the gin engine and its middlewares.
//
// The returned teardown function unregisters all Prometheus metrics and
// must be called before Config is called again in the same process.
func Config(cfg config.Config) (*gin.Engine, func(), error) {
	gin.SetMode(cfg.GinMode)

	err := metrics.Register()
	if err != nil {
		return nil, nil, err
	}

	teardown := func() {
		metrics.Unregister()
	}

	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(cfg.BaseURL))
	r.Use(SecureMiddleware(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		IsDevelopment:      cfg.GinMode != gin.ReleaseMode,
	}))
	r.Use(MetricsMiddleware())
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"error": "this HTTP method is not allowed for the endpoint you called",
		})
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	if origins := cfg.Origins(); len(origins) > 0 {
		log.Debug().Strs("CORS Allowed Origins", origins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Idempotency-Key", scope.HeaderOrganization, scope.HeaderType, scope.HeaderID},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(_, _, _ string, _ int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", cfg.BaseURL.String()).Str("Host", cfg.BaseURL.Host).Str("Path", cfg.BaseURL.Path).Msg("Router")
	log.Info().Str("version", Version).Msg("Router")

	docs.SwaggerInfo.Host = cfg.BaseURL.Host
	docs.SwaggerInfo.BasePath = cfg.BaseURL.Path
	docs.SwaggerInfo.Title = "LeaseDesk"
	docs.SwaggerInfo.Version = Version
	docs.SwaggerInfo.Description = "The backend for LeaseDesk, a back office for commercial real-estate leasing: inventory, tenants, leases, CAM billing, invoices and payment allocation."

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in
// Separating this from Config() allows us to attach it to different
// paths for different use cases.
func AttachRoutes(cfg config.Config, group *gin.RouterGroup) {
	root.RegisterRoutes(group.Group(""))
	version.RegisterRoutes(group.Group("/version"), Version)
	healthz.RegisterRoutes(group.Group("/healthz"))
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles
	if cfg.EnablePprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 setup
	v1.RegisterRoutes(group.Group("/v1"))
}
