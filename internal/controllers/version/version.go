package version

import (
	"net/http"
	"runtime"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/leasedesk/backend/internal/httputil"
)

// info is set when the routes are registered
var info Object

type Response struct {
	Data Object `json:"data"` // Data object for the version endpoint
}

type Object struct {
	Version   string   `json:"version" example:"1.4.0"`                                   // Running version of the backend
	Commit    string   `json:"commit" example:"3b1f0c2d8e6a4f9b7c5d2e1a0f9e8d7c6b5a4f3e"` // VCS revision the binary was built from, empty if unknown
	GoVersion string   `json:"go_version" example:"go1.25.5"`                             // Go release the binary was built with
	APIs      []string `json:"apis" example:"v1"`                                         // API versions served
}

// RegisterRoutes serves the build information of the running binary for version.
func RegisterRoutes(r *gin.RouterGroup, version string) {
	info = Object{
		Version:   version,
		GoVersion: runtime.Version(),
		APIs:      []string{"v1"},
	}

	if build, ok := debug.ReadBuildInfo(); ok {
		for _, s := range build.Settings {
			if s.Key == "vcs.revision" {
				info.Commit = s.Value
			}
		}
	}

	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		API version
// @Description	Returns the software version of the API and the Go release it was built with
// @Tags			General
// @Success		200	{object}	Response
// @Router			/version [get]
func Get(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Data: info})
}
