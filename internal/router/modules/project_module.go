package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/artifyhq/artify-backend/internal/container"
	handlers "github.com/artifyhq/artify-backend/internal/interface/http"
	"github.com/artifyhq/artify-backend/internal/interface/middleware"
	"github.com/artifyhq/artify-backend/pkg/helpers"
)

// ProjectModule wires the project CRUD routes behind bearer-token auth.
// Protected: GET/POST /api/projects, GET/PUT/DELETE /api/projects/:id
type ProjectModule struct {
	Handler *handlers.ProjectHandler
	JWT     *helpers.JWTManager
}

func NewProjectModule(h *handlers.ProjectHandler, jwt *helpers.JWTManager) *ProjectModule {
	return &ProjectModule{Handler: h, JWT: jwt}
}

func (m *ProjectModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP()))
	{
		auth.GET("/projects", m.Handler.List)
		auth.POST("/projects", m.Handler.Create)
		auth.GET("/projects/:id", m.Handler.Get)
		auth.PUT("/projects/:id", m.Handler.Update)
		auth.DELETE("/projects/:id", m.Handler.Delete)
	}
}
