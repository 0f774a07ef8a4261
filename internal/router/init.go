package router

import (
	"github.com/artifyhq/artify-backend/internal/application"
	"github.com/artifyhq/artify-backend/internal/container"
	handlers "github.com/artifyhq/artify-backend/internal/interface/http"
	"github.com/artifyhq/artify-backend/internal/router/modules"
)

// InitModules builds the services and handlers from the container
// singletons and registers every feature module with the registry. Called
// once during startup.
func InitModules(r *Registry) {
	logger := container.GetLogger()
	cfg := container.GetConfig()

	userSvc := application.NewUserService(container.GetUserRepo(), container.GetJWT(), logger)
	projectSvc := application.NewProjectService(container.GetProjectRepo(), logger)

	authHandler := handlers.NewAuthHandler(userSvc, logger)
	projectHandler := handlers.NewProjectHandler(projectSvc, logger)
	healthHandler := handlers.NewHealthHandler(cfg, container.GetUserRepo(), container.GetProjectRepo())

	r.Add(modules.NewHealthModule(healthHandler))
	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewProjectModule(projectHandler, container.GetJWT()))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
