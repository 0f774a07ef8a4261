package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/artifyhq/artify-backend/config"
	"github.com/artifyhq/artify-backend/internal/domain/repository"
)

// HealthHandler reports liveness plus live store counts so operators can
// see at a glance how much state the in-memory database is holding.
type HealthHandler struct {
	Cfg      *config.Config
	Users    repository.UserRepository
	Projects repository.ProjectRepository
}

func NewHealthHandler(cfg *config.Config, users repository.UserRepository, projects repository.ProjectRepository) *HealthHandler {
	return &HealthHandler{Cfg: cfg, Users: users, Projects: projects}
}

// Health GET /api/health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   h.Cfg.AppName,
		"version":   h.Cfg.Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"cors": gin.H{
			"enabled":        true,
			"allowedOrigins": h.Cfg.CORSOrigins(),
			"originSuffix":   h.Cfg.CORSOriginSuffix,
		},
		"database": gin.H{
			"type":     "in-memory",
			"users":    h.Users.Count(),
			"projects": h.Projects.Count(),
		},
	})
}
