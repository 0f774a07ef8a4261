package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/artifyhq/artify-backend/internal/container"
	handlers "github.com/artifyhq/artify-backend/internal/interface/http"
	"github.com/artifyhq/artify-backend/internal/interface/middleware"
)

// AuthModule wires the public registration and login routes.
// Both carry per-IP rate limits to slow down credential stuffing; the
// limiter is a no-op when Redis is not configured.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/register", registerLimiter, m.Handler.Register)
	rg.POST("/login", loginLimiter, m.Handler.Login)
}
