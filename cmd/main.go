package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/artifyhq/artify-backend/config"
	"github.com/artifyhq/artify-backend/internal/container"
	"github.com/artifyhq/artify-backend/internal/infrastructure/memstore"
	"github.com/artifyhq/artify-backend/internal/interface/middleware"
	"github.com/artifyhq/artify-backend/internal/router"
	"github.com/artifyhq/artify-backend/pkg/helpers"
	"github.com/artifyhq/artify-backend/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	if !cfg.SecretConfigured() {
		logger.Warn("JWT_SECRET not set, using insecure default signing key")
	}

	// In-memory stores; all state is discarded on restart
	userRepo := memstore.NewUserStore()
	projectRepo := memstore.NewProjectStore(userRepo)

	// Redis is optional; rate limiting disables itself without it
	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}

	jwtManager := helpers.NewJWTManager(cfg.SigningKey(), cfg.TokenTTL)

	// Provide singletons to container for registry auto-wiring
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetRedis(rdb)
	container.SetJWT(jwtManager)
	container.SetUserRepo(userRepo)
	container.SetProjectRepo(projectRepo)

	// Gin engine and global middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP())
	r.Use(cors.New(corsConfig(cfg, logger)))
	if cfg.HTTPLogEnabled {
		r.Use(gin.Logger())
	}

	// Registry: auto-register modules using container
	reg := router.NewRegistry(r)
	router.InitModules(reg)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.WithFields(logrus.Fields{
			"port":              cfg.Port,
			"env":               cfg.Env,
			"jwt_configured":    cfg.SecretConfigured(),
			"cors_suffix":       cfg.CORSOriginSuffix,
			"ratelimit_enabled": rdb != nil,
		}).Info("artify backend started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}

// corsConfig allows the fixed origin list plus every origin ending in the
// configured suffix (Vercel preview deployments).
func corsConfig(cfg *config.Config, logger *logrus.Logger) cors.Config {
	allowed := cfg.CORSOrigins()
	return cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if cfg.CORSOriginSuffix != "" && strings.HasSuffix(origin, cfg.CORSOriginSuffix) {
				return true
			}
			for _, o := range allowed {
				if origin == o {
					return true
				}
			}
			logger.WithField("origin", origin).Debug("cors blocked origin")
			return false
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}
