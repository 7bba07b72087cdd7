// Package app boots the storefront server: database, migrations, seed
// data, routes, static assets, and graceful shutdown.
package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/rakibul-dev/teastall/internal/auth"
	"github.com/rakibul-dev/teastall/internal/config"
	"github.com/rakibul-dev/teastall/internal/db"
	relayhttp "github.com/rakibul-dev/teastall/internal/http"
	adminapi "github.com/rakibul-dev/teastall/internal/http/api/admin"
	"github.com/rakibul-dev/teastall/internal/http/api/front"
	"github.com/rakibul-dev/teastall/internal/ratelimit"
)

// defaultBootstrapPassword seeds the first admin account when no
// password is configured. First boot logs a warning about it.
const defaultBootstrapPassword = "rakib123"

const shutdownTimeout = 10 * time.Second

// Migrate opens the database and runs migrations, then exits. Used by
// the -migrate flag for deploy pipelines that migrate before rollout.
func Migrate(ctx context.Context, appCfg config.AppConfig) error {
	cfg, err := config.Load(config.ResolveConfigPath(appCfg.ConfigPath))
	if err != nil {
		return err
	}
	conn, err := db.Open(cfg.Database.DSN)
	if err != nil {
		return err
	}
	return db.Migrate(conn)
}

// RunServer boots the storefront API and serves it until ctx is
// cancelled.
func RunServer(ctx context.Context, appCfg config.AppConfig) error {
	cfg, err := config.Load(config.ResolveConfigPath(appCfg.ConfigPath))
	if err != nil {
		return err
	}

	conn, err := db.Open(cfg.Database.DSN)
	if err != nil {
		return err
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		return errMigrate
	}
	if errSeed := db.SeedMenu(conn); errSeed != nil {
		return errSeed
	}

	authService := auth.NewService(conn)
	bootstrapPassword := cfg.Admin.BootstrapPassword
	if bootstrapPassword == "" {
		bootstrapPassword = defaultBootstrapPassword
	}
	if errEnsure := authService.EnsureDefaultAdmin(ctx, bootstrapPassword); errEnsure != nil {
		return errEnsure
	}

	if errMkdir := os.MkdirAll(cfg.UploadDir, 0o755); errMkdir != nil {
		return errMkdir
	}

	engine := buildEngine(cfg, conn, authService)

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("listening on %s (db=%s)", cfg.ListenAddr, db.DialectName(conn))
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if errShutdown := server.Shutdown(shutdownCtx); errShutdown != nil {
			return errShutdown
		}
		log.Info("server stopped")
		return nil
	case errServe := <-errCh:
		if errors.Is(errServe, http.ErrServerClosed) {
			return nil
		}
		return errServe
	}
}

func buildEngine(cfg *config.Config, conn *gorm.DB, authService *auth.Service) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), relayhttp.RequestLogger(), relayhttp.SecurityHeaders(), corsMiddleware(cfg.CORS))

	limiter := ratelimit.New()
	adminapi.RegisterAdminRoutes(engine, conn, authService, limiter, cfg.UploadDir)
	front.RegisterFrontRoutes(engine, conn, limiter)

	engine.Use(static.Serve("/images", static.LocalFile(cfg.UploadDir, false)))
	engine.Use(static.Serve("/", static.LocalFile(cfg.StaticDir, false)))

	indexPath := filepath.Join(cfg.StaticDir, "index.html")
	engine.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Status(http.StatusNotFound)
			return
		}
		if isAPIRoute(c.Request.URL.Path) {
			c.Status(http.StatusNotFound)
			return
		}
		// Client-side routes fall back to the SPA entry point.
		if _, errStat := os.Stat(indexPath); errStat != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.File(indexPath)
	})
	return engine
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	if len(origins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	return cors.New(corsCfg)
}

// isAPIRoute reports whether a path targets API endpoints rather than
// static assets.
func isAPIRoute(requestPath string) bool {
	if requestPath == "/healthz" || strings.HasPrefix(requestPath, "/healthz/") {
		return true
	}
	if requestPath == "/api" || strings.HasPrefix(requestPath, "/api/") {
		return true
	}
	return strings.HasPrefix(requestPath, "/images/")
}
