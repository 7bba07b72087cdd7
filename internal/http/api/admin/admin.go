// Package admin exposes the back-office API. Everything except login and the
// health probe sits behind the bearer-token session middleware.
package admin

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rakibul-dev/teastall/internal/auth"
	relayhttp "github.com/rakibul-dev/teastall/internal/http"
	"github.com/rakibul-dev/teastall/internal/http/api/admin/handlers"
	"github.com/rakibul-dev/teastall/internal/ratelimit"
)

// Login attempts get the tightest throttle of all endpoints.
const (
	loginLimit  = 5
	loginWindow = time.Minute
)

// RegisterAdminRoutes registers the admin login and back-office routes.
func RegisterAdminRoutes(r *gin.Engine, db *gorm.DB, authService *auth.Service, limiter *ratelimit.Limiter, uploadDir string) {
	if r == nil || db == nil {
		return
	}

	r.GET("/healthz", handlers.Health)

	api := r.Group("/api")

	authHandler := handlers.NewAuthHandler(authService)
	api.POST("/admin/login",
		relayhttp.RateLimit(limiter, "login", loginLimit, loginWindow, "Too many login attempts. Please try again later."),
		authHandler.Login)

	authed := api.Group("")
	authed.Use(relayhttp.AdminAuth(authService))

	authed.POST("/admin/logout", authHandler.Logout)
	authed.POST("/admin/change-password", authHandler.ChangePassword)

	menuHandler := handlers.NewMenuHandler(db)
	authed.GET("/menu/all", menuHandler.ListAll)
	authed.POST("/menu", menuHandler.Create)
	authed.PUT("/menu/:id", menuHandler.Update)
	authed.DELETE("/menu/:id", menuHandler.Delete)

	orderHandler := handlers.NewOrderHandler(db)
	authed.GET("/orders", orderHandler.List)
	authed.PATCH("/orders/:id", orderHandler.UpdateStatus)

	reviewHandler := handlers.NewReviewHandler(db)
	authed.GET("/reviews/all", reviewHandler.ListAll)
	authed.DELETE("/reviews/:id", reviewHandler.Delete)

	messageHandler := handlers.NewMessageHandler(db)
	authed.GET("/messages", messageHandler.List)
	authed.GET("/messages/:id", messageHandler.Get)
	authed.DELETE("/messages/:id", messageHandler.Delete)

	uploadHandler := handlers.NewUploadHandler(uploadDir)
	authed.POST("/upload", uploadHandler.Create)
}
