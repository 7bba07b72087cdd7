// Package front exposes the public storefront API: the menu, order
// placement, reviews, and the contact form. Write endpoints are throttled
// per client IP; the policies here mirror each endpoint's abuse profile.
package front

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	relayhttp "github.com/rakibul-dev/teastall/internal/http"
	"github.com/rakibul-dev/teastall/internal/http/api/front/handlers"
	"github.com/rakibul-dev/teastall/internal/ratelimit"
)

// Throttle policies for the public write endpoints.
const (
	contactLimit = 5
	orderLimit   = 10
	reviewLimit  = 3

	throttleWindow = time.Minute
)

// RegisterFrontRoutes registers the public storefront routes.
func RegisterFrontRoutes(r *gin.Engine, db *gorm.DB, limiter *ratelimit.Limiter) {
	if r == nil || db == nil {
		return
	}

	api := r.Group("/api")

	menuHandler := handlers.NewMenuHandler(db)
	api.GET("/menu", menuHandler.List)

	orderHandler := handlers.NewOrderHandler(db)
	api.POST("/orders",
		relayhttp.BodySizeLimit(),
		relayhttp.RateLimit(limiter, "order", orderLimit, throttleWindow, "Too many orders. Please try again later."),
		orderHandler.Create)

	reviewHandler := handlers.NewReviewHandler(db)
	api.GET("/reviews", reviewHandler.List)
	api.POST("/reviews",
		relayhttp.BodySizeLimit(),
		relayhttp.RateLimit(limiter, "review", reviewLimit, throttleWindow, "Too many reviews. Please try again later."),
		reviewHandler.Create)

	contactHandler := handlers.NewContactHandler(db)
	api.POST("/contact",
		relayhttp.BodySizeLimit(),
		relayhttp.RateLimit(limiter, "contact", contactLimit, throttleWindow, "Too many requests. Please try again later."),
		contactHandler.Create)
}
