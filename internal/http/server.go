// README: Router assembly; registers routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taxigo/internal/http/handlers"
	"taxigo/internal/http/middleware"
	"taxigo/internal/infra"
	"taxigo/internal/modules/booking"
	"taxigo/internal/modules/geocode"
	"taxigo/internal/modules/pricing"
)

type ServerDeps struct {
	Booking  *booking.Service
	Pricing  *pricing.Service
	Geocode  *geocode.Service
	Verifier infra.TokenVerifier
	Logger   *zap.Logger
}

func NewRouter(deps ServerDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(deps.Logger), middleware.Logging(deps.Logger))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api")

	pricingHandler := handlers.NewPricingHandler(deps.Pricing)
	api.POST("/fares/estimate", pricingHandler.Estimate)

	geocodeHandler := handlers.NewGeocodeHandler(deps.Geocode)
	api.GET("/locations/search", geocodeHandler.Search)
	api.GET("/locations/reverse", geocodeHandler.Reverse)

	bookingHandler := handlers.NewBookingHandler(deps.Booking)
	authed := api.Group("", middleware.Auth(deps.Verifier))
	authed.POST("/bookings", bookingHandler.Create)
	authed.GET("/bookings", bookingHandler.List)

	return r
}
