package api

import (
	"log"
	stdhttp "net/http"

	intconfig "backoffice/internal/config"
	h "backoffice/internal/http/handlers"
	"backoffice/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the seat-core API. All dependencies come in through the
// handlers.API value; nothing here talks to storage directly.
func NewRouter(env intconfig.Env, a *h.API) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		core := api.Group("")
		core.Use(middleware.RequireAuth(env.JWTSecret))

		core.POST("/reservations", a.CreateReservation)
		core.DELETE("/reservations/:id", a.ReleaseReservation)

		destinations := core.Group("/destinations")
		destinations.GET("/:id/reservations", a.ListReservations)
		destinations.GET("/:id/seats/:seat", a.FindBySeat)
		destinations.GET("/:id/roster", a.GetRoster)
		destinations.GET("/:id/availability", a.GetAvailability)

		travelers := core.Group("/travelers")
		travelers.POST("/:id/booking", a.CreateBooking)
		travelers.POST("/:id/cancellation", a.CancelTraveler)
	}

	return r
}
