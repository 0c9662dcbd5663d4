package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "bagages/internal/config"
	h "bagages/internal/http/handlers"
	"bagages/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     env.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route introuvable",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	system := h.SystemHandler{Env: env}
	booking := h.BookingHandler{Env: env}
	auth := h.AuthHandler{Env: env}
	admin := h.AdminHandler{Env: env}

	r.GET("/health", system.Health)

	// public booking form API
	r.POST("/booking", booking.Create)
	r.POST("/book", booking.Create)
	r.POST("/calculate-price", booking.Quote)

	r.POST("/admin/auth", auth.Login)

	authed := r.Group("/", middleware.RequireAdmin(env.SecretKey))
	{
		authed.GET("/admin", admin.Dashboard)
		authed.GET("/admin/logout", auth.Logout)
		authed.GET("/admin/bookings", admin.ListBookings)
		authed.POST("/admin/bookings/:id/status", admin.UpdateBookingStatus)
		authed.GET("/admin/bookings/:id/receipt", admin.Receipt)
		authed.POST("/admin/maintenance/purge", admin.PurgeCancelled)
		authed.GET("/api/stats", admin.Stats)
	}

	return r
}
