package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/meeting-scheduler/internal/config"
	"github.com/BruksfildServices01/meeting-scheduler/internal/handlers"
	"github.com/BruksfildServices01/meeting-scheduler/internal/middleware"
	"github.com/BruksfildServices01/meeting-scheduler/internal/web"
)

type Handlers struct {
	Page    *handlers.PageHandler
	Booking *handlers.BookingHandler
	Export  *handlers.ExportHandler
	Admin   *handlers.AdminHandler
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, h Handlers) {

	r.SetHTMLTemplate(web.Templates())

	limiter := middleware.NewRateLimiter(cfg.RateLimitPM)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// WEB (HTML)
	// ======================================================
	r.GET("/", h.Page.Show)
	r.POST("/book", limiter.Middleware(), h.Page.Book)
	r.GET("/export.ics", h.Export.Download)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/availability", h.Booking.Availability)
		api.POST("/bookings", limiter.Middleware(), h.Booking.Create)
		api.GET("/calendar.ics", h.Export.Download)

		if cfg.AdminEnabled() {
			api.POST("/admin/login", limiter.Middleware(), h.Admin.Login)

			admin := api.Group("/admin")
			admin.Use(middleware.AdminAuthMiddleware(cfg))
			{
				admin.GET("/bookings", h.Admin.ListBookings)
			}
		}
	}
}
