package transport

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/jhorlensofteng-web/rifa-maria-iza/internal/transport/middleware"
	"github.com/jhorlensofteng-web/rifa-maria-iza/internal/web"
	"github.com/jhorlensofteng-web/rifa-maria-iza/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func InitRoutes(pageHandler *PageHandler, ticketHandler *TicketHandler, reportHandler *ReportHandler, checker security.KeyChecker, db *sql.DB, metricsEnabled bool, requestTimeout time.Duration) *gin.Engine {

	router := gin.New()

	router.SetHTMLTemplate(web.MustTemplates())

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	router.Use(middleware.Timeout(requestTimeout))

	// Public grid
	router.GET("/", pageHandler.Index)

	// Public API
	api := router.Group("/api")
	{
		api.GET("/tickets/:number", ticketHandler.Probe)
		api.GET("/summary", ticketHandler.Summary)
	}

	// Organizer routes
	admin := router.Group("/admin")
	admin.Use(middleware.AdminKey(checker))
	{
		admin.GET("", pageHandler.AdminPanel)
		admin.POST("/sell", ticketHandler.Sell)
		admin.POST("/release", ticketHandler.Release)
		admin.POST("/paid", ticketHandler.SetPaid)
		admin.GET("/buyers", pageHandler.Buyers)
		admin.GET("/buyers.pdf", reportHandler.BuyersPDF)
		admin.GET("/buyers.csv", reportHandler.BuyersCSV)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "connected"})
	})

	if metricsEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	return router
}
