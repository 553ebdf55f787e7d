package transport

import (
	"net/http"
	"time"

	"github.com/jhorlensofteng-web/rifa-maria-iza/internal/service"
	"github.com/jhorlensofteng-web/rifa-maria-iza/internal/transport/middleware"
	"github.com/jhorlensofteng-web/rifa-maria-iza/pkg/security"

	"github.com/gin-gonic/gin"
)

type PageHandler struct {
	inventoryService service.InventoryService
	reportService    service.ReportService
	checker          security.KeyChecker
	title            string
	totalTickets     int
}

func NewPageHandler(inventoryService service.InventoryService, reportService service.ReportService, checker security.KeyChecker, title string, totalTickets int) *PageHandler {
	return &PageHandler{
		inventoryService: inventoryService,
		reportService:    reportService,
		checker:          checker,
		title:            title,
		totalTickets:     totalTickets,
	}
}

// Index renders the public grid. A valid key in the query only unlocks the
// panel link, the grid itself never shows buyer data.
func (h *PageHandler) Index(c *gin.Context) {
	key := c.Query("key")

	tickets, err := h.inventoryService.Grid(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load tickets"})
		return
	}

	summary, err := h.inventoryService.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load summary"})
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":   h.title,
		"tickets": tickets,
		"summary": summary,
		"admin":   h.checker.Allow(key),
		"key":     key,
		"year":    time.Now().UTC().Year(),
	})
}

func (h *PageHandler) AdminPanel(c *gin.Context) {
	windows, err := h.inventoryService.WindowSummaries(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load summary"})
		return
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"title":   h.title,
		"key":     c.GetString(middleware.AdminKeyContextKey),
		"total":   h.totalTickets,
		"windows": windows,
	})
}

func (h *PageHandler) Buyers(c *gin.Context) {
	buyers, err := h.reportService.Buyers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load buyers"})
		return
	}

	summary, err := h.inventoryService.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load summary"})
		return
	}

	c.HTML(http.StatusOK, "buyers.html", gin.H{
		"title":   h.title,
		"key":     c.GetString(middleware.AdminKeyContextKey),
		"buyers":  buyers,
		"summary": summary,
	})
}
