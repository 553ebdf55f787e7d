package transport

import (
	"net/http"

	"github.com/jhorlensofteng-web/rifa-maria-iza/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) BuyersPDF(c *gin.Context) {
	data, err := h.reportService.BuyersPDF(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build pdf"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename=buyers.pdf`)
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *ReportHandler) BuyersCSV(c *gin.Context) {
	data, err := h.reportService.BuyersCSV(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build csv"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename=buyers.csv`)
	c.Data(http.StatusOK, "text/csv", data)
}
