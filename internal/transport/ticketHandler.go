package transport

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jhorlensofteng-web/rifa-maria-iza/internal/entity"
	"github.com/jhorlensofteng-web/rifa-maria-iza/internal/service"
	"github.com/jhorlensofteng-web/rifa-maria-iza/internal/transport/middleware"

	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	ticketService    service.TicketService
	inventoryService service.InventoryService
}

func NewTicketHandler(ticketService service.TicketService, inventoryService service.InventoryService) *TicketHandler {
	return &TicketHandler{
		ticketService:    ticketService,
		inventoryService: inventoryService,
	}
}

func (h *TicketHandler) Sell(c *gin.Context) {
	var req service.SellRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if _, err := h.ticketService.Sell(c.Request.Context(), &req); err != nil {
		respondTicketError(c, err)
		return
	}

	redirectWithKey(c, "/")
}

func (h *TicketHandler) Release(c *gin.Context) {
	number, err := strconv.Atoi(c.PostForm("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket number"})
		return
	}

	if err := h.ticketService.Release(c.Request.Context(), number); err != nil {
		respondTicketError(c, err)
		return
	}

	redirectWithKey(c, "/")
}

func (h *TicketHandler) SetPaid(c *gin.Context) {
	number, err := strconv.Atoi(c.PostForm("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket number"})
		return
	}
	paid := c.PostForm("paid") == "1"

	if err := h.ticketService.SetPaid(c.Request.Context(), number, paid); err != nil {
		respondTicketError(c, err)
		return
	}

	redirectWithKey(c, "/admin/buyers")
}

// Probe answers the public status question without exposing buyer data.
func (h *TicketHandler) Probe(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket number"})
		return
	}

	ticket, err := h.ticketService.GetTicket(c.Request.Context(), number)
	if err != nil {
		if errors.Is(err, entity.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ticket not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"number": ticket.Number,
		"status": ticket.Status,
	})
}

func (h *TicketHandler) Summary(c *gin.Context) {
	summary, err := h.inventoryService.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load summary"})
		return
	}

	windows, err := h.inventoryService.WindowSummaries(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary": summary,
		"windows": windows,
	})
}

func respondTicketError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrInvalidTicketNumber):
		c.JSON(http.StatusBadRequest, gin.H{"error": "ticket number out of range"})
	case errors.Is(err, entity.ErrBuyerNameRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "buyer name is required"})
	case errors.Is(err, entity.ErrTicketAlreadySold):
		c.JSON(http.StatusBadRequest, gin.H{"error": "ticket already sold"})
	case errors.Is(err, entity.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "ticket not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func redirectWithKey(c *gin.Context, path string) {
	key := c.GetString(middleware.AdminKeyContextKey)
	c.Redirect(http.StatusSeeOther, path+"?key="+url.QueryEscape(key))
}
