package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/jhorlensofteng-web/rifa-maria-iza/internal/entity"
	"github.com/jhorlensofteng-web/rifa-maria-iza/internal/service"
	"github.com/jhorlensofteng-web/rifa-maria-iza/internal/transport/middleware"
	"github.com/jhorlensofteng-web/rifa-maria-iza/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProbe checks the public endpoint reports status without buyer data
func TestProbe(t *testing.T) {
	svc := newStubTicketService(10)
	svc.sold[7] = &entity.Ticket{
		Number: 7, Status: entity.TicketStatusSold,
		BuyerName: "Ana Souza", BuyerContact: "11 99999-0001", Paid: true,
	}
	router := newTestRouter(svc, newStubInventoryService())

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "free ticket",
			target:     "/api/tickets/2",
			wantStatus: http.StatusOK,
			wantBody:   `{"number":2,"status":"free"}`,
		},
		{
			name:       "sold ticket shows status only",
			target:     "/api/tickets/7",
			wantStatus: http.StatusOK,
			wantBody:   `{"number":7,"status":"sold"}`,
		},
		{
			name:       "number above the pool",
			target:     "/api/tickets/999",
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"ticket not found"}`,
		},
		{
			name:       "zero is outside the pool",
			target:     "/api/tickets/0",
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"ticket not found"}`,
		},
		{
			name:       "not a number",
			target:     "/api/tickets/abc",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid ticket number"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			assert.NotContains(t, w.Body.String(), "Ana Souza")
		})
	}
}

// TestSummaryEndpoint checks the public summary payload
func TestSummaryEndpoint(t *testing.T) {
	router := newTestRouter(newStubTicketService(10), newStubInventoryService())

	req := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Summary entity.InventorySummary `json:"summary"`
		Windows []*entity.WindowSummary `json:"windows"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 10, resp.Summary.Total)
	assert.Equal(t, 8, resp.Summary.FreeCount)
	assert.Equal(t, 2, resp.Summary.SoldCount)
	require.Len(t, resp.Windows, 2)
	assert.Equal(t, entity.WindowOnline, resp.Windows[0].Window.Label)
}

// TestSellEndpoint drives the sale form through the admin key middleware
func TestSellEndpoint(t *testing.T) {
	tests := []struct {
		name         string
		form         url.Values
		wantStatus   int
		wantLocation string
		wantError    string
	}{
		{
			name:         "valid sale redirects to the grid",
			form:         url.Values{"key": {"secret"}, "number": {"5"}, "buyer_name": {"Ana Souza"}, "buyer_contact": {"11 99999-0001"}},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/?key=secret",
		},
		{
			name:       "wrong key is rejected",
			form:       url.Values{"key": {"nope"}, "number": {"5"}, "buyer_name": {"Ana Souza"}},
			wantStatus: http.StatusForbidden,
			wantError:  "forbidden",
		},
		{
			name:       "missing key is rejected",
			form:       url.Values{"number": {"5"}, "buyer_name": {"Ana Souza"}},
			wantStatus: http.StatusForbidden,
			wantError:  "forbidden",
		},
		{
			name:       "missing buyer name fails binding",
			form:       url.Values{"key": {"secret"}, "number": {"5"}},
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid request",
		},
		{
			name:       "blank buyer name is rejected",
			form:       url.Values{"key": {"secret"}, "number": {"5"}, "buyer_name": {"   "}},
			wantStatus: http.StatusBadRequest,
			wantError:  "buyer name is required",
		},
		{
			name:       "number outside the pool",
			form:       url.Values{"key": {"secret"}, "number": {"99"}, "buyer_name": {"Ana Souza"}},
			wantStatus: http.StatusBadRequest,
			wantError:  "ticket number out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newStubTicketService(10)
			router := newTestRouter(svc, newStubInventoryService())

			w := postForm(router, "/admin/sell", tt.form)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, w.Header().Get("Location"))
			}
			if tt.wantError != "" {
				assert.Contains(t, w.Body.String(), tt.wantError)
			}
		})
	}
}

// TestSellEndpointAlreadySold checks a taken number reports a conflict
func TestSellEndpointAlreadySold(t *testing.T) {
	svc := newStubTicketService(10)
	svc.sold[5] = &entity.Ticket{Number: 5, Status: entity.TicketStatusSold, BuyerName: "Ana Souza"}
	router := newTestRouter(svc, newStubInventoryService())

	w := postForm(router, "/admin/sell", url.Values{"key": {"secret"}, "number": {"5"}, "buyer_name": {"Bruno Lima"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"ticket already sold"}`, w.Body.String())
	assert.Equal(t, "Ana Souza", svc.sold[5].BuyerName)
}

// TestReleaseEndpoint checks releasing frees the number and redirects back
func TestReleaseEndpoint(t *testing.T) {
	svc := newStubTicketService(10)
	svc.sold[5] = &entity.Ticket{Number: 5, Status: entity.TicketStatusSold, BuyerName: "Ana Souza"}
	router := newTestRouter(svc, newStubInventoryService())

	w := postForm(router, "/admin/release", url.Values{"key": {"secret"}, "number": {"5"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/?key=secret", w.Header().Get("Location"))
	assert.NotContains(t, svc.sold, 5)

	w = postForm(router, "/admin/release", url.Values{"key": {"secret"}, "number": {"abc"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid ticket number"}`, w.Body.String())
}

// TestSetPaidEndpoint checks the paid toggle and its redirect target
func TestSetPaidEndpoint(t *testing.T) {
	svc := newStubTicketService(10)
	svc.sold[5] = &entity.Ticket{Number: 5, Status: entity.TicketStatusSold, BuyerName: "Ana Souza"}
	router := newTestRouter(svc, newStubInventoryService())

	w := postForm(router, "/admin/paid", url.Values{"key": {"secret"}, "number": {"5"}, "paid": {"1"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/buyers?key=secret", w.Header().Get("Location"))
	assert.True(t, svc.sold[5].Paid)

	w = postForm(router, "/admin/paid", url.Values{"key": {"secret"}, "number": {"5"}, "paid": {"0"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.False(t, svc.sold[5].Paid)
}

// newTestRouter wires the handlers the same way InitRoutes does, minus the
// database-backed health check.
func newTestRouter(ticketSvc service.TicketService, inventorySvc service.InventoryService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	checker := security.NewKeyChecker("secret", "")
	handler := NewTicketHandler(ticketSvc, inventorySvc)

	router := gin.New()

	api := router.Group("/api")
	{
		api.GET("/tickets/:number", handler.Probe)
		api.GET("/summary", handler.Summary)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AdminKey(checker))
	{
		admin.POST("/sell", handler.Sell)
		admin.POST("/release", handler.Release)
		admin.POST("/paid", handler.SetPaid)
	}

	return router
}

func postForm(router *gin.Engine, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// stubTicketService keeps sold tickets in a plain map, no storage behind it
type stubTicketService struct {
	total int
	sold  map[int]*entity.Ticket
}

func newStubTicketService(total int) *stubTicketService {
	return &stubTicketService{total: total, sold: make(map[int]*entity.Ticket)}
}

func (s *stubTicketService) Sell(ctx context.Context, req *service.SellRequest) (*entity.Ticket, error) {
	if req.Number < 1 || req.Number > s.total {
		return nil, entity.ErrInvalidTicketNumber
	}
	if strings.TrimSpace(req.BuyerName) == "" {
		return nil, entity.ErrBuyerNameRequired
	}
	if _, ok := s.sold[req.Number]; ok {
		return nil, entity.ErrTicketAlreadySold
	}
	ticket := &entity.Ticket{
		Number:       req.Number,
		Status:       entity.TicketStatusSold,
		BuyerName:    req.BuyerName,
		BuyerContact: req.BuyerContact,
		Paid:         req.Paid,
		UpdatedAt:    time.Now().UTC(),
	}
	s.sold[req.Number] = ticket
	return ticket, nil
}

func (s *stubTicketService) Release(ctx context.Context, number int) error {
	if number < 1 || number > s.total {
		return entity.ErrInvalidTicketNumber
	}
	delete(s.sold, number)
	return nil
}

func (s *stubTicketService) SetPaid(ctx context.Context, number int, paid bool) error {
	if number < 1 || number > s.total {
		return entity.ErrInvalidTicketNumber
	}
	if ticket, ok := s.sold[number]; ok {
		ticket.Paid = paid
	}
	return nil
}

func (s *stubTicketService) GetTicket(ctx context.Context, number int) (*entity.Ticket, error) {
	if number < 1 || number > s.total {
		return nil, entity.ErrTicketNotFound
	}
	if ticket, ok := s.sold[number]; ok {
		return ticket, nil
	}
	return &entity.Ticket{Number: number, Status: entity.TicketStatusFree}, nil
}

// stubInventoryService hands back fixed figures for a pool of ten
type stubInventoryService struct{}

func newStubInventoryService() *stubInventoryService { return &stubInventoryService{} }

func (s *stubInventoryService) Summary(ctx context.Context) (*entity.InventorySummary, error) {
	return &entity.InventorySummary{
		Total:       10,
		FreeCount:   8,
		SoldCount:   2,
		PaidCount:   1,
		SoldRevenue: decimal.RequireFromString("10.00"),
		PaidRevenue: decimal.RequireFromString("5.00"),
	}, nil
}

func (s *stubInventoryService) WindowSummaries(ctx context.Context) ([]*entity.WindowSummary, error) {
	return []*entity.WindowSummary{
		{
			Window:           entity.Window{Label: entity.WindowOnline, From: 1, To: 4},
			InventorySummary: entity.InventorySummary{Total: 4, FreeCount: 2, SoldCount: 2, PaidCount: 1},
		},
		{
			Window:           entity.Window{Label: entity.WindowPrintable, From: 5, To: 10},
			InventorySummary: entity.InventorySummary{Total: 6, FreeCount: 6},
		},
	}, nil
}

func (s *stubInventoryService) Grid(ctx context.Context) ([]*entity.Ticket, error) {
	tickets := make([]*entity.Ticket, 0, 10)
	for n := 1; n <= 10; n++ {
		status := entity.TicketStatusFree
		if n == 2 || n == 7 {
			status = entity.TicketStatusSold
		}
		tickets = append(tickets, &entity.Ticket{Number: n, Status: status})
	}
	return tickets, nil
}

func (s *stubInventoryService) WindowTickets(ctx context.Context, label entity.WindowLabel) ([]*entity.Ticket, error) {
	return s.Grid(ctx)
}

func (s *stubInventoryService) Windows() []entity.Window {
	return []entity.Window{
		{Label: entity.WindowOnline, From: 1, To: 4},
		{Label: entity.WindowPrintable, From: 5, To: 10},
	}
}
