package service

import (
	"context"

	"github.com/jhorlensofteng-web/rifa-maria-iza/internal/entity"
)

type TicketService interface {
	// Sale lifecycle
	Sell(ctx context.Context, req *SellRequest) (*entity.Ticket, error)
	Release(ctx context.Context, number int) error
	SetPaid(ctx context.Context, number int, paid bool) error

	// Lookups
	GetTicket(ctx context.Context, number int) (*entity.Ticket, error)
}

type InventoryService interface {
	// Pool state
	Summary(ctx context.Context) (*entity.InventorySummary, error)
	WindowSummaries(ctx context.Context) ([]*entity.WindowSummary, error)

	// Display data
	Grid(ctx context.Context) ([]*entity.Ticket, error)
	WindowTickets(ctx context.Context, label entity.WindowLabel) ([]*entity.Ticket, error)
	Windows() []entity.Window
}

type ReportService interface {
	Buyers(ctx context.Context) ([]*entity.Ticket, error)
	BuyersPDF(ctx context.Context) ([]byte, error)
	BuyersCSV(ctx context.Context) ([]byte, error)
}
