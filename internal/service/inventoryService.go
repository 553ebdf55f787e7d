package service

import (
	"context"
	"fmt"

	repository "github.com/jhorlensofteng-web/rifa-maria-iza/internal/database/postgres"
	"github.com/jhorlensofteng-web/rifa-maria-iza/internal/entity"

	"github.com/shopspring/decimal"
)

type inventoryService struct {
	ticketRepo    repository.TicketRepository
	totalTickets  int
	onlineTickets int
	ticketPrice   decimal.Decimal
}

// NewInventoryService creates a new instance of InventoryService
func NewInventoryService(ticketRepo repository.TicketRepository, totalTickets, onlineTickets int, ticketPrice decimal.Decimal) InventoryService {
	return &inventoryService{
		ticketRepo:    ticketRepo,
		totalTickets:  totalTickets,
		onlineTickets: onlineTickets,
		ticketPrice:   ticketPrice,
	}
}

// Windows reports the configured partition of the pool. Without an online
// limit the whole pool is one online window; with one, numbers above the
// limit belong to the printable window, which may be empty when the limit
// equals the pool size.
func (s *inventoryService) Windows() []entity.Window {
	if s.onlineTickets <= 0 {
		return []entity.Window{
			{Label: entity.WindowOnline, From: 1, To: s.totalTickets},
		}
	}

	limit := s.onlineTickets
	if limit > s.totalTickets {
		limit = s.totalTickets
	}

	return []entity.Window{
		{Label: entity.WindowOnline, From: 1, To: limit},
		{Label: entity.WindowPrintable, From: limit + 1, To: s.totalTickets},
	}
}

func (s *inventoryService) Summary(ctx context.Context) (*entity.InventorySummary, error) {
	counts, err := s.ticketRepo.CountByRange(ctx, 1, s.totalTickets)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize inventory: %w", err)
	}

	return s.buildSummary(counts), nil
}

func (s *inventoryService) WindowSummaries(ctx context.Context) ([]*entity.WindowSummary, error) {
	windows := s.Windows()

	summaries := make([]*entity.WindowSummary, 0, len(windows))
	for _, window := range windows {
		counts, err := s.ticketRepo.CountByRange(ctx, window.From, window.To)
		if err != nil {
			return nil, fmt.Errorf("failed to summarize %s window: %w", window.Label, err)
		}
		summaries = append(summaries, &entity.WindowSummary{
			Window:           window,
			InventorySummary: *s.buildSummary(counts),
		})
	}

	return summaries, nil
}

func (s *inventoryService) Grid(ctx context.Context) ([]*entity.Ticket, error) {
	tickets, err := s.ticketRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket grid: %w", err)
	}

	return tickets, nil
}

func (s *inventoryService) WindowTickets(ctx context.Context, label entity.WindowLabel) ([]*entity.Ticket, error) {
	for _, window := range s.Windows() {
		if window.Label != label {
			continue
		}
		if window.Size() == 0 {
			return []*entity.Ticket{}, nil
		}
		tickets, err := s.ticketRepo.GetByRange(ctx, window.From, window.To)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s window tickets: %w", label, err)
		}
		return tickets, nil
	}

	return nil, fmt.Errorf("unknown window %q: %w", label, entity.ErrInvalidInput)
}

func (s *inventoryService) buildSummary(counts entity.TicketCounts) *entity.InventorySummary {
	return &entity.InventorySummary{
		Total:       counts.Total,
		FreeCount:   counts.Free(),
		SoldCount:   counts.Sold,
		PaidCount:   counts.Paid,
		SoldRevenue: s.ticketPrice.Mul(decimal.NewFromInt(int64(counts.Sold))),
		PaidRevenue: s.ticketPrice.Mul(decimal.NewFromInt(int64(counts.Paid))),
	}
}
