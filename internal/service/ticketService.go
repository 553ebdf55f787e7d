package service

import (
	"context"
	"fmt"
	"strings"

	repository "github.com/jhorlensofteng-web/rifa-maria-iza/internal/database/postgres"
	"github.com/jhorlensofteng-web/rifa-maria-iza/internal/entity"
	"github.com/jhorlensofteng-web/rifa-maria-iza/internal/monitoring"
)

// Resell policies. Reject refuses to sell a ticket that is already sold,
// overwrite replaces the previous buyer (last write wins).
const (
	ResellPolicyReject    = "reject"
	ResellPolicyOverwrite = "overwrite"
)

// SellRequest represents the data needed to record a sale
type SellRequest struct {
	Number       int    `json:"number" form:"number" binding:"required"`
	BuyerName    string `json:"buyer_name" form:"buyer_name" binding:"required"`
	BuyerContact string `json:"buyer_contact" form:"buyer_contact"`
	Paid         bool   `json:"paid" form:"paid"`
}

type ticketService struct {
	ticketRepo   repository.TicketRepository
	totalTickets int
	resellPolicy string
}

// NewTicketService creates a new instance of TicketService
func NewTicketService(ticketRepo repository.TicketRepository, totalTickets int, resellPolicy string) TicketService {
	if resellPolicy != ResellPolicyOverwrite {
		resellPolicy = ResellPolicyReject
	}
	return &ticketService{
		ticketRepo:   ticketRepo,
		totalTickets: totalTickets,
		resellPolicy: resellPolicy,
	}
}

func (s *ticketService) Sell(ctx context.Context, req *SellRequest) (*entity.Ticket, error) {
	if req.Number < 1 || req.Number > s.totalTickets {
		return nil, entity.ErrInvalidTicketNumber
	}

	buyerName := strings.TrimSpace(req.BuyerName)
	if buyerName == "" {
		return nil, entity.ErrBuyerNameRequired
	}

	sale := &entity.Ticket{
		Number:       req.Number,
		BuyerName:    buyerName,
		BuyerContact: strings.TrimSpace(req.BuyerContact),
		Paid:         req.Paid,
	}

	onlyIfFree := s.resellPolicy == ResellPolicyReject
	if err := s.ticketRepo.MarkSold(ctx, sale, onlyIfFree); err != nil {
		return nil, fmt.Errorf("failed to sell ticket %d: %w", req.Number, err)
	}

	monitoring.TrackSale()
	return sale, nil
}

func (s *ticketService) Release(ctx context.Context, number int) error {
	if number < 1 || number > s.totalTickets {
		return entity.ErrInvalidTicketNumber
	}

	if err := s.ticketRepo.Release(ctx, number); err != nil {
		return fmt.Errorf("failed to release ticket %d: %w", number, err)
	}

	monitoring.TrackRelease()
	return nil
}

func (s *ticketService) SetPaid(ctx context.Context, number int, paid bool) error {
	if number < 1 || number > s.totalTickets {
		return entity.ErrInvalidTicketNumber
	}

	if err := s.ticketRepo.SetPaid(ctx, number, paid); err != nil {
		return fmt.Errorf("failed to set paid flag on ticket %d: %w", number, err)
	}

	monitoring.TrackPaidToggle(paid)
	return nil
}

// GetTicket backs the public status probe. Numbers outside the configured
// pool look exactly like missing rows.
func (s *ticketService) GetTicket(ctx context.Context, number int) (*entity.Ticket, error) {
	if number < 1 || number > s.totalTickets {
		return nil, entity.ErrTicketNotFound
	}

	ticket, err := s.ticketRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket %d: %w", number, err)
	}

	return ticket, nil
}
