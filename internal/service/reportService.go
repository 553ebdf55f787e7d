package service

import (
	"context"
	"fmt"
	"time"

	repository "github.com/jhorlensofteng-web/rifa-maria-iza/internal/database/postgres"
	"github.com/jhorlensofteng-web/rifa-maria-iza/internal/entity"
	"github.com/jhorlensofteng-web/rifa-maria-iza/internal/report"

	"github.com/shopspring/decimal"
)

type reportService struct {
	ticketRepo  repository.TicketRepository
	title       string
	ticketPrice decimal.Decimal
}

// NewReportService creates a new instance of ReportService
func NewReportService(ticketRepo repository.TicketRepository, title string, ticketPrice decimal.Decimal) ReportService {
	return &reportService{
		ticketRepo:  ticketRepo,
		title:       title,
		ticketPrice: ticketPrice,
	}
}

// Buyers lists sold tickets only, most recently updated first.
func (s *reportService) Buyers(ctx context.Context) ([]*entity.Ticket, error) {
	tickets, err := s.ticketRepo.GetSold(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get buyers: %w", err)
	}

	return tickets, nil
}

func (s *reportService) BuyersPDF(ctx context.Context) ([]byte, error) {
	doc, err := s.buildReport(ctx)
	if err != nil {
		return nil, err
	}

	return report.BuildPDF(doc)
}

func (s *reportService) BuyersCSV(ctx context.Context) ([]byte, error) {
	doc, err := s.buildReport(ctx)
	if err != nil {
		return nil, err
	}

	return report.BuildCSV(doc)
}

func (s *reportService) buildReport(ctx context.Context) (*report.BuyersReport, error) {
	tickets, err := s.ticketRepo.GetSold(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get buyers for report: %w", err)
	}

	return &report.BuyersReport{
		Title:       s.title,
		GeneratedAt: time.Now().UTC(),
		Tickets:     tickets,
		TicketPrice: s.ticketPrice,
	}, nil
}
