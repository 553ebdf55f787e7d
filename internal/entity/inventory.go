package entity

import (
	"github.com/shopspring/decimal"
)

// TicketCounts is the raw aggregate a single scan of the pool produces.
type TicketCounts struct {
	Total int `json:"total"`
	Sold  int `json:"sold"`
	Paid  int `json:"paid"`
}

func (c TicketCounts) Free() int {
	return c.Total - c.Sold
}

// InventorySummary is the display-ready view of the pool state. Revenue
// figures are derived from the configured ticket price, nothing monetary is
// stored per ticket.
type InventorySummary struct {
	Total       int             `json:"total"`
	FreeCount   int             `json:"free_count"`
	SoldCount   int             `json:"sold_count"`
	PaidCount   int             `json:"paid_count"`
	SoldRevenue decimal.Decimal `json:"sold_revenue"`
	PaidRevenue decimal.Decimal `json:"paid_revenue"`
}

type WindowSummary struct {
	Window Window `json:"window"`
	InventorySummary
}

// SoldRate reports sale progress between 0.0 and 1.0.
func (s *InventorySummary) SoldRate() float64 {
	if s.Total == 0 {
		return 0.0
	}
	return float64(s.SoldCount) / float64(s.Total)
}

func (s *InventorySummary) SoldOut() bool {
	return s.Total > 0 && s.FreeCount == 0
}
