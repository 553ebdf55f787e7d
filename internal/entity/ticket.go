package entity

import (
	"fmt"
	"time"
)

type TicketStatus string

const (
	TicketStatusFree TicketStatus = "free"
	TicketStatusSold TicketStatus = "sold"
)

type Ticket struct {
	Number       int          `json:"number" db:"number"`
	Status       TicketStatus `json:"status" db:"status"`
	BuyerName    string       `json:"buyer_name,omitempty" db:"buyer_name"`
	BuyerContact string       `json:"buyer_contact,omitempty" db:"buyer_contact"`
	Paid         bool         `json:"paid" db:"paid"`
	UpdatedAt    time.Time    `json:"updated_at" db:"updated_at"`
}

func (t *Ticket) IsSold() bool {
	return t.Status == TicketStatusSold
}

// DisplayNumber renders the number the way it appears on printed tickets.
func (t *Ticket) DisplayNumber() string {
	return fmt.Sprintf("#%03d", t.Number)
}

func (t *Ticket) PaymentLabel() string {
	if t.Paid {
		return "Paid"
	}
	return "Pending"
}
