package entity

import "errors"

var (
	// Ticket errors
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrTicketAlreadySold   = errors.New("ticket already sold")
	ErrInvalidTicketNumber = errors.New("ticket number out of range")
	ErrBuyerNameRequired   = errors.New("buyer name is required")

	// General errors
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden operation")
)
