package repository

import (
	"context"

	"github.com/jhorlensofteng-web/rifa-maria-iza/internal/entity"
)

type TicketRepository interface {
	// Seeding
	Seed(ctx context.Context, total int) error

	// Read operations
	GetByNumber(ctx context.Context, number int) (*entity.Ticket, error)
	GetAll(ctx context.Context) ([]*entity.Ticket, error)
	GetByRange(ctx context.Context, from, to int) ([]*entity.Ticket, error)
	GetSold(ctx context.Context) ([]*entity.Ticket, error)

	// Write operations
	MarkSold(ctx context.Context, sale *entity.Ticket, onlyIfFree bool) error
	Release(ctx context.Context, number int) error
	SetPaid(ctx context.Context, number int, paid bool) error

	// Statistical operations
	CountByRange(ctx context.Context, from, to int) (entity.TicketCounts, error)
}
