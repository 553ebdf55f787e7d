package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jhorlensofteng-web/rifa-maria-iza/internal/entity"
)

type ticketRepository struct {
	db *sql.DB
}

func NewTicketRepository(db *sql.DB) TicketRepository {
	return &ticketRepository{db: db}
}

// Seed inserts every missing number in [1, total]. Numbers that already
// exist keep their state, so re-running it is safe and raising the total
// between deployments only appends.
func (r *ticketRepository) Seed(ctx context.Context, total int) error {
	query := `
		INSERT INTO tickets (number, status, paid, updated_at)
		SELECT gs, 'free', FALSE, $2
		FROM generate_series(1, $1) AS gs
		ON CONFLICT (number) DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, query, total, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to seed tickets: %w", err)
	}

	return nil
}

// GetByNumber retrieves a single ticket by its number
func (r *ticketRepository) GetByNumber(ctx context.Context, number int) (*entity.Ticket, error) {
	query := `
		SELECT number, status, buyer_name, buyer_contact, paid, updated_at
		FROM tickets
		WHERE number = $1
	`

	ticket, err := scanTicket(r.db.QueryRowContext(ctx, query, number))
	if err == sql.ErrNoRows {
		return nil, entity.ErrTicketNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return ticket, nil
}

func (r *ticketRepository) GetAll(ctx context.Context) ([]*entity.Ticket, error) {
	query := `
		SELECT number, status, buyer_name, buyer_contact, paid, updated_at
		FROM tickets
		ORDER BY number
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tickets: %w", err)
	}
	defer rows.Close()

	return collectTickets(rows)
}

func (r *ticketRepository) GetByRange(ctx context.Context, from, to int) ([]*entity.Ticket, error) {
	query := `
		SELECT number, status, buyer_name, buyer_contact, paid, updated_at
		FROM tickets
		WHERE number BETWEEN $1 AND $2
		ORDER BY number
	`

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query tickets by range: %w", err)
	}
	defer rows.Close()

	return collectTickets(rows)
}

// GetSold returns sold tickets, most recently updated first. This is the
// order the buyers report prints in.
func (r *ticketRepository) GetSold(ctx context.Context) ([]*entity.Ticket, error) {
	query := `
		SELECT number, status, buyer_name, buyer_contact, paid, updated_at
		FROM tickets
		WHERE status = 'sold'
		ORDER BY updated_at DESC, number
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sold tickets: %w", err)
	}
	defer rows.Close()

	return collectTickets(rows)
}

// MarkSold records a sale in a single conditional statement. With onlyIfFree
// the update matches only free rows, so two concurrent sales of the same
// number cannot both win.
func (r *ticketRepository) MarkSold(ctx context.Context, sale *entity.Ticket, onlyIfFree bool) error {
	now := time.Now().UTC()

	query := `
		UPDATE tickets
		SET status = 'sold', buyer_name = $1, buyer_contact = $2, paid = $3, updated_at = $4
		WHERE number = $5`
	if onlyIfFree {
		query += ` AND status = 'free'`
	}

	result, err := r.db.ExecContext(ctx, query,
		sale.BuyerName,
		sale.BuyerContact,
		sale.Paid,
		now,
		sale.Number,
	)
	if err != nil {
		return fmt.Errorf("failed to mark ticket sold: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		if onlyIfFree {
			// The row may exist and already be sold.
			var status entity.TicketStatus
			err := r.db.QueryRowContext(ctx, `SELECT status FROM tickets WHERE number = $1`, sale.Number).Scan(&status)
			if err == sql.ErrNoRows {
				return entity.ErrTicketNotFound
			}
			if err != nil {
				return fmt.Errorf("failed to check ticket status: %w", err)
			}
			if status == entity.TicketStatusSold {
				return entity.ErrTicketAlreadySold
			}
		}
		return entity.ErrTicketNotFound
	}

	sale.Status = entity.TicketStatusSold
	sale.UpdatedAt = now
	return nil
}

// Release frees a ticket and clears the buyer fields. Releasing a ticket
// that is already free is a no-op that still succeeds.
func (r *ticketRepository) Release(ctx context.Context, number int) error {
	query := `
		UPDATE tickets
		SET status = 'free', buyer_name = NULL, buyer_contact = NULL, paid = FALSE, updated_at = $1
		WHERE number = $2
	`

	result, err := r.db.ExecContext(ctx, query, time.Now().UTC(), number)
	if err != nil {
		return fmt.Errorf("failed to release ticket: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrTicketNotFound
	}

	return nil
}

// SetPaid flips only the payment flag, regardless of status.
func (r *ticketRepository) SetPaid(ctx context.Context, number int, paid bool) error {
	query := `
		UPDATE tickets
		SET paid = $1, updated_at = $2
		WHERE number = $3
	`

	result, err := r.db.ExecContext(ctx, query, paid, time.Now().UTC(), number)
	if err != nil {
		return fmt.Errorf("failed to set paid flag: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrTicketNotFound
	}

	return nil
}

// CountByRange aggregates the pool state in one scan.
func (r *ticketRepository) CountByRange(ctx context.Context, from, to int) (entity.TicketCounts, error) {
	query := `
		SELECT
			COUNT(*) as total,
			COALESCE(SUM(CASE WHEN status = 'sold' THEN 1 ELSE 0 END), 0) as sold,
			COALESCE(SUM(CASE WHEN status = 'sold' AND paid THEN 1 ELSE 0 END), 0) as paid
		FROM tickets
		WHERE number BETWEEN $1 AND $2
	`

	var counts entity.TicketCounts
	err := r.db.QueryRowContext(ctx, query, from, to).Scan(
		&counts.Total,
		&counts.Sold,
		&counts.Paid,
	)
	if err != nil {
		return entity.TicketCounts{}, fmt.Errorf("failed to count tickets: %w", err)
	}

	return counts, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTicket(row rowScanner) (*entity.Ticket, error) {
	var (
		ticket  entity.Ticket
		name    sql.NullString
		contact sql.NullString
	)

	err := row.Scan(
		&ticket.Number,
		&ticket.Status,
		&name,
		&contact,
		&ticket.Paid,
		&ticket.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	ticket.BuyerName = name.String
	ticket.BuyerContact = contact.String
	return &ticket, nil
}

func collectTickets(rows *sql.Rows) ([]*entity.Ticket, error) {
	var tickets []*entity.Ticket
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, ticket)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tickets: %w", err)
	}

	return tickets, nil
}
