package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ticketd/ticketd/internal/domain"
)

// TicketRepository encapsulates ticket persistence. Not-found is reported as
// pgx.ErrNoRows; any other error is a generic storage failure.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	Update(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
	List(ctx context.Context) ([]domain.Ticket, error)
	Delete(ctx context.Context, id int64) (*domain.Ticket, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	labels, err := domain.EncodeLabels(ticket.Labels)
	if err != nil {
		return err
	}

	const query = `
        INSERT INTO tickets (title, body, created, last_modified, labels, assigned_user, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id`
	return r.pool.QueryRow(ctx, query,
		ticket.Title,
		ticket.Body,
		ticket.Created,
		ticket.LastModified,
		labels,
		ticket.AssignedUser,
		ticket.Status,
	).Scan(&ticket.ID)
}

func (r *ticketRepository) Update(ctx context.Context, ticket *domain.Ticket) error {
	labels, err := domain.EncodeLabels(ticket.Labels)
	if err != nil {
		return err
	}

	const query = `
        UPDATE tickets SET title=$1, body=$2, labels=$3, status=$4, last_modified=$5
        WHERE id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		ticket.Title,
		ticket.Body,
		labels,
		ticket.Status,
		ticket.LastModified,
		ticket.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	const query = `
        SELECT id, title, body, created, last_modified, labels, assigned_user, status
        FROM tickets WHERE id=$1`
	return scanTicket(r.pool.QueryRow(ctx, query, id))
}

func (r *ticketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	const query = `
        SELECT id, title, body, created, last_modified, labels, assigned_user, status
        FROM tickets ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Ticket
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *ticket)
	}
	return result, rows.Err()
}

func (r *ticketRepository) Delete(ctx context.Context, id int64) (*domain.Ticket, error) {
	const query = `
        DELETE FROM tickets WHERE id=$1
        RETURNING id, title, body, created, last_modified, labels, assigned_user, status`
	return scanTicket(r.pool.QueryRow(ctx, query, id))
}

func scanTicket(row pgx.Row) (*domain.Ticket, error) {
	var (
		ticket domain.Ticket
		labels string
		status string
	)
	if err := row.Scan(
		&ticket.ID,
		&ticket.Title,
		&ticket.Body,
		&ticket.Created,
		&ticket.LastModified,
		&labels,
		&ticket.AssignedUser,
		&status,
	); err != nil {
		return nil, err
	}

	decoded, err := domain.DecodeLabels(labels)
	if err != nil {
		return nil, err
	}
	ticket.Labels = decoded

	parsed, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	ticket.Status = parsed

	return &ticket, nil
}
