package service

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ticketd/ticketd/internal/domain"
	"github.com/ticketd/ticketd/internal/events"
	"github.com/ticketd/ticketd/internal/filter"
	"github.com/ticketd/ticketd/internal/repository"
	apperrors "github.com/ticketd/ticketd/pkg/util"
)

// TicketCreateInput carries fields for a new ticket. Any status sent by the
// client is ignored: a ticket always starts Open.
type TicketCreateInput struct {
	Title        string
	Body         string
	Labels       []domain.Label
	AssignedUser *int64
}

// TicketEditInput overwrites every mutable field of an existing ticket.
type TicketEditInput struct {
	Title  string
	Body   string
	Labels []domain.Label
	Status domain.Status
}

// TicketService coordinates ticket CRUD and filtering.
type TicketService struct {
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
}

// NewTicketService builds the service.
func NewTicketService(tickets repository.TicketRepository, dispatcher events.Dispatcher) *TicketService {
	return &TicketService{tickets: tickets, dispatcher: dispatcher}
}

// Create persists a new ticket with server-set timestamps and forced Open
// status.
func (s *TicketService) Create(ctx context.Context, input TicketCreateInput) (*domain.Ticket, error) {
	now := nowMillis()
	ticket := &domain.Ticket{
		Title:        input.Title,
		Body:         input.Body,
		Created:      now,
		LastModified: now,
		Labels:       input.Labels,
		AssignedUser: input.AssignedUser,
		Status:       domain.StatusOpen,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		Type:    events.EventTicketCreated,
		Payload: events.TicketPayload{TicketID: ticket.ID, Title: ticket.Title},
	})
	return ticket, nil
}

// List returns every ticket.
func (s *TicketService) List(ctx context.Context) ([]domain.Ticket, error) {
	tickets, err := s.tickets.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if tickets == nil {
		tickets = []domain.Ticket{}
	}
	return tickets, nil
}

// Get returns a single ticket by id.
func (s *TicketService) Get(ctx context.Context, id int64) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"id": id})
		}
		return nil, apperrors.NewInternalError(err)
	}
	return ticket, nil
}

// Edit overwrites the mutable fields of a ticket and refreshes its
// last-modified timestamp.
func (s *TicketService) Edit(ctx context.Context, id int64, input TicketEditInput) (*domain.Ticket, error) {
	ticket := &domain.Ticket{
		ID:           id,
		Title:        input.Title,
		Body:         input.Body,
		Labels:       input.Labels,
		Status:       input.Status,
		LastModified: nowMillis(),
	}
	if err := s.tickets.Update(ctx, ticket); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"id": id})
		}
		return nil, apperrors.NewInternalError(err)
	}

	updated, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		Type:    events.EventTicketEdited,
		Payload: events.TicketPayload{TicketID: updated.ID, Title: updated.Title},
	})
	return updated, nil
}

// Delete removes a ticket and returns the deleted row.
func (s *TicketService) Delete(ctx context.Context, id int64) (*domain.Ticket, error) {
	ticket, err := s.tickets.Delete(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"id": id})
		}
		return nil, apperrors.NewInternalError(err)
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		Type:    events.EventTicketDeleted,
		Payload: events.TicketPayload{TicketID: ticket.ID, Title: ticket.Title},
	})
	return ticket, nil
}

// Filter loads all tickets and applies the filter in memory. The label
// column is opaque JSON text to the storage engine, so matching happens
// after decode rather than in SQL; the row count makes a full scan
// acceptable here.
func (s *TicketService) Filter(ctx context.Context, f filter.Filter) ([]domain.Ticket, error) {
	tickets, err := s.tickets.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return filter.Apply(f, tickets), nil
}

func nowMillis() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}
