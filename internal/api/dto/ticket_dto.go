package dto

import "github.com/ticketd/ticketd/internal/domain"

// CreateTicketRequest payload for POST /tickets. Pointer fields distinguish
// a missing key from a zero value so incomplete bodies fail validation the
// same way malformed JSON does.
type CreateTicketRequest struct {
	Title        *string  `json:"title"`
	Body         *string  `json:"body"`
	Labels       []string `json:"labels"`
	AssignedUser *int64   `json:"assigned_user"`
}

// EditTicketRequest payload for POST /tickets/:id. Every mutable field is
// required; the edit is a full overwrite.
type EditTicketRequest struct {
	Title  *string  `json:"title"`
	Body   *string  `json:"body"`
	Labels []string `json:"labels"`
	Status *string  `json:"status"`
}

// FilterRequest payload for POST /filter. Absent criteria match every
// ticket.
type FilterRequest struct {
	Title        *string  `json:"title"`
	AssignedUser *int64   `json:"assigned_user"`
	Labels       []string `json:"labels"`
	Status       *string  `json:"status"`
}

// TicketResponse is the wire form of a ticket. Labels render as a JSON
// array of strings, not the escaped string stored in the labels column.
type TicketResponse struct {
	ID           int64          `json:"id"`
	Title        string         `json:"title"`
	Body         string         `json:"body"`
	Created      string         `json:"created"`
	LastModified string         `json:"last_modified"`
	Labels       []domain.Label `json:"labels"`
	AssignedUser *int64         `json:"assigned_user"`
	Status       domain.Status  `json:"status"`
}

// NewTicketResponse maps a domain ticket to its wire form.
func NewTicketResponse(t *domain.Ticket) TicketResponse {
	labels := t.Labels
	if labels == nil {
		labels = []domain.Label{}
	}
	return TicketResponse{
		ID:           t.ID,
		Title:        t.Title,
		Body:         t.Body,
		Created:      t.Created,
		LastModified: t.LastModified,
		Labels:       labels,
		AssignedUser: t.AssignedUser,
		Status:       t.Status,
	}
}

// NewTicketListResponse maps a ticket slice, always yielding a non-nil
// slice so empty results render as [].
func NewTicketListResponse(tickets []domain.Ticket) []TicketResponse {
	items := make([]TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, NewTicketResponse(&tickets[i]))
	}
	return items
}
