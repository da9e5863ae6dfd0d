// Package filter implements the ticket filter engine: an AND of independent
// boolean predicates, where absent criteria match vacuously.
package filter

import (
	"strings"

	"github.com/ticketd/ticketd/internal/domain"
)

// Filter captures the optional search criteria. Nil fields (and a nil label
// slice) impose no constraint.
type Filter struct {
	Title        *string
	AssignedUser *int64
	Labels       []domain.Label
	Status       *domain.Status
}

// Matches reports whether the ticket satisfies every supplied criterion.
func (f Filter) Matches(t *domain.Ticket) bool {
	return MatchesTitle(f.Title, t) &&
		MatchesAssignedUser(f.AssignedUser, t) &&
		MatchesLabels(f.Labels, t) &&
		MatchesStatus(f.Status, t)
}

// MatchesTitle checks case-sensitive substring containment.
func MatchesTitle(title *string, t *domain.Ticket) bool {
	if title == nil {
		return true
	}
	return strings.Contains(t.Title, *title)
}

// MatchesAssignedUser checks exact assignee equality. A ticket with no
// assignee never matches a present criterion; it is not treated as assigned
// to user 0.
func MatchesAssignedUser(userID *int64, t *domain.Ticket) bool {
	if userID == nil {
		return true
	}
	if t.AssignedUser == nil {
		return false
	}
	return *t.AssignedUser == *userID
}

// MatchesLabels requires the ticket to carry every requested label.
func MatchesLabels(labels []domain.Label, t *domain.Ticket) bool {
	for _, label := range labels {
		if !t.HasLabel(label) {
			return false
		}
	}
	return true
}

// MatchesStatus checks status equality.
func MatchesStatus(status *domain.Status, t *domain.Ticket) bool {
	if status == nil {
		return true
	}
	return t.Status == *status
}

// Apply returns the tickets matching the filter, preserving input order.
// Always returns a non-nil slice so an empty result renders as [].
func Apply(f Filter, tickets []domain.Ticket) []domain.Ticket {
	matched := make([]domain.Ticket, 0, len(tickets))
	for i := range tickets {
		if f.Matches(&tickets[i]) {
			matched = append(matched, tickets[i])
		}
	}
	return matched
}
