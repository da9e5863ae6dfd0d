package service

import (
	"context"
	"sort"

	"github.com/jackc/pgx/v5"

	"github.com/ticketd/ticketd/internal/domain"
)

// In-memory repository fakes backing the service tests.

type fakeTicketRepo struct {
	nextID  int64
	tickets map[int64]domain.Ticket
	failAll bool
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{nextID: 1, tickets: make(map[int64]domain.Ticket)}
}

var errStorage = pgx.ErrTxClosed // stand-in for an unexpected storage failure

func (r *fakeTicketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	if r.failAll {
		return errStorage
	}
	ticket.ID = r.nextID
	r.nextID++
	r.tickets[ticket.ID] = *ticket
	return nil
}

func (r *fakeTicketRepo) Update(_ context.Context, ticket *domain.Ticket) error {
	if r.failAll {
		return errStorage
	}
	existing, ok := r.tickets[ticket.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	existing.Title = ticket.Title
	existing.Body = ticket.Body
	existing.Labels = ticket.Labels
	existing.Status = ticket.Status
	existing.LastModified = ticket.LastModified
	r.tickets[ticket.ID] = existing
	return nil
}

func (r *fakeTicketRepo) GetByID(_ context.Context, id int64) (*domain.Ticket, error) {
	if r.failAll {
		return nil, errStorage
	}
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &ticket, nil
}

func (r *fakeTicketRepo) List(_ context.Context) ([]domain.Ticket, error) {
	if r.failAll {
		return nil, errStorage
	}
	ids := make([]int64, 0, len(r.tickets))
	for id := range r.tickets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	result := make([]domain.Ticket, 0, len(ids))
	for _, id := range ids {
		result = append(result, r.tickets[id])
	}
	return result, nil
}

func (r *fakeTicketRepo) Delete(_ context.Context, id int64) (*domain.Ticket, error) {
	if r.failAll {
		return nil, errStorage
	}
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	delete(r.tickets, id)
	return &ticket, nil
}

type fakeUserRepo struct {
	nextID int64
	users  map[int64]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[int64]domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type fakeSessionRepo struct {
	nextID   int64
	sessions map[string]domain.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{nextID: 1, sessions: make(map[string]domain.Session)}
}

func (r *fakeSessionRepo) Create(_ context.Context, session *domain.Session) error {
	session.ID = r.nextID
	r.nextID++
	r.sessions[session.Token] = *session
	return nil
}

func (r *fakeSessionRepo) GetByToken(_ context.Context, token string) (*domain.Session, error) {
	session, ok := r.sessions[token]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &session, nil
}

func (r *fakeSessionRepo) DeleteByToken(_ context.Context, token string) error {
	if _, ok := r.sessions[token]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.sessions, token)
	return nil
}
