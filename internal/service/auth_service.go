package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ticketd/ticketd/internal/auth"
	"github.com/ticketd/ticketd/internal/config"
	"github.com/ticketd/ticketd/internal/domain"
	"github.com/ticketd/ticketd/internal/events"
	"github.com/ticketd/ticketd/internal/persistence"
	"github.com/ticketd/ticketd/internal/repository"
	apperrors "github.com/ticketd/ticketd/pkg/util"
)

// AuthService coordinates signup, login and logout flows.
type AuthService struct {
	users      repository.UserRepository
	sessions   repository.SessionRepository
	cache      *persistence.SessionCache
	tokenMgr   *auth.TokenManager
	hasher     *auth.Hasher
	dispatcher events.Dispatcher
}

// AuthDependencies encapsulates collaborator requirements for auth service.
type AuthDependencies struct {
	UserRepo     repository.UserRepository
	SessionRepo  repository.SessionRepository
	SessionCache *persistence.SessionCache
	Dispatcher   events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		sessions:   deps.SessionRepo,
		cache:      deps.SessionCache,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTLMinutes),
		hasher:     auth.NewHasher(cfg.HashSecret, cfg.BcryptCost),
		dispatcher: deps.Dispatcher,
	}
}

// Signup creates a new account. The email check happens before insert; the
// users table itself carries no uniqueness constraint.
func (s *AuthService) Signup(ctx context.Context, displayName, email, password string) (*domain.User, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("user with that email already exists", map[string]any{"email": email})
	} else if err != pgx.ErrNoRows {
		return nil, apperrors.NewInternalError(err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	user := &domain.User{
		DisplayName:  displayName,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		Type:    events.EventUserRegistered,
		Payload: events.UserPayload{UserID: user.ID, Email: user.Email},
	})
	return user, nil
}

// Login verifies credentials, issues a signed token and persists it as a
// session row.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", time.Time{}, apperrors.NewNotFound("user", map[string]any{"email": email})
		}
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("incorrect email or password")
	}

	token, expiresAt, err := s.tokenMgr.GenerateToken(user.ID)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	session := &domain.Session{Token: token}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		Type:    events.EventSessionStarted,
		Payload: events.SessionPayload{UserID: user.ID},
	})
	return user, token, expiresAt, nil
}

// Logout deletes the session row for the token. Removing the row is the
// only revocation mechanism, so this must succeed for the token to stop
// authenticating.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.DeleteByToken(ctx, token); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("session", nil)
		}
		return apperrors.NewInternalError(err)
	}
	s.cache.Forget(ctx, token)

	var userID int64
	if claims, err := s.tokenMgr.ParseToken(token); err == nil {
		userID = claims.UserID
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		Type:    events.EventSessionEnded,
		Payload: events.SessionPayload{UserID: userID},
	})
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
