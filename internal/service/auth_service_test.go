package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ticketd/ticketd/internal/config"
	"github.com/ticketd/ticketd/internal/events"
	"github.com/ticketd/ticketd/internal/persistence"
)

func newAuthService(users *fakeUserRepo, sessions *fakeSessionRepo, ttlMinutes int) *AuthService {
	cfg := config.AuthConfig{
		JWTSecret:       "test-jwt-secret",
		HashSecret:      "test-pepper",
		TokenTTLMinutes: ttlMinutes,
		BcryptCost:      bcrypt.MinCost,
	}
	return NewAuthService(cfg, AuthDependencies{
		UserRepo:     users,
		SessionRepo:  sessions,
		SessionCache: persistence.NewSessionCache(nil, 0),
		Dispatcher:   events.NewInMemoryDispatcher(),
	})
}

func TestSignupStoresHashedPassword(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users, newFakeSessionRepo(), 60)

	user, err := svc.Signup(context.Background(), "User", "test@example.com", "123")
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", user.Email)

	stored, err := users.GetByEmail(context.Background(), "test@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "123", stored.PasswordHash)
}

func TestSignupDuplicateEmailConflicts(t *testing.T) {
	svc := newAuthService(newFakeUserRepo(), newFakeSessionRepo(), 60)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "User", "test@example.com", "123")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "Other", "test@example.com", "456")
	assert.Equal(t, http.StatusConflict, httpStatus(t, err))
}

func TestLoginIssuesSessionBackedToken(t *testing.T) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	svc := newAuthService(users, sessions, 60)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "User", "test@example.com", "123")
	require.NoError(t, err)

	user, token, expiresAt, err := svc.Login(ctx, "test@example.com", "123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.False(t, expiresAt.IsZero())

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	session, err := sessions.GetByToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, token, session.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(newFakeUserRepo(), newFakeSessionRepo(), 60)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "User", "test@example.com", "123")
	require.NoError(t, err)

	_, _, _, err = svc.Login(ctx, "test@example.com", "wrong")
	assert.Equal(t, http.StatusUnauthorized, httpStatus(t, err))
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newAuthService(newFakeUserRepo(), newFakeSessionRepo(), 60)

	_, _, _, err := svc.Login(context.Background(), "nobody@example.com", "123")
	assert.Equal(t, http.StatusNotFound, httpStatus(t, err))
}

func TestLogoutRevokesSession(t *testing.T) {
	sessions := newFakeSessionRepo()
	svc := newAuthService(newFakeUserRepo(), sessions, 60)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "User", "test@example.com", "123")
	require.NoError(t, err)
	_, token, _, err := svc.Login(ctx, "test@example.com", "123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, token))

	_, err = sessions.GetByToken(ctx, token)
	assert.Error(t, err, "session row must be gone after logout")

	err = svc.Logout(ctx, token)
	assert.Equal(t, http.StatusNotFound, httpStatus(t, err), "second logout finds no session")
}
