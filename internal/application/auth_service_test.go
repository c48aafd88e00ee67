package application

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PRASANNAPATIL12/2.31weddingcard/internal/domain/entity"
	"github.com/PRASANNAPATIL12/2.31weddingcard/internal/infrastructure/jsonfile"
	"github.com/PRASANNAPATIL12/2.31weddingcard/internal/session"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	users := jsonfile.NewStore[entity.User](filepath.Join(t.TempDir(), "users.json"), nil)
	return NewAuthService(users, session.NewRegistry(), nil)
}

func TestRegister_DistinctUsernames(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	a, err := svc.Register(ctx, "alice", "pw1")
	require.NoError(t, err)
	b, err := svc.Register(ctx, "bob", "pw2")
	require.NoError(t, err)

	assert.NotEqual(t, a.UserID, b.UserID)
	assert.Equal(t, "alice", a.Username)
	assert.Equal(t, "bob", b.Username)
	assert.NotEmpty(t, a.SessionID)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	_, err := svc.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "other")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegister_UsernameIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	_, err := svc.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Alice", "pw1")
	assert.NoError(t, err, "uniqueness check is an exact, case-sensitive match")
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	reg, err := svc.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		res, err := svc.Login(ctx, "alice", "pw1")
		require.NoError(t, err)
		assert.Equal(t, reg.UserID, res.UserID)
		assert.NotEqual(t, reg.SessionID, res.SessionID, "login issues a fresh session")

		u, err := svc.CurrentUser(ctx, res.SessionID)
		require.NoError(t, err)
		assert.Equal(t, reg.UserID, u.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "alice", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Login(ctx, "mallory", "pw1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestCurrentUser_InvalidSessions(t *testing.T) {
	ctx := context.Background()
	users := jsonfile.NewStore[entity.User](filepath.Join(t.TempDir(), "users.json"), nil)
	sessions := session.NewRegistry()
	svc := NewAuthService(users, sessions, nil)

	_, err := svc.CurrentUser(ctx, "never-issued")
	assert.ErrorIs(t, err, ErrInvalidSession)

	reg, err := svc.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	// shutdown clears every session
	sessions.ClearAll()
	_, err = svc.CurrentUser(ctx, reg.SessionID)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestRegister_StoresPasswordVerbatim(t *testing.T) {
	ctx := context.Background()
	users := jsonfile.NewStore[entity.User](filepath.Join(t.TempDir(), "users.json"), nil)
	svc := NewAuthService(users, session.NewRegistry(), nil)

	reg, err := svc.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	u, err := users.GetByID(ctx, reg.UserID)
	require.NoError(t, err)
	assert.Equal(t, "pw1", u.Password)
	assert.False(t, u.CreatedAt.IsZero())
}
