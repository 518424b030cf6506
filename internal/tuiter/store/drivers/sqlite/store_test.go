package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tuiterhq/tuiter/internal/tuiter/domain"
	"github.com/tuiterhq/tuiter/internal/tuiter/store"
	"github.com/tuiterhq/tuiter/internal/tuiter/store/drivers/sqlite"
	"github.com/tuiterhq/tuiter/pkg/idx"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())

	t.Cleanup(func() { _ = st.Close() })
	return st
}

func insertUser(t *testing.T, st *sqlite.Store, username string) domain.User {
	t.Helper()

	now := time.Now()
	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$fakesalt$fakehash",
		Joined:       now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), user))
	return user
}

func TestUsernameUniqueConstraint(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()

	insertUser(t, st, "alice")

	dup := domain.User{
		ID:           idx.New().String(),
		Username:     "alice",
		PasswordHash: "other",
		Joined:       time.Now(),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	err := st.Users().CreateUser(ctx, dup)
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestGetUserByUsername(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()

	user := insertUser(t, st, "alice")

	got, err := st.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)
	require.Equal(t, user.PasswordHash, got.PasswordHash)

	_, err = st.Users().GetUserByUsername(ctx, "nobody")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestSessionExpiry(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()

	user := insertUser(t, st, "alice")
	profile := domain.NewProfile(user)
	now := time.Now()

	live := domain.Session{
		ID:        idx.New().String(),
		TokenHash: "live-hash",
		UserID:    user.ID,
		Profile:   profile,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
	expired := domain.Session{
		ID:        idx.New().String(),
		TokenHash: "expired-hash",
		UserID:    user.ID,
		Profile:   profile,
		CreatedAt: now.Add(-2 * time.Hour),
		ExpiresAt: now.Add(-time.Hour),
	}
	require.NoError(t, st.Sessions().CreateSession(ctx, live))
	require.NoError(t, st.Sessions().CreateSession(ctx, expired))

	// Expired sessions are invisible to lookup even before cleanup runs.
	_, err := st.Sessions().GetSessionByTokenHash(ctx, "expired-hash")
	require.ErrorIs(t, err, store.ErrNotFound)

	got, err := st.Sessions().GetSessionByTokenHash(ctx, "live-hash")
	require.NoError(t, err)
	require.Equal(t, user.ID, got.UserID)
	require.Equal(t, profile.Username, got.Profile.Username)

	// Cleanup removes only the expired row.
	require.NoError(t, st.Sessions().DeleteExpiredSessions(ctx, time.Now()))

	_, err = st.Sessions().GetSessionByTokenHash(ctx, "live-hash")
	require.NoError(t, err)
}

func TestDeleteSessionIdempotent(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()

	require.NoError(t, st.Sessions().DeleteSessionByTokenHash(ctx, "never-stored"))
}

func TestDeleteUserCascadesSessions(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()

	user := insertUser(t, st, "alice")
	require.NoError(t, st.Sessions().CreateSession(ctx, domain.Session{
		ID:        idx.New().String(),
		TokenHash: "hash",
		UserID:    user.ID,
		Profile:   domain.NewProfile(user),
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	require.NoError(t, st.Users().DeleteUser(ctx, user.ID))

	_, err := st.Sessions().GetSessionByTokenHash(ctx, "hash")
	require.ErrorIs(t, err, store.ErrNotFound)
}
