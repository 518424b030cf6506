package service_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tuiterhq/tuiter/internal/tuiter/domain"
	"github.com/tuiterhq/tuiter/internal/tuiter/service"
	"github.com/tuiterhq/tuiter/pkg/cryptox"
	"github.com/tuiterhq/tuiter/pkg/idx"
)

func TestSignup(t *testing.T) {
	auth, st := newAuthService(t)
	ctx := context.Background()

	profile, token := signupUser(t, auth, "alice", "secret-pass")

	require.Equal(t, "alice", profile.Username)
	require.NotEmpty(t, profile.ID)
	require.NotEmpty(t, token)

	// The stored credential is a hash, never the plaintext.
	user, err := st.Users().GetUserByID(ctx, profile.ID)
	require.NoError(t, err)
	require.NotEqual(t, "secret-pass", user.PasswordHash)
	require.True(t, strings.HasPrefix(user.PasswordHash, "$argon2id$"))
	require.NoError(t, cryptox.VerifyPassword("secret-pass", user.PasswordHash))

	// The returned token opens a live session.
	got, err := auth.Profile(ctx, token)
	require.NoError(t, err)
	require.Equal(t, profile.ID, got.ID)
	require.Equal(t, profile.Username, got.Username)
}

func TestSignupUsernameTaken(t *testing.T) {
	auth, st := newAuthService(t)
	ctx := context.Background()

	original, _ := signupUser(t, auth, "alice", "original-pass")

	_, _, err := auth.Signup(ctx, service.NewUser{
		Username: "alice",
		Password: "other-pass",
	})
	require.ErrorIs(t, err, service.ErrUsernameTaken)

	// The conflict must leave no trace: one record, credential untouched.
	users, err := st.Users().ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, original.ID, users[0].ID)
	require.NoError(t, cryptox.VerifyPassword("original-pass", users[0].PasswordHash))
}

func TestLogin(t *testing.T) {
	auth, _ := newAuthService(t)
	ctx := context.Background()

	signed, _ := signupUser(t, auth, "alice", "secret-pass")

	profile, token, err := auth.Login(ctx, "alice", "secret-pass")
	require.NoError(t, err)
	require.Equal(t, signed.ID, profile.ID)
	require.Equal(t, signed.Username, profile.Username)
	require.NotEmpty(t, token)

	got, err := auth.Profile(ctx, token)
	require.NoError(t, err)
	require.Equal(t, signed.ID, got.ID)
}

func TestLoginInvalidCredentials(t *testing.T) {
	auth, st := newAuthService(t)
	ctx := context.Background()

	profile, token := signupUser(t, auth, "alice", "secret-pass")

	// Wrong password and unknown username report the same failure kind.
	_, _, err := auth.Login(ctx, "alice", "wrong-pass")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, _, err = auth.Login(ctx, "nobody", "secret-pass")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)

	// A failed login alters nothing: the account and prior session survive.
	user, err := st.Users().GetUserByID(ctx, profile.ID)
	require.NoError(t, err)
	require.NoError(t, cryptox.VerifyPassword("secret-pass", user.PasswordHash))

	got, err := auth.Profile(ctx, token)
	require.NoError(t, err)
	require.Equal(t, profile.ID, got.ID)
}

func TestLoginLayersSessions(t *testing.T) {
	auth, _ := newAuthService(t)
	ctx := context.Background()

	_, first := signupUser(t, auth, "alice", "secret-pass")

	_, second, err := auth.Login(ctx, "alice", "secret-pass")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	// Both sessions resolve until they expire or are logged out.
	_, err = auth.Profile(ctx, first)
	require.NoError(t, err)
	_, err = auth.Profile(ctx, second)
	require.NoError(t, err)
}

func TestProfileWithoutSession(t *testing.T) {
	auth, _ := newAuthService(t)
	ctx := context.Background()

	_, err := auth.Profile(ctx, "")
	require.ErrorIs(t, err, service.ErrNoSession)

	_, err = auth.Profile(ctx, "not-a-real-token")
	require.ErrorIs(t, err, service.ErrNoSession)
}

func TestProfileExpiredSession(t *testing.T) {
	st := newTestStore(t)
	auth := &service.AuthService{Store: st, SessionTTL: time.Hour}
	ctx := context.Background()

	profile, _ := signupUser(t, auth, "alice", "secret-pass")

	// Plant a session that is already past its expiry.
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	require.NoError(t, err)
	require.NoError(t, st.Sessions().CreateSession(ctx, domain.Session{
		ID:        idx.New().String(),
		TokenHash: cryptox.FingerprintToken(token),
		UserID:    profile.ID,
		Profile:   profile,
		CreatedAt: time.Now().Add(-2 * time.Hour),
		ExpiresAt: time.Now().Add(-time.Hour),
	}))

	_, err = auth.Profile(ctx, token)
	require.ErrorIs(t, err, service.ErrNoSession)
}

func TestLogout(t *testing.T) {
	auth, _ := newAuthService(t)
	ctx := context.Background()

	_, token := signupUser(t, auth, "alice", "secret-pass")

	require.NoError(t, auth.Logout(ctx, token))

	_, err := auth.Profile(ctx, token)
	require.ErrorIs(t, err, service.ErrNoSession)

	// Logout is idempotent and succeeds with no session at all.
	require.NoError(t, auth.Logout(ctx, token))
	require.NoError(t, auth.Logout(ctx, ""))
	require.NoError(t, auth.Logout(ctx, "never-issued"))
}

func TestProfileCarriesNoCredential(t *testing.T) {
	auth, _ := newAuthService(t)
	ctx := context.Background()

	_, token := signupUser(t, auth, "alice", "secret-pass")

	profile, err := auth.Profile(ctx, token)
	require.NoError(t, err)

	// The projection type has no credential field, so no serialization of it
	// can leak one.
	raw, err := json.Marshal(profile)
	require.NoError(t, err)
	require.NotContains(t, strings.ToLower(string(raw)), "password")
	require.NotContains(t, string(raw), "secret-pass")
}

func TestSessionTokensAreStoredHashed(t *testing.T) {
	auth, st := newAuthService(t)
	ctx := context.Background()

	profile, token := signupUser(t, auth, "alice", "secret-pass")

	// The raw token must not appear in the store; only its fingerprint does.
	_, err := st.Sessions().GetSessionByTokenHash(ctx, token)
	require.Error(t, err)

	sess, err := st.Sessions().GetSessionByTokenHash(ctx, cryptox.FingerprintToken(token))
	require.NoError(t, err)
	require.Equal(t, profile.ID, sess.UserID)
}
