package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tuiterhq/tuiter/internal/tuiter/domain"
	"github.com/tuiterhq/tuiter/internal/tuiter/service"
	"github.com/tuiterhq/tuiter/internal/tuiter/store"
	"github.com/tuiterhq/tuiter/internal/tuiter/store/drivers/sqlite"
	"github.com/tuiterhq/tuiter/pkg/cryptox"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "tuiter-service-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper.key"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

// newTestStore opens a throwaway sqlite store with migrations applied.
func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())

	t.Cleanup(func() { _ = st.Close() })
	return st
}

func newAuthService(t *testing.T) (*service.AuthService, store.Store) {
	t.Helper()
	st := newTestStore(t)
	return &service.AuthService{Store: st, SessionTTL: time.Hour}, st
}

func signupUser(t *testing.T, auth *service.AuthService, username, password string) (domain.Profile, string) {
	t.Helper()
	profile, token, err := auth.Signup(context.Background(), service.NewUser{
		Username:  username,
		Password:  password,
		FirstName: "Test",
		LastName:  "User",
		Email:     username + "@example.com",
	})
	require.NoError(t, err)
	return profile, token
}
