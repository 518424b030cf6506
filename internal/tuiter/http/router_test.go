package http_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tuiterhttp "github.com/tuiterhq/tuiter/internal/tuiter/http"
	"github.com/tuiterhq/tuiter/internal/tuiter/service"
	"github.com/tuiterhq/tuiter/internal/tuiter/store/drivers/sqlite"
)

// ServeMux rejects ambiguous patterns at registration time with a panic, so
// route registration gets its own test instead of failing every e2e test.
func TestApplyRoutesRegistersCleanly(t *testing.T) {
	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	router := tuiterhttp.NewRouter("test", st, logger)
	router.AuthService = &service.AuthService{Store: st, SessionTTL: time.Hour}
	router.UserService = &service.UserService{Store: st}
	router.TuitService = &service.TuitService{Store: st}
	router.FollowService = &service.FollowService{Store: st}
	router.BookmarkService = &service.BookmarkService{Store: st}
	router.MessageService = &service.MessageService{Store: st}

	require.NotPanics(t, func() { router.ApplyRoutes() })
}

// The follows routes share the /api/users/{uid} prefix with the tuits routes;
// exercise all of them end to end so a pattern regression surfaces here.
func TestFollowRoutesResolve(t *testing.T) {
	srv := newTestServer(t)

	var ids []string
	for _, username := range []string{"alice", "bob"} {
		resp := postJSON(t, &http.Client{}, srv.URL+"/auth/signup", map[string]string{
			"username": username,
			"password": "secret-pass",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var profile map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&profile))
		resp.Body.Close()
		ids = append(ids, profile["id"].(string))
	}
	alice, bob := ids[0], ids[1]

	resp := postJSON(t, &http.Client{}, srv.URL+"/api/users/"+alice+"/follows/"+bob, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err := http.Get(srv.URL + "/api/users/" + alice + "/follows")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var following []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&following))
	resp.Body.Close()
	require.Len(t, following, 1)
	require.Equal(t, "bob", following[0]["username"])

	resp, err = http.Get(srv.URL + "/api/users/" + bob + "/followers")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var followers []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&followers))
	resp.Body.Close()
	require.Len(t, followers, 1)
	require.Equal(t, "alice", followers[0]["username"])

	// The sibling tuits route still resolves alongside the follow routes.
	resp, err = http.Get(srv.URL + "/api/users/" + alice + "/tuits")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}
