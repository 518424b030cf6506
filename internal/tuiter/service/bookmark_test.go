package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuiterhq/tuiter/internal/tuiter/service"
)

func TestBookmarks(t *testing.T) {
	st := newTestStore(t)
	auth := &service.AuthService{Store: st}
	tuits := &service.TuitService{Store: st}
	bookmarks := &service.BookmarkService{Store: st}
	ctx := context.Background()

	alice, _ := signupUser(t, auth, "alice", "pass-a")
	bob, _ := signupUser(t, auth, "bob", "pass-b")

	tuit, err := tuits.CreateTuit(ctx, bob.ID, "bookmark me")
	require.NoError(t, err)

	bm, err := bookmarks.Bookmark(ctx, alice.ID, tuit.ID)
	require.NoError(t, err)

	// Edge fields serialize under full field names, like the other edges.
	raw, err := json.Marshal(bm)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"tuitId"`)
	require.Contains(t, string(raw), `"bookmarkedBy"`)

	saved, err := bookmarks.ListTuitsBookmarkedByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	require.Equal(t, tuit.ID, saved[0].ID)

	who, err := bookmarks.ListUsersWhoBookmarkedTuit(ctx, tuit.ID)
	require.NoError(t, err)
	require.Len(t, who, 1)
	require.Equal(t, "alice", who[0].Username)

	require.NoError(t, bookmarks.Unbookmark(ctx, alice.ID, tuit.ID))

	saved, err = bookmarks.ListTuitsBookmarkedByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Empty(t, saved)
}
