package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuiterhq/tuiter/internal/tuiter/service"
)

func TestFollowGraph(t *testing.T) {
	st := newTestStore(t)
	auth := &service.AuthService{Store: st}
	follows := &service.FollowService{Store: st}
	ctx := context.Background()

	alice, _ := signupUser(t, auth, "alice", "pass-a")
	bob, _ := signupUser(t, auth, "bob", "pass-b")
	carol, _ := signupUser(t, auth, "carol", "pass-c")

	_, err := follows.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = follows.Follow(ctx, carol.ID, bob.ID)
	require.NoError(t, err)

	following, err := follows.ListFollowing(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)
	require.Equal(t, "bob", following[0].Username)

	followers, err := follows.ListFollowers(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, followers, 2)

	require.NoError(t, follows.Unfollow(ctx, alice.ID, bob.ID))

	following, err = follows.ListFollowing(ctx, alice.ID)
	require.NoError(t, err)
	require.Empty(t, following)

	followers, err = follows.ListFollowers(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	require.Equal(t, "carol", followers[0].Username)
}
