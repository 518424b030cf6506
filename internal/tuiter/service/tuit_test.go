package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuiterhq/tuiter/internal/tuiter/service"
	"github.com/tuiterhq/tuiter/internal/tuiter/store"
)

func TestTuitCRUD(t *testing.T) {
	st := newTestStore(t)
	auth := &service.AuthService{Store: st}
	tuits := &service.TuitService{Store: st}
	ctx := context.Background()

	alice, _ := signupUser(t, auth, "alice", "secret-pass")

	tuit, err := tuits.CreateTuit(ctx, alice.ID, "hello world")
	require.NoError(t, err)
	require.Equal(t, "hello world", tuit.Tuit)
	require.Equal(t, alice.ID, tuit.PostedBy)

	got, err := tuits.GetTuitByID(ctx, tuit.ID)
	require.NoError(t, err)
	require.Equal(t, tuit.ID, got.ID)
	require.Equal(t, "hello world", got.Tuit)

	updated, err := tuits.UpdateTuit(ctx, tuit.ID, "edited")
	require.NoError(t, err)
	require.Equal(t, "edited", updated.Tuit)

	byUser, err := tuits.ListTuitsByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, byUser, 1)

	require.NoError(t, tuits.DeleteTuit(ctx, tuit.ID))

	_, err = tuits.GetTuitByID(ctx, tuit.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestTuitEmptyContent(t *testing.T) {
	st := newTestStore(t)
	auth := &service.AuthService{Store: st}
	tuits := &service.TuitService{Store: st}
	ctx := context.Background()

	alice, _ := signupUser(t, auth, "alice", "secret-pass")

	_, err := tuits.CreateTuit(ctx, alice.ID, "   ")
	require.ErrorIs(t, err, service.ErrEmptyTuit)

	tuit, err := tuits.CreateTuit(ctx, alice.ID, "real content")
	require.NoError(t, err)

	_, err = tuits.UpdateTuit(ctx, tuit.ID, "")
	require.ErrorIs(t, err, service.ErrEmptyTuit)
}

func TestTuitUpdateMissing(t *testing.T) {
	st := newTestStore(t)
	tuits := &service.TuitService{Store: st}

	_, err := tuits.UpdateTuit(context.Background(), "no-such-id", "content")
	require.ErrorIs(t, err, store.ErrNotFound)
}
