package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuiterhq/tuiter/internal/tuiter/service"
)

func TestMessages(t *testing.T) {
	st := newTestStore(t)
	auth := &service.AuthService{Store: st}
	messages := &service.MessageService{Store: st}
	ctx := context.Background()

	alice, _ := signupUser(t, auth, "alice", "pass-a")
	bob, _ := signupUser(t, auth, "bob", "pass-b")

	sent, err := messages.SendMessage(ctx, alice.ID, bob.ID, "hi bob")
	require.NoError(t, err)
	require.Equal(t, alice.ID, sent.From)
	require.Equal(t, bob.ID, sent.To)

	_, err = messages.SendMessage(ctx, bob.ID, alice.ID, "hi alice")
	require.NoError(t, err)

	fromAlice, err := messages.ListMessagesSent(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, fromAlice, 1)
	require.Equal(t, "hi bob", fromAlice[0].Message)

	toAlice, err := messages.ListMessagesReceived(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, toAlice, 1)
	require.Equal(t, "hi alice", toAlice[0].Message)

	aliceToBob, err := messages.ListMessagesSentTo(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, aliceToBob, 1)

	require.NoError(t, messages.DeleteMessage(ctx, sent.ID))

	fromAlice, err = messages.ListMessagesSent(ctx, alice.ID)
	require.NoError(t, err)
	require.Empty(t, fromAlice)
}

func TestMessageEmptyContent(t *testing.T) {
	st := newTestStore(t)
	messages := &service.MessageService{Store: st}

	_, err := messages.SendMessage(context.Background(), "a", "b", "  ")
	require.ErrorIs(t, err, service.ErrEmptyMessage)
}
