package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/tuiterhq/tuiter/internal/tuiter/service"
	"github.com/tuiterhq/tuiter/internal/tuiter/store"
)

// sessionsOverrideStore swaps in a custom sessions repository over an
// otherwise real store.
type sessionsOverrideStore struct {
	store.Store
	sessions store.Sessions
}

func (s *sessionsOverrideStore) Sessions() store.Sessions { return s.sessions }

// hangingSessions blocks DeleteExpiredSessions until its context is
// cancelled, signalling on began when the call starts.
type hangingSessions struct {
	store.Sessions
	began chan struct{}
}

func (s *hangingSessions) DeleteExpiredSessions(ctx context.Context, _ time.Time) error {
	select {
	case s.began <- struct{}{}:
	default:
	}
	<-ctx.Done()
	return ctx.Err()
}

func TestHousekeepingStopCancelsInFlightCleanup(t *testing.T) {
	sessions := &hangingSessions{began: make(chan struct{}, 1)}
	st := &sessionsOverrideStore{Store: newTestStore(t), sessions: sessions}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	hk := service.NewHousekeepingService(st, logger, time.Hour)
	hk.Start()

	select {
	case <-sessions.began:
	case <-time.After(5 * time.Second):
		t.Fatal("startup cleanup never ran")
	}

	done := make(chan struct{})
	go func() {
		hk.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop blocked on the in-flight cleanup")
	}
}
