package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/tuiterhq/tuiter/internal/tuiter/domain"
	"github.com/tuiterhq/tuiter/internal/tuiter/store"

	_ "modernc.org/sqlite"
)

type Store struct {
	db  *sql.DB
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		dsn: dsn,
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Users() store.Users         { return &usersRepo{db: s.db} }
func (s *Store) Sessions() store.Sessions   { return &sessionsRepo{db: s.db} }
func (s *Store) Tuits() store.Tuits         { return &tuitsRepo{db: s.db} }
func (s *Store) Follows() store.Follows     { return &followsRepo{db: s.db} }
func (s *Store) Bookmarks() store.Bookmarks { return &bookmarksRepo{db: s.db} }
func (s *Store) Messages() store.Messages   { return &messagesRepo{db: s.db} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint converts sqlite unique-constraint violations to the store's
// sentinel so callers can treat them uniformly across drivers.
func mapConstraint(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return store.ErrAlreadyExists
	}
	return err
}

func mapNullTimePtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		val := nt.Time
		return &val
	}
	return nil
}

func mapOptionalTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func mapLocation(lat, long sql.NullFloat64) *domain.Location {
	if !lat.Valid || !long.Valid {
		return nil
	}
	return &domain.Location{Latitude: lat.Float64, Longitude: long.Float64}
}

func mapOptionalFloat(loc *domain.Location, pick func(domain.Location) float64) sql.NullFloat64 {
	if loc == nil {
		return sql.NullFloat64{Valid: false}
	}
	return sql.NullFloat64{Float64: pick(*loc), Valid: true}
}
