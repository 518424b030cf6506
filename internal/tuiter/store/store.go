package store

import (
	"context"
	"errors"
	"time"

	"github.com/tuiterhq/tuiter/internal/tuiter/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes one sub-repository per collection, matching the
// one-DAO-per-resource shape of the service layer.
type Store interface {
	Users() Users
	Sessions() Sessions
	Tuits() Tuits
	Follows() Follows
	Bookmarks() Bookmarks
	Messages() Messages

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during signup and login.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the service via ULID).
	// Returns ErrAlreadyExists if the username is taken; the UNIQUE index is
	// the authority on uniqueness, not the caller's existence check.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateUser replaces the mutable profile fields and bumps updated_at.
	// The password hash and username are not touched.
	UpdateUser(ctx context.Context, u domain.User) error

	// DeleteUser removes the user; sessions, tuits and edges cascade per schema.
	DeleteUser(ctx context.Context, userID string) error

	// ListUsers returns all users ordered by creation (newest first).
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type Sessions interface {
	// CreateSession stores a new session record.
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSessionByTokenHash returns the session for a token fingerprint.
	// Expired sessions are not returned.
	GetSessionByTokenHash(ctx context.Context, hash string) (domain.Session, error)

	// DeleteSessionByTokenHash destroys a session. Deleting a session that
	// does not exist is not an error.
	DeleteSessionByTokenHash(ctx context.Context, hash string) error

	// DeleteExpiredSessions is housekeeping.
	DeleteExpiredSessions(ctx context.Context, now time.Time) error
}

type Tuits interface {
	CreateTuit(ctx context.Context, t domain.Tuit) error
	GetTuitByID(ctx context.Context, id string) (domain.Tuit, error)
	ListTuits(ctx context.Context) ([]domain.Tuit, error)
	ListTuitsByUser(ctx context.Context, userID string) ([]domain.Tuit, error)

	// UpdateTuit replaces the content of an existing tuit.
	UpdateTuit(ctx context.Context, id string, content string) error
	DeleteTuit(ctx context.Context, id string) error
}

type Follows interface {
	CreateFollow(ctx context.Context, f domain.Follow) error

	// DeleteFollow removes every edge for the pair (repeated follows produce
	// repeated rows, so unfollow clears them all).
	DeleteFollow(ctx context.Context, followingID, followedID string) error

	// ListFollowing returns the profiles of users that userID follows.
	ListFollowing(ctx context.Context, userID string) ([]domain.Profile, error)

	// ListFollowers returns the profiles of users following userID.
	ListFollowers(ctx context.Context, userID string) ([]domain.Profile, error)
}

type Bookmarks interface {
	CreateBookmark(ctx context.Context, b domain.Bookmark) error
	DeleteBookmark(ctx context.Context, userID, tuitID string) error

	// ListTuitsBookmarkedByUser returns the tuits a user has bookmarked.
	ListTuitsBookmarkedByUser(ctx context.Context, userID string) ([]domain.Tuit, error)

	// ListUsersWhoBookmarkedTuit returns profiles of users who bookmarked a tuit.
	ListUsersWhoBookmarkedTuit(ctx context.Context, tuitID string) ([]domain.Profile, error)

	// ListBookmarks returns all bookmark edges.
	ListBookmarks(ctx context.Context) ([]domain.Bookmark, error)
}

type Messages interface {
	CreateMessage(ctx context.Context, m domain.Message) error
	DeleteMessage(ctx context.Context, id string) error

	ListMessagesSent(ctx context.Context, userID string) ([]domain.Message, error)
	ListMessagesReceived(ctx context.Context, userID string) ([]domain.Message, error)
	ListMessages(ctx context.Context) ([]domain.Message, error)

	// ListMessagesSentTo returns messages userID sent to otherID.
	ListMessagesSentTo(ctx context.Context, userID, otherID string) ([]domain.Message, error)

	// ListMessagesReceivedFrom returns messages userID received from otherID.
	ListMessagesReceivedFrom(ctx context.Context, userID, otherID string) ([]domain.Message, error)
}
