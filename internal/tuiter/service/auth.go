package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/tuiterhq/tuiter/internal/tuiter/domain"
	"github.com/tuiterhq/tuiter/internal/tuiter/store"
	"github.com/tuiterhq/tuiter/pkg/cryptox"
	"github.com/tuiterhq/tuiter/pkg/idx"
	"github.com/tuiterhq/tuiter/pkg/slogx"
)

// Failure kinds stay distinguishable here even though the HTTP layer
// collapses them all to the same status code.
var (
	// ErrUsernameTaken is the conflict kind: signup found the username in use.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials covers both unknown username and password
	// mismatch so callers cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoSession reports a missing or expired session.
	ErrNoSession = errors.New("no active session")
)

// DefaultSessionTTL bounds how long a signed-in session lives without logout.
const DefaultSessionTTL = 24 * time.Hour

// NewUser is the signup input. Password is the only field that never reaches
// the store as-is; everything else passes through unvalidated.
type NewUser struct {
	Username      string               `json:"username"`
	Password      string               `json:"password"`
	FirstName     string               `json:"firstName"`
	LastName      string               `json:"lastName"`
	Email         string               `json:"email"`
	ProfilePhoto  string               `json:"profilePhoto"`
	HeaderImage   string               `json:"headerImage"`
	Biography     string               `json:"biography"`
	DateOfBirth   *time.Time           `json:"dateOfBirth"`
	AccountType   domain.AccountType   `json:"accountType"`
	MaritalStatus domain.MaritalStatus `json:"maritalStatus"`
	Location      *domain.Location     `json:"location"`
}

// AuthService orchestrates the signup/login/profile/logout lifecycle against
// the user and session stores.
type AuthService struct {
	Store      store.Store
	SessionTTL time.Duration
}

// Signup registers a new user and opens a session for it.
//
// The existence check and the insert are not atomic; two concurrent signups
// for the same username can both pass the check. The UNIQUE index on
// username is the authority, and a constraint violation on insert reports
// the same ErrUsernameTaken as the check.
func (s *AuthService) Signup(ctx context.Context, in NewUser) (domain.Profile, string, error) {
	log := slogx.FromContext(ctx)

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.Profile{}, "", err
	}

	_, err = s.Store.Users().GetUserByUsername(ctx, in.Username)
	if err == nil {
		return domain.Profile{}, "", ErrUsernameTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.Profile{}, "", err
	}

	now := time.Now()
	user := domain.User{
		ID:            idx.New().String(),
		Username:      in.Username,
		PasswordHash:  hash,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Email:         in.Email,
		ProfilePhoto:  in.ProfilePhoto,
		HeaderImage:   in.HeaderImage,
		Biography:     in.Biography,
		DateOfBirth:   in.DateOfBirth,
		AccountType:   in.AccountType,
		MaritalStatus: in.MaritalStatus,
		Location:      in.Location,
		Joined:        now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Profile{}, "", ErrUsernameTaken
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.Profile{}, "", err
	}

	log.Info("user signed up", slog.String("user_id", user.ID))

	return s.openSession(ctx, user)
}

// Login authenticates a username/password pair and opens a session.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (domain.Profile, string, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Profile{}, "", ErrInvalidCredentials
		}
		return domain.Profile{}, "", err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Info("login failed", slog.String("user_id", user.ID))
			return domain.Profile{}, "", ErrInvalidCredentials
		}
		// Malformed stored hash is a server fault, not a credential fault.
		log.Error("password verification failed", slog.Any("error", err))
		return domain.Profile{}, "", err
	}

	log.Info("user logged in", slog.String("user_id", user.ID))

	return s.openSession(ctx, user)
}

// Profile returns the profile bound to the caller's session without touching
// the user store; the session carries a denormalized snapshot.
func (s *AuthService) Profile(ctx context.Context, sessionToken string) (domain.Profile, error) {
	if sessionToken == "" {
		return domain.Profile{}, ErrNoSession
	}

	sess, err := s.Store.Sessions().GetSessionByTokenHash(ctx, cryptox.FingerprintToken(sessionToken))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Profile{}, ErrNoSession
		}
		return domain.Profile{}, err
	}

	return sess.Profile, nil
}

// Logout destroys the caller's session. Destroying a session that does not
// exist succeeds; only store failures propagate.
func (s *AuthService) Logout(ctx context.Context, sessionToken string) error {
	if sessionToken == "" {
		return nil
	}
	return s.Store.Sessions().DeleteSessionByTokenHash(ctx, cryptox.FingerprintToken(sessionToken))
}

// openSession issues a fresh opaque token, stores its fingerprint with a
// profile snapshot, and returns the projected profile plus the raw token.
// Signing up or logging in while already authenticated simply layers a new
// session; the old cookie is replaced client-side.
func (s *AuthService) openSession(ctx context.Context, user domain.User) (domain.Profile, string, error) {
	log := slogx.FromContext(ctx)

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return domain.Profile{}, "", err
	}

	ttl := s.SessionTTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	now := time.Now()
	profile := domain.NewProfile(user)
	sess := domain.Session{
		ID:        idx.New().String(),
		TokenHash: cryptox.FingerprintToken(token),
		UserID:    user.ID,
		Profile:   profile,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	if err := s.Store.Sessions().CreateSession(ctx, sess); err != nil {
		// The user record exists without an active session at this point;
		// the caller has to retry via login.
		log.Error("failed to create session",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return domain.Profile{}, "", err
	}

	return profile, token, nil
}
