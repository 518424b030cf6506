package service

import (
	"context"
	"errors"
	"time"

	"github.com/tuiterhq/tuiter/internal/tuiter/domain"
	"github.com/tuiterhq/tuiter/internal/tuiter/store"
	"github.com/tuiterhq/tuiter/pkg/cryptox"
	"github.com/tuiterhq/tuiter/pkg/idx"
)

// UserService exposes user CRUD. All reads return Profile projections so the
// credential field never leaves the service.
type UserService struct {
	Store store.Store
}

func (s *UserService) GetProfileByID(ctx context.Context, userID string) (domain.Profile, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.Profile{}, err
	}
	return domain.NewProfile(user), nil
}

func (s *UserService) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	users, err := s.Store.Users().ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	profiles := make([]domain.Profile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, domain.NewProfile(u))
	}
	return profiles, nil
}

// CreateUser registers a user without opening a session (admin/test surface,
// as distinct from signup).
func (s *UserService) CreateUser(ctx context.Context, in NewUser) (domain.Profile, error) {
	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return domain.Profile{}, err
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
			return domain.Profile{}, ErrUsernameTaken
		}
		return domain.Profile{}, err
	}

	return domain.NewProfile(user), nil
}

// UpdateProfile replaces the mutable profile fields of an existing user.
// Username and password are not updatable through this path.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in NewUser) (domain.Profile, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.Profile{}, err
	}

	user.FirstName = in.FirstName
	user.LastName = in.LastName
	user.Email = in.Email
	user.ProfilePhoto = in.ProfilePhoto
	user.HeaderImage = in.HeaderImage
	user.Biography = in.Biography
	user.DateOfBirth = in.DateOfBirth
	user.AccountType = in.AccountType
	user.MaritalStatus = in.MaritalStatus
	user.Location = in.Location
	user.UpdatedAt = time.Now()

	if err := s.Store.Users().UpdateUser(ctx, user); err != nil {
		return domain.Profile{}, err
	}

	return domain.NewProfile(user), nil
}

func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	return s.Store.Users().DeleteUser(ctx, userID)
}
