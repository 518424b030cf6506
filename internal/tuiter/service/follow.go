package service

import (
	"context"
	"time"

	"github.com/tuiterhq/tuiter/internal/tuiter/domain"
	"github.com/tuiterhq/tuiter/internal/tuiter/store"
	"github.com/tuiterhq/tuiter/pkg/idx"
)

// FollowService manages follow edges between users. Creates are not
// deduplicated; repeated follows insert repeated edges.
type FollowService struct {
	Store store.Store
}

func (s *FollowService) Follow(ctx context.Context, followingID, followedID string) (domain.Follow, error) {
	follow := domain.Follow{
		ID:            idx.New().String(),
		UserFollowed:  followedID,
		UserFollowing: followingID,
		CreatedAt:     time.Now(),
	}

	if err := s.Store.Follows().CreateFollow(ctx, follow); err != nil {
		return domain.Follow{}, err
	}
	return follow, nil
}

func (s *FollowService) Unfollow(ctx context.Context, followingID, followedID string) error {
	return s.Store.Follows().DeleteFollow(ctx, followingID, followedID)
}

func (s *FollowService) ListFollowing(ctx context.Context, userID string) ([]domain.Profile, error) {
	return s.Store.Follows().ListFollowing(ctx, userID)
}

func (s *FollowService) ListFollowers(ctx context.Context, userID string) ([]domain.Profile, error) {
	return s.Store.Follows().ListFollowers(ctx, userID)
}
