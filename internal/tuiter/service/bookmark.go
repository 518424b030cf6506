package service

import (
	"context"
	"time"

	"github.com/tuiterhq/tuiter/internal/tuiter/domain"
	"github.com/tuiterhq/tuiter/internal/tuiter/store"
	"github.com/tuiterhq/tuiter/pkg/idx"
)

// BookmarkService manages bookmark edges between users and tuits.
type BookmarkService struct {
	Store store.Store
}

func (s *BookmarkService) Bookmark(ctx context.Context, userID, tuitID string) (domain.Bookmark, error) {
	bookmark := domain.Bookmark{
		ID:           idx.New().String(),
		TuitID:       tuitID,
		BookmarkedBy: userID,
		CreatedAt:    time.Now(),
	}

	if err := s.Store.Bookmarks().CreateBookmark(ctx, bookmark); err != nil {
		return domain.Bookmark{}, err
	}
	return bookmark, nil
}

func (s *BookmarkService) Unbookmark(ctx context.Context, userID, tuitID string) error {
	return s.Store.Bookmarks().DeleteBookmark(ctx, userID, tuitID)
}

func (s *BookmarkService) ListTuitsBookmarkedByUser(ctx context.Context, userID string) ([]domain.Tuit, error) {
	return s.Store.Bookmarks().ListTuitsBookmarkedByUser(ctx, userID)
}

func (s *BookmarkService) ListUsersWhoBookmarkedTuit(ctx context.Context, tuitID string) ([]domain.Profile, error) {
	return s.Store.Bookmarks().ListUsersWhoBookmarkedTuit(ctx, tuitID)
}

func (s *BookmarkService) ListBookmarks(ctx context.Context) ([]domain.Bookmark, error) {
	return s.Store.Bookmarks().ListBookmarks(ctx)
}
