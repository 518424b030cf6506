package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/tuiterhq/tuiter/internal/tuiter/domain"
	"github.com/tuiterhq/tuiter/internal/tuiter/store"
	"github.com/tuiterhq/tuiter/pkg/idx"
)

// ErrEmptyTuit reports a create/update with no content.
var ErrEmptyTuit = errors.New("tuit content is empty")

// TuitService manages posts. One store query per operation.
type TuitService struct {
	Store store.Store
}

func (s *TuitService) CreateTuit(ctx context.Context, authorID, content string) (domain.Tuit, error) {
	if strings.TrimSpace(content) == "" {
		return domain.Tuit{}, ErrEmptyTuit
	}

	tuit := domain.Tuit{
		ID:       idx.New().String(),
		Tuit:     content,
		PostedBy: authorID,
		PostedOn: time.Now(),
	}

	if err := s.Store.Tuits().CreateTuit(ctx, tuit); err != nil {
		return domain.Tuit{}, err
	}
	return tuit, nil
}

func (s *TuitService) GetTuitByID(ctx context.Context, id string) (domain.Tuit, error) {
	return s.Store.Tuits().GetTuitByID(ctx, id)
}

func (s *TuitService) ListTuits(ctx context.Context) ([]domain.Tuit, error) {
	return s.Store.Tuits().ListTuits(ctx)
}

func (s *TuitService) ListTuitsByUser(ctx context.Context, userID string) ([]domain.Tuit, error) {
	return s.Store.Tuits().ListTuitsByUser(ctx, userID)
}

func (s *TuitService) UpdateTuit(ctx context.Context, id, content string) (domain.Tuit, error) {
	if strings.TrimSpace(content) == "" {
		return domain.Tuit{}, ErrEmptyTuit
	}

	if err := s.Store.Tuits().UpdateTuit(ctx, id, content); err != nil {
		return domain.Tuit{}, err
	}
	return s.Store.Tuits().GetTuitByID(ctx, id)
}

func (s *TuitService) DeleteTuit(ctx context.Context, id string) error {
	return s.Store.Tuits().DeleteTuit(ctx, id)
}
