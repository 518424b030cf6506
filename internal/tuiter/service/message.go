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

// ErrEmptyMessage reports a send with no content.
var ErrEmptyMessage = errors.New("message content is empty")

// MessageService manages direct messages between users.
type MessageService struct {
	Store store.Store
}

func (s *MessageService) SendMessage(ctx context.Context, fromID, toID, content string) (domain.Message, error) {
	if strings.TrimSpace(content) == "" {
		return domain.Message{}, ErrEmptyMessage
	}

	message := domain.Message{
		ID:      idx.New().String(),
		Message: content,
		From:    fromID,
		To:      toID,
		SentOn:  time.Now(),
	}

	if err := s.Store.Messages().CreateMessage(ctx, message); err != nil {
		return domain.Message{}, err
	}
	return message, nil
}

func (s *MessageService) DeleteMessage(ctx context.Context, id string) error {
	return s.Store.Messages().DeleteMessage(ctx, id)
}

func (s *MessageService) ListMessagesSent(ctx context.Context, userID string) ([]domain.Message, error) {
	return s.Store.Messages().ListMessagesSent(ctx, userID)
}

func (s *MessageService) ListMessagesReceived(ctx context.Context, userID string) ([]domain.Message, error) {
	return s.Store.Messages().ListMessagesReceived(ctx, userID)
}

func (s *MessageService) ListMessages(ctx context.Context) ([]domain.Message, error) {
	return s.Store.Messages().ListMessages(ctx)
}

func (s *MessageService) ListMessagesSentTo(ctx context.Context, userID, otherID string) ([]domain.Message, error) {
	return s.Store.Messages().ListMessagesSentTo(ctx, userID, otherID)
}

func (s *MessageService) ListMessagesReceivedFrom(ctx context.Context, userID, otherID string) ([]domain.Message, error) {
	return s.Store.Messages().ListMessagesReceivedFrom(ctx, userID, otherID)
}
