package sqlite

import (
	"context"
	"database/sql"

	"github.com/tuiterhq/tuiter/internal/tuiter/domain"
)

type messagesRepo struct {
	db *sql.DB
}

const messageColumns = `id, message, from_user, to_user, sent_on`

func (r *messagesRepo) CreateMessage(ctx context.Context, m domain.Message) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO messages (id, message, from_user, to_user, sent_on)
		VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.Message, m.From, m.To, m.SentOn,
	)
	return err
}

func (r *messagesRepo) DeleteMessage(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE id = ?`, id)
	return err
}

func (r *messagesRepo) ListMessagesSent(ctx context.Context, userID string) ([]domain.Message, error) {
	return r.queryMessages(ctx,
		`SELECT `+messageColumns+` FROM messages WHERE from_user = ? ORDER BY sent_on DESC`,
		userID)
}

func (r *messagesRepo) ListMessagesReceived(ctx context.Context, userID string) ([]domain.Message, error) {
	return r.queryMessages(ctx,
		`SELECT `+messageColumns+` FROM messages WHERE to_user = ? ORDER BY sent_on DESC`,
		userID)
}

func (r *messagesRepo) ListMessages(ctx context.Context) ([]domain.Message, error) {
	return r.queryMessages(ctx,
		`SELECT `+messageColumns+` FROM messages ORDER BY sent_on DESC`)
}

func (r *messagesRepo) ListMessagesSentTo(ctx context.Context, userID, otherID string) ([]domain.Message, error) {
	return r.queryMessages(ctx,
		`SELECT `+messageColumns+` FROM messages WHERE from_user = ? AND to_user = ? ORDER BY sent_on DESC`,
		userID, otherID)
}

func (r *messagesRepo) ListMessagesReceivedFrom(ctx context.Context, userID, otherID string) ([]domain.Message, error) {
	return r.queryMessages(ctx,
		`SELECT `+messageColumns+` FROM messages WHERE from_user = ? AND to_user = ? ORDER BY sent_on DESC`,
		otherID, userID)
}

func (r *messagesRepo) queryMessages(ctx context.Context, query string, args ...any) ([]domain.Message, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.Message, &m.From, &m.To, &m.SentOn); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
