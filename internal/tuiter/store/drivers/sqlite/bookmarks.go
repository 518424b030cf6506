package sqlite

import (
	"context"
	"database/sql"

	"github.com/tuiterhq/tuiter/internal/tuiter/domain"
)

type bookmarksRepo struct {
	db *sql.DB
}

func (r *bookmarksRepo) CreateBookmark(ctx context.Context, b domain.Bookmark) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO bookmarks (id, tuit_id, bookmarked_by, created_at)
		VALUES (?, ?, ?, ?)`,
		b.ID, b.TuitID, b.BookmarkedBy, b.CreatedAt,
	)
	return err
}

func (r *bookmarksRepo) DeleteBookmark(ctx context.Context, userID, tuitID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM bookmarks WHERE bookmarked_by = ? AND tuit_id = ?`,
		userID, tuitID)
	return err
}

func (r *bookmarksRepo) ListTuitsBookmarkedByUser(ctx context.Context, userID string) ([]domain.Tuit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT t.id, t.tuit, t.posted_by, t.posted_on, t.replies, t.retuits, t.likes, t.dislikes
		FROM bookmarks b
		JOIN tuits t ON t.id = b.tuit_id
		WHERE b.bookmarked_by = ?
		ORDER BY b.created_at DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tuits []domain.Tuit
	for rows.Next() {
		t, err := scanTuit(rows)
		if err != nil {
			return nil, err
		}
		tuits = append(tuits, t)
	}
	return tuits, rows.Err()
}

func (r *bookmarksRepo) ListUsersWhoBookmarkedTuit(ctx context.Context, tuitID string) ([]domain.Profile, error) {
	return queryProfiles(ctx, r.db, `
		SELECT `+profileColumns+`
		FROM bookmarks b
		JOIN users u ON u.id = b.bookmarked_by
		WHERE b.tuit_id = ?
		ORDER BY b.created_at DESC`,
		tuitID)
}

func (r *bookmarksRepo) ListBookmarks(ctx context.Context) ([]domain.Bookmark, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, tuit_id, bookmarked_by, created_at
		FROM bookmarks
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookmarks []domain.Bookmark
	for rows.Next() {
		var b domain.Bookmark
		if err := rows.Scan(&b.ID, &b.TuitID, &b.BookmarkedBy, &b.CreatedAt); err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, b)
	}
	return bookmarks, rows.Err()
}
