package sqlite

import (
	"context"
	"database/sql"

	"github.com/tuiterhq/tuiter/internal/tuiter/domain"
)

type tuitsRepo struct {
	db *sql.DB
}

const tuitColumns = `id, tuit, posted_by, posted_on, replies, retuits, likes, dislikes`

func scanTuit(row interface{ Scan(...any) error }) (domain.Tuit, error) {
	var t domain.Tuit
	err := row.Scan(
		&t.ID, &t.Tuit, &t.PostedBy, &t.PostedOn,
		&t.Stats.Replies, &t.Stats.Retuits, &t.Stats.Likes, &t.Stats.Dislikes,
	)
	return t, err
}

func (r *tuitsRepo) CreateTuit(ctx context.Context, t domain.Tuit) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tuits (id, tuit, posted_by, posted_on, replies, retuits, likes, dislikes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Tuit, t.PostedBy, t.PostedOn,
		t.Stats.Replies, t.Stats.Retuits, t.Stats.Likes, t.Stats.Dislikes,
	)
	return err
}

func (r *tuitsRepo) GetTuitByID(ctx context.Context, id string) (domain.Tuit, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+tuitColumns+` FROM tuits WHERE id = ?`, id)
	t, err := scanTuit(row)
	if err != nil {
		return domain.Tuit{}, mapNotFound(err)
	}
	return t, nil
}

func (r *tuitsRepo) ListTuits(ctx context.Context) ([]domain.Tuit, error) {
	return r.queryTuits(ctx,
		`SELECT `+tuitColumns+` FROM tuits ORDER BY posted_on DESC`)
}

func (r *tuitsRepo) ListTuitsByUser(ctx context.Context, userID string) ([]domain.Tuit, error) {
	return r.queryTuits(ctx,
		`SELECT `+tuitColumns+` FROM tuits WHERE posted_by = ? ORDER BY posted_on DESC`,
		userID)
}

func (r *tuitsRepo) UpdateTuit(ctx context.Context, id string, content string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tuits SET tuit = ? WHERE id = ?`, content, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *tuitsRepo) DeleteTuit(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tuits WHERE id = ?`, id)
	return err
}

func (r *tuitsRepo) queryTuits(ctx context.Context, query string, args ...any) ([]domain.Tuit, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
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

// requireRowAffected maps zero-row updates to ErrNotFound.
func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}
