package sqlite

import (
	"context"
	"database/sql"

	"github.com/tuiterhq/tuiter/internal/tuiter/domain"
)

type followsRepo struct {
	db *sql.DB
}

func (r *followsRepo) CreateFollow(ctx context.Context, f domain.Follow) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO follows (id, user_followed, user_following, created_at)
		VALUES (?, ?, ?, ?)`,
		f.ID, f.UserFollowed, f.UserFollowing, f.CreatedAt,
	)
	return err
}

func (r *followsRepo) DeleteFollow(ctx context.Context, followingID, followedID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM follows WHERE user_following = ? AND user_followed = ?`,
		followingID, followedID)
	return err
}

func (r *followsRepo) ListFollowing(ctx context.Context, userID string) ([]domain.Profile, error) {
	return queryProfiles(ctx, r.db, `
		SELECT `+profileColumns+`
		FROM follows f
		JOIN users u ON u.id = f.user_followed
		WHERE f.user_following = ?
		ORDER BY f.created_at DESC`,
		userID)
}

func (r *followsRepo) ListFollowers(ctx context.Context, userID string) ([]domain.Profile, error) {
	return queryProfiles(ctx, r.db, `
		SELECT `+profileColumns+`
		FROM follows f
		JOIN users u ON u.id = f.user_following
		WHERE f.user_followed = ?
		ORDER BY f.created_at DESC`,
		userID)
}

// profileColumns selects the user fields that make up a Profile projection.
// The password hash is deliberately not selected.
const profileColumns = `u.id, u.username, u.first_name, u.last_name, u.email,
	u.profile_photo, u.header_image, u.biography, u.date_of_birth,
	u.account_type, u.marital_status, u.latitude, u.longitude, u.joined`

func queryProfiles(ctx context.Context, db *sql.DB, query string, args ...any) ([]domain.Profile, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		var (
			p           domain.Profile
			dateOfBirth sql.NullTime
			lat, long   sql.NullFloat64
		)
		err := rows.Scan(
			&p.ID, &p.Username, &p.FirstName, &p.LastName, &p.Email,
			&p.ProfilePhoto, &p.HeaderImage, &p.Biography, &dateOfBirth,
			&p.AccountType, &p.MaritalStatus, &lat, &long, &p.Joined,
		)
		if err != nil {
			return nil, err
		}
		p.DateOfBirth = mapNullTimePtr(dateOfBirth)
		p.Location = mapLocation(lat, long)
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}
