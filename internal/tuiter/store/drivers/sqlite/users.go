package sqlite

import (
	"context"
	"database/sql"

	"github.com/tuiterhq/tuiter/internal/tuiter/domain"
)

type usersRepo struct {
	db *sql.DB
}

const userColumns = `id, username, password_hash, first_name, last_name, email,
	profile_photo, header_image, biography, date_of_birth, account_type,
	marital_status, latitude, longitude, joined, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var (
		u           domain.User
		dateOfBirth sql.NullTime
		lat, long   sql.NullFloat64
	)
	err := row.Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.Email, &u.ProfilePhoto, &u.HeaderImage, &u.Biography,
		&dateOfBirth, &u.AccountType, &u.MaritalStatus, &lat, &long,
		&u.Joined, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}
	u.DateOfBirth = mapNullTimePtr(dateOfBirth)
	u.Location = mapLocation(lat, long)
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (
			id, username, password_hash, first_name, last_name, email,
			profile_photo, header_image, biography, date_of_birth,
			account_type, marital_status, latitude, longitude, joined,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.PasswordHash, u.FirstName, u.LastName, u.Email,
		u.ProfilePhoto, u.HeaderImage, u.Biography,
		mapOptionalTime(u.DateOfBirth), u.AccountType, u.MaritalStatus,
		mapOptionalFloat(u.Location, func(l domain.Location) float64 { return l.Latitude }),
		mapOptionalFloat(u.Location, func(l domain.Location) float64 { return l.Longitude }),
		u.Joined, u.CreatedAt, u.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *usersRepo) UpdateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users SET
			first_name = ?, last_name = ?, email = ?, profile_photo = ?,
			header_image = ?, biography = ?, date_of_birth = ?,
			account_type = ?, marital_status = ?, latitude = ?, longitude = ?,
			updated_at = ?
		WHERE id = ?`,
		u.FirstName, u.LastName, u.Email, u.ProfilePhoto, u.HeaderImage,
		u.Biography, mapOptionalTime(u.DateOfBirth), u.AccountType,
		u.MaritalStatus,
		mapOptionalFloat(u.Location, func(l domain.Location) float64 { return l.Latitude }),
		mapOptionalFloat(u.Location, func(l domain.Location) float64 { return l.Longitude }),
		u.UpdatedAt, u.ID,
	)
	return err
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
	return err
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
