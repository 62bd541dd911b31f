package postgres

import (
	"context"
	"database/sql"

	"docshare/internal/model"
	"docshare/internal/repository"
)

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

const userColumns = `id, username, email, password_hash, role, profile_image, college, field, company_name, date_of_birth, created_at`

func scanUser(row interface{ Scan(...any) error }) (*model.User, error) {
	var u model.User
	var dob sql.NullTime
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.ProfileImage,
		&u.Profile.College,
		&u.Profile.Field,
		&u.Profile.CompanyName,
		&dob,
		&u.CreatedAt,
	); err != nil {
		return nil, err
	}
	if dob.Valid {
		t := dob.Time
		u.Profile.DateOfBirth = &t
	}
	return &u, nil
}

// Create inserts a new user row and returns the stored record.
func (r *UserPostgres) Create(ctx context.Context, u *model.User) (*model.User, error) {
	const q = `
		INSERT INTO users (id, username, email, password_hash, role, profile_image, college, field, company_name, date_of_birth, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + userColumns
	var dob sql.NullTime
	if u.Profile.DateOfBirth != nil {
		dob = sql.NullTime{Time: *u.Profile.DateOfBirth, Valid: true}
	}
	row := r.db.QueryRowContext(ctx, q,
		u.ID,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.Role,
		u.ProfileImage,
		u.Profile.College,
		u.Profile.Field,
		u.Profile.CompanyName,
		dob,
		u.CreatedAt,
	)
	return scanUser(row)
}

// FindByID fetches a single user by ID.
func (r *UserPostgres) FindByID(ctx context.Context, id string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, q, id))
}

// FindByEmail fetches a single user by email.
func (r *UserPostgres) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRowContext(ctx, q, email))
}

// FindByUsername fetches a single user by username.
func (r *UserPostgres) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(r.db.QueryRowContext(ctx, q, username))
}

// Update persists mutable user fields and returns the stored record.
func (r *UserPostgres) Update(ctx context.Context, u *model.User) (*model.User, error) {
	const q = `
		UPDATE users
		SET username = $2, email = $3, profile_image = $4, college = $5, field = $6, company_name = $7, date_of_birth = $8
		WHERE id = $1
		RETURNING ` + userColumns
	var dob sql.NullTime
	if u.Profile.DateOfBirth != nil {
		dob = sql.NullTime{Time: *u.Profile.DateOfBirth, Valid: true}
	}
	row := r.db.QueryRowContext(ctx, q,
		u.ID,
		u.Username,
		u.Email,
		u.ProfileImage,
		u.Profile.College,
		u.Profile.Field,
		u.Profile.CompanyName,
		dob,
	)
	return scanUser(row)
}
