// Package auth, as part of the authentication module.
// This file, `repository.go`, is the credential store: the only code that reads or writes the users table.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/user/taskflow-go/store"
)

// UserRepository persists user records.
// Lookups of a missing user return store.ErrNotFound; a duplicate email on Create returns ErrEmailTaken.
type UserRepository interface {
	Create(ctx context.Context, email, passwordHash, name string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
}

const userColumns = "id, email, password_hash, name, created_at"

type pgUserRepository struct {
	db store.DBTX
}

// NewUserRepository creates a UserRepository backed by PostgreSQL.
func NewUserRepository(db store.DBTX) UserRepository {
	return &pgUserRepository{db: db}
}

// NormalizeEmail is the canonical form stored and looked up.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func scanUser(row pgx.Row) (*User, error) {
	var u User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user with a freshly generated UUID.
// The unique constraint on email decides duplicates, so concurrent signups cannot both win.
func (r *pgUserRepository) Create(ctx context.Context, email, passwordHash, name string) (*User, error) {
	query := `INSERT INTO users (id, email, password_hash, name) VALUES ($1, $2, $3, $4) RETURNING ` + userColumns
	user, err := store.QueryOne(ctx, r.db, scanUser, query, uuid.NewString(), NormalizeEmail(email), passwordHash, name)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == usersEmailConstraint {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

// FindByEmail loads a user by (normalized) email.
func (r *pgUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return store.QueryOne(ctx, r.db, scanUser, query, NormalizeEmail(email))
}

// FindByID loads a user by id. An id that is not a UUID cannot exist and is reported as not found.
func (r *pgUserRepository) FindByID(ctx context.Context, id string) (*User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, store.ErrNotFound
	}
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return store.QueryOne(ctx, r.db, scanUser, query, id)
}
