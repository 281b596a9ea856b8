package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pranav4002/ACADEMIX/internal/auth/domain"
	autherror "github.com/pranav4002/ACADEMIX/internal/errors"
)

const uniqueViolationCode = "23505"

// PgxIface is the subset of pgxpool.Pool the repositories use. pgxmock
// satisfies it in tests.
type PgxIface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db PgxIface
}

func NewPostgresRepository(db PgxIface) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, first_name, last_name, email, contact_number, password_hash,
		       account_type, approved, profile_id, created_at, updated_at
		FROM users
		WHERE email = $1
		LIMIT 1;
	`
	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, first_name, last_name, email, contact_number, password_hash,
		       account_type, approved, profile_id, created_at, updated_at
		FROM users
		WHERE id = $1
		LIMIT 1;
	`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *PostgresRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email,
		&user.ContactNumber, &user.PasswordHash, &user.AccountType,
		&user.Approved, &user.ProfileID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// Create inserts a new user. The unique index on email is the
// authoritative duplicate check; a violation maps to ErrEmailAlreadyInUse
// so concurrent signups racing past the existence check still conflict.
func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (id, first_name, last_name, email, contact_number,
                           password_hash, account_type, approved, profile_id,
                           created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `, user.ID, user.FirstName, user.LastName, user.Email, user.ContactNumber,
		user.PasswordHash, user.AccountType, user.Approved, user.ProfileID,
		user.CreatedAt, user.UpdatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return autherror.ErrEmailAlreadyInUse
	}

	return err
}

func (r *PostgresRepository) UpdatePassword(ctx context.Context, id, newHash string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET password_hash = $1, updated_at = now()
		WHERE id = $2
	`, newHash, id)

	return err
}

// CreateEmptyProfile creates the profile placeholder linked from a new
// user and returns its id.
func (r *PostgresRepository) CreateEmptyProfile(ctx context.Context) (string, error) {
	id := uuid.NewString()
	_, err := r.db.Exec(ctx, `
		INSERT INTO profiles (id, created_at)
		VALUES ($1, now())
	`, id)
	if err != nil {
		return "", fmt.Errorf("failed to create profile: %w", err)
	}

	return id, nil
}
