package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranav4002/ACADEMIX/internal/auth/domain"
	repo "github.com/pranav4002/ACADEMIX/internal/auth/repository/postgres"
	autherror "github.com/pranav4002/ACADEMIX/internal/errors"
)

var userColumns = []string{
	"id", "first_name", "last_name", "email", "contact_number", "password_hash",
	"account_type", "approved", "profile_id", "created_at", "updated_at",
}

func userRow(id, email string) *pgxmock.Rows {
	return pgxmock.NewRows(userColumns).
		AddRow(id, "Ada", "Lovelace", email, "", "hash",
			domain.RoleStudent, true, "profile-1", time.Now(), time.Now())
}

// TestGetByEmail covers the GetByEmail repository method.
func TestGetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()
	userEmail := "test@example.com"

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, first_name").
			WithArgs(userEmail).
			WillReturnRows(userRow("user-123", userEmail))

		user, err := r.GetByEmail(ctx, userEmail)
		require.NoError(t, err)
		assert.Equal(t, "user-123", user.ID)
		assert.Equal(t, userEmail, user.Email)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, first_name").
			WithArgs(userEmail).
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByEmail(ctx, userEmail)
		require.NoError(t, err) // Should return nil user, nil error
		assert.Nil(t, user)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, first_name").
			WithArgs(userEmail).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetByEmail(ctx, userEmail)
		assert.Error(t, err)
	})
}

func TestGetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, first_name").
			WithArgs("user-123").
			WillReturnRows(userRow("user-123", "test@example.com"))

		user, err := r.GetByID(ctx, "user-123")
		require.NoError(t, err)
		assert.Equal(t, "user-123", user.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, first_name").
			WithArgs("ghost").
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByID(ctx, "ghost")
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

// TestCreate covers the Create repository method, including the mapping
// of a unique-index violation onto the conflict error.
func TestCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	now := time.Now()
	user := &domain.User{
		ID:           "user-123",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "new@example.com",
		PasswordHash: "new-hash",
		AccountType:  domain.RoleStudent,
		Approved:     true,
		ProfileID:    "profile-1",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.ID, user.FirstName, user.LastName, user.Email, user.ContactNumber,
				user.PasswordHash, user.AccountType, user.Approved, user.ProfileID,
				user.CreatedAt, user.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, r.Create(ctx, user))
	})

	t.Run("unique violation maps to conflict", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.ID, user.FirstName, user.LastName, user.Email, user.ContactNumber,
				user.PasswordHash, user.AccountType, user.Approved, user.ProfileID,
				user.CreatedAt, user.UpdatedAt).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		err := r.Create(ctx, user)
		assert.ErrorIs(t, err, autherror.ErrEmailAlreadyInUse)
	})
}

func TestUpdatePassword(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)

	mock.ExpectExec("UPDATE users SET password_hash").
		WithArgs("new-hash", "user-123").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, r.UpdatePassword(context.Background(), "user-123", "new-hash"))
}

func TestCreateEmptyProfile(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)

	mock.ExpectExec("INSERT INTO profiles").
		WithArgs(pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	id, err := r.CreateEmptyProfile(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}
