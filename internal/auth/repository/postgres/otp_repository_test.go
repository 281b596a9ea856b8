package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranav4002/ACADEMIX/internal/auth/domain"
	repo "github.com/pranav4002/ACADEMIX/internal/auth/repository/postgres"
)

var otpColumns = []string{"id", "email", "code", "consumed", "created_at"}

func TestOTPGetLatestByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresOTPRepository(mock)
	ctx := context.Background()
	email := "new@example.com"

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email, code").
			WithArgs(email).
			WillReturnRows(pgxmock.NewRows(otpColumns).
				AddRow("otp-1", email, "111222", false, time.Now()))

		otp, err := r.GetLatestByEmail(ctx, email)
		require.NoError(t, err)
		assert.Equal(t, "111222", otp.Code)
		assert.False(t, otp.Consumed)
	})

	t.Run("no entry", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email, code").
			WithArgs(email).
			WillReturnError(pgx.ErrNoRows)

		otp, err := r.GetLatestByEmail(ctx, email)
		require.NoError(t, err)
		assert.Nil(t, otp)
	})
}

func TestOTPGetActiveByCode(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresOTPRepository(mock)
	ctx := context.Background()

	t.Run("active entry found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email, code").
			WithArgs("111222").
			WillReturnRows(pgxmock.NewRows(otpColumns).
				AddRow("otp-1", "someone@example.com", "111222", false, time.Now()))

		otp, err := r.GetActiveByCode(ctx, "111222")
		require.NoError(t, err)
		require.NotNil(t, otp)
		assert.Equal(t, "111222", otp.Code)
	})

	t.Run("no active entry", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email, code").
			WithArgs("111222").
			WillReturnError(pgx.ErrNoRows)

		otp, err := r.GetActiveByCode(ctx, "111222")
		require.NoError(t, err)
		assert.Nil(t, otp)
	})
}

func TestOTPCreateAndConsume(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresOTPRepository(mock)
	ctx := context.Background()

	otp := &domain.OTP{
		ID:        "otp-1",
		Email:     "new@example.com",
		Code:      "111222",
		CreatedAt: time.Now(),
	}

	mock.ExpectExec("INSERT INTO otps").
		WithArgs(otp.ID, otp.Email, otp.Code, otp.Consumed, otp.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, r.Create(ctx, otp))

	mock.ExpectExec("UPDATE otps SET consumed").
		WithArgs(otp.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, r.MarkConsumed(ctx, otp.ID))
}
