package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pranav4002/ACADEMIX/internal/auth/domain"
)

// PostgresOTPRepository stores one-time codes append-only. Superseded
// entries are never deleted; consumers read the latest row per email.
type PostgresOTPRepository struct {
	db PgxIface
}

func NewPostgresOTPRepository(db PgxIface) *PostgresOTPRepository {
	return &PostgresOTPRepository{db: db}
}

func (r *PostgresOTPRepository) GetLatestByEmail(ctx context.Context, email string) (*domain.OTP, error) {
	query := `
		SELECT id, email, code, consumed, created_at
		FROM otps
		WHERE email = $1
		ORDER BY created_at DESC
		LIMIT 1;
	`
	return r.scanOTP(r.db.QueryRow(ctx, query, email))
}

func (r *PostgresOTPRepository) GetActiveByCode(ctx context.Context, code string) (*domain.OTP, error) {
	query := `
		SELECT id, email, code, consumed, created_at
		FROM otps
		WHERE code = $1 AND NOT consumed
		ORDER BY created_at DESC
		LIMIT 1;
	`
	return r.scanOTP(r.db.QueryRow(ctx, query, code))
}

func (r *PostgresOTPRepository) scanOTP(row pgx.Row) (*domain.OTP, error) {
	var otp domain.OTP
	err := row.Scan(&otp.ID, &otp.Email, &otp.Code, &otp.Consumed, &otp.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get otp: %w", err)
	}

	return &otp, nil
}

func (r *PostgresOTPRepository) Create(ctx context.Context, otp *domain.OTP) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO otps (id, email, code, consumed, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, otp.ID, otp.Email, otp.Code, otp.Consumed, otp.CreatedAt)

	return err
}

func (r *PostgresOTPRepository) MarkConsumed(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE otps SET consumed = true
		WHERE id = $1
	`, id)

	return err
}
