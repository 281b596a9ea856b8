package service

//go:generate mockgen -destination=../../mocks/mock_otp_verifier.go -package=mocks github.com/pranav4002/ACADEMIX/internal/auth/service OTPVerifier

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/pranav4002/ACADEMIX/internal/auth/domain"
	autherror "github.com/pranav4002/ACADEMIX/internal/errors"
)

const otpLength = 6

// OTPVerifier is the slice of the OTP ledger the signup flow depends on.
type OTPVerifier interface {
	Verify(ctx context.Context, email, code string) (bool, error)
	Consume(ctx context.Context, email string) error
}

// OTPService implements the one-time-code ledger on top of an
// append-only store. A code is usable only while it is the most recent,
// unconsumed, unexpired entry for its email.
type OTPService struct {
	users  domain.UserRepository
	otps   domain.OTPRepository
	mailer domain.Mailer
	expiry time.Duration
	logger *slog.Logger
}

func NewOTPService(users domain.UserRepository, otps domain.OTPRepository, mailer domain.Mailer,
	expiryMinutes int, logger *slog.Logger) *OTPService {
	return &OTPService{
		users:  users,
		otps:   otps,
		mailer: mailer,
		expiry: time.Duration(expiryMinutes) * time.Minute,
		logger: logger,
	}
}

// Issue generates a fresh code for the email and hands it to the mail
// collaborator for delivery. The code is returned to the caller for
// orchestration and tests, never for echoing to clients.
func (s *OTPService) Issue(ctx context.Context, email string) (string, error) {
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", autherror.ErrEmailAlreadyInUse
	}

	code, err := s.generateUniqueCode(ctx)
	if err != nil {
		return "", err
	}

	otp := &domain.OTP{
		ID:        uuid.NewString(),
		Email:     email,
		Code:      code,
		CreatedAt: time.Now(),
	}
	if err := s.otps.Create(ctx, otp); err != nil {
		return "", err
	}

	// Delivery is best effort; the record is already persisted and the
	// client can request a fresh code.
	subject := "Your verification code"
	body := fmt.Sprintf("Your verification code is %s. It expires in %d minutes.",
		code, int(s.expiry.Minutes()))
	if err := s.mailer.Send(email, subject, body); err != nil {
		s.logger.Warn("failed to deliver otp mail", "email", email, "error", err)
	}

	return code, nil
}

// Verify checks the presented code against the most recent ledger entry
// for the email. It fails closed: no entry, a superseded code, an
// expired entry, and an already consumed entry all return false.
func (s *OTPService) Verify(ctx context.Context, email, code string) (bool, error) {
	latest, err := s.otps.GetLatestByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if latest == nil || latest.Consumed {
		return false, nil
	}
	if time.Since(latest.CreatedAt) > s.expiry {
		return false, nil
	}

	return latest.Code == code, nil
}

// Consume flags the latest entry for the email so it cannot be redeemed
// again, even while it is still the most recent one.
func (s *OTPService) Consume(ctx context.Context, email string) error {
	latest, err := s.otps.GetLatestByEmail(ctx, email)
	if err != nil {
		return err
	}
	if latest == nil {
		return nil
	}

	return s.otps.MarkConsumed(ctx, latest.ID)
}

// generateUniqueCode draws 6-digit codes until one does not collide with
// any active code across all emails.
func (s *OTPService) generateUniqueCode(ctx context.Context) (string, error) {
	for {
		code, err := randomCode()
		if err != nil {
			return "", err
		}

		active, err := s.otps.GetActiveByCode(ctx, code)
		if err != nil {
			return "", err
		}
		if active == nil {
			return code, nil
		}
	}
}

func randomCode() (string, error) {
	max := big.NewInt(1000000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", otpLength, n.Int64()), nil
}
