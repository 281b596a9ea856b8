package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pranav4002/ACADEMIX/internal/auth/domain"
	"github.com/pranav4002/ACADEMIX/internal/auth/dto"
	autherror "github.com/pranav4002/ACADEMIX/internal/errors"
)

// UserService orchestrates signup, login and password rotation.
type UserService struct {
	repo     domain.UserRepository
	profiles domain.ProfileCreator
	otp      OTPVerifier
	tokens   TokenGenerator
	mailer   domain.Mailer
	logger   *slog.Logger
}

func NewUserService(repo domain.UserRepository, profiles domain.ProfileCreator, otp OTPVerifier,
	tokens TokenGenerator, mailer domain.Mailer, logger *slog.Logger) *UserService {
	return &UserService{
		repo:     repo,
		profiles: profiles,
		otp:      otp,
		tokens:   tokens,
		mailer:   mailer,
		logger:   logger,
	}
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

// Signup validates the input in order and short-circuits on the first
// failure. No session token is issued here; the user logs in separately.
func (s *UserService) Signup(ctx context.Context, input dto.SignupInput) (*domain.User, error) {
	if input.FirstName == "" || input.LastName == "" || input.Email == "" ||
		input.Password == "" || input.ConfirmPassword == "" || input.OTP == "" {
		return nil, autherror.ErrMissingFields
	}

	if input.Password != input.ConfirmPassword {
		return nil, autherror.ErrPasswordMismatch
	}

	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	ok, err := s.otp.Verify(ctx, input.Email, input.OTP)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, autherror.ErrInvalidOTP
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	profileID, err := s.profiles.CreateEmptyProfile(ctx)
	if err != nil {
		return nil, err
	}

	accountType := domain.Role(input.AccountType)
	if !accountType.Valid() {
		accountType = domain.RoleStudent
	}

	now := time.Now()
	user := &domain.User{
		ID:            uuid.NewString(),
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         input.Email,
		ContactNumber: input.ContactNumber,
		PasswordHash:  string(hashedPassword),
		AccountType:   accountType,
		Approved:      accountType != domain.RoleInstructor,
		ProfileID:     profileID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.otp.Consume(ctx, input.Email); err != nil {
		s.logger.Warn("failed to consume otp after signup", "email", input.Email, "error", err)
	}

	return user, nil
}

// Login verifies the credentials and mints a session token. Both the
// unknown-address and wrong-password cases surface as the same
// ErrInvalidCredentials; the distinct cause goes to the log only.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*LoginResult, error) {
	if input.Email == "" || input.Password == "" {
		return nil, autherror.ErrMissingFields
	}

	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.logger.Info("login rejected", "email", input.Email, "reason", "not registered")
		return nil, autherror.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		s.logger.Info("login rejected", "email", input.Email, "reason", "wrong password")
		return nil, autherror.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Generate(user.ID, user.Email, user.AccountType)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// ChangePassword rotates the stored hash after re-verifying the old
// password. The mail notification is best effort and never fails the
// request.
func (s *UserService) ChangePassword(ctx context.Context, userID string, input dto.ChangePasswordInput) error {
	if input.OldPassword == "" || input.NewPassword == "" {
		return autherror.ErrMissingFields
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.OldPassword)) != nil {
		return autherror.ErrInvalidCredentials
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, user.ID, string(newHash)); err != nil {
		return err
	}

	subject := "Password Updated"
	body := fmt.Sprintf("Password updated successfully for %s %s", user.FirstName, user.LastName)
	if err := s.mailer.Send(user.Email, subject, body); err != nil {
		s.logger.Warn("failed to send password update mail", "email", user.Email, "error", err)
	}

	return nil
}
