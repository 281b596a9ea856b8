package domain

//go:generate mockgen -source=interface.go -destination=../../mocks/mock_domain.go -package=mocks

import "context"

type UserRepository interface {
	// GetByEmail returns (nil, nil) when no user exists for the email.
	GetByEmail(ctx context.Context, email string) (*User, error)
	// GetByID returns (nil, nil) when no user exists for the id.
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, id, newHash string) error
}

type OTPRepository interface {
	// GetLatestByEmail returns the most recently issued entry for the
	// email, or (nil, nil) when none exists.
	GetLatestByEmail(ctx context.Context, email string) (*OTP, error)
	// GetActiveByCode returns any unconsumed, unexpired entry holding the
	// code regardless of email, or (nil, nil). Used for the global
	// collision check at issuance.
	GetActiveByCode(ctx context.Context, code string) (*OTP, error)
	Create(ctx context.Context, otp *OTP) error
	MarkConsumed(ctx context.Context, id string) error
}

// ProfileCreator is the profile collaborator. The auth core only ever
// creates an empty profile at signup and keeps the returned reference.
type ProfileCreator interface {
	CreateEmptyProfile(ctx context.Context) (string, error)
}

// Mailer is the notification collaborator.
type Mailer interface {
	Send(to, subject, body string) error
}
