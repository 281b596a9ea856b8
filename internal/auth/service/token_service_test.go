package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranav4002/ACADEMIX/internal/auth/domain"
	autherror "github.com/pranav4002/ACADEMIX/internal/errors"
)

func TestNewTokenService(t *testing.T) {
	ts := NewTokenService("secret-key", 24, 3)

	assert.NotNil(t, ts)
	assert.Equal(t, 24*time.Hour, ts.tokenExpiry)
	assert.Equal(t, 3*24*time.Hour, ts.CookieExpiry())
}

func TestTokenService_GenerateAndVerify(t *testing.T) {
	tests := []struct {
		name   string
		userID string
		email  string
		role   domain.Role
	}{
		{
			name:   "student claims round-trip",
			userID: "user-123",
			email:  "student@example.com",
			role:   domain.RoleStudent,
		},
		{
			name:   "instructor claims round-trip",
			userID: "user-456",
			email:  "instructor@example.com",
			role:   domain.RoleInstructor,
		},
		{
			name:   "admin claims round-trip",
			userID: "user-789",
			email:  "admin@example.com",
			role:   domain.RoleAdmin,
		},
	}

	ts := NewTokenService("test-secret-key-123", 24, 3)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, expiresAt, err := ts.Generate(tt.userID, tt.email, tt.role)
			require.NoError(t, err)
			require.NotEmpty(t, token)
			assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)

			claims, err := ts.Verify(token)
			require.NoError(t, err)
			assert.Equal(t, tt.userID, claims.UserID)
			assert.Equal(t, tt.email, claims.Email)
			assert.Equal(t, string(tt.role), claims.Role)
		})
	}
}

func TestTokenService_Verify_WrongKey(t *testing.T) {
	issuer := NewTokenService("signing-key-a", 24, 3)
	verifier := NewTokenService("signing-key-b", 24, 3)

	token, _, err := issuer.Generate("user-123", "test@example.com", domain.RoleStudent)
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.Nil(t, claims)
	// Signature failures and expiry failures must be indistinguishable.
	assert.ErrorIs(t, err, autherror.ErrInvalidToken)
}

func TestTokenService_Verify_Expired(t *testing.T) {
	ts := NewTokenService("test-secret-key-123", -1, 3)

	token, _, err := ts.Generate("user-123", "test@example.com", domain.RoleStudent)
	require.NoError(t, err)

	claims, err := ts.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, autherror.ErrInvalidToken)
}

func TestTokenService_Verify_Garbage(t *testing.T) {
	ts := NewTokenService("test-secret-key-123", 24, 3)

	claims, err := ts.Verify("not-a-jwt")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, autherror.ErrInvalidToken)
}
