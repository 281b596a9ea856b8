package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/pranav4002/ACADEMIX/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pranav4002/ACADEMIX/internal/auth/domain"
	autherror "github.com/pranav4002/ACADEMIX/internal/errors"
)

type TokenGenerator interface {
	Generate(userID, email string, role domain.Role) (string, time.Time, error)
	Verify(tokenString string) (*SessionClaims, error)
	CookieExpiry() time.Duration
}

// TokenService mints and verifies the stateless session tokens. The
// signing key is injected once at startup and read-only afterwards.
type TokenService struct {
	secret       []byte
	tokenExpiry  time.Duration
	cookieExpiry time.Duration
}

type SessionClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func NewTokenService(secret string, tokenExpiryHours, cookieExpiryDays int) *TokenService {
	return &TokenService{
		secret:       []byte(secret),
		tokenExpiry:  time.Duration(tokenExpiryHours) * time.Hour,
		cookieExpiry: time.Duration(cookieExpiryDays) * 24 * time.Hour,
	}
}

func (ts *TokenService) Generate(userID, email string, role domain.Role) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ts.tokenExpiry)

	claims := SessionClaims{
		UserID: userID,
		Email:  email,
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

// Verify parses and validates a session token. Signature and expiry
// failures both come back as ErrInvalidToken; callers must never expose
// which one it was.
func (ts *TokenService) Verify(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ts.secret, nil
	})

	if err != nil || !token.Valid {
		return nil, autherror.ErrInvalidToken
	}

	return claims, nil
}

// CookieExpiry is the browser retention window for the token cookie. It
// is deliberately longer than the token's own validity.
func (ts *TokenService) CookieExpiry() time.Duration {
	return ts.cookieExpiry
}
