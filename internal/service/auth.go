package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const sessionTTL = 24 * time.Hour

var (
	ErrBadCredentials = errors.New("invalid password")
	ErrBadToken       = errors.New("invalid or expired session token")
)

// AuthService issues and verifies admin session tokens. The console is a
// single-operator tool, so authentication is one shared password exchanged
// for a signed JWT.
type AuthService struct {
	passwordHash [32]byte
	secret       []byte
}

func NewAuthService(adminPassword, jwtSecret string) *AuthService {
	return &AuthService{
		passwordHash: sha256.Sum256([]byte(adminPassword)),
		secret:       []byte(jwtSecret),
	}
}

// Login exchanges the admin password for a session token.
func (s *AuthService) Login(password string) (string, time.Time, error) {
	given := sha256.Sum256([]byte(password))
	if subtle.ConstantTimeCompare(given[:], s.passwordHash[:]) != 1 {
		return "", time.Time{}, ErrBadCredentials
	}

	expires := time.Now().Add(sessionTTL)
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expires),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expires, nil
}

// Verify checks a session token's signature and expiry.
func (s *AuthService) Verify(tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrBadToken
			}
			return s.secret, nil
		})
	if err != nil || !token.Valid {
		return ErrBadToken
	}
	return nil
}
