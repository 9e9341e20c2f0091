package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/daybook-labs/auth-service/internal/domain"
)

// TokenService issues and verifies the signed bearer tokens that bind
// a request to an account id. Tokens are stateless: validity is
// signature plus expiry, and nothing is tracked server-side. There is
// no revocation or refresh; logout is the client discarding the token.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService signing with the given
// process-wide secret. Key rotation is not supported.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs an HS256 token for the given account id, valid for the
// configured lifetime.
func (s *TokenService) Issue(accountID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   accountID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	})
	return token.SignedString(s.secret)
}

// Verify parses the token and returns the account id it was issued
// for. A missing, malformed, tampered, or expired token yields
// ErrUnauthorized. Whether that account still exists is the caller's
// concern.
func (s *TokenService) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", domain.ErrUnauthorized
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", domain.ErrUnauthorized
	}
	if claims.Subject == "" {
		return "", domain.ErrUnauthorized
	}
	return claims.Subject, nil
}
