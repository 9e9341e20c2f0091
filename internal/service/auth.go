package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/daybook-labs/auth-service/internal/domain"
)

// AuthService handles account signup, credential verification, and
// profile mutation. It owns no state itself; accounts live in the
// store and session validity lives in the token.
type AuthService struct {
	store     domain.AccountStore
	tokens    *TokenService
	passwords PasswordScheme
}

// NewAuthService creates a new AuthService.
func NewAuthService(store domain.AccountStore, tokens *TokenService, passwords PasswordScheme) *AuthService {
	return &AuthService{store: store, tokens: tokens, passwords: passwords}
}

// Signup creates an account and returns it together with a freshly
// issued session token.
func (s *AuthService) Signup(ctx context.Context, email, password, firstName, lastName string) (domain.Account, string, error) {
	if email == "" || password == "" {
		return domain.Account{}, "", fmt.Errorf("%w: email and password required", domain.ErrInvalidInput)
	}

	secret, err := s.passwords.Seal(password)
	if err != nil {
		return domain.Account{}, "", fmt.Errorf("seal password: %w", err)
	}

	acct, err := s.store.Create(ctx, email, secret, firstName, lastName)
	if err != nil {
		return domain.Account{}, "", err
	}

	token, err := s.tokens.Issue(acct.ID)
	if err != nil {
		return domain.Account{}, "", fmt.Errorf("issue token: %w", err)
	}
	return acct, token, nil
}

// Login verifies credentials and returns the account with a session
// token. Unknown email and wrong password both map to ErrUnauthorized
// so the wire response cannot distinguish them.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Account, string, error) {
	if email == "" || password == "" {
		return domain.Account{}, "", fmt.Errorf("%w: email and password required", domain.ErrInvalidInput)
	}

	acct, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Account{}, "", domain.ErrUnauthorized
		}
		return domain.Account{}, "", fmt.Errorf("find account: %w", err)
	}

	if !s.passwords.Verify(acct.Secret, password) {
		return domain.Account{}, "", domain.ErrUnauthorized
	}

	token, err := s.tokens.Issue(acct.ID)
	if err != nil {
		return domain.Account{}, "", fmt.Errorf("issue token: %w", err)
	}
	return acct, token, nil
}

// UpdateProfile applies PATCH semantics: a nil field keeps the
// account's current value, a present one replaces it. The store
// always receives both final values.
func (s *AuthService) UpdateProfile(ctx context.Context, id string, firstName, lastName *string) (domain.Account, error) {
	acct, err := s.store.FindByID(ctx, id)
	if err != nil {
		return domain.Account{}, err
	}

	first, last := acct.FirstName, acct.LastName
	if firstName != nil {
		first = *firstName
	}
	if lastName != nil {
		last = *lastName
	}
	return s.store.UpdateProfile(ctx, id, first, last)
}

// GetAccount retrieves an account by id.
func (s *AuthService) GetAccount(ctx context.Context, id string) (domain.Account, error) {
	return s.store.FindByID(ctx, id)
}

// VerifyToken validates a bearer token and returns the account id it
// asserts.
func (s *AuthService) VerifyToken(token string) (string, error) {
	return s.tokens.Verify(token)
}
