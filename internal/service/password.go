package service

import "golang.org/x/crypto/bcrypt"

// PasswordScheme seals a plaintext password for storage and verifies a
// login attempt against the stored value. The store never interprets
// the sealed value; swapping schemes changes nothing in its contract.
type PasswordScheme interface {
	Seal(plain string) (string, error)
	Verify(stored, plain string) bool
}

// BcryptScheme stores a salted one-way hash of the password.
type BcryptScheme struct {
	Cost int
}

func (s BcryptScheme) Seal(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), s.Cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s BcryptScheme) Verify(stored, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}

// PlaintextScheme stores the password verbatim. It exists for
// compatibility with account files written by the legacy service;
// new deployments should use BcryptScheme.
type PlaintextScheme struct{}

func (PlaintextScheme) Seal(plain string) (string, error) {
	return plain, nil
}

func (PlaintextScheme) Verify(stored, plain string) bool {
	return stored == plain
}
