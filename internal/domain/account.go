package domain

import (
	"context"
	"time"
)

// Account is the durable identity record for a registered user.
type Account struct {
	ID        string
	Email     string
	Secret    string // sealed credential, used only for comparison
	FirstName string
	LastName  string
	CreatedAt time.Time
}

// AccountStore defines persistence operations for accounts. The store
// is the sole owner of the account collection; callers always receive
// copies, never a handle into live records.
type AccountStore interface {
	Create(ctx context.Context, email, secret, firstName, lastName string) (Account, error)
	FindByCredentials(ctx context.Context, email, secret string) (Account, error)
	FindByEmail(ctx context.Context, email string) (Account, error)
	FindByID(ctx context.Context, id string) (Account, error)
	UpdateProfile(ctx context.Context, id, firstName, lastName string) (Account, error)
}
