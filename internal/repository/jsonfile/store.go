package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/daybook-labs/auth-service/internal/domain"
)

const fileName = "users.json"

// Store implements domain.AccountStore backed by a single JSON file.
// The full collection is serialized and rewritten on every mutation,
// so a consumer reading the file directly always sees a complete
// array of accounts, never a partial write. One lock guards every
// read-modify-persist cycle: the uniqueness check in Create and the
// file write are atomic with respect to concurrent mutations.
type Store struct {
	mu       sync.RWMutex
	path     string
	accounts map[string]domain.Account // keyed by account id
}

// record is the on-disk shape of an account. Field names match the
// array format consumed by the rest of the system.
type record struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
}

// New creates a Store persisting to users.json inside dir. The
// directory is created if missing. Failure to create it is not fatal:
// the store still serves an empty collection, but every mutation will
// return ErrStorageUnavailable until the directory exists.
func New(dir string) *Store {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		slog.Warn("could not create data directory, account writes will fail", "dir", dir, "error", err)
	}
	return &Store{
		path:     filepath.Join(dir, fileName),
		accounts: make(map[string]domain.Account),
	}
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Load populates the store from the backing file. A missing file
// means an empty store. A corrupt file or record is logged and
// skipped; Load never prevents startup.
func (s *Store) Load(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("could not read users file, starting empty", "path", s.path, "error", err)
		}
		return
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		slog.Warn("users file is not a JSON array, starting empty", "path", s.path, "error", err)
		return
	}

	for _, raw := range raws {
		var rec record
		if err := json.Unmarshal(raw, &rec); err != nil {
			slog.Warn("skipping unparseable account record", "error", err)
			continue
		}
		if rec.UserID == "" || rec.Email == "" {
			slog.Warn("skipping account record with missing identity fields")
			continue
		}
		s.accounts[rec.UserID] = domain.Account{
			ID:        rec.UserID,
			Email:     rec.Email,
			Secret:    rec.Password,
			FirstName: rec.FirstName,
			LastName:  rec.LastName,
			CreatedAt: rec.CreatedAt,
		}
	}
}

// Create inserts a new account and persists the collection before
// returning. Email comparison is exact-string: case and whitespace
// matter exactly as supplied. If the write fails, the insert is
// rolled back so a caller never observes an account that is not
// durably saved.
func (s *Store) Create(_ context.Context, email, secret, firstName, lastName string) (domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if a.Email == email {
			return domain.Account{}, domain.ErrDuplicateEmail
		}
	}

	acct := domain.Account{
		ID:        uuid.NewString(),
		Email:     email,
		Secret:    secret,
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: time.Now().UTC(),
	}
	s.accounts[acct.ID] = acct

	if err := s.persistLocked(); err != nil {
		delete(s.accounts, acct.ID)
		return domain.Account{}, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return acct, nil
}

// FindByCredentials returns the account matching both fields exactly,
// or ErrNotFound. Useful only when secrets are stored verbatim; hashed
// secrets are verified by the caller against FindByEmail.
func (s *Store) FindByCredentials(_ context.Context, email, secret string) (domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.accounts {
		if a.Email == email && a.Secret == secret {
			return a, nil
		}
	}
	return domain.Account{}, domain.ErrNotFound
}

func (s *Store) FindByEmail(_ context.Context, email string) (domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return domain.Account{}, domain.ErrNotFound
}

func (s *Store) FindByID(_ context.Context, id string) (domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if a, ok := s.accounts[id]; ok {
		return a, nil
	}
	return domain.Account{}, domain.ErrNotFound
}

// UpdateProfile replaces both name fields and persists the collection.
// If the write fails the in-memory mutation stays applied: the fields
// are not security-critical, and the next successful write converges
// memory and disk again.
func (s *Store) UpdateProfile(_ context.Context, id, firstName, lastName string) (domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[id]
	if !ok {
		return domain.Account{}, domain.ErrNotFound
	}
	a.FirstName = firstName
	a.LastName = lastName
	s.accounts[id] = a

	if err := s.persistLocked(); err != nil {
		return domain.Account{}, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return a, nil
}

// persistLocked writes the whole collection as a JSON array, via a
// temp file renamed over the target so the previous contents survive
// a failed write. Callers must hold the write lock.
func (s *Store) persistLocked() error {
	records := make([]record, 0, len(s.accounts))
	for _, a := range s.accounts {
		records = append(records, record{
			UserID:    a.ID,
			Email:     a.Email,
			Password:  a.Secret,
			FirstName: a.FirstName,
			LastName:  a.LastName,
			CreatedAt: a.CreatedAt,
		})
	}
	sort.Slice(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.Before(records[j].CreatedAt)
		}
		return records[i].UserID < records[j].UserID
	})

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode accounts: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), fileName+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write accounts: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", fileName, err)
	}
	return nil
}
