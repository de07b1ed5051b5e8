// Package testutil provides shared helpers for tests.
package testutil

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/userboard/userboard/internal/model"
	"github.com/userboard/userboard/internal/store"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

// FakeUserStore is an in-memory UserStore with the same error contract as the
// real store, including the unique-email guarantee.
type FakeUserStore struct {
	mu    sync.Mutex
	users []model.User

	// FailWith, when set, makes every operation fail with that error.
	FailWith error
}

// NewFakeUserStore returns an empty fake store.
func NewFakeUserStore() *FakeUserStore {
	return &FakeUserStore{}
}

// CreateUser assigns an id and timestamps and appends the user, rejecting
// duplicate emails like the real unique index does.
func (f *FakeUserStore) CreateUser(ctx context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.FailWith != nil {
		return f.FailWith
	}

	for _, existing := range f.users {
		if existing.Email == user.Email {
			return store.ErrEmailExists
		}
	}

	now := time.Now().UTC()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now

	f.users = append(f.users, *user)
	return nil
}

// GetUserByEmail finds a user by exact email match.
func (f *FakeUserStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.FailWith != nil {
		return nil, f.FailWith
	}

	for _, user := range f.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// ListUsers returns the stored users in insertion order.
func (f *FakeUserStore) ListUsers(ctx context.Context) ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.FailWith != nil {
		return nil, f.FailWith
	}

	out := make([]model.User, len(f.users))
	copy(out, f.users)
	return out, nil
}

// Len reports the number of stored users.
func (f *FakeUserStore) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.users)
}
