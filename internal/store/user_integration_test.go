package store

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/userboard/userboard/internal/model"
)

// requireEnv returns an environment variable or skips the test if missing.
// It mirrors testutil.RequireEnv, which cannot be imported here without a
// test-only import cycle (testutil imports store for its error sentinels).
func requireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

// newTestStore connects to the store named by MONGO_TEST_URL, or skips.
// The users collection is dropped before and after each test.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	url := requireEnv(t, "MONGO_TEST_URL")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	s, err := Connect(ctx, url, logger)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	dropUsers := func() {
		dropCtx, dropCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer dropCancel()
		if _, err := s.users.DeleteMany(dropCtx, bson.D{}); err != nil {
			t.Logf("cleanup: %v", err)
		}
	}
	dropUsers()

	t.Cleanup(func() {
		dropUsers()
		discCtx, discCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer discCancel()
		_ = s.Disconnect(discCtx)
	})

	return s
}

func TestStore_CreateAndListRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	name := "Alice"
	user := &model.User{Email: "alice@example.com", Name: &name}
	if err := s.CreateUser(ctx, user); err != nil {
		t.Fatalf("create: %v", err)
	}

	if user.ID.IsZero() {
		t.Error("expected store-assigned id")
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Error("expected store-assigned timestamps")
	}

	users, err := s.ListUsers(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
	if users[0].Email != "alice@example.com" {
		t.Errorf("unexpected email %q", users[0].Email)
	}
	if users[0].Name == nil || *users[0].Name != "Alice" {
		t.Errorf("unexpected name %v", users[0].Name)
	}
}

func TestStore_DuplicateEmailRejectedByIndex(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateUser(ctx, &model.User{Email: "dup@example.com"}); err != nil {
		t.Fatalf("first create: %v", err)
	}

	err := s.CreateUser(ctx, &model.User{Email: "dup@example.com"})
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestStore_GetUserByEmail_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetUserByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestStore_ListUsers_EmptyStore(t *testing.T) {
	s := newTestStore(t)

	users, err := s.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if users == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(users) != 0 {
		t.Fatalf("expected empty list, got %d users", len(users))
	}
}

func TestStore_DisconnectIsIdempotentAndFlipsState(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if s.State() != StateConnected {
		t.Fatalf("expected connected state, got %s", s.State())
	}

	if err := s.Disconnect(ctx); err != nil {
		t.Fatalf("disconnect: %v", err)
	}
	if s.State() != StateDisconnected {
		t.Fatalf("expected disconnected state, got %s", s.State())
	}

	// Second disconnect is a no-op.
	if err := s.Disconnect(ctx); err != nil {
		t.Fatalf("second disconnect: %v", err)
	}
}
