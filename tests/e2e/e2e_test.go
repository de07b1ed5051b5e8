//go:build e2e

package e2e

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/userboard/userboard/internal/client"
)

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// uniqueEmail avoids collisions with records from earlier runs.
func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s+%d@e2e.test", prefix, time.Now().UnixNano())
}

func TestE2ESmoke(t *testing.T) {
	baseURL := envOrDefault("USERBOARD_BASE_URL", "http://localhost:3001")
	c := client.New(baseURL)
	ctx := context.Background()

	// Health and greeting are always served.
	health, err := c.Healthcheck(ctx)
	require.NoError(t, err, "is the server running at %s?", baseURL)
	assert.Equal(t, "ok", health.Status)
	require.True(t, health.Connected(), "store must be connected for the e2e run")

	message, err := c.Message(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, message)

	// Create with mixed case and padding; the record comes back normalized.
	email := uniqueEmail("Smoke")
	created, err := c.CreateUser(ctx, "  "+email+"  ", " Alice ")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	require.NotNil(t, created.Name)
	assert.Equal(t, "Alice", *created.Name)
	assert.False(t, created.CreatedAt.IsZero())

	// The list includes exactly one record with the normalized email.
	users, err := c.ListUsers(ctx)
	require.NoError(t, err)

	matches := 0
	for _, u := range users {
		if u.Email == created.Email {
			matches++
		}
	}
	assert.Equal(t, 1, matches)

	// Same email in different case conflicts.
	_, err = c.CreateUser(ctx, strings.ToUpper(created.Email), "")
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 409, apiErr.StatusCode)
	assert.Equal(t, "User with this email already exists", apiErr.Message)

	// Empty email is rejected before reaching the store.
	_, err = c.CreateUser(ctx, "   ", "Bob")
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.Equal(t, "Email is required", apiErr.Message)
}

func TestE2EHealthPolling(t *testing.T) {
	baseURL := envOrDefault("USERBOARD_BASE_URL", "http://localhost:3001")
	c := client.New(baseURL)

	p := client.NewHealthPoller(c, 50*time.Millisecond, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	go p.Run(ctx)

	deadline := time.After(2 * time.Second)
	for p.Status() == client.StatusChecking {
		select {
		case <-deadline:
			t.Fatal("poller never left the checking state")
		case <-time.After(10 * time.Millisecond):
		}
	}

	assert.Equal(t, client.StatusConnected, p.Status())
}
