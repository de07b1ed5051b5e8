// Package store provides the document-store access layer.
// It owns the MongoDB connection lifecycle and exposes the connection state
// consumed by health checks.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync/atomic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ErrNoDatabaseURL is returned by Connect when no connection string is configured.
var ErrNoDatabaseURL = errors.New("database URL is not configured")

// ConnState describes store reachability as tracked by the connector.
// The numeric values are part of the /health wire contract
// (the databaseState field), so they must not be reordered.
type ConnState int32

const (
	StateDisconnected  ConnState = 0
	StateConnected     ConnState = 1
	StateConnecting    ConnState = 2
	StateDisconnecting ConnState = 3
)

// String returns the lowercase name of the state.
func (s ConnState) String() string {
	switch s {
	case StateConnected:
		return "connected"
	case StateConnecting:
		return "connecting"
	case StateDisconnecting:
		return "disconnecting"
	default:
		return "disconnected"
	}
}

const (
	usersCollection = "users"
	// defaultDatabase is used when the connection string carries no path.
	defaultDatabase = "test"
)

// Store provides document database access methods.
// A single Store instance is shared for the process lifetime: Connect runs once
// before the server accepts traffic and Disconnect once during shutdown.
type Store struct {
	client *mongo.Client
	users  *mongo.Collection
	state  atomic.Int32
	logger *slog.Logger
}

// Connect establishes the store connection, verifies reachability and ensures
// the unique email index exists. The index is the authoritative uniqueness
// guarantee; the service-level duplicate check only improves the error message.
func Connect(ctx context.Context, databaseURL string, logger *slog.Logger) (*Store, error) {
	if databaseURL == "" {
		return nil, ErrNoDatabaseURL
	}

	s := &Store{logger: logger}
	s.state.Store(int32(StateConnecting))

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(databaseURL))
	if err != nil {
		s.state.Store(int32(StateDisconnected))
		return nil, fmt.Errorf("failed to connect to store: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		s.state.Store(int32(StateDisconnected))
		return nil, fmt.Errorf("failed to ping store: %w", err)
	}

	s.client = client
	s.users = client.Database(databaseName(databaseURL)).Collection(usersCollection)

	if err := s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		s.state.Store(int32(StateDisconnected))
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	s.state.Store(int32(StateConnected))
	logger.Info("connected to store", "database", databaseName(databaseURL))

	return s, nil
}

// Disconnect closes the store connection. It is idempotent: calling it on an
// already disconnected store is a no-op.
func (s *Store) Disconnect(ctx context.Context) error {
	if ConnState(s.state.Load()) == StateDisconnected {
		return nil
	}

	s.state.Store(int32(StateDisconnecting))
	err := s.client.Disconnect(ctx)
	s.state.Store(int32(StateDisconnected))

	if err != nil {
		return fmt.Errorf("failed to disconnect from store: %w", err)
	}

	s.logger.Info("disconnected from store")
	return nil
}

// State reports current store reachability without issuing a round trip.
func (s *Store) State() ConnState {
	return ConnState(s.state.Load())
}

// Ping checks store connectivity with a live round trip.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// ensureIndexes declares the uniqueness constraint on normalized email at the
// storage layer.
func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// databaseName extracts the database from the connection-string path.
func databaseName(databaseURL string) string {
	parsed, err := url.Parse(databaseURL)
	if err != nil {
		return defaultDatabase
	}

	name := strings.TrimPrefix(parsed.Path, "/")
	if name == "" {
		return defaultDatabase
	}

	return name
}
