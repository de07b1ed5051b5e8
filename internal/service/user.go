// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/userboard/userboard/internal/metrics"
	"github.com/userboard/userboard/internal/model"
	"github.com/userboard/userboard/internal/store"
)

// Service errors.
var (
	ErrEmailRequired = errors.New("email is required")
	ErrEmailExists   = errors.New("user with this email already exists")
)

// UserStore is the persistence surface the service needs.
// *store.Store satisfies it; tests substitute an in-memory fake.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

// UserService handles user business logic.
type UserService struct {
	store   UserStore
	metrics metrics.Recorder
}

// NewUserService creates a new UserService.
func NewUserService(st UserStore, recorder metrics.Recorder) *UserService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &UserService{
		store:   st,
		metrics: recorder,
	}
}

// CreateUserInput defines input for creating a user.
type CreateUserInput struct {
	Email string
	Name  string
}

// normalize trims both fields and lowercases the email.
// A name that is empty after trimming becomes absent rather than "".
func (in CreateUserInput) normalize() (email string, name *string) {
	email = strings.ToLower(strings.TrimSpace(in.Email))
	if trimmed := strings.TrimSpace(in.Name); trimmed != "" {
		name = &trimmed
	}
	return email, name
}

// CreateUser validates and persists a new user.
// Returns ErrEmailRequired when the email is empty after trimming (no store
// access is attempted) and ErrEmailExists for a duplicate normalized email.
//
// The pre-insert lookup exists only for a friendlier error; two concurrent
// creates can both pass it. The store's unique index is the actual
// correctness mechanism, and a duplicate-key failure on insert is reported
// the same way.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*model.User, error) {
	start := time.Now()

	email, name := input.normalize()
	if email == "" {
		s.metrics.IncValidationFailure()
		return nil, ErrEmailRequired
	}

	_, err := s.store.GetUserByEmail(ctx, email)
	if err == nil {
		s.metrics.IncUserConflict()
		return nil, ErrEmailExists
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}

	user := &model.User{
		Email: email,
		Name:  name,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.metrics.IncUserConflict()
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.metrics.IncUserCreated()
	s.metrics.ObserveCreateUserDuration(time.Since(start))

	return user, nil
}

// ListUsers returns all users in the store's natural order.
func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.store.ListUsers(ctx)
}
