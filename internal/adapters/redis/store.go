// Package redis provides a Redis-backed SolutionStore so repeated puzzles
// skip the search across processes.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/decant/pkg/domain"
	"github.com/aretw0/decant/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

// Store implements ports.SolutionStore using Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

var _ ports.SolutionStore = (*Store)(nil)

type Option func(*Store)

// WithTTL sets the expiration for cached solutions.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for cached solutions.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "decant:solution:",
		ttl:    0, // No expiration by default
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) key(caps domain.Capacities, target int) string {
	lims := caps.Limits()
	return fmt.Sprintf("%s%dx%dx%d:%d", s.prefix, lims[0], lims[1], lims[2], target)
}

// Put persists the solution to Redis.
func (s *Store) Put(ctx context.Context, sol *domain.Solution) error {
	data, err := json.Marshal(sol)
	if err != nil {
		return fmt.Errorf("failed to marshal solution: %w", err)
	}
	if err := s.client.Set(ctx, s.key(sol.Capacities, sol.Target), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save solution: %w", err)
	}
	return nil
}

// Get retrieves a cached solution from Redis.
func (s *Store) Get(ctx context.Context, caps domain.Capacities, target int) (*domain.Solution, bool, error) {
	data, err := s.client.Get(ctx, s.key(caps, target)).Bytes()
	if errors.Is(err, backend.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load solution: %w", err)
	}

	var sol domain.Solution
	if err := json.Unmarshal(data, &sol); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal solution: %w", err)
	}
	return &sol, true, nil
}

// Delete evicts a cached solution from Redis.
func (s *Store) Delete(ctx context.Context, caps domain.Capacities, target int) error {
	if err := s.client.Del(ctx, s.key(caps, target)).Err(); err != nil {
		return fmt.Errorf("failed to delete solution: %w", err)
	}
	return nil
}
