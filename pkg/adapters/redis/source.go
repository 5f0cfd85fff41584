package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/branchtale/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces the table keys.
const DefaultPrefix = "branchtale:table:"

// Source implements ports.TableSource using Redis.
// Each table is stored as a single string value (JSON array or YAML sequence)
// under <prefix><TABLE>, e.g. "branchtale:table:NODES".
type Source struct {
	client *backend.Client
	prefix string
}

type Option func(*Source)

// WithPrefix sets the key prefix for tables.
func WithPrefix(prefix string) Option {
	return func(s *Source) {
		s.prefix = prefix
	}
}

// New creates a new Redis source with options.
func New(address, password string, db int, opts ...Option) *Source {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis source from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Source {
	s := &Source{
		client: client,
		prefix: DefaultPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the Redis key holding the table.
func (s *Source) Key(table domain.Table) string {
	return s.prefix + string(table)
}

// Fetch reads the table payload.
func (s *Source) Fetch(ctx context.Context, table domain.Table) ([]byte, error) {
	data, err := s.client.Get(ctx, s.Key(table)).Bytes()
	if errors.Is(err, backend.Nil) {
		return nil, &domain.LoadError{Table: table, Reason: fmt.Sprintf("key %s not found", s.Key(table))}
	}
	if err != nil {
		return nil, &domain.LoadError{Table: table, Reason: "redis get failed", Err: err}
	}
	return data, nil
}

// Publish stores a table payload. It is used to seed a story from a local export.
func (s *Source) Publish(ctx context.Context, table domain.Table, payload []byte) error {
	if err := s.client.Set(ctx, s.Key(table), payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to publish %s: %w", table, err)
	}
	return nil
}

// Close releases the underlying client.
func (s *Source) Close() error {
	return s.client.Close()
}
