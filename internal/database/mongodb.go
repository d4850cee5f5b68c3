package database

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/formbridge/formbridge/internal/config"
)

// ErrNotConfigured is returned when no connection string is present.
var ErrNotConfigured = errors.New("connection string not configured")

// Manager owns the shared MongoDB client. The client is created lazily on the
// first Collection call and reused for the lifetime of the process, so the
// rest of the service stays usable when the datastore is unreachable or
// unconfigured. There is no retry: a failed attempt propagates to the caller
// and the next call starts over.
type Manager struct {
	cfg config.MongoDBConfig

	mu     sync.Mutex
	client *mongo.Client
}

func NewManager(cfg config.MongoDBConfig) *Manager {
	return &Manager{cfg: cfg}
}

// Configured reports whether a connection string is present.
func (m *Manager) Configured() bool {
	return m.cfg.URI != ""
}

// Collection returns the configured collection, connecting on first use.
// Server selection is bounded by the configured timeout (default 5s).
func (m *Manager) Collection(ctx context.Context) (*mongo.Collection, error) {
	if m.cfg.URI == "" {
		return nil, ErrNotConfigured
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client == nil {
		cctx, cancel := context.WithTimeout(ctx, m.cfg.Timeout)
		defer cancel()
		opts := options.Client().
			ApplyURI(m.cfg.URI).
			SetServerSelectionTimeout(m.cfg.Timeout).
			SetConnectTimeout(m.cfg.Timeout)
		client, err := mongo.Connect(cctx, opts)
		if err != nil {
			return nil, fmt.Errorf("mongo connect: %w", err)
		}
		m.client = client
	}

	return m.client.Database(m.cfg.Database).Collection(m.cfg.Collection), nil
}

// Close disconnects the client if one was ever created.
func (m *Manager) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.client == nil {
		return nil
	}
	err := m.client.Disconnect(ctx)
	m.client = nil
	return err
}
