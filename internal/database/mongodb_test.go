package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/formbridge/formbridge/internal/config"
)

func TestCollection_NotConfigured(t *testing.T) {
	m := NewManager(config.MongoDBConfig{Database: "mydatabase", Collection: "submissions", Timeout: 5 * time.Second})
	if m.Configured() {
		t.Fatal("manager should not report configured without a URI")
	}
	_, err := m.Collection(context.Background())
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestCollection_Configured(t *testing.T) {
	// Connection is lazy: obtaining the collection handle does not require a
	// reachable server, only a well-formed URI.
	m := NewManager(config.MongoDBConfig{
		URI:        "mongodb://localhost:27017",
		Database:   "mydatabase",
		Collection: "submissions",
		Timeout:    time.Second,
	})
	if !m.Configured() {
		t.Fatal("manager should report configured")
	}
	col, err := m.Collection(context.Background())
	if err != nil {
		t.Fatalf("Collection failed: %v", err)
	}
	if col.Name() != "submissions" {
		t.Fatalf("unexpected collection name: %q", col.Name())
	}
	_ = m.Close(context.Background())
}
