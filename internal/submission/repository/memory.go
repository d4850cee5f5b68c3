package repository

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/formbridge/formbridge/internal/submission"
)

// MemoryRepo is a simple in-memory repository used for unit tests and for
// running the service without a datastore during development. Insertion
// order is preserved.
type MemoryRepo struct {
	mu    sync.RWMutex
	items []*submission.Submission
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (m *MemoryRepo) Insert(ctx context.Context, s *submission.Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	m.items = append(m.items, s)
	return nil
}

func (m *MemoryRepo) List(ctx context.Context) ([]*submission.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*submission.Submission, len(m.items))
	copy(out, m.items)
	return out, nil
}
