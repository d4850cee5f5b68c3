package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/formbridge/formbridge/internal/database"
	"github.com/formbridge/formbridge/internal/submission"
	"github.com/formbridge/formbridge/internal/submission/repository"
)

// ErrDataStore marks connection and insertion failures at the datastore
// layer so handlers can tell them apart from configuration errors.
var ErrDataStore = errors.New("datastore error")

// Service defines the submission operations used by the handler layer.
type Service interface {
	Store(ctx context.Context, s *submission.Submission) error
	List(ctx context.Context) ([]*submission.Submission, error)
}

// NewMongoService returns a Service that resolves its collection through the
// connection manager on every call, preserving the lazy-connect contract: a
// missing connection string surfaces as database.ErrNotConfigured, everything
// else at the datastore layer is wrapped in ErrDataStore.
func NewMongoService(db *database.Manager) Service {
	return &mongoService{db: db}
}

type mongoService struct {
	db *database.Manager
}

func (s *mongoService) Store(ctx context.Context, sub *submission.Submission) error {
	col, err := s.db.Collection(ctx)
	if err != nil {
		if errors.Is(err, database.ErrNotConfigured) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrDataStore, err)
	}
	if err := repository.NewMongoRepo(col).Insert(ctx, sub); err != nil {
		return fmt.Errorf("%w: %v", ErrDataStore, err)
	}
	return nil
}

func (s *mongoService) List(ctx context.Context) ([]*submission.Submission, error) {
	col, err := s.db.Collection(ctx)
	if err != nil {
		if errors.Is(err, database.ErrNotConfigured) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrDataStore, err)
	}
	out, err := repository.NewMongoRepo(col).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataStore, err)
	}
	return out, nil
}

// NewMemoryService returns a Service backed by the in-memory repository.
func NewMemoryService() Service {
	return &memoryService{repo: repository.NewMemoryRepo()}
}

type memoryService struct {
	repo *repository.MemoryRepo
}

func (s *memoryService) Store(ctx context.Context, sub *submission.Submission) error {
	return s.repo.Insert(ctx, sub)
}

func (s *memoryService) List(ctx context.Context) ([]*submission.Submission, error) {
	return s.repo.List(ctx)
}
