package repository

import (
	"context"

	"github.com/formbridge/formbridge/internal/submission"
)

// Repository defines persistence operations for submissions.
type Repository interface {
	Insert(ctx context.Context, s *submission.Submission) error
	List(ctx context.Context) ([]*submission.Submission, error)
}
