package repository

import (
	"context"
	"testing"

	"github.com/formbridge/formbridge/internal/submission"
)

func TestMemoryRepo_InsertAndList(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	first := &submission.Submission{Name: "Ann", Email: "ann@x.com", Message: "hi"}
	second := &submission.Submission{Name: "Bob", Email: "bob@x.com"}

	if err := repo.Insert(ctx, first); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if err := repo.Insert(ctx, second); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if first.ID.IsZero() || second.ID.IsZero() {
		t.Fatal("expected IDs to be assigned on insert")
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 submissions, got %d", len(got))
	}
	// insertion order preserved
	if got[0].Name != "Ann" || got[1].Name != "Bob" {
		t.Fatalf("unexpected order: %s, %s", got[0].Name, got[1].Name)
	}
	if got[1].Message != "" {
		t.Fatalf("expected empty message to stay empty, got %q", got[1].Message)
	}
}
