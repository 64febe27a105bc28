package users

import (
	"context"
	"testing"
	"time"

	"github.com/ShreeanshSachan/Cant-think-of-a-name/internal/models"
)

func TestRegister(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	u, err := svc.Register(ctx, "sub-123", "xuser", "x@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u == nil {
		t.Fatal("expected user, got nil")
	}
	if u.Username != "xuser" {
		t.Fatalf("unexpected username: %s", u.Username)
	}
	if u.Email != "x@example.com" {
		t.Fatalf("unexpected email: %s", u.Email)
	}
	if u.Role != models.RoleStudent {
		t.Fatalf("new accounts must default to student, got: %s", u.Role)
	}
	if u.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}
	if time.Since(u.CreatedAt) > time.Minute {
		t.Fatalf("CreatedAt not close to now: %v", u.CreatedAt)
	}
	if u.Submissions == nil || len(u.Submissions) != 0 {
		t.Fatalf("expected empty submissions slice, got: %v", u.Submissions)
	}

	stored, err := svc.GetBySub(ctx, "sub-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored == nil {
		t.Fatal("expected stored user")
	}
	if stored.Username != "xuser" {
		t.Fatalf("stored username mismatch: %s", stored.Username)
	}
}

func TestRegister_DuplicateSubject(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "sub-dup", "first", "first@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := svc.Register(ctx, "sub-dup", "second", "second@example.com")
	if err != ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got: %v", err)
	}

	// the original document must be untouched
	stored, err := svc.GetBySub(ctx, "sub-dup")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Username != "first" || stored.Email != "first@example.com" {
		t.Fatalf("duplicate registration mutated the document: %+v", stored)
	}
}

func TestGetBySub_Absent(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	u, err := svc.GetBySub(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u != nil {
		t.Fatalf("expected nil for absent user, got: %+v", u)
	}
}
