package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/teamtrack/tracker/internal/domain"
	"github.com/teamtrack/tracker/internal/service"
)

func TestProjectService_Create(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := service.NewProjectService(db.Projects(), db.Users())

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	project, err := svc.Create(ctx, "Sprint 1", "first sprint", "2-week", []int64{alice.ID, bob.ID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if project.Status != domain.StatusOpen {
		t.Fatalf("expected Open, got %q", project.Status)
	}
	if len(project.Workers) != 2 {
		t.Fatalf("expected 2 workers, got %d", len(project.Workers))
	}
}

func TestProjectService_Create_Validation(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := service.NewProjectService(db.Projects(), db.Users())

	if _, err := svc.Create(ctx, "", "", "1-week", nil); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("empty name: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(ctx, "Bad Type", "", "5-week", nil); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("unknown type: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(ctx, "Ghost Crew", "", "1-week", []int64{99999}); !errors.Is(err, domain.ErrInvalidUser) {
		t.Fatalf("unknown worker: expected ErrInvalidUser, got %v", err)
	}
}
