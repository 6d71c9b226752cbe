package service_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/teamtrack/tracker/internal/domain"
	"github.com/teamtrack/tracker/internal/repository/sqlite"
)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func createUser(t *testing.T, db *sqlite.DB, username string) *domain.User {
	t.Helper()
	user := &domain.User{Username: username, PasswordHash: "hash"}
	if err := db.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func createCategory(t *testing.T, db *sqlite.DB, name string, points int64) *domain.Category {
	t.Helper()
	category := &domain.Category{Name: name, Points: points}
	if err := db.Categories().Create(context.Background(), category); err != nil {
		t.Fatalf("create category %s: %v", name, err)
	}
	return category
}

func createProblem(t *testing.T, db *sqlite.DB, name string, categoryIDs ...int64) *domain.Problem {
	t.Helper()
	problem := &domain.Problem{Name: name}
	if err := db.Problems().Create(context.Background(), problem, categoryIDs); err != nil {
		t.Fatalf("create problem %s: %v", name, err)
	}
	return problem
}
