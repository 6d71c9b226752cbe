package domain

import (
	"context"
	"time"
)

// Project groups related problems and carries its own status lifecycle.
type Project struct {
	ID          int64
	Name        string
	Description string
	Type        string
	Status      string
	CreatedAt   time.Time
	CompletedAt *time.Time
	Workers     []User
}

// StatusCount is one row of a per-status breakdown.
type StatusCount struct {
	Status string
	Count  int64
}

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	// Create inserts the project and assigns the given workers in one
	// transaction.
	Create(ctx context.Context, project *Project, workerIDs []int64) error
	GetByID(ctx context.Context, id int64) (*Project, error)
	List(ctx context.Context) ([]Project, error)
	// UpdateStatus writes the status and completion timestamp together.
	// completedAt must be non-nil exactly when status is Completed.
	UpdateStatus(ctx context.Context, id int64, status string, completedAt *time.Time) error
	StatusBreakdown(ctx context.Context) ([]StatusCount, error)
}
