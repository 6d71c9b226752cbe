package domain

import (
	"context"
	"time"
)

// Problem is a claimable unit of work, optionally attached to a project and
// tagged with point-weighted categories. ClaimedBy is nil while unclaimed;
// a non-nil claimant implies status In Progress or Completed.
type Problem struct {
	ID          int64
	Name        string
	Description string
	Status      string
	ProjectID   *int64
	ClaimedBy   *int64
	CreatedAt   time.Time
	CompletedAt *time.Time
	Categories  []Category
}

// ProblemView is a problem joined with display fields for listings.
type ProblemView struct {
	Problem
	ProjectName  *string
	ClaimantName *string
	TotalPoints  int64
}

// ProblemRepository defines persistence operations for problems.
//
// Claim is the concurrency-critical operation: it must be a single
// conditional UPDATE guarded on the claimant column being free (NULL, a
// legacy zero, or already the caller), reporting ErrClaimConflict when the
// guard does not match. A blind read-then-write is not acceptable here.
type ProblemRepository interface {
	// Create inserts the problem and its category links in one transaction.
	Create(ctx context.Context, problem *Problem, categoryIDs []int64) error
	GetByID(ctx context.Context, id int64) (*Problem, error)
	List(ctx context.Context) ([]ProblemView, error)
	// UpdateStatus writes the status and completion timestamp together.
	UpdateStatus(ctx context.Context, id int64, status string, completedAt *time.Time) error
	Claim(ctx context.Context, problemID, userID int64) error
	Unclaim(ctx context.Context, problemID int64) error
	// ListStaleClaims returns claimed, In Progress problems untouched since
	// before the cutoff.
	ListStaleClaims(ctx context.Context, before time.Time) ([]ProblemView, error)
}
