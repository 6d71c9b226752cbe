package domain

import "context"

// UserTotal is one user's current point total, aggregated fresh from
// completed problems.
type UserTotal struct {
	UserID   int64
	Username string
	Points   int64
}

// LeaderboardEntry is one row of the ranked leaderboard.
type LeaderboardEntry struct {
	Rank     int
	Username string
	Points   int64
}

// CategoryCompletion counts completed problems and earned points per category.
type CategoryCompletion struct {
	Category  string
	Completed int64
	Points    int64
}

// Stats is an on-demand snapshot of tracker activity.
type Stats struct {
	CompletedProjects   int64
	CompletedProblems   int64
	CategoryCompletions []CategoryCompletion
	ProjectStatuses     []StatusCount
}

// ScoreRepository aggregates points from the current store contents.
// Totals are always recomputed per call; there is no cached counter to
// drift, and category weight changes are reflected retroactively.
type ScoreRepository interface {
	// UserPoints sums the category points of all Completed problems
	// claimed by the user. Unknown users sum to zero.
	UserPoints(ctx context.Context, userID int64) (int64, error)
	// Totals returns an entry for every user, zero totals included,
	// ordered by points descending then username ascending.
	Totals(ctx context.Context) ([]UserTotal, error)
	Stats(ctx context.Context) (*Stats, error)
}
