package service_test

import (
	"context"
	"testing"

	"github.com/teamtrack/tracker/internal/domain"
	"github.com/teamtrack/tracker/internal/repository/sqlite"
	"github.com/teamtrack/tracker/internal/service"
)

// completeProblems awards each listed user one completed problem per entry.
func completeProblems(t *testing.T, db *sqlite.DB, lifecycle *service.LifecycleService, awards map[int64][]int64) {
	t.Helper()
	ctx := context.Background()
	for userID, problemIDs := range awards {
		for _, problemID := range problemIDs {
			if err := db.Problems().Claim(ctx, problemID, userID); err != nil {
				t.Fatalf("claim problem %d: %v", problemID, err)
			}
			if err := lifecycle.SetProblemStatus(ctx, problemID, domain.StatusCompleted); err != nil {
				t.Fatalf("complete problem %d: %v", problemID, err)
			}
		}
	}
}

func TestScoreService_TotalPoints(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	scores := service.NewScoreService(db.Scores())
	lifecycle := service.NewLifecycleService(db.Problems(), db.Projects())

	alice := createUser(t, db, "alice")
	bugs := createCategory(t, db, "Bug Fix", 3)
	feats := createCategory(t, db, "Feature", 5)

	p1 := createProblem(t, db, "p1", bugs.ID, feats.ID)
	completeProblems(t, db, lifecycle, map[int64][]int64{alice.ID: {p1.ID}})

	points, err := scores.TotalPoints(ctx, alice.ID)
	if err != nil {
		t.Fatalf("TotalPoints: %v", err)
	}
	if points != 8 {
		t.Fatalf("expected 8 points, got %d", points)
	}
}

func TestScoreService_TotalPoints_RevertRemovesPoints(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	scores := service.NewScoreService(db.Scores())
	lifecycle := service.NewLifecycleService(db.Problems(), db.Projects())

	alice := createUser(t, db, "alice")
	bugs := createCategory(t, db, "Bug Fix", 3)

	p1 := createProblem(t, db, "p1", bugs.ID)
	completeProblems(t, db, lifecycle, map[int64][]int64{alice.ID: {p1.ID}})

	// Reverting the completion takes the points back on the next read.
	if err := lifecycle.SetProblemStatus(ctx, p1.ID, domain.StatusInProgress); err != nil {
		t.Fatalf("revert: %v", err)
	}

	points, err := scores.TotalPoints(ctx, alice.ID)
	if err != nil {
		t.Fatalf("TotalPoints: %v", err)
	}
	if points != 0 {
		t.Fatalf("expected 0 points after revert, got %d", points)
	}
}

func TestScoreService_TotalPoints_TracksCurrentWeights(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	scores := service.NewScoreService(db.Scores())
	lifecycle := service.NewLifecycleService(db.Problems(), db.Projects())

	alice := createUser(t, db, "alice")
	bugs := createCategory(t, db, "Bug Fix", 3)

	p1 := createProblem(t, db, "p1", bugs.ID)
	completeProblems(t, db, lifecycle, map[int64][]int64{alice.ID: {p1.ID}})

	points, err := scores.TotalPoints(ctx, alice.ID)
	if err != nil {
		t.Fatalf("TotalPoints: %v", err)
	}
	if points != 3 {
		t.Fatalf("expected 3 points, got %d", points)
	}

	// Reweighting the category after completion changes the total: scores
	// follow the current weight, not a snapshot taken at completion time.
	if err := db.Categories().UpdatePoints(ctx, bugs.ID, 10); err != nil {
		t.Fatalf("UpdatePoints: %v", err)
	}

	points, err = scores.TotalPoints(ctx, alice.ID)
	if err != nil {
		t.Fatalf("TotalPoints after reweight: %v", err)
	}
	if points != 10 {
		t.Fatalf("expected 10 points after reweight, got %d", points)
	}

	entries, err := scores.Rankings(ctx)
	if err != nil {
		t.Fatalf("Rankings: %v", err)
	}
	if len(entries) != 1 || entries[0].Points != 10 {
		t.Fatalf("expected leaderboard to show 10 points, got %+v", entries)
	}
}

func TestScoreService_Rankings(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	scores := service.NewScoreService(db.Scores())
	lifecycle := service.NewLifecycleService(db.Problems(), db.Projects())

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	createUser(t, db, "carol")

	bugs := createCategory(t, db, "Bug Fix", 3)
	feats := createCategory(t, db, "Feature", 5)

	p1 := createProblem(t, db, "p1", feats.ID)
	p2 := createProblem(t, db, "p2", bugs.ID)
	completeProblems(t, db, lifecycle, map[int64][]int64{
		bob.ID:   {p1.ID},
		alice.ID: {p2.ID},
	})

	entries, err := scores.Rankings(ctx)
	if err != nil {
		t.Fatalf("Rankings: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	want := []domain.LeaderboardEntry{
		{Rank: 1, Username: "bob", Points: 5},
		{Rank: 2, Username: "alice", Points: 3},
		{Rank: 3, Username: "carol", Points: 0},
	}
	for i, e := range entries {
		if e != want[i] {
			t.Fatalf("entry %d: expected %+v, got %+v", i, want[i], e)
		}
	}
}

func TestScoreService_Rankings_TiesGetDistinctRanks(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	scores := service.NewScoreService(db.Scores())
	lifecycle := service.NewLifecycleService(db.Problems(), db.Projects())

	zoe := createUser(t, db, "zoe")
	adam := createUser(t, db, "adam")
	bugs := createCategory(t, db, "Bug Fix", 3)

	p1 := createProblem(t, db, "p1", bugs.ID)
	p2 := createProblem(t, db, "p2", bugs.ID)
	completeProblems(t, db, lifecycle, map[int64][]int64{
		zoe.ID:  {p1.ID},
		adam.ID: {p2.ID},
	})

	entries, err := scores.Rankings(ctx)
	if err != nil {
		t.Fatalf("Rankings: %v", err)
	}

	// Equal points: alphabetical order, sequential ranks, no sharing.
	if entries[0].Username != "adam" || entries[0].Rank != 1 {
		t.Fatalf("expected adam at rank 1, got %+v", entries[0])
	}
	if entries[1].Username != "zoe" || entries[1].Rank != 2 {
		t.Fatalf("expected zoe at rank 2, got %+v", entries[1])
	}
}

func TestScoreService_Rankings_Empty(t *testing.T) {
	db := newTestDB(t)
	scores := service.NewScoreService(db.Scores())

	entries, err := scores.Rankings(context.Background())
	if err != nil {
		t.Fatalf("Rankings: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty leaderboard, got %d entries", len(entries))
	}
}
