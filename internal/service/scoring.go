package service

import (
	"context"
	"fmt"

	"github.com/teamtrack/tracker/internal/domain"
)

// ScoreService exposes point totals and the ranked leaderboard. Everything
// is recomputed from the store on each call; there is no cached score state.
type ScoreService struct {
	scores domain.ScoreRepository
}

// NewScoreService creates a new ScoreService.
func NewScoreService(scores domain.ScoreRepository) *ScoreService {
	return &ScoreService{scores: scores}
}

// TotalPoints returns the user's current total across Completed problems.
// A user with no completed problems (or no categories on them) totals zero.
func (s *ScoreService) TotalPoints(ctx context.Context, userID int64) (int64, error) {
	return s.scores.UserPoints(ctx, userID)
}

// LeaderboardTotals returns every user's total, zero totals included.
func (s *ScoreService) LeaderboardTotals(ctx context.Context) ([]domain.UserTotal, error) {
	return s.scores.Totals(ctx)
}

// Rankings returns the leaderboard as a plain ordered listing: points
// descending, ties broken by username ascending, ranks numbered 1..N with
// no gaps and no rank sharing.
func (s *ScoreService) Rankings(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	totals, err := s.scores.Totals(ctx)
	if err != nil {
		return nil, fmt.Errorf("leaderboard totals: %w", err)
	}

	entries := make([]domain.LeaderboardEntry, len(totals))
	for i, t := range totals {
		entries[i] = domain.LeaderboardEntry{
			Rank:     i + 1,
			Username: t.Username,
			Points:   t.Points,
		}
	}
	return entries, nil
}

// Stats returns an activity snapshot for the stats endpoint.
func (s *ScoreService) Stats(ctx context.Context) (*domain.Stats, error) {
	return s.scores.Stats(ctx)
}
