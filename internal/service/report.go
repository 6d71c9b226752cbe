package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/teamtrack/tracker/internal/domain"
)

// ReportService periodically logs an activity report: the current top of
// the leaderboard plus claims that have been In Progress for too long. The
// report is informational only; it never mutates tracker state.
type ReportService struct {
	scores     domain.ScoreRepository
	problems   domain.ProblemRepository
	cron       *cron.Cron
	staleAfter time.Duration
}

// NewReportService creates a new ReportService. staleAfter controls how old
// an In Progress claim must be before it is flagged in the report.
func NewReportService(scores domain.ScoreRepository, problems domain.ProblemRepository, staleAfter time.Duration) *ReportService {
	return &ReportService{
		scores:     scores,
		problems:   problems,
		cron:       cron.New(),
		staleAfter: staleAfter,
	}
}

// Start schedules the report every interval and starts the scheduler.
func (s *ReportService) Start(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("report interval must be positive")
	}
	spec := fmt.Sprintf("@every %ds", int(interval.Seconds()))
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return fmt.Errorf("schedule report: %w", err)
	}
	s.cron.Start()
	return nil
}

// Stop halts the scheduler and waits for a running report to finish.
func (s *ReportService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *ReportService) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	totals, err := s.scores.Totals(ctx)
	if err != nil {
		slog.Error("activity report: leaderboard totals", "error", err)
		return
	}

	top := totals
	if len(top) > 3 {
		top = top[:3]
	}
	for i, t := range top {
		slog.Info("activity report: leaderboard", "rank", i+1, "username", t.Username, "points", t.Points)
	}

	cutoff := time.Now().UTC().Add(-s.staleAfter)
	stale, err := s.problems.ListStaleClaims(ctx, cutoff)
	if err != nil {
		slog.Error("activity report: stale claims", "error", err)
		return
	}
	for _, p := range stale {
		claimant := ""
		if p.ClaimantName != nil {
			claimant = *p.ClaimantName
		}
		slog.Warn("activity report: stale claim",
			"problem", p.Name, "claimant", claimant, "age", time.Since(p.CreatedAt).Round(time.Hour))
	}
}
