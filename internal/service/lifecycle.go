package service

import (
	"context"
	"fmt"
	"time"

	"github.com/teamtrack/tracker/internal/domain"
)

// LifecycleService validates and applies status transitions for projects and
// problems. It owns the completion-timestamp rule: entering Completed stamps
// completed_at, leaving it clears the stamp. Any status may follow any other,
// which supports manual corrections such as reverting a Completed item.
type LifecycleService struct {
	problems domain.ProblemRepository
	projects domain.ProjectRepository
}

// NewLifecycleService creates a new LifecycleService.
func NewLifecycleService(problems domain.ProblemRepository, projects domain.ProjectRepository) *LifecycleService {
	return &LifecycleService{problems: problems, projects: projects}
}

// SetProblemStatus writes the new status for a problem. Completing a problem
// does not release its claim.
func (s *LifecycleService) SetProblemStatus(ctx context.Context, problemID int64, status string) error {
	completedAt, err := completionStamp(status)
	if err != nil {
		return err
	}
	if err := s.problems.UpdateStatus(ctx, problemID, status, completedAt); err != nil {
		return fmt.Errorf("set problem status: %w", err)
	}
	return nil
}

// SetProjectStatus writes the new status for a project.
func (s *LifecycleService) SetProjectStatus(ctx context.Context, projectID int64, status string) error {
	completedAt, err := completionStamp(status)
	if err != nil {
		return err
	}
	if err := s.projects.UpdateStatus(ctx, projectID, status, completedAt); err != nil {
		return fmt.Errorf("set project status: %w", err)
	}
	return nil
}

// completionStamp returns the completed_at value paired with the status: the
// current time for Completed, nil for everything else.
func completionStamp(status string) (*time.Time, error) {
	if !domain.ValidStatus(status) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}
	if status != domain.StatusCompleted {
		return nil, nil
	}
	now := time.Now().UTC()
	return &now, nil
}
