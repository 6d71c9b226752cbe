package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/teamtrack/tracker/internal/domain"
)

// ProblemService handles problem creation and listing. Claiming and status
// changes go through ClaimService and LifecycleService.
type ProblemService struct {
	problems   domain.ProblemRepository
	projects   domain.ProjectRepository
	categories domain.CategoryRepository
}

// NewProblemService creates a new ProblemService.
func NewProblemService(problems domain.ProblemRepository, projects domain.ProjectRepository, categories domain.CategoryRepository) *ProblemService {
	return &ProblemService{problems: problems, projects: projects, categories: categories}
}

// Create adds a problem, optionally attached to a project, tagged with the
// given categories.
func (s *ProblemService) Create(ctx context.Context, name, description string, projectID *int64, categoryIDs []int64) (*domain.Problem, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: problem name is required", domain.ErrInvalidInput)
	}

	if projectID != nil {
		if _, err := s.projects.GetByID(ctx, *projectID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("%w: project %d does not exist", domain.ErrInvalidInput, *projectID)
			}
			return nil, fmt.Errorf("look up project: %w", err)
		}
	}

	for _, categoryID := range categoryIDs {
		if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("%w: category %d does not exist", domain.ErrInvalidInput, categoryID)
			}
			return nil, fmt.Errorf("look up category: %w", err)
		}
	}

	problem := &domain.Problem{
		Name:        name,
		Description: description,
		ProjectID:   projectID,
	}
	if err := s.problems.Create(ctx, problem, categoryIDs); err != nil {
		return nil, err
	}
	return s.problems.GetByID(ctx, problem.ID)
}

// GetByID returns a problem with its categories.
func (s *ProblemService) GetByID(ctx context.Context, id int64) (*domain.Problem, error) {
	return s.problems.GetByID(ctx, id)
}

// List returns all problems with project, claimant, and point details,
// newest first.
func (s *ProblemService) List(ctx context.Context) ([]domain.ProblemView, error) {
	return s.problems.List(ctx)
}
