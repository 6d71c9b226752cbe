package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/teamtrack/tracker/internal/domain"
)

// ProjectService handles project creation and listing.
type ProjectService struct {
	projects domain.ProjectRepository
	users    domain.UserRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projects domain.ProjectRepository, users domain.UserRepository) *ProjectService {
	return &ProjectService{projects: projects, users: users}
}

// Create adds a project and assigns the given workers to it.
func (s *ProjectService) Create(ctx context.Context, name, description, projectType string, workerIDs []int64) (*domain.Project, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: project name is required", domain.ErrInvalidInput)
	}
	if !domain.ValidProjectType(projectType) {
		return nil, fmt.Errorf("%w: unknown project type %q", domain.ErrInvalidInput, projectType)
	}

	for _, workerID := range workerIDs {
		if _, err := s.users.GetByID(ctx, workerID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("%w: worker %d does not exist", domain.ErrInvalidUser, workerID)
			}
			return nil, fmt.Errorf("look up worker: %w", err)
		}
	}

	project := &domain.Project{
		Name:        name,
		Description: description,
		Type:        projectType,
	}
	if err := s.projects.Create(ctx, project, workerIDs); err != nil {
		return nil, err
	}
	return s.projects.GetByID(ctx, project.ID)
}

// GetByID returns a project with its assigned workers.
func (s *ProjectService) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

// List returns all projects, newest first.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.projects.List(ctx)
}
