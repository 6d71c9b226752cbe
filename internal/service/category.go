package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/teamtrack/tracker/internal/domain"
)

// CategoryService handles the point-weighted category catalogue.
type CategoryService struct {
	categories domain.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categories domain.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// Create adds a new category with the given point weight.
func (s *CategoryService) Create(ctx context.Context, name string, points int64) (*domain.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", domain.ErrInvalidInput)
	}
	if points < 1 {
		return nil, fmt.Errorf("%w: points must be at least 1", domain.ErrInvalidInput)
	}

	category := &domain.Category{Name: name, Points: points}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// List returns all categories ordered by name.
func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

// UpdatePoints changes a category's point weight. Scores of already
// completed problems reflect the new weight on the next aggregation.
func (s *CategoryService) UpdatePoints(ctx context.Context, id int64, points int64) error {
	if points < 1 {
		return fmt.Errorf("%w: points must be at least 1", domain.ErrInvalidInput)
	}
	return s.categories.UpdatePoints(ctx, id, points)
}

// defaultCategories is the starter catalogue seeded into fresh databases.
var defaultCategories = []domain.Category{
	{Name: "Documentation", Points: 2},
	{Name: "Bug Fix", Points: 3},
	{Name: "Feature", Points: 5},
	{Name: "Infrastructure", Points: 5},
	{Name: "Research", Points: 8},
}

// SeedDefaults inserts the default categories that do not exist yet.
// Safe to run on every startup.
func (s *CategoryService) SeedDefaults(ctx context.Context) error {
	for _, def := range defaultCategories {
		_, err := s.categories.GetByName(ctx, def.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("check category %q: %w", def.Name, err)
		}

		category := def
		if err := s.categories.Create(ctx, &category); err != nil {
			return fmt.Errorf("seed category %q: %w", def.Name, err)
		}
	}
	return nil
}
