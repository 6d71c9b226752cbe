package domain

import "context"

// Category is a point-weighted tag attached to problems. A completed
// problem is worth the sum of its categories' points.
type Category struct {
	ID     int64
	Name   string
	Points int64
}

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, id int64) (*Category, error)
	GetByName(ctx context.Context, name string) (*Category, error)
	List(ctx context.Context) ([]Category, error)
	UpdatePoints(ctx context.Context, id int64, points int64) error
}
