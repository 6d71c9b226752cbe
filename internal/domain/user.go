package domain

import (
	"context"
	"time"
)

// User represents a registered team member.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	LastLogin    *time.Time
	CreatedAt    time.Time
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context) ([]User, error)
	TouchLastLogin(ctx context.Context, id int64, at time.Time) error
}
