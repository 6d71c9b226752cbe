package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidUser       = errors.New("invalid user")
	ErrAlreadyClaimed    = errors.New("problem is already claimed by another user")
	ErrClaimConflict     = errors.New("claim lost to a concurrent claimer")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateCategory = errors.New("category already exists")
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnauthorized      = errors.New("unauthorized")
)
