package domain

import "errors"

// Store sentinels. Repositories wrap these with %w; usecases translate them.
var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("resource already exists")
)
