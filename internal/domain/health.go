package domain

import "context"

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker interface {
	Name() string
	Ping(ctx context.Context) error
}

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, bool)
}
