package usecase

import (
	"context"
	"time"

	"go-concurso-backend/internal/domain"
)

type healthUsecase struct {
	checkers []domain.HealthChecker
	timeout  time.Duration
}

func NewHealthUsecase(checkers ...domain.HealthChecker) domain.HealthUsecase {
	return &healthUsecase{checkers: checkers, timeout: 2 * time.Second}
}

// Check pings every dependency and reports "ok" or the error text per name.
// The boolean is false when any dependency is down.
func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	status := map[string]string{"status": "ok"}
	healthy := true
	for _, c := range u.checkers {
		pingCtx, cancel := context.WithTimeout(ctx, u.timeout)
		err := c.Ping(pingCtx)
		cancel()
		if err != nil {
			status[c.Name()] = err.Error()
			healthy = false
			continue
		}
		status[c.Name()] = "ok"
	}
	if !healthy {
		status["status"] = "degraded"
	}
	return status, healthy
}
