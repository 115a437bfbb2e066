package main

import (
	"context"
	"fmt"

	"go-concurso-backend/config"
	"go-concurso-backend/internal/domain"
	"go-concurso-backend/internal/repository/memory"
	"go-concurso-backend/internal/repository/postgres"
	"go-concurso-backend/pkg/database"
	"go-concurso-backend/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// stores bundles the repositories selected by STORE_DRIVER.
type stores struct {
	candidates domain.CandidateRepository
	contests   domain.ContestRepository
	pool       *pgxpool.Pool
}

func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		logger.Log.Warn("Using in-memory store; data is lost on exit")
		return &stores{
			candidates: memory.NewCandidateRepository(),
			contests:   memory.NewContestRepository(),
		}, nil
	case config.StoreDriverPostgres:
		pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			return nil, err
		}
		return &stores{
			candidates: postgres.NewCandidateRepository(pool),
			contests:   postgres.NewContestRepository(pool),
			pool:       pool,
		}, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func (s *stores) healthCheckers() []domain.HealthChecker {
	if s.pool == nil {
		return nil
	}
	return []domain.HealthChecker{database.PoolChecker{Pool: s.pool}}
}

func (s *stores) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
