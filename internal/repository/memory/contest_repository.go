package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go-concurso-backend/internal/domain"
)

type ContestRepository struct {
	mu       sync.RWMutex
	nextID   int64
	contests []domain.Contest
	codeIdx  map[string]int64
}

func NewContestRepository() *ContestRepository {
	return &ContestRepository{codeIdx: make(map[string]int64)}
}

func (r *ContestRepository) Fetch(_ context.Context) ([]domain.Contest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Contest, 0, len(r.contests))
	for _, c := range r.contests {
		out = append(out, cloneContest(c))
	}
	return out, nil
}

func (r *ContestRepository) GetByCode(_ context.Context, code string) (*domain.Contest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.codeIdx[code]
	if !ok {
		return nil, nil
	}
	for _, c := range r.contests {
		if c.ID == id {
			found := cloneContest(c)
			return &found, nil
		}
	}
	return nil, nil
}

func (r *ContestRepository) Create(_ context.Context, contest *domain.Contest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.codeIdx[contest.Code]; exists {
		return fmt.Errorf("contest code %q: %w", contest.Code, domain.ErrConflict)
	}
	r.nextID++
	contest.ID = r.nextID
	contest.CreatedAt = time.Now().UTC()
	r.contests = append(r.contests, cloneContest(*contest))
	r.codeIdx[contest.Code] = contest.ID
	return nil
}

func (r *ContestRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.contests {
		if c.ID == id {
			delete(r.codeIdx, c.Code)
			r.contests = append(r.contests[:i], r.contests[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func cloneContest(c domain.Contest) domain.Contest {
	c.Positions = append([]domain.Position(nil), c.Positions...)
	return c
}
