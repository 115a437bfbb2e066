// Package memory implements the repositories in process memory. Records are
// kept in insertion order so Fetch mirrors the postgres driver's id ordering.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go-concurso-backend/internal/domain"
)

type CandidateRepository struct {
	mu         sync.RWMutex
	nextID     int64
	candidates []domain.Candidate
	taxIdx     map[string]int64
}

func NewCandidateRepository() *CandidateRepository {
	return &CandidateRepository{taxIdx: make(map[string]int64)}
}

func (r *CandidateRepository) Fetch(_ context.Context) ([]domain.Candidate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Candidate, 0, len(r.candidates))
	for _, c := range r.candidates {
		out = append(out, cloneCandidate(c))
	}
	return out, nil
}

func (r *CandidateRepository) GetByTaxID(_ context.Context, taxID string) (*domain.Candidate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.taxIdx[taxID]
	if !ok {
		return nil, nil
	}
	for _, c := range r.candidates {
		if c.ID == id {
			found := cloneCandidate(c)
			return &found, nil
		}
	}
	return nil, nil
}

func (r *CandidateRepository) Create(_ context.Context, candidate *domain.Candidate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.taxIdx[candidate.TaxID]; exists {
		return fmt.Errorf("candidate tax id %q: %w", candidate.TaxID, domain.ErrConflict)
	}
	r.nextID++
	candidate.ID = r.nextID
	candidate.CreatedAt = time.Now().UTC()
	r.candidates = append(r.candidates, cloneCandidate(*candidate))
	r.taxIdx[candidate.TaxID] = candidate.ID
	return nil
}

func (r *CandidateRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.candidates {
		if c.ID == id {
			delete(r.taxIdx, c.TaxID)
			r.candidates = append(r.candidates[:i], r.candidates[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func cloneCandidate(c domain.Candidate) domain.Candidate {
	c.Professions = append([]string(nil), c.Professions...)
	return c
}
