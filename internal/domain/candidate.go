package domain

import (
	"context"
	"time"
)

// Candidate is a registered job candidate (candidato). TaxID holds the CPF and is
// the external lookup key used by matching.
type Candidate struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"max=200,no_emoji,no_nul,valid_utf8"`
	TaxID       string    `json:"tax_id" validate:"required,notblank_trim,max=32,no_nul,valid_utf8"`
	Professions []string  `json:"professions" validate:"dive,required,notblank_trim,max=120,no_nul,valid_utf8"`
	CreatedAt   time.Time `json:"created_at"`
}

// CandidateRepository is the persistence contract for candidates.
// GetByTaxID returns (nil, nil) when no candidate has the given tax ID.
type CandidateRepository interface {
	Fetch(ctx context.Context) ([]Candidate, error)
	GetByTaxID(ctx context.Context, taxID string) (*Candidate, error)
	Create(ctx context.Context, candidate *Candidate) error
	Delete(ctx context.Context, id int64) error
}

type CandidateUsecase interface {
	ListCandidates(ctx context.Context) ([]Candidate, error)
	AddCandidate(ctx context.Context, candidate *Candidate) error
	RemoveCandidate(ctx context.Context, id int64) error
}
