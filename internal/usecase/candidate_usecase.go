package usecase

import (
	"context"
	"errors"

	"go-concurso-backend/internal/domain"
	"go-concurso-backend/pkg/apperror"
	"go-concurso-backend/pkg/metrics"
	"go-concurso-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type candidateUsecase struct {
	repo     domain.CandidateRepository
	validate *validator.Validate
	metrics  *metrics.Metrics
}

func NewCandidateUsecase(repo domain.CandidateRepository, validate *validator.Validate, m *metrics.Metrics) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:     repo,
		validate: validate,
		metrics:  m,
	}
}

func (u *candidateUsecase) ListCandidates(ctx context.Context) ([]domain.Candidate, error) {
	candidates, err := u.repo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Infrastructure(err)
	}
	if candidates == nil {
		candidates = []domain.Candidate{}
	}
	return candidates, nil
}

func (u *candidateUsecase) AddCandidate(ctx context.Context, candidate *domain.Candidate) error {
	if err := u.validate.Struct(candidate); err != nil {
		u.metrics.ObserveDirectoryOp("candidate", "add", "invalid")
		return apperror.Validation("Invalid candidate", validation.FormatValidationErrors(err))
	}
	candidate.Professions = dedupe(candidate.Professions)

	if err := u.repo.Create(ctx, candidate); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			u.metrics.ObserveDirectoryOp("candidate", "add", "conflict")
			return apperror.Conflict("A candidate with this tax id already exists")
		}
		u.metrics.ObserveDirectoryOp("candidate", "add", "error")
		return apperror.Infrastructure(err)
	}
	u.metrics.ObserveDirectoryOp("candidate", "add", "ok")
	return nil
}

func (u *candidateUsecase) RemoveCandidate(ctx context.Context, id int64) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			u.metrics.ObserveDirectoryOp("candidate", "remove", "not_found")
			return apperror.NotFound("Candidate not found")
		}
		u.metrics.ObserveDirectoryOp("candidate", "remove", "error")
		return apperror.Infrastructure(err)
	}
	u.metrics.ObserveDirectoryOp("candidate", "remove", "ok")
	return nil
}

// dedupe drops repeated labels, keeping the first occurrence.
func dedupe(labels []string) []string {
	if len(labels) == 0 {
		return labels
	}
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}
