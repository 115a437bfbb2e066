package usecase

import (
	"context"

	"go-concurso-backend/internal/domain"
	"go-concurso-backend/internal/matching"
	"go-concurso-backend/pkg/apperror"
	"go-concurso-backend/pkg/metrics"
)

const (
	directionContests   = "contests_for_candidate"
	directionCandidates = "candidates_for_contest"
)

type matchUsecase struct {
	candidateRepo domain.CandidateRepository
	contestRepo   domain.ContestRepository
	matcher       *matching.Matcher
	metrics       *metrics.Metrics
}

func NewMatchUsecase(candidateRepo domain.CandidateRepository, contestRepo domain.ContestRepository, matcher *matching.Matcher, m *metrics.Metrics) domain.MatchUsecase {
	if matcher == nil {
		matcher = matching.New(matching.Exact)
	}
	return &matchUsecase{
		candidateRepo: candidateRepo,
		contestRepo:   contestRepo,
		matcher:       matcher,
		metrics:       m,
	}
}

func (u *matchUsecase) FindContestsForCandidate(ctx context.Context, taxID string) ([]domain.Contest, error) {
	if taxID == "" {
		u.metrics.ObserveMatch(directionContests, "ok", 0)
		return []domain.Contest{}, nil
	}

	candidate, err := u.candidateRepo.GetByTaxID(ctx, taxID)
	if err != nil {
		u.metrics.ObserveMatch(directionContests, "error", 0)
		return nil, apperror.Infrastructure(err)
	}
	if candidate == nil {
		u.metrics.ObserveMatch(directionContests, "ok", 0)
		return []domain.Contest{}, nil
	}

	contests, err := u.contestRepo.Fetch(ctx)
	if err != nil {
		u.metrics.ObserveMatch(directionContests, "error", 0)
		return nil, apperror.Infrastructure(err)
	}

	matches := u.matcher.ContestsFor(*candidate, contests)
	u.metrics.ObserveMatch(directionContests, "ok", len(matches))
	return matches, nil
}

func (u *matchUsecase) FindCandidatesForContest(ctx context.Context, code string) ([]domain.Candidate, error) {
	if code == "" {
		u.metrics.ObserveMatch(directionCandidates, "ok", 0)
		return []domain.Candidate{}, nil
	}

	contest, err := u.contestRepo.GetByCode(ctx, code)
	if err != nil {
		u.metrics.ObserveMatch(directionCandidates, "error", 0)
		return nil, apperror.Infrastructure(err)
	}
	if contest == nil {
		u.metrics.ObserveMatch(directionCandidates, "ok", 0)
		return []domain.Candidate{}, nil
	}

	candidates, err := u.candidateRepo.Fetch(ctx)
	if err != nil {
		u.metrics.ObserveMatch(directionCandidates, "error", 0)
		return nil, apperror.Infrastructure(err)
	}

	matches := u.matcher.CandidatesFor(*contest, candidates)
	u.metrics.ObserveMatch(directionCandidates, "ok", len(matches))
	return matches, nil
}
