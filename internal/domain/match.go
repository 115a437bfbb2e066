package domain

import "context"

// MatchUsecase finds the counterpart records that share at least one profession
// with the record identified by an external key. Unknown or empty keys yield an
// empty result, never an error.
type MatchUsecase interface {
	FindContestsForCandidate(ctx context.Context, taxID string) ([]Contest, error)
	FindCandidatesForContest(ctx context.Context, code string) ([]Candidate, error)
}
