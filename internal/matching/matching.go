// Package matching decides which candidates qualify for which contests.
//
// A candidate matches a contest when the candidate's professions and the
// contest's required professions share at least one label. There is no
// scoring: the relation is plain set intersection, so an empty side never
// matches anything.
package matching

import "go-concurso-backend/internal/domain"

// Matcher evaluates the compatibility relation between candidates and
// contests, comparing profession labels by their normalized key.
type Matcher struct {
	normalize Normalizer
}

// New returns a Matcher comparing labels through normalize. A nil normalize means Exact.
func New(normalize Normalizer) *Matcher {
	if normalize == nil {
		normalize = Exact
	}
	return &Matcher{normalize: normalize}
}

// ContestsFor returns the contests compatible with candidate, in input order.
func (m *Matcher) ContestsFor(candidate domain.Candidate, contests []domain.Contest) []domain.Contest {
	out := make([]domain.Contest, 0)
	if len(candidate.Professions) == 0 {
		return out
	}
	set := m.keySet(candidate.Professions)
	for _, contest := range contests {
		if m.hitsAny(set, contest.RequiredProfessions()) {
			out = append(out, contest)
		}
	}
	return out
}

// CandidatesFor returns the candidates compatible with contest, in input order.
func (m *Matcher) CandidatesFor(contest domain.Contest, candidates []domain.Candidate) []domain.Candidate {
	out := make([]domain.Candidate, 0)
	required := contest.RequiredProfessions()
	if len(required) == 0 {
		return out
	}
	set := m.keySet(required)
	for _, candidate := range candidates {
		if m.hitsAny(set, candidate.Professions) {
			out = append(out, candidate)
		}
	}
	return out
}

func (m *Matcher) keySet(labels []string) map[string]struct{} {
	set := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		set[m.normalize(label)] = struct{}{}
	}
	return set
}

func (m *Matcher) hitsAny(set map[string]struct{}, labels []string) bool {
	for _, label := range labels {
		if _, ok := set[m.normalize(label)]; ok {
			return true
		}
	}
	return false
}
