package domain

import (
	"context"
	"time"
)

// Position is an open position of a contest: a required profession and its vacancy count.
type Position struct {
	Profession string `json:"profession" validate:"required,notblank_trim,max=120,no_nul,valid_utf8"`
	Vacancies  int    `json:"vacancies" validate:"gte=0,max=2147483647"`
}

// Contest is a public-sector job contest (concurso).
type Contest struct {
	ID        int64      `json:"id"`
	Agency    string     `json:"agency" validate:"max=200,no_emoji,no_nul,valid_utf8"`
	Edital    string     `json:"edital" validate:"max=120,no_nul,valid_utf8"`
	Code      string     `json:"code" validate:"required,notblank_trim,max=64,no_nul,valid_utf8"`
	Positions []Position `json:"positions" validate:"dive"`
	CreatedAt time.Time  `json:"created_at"`
}

// RequiredProfessions returns the professions of the contest's positions in
// position order, without duplicates.
func (c Contest) RequiredProfessions() []string {
	seen := make(map[string]struct{}, len(c.Positions))
	out := make([]string, 0, len(c.Positions))
	for _, p := range c.Positions {
		if _, ok := seen[p.Profession]; ok {
			continue
		}
		seen[p.Profession] = struct{}{}
		out = append(out, p.Profession)
	}
	return out
}

// ContestRepository is the persistence contract for contests.
// GetByCode returns (nil, nil) when no contest has the given code.
type ContestRepository interface {
	Fetch(ctx context.Context) ([]Contest, error)
	GetByCode(ctx context.Context, code string) (*Contest, error)
	Create(ctx context.Context, contest *Contest) error
	Delete(ctx context.Context, id int64) error
}

type ContestUsecase interface {
	ListContests(ctx context.Context) ([]Contest, error)
	AddContest(ctx context.Context, contest *Contest) error
	RemoveContest(ctx context.Context, id int64) error
}
