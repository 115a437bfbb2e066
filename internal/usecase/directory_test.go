package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"go-concurso-backend/internal/domain"
	"go-concurso-backend/internal/repository/memory"
	"go-concurso-backend/internal/usecase"
	"go-concurso-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	candidates domain.CandidateUsecase
	contests   domain.ContestUsecase
	matches    domain.MatchUsecase
}

func newFixture() fixture {
	candidateRepo := memory.NewCandidateRepository()
	contestRepo := memory.NewContestRepository()
	v := validation.New()
	return fixture{
		candidates: usecase.NewCandidateUsecase(candidateRepo, v, nil),
		contests:   usecase.NewContestUsecase(contestRepo, v, nil),
		matches:    usecase.NewMatchUsecase(candidateRepo, contestRepo, nil, nil),
	}
}

func TestCandidateDirectory(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	t.Run("Should list the added candidate unchanged except for store fields", func(t *testing.T) {
		input := domain.Candidate{Name: "Lindsey Craft", TaxID: "182.845.084-34", Professions: []string{"carpinteiro"}}
		added := input
		require.NoError(t, f.candidates.AddCandidate(ctx, &added))
		assert.NotZero(t, added.ID)

		all, err := f.candidates.ListCandidates(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)

		got := all[0]
		assert.Equal(t, added.ID, got.ID)
		got.ID, got.CreatedAt = 0, input.CreatedAt
		assert.Equal(t, input, got)
	})

	t.Run("Should keep the count after a duplicate tax id", func(t *testing.T) {
		err := f.candidates.AddCandidate(ctx, &domain.Candidate{Name: "Outra", TaxID: "182.845.084-34"})
		requireAppError(t, err, http.StatusConflict)

		all, _ := f.candidates.ListCandidates(ctx)
		assert.Len(t, all, 1)
	})

	t.Run("Should keep contents after removing an unknown id", func(t *testing.T) {
		before, _ := f.candidates.ListCandidates(ctx)
		requireAppError(t, f.candidates.RemoveCandidate(ctx, 4242), http.StatusNotFound)
		after, _ := f.candidates.ListCandidates(ctx)
		assert.Equal(t, before, after)
	})
}

func TestMatchingScenarios(t *testing.T) {
	ctx := context.Background()

	t.Run("Candidate matches only the contest sharing a profession", func(t *testing.T) {
		f := newFixture()
		require.NoError(t, f.candidates.AddCandidate(ctx, &domain.Candidate{
			Name: "Ana", TaxID: "111", Professions: []string{"Engenheiro", "Professor"},
		}))
		a := &domain.Contest{Agency: "SEDU", Edital: "1/2024", Code: "A", Positions: []domain.Position{{Profession: "Professor", Vacancies: 10}}}
		b := &domain.Contest{Agency: "SESA", Edital: "2/2024", Code: "B", Positions: []domain.Position{{Profession: "Médico", Vacancies: 4}}}
		require.NoError(t, f.contests.AddContest(ctx, a))
		require.NoError(t, f.contests.AddContest(ctx, b))

		got, err := f.matches.FindContestsForCandidate(ctx, "111")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, a.ID, got[0].ID)
		assert.Equal(t, "A", got[0].Code)
	})

	t.Run("Contest matches only the candidate sharing a profession", func(t *testing.T) {
		f := newFixture()
		require.NoError(t, f.contests.AddContest(ctx, &domain.Contest{
			Code: "HOSP-1",
			Positions: []domain.Position{
				{Profession: "Enfermeiro", Vacancies: 5},
				{Profession: "Técnico", Vacancies: 2},
			},
		}))
		x := &domain.Candidate{Name: "X", TaxID: "x", Professions: []string{"Enfermeiro"}}
		y := &domain.Candidate{Name: "Y", TaxID: "y", Professions: []string{"Advogado"}}
		require.NoError(t, f.candidates.AddCandidate(ctx, x))
		require.NoError(t, f.candidates.AddCandidate(ctx, y))

		got, err := f.matches.FindCandidatesForContest(ctx, "HOSP-1")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, x.ID, got[0].ID)
	})

	t.Run("Empty and unknown keys return empty results", func(t *testing.T) {
		f := newFixture()
		for _, key := range []string{"", "unknown"} {
			contests, err := f.matches.FindContestsForCandidate(ctx, key)
			assert.NoError(t, err)
			assert.NotNil(t, contests)
			assert.Empty(t, contests)

			candidates, err := f.matches.FindCandidatesForContest(ctx, key)
			assert.NoError(t, err)
			assert.NotNil(t, candidates)
			assert.Empty(t, candidates)
		}
	})

	t.Run("Removed contests no longer match", func(t *testing.T) {
		f := newFixture()
		require.NoError(t, f.candidates.AddCandidate(ctx, &domain.Candidate{TaxID: "1", Professions: []string{"Professor"}}))
		c := &domain.Contest{Code: "A", Positions: []domain.Position{{Profession: "Professor", Vacancies: 1}}}
		require.NoError(t, f.contests.AddContest(ctx, c))
		require.NoError(t, f.contests.RemoveContest(ctx, c.ID))

		got, err := f.matches.FindContestsForCandidate(ctx, "1")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
