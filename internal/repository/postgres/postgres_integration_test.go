//go:build integration

package postgres_test

import (
	"context"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"go-concurso-backend/internal/domain"
	"go-concurso-backend/internal/repository/postgres"
	"go-concurso-backend/pkg/testutil/containers"
)

type PostgresRepositorySuite struct {
	suite.Suite
	postgres   *containers.PostgresContainer
	candidates domain.CandidateRepository
	contests   domain.ContestRepository
}

func TestPostgresRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresRepositorySuite))
}

func (s *PostgresRepositorySuite) SetupSuite() {
	s.postgres = containers.GetPostgres(s.T())
	s.candidates = postgres.NewCandidateRepository(s.postgres.Pool)
	s.contests = postgres.NewContestRepository(s.postgres.Pool)
}

func (s *PostgresRepositorySuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "contest_positions", "contests", "candidates"))
}

func (s *PostgresRepositorySuite) TestCandidateLifecycle() {
	ctx := context.Background()

	c := &domain.Candidate{Name: "Ana", TaxID: "111", Professions: []string{"Engenheiro", "Professor"}}
	s.Require().NoError(s.candidates.Create(ctx, c))
	s.NotZero(c.ID)
	s.False(c.CreatedAt.IsZero())

	got, err := s.candidates.GetByTaxID(ctx, "111")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(c.ID, got.ID)
	s.Equal([]string{"Engenheiro", "Professor"}, got.Professions)

	err = s.candidates.Create(ctx, &domain.Candidate{Name: "Outra", TaxID: "111"})
	s.ErrorIs(err, domain.ErrConflict)

	s.Require().NoError(s.candidates.Create(ctx, &domain.Candidate{Name: "Bruno", TaxID: "222"}))
	all, err := s.candidates.Fetch(ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal("111", all[0].TaxID)
	s.Equal([]string{}, all[1].Professions)

	s.Require().NoError(s.candidates.Delete(ctx, c.ID))
	s.ErrorIs(s.candidates.Delete(ctx, c.ID), domain.ErrNotFound)

	missing, err := s.candidates.GetByTaxID(ctx, "111")
	s.NoError(err)
	s.Nil(missing)
}

func (s *PostgresRepositorySuite) TestContestLifecycle() {
	ctx := context.Background()

	a := &domain.Contest{
		Agency: "SEDU", Edital: "1/2024", Code: "A",
		Positions: []domain.Position{{Profession: "Professor", Vacancies: 10}, {Profession: "Pedagogo", Vacancies: 2}},
	}
	b := &domain.Contest{Agency: "SESA", Edital: "2/2024", Code: "B"}
	s.Require().NoError(s.contests.Create(ctx, a))
	s.Require().NoError(s.contests.Create(ctx, b))

	s.ErrorIs(s.contests.Create(ctx, &domain.Contest{Code: "A"}), domain.ErrConflict)

	got, err := s.contests.GetByCode(ctx, "A")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(a.Positions, got.Positions)

	all, err := s.contests.Fetch(ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal(a.Positions, all[0].Positions)
	s.Empty(all[1].Positions)

	s.Require().NoError(s.contests.Delete(ctx, a.ID))
	s.ErrorIs(s.contests.Delete(ctx, a.ID), domain.ErrNotFound)

	var positions int
	s.Require().NoError(s.postgres.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM contest_positions`).Scan(&positions))
	s.Zero(positions)
}

func (s *PostgresRepositorySuite) TestContestReadsSeeWholeContests() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	positions := []domain.Position{{Profession: "Professor", Vacancies: 1}, {Profession: "Pedagogo", Vacancies: 1}}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ctx.Err() == nil; i++ {
			c := &domain.Contest{Code: "churn-" + strconv.Itoa(i), Positions: positions}
			if err := s.contests.Create(ctx, c); err != nil {
				return
			}
			_ = s.contests.Delete(ctx, c.ID)
		}
	}()

	for i := 0; i < 200; i++ {
		all, err := s.contests.Fetch(ctx)
		s.Require().NoError(err)
		for _, c := range all {
			s.Require().Len(c.Positions, 2, "contest %s listed with partial positions", c.Code)
		}
	}
	cancel()
	wg.Wait()
}
