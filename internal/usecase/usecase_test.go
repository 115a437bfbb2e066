package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-concurso-backend/internal/domain"
	"go-concurso-backend/internal/matching"
	"go-concurso-backend/internal/usecase"
	"go-concurso-backend/pkg/apperror"
	"go-concurso-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repositories
type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) Fetch(ctx context.Context) ([]domain.Candidate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) GetByTaxID(ctx context.Context, taxID string) (*domain.Candidate, error) {
	args := m.Called(ctx, taxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) Create(ctx context.Context, candidate *domain.Candidate) error {
	return m.Called(ctx, candidate).Error(0)
}

func (m *MockCandidateRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockContestRepo struct {
	mock.Mock
}

func (m *MockContestRepo) Fetch(ctx context.Context) ([]domain.Contest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contest), args.Error(1)
}

func (m *MockContestRepo) GetByCode(ctx context.Context, code string) (*domain.Contest, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contest), args.Error(1)
}

func (m *MockContestRepo) Create(ctx context.Context, contest *domain.Contest) error {
	return m.Called(ctx, contest).Error(0)
}

func (m *MockContestRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var errDBDown = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

func requireAppError(t *testing.T, err error, code int) *apperror.AppError {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected *apperror.AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
	return appErr
}

func TestAddCandidate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should fail validation when tax id is empty", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(mockRepo, validation.New(), nil)

		err := uc.AddCandidate(ctx, &domain.Candidate{Name: "Sem CPF"})
		appErr := requireAppError(t, err, http.StatusBadRequest)
		assert.Equal(t, apperror.KindValidation, appErr.Kind)
		assert.Contains(t, appErr.Details, "CPF: Campo obrigatório")
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should fail validation on text the store cannot hold", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(mockRepo, validation.New(), nil)

		for _, c := range []*domain.Candidate{
			{TaxID: "123\x00"},
			{TaxID: "1", Name: "Ana\x00"},
			{TaxID: "1", Professions: []string{"Professor", "Enfer\x00meiro"}},
			{TaxID: "1\xff"},
		} {
			err := uc.AddCandidate(ctx, c)
			appErr := requireAppError(t, err, http.StatusBadRequest)
			assert.Equal(t, apperror.KindValidation, appErr.Kind)
		}
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should translate a store conflict", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(mockRepo, validation.New(), nil)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Candidate")).
			Return(fmt.Errorf("candidate tax id %q: %w", "1", domain.ErrConflict))

		err := uc.AddCandidate(ctx, &domain.Candidate{TaxID: "1"})
		appErr := requireAppError(t, err, http.StatusConflict)
		assert.Equal(t, apperror.KindConflict, appErr.Kind)
	})

	t.Run("Should report store failure as infrastructure error", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(mockRepo, validation.New(), nil)
		mockRepo.On("Create", ctx, mock.Anything).Return(errDBDown)

		err := uc.AddCandidate(ctx, &domain.Candidate{TaxID: "1"})
		appErr := requireAppError(t, err, http.StatusServiceUnavailable)
		assert.ErrorIs(t, appErr, errDBDown)
	})

	t.Run("Should drop repeated professions before storing", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(mockRepo, validation.New(), nil)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Candidate")).Return(nil).Run(func(args mock.Arguments) {
			c := args.Get(1).(*domain.Candidate)
			assert.Equal(t, []string{"Professor", "Engenheiro"}, c.Professions)
		})

		err := uc.AddCandidate(ctx, &domain.Candidate{TaxID: "1", Professions: []string{"Professor", "Engenheiro", "Professor"}})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestRemoveCandidate(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCandidateRepo)
	uc := usecase.NewCandidateUsecase(mockRepo, validation.New(), nil)

	mockRepo.On("Delete", ctx, int64(7)).Return(domain.ErrNotFound)
	mockRepo.On("Delete", ctx, int64(8)).Return(nil)

	requireAppError(t, uc.RemoveCandidate(ctx, 7), http.StatusNotFound)
	assert.NoError(t, uc.RemoveCandidate(ctx, 8))
}

func TestListCandidates(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return an empty slice when nothing is stored", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(mockRepo, validation.New(), nil)
		mockRepo.On("Fetch", ctx).Return(nil, nil)

		got, err := uc.ListCandidates(ctx)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Should report store failure as infrastructure error", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(mockRepo, validation.New(), nil)
		mockRepo.On("Fetch", ctx).Return(nil, errDBDown)

		_, err := uc.ListCandidates(ctx)
		requireAppError(t, err, http.StatusServiceUnavailable)
	})
}

func TestContestUsecase(t *testing.T) {
	ctx := context.Background()

	t.Run("Should fail validation when code is empty", func(t *testing.T) {
		mockRepo := new(MockContestRepo)
		uc := usecase.NewContestUsecase(mockRepo, validation.New(), nil)

		err := uc.AddContest(ctx, &domain.Contest{Agency: "SEDU"})
		appErr := requireAppError(t, err, http.StatusBadRequest)
		assert.Contains(t, appErr.Details, "Código do Concurso: Campo obrigatório")
	})

	t.Run("Should fail validation when a position has no profession", func(t *testing.T) {
		mockRepo := new(MockContestRepo)
		uc := usecase.NewContestUsecase(mockRepo, validation.New(), nil)

		err := uc.AddContest(ctx, &domain.Contest{Code: "1", Positions: []domain.Position{{Vacancies: 1}}})
		requireAppError(t, err, http.StatusBadRequest)
	})

	t.Run("Should fail validation on values the store cannot hold", func(t *testing.T) {
		mockRepo := new(MockContestRepo)
		uc := usecase.NewContestUsecase(mockRepo, validation.New(), nil)

		err := uc.AddContest(ctx, &domain.Contest{Code: "1", Positions: []domain.Position{{Profession: "Médico", Vacancies: 3000000000}}})
		appErr := requireAppError(t, err, http.StatusBadRequest)
		assert.Contains(t, appErr.Details, "Quantidade de Vagas: Máximo de 2147483647")

		err = uc.AddContest(ctx, &domain.Contest{Code: "A\x00"})
		appErr = requireAppError(t, err, http.StatusBadRequest)
		assert.Contains(t, appErr.Details, "Código do Concurso: Contém caracteres inválidos")

		err = uc.AddContest(ctx, &domain.Contest{Code: "A", Edital: "1\x00/2024", Positions: []domain.Position{{Profession: "P\x00"}}})
		requireAppError(t, err, http.StatusBadRequest)

		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should translate conflict and not found", func(t *testing.T) {
		mockRepo := new(MockContestRepo)
		uc := usecase.NewContestUsecase(mockRepo, validation.New(), nil)
		mockRepo.On("Create", ctx, mock.Anything).Return(domain.ErrConflict)
		mockRepo.On("Delete", ctx, int64(3)).Return(fmt.Errorf("wrapped: %w", domain.ErrNotFound))

		requireAppError(t, uc.AddContest(ctx, &domain.Contest{Code: "1"}), http.StatusConflict)
		requireAppError(t, uc.RemoveContest(ctx, 3), http.StatusNotFound)
	})
}

func TestMatchUsecase(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return empty without touching the store for empty keys", func(t *testing.T) {
		candidates := new(MockCandidateRepo)
		contests := new(MockContestRepo)
		uc := usecase.NewMatchUsecase(candidates, contests, nil, nil)

		gotContests, err := uc.FindContestsForCandidate(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, []domain.Contest{}, gotContests)

		gotCandidates, err := uc.FindCandidatesForContest(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, []domain.Candidate{}, gotCandidates)

		candidates.AssertExpectations(t)
		contests.AssertExpectations(t)
	})

	t.Run("Should treat an unknown tax id as no matches", func(t *testing.T) {
		candidates := new(MockCandidateRepo)
		contests := new(MockContestRepo)
		uc := usecase.NewMatchUsecase(candidates, contests, nil, nil)
		candidates.On("GetByTaxID", ctx, "999").Return(nil, nil)

		got, err := uc.FindContestsForCandidate(ctx, "999")
		require.NoError(t, err)
		assert.Empty(t, got)
		contests.AssertNotCalled(t, "Fetch", mock.Anything)
	})

	t.Run("Should report store failure as infrastructure error", func(t *testing.T) {
		candidates := new(MockCandidateRepo)
		contests := new(MockContestRepo)
		uc := usecase.NewMatchUsecase(candidates, contests, nil, nil)
		contests.On("GetByCode", ctx, "X").Return(&domain.Contest{Code: "X", Positions: []domain.Position{{Profession: "Médico"}}}, nil)
		candidates.On("Fetch", ctx).Return(nil, errDBDown)

		_, err := uc.FindCandidatesForContest(ctx, "X")
		appErr := requireAppError(t, err, http.StatusServiceUnavailable)
		assert.Equal(t, apperror.KindInfrastructure, appErr.Kind)
	})

	t.Run("Should use the configured normalizer", func(t *testing.T) {
		candidates := new(MockCandidateRepo)
		contests := new(MockContestRepo)
		uc := usecase.NewMatchUsecase(candidates, contests, matching.New(matching.Folded), nil)
		candidates.On("GetByTaxID", ctx, "1").Return(&domain.Candidate{TaxID: "1", Professions: []string{"medico"}}, nil)
		contests.On("Fetch", ctx).Return([]domain.Contest{
			{ID: 1, Code: "A", Positions: []domain.Position{{Profession: "Médico", Vacancies: 3}}},
		}, nil)

		got, err := uc.FindContestsForCandidate(ctx, "1")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "A", got[0].Code)
	})
}
