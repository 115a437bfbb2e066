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

type contestUsecase struct {
	repo     domain.ContestRepository
	validate *validator.Validate
	metrics  *metrics.Metrics
}

func NewContestUsecase(repo domain.ContestRepository, validate *validator.Validate, m *metrics.Metrics) domain.ContestUsecase {
	return &contestUsecase{
		repo:     repo,
		validate: validate,
		metrics:  m,
	}
}

func (u *contestUsecase) ListContests(ctx context.Context) ([]domain.Contest, error) {
	contests, err := u.repo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Infrastructure(err)
	}
	if contests == nil {
		contests = []domain.Contest{}
	}
	return contests, nil
}

func (u *contestUsecase) AddContest(ctx context.Context, contest *domain.Contest) error {
	if err := u.validate.Struct(contest); err != nil {
		u.metrics.ObserveDirectoryOp("contest", "add", "invalid")
		return apperror.Validation("Invalid contest", validation.FormatValidationErrors(err))
	}

	if err := u.repo.Create(ctx, contest); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			u.metrics.ObserveDirectoryOp("contest", "add", "conflict")
			return apperror.Conflict("A contest with this code already exists")
		}
		u.metrics.ObserveDirectoryOp("contest", "add", "error")
		return apperror.Infrastructure(err)
	}
	u.metrics.ObserveDirectoryOp("contest", "add", "ok")
	return nil
}

func (u *contestUsecase) RemoveContest(ctx context.Context, id int64) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			u.metrics.ObserveDirectoryOp("contest", "remove", "not_found")
			return apperror.NotFound("Contest not found")
		}
		u.metrics.ObserveDirectoryOp("contest", "remove", "error")
		return apperror.Infrastructure(err)
	}
	u.metrics.ObserveDirectoryOp("contest", "remove", "ok")
	return nil
}
