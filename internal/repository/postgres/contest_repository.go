package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-concurso-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type contestRepository struct {
	db *pgxpool.Pool
}

func NewContestRepository(db *pgxpool.Pool) domain.ContestRepository {
	return &contestRepository{db: db}
}

// readOnlySnapshot makes every query of a read see the same snapshot, so a
// contest is never listed without its positions.
var readOnlySnapshot = pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}

func (r *contestRepository) Fetch(ctx context.Context) ([]domain.Contest, error) {
	var contests []domain.Contest
	err := pgx.BeginTxFunc(ctx, r.db, readOnlySnapshot, func(tx pgx.Tx) error {
		var err error
		contests, err = fetchContests(ctx, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return contests, nil
}

func fetchContests(ctx context.Context, tx pgx.Tx) ([]domain.Contest, error) {
	rows, err := tx.Query(ctx, `SELECT id, agency, edital, code, created_at FROM contests ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contests: %w", err)
	}
	contests := make([]domain.Contest, 0)
	index := make(map[int64]int)
	for rows.Next() {
		var c domain.Contest
		if err := rows.Scan(&c.ID, &c.Agency, &c.Edital, &c.Code, &c.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan contest: %w", err)
		}
		c.Positions = []domain.Position{}
		index[c.ID] = len(contests)
		contests = append(contests, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contests: %w", err)
	}
	if len(contests) == 0 {
		return contests, nil
	}

	pRows, err := tx.Query(ctx, `SELECT contest_id, profession, vacancies FROM contest_positions ORDER BY contest_id, ordinal`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contest positions: %w", err)
	}
	defer pRows.Close()

	for pRows.Next() {
		var contestID int64
		var p domain.Position
		if err := pRows.Scan(&contestID, &p.Profession, &p.Vacancies); err != nil {
			return nil, fmt.Errorf("failed to scan contest position: %w", err)
		}
		if i, ok := index[contestID]; ok {
			contests[i].Positions = append(contests[i].Positions, p)
		}
	}
	if err := pRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contest positions: %w", err)
	}
	return contests, nil
}

func (r *contestRepository) GetByCode(ctx context.Context, code string) (*domain.Contest, error) {
	var found *domain.Contest
	err := pgx.BeginTxFunc(ctx, r.db, readOnlySnapshot, func(tx pgx.Tx) error {
		var c domain.Contest
		err := tx.QueryRow(ctx, `SELECT id, agency, edital, code, created_at FROM contests WHERE code = $1`, code).
			Scan(&c.ID, &c.Agency, &c.Edital, &c.Code, &c.CreatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("failed to get contest by code: %w", err)
		}

		positions, err := contestPositions(ctx, tx, c.ID)
		if err != nil {
			return err
		}
		c.Positions = positions
		found = &c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// Create inserts the contest and its positions in one transaction.
func (r *contestRepository) Create(ctx context.Context, contest *domain.Contest) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO contests (agency, edital, code) VALUES ($1, $2, $3) RETURNING id, created_at`,
			contest.Agency, contest.Edital, contest.Code,
		).Scan(&contest.ID, &contest.CreatedAt)
		if err != nil {
			return err
		}
		if len(contest.Positions) == 0 {
			return nil
		}

		batch := &pgx.Batch{}
		for i, p := range contest.Positions {
			batch.Queue(
				`INSERT INTO contest_positions (contest_id, ordinal, profession, vacancies) VALUES ($1, $2, $3, $4)`,
				contest.ID, i, p.Profession, p.Vacancies,
			)
		}
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		contest.ID = 0
		if isUniqueViolation(err) {
			return fmt.Errorf("contest code %q: %w", contest.Code, domain.ErrConflict)
		}
		return fmt.Errorf("failed to create contest: %w", err)
	}
	return nil
}

func (r *contestRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM contests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contest: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func contestPositions(ctx context.Context, tx pgx.Tx, contestID int64) ([]domain.Position, error) {
	rows, err := tx.Query(ctx,
		`SELECT profession, vacancies FROM contest_positions WHERE contest_id = $1 ORDER BY ordinal`, contestID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contest positions: %w", err)
	}
	defer rows.Close()

	positions := make([]domain.Position, 0)
	for rows.Next() {
		var p domain.Position
		if err := rows.Scan(&p.Profession, &p.Vacancies); err != nil {
			return nil, fmt.Errorf("failed to scan contest position: %w", err)
		}
		positions = append(positions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contest positions: %w", err)
	}
	return positions, nil
}
