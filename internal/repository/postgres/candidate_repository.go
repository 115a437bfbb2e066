package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-concurso-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) Fetch(ctx context.Context) ([]domain.Candidate, error) {
	query := `SELECT id, name, tax_id, professions, created_at FROM candidates ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidates: %w", err)
	}
	defer rows.Close()

	candidates := make([]domain.Candidate, 0)
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate candidates: %w", err)
	}
	return candidates, nil
}

func (r *candidateRepository) GetByTaxID(ctx context.Context, taxID string) (*domain.Candidate, error) {
	query := `SELECT id, name, tax_id, professions, created_at FROM candidates WHERE tax_id = $1`

	c, err := scanCandidate(r.db.QueryRow(ctx, query, taxID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate by tax id: %w", err)
	}
	return c, nil
}

func (r *candidateRepository) Create(ctx context.Context, candidate *domain.Candidate) error {
	query := `INSERT INTO candidates (name, tax_id, professions) VALUES ($1, $2, $3) RETURNING id, created_at`

	professions := candidate.Professions
	if professions == nil {
		professions = []string{}
	}
	err := r.db.QueryRow(ctx, query, candidate.Name, candidate.TaxID, pq.Array(professions)).
		Scan(&candidate.ID, &candidate.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("candidate tax id %q: %w", candidate.TaxID, domain.ErrConflict)
		}
		return fmt.Errorf("failed to create candidate: %w", err)
	}
	return nil
}

func (r *candidateRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanCandidate(row pgx.Row) (*domain.Candidate, error) {
	var c domain.Candidate
	var professions []string
	if err := row.Scan(&c.ID, &c.Name, &c.TaxID, pq.Array(&professions), &c.CreatedAt); err != nil {
		return nil, err
	}
	c.Professions = professions
	return &c, nil
}
