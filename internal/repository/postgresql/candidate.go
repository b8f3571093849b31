package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/staffhive/erp-backend-go/internal/domain/candidate"
	"github.com/staffhive/erp-backend-go/internal/pkg/database"
)

type candidateRepositoryImpl struct {
	db *database.DB
}

func NewCandidateRepository(db *database.DB) candidate.CandidateRepository {
	return &candidateRepositoryImpl{db: db}
}

const candidateColumns = `
	id, first_name, last_name, email, phone_number, position_applied, source, stage,
	resume_path, notes, created_at, updated_at, deleted_at`

func scanCandidate(row pgx.Row) (candidate.Candidate, error) {
	var c candidate.Candidate
	var stage string
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.PhoneNumber, &c.PositionApplied,
		&c.Source, &stage, &c.ResumePath, &c.Notes, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt)
	c.Stage = candidate.Stage(stage)
	return c, err
}

func (r *candidateRepositoryImpl) GetByID(ctx context.Context, id int64) (candidate.Candidate, error) {
	q := GetQuerier(ctx, r.db)
	row := q.QueryRow(ctx,
		"SELECT"+candidateColumns+" FROM candidates WHERE id = $1 AND deleted_at IS NULL", id)
	c, err := scanCandidate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return candidate.Candidate{}, candidate.ErrCandidateNotFound
		}
		return candidate.Candidate{}, fmt.Errorf("failed to get candidate: %w", err)
	}
	return c, nil
}

func (r *candidateRepositoryImpl) Create(ctx context.Context, c candidate.Candidate) (candidate.Candidate, error) {
	q := GetQuerier(ctx, r.db)
	err := q.QueryRow(ctx, `
		INSERT INTO candidates (first_name, last_name, email, phone_number, position_applied, source, stage, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, c.FirstName, c.LastName, c.Email, c.PhoneNumber, c.PositionApplied, c.Source, string(c.Stage), c.Notes).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return candidate.Candidate{}, candidate.ErrEmailExists
		}
		return candidate.Candidate{}, fmt.Errorf("failed to create candidate: %w", err)
	}
	return c, nil
}

func (r *candidateRepositoryImpl) Update(ctx context.Context, req candidate.UpdateCandidateRequest) error {
	updates := map[string]interface{}{}
	if req.FirstName != nil && *req.FirstName != "" {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = strOrNil(req.LastName)
	}
	if req.Email != nil && *req.Email != "" {
		updates["email"] = *req.Email
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = strOrNil(req.PhoneNumber)
	}
	if req.PositionApplied != nil {
		updates["position_applied"] = strOrNil(req.PositionApplied)
	}
	if req.Source != nil {
		updates["source"] = strOrNil(req.Source)
	}
	if req.Stage != nil {
		updates["stage"] = *req.Stage
	}
	if req.Notes != nil {
		updates["notes"] = strOrNil(req.Notes)
	}
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}
	args = append(args, req.ID)

	q := GetQuerier(ctx, r.db)
	var updatedID int64
	err := q.QueryRow(ctx,
		fmt.Sprintf("UPDATE candidates SET %s WHERE id = $%d AND deleted_at IS NULL RETURNING id",
			strings.Join(setClauses, ", "), i),
		args...).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return candidate.ErrCandidateNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return candidate.ErrEmailExists
		}
		return fmt.Errorf("failed to update candidate: %w", err)
	}
	return nil
}

func (r *candidateRepositoryImpl) SetResumePath(ctx context.Context, id int64, path string) error {
	q := GetQuerier(ctx, r.db)
	var updatedID int64
	err := q.QueryRow(ctx, `
		UPDATE candidates
		SET resume_path = $1, updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL
		RETURNING id
	`, path, id).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return candidate.ErrCandidateNotFound
		}
		return fmt.Errorf("failed to set resume path: %w", err)
	}
	return nil
}

func (r *candidateRepositoryImpl) SoftDelete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)
	var deletedID int64
	err := q.QueryRow(ctx, `
		UPDATE candidates
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return candidate.ErrCandidateNotFound
		}
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	return nil
}

func (r *candidateRepositoryImpl) List(ctx context.Context, filter candidate.CandidateFilter) ([]candidate.Candidate, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"deleted_at IS NULL"}
	args := []interface{}{}
	i := 1
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(first_name ILIKE $%d OR last_name ILIKE $%d OR email ILIKE $%d OR position_applied ILIKE $%d)", i, i, i, i))
		args = append(args, "%"+filter.Search+"%")
		i++
	}
	if filter.Stage != nil {
		conditions = append(conditions, fmt.Sprintf("stage = $%d", i))
		args = append(args, string(*filter.Stage))
		i++
	}
	where := " WHERE " + strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM candidates"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count candidates: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	args = append(args, filter.Limit, offset)
	rows, err := q.Query(ctx,
		"SELECT"+candidateColumns+" FROM candidates"+where+
			fmt.Sprintf(" ORDER BY id DESC LIMIT $%d OFFSET $%d", i, i+1),
		args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var out []candidate.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}
