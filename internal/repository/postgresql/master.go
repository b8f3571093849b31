package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/staffhive/erp-backend-go/internal/domain/master"
	"github.com/staffhive/erp-backend-go/internal/pkg/database"
)

// lookupRepositoryImpl serves all four lookup tables. Table names come from
// Kind.Table(), never from request input, so the fmt.Sprintf below is safe.
type lookupRepositoryImpl struct {
	db *database.DB
}

func NewLookupRepository(db *database.DB) master.LookupRepository {
	return &lookupRepositoryImpl{db: db}
}

func (r *lookupRepositoryImpl) table(kind master.Kind) (string, error) {
	t := kind.Table()
	if t == "" {
		return "", master.ErrUnknownKind
	}
	return t, nil
}

func (r *lookupRepositoryImpl) Create(ctx context.Context, kind master.Kind, name string) (master.Lookup, error) {
	table, err := r.table(kind)
	if err != nil {
		return master.Lookup{}, err
	}
	q := GetQuerier(ctx, r.db)

	var l master.Lookup
	l.Name = name
	err = q.QueryRow(ctx,
		fmt.Sprintf("INSERT INTO %s (name) VALUES ($1) RETURNING id, created_at, updated_at", table),
		name).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return master.Lookup{}, master.ErrNameExists
		}
		return master.Lookup{}, fmt.Errorf("failed to create %s: %w", kind, err)
	}
	return l, nil
}

func (r *lookupRepositoryImpl) GetByID(ctx context.Context, kind master.Kind, id int64) (master.Lookup, error) {
	table, err := r.table(kind)
	if err != nil {
		return master.Lookup{}, err
	}
	q := GetQuerier(ctx, r.db)

	var l master.Lookup
	err = q.QueryRow(ctx,
		fmt.Sprintf("SELECT id, name, created_at, updated_at, deleted_at FROM %s WHERE id = $1 AND deleted_at IS NULL", table),
		id).Scan(&l.ID, &l.Name, &l.CreatedAt, &l.UpdatedAt, &l.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return master.Lookup{}, master.ErrLookupNotFound
		}
		return master.Lookup{}, fmt.Errorf("failed to get %s: %w", kind, err)
	}
	return l, nil
}

func (r *lookupRepositoryImpl) List(ctx context.Context, kind master.Kind) ([]master.Lookup, error) {
	table, err := r.table(kind)
	if err != nil {
		return nil, err
	}
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		fmt.Sprintf("SELECT id, name, created_at, updated_at, deleted_at FROM %s WHERE deleted_at IS NULL ORDER BY name", table))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}
	defer rows.Close()

	var out []master.Lookup
	for rows.Next() {
		var l master.Lookup
		if err := rows.Scan(&l.ID, &l.Name, &l.CreatedAt, &l.UpdatedAt, &l.DeletedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *lookupRepositoryImpl) Update(ctx context.Context, kind master.Kind, id int64, name string) error {
	table, err := r.table(kind)
	if err != nil {
		return err
	}
	q := GetQuerier(ctx, r.db)

	var updatedID int64
	err = q.QueryRow(ctx,
		fmt.Sprintf("UPDATE %s SET name = $1, updated_at = NOW() WHERE id = $2 AND deleted_at IS NULL RETURNING id", table),
		name, id).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return master.ErrLookupNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return master.ErrNameExists
		}
		return fmt.Errorf("failed to update %s: %w", kind, err)
	}
	return nil
}

func (r *lookupRepositoryImpl) SoftDelete(ctx context.Context, kind master.Kind, id int64) error {
	table, err := r.table(kind)
	if err != nil {
		return err
	}
	q := GetQuerier(ctx, r.db)

	var deletedID int64
	err = q.QueryRow(ctx,
		fmt.Sprintf("UPDATE %s SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL RETURNING id", table),
		id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return master.ErrLookupNotFound
		}
		return fmt.Errorf("failed to delete %s: %w", kind, err)
	}
	return nil
}

func (r *lookupRepositoryImpl) NameMap(ctx context.Context, kind master.Kind) (map[int64]string, error) {
	table, err := r.table(kind)
	if err != nil {
		return nil, err
	}
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		fmt.Sprintf("SELECT id, name FROM %s WHERE deleted_at IS NULL", table))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s names: %w", kind, err)
	}
	defer rows.Close()

	names := make(map[int64]string)
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		names[id] = name
	}
	return names, rows.Err()
}
