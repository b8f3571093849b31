package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/staffhive/erp-backend-go/internal/domain/client"
	"github.com/staffhive/erp-backend-go/internal/pkg/database"
)

type clientRepositoryImpl struct {
	db *database.DB
}

func NewClientRepository(db *database.DB) client.ClientRepository {
	return &clientRepositoryImpl{db: db}
}

const clientColumns = `
	id, name, contact_person, email, phone_number, address, city, country, tax_number,
	active, created_at, updated_at, deleted_at`

func scanClient(row pgx.Row) (client.Client, error) {
	var c client.Client
	err := row.Scan(&c.ID, &c.Name, &c.ContactPerson, &c.Email, &c.PhoneNumber, &c.Address,
		&c.City, &c.Country, &c.TaxNumber, &c.Active, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt)
	return c, err
}

func (r *clientRepositoryImpl) GetByID(ctx context.Context, id int64) (client.Client, error) {
	q := GetQuerier(ctx, r.db)
	row := q.QueryRow(ctx,
		"SELECT"+clientColumns+" FROM clients WHERE id = $1 AND deleted_at IS NULL", id)
	c, err := scanClient(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.Client{}, client.ErrClientNotFound
		}
		return client.Client{}, fmt.Errorf("failed to get client: %w", err)
	}
	return c, nil
}

func (r *clientRepositoryImpl) Create(ctx context.Context, c client.Client) (client.Client, error) {
	q := GetQuerier(ctx, r.db)
	err := q.QueryRow(ctx, `
		INSERT INTO clients (name, contact_person, email, phone_number, address, city, country, tax_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, active, created_at, updated_at
	`, c.Name, c.ContactPerson, c.Email, c.PhoneNumber, c.Address, c.City, c.Country, c.TaxNumber).
		Scan(&c.ID, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return client.Client{}, client.ErrNameExists
		}
		return client.Client{}, fmt.Errorf("failed to create client: %w", err)
	}
	return c, nil
}

func (r *clientRepositoryImpl) Update(ctx context.Context, req client.UpdateClientRequest) error {
	updates := map[string]interface{}{}
	if req.Name != nil && *req.Name != "" {
		updates["name"] = *req.Name
	}
	if req.ContactPerson != nil {
		updates["contact_person"] = strOrNil(req.ContactPerson)
	}
	if req.Email != nil {
		updates["email"] = strOrNil(req.Email)
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = strOrNil(req.PhoneNumber)
	}
	if req.Address != nil {
		updates["address"] = strOrNil(req.Address)
	}
	if req.City != nil {
		updates["city"] = strOrNil(req.City)
	}
	if req.Country != nil {
		updates["country"] = strOrNil(req.Country)
	}
	if req.TaxNumber != nil {
		updates["tax_number"] = strOrNil(req.TaxNumber)
	}
	if req.Active != nil {
		updates["active"] = *req.Active
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
		fmt.Sprintf("UPDATE clients SET %s WHERE id = $%d AND deleted_at IS NULL RETURNING id",
			strings.Join(setClauses, ", "), i),
		args...).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.ErrClientNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return client.ErrNameExists
		}
		return fmt.Errorf("failed to update client: %w", err)
	}
	return nil
}

func (r *clientRepositoryImpl) SoftDelete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)
	var deletedID int64
	err := q.QueryRow(ctx, `
		UPDATE clients
		SET deleted_at = NOW(), active = FALSE, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.ErrClientNotFound
		}
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}

func (r *clientRepositoryImpl) List(ctx context.Context, filter client.ClientFilter) ([]client.Client, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"deleted_at IS NULL"}
	args := []interface{}{}
	i := 1
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(name ILIKE $%d OR contact_person ILIKE $%d OR email ILIKE $%d)", i, i, i))
		args = append(args, "%"+filter.Search+"%")
		i++
	}
	if filter.City != nil {
		conditions = append(conditions, fmt.Sprintf("city = $%d", i))
		args = append(args, *filter.City)
		i++
	}
	if filter.Active != nil {
		conditions = append(conditions, fmt.Sprintf("active = $%d", i))
		args = append(args, *filter.Active)
		i++
	}
	where := " WHERE " + strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM clients"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	args = append(args, filter.Limit, offset)
	rows, err := q.Query(ctx,
		"SELECT"+clientColumns+" FROM clients"+where+
			fmt.Sprintf(" ORDER BY id DESC LIMIT $%d OFFSET $%d", i, i+1),
		args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var out []client.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}
