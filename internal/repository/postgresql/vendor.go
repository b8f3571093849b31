package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/staffhive/erp-backend-go/internal/domain/vendor"
	"github.com/staffhive/erp-backend-go/internal/pkg/database"
)

type vendorRepositoryImpl struct {
	db *database.DB
}

func NewVendorRepository(db *database.DB) vendor.VendorRepository {
	return &vendorRepositoryImpl{db: db}
}

const vendorColumns = `
	id, name, contact_person, email, phone_number, address, service_type, payment_terms,
	tax_number, active, created_at, updated_at, deleted_at`

func scanVendor(row pgx.Row) (vendor.Vendor, error) {
	var v vendor.Vendor
	err := row.Scan(&v.ID, &v.Name, &v.ContactPerson, &v.Email, &v.PhoneNumber, &v.Address,
		&v.ServiceType, &v.PaymentTerms, &v.TaxNumber, &v.Active, &v.CreatedAt, &v.UpdatedAt, &v.DeletedAt)
	return v, err
}

func (r *vendorRepositoryImpl) GetByID(ctx context.Context, id int64) (vendor.Vendor, error) {
	q := GetQuerier(ctx, r.db)
	row := q.QueryRow(ctx,
		"SELECT"+vendorColumns+" FROM vendors WHERE id = $1 AND deleted_at IS NULL", id)
	v, err := scanVendor(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vendor.Vendor{}, vendor.ErrVendorNotFound
		}
		return vendor.Vendor{}, fmt.Errorf("failed to get vendor: %w", err)
	}
	return v, nil
}

func (r *vendorRepositoryImpl) Create(ctx context.Context, v vendor.Vendor) (vendor.Vendor, error) {
	q := GetQuerier(ctx, r.db)
	err := q.QueryRow(ctx, `
		INSERT INTO vendors (name, contact_person, email, phone_number, address, service_type, payment_terms, tax_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, active, created_at, updated_at
	`, v.Name, v.ContactPerson, v.Email, v.PhoneNumber, v.Address, v.ServiceType, v.PaymentTerms, v.TaxNumber).
		Scan(&v.ID, &v.Active, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return vendor.Vendor{}, vendor.ErrNameExists
		}
		return vendor.Vendor{}, fmt.Errorf("failed to create vendor: %w", err)
	}
	return v, nil
}

func (r *vendorRepositoryImpl) Update(ctx context.Context, req vendor.UpdateVendorRequest) error {
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
	if req.ServiceType != nil {
		updates["service_type"] = strOrNil(req.ServiceType)
	}
	if req.PaymentTerms != nil {
		updates["payment_terms"] = strOrNil(req.PaymentTerms)
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
		fmt.Sprintf("UPDATE vendors SET %s WHERE id = $%d AND deleted_at IS NULL RETURNING id",
			strings.Join(setClauses, ", "), i),
		args...).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vendor.ErrVendorNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return vendor.ErrNameExists
		}
		return fmt.Errorf("failed to update vendor: %w", err)
	}
	return nil
}

func (r *vendorRepositoryImpl) SoftDelete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)
	var deletedID int64
	err := q.QueryRow(ctx, `
		UPDATE vendors
		SET deleted_at = NOW(), active = FALSE, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vendor.ErrVendorNotFound
		}
		return fmt.Errorf("failed to delete vendor: %w", err)
	}
	return nil
}

func (r *vendorRepositoryImpl) List(ctx context.Context, filter vendor.VendorFilter) ([]vendor.Vendor, int64, error) {
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
	if filter.ServiceType != nil {
		conditions = append(conditions, fmt.Sprintf("service_type = $%d", i))
		args = append(args, *filter.ServiceType)
		i++
	}
	if filter.Active != nil {
		conditions = append(conditions, fmt.Sprintf("active = $%d", i))
		args = append(args, *filter.Active)
		i++
	}
	where := " WHERE " + strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM vendors"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count vendors: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	args = append(args, filter.Limit, offset)
	rows, err := q.Query(ctx,
		"SELECT"+vendorColumns+" FROM vendors"+where+
			fmt.Sprintf(" ORDER BY id DESC LIMIT $%d OFFSET $%d", i, i+1),
		args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list vendors: %w", err)
	}
	defer rows.Close()

	var out []vendor.Vendor
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, v)
	}
	return out, total, rows.Err()
}
