package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/staffhive/erp-backend-go/internal/domain/sales"
	"github.com/staffhive/erp-backend-go/internal/pkg/database"
)

type invoiceRepositoryImpl struct {
	db *database.DB
}

func NewInvoiceRepository(db *database.DB) sales.InvoiceRepository {
	return &invoiceRepositoryImpl{db: db}
}

const invoiceColumns = `
	si.id, si.client_id, si.invoice_number, si.invoice_date, si.due_date, si.status, si.notes,
	si.subtotal, si.tax_rate, si.tax_amount, si.total,
	si.created_at, si.updated_at, si.deleted_at, c.name AS client_name`

const invoiceJoins = `
	FROM sales_invoices si
	JOIN clients c ON c.id = si.client_id`

func scanInvoice(row pgx.Row) (sales.Invoice, error) {
	var inv sales.Invoice
	var status string
	err := row.Scan(
		&inv.ID, &inv.ClientID, &inv.InvoiceNumber, &inv.InvoiceDate, &inv.DueDate, &status, &inv.Notes,
		&inv.Subtotal, &inv.TaxRate, &inv.TaxAmount, &inv.Total,
		&inv.CreatedAt, &inv.UpdatedAt, &inv.DeletedAt, &inv.ClientName,
	)
	inv.Status = sales.InvoiceStatus(status)
	return inv, err
}

func (r *invoiceRepositoryImpl) loadItems(ctx context.Context, invoiceID int64) ([]sales.InvoiceItem, error) {
	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, `
		SELECT id, invoice_id, description, quantity, unit_price, amount
		FROM sales_invoice_items
		WHERE invoice_id = $1
		ORDER BY id
	`, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []sales.InvoiceItem
	for rows.Next() {
		var it sales.InvoiceItem
		if err := rows.Scan(&it.ID, &it.InvoiceID, &it.Description, &it.Quantity, &it.UnitPrice, &it.Amount); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *invoiceRepositoryImpl) GetByID(ctx context.Context, id int64) (sales.Invoice, error) {
	q := GetQuerier(ctx, r.db)
	row := q.QueryRow(ctx,
		"SELECT"+invoiceColumns+invoiceJoins+" WHERE si.id = $1 AND si.deleted_at IS NULL", id)
	inv, err := scanInvoice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return sales.Invoice{}, sales.ErrInvoiceNotFound
		}
		return sales.Invoice{}, fmt.Errorf("failed to get invoice: %w", err)
	}
	items, err := r.loadItems(ctx, inv.ID)
	if err != nil {
		return sales.Invoice{}, fmt.Errorf("failed to load invoice items: %w", err)
	}
	inv.Items = items
	return inv, nil
}

func (r *invoiceRepositoryImpl) Create(ctx context.Context, inv sales.Invoice) (sales.Invoice, error) {
	q := GetQuerier(ctx, r.db)
	err := q.QueryRow(ctx, `
		INSERT INTO sales_invoices
			(client_id, invoice_number, invoice_date, due_date, status, notes, subtotal, tax_rate, tax_amount, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`, inv.ClientID, inv.InvoiceNumber, inv.InvoiceDate, inv.DueDate, string(inv.Status), inv.Notes,
		inv.Subtotal, inv.TaxRate, inv.TaxAmount, inv.Total).
		Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return sales.Invoice{}, sales.ErrInvoiceNumberExists
			}
			if pgErr.Code == "23503" {
				return sales.Invoice{}, sales.ErrClientNotFound
			}
		}
		return sales.Invoice{}, fmt.Errorf("failed to create invoice: %w", err)
	}

	if err := r.ReplaceItems(ctx, inv.ID, inv.Items); err != nil {
		return sales.Invoice{}, err
	}
	return inv, nil
}

// UpdateHeader writes the mutable header columns plus the totals that the
// service recomputed. Item rows are written separately via ReplaceItems.
func (r *invoiceRepositoryImpl) UpdateHeader(ctx context.Context, req sales.UpdateInvoiceRequest, recalculated *sales.Invoice) error {
	updates := map[string]interface{}{}
	if req.ClientID != nil {
		updates["client_id"] = *req.ClientID
	}
	if req.InvoiceDate != nil {
		updates["invoice_date"] = dateOrNil(req.InvoiceDate)
	}
	if req.DueDate != nil {
		updates["due_date"] = dateOrNil(req.DueDate)
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Notes != nil {
		updates["notes"] = strOrNil(req.Notes)
	}
	if recalculated != nil {
		updates["subtotal"] = recalculated.Subtotal
		updates["tax_rate"] = recalculated.TaxRate
		updates["tax_amount"] = recalculated.TaxAmount
		updates["total"] = recalculated.Total
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
		fmt.Sprintf("UPDATE sales_invoices SET %s WHERE id = $%d AND deleted_at IS NULL RETURNING id",
			strings.Join(setClauses, ", "), i),
		args...).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return sales.ErrInvoiceNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return sales.ErrClientNotFound
		}
		return fmt.Errorf("failed to update invoice: %w", err)
	}
	return nil
}

// ReplaceItems swaps the item set wholesale. Invoice items carry no state of
// their own, so delete-and-insert keeps the write simple.
func (r *invoiceRepositoryImpl) ReplaceItems(ctx context.Context, invoiceID int64, items []sales.InvoiceItem) error {
	q := GetQuerier(ctx, r.db)
	if _, err := q.Exec(ctx, "DELETE FROM sales_invoice_items WHERE invoice_id = $1", invoiceID); err != nil {
		return fmt.Errorf("failed to clear invoice items: %w", err)
	}
	for _, it := range items {
		_, err := q.Exec(ctx, `
			INSERT INTO sales_invoice_items (invoice_id, description, quantity, unit_price, amount)
			VALUES ($1, $2, $3, $4, $5)
		`, invoiceID, it.Description, it.Quantity, it.UnitPrice, it.Amount)
		if err != nil {
			return fmt.Errorf("failed to insert invoice item: %w", err)
		}
	}
	return nil
}

func (r *invoiceRepositoryImpl) SoftDelete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)
	var deletedID int64
	err := q.QueryRow(ctx, `
		UPDATE sales_invoices
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return sales.ErrInvoiceNotFound
		}
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	return nil
}

func (r *invoiceRepositoryImpl) List(ctx context.Context, filter sales.InvoiceFilter) ([]sales.Invoice, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"si.deleted_at IS NULL"}
	args := []interface{}{}
	i := 1
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(si.invoice_number ILIKE $%d OR c.name ILIKE $%d)", i, i))
		args = append(args, "%"+filter.Search+"%")
		i++
	}
	if filter.ClientID != nil {
		conditions = append(conditions, fmt.Sprintf("si.client_id = $%d", i))
		args = append(args, *filter.ClientID)
		i++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("si.status = $%d", i))
		args = append(args, string(*filter.Status))
		i++
	}
	where := " WHERE " + strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*)"+invoiceJoins+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	args = append(args, filter.Limit, offset)
	rows, err := q.Query(ctx,
		"SELECT"+invoiceColumns+invoiceJoins+where+
			fmt.Sprintf(" ORDER BY si.id DESC LIMIT $%d OFFSET $%d", i, i+1),
		args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var out []sales.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, inv)
	}
	return out, total, rows.Err()
}

func (r *invoiceRepositoryImpl) NumberExists(ctx context.Context, number string) (bool, error) {
	q := GetQuerier(ctx, r.db)
	var exists bool
	err := q.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM sales_invoices WHERE invoice_number = $1 AND deleted_at IS NULL)",
		number).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check invoice number: %w", err)
	}
	return exists, nil
}
