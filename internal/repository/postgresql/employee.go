package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/staffhive/erp-backend-go/internal/domain/employee"
	"github.com/staffhive/erp-backend-go/internal/pkg/database"
)

const employeeColumns = `id, employee_code, first_name, last_name, email, personal_email,
	phone_number, gender, dob, doj, designation_id, role_id, status_id, active,
	permanent_address, temp_address, city, state, pincode, created_at, updated_at, deleted_at`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.EmployeeCode, &emp.FirstName, &emp.LastName, &emp.Email, &emp.PersonalEmail,
		&emp.PhoneNumber, &emp.Gender, &emp.DOB, &emp.DOJ, &emp.DesignationID, &emp.RoleID,
		&emp.StatusID, &emp.Active, &emp.PermanentAddress, &emp.TempAddress, &emp.City,
		&emp.State, &emp.Pincode, &emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf(`SELECT %s FROM employees WHERE id = $1 AND deleted_at IS NULL`, employeeColumns)

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %d: %w", id, err)
	}
	return emp, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf(`
		INSERT INTO employees (
			employee_code, first_name, last_name, email, personal_email, phone_number,
			gender, dob, doj, designation_id, role_id, status_id, active,
			permanent_address, temp_address, city, state, pincode
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18
		)
		RETURNING %s
	`, employeeColumns)

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.EmployeeCode, newEmployee.FirstName, newEmployee.LastName, newEmployee.Email,
		newEmployee.PersonalEmail, newEmployee.PhoneNumber, newEmployee.Gender, newEmployee.DOB,
		newEmployee.DOJ, newEmployee.DesignationID, newEmployee.RoleID, newEmployee.StatusID,
		newEmployee.Active, newEmployee.PermanentAddress, newEmployee.TempAddress, newEmployee.City,
		newEmployee.State, newEmployee.Pincode,
	))
	if err != nil {
		if cerr := employeeConflict(err); cerr != nil {
			return employee.Employee{}, cerr
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// employeeConflict maps unique-index violations on the employees table to
// their domain errors.
func employeeConflict(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	switch pgErr.ConstraintName {
	case "employees_email_live":
		return employee.ErrEmailExists
	case "employees_code_live":
		return employee.ErrCodeExists
	}
	return nil
}

// EmailTakenByOther implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) EmailTakenByOther(ctx context.Context, email string, excludeID int64) (bool, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT EXISTS(
		SELECT 1 FROM employees
		WHERE email = $1 AND id <> $2 AND deleted_at IS NULL
	)`

	var exists bool
	if err := q.QueryRow(ctx, query, email, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	return exists, nil
}

// parseDateOrNil maps "" to NULL and a YYYY-MM-DD string to a date value.
func parseDateOrNil(value string) interface{} {
	if value == "" {
		return nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return parsed
}

// parseFKOrNil maps "" and malformed input to NULL and a digit string to its
// integer value.
func parseFKOrNil(value string) interface{} {
	if value == "" {
		return nil
	}
	var id int64
	if _, err := fmt.Sscanf(value, "%d", &id); err != nil || id <= 0 {
		return nil
	}
	return id
}

// buildEmployeeUpdates translates the typed patch into column assignments.
// Only fields present in the patch end up in the map; this is the allow-list
// the update contract depends on. Note current_address writes the
// temp_address column (legacy schema naming).
func buildEmployeeUpdates(req employee.UpdateEmployeeRequest) map[string]interface{} {
	updates := make(map[string]interface{})

	if req.EmployeeCode != nil {
		if *req.EmployeeCode == "" {
			updates["employee_code"] = nil
		} else {
			updates["employee_code"] = *req.EmployeeCode
		}
	}
	if req.FirstName != nil && *req.FirstName != "" {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		if *req.LastName == "" {
			updates["last_name"] = nil
		} else {
			updates["last_name"] = *req.LastName
		}
	}
	if req.Email != nil && *req.Email != "" {
		updates["email"] = *req.Email
	}
	if req.PersonalEmail != nil {
		if *req.PersonalEmail == "" {
			updates["personal_email"] = nil
		} else {
			updates["personal_email"] = *req.PersonalEmail
		}
	}
	if req.PhoneNumber != nil {
		if *req.PhoneNumber == "" {
			updates["phone_number"] = nil
		} else {
			updates["phone_number"] = *req.PhoneNumber
		}
	}
	if req.Gender != nil {
		if *req.Gender == "" {
			updates["gender"] = nil
		} else {
			updates["gender"] = *req.Gender
		}
	}
	if req.DOB != nil {
		updates["dob"] = parseDateOrNil(*req.DOB)
	}
	if req.DOJ != nil {
		updates["doj"] = parseDateOrNil(*req.DOJ)
	}
	if req.DesignationID != nil {
		updates["designation_id"] = parseFKOrNil(*req.DesignationID)
	}
	if req.RoleID != nil {
		updates["role_id"] = parseFKOrNil(*req.RoleID)
	}
	if req.StatusID != nil {
		updates["status_id"] = parseFKOrNil(*req.StatusID)
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}
	if req.PermanentAddress != nil {
		if *req.PermanentAddress == "" {
			updates["permanent_address"] = nil
		} else {
			updates["permanent_address"] = *req.PermanentAddress
		}
	}
	if req.CurrentAddress != nil {
		if *req.CurrentAddress == "" {
			updates["temp_address"] = nil
		} else {
			updates["temp_address"] = *req.CurrentAddress
		}
	}
	if req.City != nil {
		if *req.City == "" {
			updates["city"] = nil
		} else {
			updates["city"] = *req.City
		}
	}
	if req.State != nil {
		if *req.State == "" {
			updates["state"] = nil
		} else {
			updates["state"] = *req.State
		}
	}
	if req.Pincode != nil {
		if *req.Pincode == "" {
			updates["pincode"] = nil
		} else {
			updates["pincode"] = *req.Pincode
		}
	}

	return updates
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, e.db)

	updates := buildEmployeeUpdates(req)
	if len(updates) == 0 {
		return nil // Nothing to update
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

	sql := fmt.Sprintf(
		"UPDATE employees SET %s WHERE id = $%d AND deleted_at IS NULL RETURNING id",
		strings.Join(setClauses, ", "), i,
	)
	args = append(args, req.ID)

	var updatedID int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		if cerr := employeeConflict(err); cerr != nil {
			return cerr
		}
		return fmt.Errorf("failed to update employee %d: %w", req.ID, err)
	}
	return nil
}

// SoftDelete implements employee.EmployeeRepository. Also forces the active
// flag false so the record reads as inactive anywhere it still surfaces.
func (e *employeeRepositoryImpl) SoftDelete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET deleted_at = NOW(), active = FALSE, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var deletedID int64
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee %d: %w", id, err)
	}
	return nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, e.db)

	where := []string{"deleted_at IS NULL"}
	args := []interface{}{}
	i := 1

	if filter.Search != "" {
		where = append(where, fmt.Sprintf(
			"(first_name ILIKE $%d OR last_name ILIKE $%d OR email ILIKE $%d OR employee_code ILIKE $%d)",
			i, i, i, i,
		))
		args = append(args, "%"+filter.Search+"%")
		i++
	}
	if filter.DesignationID != nil {
		where = append(where, fmt.Sprintf("designation_id = $%d", i))
		args = append(args, *filter.DesignationID)
		i++
	}
	if filter.RoleID != nil {
		where = append(where, fmt.Sprintf("role_id = $%d", i))
		args = append(args, *filter.RoleID)
		i++
	}
	if filter.StatusID != nil {
		where = append(where, fmt.Sprintf("status_id = $%d", i))
		args = append(args, *filter.StatusID)
		i++
	}
	if filter.Active != nil {
		where = append(where, fmt.Sprintf("active = $%d", i))
		args = append(args, *filter.Active)
		i++
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM employees WHERE %s", whereClause)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM employees WHERE %s ORDER BY id DESC LIMIT $%d OFFSET $%d",
		employeeColumns, whereClause, i, i+1,
	)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}
