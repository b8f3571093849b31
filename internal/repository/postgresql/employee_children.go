package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/staffhive/erp-backend-go/internal/domain/employee"
	"github.com/staffhive/erp-backend-go/internal/pkg/database"
)

// childRepositoryImpl implements employee.ChildRepository. Every statement is
// scoped by employee_id so one employee's payload can never touch another's
// rows.
type childRepositoryImpl struct {
	db *database.DB
}

func NewChildRepository(db *database.DB) employee.ChildRepository {
	return &childRepositoryImpl{db: db}
}

// updateChild runs a generic scoped update over one child table. An id that
// matches no live row for the employee is a client error, not a no-op.
func (c *childRepositoryImpl) updateChild(ctx context.Context, table string, id, employeeID int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}

	updates["updated_at"] = time.Now()
	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+2)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}
	sql := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d AND employee_id = $%d AND deleted_at IS NULL RETURNING id",
		table, strings.Join(setClauses, ", "), i, i+1,
	)
	args = append(args, id, employeeID)

	var updatedID int64
	if err := GetQuerier(ctx, c.db).QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrChildNotFound
		}
		return fmt.Errorf("failed to update %s row %d: %w", table, id, err)
	}
	return nil
}

func strOrNil(p *string) interface{} {
	if p == nil || *p == "" {
		return nil
	}
	return *p
}

func dateOrNil(p *string) interface{} {
	if p == nil || *p == "" {
		return nil
	}
	parsed, err := time.Parse("2006-01-02", *p)
	if err != nil {
		return nil
	}
	return parsed
}

// ===== Emergency contacts =====

func (c *childRepositoryImpl) ListEmergencyContacts(ctx context.Context, employeeID int64) ([]employee.EmergencyContact, error) {
	q := GetQuerier(ctx, c.db)
	rows, err := q.Query(ctx, `
		SELECT id, employee_id, name, relationship, contact_number, address, created_at, updated_at, deleted_at
		FROM emergency_contacts
		WHERE employee_id = $1 AND deleted_at IS NULL
		ORDER BY id
	`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []employee.EmergencyContact
	for rows.Next() {
		var ec employee.EmergencyContact
		if err := rows.Scan(&ec.ID, &ec.EmployeeID, &ec.Name, &ec.Relationship, &ec.ContactNumber,
			&ec.Address, &ec.CreatedAt, &ec.UpdatedAt, &ec.DeletedAt); err != nil {
			return nil, err
		}
		out = append(out, ec)
	}
	return out, rows.Err()
}

func (c *childRepositoryImpl) UpsertEmergencyContact(ctx context.Context, employeeID int64, in employee.EmergencyContactInput) error {
	if in.ID != nil {
		updates := map[string]interface{}{}
		if in.Name != nil && *in.Name != "" {
			updates["name"] = *in.Name
		}
		if in.Relationship != nil {
			updates["relationship"] = strOrNil(in.Relationship)
		}
		if in.ContactNumber != nil {
			updates["contact_number"] = strOrNil(in.ContactNumber)
		}
		if in.Address != nil {
			updates["address"] = strOrNil(in.Address)
		}
		return c.updateChild(ctx, "emergency_contacts", *in.ID, employeeID, updates)
	}

	// Create requires at least a name.
	if in.Name == nil || *in.Name == "" {
		return nil
	}
	q := GetQuerier(ctx, c.db)
	_, err := q.Exec(ctx, `
		INSERT INTO emergency_contacts (employee_id, name, relationship, contact_number, address)
		VALUES ($1, $2, $3, $4, $5)
	`, employeeID, *in.Name, strOrNil(in.Relationship), strOrNil(in.ContactNumber), strOrNil(in.Address))
	if err != nil {
		return fmt.Errorf("failed to create emergency contact: %w", err)
	}
	return nil
}

// ===== Family members =====

func (c *childRepositoryImpl) ListFamilyMembers(ctx context.Context, employeeID int64) ([]employee.FamilyMember, error) {
	q := GetQuerier(ctx, c.db)
	rows, err := q.Query(ctx, `
		SELECT id, employee_id, name, relationship, dob, occupation, created_at, updated_at, deleted_at
		FROM family_members
		WHERE employee_id = $1 AND deleted_at IS NULL
		ORDER BY id
	`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []employee.FamilyMember
	for rows.Next() {
		var fm employee.FamilyMember
		if err := rows.Scan(&fm.ID, &fm.EmployeeID, &fm.Name, &fm.Relationship, &fm.DOB,
			&fm.Occupation, &fm.CreatedAt, &fm.UpdatedAt, &fm.DeletedAt); err != nil {
			return nil, err
		}
		out = append(out, fm)
	}
	return out, rows.Err()
}

func (c *childRepositoryImpl) UpsertFamilyMember(ctx context.Context, employeeID int64, in employee.FamilyMemberInput) error {
	if in.ID != nil {
		updates := map[string]interface{}{}
		if in.Name != nil && *in.Name != "" {
			updates["name"] = *in.Name
		}
		if in.Relationship != nil {
			updates["relationship"] = strOrNil(in.Relationship)
		}
		if in.DOB != nil {
			updates["dob"] = dateOrNil(in.DOB)
		}
		if in.Occupation != nil {
			updates["occupation"] = strOrNil(in.Occupation)
		}
		return c.updateChild(ctx, "family_members", *in.ID, employeeID, updates)
	}

	if in.Name == nil || *in.Name == "" {
		return nil
	}
	q := GetQuerier(ctx, c.db)
	_, err := q.Exec(ctx, `
		INSERT INTO family_members (employee_id, name, relationship, dob, occupation)
		VALUES ($1, $2, $3, $4, $5)
	`, employeeID, *in.Name, strOrNil(in.Relationship), dateOrNil(in.DOB), strOrNil(in.Occupation))
	if err != nil {
		return fmt.Errorf("failed to create family member: %w", err)
	}
	return nil
}

// ===== Education =====

func (c *childRepositoryImpl) ListEducation(ctx context.Context, employeeID int64) ([]employee.EducationRecord, error) {
	q := GetQuerier(ctx, c.db)
	rows, err := q.Query(ctx, `
		SELECT id, employee_id, institution, degree, field_of_study, start_year, end_year, grade,
			created_at, updated_at, deleted_at
		FROM education_records
		WHERE employee_id = $1 AND deleted_at IS NULL
		ORDER BY id
	`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []employee.EducationRecord
	for rows.Next() {
		var er employee.EducationRecord
		if err := rows.Scan(&er.ID, &er.EmployeeID, &er.Institution, &er.Degree, &er.FieldOfStudy,
			&er.StartYear, &er.EndYear, &er.Grade, &er.CreatedAt, &er.UpdatedAt, &er.DeletedAt); err != nil {
			return nil, err
		}
		out = append(out, er)
	}
	return out, rows.Err()
}

func (c *childRepositoryImpl) UpsertEducation(ctx context.Context, employeeID int64, in employee.EducationInput) error {
	if in.ID != nil {
		updates := map[string]interface{}{}
		if in.Institution != nil && *in.Institution != "" {
			updates["institution"] = *in.Institution
		}
		if in.Degree != nil {
			updates["degree"] = strOrNil(in.Degree)
		}
		if in.FieldOfStudy != nil {
			updates["field_of_study"] = strOrNil(in.FieldOfStudy)
		}
		if in.StartYear != nil {
			updates["start_year"] = *in.StartYear
		}
		if in.EndYear != nil {
			updates["end_year"] = *in.EndYear
		}
		if in.Grade != nil {
			updates["grade"] = strOrNil(in.Grade)
		}
		return c.updateChild(ctx, "education_records", *in.ID, employeeID, updates)
	}

	if in.Institution == nil || *in.Institution == "" {
		return nil
	}
	q := GetQuerier(ctx, c.db)
	_, err := q.Exec(ctx, `
		INSERT INTO education_records (employee_id, institution, degree, field_of_study, start_year, end_year, grade)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, employeeID, *in.Institution, strOrNil(in.Degree), strOrNil(in.FieldOfStudy), in.StartYear, in.EndYear, strOrNil(in.Grade))
	if err != nil {
		return fmt.Errorf("failed to create education record: %w", err)
	}
	return nil
}

// ===== Experience =====

func (c *childRepositoryImpl) ListExperience(ctx context.Context, employeeID int64) ([]employee.ExperienceRecord, error) {
	q := GetQuerier(ctx, c.db)
	rows, err := q.Query(ctx, `
		SELECT id, employee_id, company_name, designation, start_date, end_date, location,
			created_at, updated_at, deleted_at
		FROM experience_records
		WHERE employee_id = $1 AND deleted_at IS NULL
		ORDER BY id
	`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []employee.ExperienceRecord
	for rows.Next() {
		var xr employee.ExperienceRecord
		if err := rows.Scan(&xr.ID, &xr.EmployeeID, &xr.CompanyName, &xr.Designation, &xr.StartDate,
			&xr.EndDate, &xr.Location, &xr.CreatedAt, &xr.UpdatedAt, &xr.DeletedAt); err != nil {
			return nil, err
		}
		out = append(out, xr)
	}
	return out, rows.Err()
}

func (c *childRepositoryImpl) UpsertExperience(ctx context.Context, employeeID int64, in employee.ExperienceInput) error {
	if in.ID != nil {
		updates := map[string]interface{}{}
		if in.CompanyName != nil && *in.CompanyName != "" {
			updates["company_name"] = *in.CompanyName
		}
		if in.Designation != nil {
			updates["designation"] = strOrNil(in.Designation)
		}
		if in.StartDate != nil {
			updates["start_date"] = dateOrNil(in.StartDate)
		}
		if in.EndDate != nil {
			updates["end_date"] = dateOrNil(in.EndDate)
		}
		if in.Location != nil {
			updates["location"] = strOrNil(in.Location)
		}
		return c.updateChild(ctx, "experience_records", *in.ID, employeeID, updates)
	}

	if in.CompanyName == nil || *in.CompanyName == "" {
		return nil
	}
	q := GetQuerier(ctx, c.db)
	_, err := q.Exec(ctx, `
		INSERT INTO experience_records (employee_id, company_name, designation, start_date, end_date, location)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, employeeID, *in.CompanyName, strOrNil(in.Designation), dateOrNil(in.StartDate), dateOrNil(in.EndDate), strOrNil(in.Location))
	if err != nil {
		return fmt.Errorf("failed to create experience record: %w", err)
	}
	return nil
}

// ===== Documents =====

func (c *childRepositoryImpl) ListDocuments(ctx context.Context, employeeID int64) ([]employee.Document, error) {
	q := GetQuerier(ctx, c.db)
	rows, err := q.Query(ctx, `
		SELECT id, employee_id, name, file_path, issued_date, created_at, updated_at, deleted_at
		FROM documents
		WHERE employee_id = $1 AND deleted_at IS NULL
		ORDER BY id
	`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []employee.Document
	for rows.Next() {
		var d employee.Document
		if err := rows.Scan(&d.ID, &d.EmployeeID, &d.Name, &d.FilePath, &d.IssuedDate,
			&d.CreatedAt, &d.UpdatedAt, &d.DeletedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (c *childRepositoryImpl) UpsertDocument(ctx context.Context, employeeID int64, in employee.DocumentInput) error {
	if in.ID != nil {
		updates := map[string]interface{}{}
		if in.Name != nil && *in.Name != "" {
			updates["name"] = *in.Name
		}
		if in.FilePath != nil {
			updates["file_path"] = strOrNil(in.FilePath)
		}
		if in.IssuedDate != nil {
			updates["issued_date"] = dateOrNil(in.IssuedDate)
		}
		return c.updateChild(ctx, "documents", *in.ID, employeeID, updates)
	}

	if in.Name == nil || *in.Name == "" {
		return nil
	}
	q := GetQuerier(ctx, c.db)
	_, err := q.Exec(ctx, `
		INSERT INTO documents (employee_id, name, file_path, issued_date)
		VALUES ($1, $2, $3, $4)
	`, employeeID, *in.Name, strOrNil(in.FilePath), dateOrNil(in.IssuedDate))
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

// ===== Bank details =====

func (c *childRepositoryImpl) ListBankDetails(ctx context.Context, employeeID int64) ([]employee.BankDetail, error) {
	q := GetQuerier(ctx, c.db)
	rows, err := q.Query(ctx, `
		SELECT id, employee_id, bank_name, account_holder_name, account_number, ifsc_code, branch,
			created_at, updated_at, deleted_at
		FROM bank_details
		WHERE employee_id = $1 AND deleted_at IS NULL
		ORDER BY id
	`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []employee.BankDetail
	for rows.Next() {
		var bd employee.BankDetail
		if err := rows.Scan(&bd.ID, &bd.EmployeeID, &bd.BankName, &bd.AccountHolderName, &bd.AccountNumber,
			&bd.IFSCCode, &bd.Branch, &bd.CreatedAt, &bd.UpdatedAt, &bd.DeletedAt); err != nil {
			return nil, err
		}
		out = append(out, bd)
	}
	return out, rows.Err()
}

func (c *childRepositoryImpl) UpsertBankDetail(ctx context.Context, employeeID int64, in employee.BankDetailInput) error {
	if in.ID != nil {
		updates := map[string]interface{}{}
		if in.BankName != nil {
			updates["bank_name"] = strOrNil(in.BankName)
		}
		if in.AccountHolderName != nil {
			updates["account_holder_name"] = strOrNil(in.AccountHolderName)
		}
		if in.AccountNumber != nil && *in.AccountNumber != "" {
			updates["account_number"] = *in.AccountNumber
		}
		if in.IFSCCode != nil {
			updates["ifsc_code"] = strOrNil(in.IFSCCode)
		}
		if in.Branch != nil {
			updates["branch"] = strOrNil(in.Branch)
		}
		return c.updateChild(ctx, "bank_details", *in.ID, employeeID, updates)
	}

	if in.AccountNumber == nil || *in.AccountNumber == "" {
		return nil
	}
	q := GetQuerier(ctx, c.db)
	_, err := q.Exec(ctx, `
		INSERT INTO bank_details (employee_id, bank_name, account_holder_name, account_number, ifsc_code, branch)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, employeeID, strOrNil(in.BankName), strOrNil(in.AccountHolderName), *in.AccountNumber, strOrNil(in.IFSCCode), strOrNil(in.Branch))
	if err != nil {
		return fmt.Errorf("failed to create bank detail: %w", err)
	}
	return nil
}

// ===== Salary lines =====

func (c *childRepositoryImpl) ListSalaryLines(ctx context.Context, employeeID int64) ([]employee.SalaryLine, error) {
	q := GetQuerier(ctx, c.db)
	rows, err := q.Query(ctx, `
		SELECT id, employee_id, allowance_type_id, amount, effective_from, created_at, updated_at, deleted_at
		FROM salary_lines
		WHERE employee_id = $1 AND deleted_at IS NULL
		ORDER BY id
	`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []employee.SalaryLine
	for rows.Next() {
		var sl employee.SalaryLine
		if err := rows.Scan(&sl.ID, &sl.EmployeeID, &sl.AllowanceTypeID, &sl.Amount, &sl.EffectiveFrom,
			&sl.CreatedAt, &sl.UpdatedAt, &sl.DeletedAt); err != nil {
			return nil, err
		}
		out = append(out, sl)
	}
	return out, rows.Err()
}

func (c *childRepositoryImpl) UpsertSalaryLine(ctx context.Context, employeeID int64, in employee.SalaryLineInput) error {
	var amount interface{}
	if in.Amount != nil && *in.Amount != "" {
		parsed, err := decimal.NewFromString(*in.Amount)
		if err != nil {
			return employee.ErrInvalidSalaryLine
		}
		amount = parsed
	}

	if in.ID != nil {
		updates := map[string]interface{}{}
		if in.AllowanceTypeID != nil {
			updates["allowance_type_id"] = *in.AllowanceTypeID
		}
		if amount != nil {
			updates["amount"] = amount
		}
		if in.EffectiveFrom != nil {
			updates["effective_from"] = dateOrNil(in.EffectiveFrom)
		}
		return c.updateChild(ctx, "salary_lines", *in.ID, employeeID, updates)
	}

	if in.AllowanceTypeID == nil {
		return nil
	}
	if amount == nil {
		amount = decimal.Zero
	}
	q := GetQuerier(ctx, c.db)
	_, err := q.Exec(ctx, `
		INSERT INTO salary_lines (employee_id, allowance_type_id, amount, effective_from)
		VALUES ($1, $2, $3, $4)
	`, employeeID, *in.AllowanceTypeID, amount, dateOrNil(in.EffectiveFrom))
	if err != nil {
		return fmt.Errorf("failed to create salary line: %w", err)
	}
	return nil
}

// ===== Consent forms =====

func (c *childRepositoryImpl) ListConsentForms(ctx context.Context, employeeID int64) ([]employee.ConsentForm, error) {
	q := GetQuerier(ctx, c.db)
	rows, err := q.Query(ctx, `
		SELECT id, employee_id, form_name, signed_at, file_path, created_at, updated_at, deleted_at
		FROM consent_forms
		WHERE employee_id = $1 AND deleted_at IS NULL
		ORDER BY id
	`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []employee.ConsentForm
	for rows.Next() {
		var cf employee.ConsentForm
		if err := rows.Scan(&cf.ID, &cf.EmployeeID, &cf.FormName, &cf.SignedAt, &cf.FilePath,
			&cf.CreatedAt, &cf.UpdatedAt, &cf.DeletedAt); err != nil {
			return nil, err
		}
		out = append(out, cf)
	}
	return out, rows.Err()
}
