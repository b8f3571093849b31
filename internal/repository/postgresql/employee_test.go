package postgresql

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhive/erp-backend-go/internal/domain/employee"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestBuildEmployeeUpdatesOmitsAbsentFields(t *testing.T) {
	updates := buildEmployeeUpdates(employee.UpdateEmployeeRequest{
		FirstName: strPtr("Meena"),
	})

	require.Len(t, updates, 1)
	assert.Equal(t, "Meena", updates["first_name"])
}

func TestBuildEmployeeUpdatesEmptyStringsBecomeNull(t *testing.T) {
	updates := buildEmployeeUpdates(employee.UpdateEmployeeRequest{
		LastName:      strPtr(""),
		PersonalEmail: strPtr(""),
		PhoneNumber:   strPtr(""),
		DOB:           strPtr(""),
		DesignationID: strPtr(""),
	})

	for _, col := range []string{"last_name", "personal_email", "phone_number", "dob", "designation_id"} {
		val, ok := updates[col]
		require.True(t, ok, "column %s missing from patch", col)
		assert.Nil(t, val, "column %s should be NULL", col)
	}
}

func TestBuildEmployeeUpdatesRequiredFieldsIgnoreEmpty(t *testing.T) {
	// first_name and email are NOT NULL; an empty patch value must not
	// produce an assignment at all.
	updates := buildEmployeeUpdates(employee.UpdateEmployeeRequest{
		FirstName: strPtr(""),
		Email:     strPtr(""),
	})

	assert.Empty(t, updates)
}

func TestBuildEmployeeUpdatesCurrentAddressAlias(t *testing.T) {
	updates := buildEmployeeUpdates(employee.UpdateEmployeeRequest{
		CurrentAddress: strPtr("12 Hill Road"),
	})

	assert.Equal(t, "12 Hill Road", updates["temp_address"])
	_, hasLiteral := updates["current_address"]
	assert.False(t, hasLiteral)
}

func TestBuildEmployeeUpdatesDateAndFKCoercion(t *testing.T) {
	updates := buildEmployeeUpdates(employee.UpdateEmployeeRequest{
		DOB:    strPtr("1992-03-14"),
		DOJ:    strPtr("not-a-date"),
		RoleID: strPtr("7"),
	})

	assert.Equal(t, time.Date(1992, 3, 14, 0, 0, 0, 0, time.UTC), updates["dob"])
	assert.Nil(t, updates["doj"])
	assert.Equal(t, int64(7), updates["role_id"])

	updates = buildEmployeeUpdates(employee.UpdateEmployeeRequest{
		RoleID:   strPtr("abc"),
		StatusID: strPtr("-2"),
	})
	assert.Nil(t, updates["role_id"])
	assert.Nil(t, updates["status_id"])
}

func TestBuildEmployeeUpdatesActiveFlag(t *testing.T) {
	updates := buildEmployeeUpdates(employee.UpdateEmployeeRequest{Active: boolPtr(false)})
	assert.Equal(t, false, updates["active"])
}

func TestEmployeeConflictMapping(t *testing.T) {
	codeErr := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "employees_code_live"})
	assert.ErrorIs(t, employeeConflict(codeErr), employee.ErrCodeExists)

	emailErr := &pgconn.PgError{Code: "23505", ConstraintName: "employees_email_live"}
	assert.ErrorIs(t, employeeConflict(emailErr), employee.ErrEmailExists)

	// Non-unique violations and non-pg errors pass through untouched.
	assert.Nil(t, employeeConflict(&pgconn.PgError{Code: "23503"}))
	assert.Nil(t, employeeConflict(errors.New("connection reset")))
}
