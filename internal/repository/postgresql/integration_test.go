package postgresql

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhive/erp-backend-go/internal/domain/employee"
	"github.com/staffhive/erp-backend-go/internal/domain/leave"
	"github.com/staffhive/erp-backend-go/internal/pkg/database"
)

var (
	testDBOnce sync.Once
	testDB     *database.DB
)

// openTestDB connects once per test binary. Tests are skipped when
// TEST_DATABASE_URL is not set, so the unit suite stays runnable without a
// local PostgreSQL.
func openTestDB(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	testDBOnce.Do(func() {
		db, err := database.NewPostgreSQLDB(context.Background(), dsn)
		if err != nil {
			t.Fatal("failed to connect to test database: ", err)
		}
		testDB = db
	})
	return testDB
}

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.test", prefix, time.Now().UnixNano())
}

func createTestEmployee(t *testing.T, ctx context.Context, db *database.DB, email string) employee.Employee {
	t.Helper()
	repo := NewEmployeeRepository(db)
	created, err := repo.Create(ctx, employee.Employee{
		FirstName: "Asha",
		Email:     email,
		Active:    true,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	return created
}

func TestEmployeeRepositoryRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewEmployeeRepository(db)

	created := createTestEmployee(t, ctx, db, uniqueEmail("roundtrip"))

	lastName := "Rao"
	city := "Pune"
	currentAddress := "4 Lake View"
	err := repo.Update(ctx, employee.UpdateEmployeeRequest{
		ID:             created.ID,
		LastName:       &lastName,
		City:           &city,
		CurrentAddress: &currentAddress,
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastName)
	assert.Equal(t, "Rao", *got.LastName)
	require.NotNil(t, got.City)
	assert.Equal(t, "Pune", *got.City)
	// current_address is stored in the temp_address column.
	require.NotNil(t, got.TempAddress)
	assert.Equal(t, "4 Lake View", *got.TempAddress)

	require.NoError(t, repo.SoftDelete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	// Deleting a row that is already gone reports not found, not success.
	err = repo.SoftDelete(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeEmailTakenByOther(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewEmployeeRepository(db)

	email := uniqueEmail("collision")
	created := createTestEmployee(t, ctx, db, email)

	taken, err := repo.EmailTakenByOther(ctx, email, 0)
	require.NoError(t, err)
	assert.True(t, taken)

	// The owner itself is excluded, so a no-op update of the same email
	// does not collide.
	taken, err = repo.EmailTakenByOther(ctx, email, created.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	// A soft-deleted employee releases its email.
	require.NoError(t, repo.SoftDelete(ctx, created.ID))
	taken, err = repo.EmailTakenByOther(ctx, email, 0)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestChildUpsertScopedToEmployee(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	children := NewChildRepository(db)

	owner := createTestEmployee(t, ctx, db, uniqueEmail("owner"))
	other := createTestEmployee(t, ctx, db, uniqueEmail("other"))

	name := "Ravi"
	phone := "9900112233"
	require.NoError(t, children.UpsertEmergencyContact(ctx, owner.ID, employee.EmergencyContactInput{
		Name:          &name,
		ContactNumber: &phone,
	}))

	contacts, err := children.ListEmergencyContacts(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Ravi", contacts[0].Name)

	// An id belonging to one employee must not be reachable through another.
	renamed := "Hijacked"
	err = children.UpsertEmergencyContact(ctx, other.ID, employee.EmergencyContactInput{
		ID:   &contacts[0].ID,
		Name: &renamed,
	})
	assert.ErrorIs(t, err, employee.ErrChildNotFound)

	contacts, err = children.ListEmergencyContacts(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Ravi", contacts[0].Name)
}

func TestLeaveStatusGuard(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	leaveRepo := NewLeaveRepository(db)
	typeRepo := NewLeaveTypeRepository(db)
	balanceRepo := NewLeaveBalanceRepository(db)

	emp := createTestEmployee(t, ctx, db, uniqueEmail("leave"))
	lt, err := typeRepo.Create(ctx, leave.LeaveType{
		Name:              fmt.Sprintf("Casual %d", time.Now().UnixNano()),
		DefaultAllocation: 12,
	})
	require.NoError(t, err)

	year := time.Now().Year()
	_, err = balanceRepo.Ensure(ctx, emp.ID, lt.ID, year, lt.DefaultAllocation)
	require.NoError(t, err)

	start := time.Date(year, 6, 1, 0, 0, 0, 0, time.UTC)
	la, err := leaveRepo.Create(ctx, leave.LeaveApplication{
		EmployeeID:  emp.ID,
		LeaveTypeID: lt.ID,
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 2),
		Days:        3,
		StatusID:    leave.StatusPending,
	})
	require.NoError(t, err)

	require.NoError(t, leaveRepo.UpdateStatus(ctx, la.ID, leave.StatusPending, leave.StatusApproved, nil))

	// A second approver acting on the stale pending state loses the race.
	err = leaveRepo.UpdateStatus(ctx, la.ID, leave.StatusPending, leave.StatusRejected, nil)
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)

	got, err := leaveRepo.GetByID(ctx, la.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, got.StatusID)

	require.NoError(t, balanceRepo.Adjust(ctx, emp.ID, lt.ID, year, 3, 0))
	bal, err := balanceRepo.Get(ctx, emp.ID, lt.ID, year)
	require.NoError(t, err)
	assert.Equal(t, 3.0, bal.Used)
	assert.Equal(t, 9.0, bal.Remaining())
}

func TestOverlappingLeaveDetection(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	leaveRepo := NewLeaveRepository(db)
	typeRepo := NewLeaveTypeRepository(db)

	emp := createTestEmployee(t, ctx, db, uniqueEmail("overlap"))
	lt, err := typeRepo.Create(ctx, leave.LeaveType{
		Name:              fmt.Sprintf("Earned %d", time.Now().UnixNano()),
		DefaultAllocation: 15,
	})
	require.NoError(t, err)

	start := time.Date(time.Now().Year(), 9, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 4)
	_, err = leaveRepo.Create(ctx, leave.LeaveApplication{
		EmployeeID:  emp.ID,
		LeaveTypeID: lt.ID,
		StartDate:   start,
		EndDate:     end,
		Days:        5,
		StatusID:    leave.StatusPending,
	})
	require.NoError(t, err)

	overlaps, err := leaveRepo.HasOverlapping(ctx, emp.ID, end, end.AddDate(0, 0, 3))
	require.NoError(t, err)
	assert.True(t, overlaps)

	overlaps, err = leaveRepo.HasOverlapping(ctx, emp.ID, end.AddDate(0, 0, 1), end.AddDate(0, 0, 3))
	require.NoError(t, err)
	assert.False(t, overlaps)
}
