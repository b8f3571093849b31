package employee

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhive/erp-backend-go/internal/domain/audit"
	"github.com/staffhive/erp-backend-go/internal/domain/employee"
	"github.com/staffhive/erp-backend-go/internal/domain/leave"
	"github.com/staffhive/erp-backend-go/internal/domain/master"
)

type stubEmployeeRepo struct {
	emp employee.Employee
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	if id != s.emp.ID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return s.emp, nil
}

func (s *stubEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (s *stubEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (s *stubEmployeeRepo) SoftDelete(ctx context.Context, id int64) error { return nil }

func (s *stubEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (s *stubEmployeeRepo) EmailTakenByOther(ctx context.Context, email string, excludeID int64) (bool, error) {
	return false, nil
}

// stubChildRepo serves fixed emergency contacts and fails every other list
// with listErr.
type stubChildRepo struct {
	contacts []employee.EmergencyContact
	listErr  error
}

func (s *stubChildRepo) ListEmergencyContacts(ctx context.Context, employeeID int64) ([]employee.EmergencyContact, error) {
	return s.contacts, nil
}

func (s *stubChildRepo) UpsertEmergencyContact(ctx context.Context, employeeID int64, in employee.EmergencyContactInput) error {
	return nil
}

func (s *stubChildRepo) ListFamilyMembers(ctx context.Context, employeeID int64) ([]employee.FamilyMember, error) {
	return nil, s.listErr
}

func (s *stubChildRepo) UpsertFamilyMember(ctx context.Context, employeeID int64, in employee.FamilyMemberInput) error {
	return nil
}

func (s *stubChildRepo) ListEducation(ctx context.Context, employeeID int64) ([]employee.EducationRecord, error) {
	return nil, s.listErr
}

func (s *stubChildRepo) UpsertEducation(ctx context.Context, employeeID int64, in employee.EducationInput) error {
	return nil
}

func (s *stubChildRepo) ListExperience(ctx context.Context, employeeID int64) ([]employee.ExperienceRecord, error) {
	return nil, s.listErr
}

func (s *stubChildRepo) UpsertExperience(ctx context.Context, employeeID int64, in employee.ExperienceInput) error {
	return nil
}

func (s *stubChildRepo) ListDocuments(ctx context.Context, employeeID int64) ([]employee.Document, error) {
	return nil, s.listErr
}

func (s *stubChildRepo) UpsertDocument(ctx context.Context, employeeID int64, in employee.DocumentInput) error {
	return nil
}

func (s *stubChildRepo) ListBankDetails(ctx context.Context, employeeID int64) ([]employee.BankDetail, error) {
	return nil, s.listErr
}

func (s *stubChildRepo) UpsertBankDetail(ctx context.Context, employeeID int64, in employee.BankDetailInput) error {
	return nil
}

func (s *stubChildRepo) ListSalaryLines(ctx context.Context, employeeID int64) ([]employee.SalaryLine, error) {
	return nil, s.listErr
}

func (s *stubChildRepo) UpsertSalaryLine(ctx context.Context, employeeID int64, in employee.SalaryLineInput) error {
	return nil
}

func (s *stubChildRepo) ListConsentForms(ctx context.Context, employeeID int64) ([]employee.ConsentForm, error) {
	return nil, s.listErr
}

type stubLookupRepo struct{}

func (s *stubLookupRepo) Create(ctx context.Context, kind master.Kind, name string) (master.Lookup, error) {
	return master.Lookup{}, nil
}

func (s *stubLookupRepo) GetByID(ctx context.Context, kind master.Kind, id int64) (master.Lookup, error) {
	return master.Lookup{}, master.ErrLookupNotFound
}

func (s *stubLookupRepo) List(ctx context.Context, kind master.Kind) ([]master.Lookup, error) {
	return nil, nil
}

func (s *stubLookupRepo) Update(ctx context.Context, kind master.Kind, id int64, name string) error {
	return nil
}

func (s *stubLookupRepo) SoftDelete(ctx context.Context, kind master.Kind, id int64) error {
	return nil
}

func (s *stubLookupRepo) NameMap(ctx context.Context, kind master.Kind) (map[int64]string, error) {
	return nil, errors.New("lookup unavailable")
}

type stubBalanceRepo struct {
	listErr error
}

func (s *stubBalanceRepo) Get(ctx context.Context, employeeID, leaveTypeID int64, year int) (leave.LeaveBalance, error) {
	return leave.LeaveBalance{}, leave.ErrBalanceNotFound
}

func (s *stubBalanceRepo) ListByEmployee(ctx context.Context, employeeID int64, year int) ([]leave.LeaveBalance, error) {
	return nil, s.listErr
}

func (s *stubBalanceRepo) Ensure(ctx context.Context, employeeID, leaveTypeID int64, year int, allocated float64) (leave.LeaveBalance, error) {
	return leave.LeaveBalance{}, nil
}

func (s *stubBalanceRepo) Adjust(ctx context.Context, employeeID, leaveTypeID int64, year int, usedDelta, pendingDelta float64) error {
	return nil
}

type noopRecorder struct{}

func (noopRecorder) Record(ctx context.Context, entityType string, entityID int64, action audit.Action, detail map[string]interface{}) {
}

// A child query failing must not fail the aggregate read: the parent still
// returns 200-shaped data and the broken collections come back as empty
// arrays rather than nulls or errors.
func TestGetEmployeeDegradesOnChildFailure(t *testing.T) {
	listErr := errors.New("relation is busy")
	svc := NewEmployeeService(nil,
		&stubEmployeeRepo{emp: employee.Employee{ID: 7, FirstName: "Asha", Email: "asha@example.test", Active: true}},
		&stubChildRepo{
			contacts: []employee.EmergencyContact{{ID: 11, EmployeeID: 7, Name: "Ravi"}},
			listErr:  listErr,
		},
		&stubLookupRepo{},
		&stubBalanceRepo{listErr: listErr},
		noopRecorder{},
	)

	detail, err := svc.GetEmployee(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), detail.ID)

	// The healthy collection is populated.
	require.Len(t, detail.EmergencyContacts, 1)
	assert.Equal(t, "Ravi", detail.EmergencyContacts[0].Name)

	// Every failed collection is an empty slice, never nil.
	require.NotNil(t, detail.FamilyInfo)
	assert.Empty(t, detail.FamilyInfo)
	require.NotNil(t, detail.Education)
	assert.Empty(t, detail.Education)
	require.NotNil(t, detail.Experience)
	assert.Empty(t, detail.Experience)
	require.NotNil(t, detail.Documents)
	assert.Empty(t, detail.Documents)
	require.NotNil(t, detail.BankDetails)
	assert.Empty(t, detail.BankDetails)
	require.NotNil(t, detail.SalaryDetails)
	assert.Empty(t, detail.SalaryDetails)
	require.NotNil(t, detail.ConsentForms)
	assert.Empty(t, detail.ConsentForms)
	require.NotNil(t, detail.LeaveBalances)
	assert.Empty(t, detail.LeaveBalances)
}

func TestGetEmployeeMissingParentShortCircuits(t *testing.T) {
	svc := NewEmployeeService(nil,
		&stubEmployeeRepo{emp: employee.Employee{ID: 7}},
		&stubChildRepo{},
		&stubLookupRepo{},
		&stubBalanceRepo{},
		noopRecorder{},
	)

	_, err := svc.GetEmployee(context.Background(), 999)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
