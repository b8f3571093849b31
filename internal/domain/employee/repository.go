package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id int64) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	SoftDelete(ctx context.Context, id int64) error
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	// EmailTakenByOther reports whether email belongs to an employee other
	// than excludeID (0 to check against all employees).
	EmailTakenByOther(ctx context.Context, email string, excludeID int64) (bool, error)
}

// ChildRepository covers the eight collections owned by an employee. Every
// query and mutation is scoped by employee id; list methods exclude
// soft-deleted rows.
type ChildRepository interface {
	ListEmergencyContacts(ctx context.Context, employeeID int64) ([]EmergencyContact, error)
	UpsertEmergencyContact(ctx context.Context, employeeID int64, in EmergencyContactInput) error

	ListFamilyMembers(ctx context.Context, employeeID int64) ([]FamilyMember, error)
	UpsertFamilyMember(ctx context.Context, employeeID int64, in FamilyMemberInput) error

	ListEducation(ctx context.Context, employeeID int64) ([]EducationRecord, error)
	UpsertEducation(ctx context.Context, employeeID int64, in EducationInput) error

	ListExperience(ctx context.Context, employeeID int64) ([]ExperienceRecord, error)
	UpsertExperience(ctx context.Context, employeeID int64, in ExperienceInput) error

	ListDocuments(ctx context.Context, employeeID int64) ([]Document, error)
	UpsertDocument(ctx context.Context, employeeID int64, in DocumentInput) error

	ListBankDetails(ctx context.Context, employeeID int64) ([]BankDetail, error)
	UpsertBankDetail(ctx context.Context, employeeID int64, in BankDetailInput) error

	ListSalaryLines(ctx context.Context, employeeID int64) ([]SalaryLine, error)
	UpsertSalaryLine(ctx context.Context, employeeID int64, in SalaryLineInput) error

	ListConsentForms(ctx context.Context, employeeID int64) ([]ConsentForm, error)
}
