package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID               int64
	EmployeeCode     *string
	FirstName        string
	LastName         *string
	Email            string
	PersonalEmail    *string
	PhoneNumber      *string
	Gender           *string
	DOB              *time.Time
	DOJ              *time.Time
	DesignationID    *int64
	RoleID           *int64
	StatusID         *int64
	Active           bool
	PermanentAddress *string
	// TempAddress is exposed to clients as "current_address". The column name
	// is a legacy carry-over from the original schema and is kept as-is.
	TempAddress *string
	City        *string
	State       *string
	Pincode     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

type EmergencyContact struct {
	ID            int64
	EmployeeID    int64
	Name          string
	Relationship  *string
	ContactNumber *string
	Address       *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}

type FamilyMember struct {
	ID           int64
	EmployeeID   int64
	Name         string
	Relationship *string
	DOB          *time.Time
	Occupation   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

type EducationRecord struct {
	ID           int64
	EmployeeID   int64
	Institution  string
	Degree       *string
	FieldOfStudy *string
	StartYear    *int
	EndYear      *int
	Grade        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

type ExperienceRecord struct {
	ID          int64
	EmployeeID  int64
	CompanyName string
	Designation *string
	StartDate   *time.Time
	EndDate     *time.Time
	Location    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

type Document struct {
	ID         int64
	EmployeeID int64
	Name       string
	FilePath   *string
	IssuedDate *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

type BankDetail struct {
	ID                int64
	EmployeeID        int64
	BankName          *string
	AccountHolderName *string
	AccountNumber     string
	IFSCCode          *string
	Branch            *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time
}

type SalaryLine struct {
	ID              int64
	EmployeeID      int64
	AllowanceTypeID int64
	// AllowanceTypeName is resolved at read time from the allowance type
	// master, not by a SQL join.
	AllowanceTypeName *string
	Amount            decimal.Decimal
	EffectiveFrom     *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time
}

type ConsentForm struct {
	ID         int64
	EmployeeID int64
	FormName   string
	SignedAt   *time.Time
	FilePath   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}
