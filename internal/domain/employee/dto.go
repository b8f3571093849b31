package employee

import (
	"github.com/staffhive/erp-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeCode  *string `json:"employee_code,omitempty"`
	FirstName     string  `json:"first_name"`
	LastName      *string `json:"last_name,omitempty"`
	Email         string  `json:"email"`
	PersonalEmail *string `json:"personal_email,omitempty"`
	PhoneNumber   *string `json:"phone_number,omitempty"`
	Gender        *string `json:"gender,omitempty"`
	DOB           *string `json:"dob,omitempty"`
	DOJ           *string `json:"doj,omitempty"`
	DesignationID *string `json:"designation_id,omitempty"`
	RoleID        *string `json:"role_id,omitempty"`
	StatusID      *string `json:"status_id,omitempty"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "First name is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Invalid email format"})
	}
	if r.PhoneNumber != nil && *r.PhoneNumber != "" && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{Field: "phone_number", Message: "Invalid phone number"})
	}
	if r.DOB != nil && *r.DOB != "" {
		if _, ok := validator.IsValidDate(*r.DOB); !ok {
			errs = append(errs, validator.ValidationError{Field: "dob", Message: "Date must be YYYY-MM-DD"})
		}
	}
	if r.DOJ != nil && *r.DOJ != "" {
		if _, ok := validator.IsValidDate(*r.DOJ); !ok {
			errs = append(errs, validator.ValidationError{Field: "doj", Message: "Date must be YYYY-MM-DD"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest is the typed patch for PUT /employees/{id}. A nil
// field is absent from the request and leaves the column untouched; an empty
// string nulls date and foreign-key columns. JSON keys outside this struct
// are dropped at decode, which is what enforces the update allow-list.
type UpdateEmployeeRequest struct {
	ID int64 `json:"-"`

	EmployeeCode  *string `json:"employee_code,omitempty"`
	FirstName     *string `json:"first_name,omitempty"`
	LastName      *string `json:"last_name,omitempty"`
	Email         *string `json:"email,omitempty"`
	PersonalEmail *string `json:"personal_email,omitempty"`
	PhoneNumber   *string `json:"phone_number,omitempty"`
	Gender        *string `json:"gender,omitempty"`
	DOB           *string `json:"dob,omitempty"`
	DOJ           *string `json:"doj,omitempty"`
	DesignationID *string `json:"designation_id,omitempty"`
	RoleID        *string `json:"role_id,omitempty"`
	StatusID      *string `json:"status_id,omitempty"`
	Active        *bool   `json:"status,omitempty"`

	PermanentAddress *string `json:"permanent_address,omitempty"`
	// current_address is stored in the temp_address column; see entity.go.
	CurrentAddress *string `json:"current_address,omitempty"`
	City           *string `json:"city,omitempty"`
	State          *string `json:"state,omitempty"`
	Pincode        *string `json:"pincode,omitempty"`

	BankDetails       []BankDetailInput       `json:"bankDetails,omitempty"`
	EmergencyContacts []EmergencyContactInput `json:"emergencyContacts,omitempty"`
	FamilyInfo        []FamilyMemberInput     `json:"familyInfo,omitempty"`
	Documents         []DocumentInput         `json:"documents,omitempty"`
	Experience        []ExperienceInput       `json:"experience,omitempty"`
	Education         []EducationInput        `json:"education,omitempty"`
	SalaryDetails     []SalaryLineInput       `json:"salaryDetails,omitempty"`
}

func (r UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "First name cannot be empty"})
	}
	if r.Email != nil {
		if validator.IsEmpty(*r.Email) {
			errs = append(errs, validator.ValidationError{Field: "email", Message: "Email cannot be empty"})
		} else if !validator.IsValidEmail(*r.Email) {
			errs = append(errs, validator.ValidationError{Field: "email", Message: "Invalid email format"})
		}
	}
	for _, field := range []struct {
		name  string
		value *string
	}{
		{"dob", r.DOB},
		{"doj", r.DOJ},
	} {
		if field.value != nil && *field.value != "" {
			if _, ok := validator.IsValidDate(*field.value); !ok {
				errs = append(errs, validator.ValidationError{Field: field.name, Message: "Date must be YYYY-MM-DD"})
			}
		}
	}
	for _, field := range []struct {
		name  string
		value *string
	}{
		{"designation_id", r.DesignationID},
		{"role_id", r.RoleID},
		{"status_id", r.StatusID},
	} {
		if field.value != nil && *field.value != "" && !validator.IsNumeric(*field.value) {
			errs = append(errs, validator.ValidationError{Field: field.name, Message: "Must be numeric"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Child collection inputs. An item with ID updates that row; an item without
// ID but with its minimum required field creates a new row; anything else is
// skipped. Items omitted from the array are left untouched.

type EmergencyContactInput struct {
	ID            *int64  `json:"id,omitempty"`
	Name          *string `json:"name,omitempty"`
	Relationship  *string `json:"relationship,omitempty"`
	ContactNumber *string `json:"contact_number,omitempty"`
	Address       *string `json:"address,omitempty"`
}

type FamilyMemberInput struct {
	ID           *int64  `json:"id,omitempty"`
	Name         *string `json:"name,omitempty"`
	Relationship *string `json:"relationship,omitempty"`
	DOB          *string `json:"dob,omitempty"`
	Occupation   *string `json:"occupation,omitempty"`
}

type EducationInput struct {
	ID           *int64  `json:"id,omitempty"`
	Institution  *string `json:"institution,omitempty"`
	Degree       *string `json:"degree,omitempty"`
	FieldOfStudy *string `json:"field_of_study,omitempty"`
	StartYear    *int    `json:"start_year,omitempty"`
	EndYear      *int    `json:"end_year,omitempty"`
	Grade        *string `json:"grade,omitempty"`
}

type ExperienceInput struct {
	ID          *int64  `json:"id,omitempty"`
	CompanyName *string `json:"company_name,omitempty"`
	Designation *string `json:"designation,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	Location    *string `json:"location,omitempty"`
}

type DocumentInput struct {
	ID         *int64  `json:"id,omitempty"`
	Name       *string `json:"name,omitempty"`
	FilePath   *string `json:"file_path,omitempty"`
	IssuedDate *string `json:"issued_date,omitempty"`
}

type BankDetailInput struct {
	ID                *int64  `json:"id,omitempty"`
	BankName          *string `json:"bank_name,omitempty"`
	AccountHolderName *string `json:"account_holder_name,omitempty"`
	AccountNumber     *string `json:"account_number,omitempty"`
	IFSCCode          *string `json:"ifsc_code,omitempty"`
	Branch            *string `json:"branch,omitempty"`
}

type SalaryLineInput struct {
	ID              *int64  `json:"id,omitempty"`
	AllowanceTypeID *int64  `json:"allowance_type_id,omitempty"`
	Amount          *string `json:"amount,omitempty"`
	EffectiveFrom   *string `json:"effective_from,omitempty"`
}

// EmployeeFilter holds list query parameters.
type EmployeeFilter struct {
	Page          int
	Limit         int
	Search        string
	DesignationID *int64
	RoleID        *int64
	StatusID      *int64
	Active        *bool
}

// Responses

type EmployeeResponse struct {
	ID               int64   `json:"id"`
	EmployeeCode     *string `json:"employee_code,omitempty"`
	FirstName        string  `json:"first_name"`
	LastName         *string `json:"last_name,omitempty"`
	Email            string  `json:"email"`
	PersonalEmail    *string `json:"personal_email,omitempty"`
	PhoneNumber      *string `json:"phone_number,omitempty"`
	Gender           *string `json:"gender,omitempty"`
	DOB              *string `json:"dob,omitempty"`
	DOJ              *string `json:"doj,omitempty"`
	DesignationID    *int64  `json:"designation_id,omitempty"`
	DesignationName  *string `json:"designation_name,omitempty"`
	RoleID           *int64  `json:"role_id,omitempty"`
	RoleName         *string `json:"role_name,omitempty"`
	StatusID         *int64  `json:"status_id,omitempty"`
	StatusName       *string `json:"status_name,omitempty"`
	Active           bool    `json:"status"`
	PermanentAddress *string `json:"permanent_address,omitempty"`
	CurrentAddress   *string `json:"current_address,omitempty"`
	City             *string `json:"city,omitempty"`
	State            *string `json:"state,omitempty"`
	Pincode          *string `json:"pincode,omitempty"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

type EmergencyContactResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Relationship  *string `json:"relationship,omitempty"`
	ContactNumber *string `json:"contact_number,omitempty"`
	Address       *string `json:"address,omitempty"`
}

type FamilyMemberResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Relationship *string `json:"relationship,omitempty"`
	DOB          *string `json:"dob,omitempty"`
	Occupation   *string `json:"occupation,omitempty"`
}

type EducationResponse struct {
	ID           int64   `json:"id"`
	Institution  string  `json:"institution"`
	Degree       *string `json:"degree,omitempty"`
	FieldOfStudy *string `json:"field_of_study,omitempty"`
	StartYear    *int    `json:"start_year,omitempty"`
	EndYear      *int    `json:"end_year,omitempty"`
	Grade        *string `json:"grade,omitempty"`
}

type ExperienceResponse struct {
	ID          int64   `json:"id"`
	CompanyName string  `json:"company_name"`
	Designation *string `json:"designation,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	Location    *string `json:"location,omitempty"`
}

type DocumentResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	FilePath   *string `json:"file_path,omitempty"`
	IssuedDate *string `json:"issued_date,omitempty"`
}

type BankDetailResponse struct {
	ID                int64   `json:"id"`
	BankName          *string `json:"bank_name,omitempty"`
	AccountHolderName *string `json:"account_holder_name,omitempty"`
	AccountNumber     string  `json:"account_number"`
	IFSCCode          *string `json:"ifsc_code,omitempty"`
	Branch            *string `json:"branch,omitempty"`
}

type SalaryLineResponse struct {
	ID                int64   `json:"id"`
	AllowanceTypeID   int64   `json:"allowance_type_id"`
	AllowanceTypeName *string `json:"allowance_type_name,omitempty"`
	Amount            string  `json:"amount"`
	EffectiveFrom     *string `json:"effective_from,omitempty"`
}

type ConsentFormResponse struct {
	ID       int64   `json:"id"`
	FormName string  `json:"form_name"`
	SignedAt *string `json:"signed_at,omitempty"`
	FilePath *string `json:"file_path,omitempty"`
}

type LeaveBalanceSummary struct {
	LeaveTypeID   int64   `json:"leave_type_id"`
	LeaveTypeName string  `json:"leave_type_name"`
	Allocated     float64 `json:"allocated"`
	Used          float64 `json:"used"`
	Pending       float64 `json:"pending"`
	Remaining     float64 `json:"remaining"`
}

// EmployeeDetailResponse is the aggregate document returned by
// GET /employees/{id}.
type EmployeeDetailResponse struct {
	EmployeeResponse
	EmergencyContacts []EmergencyContactResponse `json:"emergencyContacts"`
	FamilyInfo        []FamilyMemberResponse     `json:"familyInfo"`
	Education         []EducationResponse        `json:"education"`
	Experience        []ExperienceResponse       `json:"experience"`
	Documents         []DocumentResponse         `json:"documents"`
	BankDetails       []BankDetailResponse       `json:"bankDetails"`
	SalaryDetails     []SalaryLineResponse       `json:"salaryDetails"`
	ConsentForms      []ConsentFormResponse      `json:"consentForms"`
	LeaveBalances     []LeaveBalanceSummary      `json:"leaveBalances"`
}

type ListEmployeeResponse struct {
	Employees  []EmployeeResponse `json:"employees"`
	TotalItems int64              `json:"total_items"`
	TotalPages int                `json:"total_pages"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}
