package candidate

import "github.com/staffhive/erp-backend-go/internal/pkg/validator"

type CreateCandidateRequest struct {
	FirstName       string  `json:"first_name"`
	LastName        *string `json:"last_name,omitempty"`
	Email           string  `json:"email"`
	PhoneNumber     *string `json:"phone_number,omitempty"`
	PositionApplied *string `json:"position_applied,omitempty"`
	Source          *string `json:"source,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

func (r CreateCandidateRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "First name is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Invalid email format"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateCandidateRequest struct {
	ID              int64   `json:"-"`
	FirstName       *string `json:"first_name,omitempty"`
	LastName        *string `json:"last_name,omitempty"`
	Email           *string `json:"email,omitempty"`
	PhoneNumber     *string `json:"phone_number,omitempty"`
	PositionApplied *string `json:"position_applied,omitempty"`
	Source          *string `json:"source,omitempty"`
	Stage           *string `json:"stage,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

func (r UpdateCandidateRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "First name cannot be empty"})
	}
	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Invalid email format"})
	}
	if r.Stage != nil && !Stage(*r.Stage).Valid() {
		errs = append(errs, validator.ValidationError{Field: "stage", Message: "Unknown recruitment stage"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CandidateFilter struct {
	Page   int
	Limit  int
	Search string
	Stage  *Stage
}

type CandidateResponse struct {
	ID              int64   `json:"id"`
	FirstName       string  `json:"first_name"`
	LastName        *string `json:"last_name,omitempty"`
	Email           string  `json:"email"`
	PhoneNumber     *string `json:"phone_number,omitempty"`
	PositionApplied *string `json:"position_applied,omitempty"`
	Source          *string `json:"source,omitempty"`
	Stage           string  `json:"stage"`
	ResumePath      *string `json:"resume_path,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type ListCandidateResponse struct {
	Candidates []CandidateResponse `json:"candidates"`
	TotalItems int64               `json:"total_items"`
	TotalPages int                 `json:"total_pages"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
}
