package client

import "github.com/staffhive/erp-backend-go/internal/pkg/validator"

type CreateClientRequest struct {
	Name          string  `json:"name"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Email         *string `json:"email,omitempty"`
	PhoneNumber   *string `json:"phone_number,omitempty"`
	Address       *string `json:"address,omitempty"`
	City          *string `json:"city,omitempty"`
	Country       *string `json:"country,omitempty"`
	TaxNumber     *string `json:"tax_number,omitempty"`
}

func (r CreateClientRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Name is required"})
	}
	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Invalid email format"})
	}
	if r.PhoneNumber != nil && *r.PhoneNumber != "" && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{Field: "phone_number", Message: "Invalid phone number"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateClientRequest is a typed patch; nil leaves the column untouched.
type UpdateClientRequest struct {
	ID            int64   `json:"-"`
	Name          *string `json:"name,omitempty"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Email         *string `json:"email,omitempty"`
	PhoneNumber   *string `json:"phone_number,omitempty"`
	Address       *string `json:"address,omitempty"`
	City          *string `json:"city,omitempty"`
	Country       *string `json:"country,omitempty"`
	TaxNumber     *string `json:"tax_number,omitempty"`
	Active        *bool   `json:"status,omitempty"`
}

func (r UpdateClientRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Name cannot be empty"})
	}
	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Invalid email format"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClientFilter struct {
	Page   int
	Limit  int
	Search string
	City   *string
	Active *bool
}

type ClientResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Email         *string `json:"email,omitempty"`
	PhoneNumber   *string `json:"phone_number,omitempty"`
	Address       *string `json:"address,omitempty"`
	City          *string `json:"city,omitempty"`
	Country       *string `json:"country,omitempty"`
	TaxNumber     *string `json:"tax_number,omitempty"`
	Active        bool    `json:"status"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type ListClientResponse struct {
	Clients    []ClientResponse `json:"clients"`
	TotalItems int64            `json:"total_items"`
	TotalPages int              `json:"total_pages"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}
