package master

import "github.com/staffhive/erp-backend-go/internal/pkg/validator"

type CreateLookupRequest struct {
	Name string `json:"name"`
}

func (r CreateLookupRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Name is required"})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Name must not exceed 100 characters"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLookupRequest struct {
	ID   int64  `json:"-"`
	Name string `json:"name"`
}

func (r UpdateLookupRequest) Validate() error {
	return CreateLookupRequest{Name: r.Name}.Validate()
}

type LookupResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
