package employee

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrEmailExists       = errors.New("email already registered to another employee")
	ErrCodeExists        = errors.New("employee code already exists")
	ErrChildNotFound     = errors.New("child record not found for this employee")
	ErrInvalidSalaryLine = errors.New("salary line amount is not a valid number")
)
