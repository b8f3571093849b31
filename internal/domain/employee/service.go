package employee

import "context"

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// GetEmployee returns the aggregate document: parent scalars plus eight
	// child collections plus leave balances, fetched concurrently.
	GetEmployee(ctx context.Context, id int64) (EmployeeDetailResponse, error)

	// CreateEmployee creates a new employee
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee applies the typed patch plus child-collection upserts in
	// one transaction
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee soft deletes an employee
	DeleteEmployee(ctx context.Context, id int64) error

	// ListEmployees lists employees with filters and pagination
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)
}
