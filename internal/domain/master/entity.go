package master

import "time"

// Kind selects which lookup table an operation targets. Designations, roles,
// employee statuses and allowance types share one shape (id + name), so they
// share one domain type instead of four copies.
type Kind string

const (
	KindDesignation    Kind = "designation"
	KindRole           Kind = "role"
	KindEmployeeStatus Kind = "employee_status"
	KindAllowanceType  Kind = "allowance_type"
)

func (k Kind) Valid() bool {
	switch k {
	case KindDesignation, KindRole, KindEmployeeStatus, KindAllowanceType:
		return true
	}
	return false
}

// Table returns the backing table name for the kind.
func (k Kind) Table() string {
	switch k {
	case KindDesignation:
		return "designations"
	case KindRole:
		return "roles"
	case KindEmployeeStatus:
		return "employee_statuses"
	case KindAllowanceType:
		return "allowance_types"
	}
	return ""
}

type Lookup struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
