package user

import "time"

type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         Role
	EmployeeID   *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleEmployee Role = "employee"
)
