package domain

import "time"

type Employee struct {
	ID         int
	EmployeeID string
	FullName   string
	Email      string
	Department string
	CreatedAt  time.Time
	DeletedAt  *time.Time
}

type EmployeeRepo interface {
	Create(e Employee) (Employee, error)
	GetByEmployeeID(employeeID string) (Employee, error)
	Search(query string) ([]Employee, error)
	SoftDelete(employeeID string) error
	CountActive() (int, error)
}
