package service

import (
	"errors"

	"hrms-lite/internal/domain"
)

type EmployeeService struct {
	Repo domain.EmployeeRepo
}

func NewEmployeeService(repo domain.EmployeeRepo) *EmployeeService {
	return &EmployeeService{Repo: repo}
}

// Register creates a new employee. The pre-check keeps the common duplicate
// case cheap; the unique index in the store is the backstop against races.
func (s *EmployeeService) Register(employeeID, fullName, email, department string) (domain.Employee, error) {
	_, err := s.Repo.GetByEmployeeID(employeeID)
	if err == nil {
		return domain.Employee{}, domain.ErrEmployeeExists
	}
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		return domain.Employee{}, err
	}
	return s.Repo.Create(domain.Employee{
		EmployeeID: employeeID,
		FullName:   fullName,
		Email:      email,
		Department: department,
	})
}

func (s *EmployeeService) List(query string) ([]domain.Employee, error) {
	return s.Repo.Search(query)
}

func (s *EmployeeService) Delete(employeeID string) error {
	return s.Repo.SoftDelete(employeeID)
}
