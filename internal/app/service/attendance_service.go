package service

import (
	"time"

	"hrms-lite/internal/domain"
)

type AttendanceService struct {
	Repo      domain.AttendanceRepo
	Employees domain.EmployeeRepo
}

func NewAttendanceService(repo domain.AttendanceRepo, employees domain.EmployeeRepo) *AttendanceService {
	return &AttendanceService{Repo: repo, Employees: employees}
}

// Mark records the given status for an employee and day. Re-marking the same
// day overwrites the status in place, it never creates a second record.
func (s *AttendanceService) Mark(employeeID string, date time.Time, status domain.AttendanceStatus) (domain.AttendanceRecord, error) {
	emp, err := s.Employees.GetByEmployeeID(employeeID)
	if err != nil {
		return domain.AttendanceRecord{}, err
	}
	return s.Repo.Upsert(domain.Attendance{
		EmployeeID: emp.EmployeeID,
		Date:       date,
		Status:     status,
	})
}

func (s *AttendanceService) Update(id int, date *time.Time, status *domain.AttendanceStatus) (domain.AttendanceRecord, error) {
	return s.Repo.UpdateByID(id, date, status)
}

func (s *AttendanceService) List(employeeID string, date *time.Time) ([]domain.AttendanceRecord, error) {
	return s.Repo.List(employeeID, date)
}
