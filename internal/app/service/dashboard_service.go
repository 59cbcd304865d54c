package service

import (
	"time"

	"hrms-lite/internal/domain"
)

type DashboardService struct {
	Employees  domain.EmployeeRepo
	Attendance domain.AttendanceRepo
}

func NewDashboardService(employees domain.EmployeeRepo, attendance domain.AttendanceRepo) *DashboardService {
	return &DashboardService{Employees: employees, Attendance: attendance}
}

// Summary computes the three dashboard counts against the current date.
// No caching, every call reads fresh.
func (s *DashboardService) Summary() (domain.DashboardSummary, error) {
	today := time.Now()

	total, err := s.Employees.CountActive()
	if err != nil {
		return domain.DashboardSummary{}, err
	}
	present, err := s.Attendance.CountForDate(today, domain.StatusPresent)
	if err != nil {
		return domain.DashboardSummary{}, err
	}
	absent, err := s.Attendance.CountForDate(today, domain.StatusAbsent)
	if err != nil {
		return domain.DashboardSummary{}, err
	}

	return domain.DashboardSummary{
		TotalEmployees: total,
		PresentToday:   present,
		AbsentToday:    absent,
	}, nil
}
