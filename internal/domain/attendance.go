package domain

import "time"

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

func (s AttendanceStatus) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// Attendance is a fact for a day: at most one record may exist per
// (EmployeeID, Date) pair. EmployeeID is the business identifier, not
// the surrogate employees.id.
type Attendance struct {
	ID         int
	EmployeeID string
	Date       time.Time
	Status     AttendanceStatus
}

// AttendanceRecord is an Attendance joined with the owning employee's name.
type AttendanceRecord struct {
	Attendance
	FullName string
}

type AttendanceRepo interface {
	Upsert(a Attendance) (AttendanceRecord, error)
	UpdateByID(id int, date *time.Time, status *AttendanceStatus) (AttendanceRecord, error)
	List(employeeID string, date *time.Time) ([]AttendanceRecord, error)
	CountForDate(date time.Time, status AttendanceStatus) (int, error)
}

type DashboardSummary struct {
	TotalEmployees int
	PresentToday   int
	AbsentToday    int
}
