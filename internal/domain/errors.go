package domain

import "errors"

var (
	ErrEmployeeExists     = errors.New("employee with this employee_id already exists")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAttendanceExists   = errors.New("attendance already recorded for this employee and date")
)
