package http

import (
	"time"

	"hrms-lite/internal/domain"
)

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,max=50"`
	FullName   string `json:"full_name" validate:"required,max=255"`
	Email      string `json:"email" validate:"required,email"`
	Department string `json:"department" validate:"required,max=255"`
}

type EmployeeResponse struct {
	ID         int    `json:"id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	CreatedAt  string `json:"created_at"`
}

type EmployeeListResponse struct {
	Total int                `json:"total"`
	Items []EmployeeResponse `json:"items"`
}

type UpsertAttendanceRequest struct {
	EmployeeID     string `json:"employee_id" validate:"required,max=50"`
	AttendanceDate string `json:"attendance_date" validate:"required,datetime=2006-01-02"`
	Status         string `json:"status" validate:"required,oneof=Present Absent"`
}

type UpdateAttendanceRequest struct {
	AttendanceDate *string `json:"attendance_date" validate:"omitempty,datetime=2006-01-02"`
	Status         *string `json:"status" validate:"omitempty,oneof=Present Absent"`
}

type AttendanceResponse struct {
	ID             int    `json:"id"`
	EmployeeID     string `json:"employee_id"`
	FullName       string `json:"full_name"`
	AttendanceDate string `json:"attendance_date"`
	Status         string `json:"status"`
}

type AttendanceListResponse struct {
	Total int                  `json:"total"`
	Items []AttendanceResponse `json:"items"`
}

type DashboardSummaryResponse struct {
	TotalEmployees int `json:"total_employees"`
	PresentToday   int `json:"present_today"`
	AbsentToday    int `json:"absent_today"`
}

func newEmployeeResponse(e domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		FullName:   e.FullName,
		Email:      e.Email,
		Department: e.Department,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
	}
}

func newAttendanceResponse(rec domain.AttendanceRecord) AttendanceResponse {
	return AttendanceResponse{
		ID:             rec.ID,
		EmployeeID:     rec.EmployeeID,
		FullName:       rec.FullName,
		AttendanceDate: rec.Date.Format("2006-01-02"),
		Status:         string(rec.Status),
	}
}
