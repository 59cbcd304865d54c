package http

import (
	"errors"
	"log"
	"strings"
	"time"

	"hrms-lite/internal/app/service"
	"hrms-lite/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	Employees  *service.EmployeeService
	Attendance *service.AttendanceService
	Dashboard  *service.DashboardService
	Validate   *validator.Validate
}

func NewHandler(employees *service.EmployeeService, attendance *service.AttendanceService, dashboard *service.DashboardService) *Handler {
	return &Handler{
		Employees:  employees,
		Attendance: attendance,
		Dashboard:  dashboard,
		Validate:   validator.New(),
	}
}

func (h *Handler) CreateEmployee(c *fiber.Ctx) error {
	var req CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid payload."})
	}
	req.EmployeeID = strings.TrimSpace(req.EmployeeID)
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(req.Email)
	req.Department = strings.TrimSpace(req.Department)
	if err := h.Validate.Struct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"detail": err.Error()})
	}

	emp, err := h.Employees.Register(req.EmployeeID, req.FullName, req.Email, req.Department)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newEmployeeResponse(emp))
}

func (h *Handler) ListEmployees(c *fiber.Ctx) error {
	employees, err := h.Employees.List(c.Query("q"))
	if err != nil {
		return h.fail(c, err)
	}
	items := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		items = append(items, newEmployeeResponse(e))
	}
	return c.JSON(EmployeeListResponse{Total: len(items), Items: items})
}

func (h *Handler) DeleteEmployee(c *fiber.Ctx) error {
	if err := h.Employees.Delete(c.Params("employee_id")); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) UpsertAttendance(c *fiber.Ctx) error {
	var req UpsertAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid payload."})
	}
	req.EmployeeID = strings.TrimSpace(req.EmployeeID)
	if err := h.Validate.Struct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"detail": err.Error()})
	}

	date, _ := time.Parse("2006-01-02", req.AttendanceDate)
	rec, err := h.Attendance.Mark(req.EmployeeID, date, domain.AttendanceStatus(req.Status))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(newAttendanceResponse(rec))
}

func (h *Handler) UpdateAttendance(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Attendance record not found"})
	}

	var req UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid payload."})
	}
	if err := h.Validate.Struct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"detail": err.Error()})
	}

	var date *time.Time
	if req.AttendanceDate != nil {
		d, _ := time.Parse("2006-01-02", *req.AttendanceDate)
		date = &d
	}
	var status *domain.AttendanceStatus
	if req.Status != nil {
		s := domain.AttendanceStatus(*req.Status)
		status = &s
	}

	rec, err := h.Attendance.Update(id, date, status)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(newAttendanceResponse(rec))
}

func (h *Handler) ListAttendance(c *fiber.Ctx) error {
	var date *time.Time
	if raw := c.Query("date"); raw != "" {
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"detail": "Invalid date filter, expected YYYY-MM-DD."})
		}
		date = &d
	}

	records, err := h.Attendance.List(c.Query("employee_id"), date)
	if err != nil {
		return h.fail(c, err)
	}
	items := make([]AttendanceResponse, 0, len(records))
	for _, rec := range records {
		items = append(items, newAttendanceResponse(rec))
	}
	return c.JSON(AttendanceListResponse{Total: len(items), Items: items})
}

func (h *Handler) DashboardSummary(c *fiber.Ctx) error {
	summary, err := h.Dashboard.Summary()
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(DashboardSummaryResponse{
		TotalEmployees: summary.TotalEmployees,
		PresentToday:   summary.PresentToday,
		AbsentToday:    summary.AbsentToday,
	})
}

// fail maps domain errors to status codes. Anything unknown is a store-side
// failure and surfaces as 500.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmployeeExists):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"detail": "Employee with this employee_id already exists."})
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Employee not found."})
	case errors.Is(err, domain.ErrAttendanceNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Attendance record not found"})
	case errors.Is(err, domain.ErrAttendanceExists):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"detail": "Attendance already recorded for this employee and date."})
	default:
		log.Printf("[http] %s %s: %v", c.Method(), c.OriginalURL(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal server error."})
	}
}
