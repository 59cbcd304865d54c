package service

import (
	"testing"
	"time"

	"hrms-lite/internal/domain"
)

func TestSummaryEmpty(t *testing.T) {
	_, _, dashboard := newTestServices(t)

	s, err := dashboard.Summary()
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if s.TotalEmployees != 0 || s.PresentToday != 0 || s.AbsentToday != 0 {
		t.Errorf("expected empty summary, got %+v", s)
	}
}

func TestSummaryCountsToday(t *testing.T) {
	employees, attendance, dashboard := newTestServices(t)
	registerTestEmployee(t, employees, "E1", "Ann Lee")
	registerTestEmployee(t, employees, "E2", "Bob Stone")

	today := time.Now()
	if _, err := attendance.Mark("E1", today, domain.StatusPresent); err != nil {
		t.Fatalf("Mark failed: %v", err)
	}
	if _, err := attendance.Mark("E2", today, domain.StatusAbsent); err != nil {
		t.Fatalf("Mark failed: %v", err)
	}
	// attendance on other days must not leak into today's counts
	if _, err := attendance.Mark("E1", today.AddDate(0, 0, -1), domain.StatusAbsent); err != nil {
		t.Fatalf("Mark failed: %v", err)
	}

	s, err := dashboard.Summary()
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if s.TotalEmployees != 2 {
		t.Errorf("expected 2 employees, got %d", s.TotalEmployees)
	}
	if s.PresentToday != 1 {
		t.Errorf("expected 1 present, got %d", s.PresentToday)
	}
	if s.AbsentToday != 1 {
		t.Errorf("expected 1 absent, got %d", s.AbsentToday)
	}
}

func TestSummaryExcludesDeletedEmployees(t *testing.T) {
	employees, attendance, dashboard := newTestServices(t)
	registerTestEmployee(t, employees, "E1", "Ann Lee")
	registerTestEmployee(t, employees, "E2", "Bob Stone")

	today := time.Now()
	if _, err := attendance.Mark("E2", today, domain.StatusAbsent); err != nil {
		t.Fatalf("Mark failed: %v", err)
	}
	if err := employees.Delete("E2"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	s, err := dashboard.Summary()
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if s.TotalEmployees != 1 {
		t.Errorf("expected 1 employee, got %d", s.TotalEmployees)
	}
	if s.AbsentToday != 0 {
		t.Errorf("expected deleted employee's attendance excluded, got %d", s.AbsentToday)
	}
}
