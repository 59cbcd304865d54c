package service

import (
	"errors"
	"sync"
	"testing"
	"time"

	"hrms-lite/internal/domain"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestMarkCreatesThenOverwrites(t *testing.T) {
	employees, attendance, _ := newTestServices(t)
	registerTestEmployee(t, employees, "E1", "Ann Lee")

	rec, err := attendance.Mark("E1", day("2024-01-01"), domain.StatusPresent)
	if err != nil {
		t.Fatalf("Mark failed: %v", err)
	}
	if rec.FullName != "Ann Lee" {
		t.Errorf("expected joined full name, got %q", rec.FullName)
	}

	rec2, err := attendance.Mark("E1", day("2024-01-01"), domain.StatusAbsent)
	if err != nil {
		t.Fatalf("Mark failed: %v", err)
	}
	if rec2.ID != rec.ID {
		t.Errorf("expected the same record to be updated, got ids %d and %d", rec.ID, rec2.ID)
	}

	list, err := attendance.List("E1", nil)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(list))
	}
	if list[0].Status != domain.StatusAbsent {
		t.Errorf("expected last status to win, got %s", list[0].Status)
	}
}

func TestMarkRepeatedIsIdempotent(t *testing.T) {
	employees, attendance, _ := newTestServices(t)
	registerTestEmployee(t, employees, "E1", "Ann Lee")

	statuses := []domain.AttendanceStatus{
		domain.StatusPresent, domain.StatusPresent, domain.StatusAbsent,
		domain.StatusPresent, domain.StatusAbsent,
	}
	for _, st := range statuses {
		if _, err := attendance.Mark("E1", day("2024-02-02"), st); err != nil {
			t.Fatalf("Mark failed: %v", err)
		}
	}

	list, err := attendance.List("E1", nil)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected one record after repeated marks, got %d", len(list))
	}
	if list[0].Status != domain.StatusAbsent {
		t.Errorf("expected final status Absent, got %s", list[0].Status)
	}
}

func TestMarkUnknownEmployee(t *testing.T) {
	_, attendance, _ := newTestServices(t)

	_, err := attendance.Mark("NOPE", day("2024-01-01"), domain.StatusPresent)
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestMarkDeletedEmployee(t *testing.T) {
	employees, attendance, _ := newTestServices(t)
	registerTestEmployee(t, employees, "E1", "Ann Lee")
	if err := employees.Delete("E1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	_, err := attendance.Mark("E1", day("2024-01-01"), domain.StatusPresent)
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound for soft-deleted employee, got %v", err)
	}
}

func TestUpdateByID(t *testing.T) {
	employees, attendance, _ := newTestServices(t)
	registerTestEmployee(t, employees, "E1", "Ann Lee")

	rec, err := attendance.Mark("E1", day("2024-01-01"), domain.StatusPresent)
	if err != nil {
		t.Fatalf("Mark failed: %v", err)
	}

	absent := domain.StatusAbsent
	updated, err := attendance.Update(rec.ID, nil, &absent)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Status != domain.StatusAbsent {
		t.Errorf("expected status updated, got %s", updated.Status)
	}
	if !updated.Date.Equal(rec.Date) {
		t.Errorf("expected date unchanged, got %s", updated.Date)
	}

	newDate := day("2024-01-05")
	moved, err := attendance.Update(rec.ID, &newDate, nil)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !moved.Date.Equal(newDate) {
		t.Errorf("expected date moved, got %s", moved.Date)
	}
	if moved.Status != domain.StatusAbsent {
		t.Errorf("expected status preserved, got %s", moved.Status)
	}

	if _, err := attendance.Update(99999, nil, &absent); !errors.Is(err, domain.ErrAttendanceNotFound) {
		t.Fatalf("expected ErrAttendanceNotFound, got %v", err)
	}
}

func TestUpdateByIDDateCollision(t *testing.T) {
	employees, attendance, _ := newTestServices(t)
	registerTestEmployee(t, employees, "E1", "Ann Lee")

	rec1, err := attendance.Mark("E1", day("2024-01-01"), domain.StatusPresent)
	if err != nil {
		t.Fatalf("Mark failed: %v", err)
	}
	if _, err := attendance.Mark("E1", day("2024-01-02"), domain.StatusPresent); err != nil {
		t.Fatalf("Mark failed: %v", err)
	}

	collide := day("2024-01-02")
	_, err = attendance.Update(rec1.ID, &collide, nil)
	if !errors.Is(err, domain.ErrAttendanceExists) {
		t.Fatalf("expected ErrAttendanceExists, got %v", err)
	}

	// the failed update must not have touched the record
	list, err := attendance.List("E1", nil)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 records, got %d", len(list))
	}
}

func TestListAttendanceFilters(t *testing.T) {
	employees, attendance, _ := newTestServices(t)
	registerTestEmployee(t, employees, "E1", "Ann Lee")
	registerTestEmployee(t, employees, "E2", "Bob Stone")

	marks := []struct {
		employeeID string
		date       string
	}{
		{"E1", "2024-01-01"},
		{"E1", "2024-01-02"},
		{"E2", "2024-01-01"},
	}
	for _, m := range marks {
		if _, err := attendance.Mark(m.employeeID, day(m.date), domain.StatusPresent); err != nil {
			t.Fatalf("Mark failed: %v", err)
		}
	}

	all, err := attendance.List("", nil)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
	if !all[0].Date.Equal(day("2024-01-02")) {
		t.Errorf("expected newest date first, got %s", all[0].Date)
	}

	byEmployee, err := attendance.List("E1", nil)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(byEmployee) != 2 {
		t.Errorf("expected 2 records for E1, got %d", len(byEmployee))
	}

	d := day("2024-01-01")
	byDate, err := attendance.List("", &d)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(byDate) != 2 {
		t.Errorf("expected 2 records for date, got %d", len(byDate))
	}

	both, err := attendance.List("E2", &d)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(both) != 1 || both[0].FullName != "Bob Stone" {
		t.Errorf("combined filter failed: %+v", both)
	}
}

func TestDeleteEmployeeRemovesAttendance(t *testing.T) {
	employees, attendance, _ := newTestServices(t)
	registerTestEmployee(t, employees, "E1", "Ann Lee")

	if _, err := attendance.Mark("E1", day("2024-01-01"), domain.StatusPresent); err != nil {
		t.Fatalf("Mark failed: %v", err)
	}
	if _, err := attendance.Mark("E1", day("2024-01-02"), domain.StatusAbsent); err != nil {
		t.Fatalf("Mark failed: %v", err)
	}

	if err := employees.Delete("E1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	list, err := attendance.List("E1", nil)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected no attendance for deleted employee, got %d", len(list))
	}
}

func TestConcurrentMarkSingleRecord(t *testing.T) {
	employees, attendance, _ := newTestServices(t)
	registerTestEmployee(t, employees, "E1", "Ann Lee")

	const callers = 8
	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		status := domain.StatusPresent
		if i%2 == 1 {
			status = domain.StatusAbsent
		}
		wg.Add(1)
		go func(st domain.AttendanceStatus) {
			defer wg.Done()
			if _, err := attendance.Mark("E1", day("2024-03-03"), st); err != nil {
				errs <- err
			}
		}(status)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent Mark failed: %v", err)
	}

	list, err := attendance.List("E1", nil)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected exactly one record after concurrent marks, got %d", len(list))
	}
}
