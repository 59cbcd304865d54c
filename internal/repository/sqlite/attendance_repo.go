package sqlite

import (
	"database/sql"
	"errors"
	"time"

	"hrms-lite/internal/domain"

	"github.com/mattn/go-sqlite3"
)

const dateLayout = "2006-01-02"

type SqliteAttendanceRepo struct {
	db *sql.DB
}

func NewAttendanceRepo(db *sql.DB) *SqliteAttendanceRepo {
	return &SqliteAttendanceRepo{db: db}
}

// Upsert inserts the record or overwrites the status of the existing one in a
// single statement, so concurrent calls for the same (employee_id, date) key
// can never produce two rows.
func (r *SqliteAttendanceRepo) Upsert(a domain.Attendance) (domain.AttendanceRecord, error) {
	_, err := r.db.Exec(
		`INSERT INTO attendance (employee_id, attendance_date, status) VALUES (?, ?, ?)
		 ON CONFLICT(employee_id, attendance_date) DO UPDATE SET status = excluded.status`,
		a.EmployeeID,
		a.Date.Format(dateLayout),
		string(a.Status),
	)
	if err != nil {
		var se sqlite3.Error
		if errors.As(err, &se) && se.ExtendedCode == sqlite3.ErrConstraintForeignKey {
			return domain.AttendanceRecord{}, domain.ErrEmployeeNotFound
		}
		return domain.AttendanceRecord{}, err
	}

	row := r.db.QueryRow(
		`SELECT a.id, a.employee_id, a.attendance_date, a.status, e.full_name
		 FROM attendance a JOIN employees e ON e.employee_id = a.employee_id
		 WHERE a.employee_id = ? AND a.attendance_date = ?`,
		a.EmployeeID,
		a.Date.Format(dateLayout),
	)
	return scanRecord(row)
}

// UpdateByID applies a partial update to a record addressed by surrogate id.
// The existence check, the collision check against the composite key and the
// write happen in one transaction.
func (r *SqliteAttendanceRepo) UpdateByID(id int, date *time.Time, status *domain.AttendanceStatus) (domain.AttendanceRecord, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return domain.AttendanceRecord{}, err
	}
	defer tx.Rollback()

	var employeeID, dateStr, statusStr string
	err = tx.QueryRow(
		`SELECT employee_id, attendance_date, status FROM attendance WHERE id = ?`, id,
	).Scan(&employeeID, &dateStr, &statusStr)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.AttendanceRecord{}, domain.ErrAttendanceNotFound
	}
	if err != nil {
		return domain.AttendanceRecord{}, err
	}

	if date != nil {
		dateStr = date.Format(dateLayout)
	}
	if status != nil {
		statusStr = string(*status)
	}

	var clash int
	err = tx.QueryRow(
		`SELECT COUNT(*) FROM attendance WHERE employee_id = ? AND attendance_date = ? AND id != ?`,
		employeeID, dateStr, id,
	).Scan(&clash)
	if err != nil {
		return domain.AttendanceRecord{}, err
	}
	if clash > 0 {
		return domain.AttendanceRecord{}, domain.ErrAttendanceExists
	}

	if _, err := tx.Exec(
		`UPDATE attendance SET attendance_date = ?, status = ? WHERE id = ?`,
		dateStr, statusStr, id,
	); err != nil {
		return domain.AttendanceRecord{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.AttendanceRecord{}, err
	}

	row := r.db.QueryRow(
		`SELECT a.id, a.employee_id, a.attendance_date, a.status, e.full_name
		 FROM attendance a JOIN employees e ON e.employee_id = a.employee_id
		 WHERE a.id = ?`, id,
	)
	return scanRecord(row)
}

// List returns records joined with active employees only, so attendance of a
// soft-deleted employee is invisible to callers.
func (r *SqliteAttendanceRepo) List(employeeID string, date *time.Time) ([]domain.AttendanceRecord, error) {
	q := `SELECT a.id, a.employee_id, a.attendance_date, a.status, e.full_name
	      FROM attendance a
	      JOIN employees e ON e.employee_id = a.employee_id AND e.deleted_at IS NULL`
	args := []any{}
	where := ""
	if employeeID != "" {
		where += ` AND a.employee_id = ?`
		args = append(args, employeeID)
	}
	if date != nil {
		where += ` AND a.attendance_date = ?`
		args = append(args, date.Format(dateLayout))
	}
	if where != "" {
		q += ` WHERE 1=1` + where
	}
	q += ` ORDER BY a.attendance_date DESC, a.id DESC`

	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.AttendanceRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *SqliteAttendanceRepo) CountForDate(date time.Time, status domain.AttendanceStatus) (int, error) {
	var n int
	err := r.db.QueryRow(
		`SELECT COUNT(*) FROM attendance a
		 JOIN employees e ON e.employee_id = a.employee_id AND e.deleted_at IS NULL
		 WHERE a.attendance_date = ? AND a.status = ?`,
		date.Format(dateLayout),
		string(status),
	).Scan(&n)
	return n, err
}

func scanRecord(row rowScanner) (domain.AttendanceRecord, error) {
	var rec domain.AttendanceRecord
	var dateStr, statusStr string
	err := row.Scan(&rec.ID, &rec.EmployeeID, &dateStr, &statusStr, &rec.FullName)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.AttendanceRecord{}, domain.ErrAttendanceNotFound
	}
	if err != nil {
		return domain.AttendanceRecord{}, err
	}
	rec.Date, err = time.Parse(dateLayout, dateStr)
	if err != nil {
		return domain.AttendanceRecord{}, err
	}
	rec.Status = domain.AttendanceStatus(statusStr)
	return rec, nil
}
