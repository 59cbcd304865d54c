package sqlite

import (
	"database/sql"
)

const createEmployeesTable = `
CREATE TABLE IF NOT EXISTS employees (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    employee_id TEXT NOT NULL UNIQUE,
    full_name TEXT NOT NULL,
    email TEXT NOT NULL,
    department TEXT NOT NULL,
    created_at TEXT NOT NULL,
    deleted_at TEXT
);
`

const createAttendanceTable = `
CREATE TABLE IF NOT EXISTS attendance (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    employee_id TEXT NOT NULL REFERENCES employees(employee_id) ON DELETE CASCADE,
    attendance_date TEXT NOT NULL,
    status TEXT NOT NULL CHECK (status IN ('Present', 'Absent')),
    UNIQUE (employee_id, attendance_date)
);
`

const createAttendanceDateIndex = `
CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance(attendance_date);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(createEmployeesTable); err != nil {
		return err
	}
	if _, err := db.Exec(createAttendanceTable); err != nil {
		return err
	}
	if _, err := db.Exec(createAttendanceDateIndex); err != nil {
		return err
	}
	return nil
}
