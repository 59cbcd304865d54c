package sqlite

import (
	"database/sql"
	"errors"
	"time"

	"hrms-lite/internal/domain"

	"github.com/mattn/go-sqlite3"
)

type SqliteEmployeeRepo struct {
	db *sql.DB
}

func NewEmployeeRepo(db *sql.DB) *SqliteEmployeeRepo {
	return &SqliteEmployeeRepo{db: db}
}

func (r *SqliteEmployeeRepo) Create(e domain.Employee) (domain.Employee, error) {
	e.CreatedAt = time.Now().UTC().Truncate(time.Second)
	res, err := r.db.Exec(
		`INSERT INTO employees (employee_id, full_name, email, department, created_at) VALUES (?, ?, ?, ?, ?)`,
		e.EmployeeID,
		e.FullName,
		e.Email,
		e.Department,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		var se sqlite3.Error
		if errors.As(err, &se) && se.ExtendedCode == sqlite3.ErrConstraintUnique {
			return domain.Employee{}, domain.ErrEmployeeExists
		}
		return domain.Employee{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Employee{}, err
	}
	e.ID = int(id)
	return e, nil
}

func (r *SqliteEmployeeRepo) GetByEmployeeID(employeeID string) (domain.Employee, error) {
	row := r.db.QueryRow(
		`SELECT id, employee_id, full_name, email, department, created_at FROM employees WHERE employee_id = ? AND deleted_at IS NULL`,
		employeeID,
	)
	return scanEmployee(row)
}

func (r *SqliteEmployeeRepo) Search(query string) ([]domain.Employee, error) {
	q := `SELECT id, employee_id, full_name, email, department, created_at FROM employees WHERE deleted_at IS NULL`
	args := []any{}
	if query != "" {
		q += ` AND (employee_id LIKE ? OR full_name LIKE ? OR email LIKE ? OR department LIKE ?)`
		like := "%" + query + "%"
		args = append(args, like, like, like, like)
	}
	q += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *SqliteEmployeeRepo) SoftDelete(employeeID string) error {
	res, err := r.db.Exec(
		`UPDATE employees SET deleted_at = ? WHERE employee_id = ? AND deleted_at IS NULL`,
		time.Now().UTC().Format(time.RFC3339),
		employeeID,
	)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *SqliteEmployeeRepo) CountActive() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM employees WHERE deleted_at IS NULL`).Scan(&n)
	return n, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (domain.Employee, error) {
	var e domain.Employee
	var createdAt string
	err := row.Scan(&e.ID, &e.EmployeeID, &e.FullName, &e.Email, &e.Department, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Employee{}, domain.ErrEmployeeNotFound
	}
	if err != nil {
		return domain.Employee{}, err
	}
	e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return domain.Employee{}, err
	}
	return e, nil
}
