package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"workforce/internal/analytics"
)

// SQLite reads snapshots from a local database file, handy for offline
// report runs against an exported copy of the tables.
type SQLite struct {
	DB *sql.DB
}

func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path+"?_loc=UTC")
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	return &SQLite{DB: db}, nil
}

func (s *SQLite) Close() error {
	return s.DB.Close()
}

func (s *SQLite) Load(ctx context.Context) (analytics.Snapshot, error) {
	var snap analytics.Snapshot

	tx, err := s.DB.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return snap, fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.QueryContext(ctx, "SELECT id, name, department_id, hire_date, termination_date FROM employees")
	if err != nil {
		return snap, fmt.Errorf("load employees: %w", err)
	}
	for rows.Next() {
		var e analytics.Employee
		var terminated sql.NullTime
		if err := rows.Scan(&e.ID, &e.Name, &e.DepartmentID, &e.HireDate, &terminated); err != nil {
			rows.Close()
			return snap, fmt.Errorf("scan employee: %w", err)
		}
		if terminated.Valid {
			e.TerminationDate = &terminated.Time
		}
		snap.Employees = append(snap.Employees, e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return snap, fmt.Errorf("load employees: %w", err)
	}

	rows, err = tx.QueryContext(ctx, "SELECT id, name FROM departments")
	if err != nil {
		return snap, fmt.Errorf("load departments: %w", err)
	}
	for rows.Next() {
		var d analytics.Department
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			rows.Close()
			return snap, fmt.Errorf("scan department: %w", err)
		}
		snap.Departments = append(snap.Departments, d)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return snap, fmt.Errorf("load departments: %w", err)
	}

	rows, err = tx.QueryContext(ctx, "SELECT id, name FROM projects")
	if err != nil {
		return snap, fmt.Errorf("load projects: %w", err)
	}
	for rows.Next() {
		var p analytics.Project
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			rows.Close()
			return snap, fmt.Errorf("scan project: %w", err)
		}
		snap.Projects = append(snap.Projects, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return snap, fmt.Errorf("load projects: %w", err)
	}

	rows, err = tx.QueryContext(ctx, "SELECT id, employee_id, score FROM performance_reviews")
	if err != nil {
		return snap, fmt.Errorf("load reviews: %w", err)
	}
	for rows.Next() {
		var r analytics.PerformanceReview
		if err := rows.Scan(&r.ID, &r.EmployeeID, &r.Score); err != nil {
			rows.Close()
			return snap, fmt.Errorf("scan review: %w", err)
		}
		snap.Reviews = append(snap.Reviews, r)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return snap, fmt.Errorf("load reviews: %w", err)
	}

	rows, err = tx.QueryContext(ctx, "SELECT employee_id, salary FROM salaries")
	if err != nil {
		return snap, fmt.Errorf("load salaries: %w", err)
	}
	for rows.Next() {
		var sal analytics.Salary
		if err := rows.Scan(&sal.EmployeeID, &sal.Salary); err != nil {
			rows.Close()
			return snap, fmt.Errorf("scan salary: %w", err)
		}
		snap.Salaries = append(snap.Salaries, sal)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return snap, fmt.Errorf("load salaries: %w", err)
	}

	return snap, nil
}
