package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"workforce/internal/analytics"
)

type Postgres struct {
	Pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{Pool: pool}
}

// Load reads all five tables inside one repeatable-read read-only
// transaction so the pipeline sees a consistent snapshot even while
// writers are active.
func (p *Postgres) Load(ctx context.Context) (analytics.Snapshot, error) {
	var snap analytics.Snapshot

	tx, err := p.Pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return snap, fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := tx.Query(ctx, "SELECT id, name, department_id, hire_date, termination_date FROM employees")
	if err != nil {
		return snap, fmt.Errorf("load employees: %w", err)
	}
	for rows.Next() {
		var e analytics.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.DepartmentID, &e.HireDate, &e.TerminationDate); err != nil {
			rows.Close()
			return snap, fmt.Errorf("scan employee: %w", err)
		}
		snap.Employees = append(snap.Employees, e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return snap, fmt.Errorf("load employees: %w", err)
	}

	rows, err = tx.Query(ctx, "SELECT id, name FROM departments")
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

	rows, err = tx.Query(ctx, "SELECT id, name FROM projects")
	if err != nil {
		return snap, fmt.Errorf("load projects: %w", err)
	}
	for rows.Next() {
		var pr analytics.Project
		if err := rows.Scan(&pr.ID, &pr.Name); err != nil {
			rows.Close()
			return snap, fmt.Errorf("scan project: %w", err)
		}
		snap.Projects = append(snap.Projects, pr)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return snap, fmt.Errorf("load projects: %w", err)
	}

	rows, err = tx.Query(ctx, "SELECT id, employee_id, score FROM performance_reviews")
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

	rows, err = tx.Query(ctx, "SELECT employee_id, salary FROM salaries")
	if err != nil {
		return snap, fmt.Errorf("load salaries: %w", err)
	}
	for rows.Next() {
		var s analytics.Salary
		if err := rows.Scan(&s.EmployeeID, &s.Salary); err != nil {
			rows.Close()
			return snap, fmt.Errorf("scan salary: %w", err)
		}
		snap.Salaries = append(snap.Salaries, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return snap, fmt.Errorf("load salaries: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return snap, fmt.Errorf("close snapshot tx: %w", err)
	}
	return snap, nil
}
