package repository

import (
	"context"
	"time"

	"github.com/hcmus-noc-dev/shift-scheduler/backend/internal/domain"
)

func (r *Repository) GetEmployeeByCode(code string) (*domain.Employee, error) {
	query := `
		SELECT id, full_name, department, email, password_hash, role, is_password_default, created_at, version
		FROM employees WHERE code = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	employee := &domain.Employee{
		Code: code,
	}

	dst := []any{&employee.ID, &employee.FullName, &employee.Department, &employee.Email, &employee.PasswordHash, &employee.Role, &employee.IsPasswordDefault, &employee.CreatedAt, &employee.Version}
	if err := r.dbpool.QueryRow(ctx, query, code).Scan(dst...); err != nil {
		return nil, err
	}

	return employee, nil
}

func (r *Repository) CreateEmployee(employee *domain.Employee) error {
	query := `
		INSERT INTO employees (code, full_name, department, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, is_password_default, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{employee.Code, employee.FullName, employee.Department, employee.Email, employee.PasswordHash, employee.Role}
	if err := r.dbpool.QueryRow(ctx, query, args...).Scan(&employee.ID, &employee.IsPasswordDefault, &employee.CreatedAt, &employee.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateEmployee(employee *domain.Employee) error {
	query := `
		UPDATE employees
		SET
			full_name = $1,
			department = $2,
			email = $3,
			password_hash = $4,
			role = $5,
			is_password_default = $6,
			version = version + 1
		WHERE id = $7 AND version = $8
		RETURNING code, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{employee.FullName, employee.Department, employee.Email, employee.PasswordHash, employee.Role, employee.IsPasswordDefault, employee.ID, employee.Version}
	dst := []any{&employee.Code, &employee.CreatedAt, &employee.Version}
	if err := r.dbpool.QueryRow(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllEmployees() ([]*domain.Employee, error) {
	query := `
		SELECT id, code, full_name, department, email, password_hash, role, is_password_default, created_at, version
		FROM employees
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		employee := &domain.Employee{}
		dst := []any{&employee.ID, &employee.Code, &employee.FullName, &employee.Department, &employee.Email, &employee.PasswordHash, &employee.Role, &employee.IsPasswordDefault, &employee.CreatedAt, &employee.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
