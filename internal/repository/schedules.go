package repository

import (
	"context"
	"errors"
	"time"

	"github.com/hcmus-noc-dev/shift-scheduler/backend/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

// RegisterSchedules 批量登记排班。整批先做冲突预检，全部通过后再逐条插入，
// 预检和插入在同一个事务中进行，任何一条冲突都会使整批失败且不产生任何写入。
// (employee_id, shift_id, schedule_date) 上的唯一约束是最终防线，
// 并发窗口内漏过预检的重复插入同样会被归为冲突错误。
func (r *Repository) RegisterSchedules(employeeID int64, assignments []*domain.ScheduleAssignment) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	for _, assignment := range assignments {
		query := `
			SELECT EXISTS (
				SELECT 1 FROM schedule_assignments
				WHERE employee_id = $1 AND shift_id = $2 AND schedule_date = $3
			)
		`

		exists := false
		if err := tx.QueryRow(ctx, query, employeeID, assignment.ShiftID, assignment.Date).Scan(&exists); err != nil {
			return err
		}

		if exists {
			return &ConflictError{ShiftID: assignment.ShiftID, Date: assignment.Date}
		}
	}

	for _, assignment := range assignments {
		query := `
			INSERT INTO schedule_assignments (employee_id, shift_id, schedule_date, shift_part)
			VALUES ($1, $2, $3, $4)
			RETURNING id, status, created_at
		`

		args := []any{employeeID, assignment.ShiftID, assignment.Date, assignment.ShiftPart}
		if err := tx.QueryRow(ctx, query, args...).Scan(&assignment.ID, &assignment.Status, &assignment.CreatedAt); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.ConstraintName == "schedule_assignments_employee_shift_date_key" {
				return &ConflictError{ShiftID: assignment.ShiftID, Date: assignment.Date}
			}
			return err
		}
		assignment.EmployeeID = employeeID
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetScheduleAssignment(id int64) (*domain.ScheduleAssignment, error) {
	query := `
		SELECT employee_id, shift_id, schedule_date, shift_part, status, created_at
		FROM schedule_assignments WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	assignment := &domain.ScheduleAssignment{
		ID: id,
	}

	dst := []any{&assignment.EmployeeID, &assignment.ShiftID, &assignment.Date, &assignment.ShiftPart, &assignment.Status, &assignment.CreatedAt}
	if err := r.dbpool.QueryRow(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return assignment, nil
}

func (r *Repository) GetSchedulesByEmployee(employeeID int64, month int, year int) ([]*domain.ScheduleEntry, error) {
	query := `
		SELECT sa.id, sa.schedule_date, s.name, sa.shift_part, sa.status
		FROM schedule_assignments sa
		JOIN shifts s ON sa.shift_id = s.id
		WHERE sa.employee_id = $1
			AND EXTRACT(MONTH FROM sa.schedule_date) = $2
			AND EXTRACT(YEAR FROM sa.schedule_date) = $3
		ORDER BY sa.schedule_date ASC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.Query(ctx, query, employeeID, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.ScheduleEntry, 0)
	for rows.Next() {
		entry := &domain.ScheduleEntry{}
		if err := rows.Scan(&entry.ID, &entry.Date, &entry.ShiftName, &entry.ShiftPart, &entry.Status); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *Repository) GetAllSchedules(month int, year int, department string) ([]*domain.AdminScheduleEntry, error) {
	query := `
		SELECT sa.id, e.full_name, e.department, sa.schedule_date, s.name, sa.shift_part, sa.status
		FROM schedule_assignments sa
		JOIN shifts s ON sa.shift_id = s.id
		JOIN employees e ON sa.employee_id = e.id
		WHERE EXTRACT(MONTH FROM sa.schedule_date) = $1
			AND EXTRACT(YEAR FROM sa.schedule_date) = $2
	`
	args := []any{month, year}

	if department != "" {
		query += ` AND e.department = $3`
		args = append(args, department)
	}
	query += ` ORDER BY sa.schedule_date ASC`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.AdminScheduleEntry, 0)
	for rows.Next() {
		entry := &domain.AdminScheduleEntry{}
		dst := []any{&entry.ID, &entry.FullName, &entry.Department, &entry.Date, &entry.ShiftName, &entry.ShiftPart, &entry.Status}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
