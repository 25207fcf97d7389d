package repository

import (
	"context"
	"time"

	"github.com/hcmus-noc-dev/shift-scheduler/backend/internal/domain"
)

func (r *Repository) CreateLeaveRequest(request *domain.LeaveRequest) error {
	query := `
		INSERT INTO leave_requests (employee_id, leave_type, start_date, end_date, reason)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, status, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{request.EmployeeID, request.LeaveType, request.StartDate, request.EndDate, request.Reason}
	if err := r.dbpool.QueryRow(ctx, query, args...).Scan(&request.ID, &request.Status, &request.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetLeaveRequest(id int64) (*domain.LeaveRequest, error) {
	query := `
		SELECT employee_id, leave_type, start_date, end_date, reason, status, created_at
		FROM leave_requests WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	request := &domain.LeaveRequest{
		ID: id,
	}

	dst := []any{&request.EmployeeID, &request.LeaveType, &request.StartDate, &request.EndDate, &request.Reason, &request.Status, &request.CreatedAt}
	if err := r.dbpool.QueryRow(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return request, nil
}

func (r *Repository) GetLeaveRequestsByEmployee(employeeID int64) ([]*domain.LeaveRequest, error) {
	query := `
		SELECT id, leave_type, start_date, end_date, reason, status, created_at
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]*domain.LeaveRequest, 0)
	for rows.Next() {
		request := &domain.LeaveRequest{
			EmployeeID: employeeID,
		}
		dst := []any{&request.ID, &request.LeaveType, &request.StartDate, &request.EndDate, &request.Reason, &request.Status, &request.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

func (r *Repository) GetPendingLeaveRequests() ([]*domain.LeaveRequestWithEmployee, error) {
	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date, lr.reason, lr.status, lr.created_at, e.full_name, e.department
		FROM leave_requests lr
		JOIN employees e ON lr.employee_id = e.id
		WHERE lr.status = 'pending'
		ORDER BY lr.created_at ASC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]*domain.LeaveRequestWithEmployee, 0)
	for rows.Next() {
		request := &domain.LeaveRequestWithEmployee{}
		dst := []any{&request.ID, &request.EmployeeID, &request.LeaveType, &request.StartDate, &request.EndDate, &request.Reason, &request.Status, &request.CreatedAt, &request.FullName, &request.Department}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
