package repository

import (
	"context"
	"time"

	"github.com/hcmus-noc-dev/shift-scheduler/backend/internal/domain"
)

func (r *Repository) CreateChangeRequest(request *domain.ChangeRequest) error {
	query := `
		INSERT INTO change_requests (schedule_id, employee_id, proposed_shift_id, proposed_shift_part, reason)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, status, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{request.ScheduleID, request.EmployeeID, request.ProposedShiftID, request.ProposedShiftPart, request.Reason}
	if err := r.dbpool.QueryRow(ctx, query, args...).Scan(&request.ID, &request.Status, &request.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetChangeRequest(id int64) (*domain.ChangeRequest, error) {
	query := `
		SELECT schedule_id, employee_id, proposed_shift_id, proposed_shift_part, reason, status, created_at
		FROM change_requests WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	request := &domain.ChangeRequest{
		ID: id,
	}

	dst := []any{&request.ScheduleID, &request.EmployeeID, &request.ProposedShiftID, &request.ProposedShiftPart, &request.Reason, &request.Status, &request.CreatedAt}
	if err := r.dbpool.QueryRow(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return request, nil
}

func (r *Repository) GetPendingChangeRequests() ([]*domain.ChangeRequestWithDetails, error) {
	query := `
		SELECT
			cr.id,
			cr.schedule_id,
			cr.employee_id,
			cr.proposed_shift_id,
			cr.proposed_shift_part,
			cr.reason,
			cr.status,
			cr.created_at,
			e.full_name,
			e.department,
			sa.schedule_date,
			cs.name,
			ps.name
		FROM change_requests cr
		JOIN employees e ON cr.employee_id = e.id
		JOIN schedule_assignments sa ON cr.schedule_id = sa.id
		JOIN shifts cs ON sa.shift_id = cs.id
		JOIN shifts ps ON cr.proposed_shift_id = ps.id
		WHERE cr.status = 'pending'
		ORDER BY cr.created_at ASC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]*domain.ChangeRequestWithDetails, 0)
	for rows.Next() {
		request := &domain.ChangeRequestWithDetails{}
		dst := []any{
			&request.ID,
			&request.ScheduleID,
			&request.EmployeeID,
			&request.ProposedShiftID,
			&request.ProposedShiftPart,
			&request.Reason,
			&request.Status,
			&request.CreatedAt,
			&request.FullName,
			&request.Department,
			&request.ScheduleDate,
			&request.CurrentShiftName,
			&request.ProposedShiftName,
		}
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
