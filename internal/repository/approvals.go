package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hcmus-noc-dev/shift-scheduler/backend/internal/domain"
	"github.com/jackc/pgx/v5"
)

// 三类待审批记录共用同一套状态机：只有 pending 的记录允许被审批，
// approved/rejected 是终态。decide 按表名复用同一条 SQL，
// 表名只能来自下面的白名单，绝不拼接外部输入。
func (r *Repository) decide(table string, id int64, status domain.ReviewStatus) error {
	query := fmt.Sprintf(`
		UPDATE %s SET status = $1
		WHERE id = $2 AND status = 'pending'
		RETURNING id
	`, table)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var updatedID int64
	err := r.dbpool.QueryRow(ctx, query, status, id).Scan(&updatedID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	// 没有命中 pending 的行，需要区分是记录不存在还是已被审批。
	// 这次探测和上面的 UPDATE 不在同一事务里，记录不会被删除，
	// 两次查询之间状态只可能从 pending 变为终态，结论不受影响
	existsQuery := fmt.Sprintf(`
		SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)
	`, table)

	exists := false
	if err := r.dbpool.QueryRow(ctx, existsQuery, id).Scan(&exists); err != nil {
		return err
	}

	if !exists {
		return pgx.ErrNoRows
	}

	return ErrNotPending
}

// DecideScheduleAssignment 审批一条排班登记并返回更新后的记录。
func (r *Repository) DecideScheduleAssignment(id int64, status domain.ReviewStatus) (*domain.ScheduleAssignment, error) {
	if err := r.decide("schedule_assignments", id, status); err != nil {
		return nil, err
	}

	return r.GetScheduleAssignment(id)
}

// DecideLeaveRequest 审批一条请假申请并返回更新后的记录。
func (r *Repository) DecideLeaveRequest(id int64, status domain.ReviewStatus) (*domain.LeaveRequest, error) {
	if err := r.decide("leave_requests", id, status); err != nil {
		return nil, err
	}

	return r.GetLeaveRequest(id)
}

// DecideChangeRequest 审批一条换班申请并返回更新后的记录。
// 审批通过不会改写被引用的排班登记，换班的落实由管理员另行操作。
func (r *Repository) DecideChangeRequest(id int64, status domain.ReviewStatus) (*domain.ChangeRequest, error) {
	if err := r.decide("change_requests", id, status); err != nil {
		return nil, err
	}

	return r.GetChangeRequest(id)
}
