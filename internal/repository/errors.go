package repository

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotPending 表示目标记录已被审批过，approved/rejected 是终态
var ErrNotPending = errors.New("记录已被审批，不允许重复审批")

// ConflictError 表示批量登记中存在与已有记录重复的 (员工, 班次, 日期) 三元组
type ConflictError struct {
	ShiftID int64
	Date    time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("班次 %d 在 %s 已有登记记录", e.ShiftID, e.Date.Format("2006-01-02"))
}
