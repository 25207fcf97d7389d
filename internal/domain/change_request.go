package domain

import (
	"time"
)

// ChangeRequest 引用员工自己的一条排班登记，提出换到别的班次/时段。
// 审批通过不会自动改写被引用的排班登记。
type ChangeRequest struct {
	ID                int64        `json:"id"`
	ScheduleID        int64        `json:"scheduleId"`
	EmployeeID        int64        `json:"employeeId"`
	ProposedShiftID   int64        `json:"proposedShiftId"`
	ProposedShiftPart ShiftPart    `json:"proposedShiftPart"`
	Reason            string       `json:"reason"`
	Status            ReviewStatus `json:"status"`
	CreatedAt         time.Time    `json:"createdAt"`
}

// ChangeRequestWithDetails 是管理员待审批列表行，带上员工和班次的展示信息。
type ChangeRequestWithDetails struct {
	ChangeRequest
	FullName          string    `json:"fullName"`
	Department        string    `json:"department"`
	ScheduleDate      time.Time `json:"scheduleDate"`
	CurrentShiftName  string    `json:"currentShiftName"`
	ProposedShiftName string    `json:"proposedShiftName"`
}
