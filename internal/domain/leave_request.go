package domain

import (
	"time"
)

type LeaveRequest struct {
	ID         int64        `json:"id"`
	EmployeeID int64        `json:"employeeId"`
	LeaveType  string       `json:"leaveType"`
	StartDate  time.Time    `json:"startDate"`
	EndDate    time.Time    `json:"endDate"`
	Reason     string       `json:"reason"`
	Status     ReviewStatus `json:"status"`
	CreatedAt  time.Time    `json:"createdAt"`
}

// LeaveRequestWithEmployee 是管理员待审批列表行。
type LeaveRequestWithEmployee struct {
	LeaveRequest
	FullName   string `json:"fullName"`
	Department string `json:"department"`
}
