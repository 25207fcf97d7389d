package domain

import (
	"time"
)

type ShiftPart string

const (
	ShiftPartMorning   ShiftPart = "morning"
	ShiftPartAfternoon ShiftPart = "afternoon"
	ShiftPartFull      ShiftPart = "full"
)

// Shift 是只读的班次定义，属于参考数据。
type Shift struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ScheduleAssignment struct {
	ID         int64        `json:"id"`
	EmployeeID int64        `json:"employeeId"`
	ShiftID    int64        `json:"shiftId"`
	Date       time.Time    `json:"date"`
	ShiftPart  ShiftPart    `json:"shiftPart"`
	Status     ReviewStatus `json:"status"`
	CreatedAt  time.Time    `json:"createdAt"`
}

// ScheduleEntry 是员工视角的排班列表行，带上班次名称方便前端展示。
type ScheduleEntry struct {
	ID        int64        `json:"id"`
	Date      time.Time    `json:"date"`
	ShiftName string       `json:"shiftName"`
	ShiftPart ShiftPart    `json:"shiftPart"`
	Status    ReviewStatus `json:"status"`
}

// AdminScheduleEntry 是管理员视角的排班列表行，额外带上员工信息。
type AdminScheduleEntry struct {
	ID         int64        `json:"id"`
	FullName   string       `json:"fullName"`
	Department string       `json:"department"`
	Date       time.Time    `json:"date"`
	ShiftName  string       `json:"shiftName"`
	ShiftPart  ShiftPart    `json:"shiftPart"`
	Status     ReviewStatus `json:"status"`
}
