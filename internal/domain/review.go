package domain

// ReviewStatus 是排班登记、请假申请和换班申请共用的审批状态。
// 新建的记录总是 pending，由管理员决定为 approved 或 rejected，
// 已决定的记录不允许再次变更。
type ReviewStatus string

const (
	StatusPending  ReviewStatus = "pending"
	StatusApproved ReviewStatus = "approved"
	StatusRejected ReviewStatus = "rejected"
)

func (s ReviewStatus) IsDecision() bool {
	return s == StatusApproved || s == StatusRejected
}
