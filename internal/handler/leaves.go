package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/hcmus-noc-dev/shift-scheduler/backend/internal/domain"
	"github.com/hcmus-noc-dev/shift-scheduler/backend/internal/repository"
	"github.com/jackc/pgx/v5"
)

func (h *Handler) GetMyLeaveRequests(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.Employee)

	requests, err := h.repository.GetLeaveRequestsByEmployee(myInfo.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取请假列表成功", requests)
}

func (h *Handler) CreateLeaveRequest(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.Employee)

	var req struct {
		LeaveType string `json:"leaveType" validate:"required"`
		StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
		EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
		Reason    string `json:"reason" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		h.badRequest(w, r, errors.New("无效的开始日期"))
		return
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		h.badRequest(w, r, errors.New("无效的结束日期"))
		return
	}

	if startDate.After(endDate) {
		h.badRequest(w, r, errors.New("开始日期不能晚于结束日期"))
		return
	}

	request := &domain.LeaveRequest{
		EmployeeID: myInfo.ID,
		LeaveType:  req.LeaveType,
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
	}

	if err := h.repository.CreateLeaveRequest(request); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.createdResponse(w, r, "请假申请提交成功", request)
}

func (h *Handler) GetPendingLeaveRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.repository.GetPendingLeaveRequests()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取待审批请假列表成功", requests)
}

func (h *Handler) DecideLeaveRequest(w http.ResponseWriter, r *http.Request) {
	id, status, ok := h.decideParams(w, r)
	if !ok {
		return
	}

	request, err := h.repository.DecideLeaveRequest(id, status)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			h.notFound(w, r, "请假申请不存在")
		case errors.Is(err, repository.ErrNotPending):
			h.conflict(w, r, "该请假申请已被审批")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "审批请假成功", request)
}
