package handler

import (
	"errors"
	"net/http"

	"github.com/hcmus-noc-dev/shift-scheduler/backend/internal/domain"
	"github.com/hcmus-noc-dev/shift-scheduler/backend/internal/repository"
	"github.com/jackc/pgx/v5"
)

// CreateChangeRequest 提交换班申请，只能引用自己的排班登记。
func (h *Handler) CreateChangeRequest(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.Employee)

	var req struct {
		ScheduleID        int64  `json:"scheduleId" validate:"required"`
		ProposedShiftID   int64  `json:"proposedShiftId" validate:"required"`
		ProposedShiftPart string `json:"proposedShiftPart" validate:"required,oneof=morning afternoon full"`
		Reason            string `json:"reason" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	assignment, err := h.repository.GetScheduleAssignment(req.ScheduleID)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			h.notFound(w, r, "排班记录不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// 不属于自己的排班按不存在处理，避免泄露他人排班信息
	if assignment.EmployeeID != myInfo.ID {
		h.notFound(w, r, "排班记录不存在")
		return
	}

	request := &domain.ChangeRequest{
		ScheduleID:        req.ScheduleID,
		EmployeeID:        myInfo.ID,
		ProposedShiftID:   req.ProposedShiftID,
		ProposedShiftPart: domain.ShiftPart(req.ProposedShiftPart),
		Reason:            req.Reason,
	}

	if err := h.repository.CreateChangeRequest(request); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.createdResponse(w, r, "换班申请提交成功", request)
}

func (h *Handler) GetPendingChangeRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.repository.GetPendingChangeRequests()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取待审批换班列表成功", requests)
}

func (h *Handler) DecideChangeRequest(w http.ResponseWriter, r *http.Request) {
	id, status, ok := h.decideParams(w, r)
	if !ok {
		return
	}

	request, err := h.repository.DecideChangeRequest(id, status)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			h.notFound(w, r, "换班申请不存在")
		case errors.Is(err, repository.ErrNotPending):
			h.conflict(w, r, "该换班申请已被审批")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "审批换班成功", request)
}
