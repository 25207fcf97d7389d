package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hcmus-noc-dev/shift-scheduler/backend/internal/domain"
	"github.com/hcmus-noc-dev/shift-scheduler/backend/internal/repository"
	"github.com/jackc/pgx/v5"
)

// 解析 month/year 查询参数，月份必须在 1 到 12 之间
func (h *Handler) monthYearParams(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		h.badRequest(w, r, errors.New("无效的月份"))
		return 0, 0, false
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1 {
		h.badRequest(w, r, errors.New("无效的年份"))
		return 0, 0, false
	}

	return month, year, true
}

// 解析审批请求的路径参数和请求体，状态只允许 approved 或 rejected
func (h *Handler) decideParams(w http.ResponseWriter, r *http.Request) (int64, domain.ReviewStatus, bool) {
	idParam := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		h.badRequest(w, r, errors.New("记录ID无效"))
		return 0, "", false
	}

	var req struct {
		Status string `json:"status"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return 0, "", false
	}

	status := domain.ReviewStatus(req.Status)
	if !status.IsDecision() {
		h.badRequest(w, r, errors.New("无效的状态值"))
		return 0, "", false
	}

	return id, status, true
}

func (h *Handler) GetMySchedules(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.Employee)

	month, year, ok := h.monthYearParams(w, r)
	if !ok {
		return
	}

	entries, err := h.repository.GetSchedulesByEmployee(myInfo.ID, month, year)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取排班列表成功", entries)
}

// RegisterSchedules 批量登记排班，请求体必须是数组，整批要么全部成功要么全部失败。
func (h *Handler) RegisterSchedules(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.Employee)

	var reqs []struct {
		ShiftID   int64  `json:"shiftId" validate:"required"`
		Date      string `json:"date" validate:"required,datetime=2006-01-02"`
		ShiftPart string `json:"shiftPart" validate:"required,oneof=morning afternoon full"`
	}

	if err := h.readJSON(r, &reqs); err != nil {
		h.badRequest(w, r, errors.New("请求体必须是排班数组"))
		return
	}
	if len(reqs) == 0 {
		h.badRequest(w, r, errors.New("排班数组不能为空"))
		return
	}

	assignments := make([]*domain.ScheduleAssignment, 0, len(reqs))
	for _, req := range reqs {
		if err := h.validate.Struct(req); err != nil {
			h.badRequest(w, r, err)
			return
		}

		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			h.badRequest(w, r, errors.New("无效的日期"))
			return
		}

		assignments = append(assignments, &domain.ScheduleAssignment{
			ShiftID:   req.ShiftID,
			Date:      date,
			ShiftPart: domain.ShiftPart(req.ShiftPart),
		})
	}

	if err := h.repository.RegisterSchedules(myInfo.ID, assignments); err != nil {
		var conflictErr *repository.ConflictError
		switch {
		case errors.As(err, &conflictErr):
			h.conflict(w, r, conflictErr.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.createdResponse(w, r, "排班登记成功", assignments)
}

func (h *Handler) GetAllSchedules(w http.ResponseWriter, r *http.Request) {
	month, year, ok := h.monthYearParams(w, r)
	if !ok {
		return
	}
	department := r.URL.Query().Get("department")

	entries, err := h.repository.GetAllSchedules(month, year, department)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取排班列表成功", entries)
}

func (h *Handler) DecideSchedule(w http.ResponseWriter, r *http.Request) {
	id, status, ok := h.decideParams(w, r)
	if !ok {
		return
	}

	assignment, err := h.repository.DecideScheduleAssignment(id, status)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			h.notFound(w, r, "排班记录不存在")
		case errors.Is(err, repository.ErrNotPending):
			h.conflict(w, r, "该排班记录已被审批")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "审批排班成功", assignment)
}
