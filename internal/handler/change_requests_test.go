package handler

import (
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/hcmus-noc-dev/shift-scheduler/backend/internal/domain"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

var assignmentColumns = []string{"employee_id", "shift_id", "schedule_date", "shift_part", "status", "created_at"}

func TestCreateChangeRequest(t *testing.T) {
	h, mock := newTestHandler(t)

	employee := staffEmployee()
	expectEmployeeByCode(mock, "NV001", employee)

	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM schedule_assignments WHERE id = $1`)).
		WithArgs(int64(4)).
		WillReturnRows(pgxmock.NewRows(assignmentColumns).
			AddRow(employee.ID, int64(2), date, domain.ShiftPartMorning, domain.StatusApproved, now))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO change_requests`)).
		WithArgs(int64(4), employee.ID, int64(3), domain.ShiftPartAfternoon, "与私事冲突").
		WillReturnRows(pgxmock.NewRows([]string{"id", "status", "created_at"}).
			AddRow(int64(8), domain.StatusPending, now))

	token := signTestToken(t, "NV001", domain.RoleStaff, time.Hour)
	rec := doRequest(t, h, http.MethodPost, "/api/v1/schedules/change-requests", token, map[string]any{
		"scheduleId":        4,
		"proposedShiftId":   3,
		"proposedShiftPart": "afternoon",
		"reason":            "与私事冲突",
	})

	assertStatus(t, rec, http.StatusCreated)
	assertNoPendingExpectations(t, mock)
}

// 引用别人的排班记录时按不存在处理
func TestCreateChangeRequest_NotOwnSchedule(t *testing.T) {
	h, mock := newTestHandler(t)

	employee := staffEmployee()
	expectEmployeeByCode(mock, "NV001", employee)

	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM schedule_assignments WHERE id = $1`)).
		WithArgs(int64(4)).
		WillReturnRows(pgxmock.NewRows(assignmentColumns).
			AddRow(employee.ID+1, int64(2), date, domain.ShiftPartMorning, domain.StatusApproved, now))

	token := signTestToken(t, "NV001", domain.RoleStaff, time.Hour)
	rec := doRequest(t, h, http.MethodPost, "/api/v1/schedules/change-requests", token, map[string]any{
		"scheduleId":        4,
		"proposedShiftId":   3,
		"proposedShiftPart": "afternoon",
		"reason":            "与私事冲突",
	})

	assertStatus(t, rec, http.StatusNotFound)
	assertNoPendingExpectations(t, mock)
}

func TestCreateChangeRequest_ScheduleMissing(t *testing.T) {
	h, mock := newTestHandler(t)

	employee := staffEmployee()
	expectEmployeeByCode(mock, "NV001", employee)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM schedule_assignments WHERE id = $1`)).
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	token := signTestToken(t, "NV001", domain.RoleStaff, time.Hour)
	rec := doRequest(t, h, http.MethodPost, "/api/v1/schedules/change-requests", token, map[string]any{
		"scheduleId":        99,
		"proposedShiftId":   3,
		"proposedShiftPart": "afternoon",
		"reason":            "与私事冲突",
	})

	assertStatus(t, rec, http.StatusNotFound)
	assertNoPendingExpectations(t, mock)
}

func TestGetPendingChangeRequests(t *testing.T) {
	h, mock := newTestHandler(t)

	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE cr.status = 'pending'`)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "schedule_id", "employee_id", "proposed_shift_id", "proposed_shift_part", "reason", "status", "created_at", "full_name", "department", "schedule_date", "current_name", "proposed_name"}).
			AddRow(int64(8), int64(4), int64(7), int64(3), domain.ShiftPartAfternoon, "与私事冲突", domain.StatusPending, now, "阮文海", "客服部", date, "早班", "中班"))

	token := signTestToken(t, "admin", domain.RoleAdmin, time.Hour)
	rec := doRequest(t, h, http.MethodGet, "/api/v1/admin/change-requests", token, nil)

	assertStatus(t, rec, http.StatusOK)

	resp := decodeResponse(t, rec)
	requests := resp.Data.([]any)
	if len(requests) != 1 {
		t.Fatalf("预期返回 1 条待审批换班，实际为 %d 条", len(requests))
	}
	first := requests[0].(map[string]any)
	if first["currentShiftName"] != "早班" || first["proposedShiftName"] != "中班" {
		t.Fatalf("待审批列表应附带班次名称，响应: %+v", first)
	}

	assertNoPendingExpectations(t, mock)
}
