package handler

import (
	"net/http"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/hcmus-noc-dev/shift-scheduler/backend/internal/domain"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func TestRegisterSchedules_Created(t *testing.T) {
	h, mock := newTestHandler(t)

	employee := staffEmployee()
	expectEmployeeByCode(mock, "NV001", employee)

	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (`)).
		WithArgs(employee.ID, int64(2), date).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO schedule_assignments`)).
		WithArgs(employee.ID, int64(2), date, domain.ShiftPartMorning).
		WillReturnRows(pgxmock.NewRows([]string{"id", "status", "created_at"}).AddRow(int64(10), domain.StatusPending, now))
	mock.ExpectCommit()

	token := signTestToken(t, "NV001", domain.RoleStaff, time.Hour)
	rec := doRequest(t, h, http.MethodPost, "/api/v1/schedules", token, []map[string]any{
		{"shiftId": 2, "date": "2024-05-01", "shiftPart": "morning"},
	})

	assertStatus(t, rec, http.StatusCreated)
	assertNoPendingExpectations(t, mock)
}

func TestRegisterSchedules_NonArrayBody(t *testing.T) {
	h, mock := newTestHandler(t)

	employee := staffEmployee()
	expectEmployeeByCode(mock, "NV001", employee)

	token := signTestToken(t, "NV001", domain.RoleStaff, time.Hour)
	rec := doRequest(t, h, http.MethodPost, "/api/v1/schedules", token, map[string]any{
		"shiftId": 2, "date": "2024-05-01", "shiftPart": "morning",
	})

	assertStatus(t, rec, http.StatusBadRequest)
	assertNoPendingExpectations(t, mock)
}

func TestRegisterSchedules_InvalidShiftPart(t *testing.T) {
	h, mock := newTestHandler(t)

	employee := staffEmployee()
	expectEmployeeByCode(mock, "NV001", employee)

	token := signTestToken(t, "NV001", domain.RoleStaff, time.Hour)
	rec := doRequest(t, h, http.MethodPost, "/api/v1/schedules", token, []map[string]any{
		{"shiftId": 2, "date": "2024-05-01", "shiftPart": "night"},
	})

	assertStatus(t, rec, http.StatusBadRequest)
	assertNoPendingExpectations(t, mock)
}

func TestRegisterSchedules_Conflict(t *testing.T) {
	h, mock := newTestHandler(t)

	employee := staffEmployee()
	expectEmployeeByCode(mock, "NV001", employee)

	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (`)).
		WithArgs(employee.ID, int64(2), date).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	token := signTestToken(t, "NV001", domain.RoleStaff, time.Hour)
	rec := doRequest(t, h, http.MethodPost, "/api/v1/schedules", token, []map[string]any{
		{"shiftId": 2, "date": "2024-05-01", "shiftPart": "morning"},
	})

	assertStatus(t, rec, http.StatusConflict)

	// 冲突响应必须指明是哪个班次和日期冲突
	resp := decodeResponse(t, rec)
	if !strings.Contains(resp.Message, "2024-05-01") {
		t.Fatalf("冲突消息应包含冲突日期，实际为: %s", resp.Message)
	}

	assertNoPendingExpectations(t, mock)
}

func TestGetMySchedules_InvalidMonth(t *testing.T) {
	h, mock := newTestHandler(t)

	employee := staffEmployee()
	expectEmployeeByCode(mock, "NV001", employee)

	token := signTestToken(t, "NV001", domain.RoleStaff, time.Hour)
	rec := doRequest(t, h, http.MethodGet, "/api/v1/schedules?month=13&year=2024", token, nil)

	assertStatus(t, rec, http.StatusBadRequest)
	assertNoPendingExpectations(t, mock)
}

func TestGetMySchedules(t *testing.T) {
	h, mock := newTestHandler(t)

	employee := staffEmployee()
	expectEmployeeByCode(mock, "NV001", employee)

	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM schedule_assignments sa`)).
		WithArgs(employee.ID, 5, 2024).
		WillReturnRows(pgxmock.NewRows([]string{"id", "schedule_date", "name", "shift_part", "status"}).
			AddRow(int64(1), date, "早班", domain.ShiftPartMorning, domain.StatusPending))

	token := signTestToken(t, "NV001", domain.RoleStaff, time.Hour)
	rec := doRequest(t, h, http.MethodGet, "/api/v1/schedules?month=5&year=2024", token, nil)

	assertStatus(t, rec, http.StatusOK)

	resp := decodeResponse(t, rec)
	entries := resp.Data.([]any)
	if len(entries) != 1 {
		t.Fatalf("预期返回 1 条排班，实际为 %d 条", len(entries))
	}

	assertNoPendingExpectations(t, mock)
}

func TestDecideSchedule_Approved(t *testing.T) {
	h, mock := newTestHandler(t)

	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE schedule_assignments SET status = $1`)).
		WithArgs(domain.StatusApproved, int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(5)))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM schedule_assignments WHERE id = $1`)).
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{"employee_id", "shift_id", "schedule_date", "shift_part", "status", "created_at"}).
			AddRow(int64(7), int64(2), date, domain.ShiftPartMorning, domain.StatusApproved, now))

	token := signTestToken(t, "admin", domain.RoleAdmin, time.Hour)
	rec := doRequest(t, h, http.MethodPut, "/api/v1/admin/schedules/5", token, map[string]string{
		"status": "approved",
	})

	assertStatus(t, rec, http.StatusOK)

	resp := decodeResponse(t, rec)
	data := resp.Data.(map[string]any)
	if data["status"] != string(domain.StatusApproved) {
		t.Fatalf("返回的排班状态不符合预期: %+v", data)
	}

	assertNoPendingExpectations(t, mock)
}

// 重复审批已决定的记录必须失败，这是本系统选择的加固策略
func TestDecideSchedule_AlreadyDecided(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE schedule_assignments SET status = $1`)).
		WithArgs(domain.StatusApproved, int64(5)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM schedule_assignments WHERE id = $1)`)).
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	token := signTestToken(t, "admin", domain.RoleAdmin, time.Hour)
	rec := doRequest(t, h, http.MethodPut, "/api/v1/admin/schedules/5", token, map[string]string{
		"status": "approved",
	})

	assertStatus(t, rec, http.StatusConflict)
	assertNoPendingExpectations(t, mock)
}

func TestDecideSchedule_NotFound(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE schedule_assignments SET status = $1`)).
		WithArgs(domain.StatusRejected, int64(99)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM schedule_assignments WHERE id = $1)`)).
		WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	token := signTestToken(t, "admin", domain.RoleAdmin, time.Hour)
	rec := doRequest(t, h, http.MethodPut, "/api/v1/admin/schedules/99", token, map[string]string{
		"status": "rejected",
	})

	assertStatus(t, rec, http.StatusNotFound)
	assertNoPendingExpectations(t, mock)
}

// 状态值只允许 approved/rejected，其他值直接拒绝且不触达数据库
func TestDecideSchedule_InvalidStatus(t *testing.T) {
	h, mock := newTestHandler(t)

	token := signTestToken(t, "admin", domain.RoleAdmin, time.Hour)
	rec := doRequest(t, h, http.MethodPut, "/api/v1/admin/schedules/5", token, map[string]string{
		"status": "archived",
	})

	assertStatus(t, rec, http.StatusBadRequest)
	assertNoPendingExpectations(t, mock)
}
