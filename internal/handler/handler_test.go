package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hcmus-noc-dev/shift-scheduler/backend/internal/config"
	"github.com/hcmus-noc-dev/shift-scheduler/backend/internal/domain"
	"github.com/hcmus-noc-dev/shift-scheduler/backend/internal/repository"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/redis/go-redis/v9"
)

const testJWTSecret = "test-secret"

func newTestHandler(t *testing.T) (*Handler, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("无法创建 mock 连接池: %v", err)
	}
	t.Cleanup(mock.Close)

	cfg := &config.Config{}
	cfg.Database.QueryTimeout = 5
	cfg.Database.TransactionTimeout = 10
	cfg.JWT.Secret = testJWTSecret
	cfg.JWT.Expiration = 28800
	cfg.Redis.OperationTimeout = 1
	cfg.Redis.ShiftCacheExpiration = 60
	cfg.NewEmployee.DefaultPassword = "1"

	repo := repository.NewRepository(cfg, mock)

	// 指向一个不存在的 redis，缓存读写失败时应退回数据库
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
	})

	h, err := NewHandler(cfg, repo, rdb)
	if err != nil {
		t.Fatalf("无法创建 handler: %v", err)
	}
	h.RegisterRoutes()

	return h, mock
}

func signTestToken(t *testing.T, code string, role domain.Role, ttl time.Duration) string {
	t.Helper()

	now := time.Now().Add(-time.Duration(1) * time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AuthClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   code,
		},
	})

	ss, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("无法签发测试令牌: %v", err)
	}

	return ss
}

func doRequest(t *testing.T, h *Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	switch v := body.(type) {
	case nil:
		reqBody = bytes.NewBuffer(nil)
	case string:
		reqBody = bytes.NewBufferString(v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("无法序列化请求体: %v", err)
		}
		reqBody = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.Mux.ServeHTTP(rec, req)

	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()

	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("无法解析响应体: %v", err)
	}

	return resp
}

var employeeColumns = []string{"id", "full_name", "department", "email", "password_hash", "role", "is_password_default", "created_at", "version"}

func expectEmployeeByCode(mock pgxmock.PgxPoolIface, code string, employee *domain.Employee) {
	mock.ExpectQuery(`FROM employees WHERE code = \$1`).
		WithArgs(code).
		WillReturnRows(pgxmock.NewRows(employeeColumns).
			AddRow(employee.ID, employee.FullName, employee.Department, employee.Email, employee.PasswordHash, employee.Role, employee.IsPasswordDefault, employee.CreatedAt, employee.Version))
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()

	if rec.Code != want {
		t.Fatalf("预期状态码 %d，实际为 %d，响应体: %s", want, rec.Code, rec.Body.String())
	}
}

func assertNoPendingExpectations(t *testing.T, mock pgxmock.PgxPoolIface) {
	t.Helper()

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("存在未满足的预期: %v", err)
	}
}

func staffEmployee() *domain.Employee {
	return &domain.Employee{
		ID:                7,
		Code:              "NV001",
		FullName:          "阮文海",
		Department:        "客服部",
		Email:             "nv001@example.com",
		Role:              domain.RoleStaff,
		IsPasswordDefault: true,
		CreatedAt:         time.Now(),
		Version:           1,
	}
}
