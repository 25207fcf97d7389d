package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hcmus-noc-dev/shift-scheduler/backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AdminLogin 只接受管理员账号登录。
func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, domain.RoleAdmin)
}

// StaffLogin 只接受普通员工账号登录。
func (h *Handler) StaffLogin(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, domain.RoleStaff)
}

// 两个登录入口只差角色校验，其余逻辑完全一致
func (h *Handler) login(w http.ResponseWriter, r *http.Request, expectedRole domain.Role) {
	var req struct {
		Code     string `json:"code" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	employee, err := h.repository.GetEmployeeByCode(req.Code)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			h.notFound(w, r, "员工不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if employee.Role != expectedRole {
		switch expectedRole {
		case domain.RoleAdmin:
			h.forbidden(w, r, "该账号不是管理员账号")
		default:
			h.forbidden(w, r, "该账号不是员工账号")
		}
		return
	}

	// bcrypt 的比较本身是常数时间的
	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(req.Password)); err != nil {
		switch {
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			h.unauthorized(w, r, "密码错误")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// 生成 JWT，有效期 8 小时
	expiration := time.Now().Add(time.Duration(h.config.JWT.Expiration) * time.Second)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AuthClaims{
		Role: string(employee.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiration),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Subject:   employee.Code,
		},
	})
	ss, err := token.SignedString([]byte(h.config.JWT.Secret))
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "登录成功", map[string]any{
		"token":             ss,
		"isPasswordDefault": employee.IsPasswordDefault,
	})
}

// ChangePassword 不要求提供旧密码，持有有效令牌即可修改，
// 这是为了支持新账号首次登录后的强制改密流程。
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.Employee)

	var req struct {
		NewPassword string `json:"newPassword" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	myInfo.PasswordHash = string(hashedPassword)
	myInfo.IsPasswordDefault = false

	if err := h.repository.UpdateEmployee(myInfo); err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			h.errorResponse(w, r, http.StatusConflict, "修改密码失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "修改密码成功", nil)
}
