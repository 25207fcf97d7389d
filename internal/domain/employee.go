package domain

import (
	"time"
)

type Role string

const (
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

type Employee struct {
	ID                int64     `json:"id"`
	Code              string    `json:"code"`
	FullName          string    `json:"fullName"`
	Department        string    `json:"department"`
	Email             string    `json:"email"`
	PasswordHash      string    `json:"-"`
	Role              Role      `json:"role"`
	IsPasswordDefault bool      `json:"isPasswordDefault"`
	CreatedAt         time.Time `json:"createdAt"`
	Version           int32     `json:"-"`
}
