package seed

import (
	"errors"
	"log/slog"
	"time"

	"github.com/hcmus-noc-dev/shift-scheduler/backend/internal/config"
	"github.com/hcmus-noc-dev/shift-scheduler/backend/internal/domain"
	"github.com/hcmus-noc-dev/shift-scheduler/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var shiftNames = []string{"早班", "中班", "晚班"}

// SeedShifts 插入固定的班次参考数据，班次已存在时跳过
func SeedShifts(repo *repository.Repository) error {
	existing, err := repo.GetAllShifts()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		slog.Info("班次参考数据已存在，跳过", "count", len(existing))
		return nil
	}

	for _, name := range shiftNames {
		shift := &domain.Shift{Name: name}
		if err := repo.CreateShift(shift); err != nil {
			return err
		}
		slog.Info("插入班次成功", "id", shift.ID, "name", shift.Name)
	}

	return nil
}

// SeedDemoData 插入一组固定的演示数据：两名员工、几条排班和一条请假申请
func SeedDemoData(repo *repository.Repository, cfg *config.Config) error {
	if err := SeedShifts(repo); err != nil {
		return err
	}

	shifts, err := repo.GetAllShifts()
	if err != nil {
		return err
	}
	if len(shifts) == 0 {
		return errors.New("班次参考数据为空")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.Employee.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	employees := []*domain.Employee{
		{
			Code:         "NV001",
			FullName:     "阮文海",
			Department:   "客服部",
			Email:        "nv001@example.com",
			PasswordHash: string(passwordHash),
			Role:         domain.RoleStaff,
		},
		{
			Code:         "NV002",
			FullName:     "陈氏兰",
			Department:   "运营部",
			Email:        "nv002@example.com",
			PasswordHash: string(passwordHash),
			Role:         domain.RoleStaff,
		},
	}

	now := time.Now()
	for _, employee := range employees {
		if err := repo.CreateEmployee(employee); err != nil {
			slog.Error("无法插入员工，可能已存在", "code", employee.Code, "error", err)
			continue
		}
		slog.Info("插入员工成功", "code", employee.Code)

		assignments := []*domain.ScheduleAssignment{
			{
				ShiftID:   shifts[0].ID,
				Date:      time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC),
				ShiftPart: domain.ShiftPartMorning,
			},
			{
				ShiftID:   shifts[len(shifts)-1].ID,
				Date:      time.Date(now.Year(), now.Month(), 2, 0, 0, 0, 0, time.UTC),
				ShiftPart: domain.ShiftPartFull,
			},
		}
		if err := repo.RegisterSchedules(employee.ID, assignments); err != nil {
			slog.Error("无法插入排班", "code", employee.Code, "error", err)
		}
	}

	leave := &domain.LeaveRequest{
		EmployeeID: employees[0].ID,
		LeaveType:  "年假",
		StartDate:  time.Date(now.Year(), now.Month(), 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(now.Year(), now.Month(), 12, 0, 0, 0, 0, time.UTC),
		Reason:     "家中有事",
	}
	if err := repo.CreateLeaveRequest(leave); err != nil {
		slog.Error("无法插入请假申请", "error", err)
	}

	return nil
}
