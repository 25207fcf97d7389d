package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/hcmus-noc-dev/shift-scheduler/backend/internal/config"
	"github.com/hcmus-noc-dev/shift-scheduler/backend/internal/domain"
	"github.com/hcmus-noc-dev/shift-scheduler/backend/internal/repository"
	"github.com/hcmus-noc-dev/shift-scheduler/backend/internal/seed"
	"github.com/hcmus-noc-dev/shift-scheduler/backend/internal/utils"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	var op int
	var n int
	var month int
	var year int

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 插入班次参考数据, 2: 插入随机员工, 3: 插入随机排班, 4: 插入演示数据)")
	flag.IntVar(&n, "n", 5, "要插入的记录数量")
	flag.IntVar(&month, "month", int(time.Now().Month()), "随机排班所在的月份")
	flag.IntVar(&year, "year", time.Now().Year(), "随机排班所在的年份")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 创建数据库连接池
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	dbpool, err := pgxpool.New(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Error("无法创建数据库连接池", "error", err)
		return
	}
	defer dbpool.Close()

	if err := dbpool.Ping(ctx); err != nil {
		logger.Error("无法连接到数据库", "error", err)
		return
	}

	// 创建 repository
	repo := repository.NewRepository(cfg, dbpool)

	// 执行操作
	switch op {
	case 0:
		slog.Error("未指定操作")
	case 1:
		if err := seed.SeedShifts(repo); err != nil {
			slog.Error("无法插入班次参考数据", slog.String("error", err.Error()))
		}
	case 2:
		if n <= 0 {
			slog.Error("请输入合法的员工数量")
			return
		}

		cnt := n
		for i := 0; i < n; i++ {
			employee, err := utils.GenerateRandomEmployee(cfg.Seed.Employee.Password)
			if err != nil {
				slog.Error("无法生成随机员工", slog.String("error", err.Error()))
				continue
			}

			if err := repo.CreateEmployee(employee); err != nil {
				slog.Error("无法插入员工", slog.String("error", err.Error()))
				continue
			}

			cnt--
		}

		slog.Info("插入员工成功", slog.Int("count", n-cnt))
	case 3:
		if n <= 0 {
			slog.Error("请输入合法的排班数量")
			return
		}

		// 先获取班次和员工，随机组合成排班登记
		shifts, err := repo.GetAllShifts()
		if err != nil || len(shifts) == 0 {
			slog.Error("无法获取班次参考数据，请先执行 op=1")
			return
		}

		employees, err := repo.GetAllEmployees()
		if err != nil || len(employees) == 0 {
			slog.Error("无法获取员工列表，请先执行 op=2")
			return
		}

		cnt := 0
		for i := 0; i < n; i++ {
			employee := employees[rand.Intn(len(employees))]
			shift := shifts[rand.Intn(len(shifts))]
			assignment := utils.GenerateRandomAssignment(shift.ID, month, year)

			if err := repo.RegisterSchedules(employee.ID, []*domain.ScheduleAssignment{assignment}); err != nil {
				var conflictErr *repository.ConflictError
				if errors.As(err, &conflictErr) {
					// 随机组合撞上已有登记，跳过即可
					continue
				}
				slog.Error("无法插入排班", slog.String("error", err.Error()))
				continue
			}

			cnt++
		}

		slog.Info("插入排班成功", slog.Int("count", cnt))
	case 4:
		if err := seed.SeedDemoData(repo, cfg); err != nil {
			slog.Error("无法插入演示数据", slog.String("error", err.Error()))
		}
	default:
		slog.Error("指定的操作非法")
	}
}
