package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	"github.com/hcmus-noc-dev/shift-scheduler/backend/internal/config"
	"github.com/hcmus-noc-dev/shift-scheduler/backend/internal/repository"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.requestID)
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/api/v1", func(r chi.Router) {
		// 认证相关，登录入口按角色区分
		r.Route("/auth", func(r chi.Router) {
			r.Post("/admin/login", h.AdminLogin)
			r.Post("/staff/login", h.StaffLogin)
			r.With(h.auth).With(h.myInfo).Post("/change-password", h.ChangePassword)
		})

		// 以下 API 必须要在登录后才允许调用
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.With(h.myInfo).Get("/users/me", h.GetMyInfo)
			r.Get("/shifts", h.GetAllShifts)

			r.Route("/schedules", func(r chi.Router) {
				r.Use(h.myInfo)
				r.Get("/", h.GetMySchedules)
				r.Post("/", h.RegisterSchedules)
				r.Post("/change-requests", h.CreateChangeRequest)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Use(h.myInfo)
				r.Get("/", h.GetMyLeaveRequests)
				r.Post("/", h.CreateLeaveRequest)
			})

			// 审批和员工管理只有管理员有权限
			r.Route("/admin", func(r chi.Router) {
				r.Use(h.requiredAdmin)
				r.Post("/users", h.CreateEmployee)
				r.Get("/schedules", h.GetAllSchedules)
				r.Put("/schedules/{id}", h.DecideSchedule)
				r.Get("/leaves", h.GetPendingLeaveRequests)
				r.Put("/leaves/{id}", h.DecideLeaveRequest)
				r.Get("/change-requests", h.GetPendingChangeRequests)
				r.Put("/change-requests/{id}", h.DecideChangeRequest)
			})
		})
	})
}
