package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/hcmus-noc-dev/shift-scheduler/backend/internal/domain"
	"github.com/redis/go-redis/v9"
)

const shiftCacheKey = "shift_scheduler_shifts"

// GetAllShifts 返回班次参考列表。班次是只读数据且读取频繁，
// 因此优先从 redis 缓存读取，缓存不可用时退回数据库。
func (h *Handler) GetAllShifts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	cached, err := h.redisClient.Get(ctx, shiftCacheKey).Result()
	if err == nil {
		shifts := make([]*domain.Shift, 0)
		if err := json.Unmarshal([]byte(cached), &shifts); err == nil {
			h.successResponse(w, r, "获取班次列表成功", shifts)
			return
		}
	} else if !errors.Is(err, redis.Nil) {
		// 缓存不可用不影响功能，退回数据库即可
		slog.Warn("无法读取班次缓存", "error", err)
	}

	shifts, err := h.repository.GetAllShifts()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if data, err := json.Marshal(shifts); err == nil {
		if err := h.redisClient.Set(ctx, shiftCacheKey, data, time.Duration(h.config.Redis.ShiftCacheExpiration)*time.Second).Err(); err != nil {
			slog.Warn("无法写入班次缓存", "error", err)
		}
	}

	h.successResponse(w, r, "获取班次列表成功", shifts)
}
