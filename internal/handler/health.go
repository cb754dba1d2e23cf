package handler

import (
	"essay-assess/internal/domain"
	"essay-assess/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HealthHandler reports process liveness and dependency health
type HealthHandler struct {
	cache domain.Cache
}

// NewHealthHandler creates a new HealthHandler. A nil cache means the
// deployment runs without Redis and the cache check reports "disabled".
func NewHealthHandler(cache domain.Cache) *HealthHandler {
	return &HealthHandler{cache: cache}
}

// Health godoc
// @Summary Health check
// @Description Reports service liveness and cache connectivity
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	status := fiber.Map{"status": "ok"}

	if h.cache == nil {
		status["cache"] = "disabled"
		return c.JSON(status)
	}

	if err := h.cache.Ping(c.Context()); err != nil {
		logger.Get().Warn("Health check: cache ping failed", zap.Error(err))
		status["cache"] = "unreachable"
	} else {
		status["cache"] = "ok"
	}
	return c.JSON(status)
}
