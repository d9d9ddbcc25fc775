package handler

import (
	"context"
	"time"

	"skillmatch/internal/delivery/http/dto"
	"skillmatch/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

const (
	cacheDisabled    = "disabled"
	cacheOK          = "ok"
	cacheUnavailable = "unavailable"

	cachePingTimeout = time.Second
)

// CachePinger reports whether the skill cache answers.
type CachePinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	cache CachePinger
}

// NewHealthHandler takes the skill cache, or nil when caching is disabled.
func NewHealthHandler(cache CachePinger) *HealthHandler {
	return &HealthHandler{cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

// Health always answers 200: the cache is optional and requests bypass it when
// it is down.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	out := dto.HealthResponse{Cache: cacheDisabled}
	if h.cache != nil {
		ctx, cancel := context.WithTimeout(c.Context(), cachePingTimeout)
		defer cancel()

		out.Cache = cacheOK
		if err := h.cache.Ping(ctx); err != nil {
			out.Cache = cacheUnavailable
		}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
