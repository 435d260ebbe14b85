package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"relink/internal/config"
	"relink/internal/mq"
	"relink/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RedirectHandler handles the public redirect entry point
type RedirectHandler struct {
	resolver   service.ResolverInterface
	guard      service.GuardInterface
	mqProducer mq.ProducerInterface
	limit      int
	window     time.Duration
}

// NewRedirectHandler creates a new RedirectHandler
func NewRedirectHandler(
	resolver service.ResolverInterface,
	guard service.GuardInterface,
	mqProducer mq.ProducerInterface,
	cfg *config.RateLimitConfig,
) *RedirectHandler {
	return &RedirectHandler{
		resolver:   resolver,
		guard:      guard,
		mqProducer: mqProducer,
		limit:      cfg.Limit,
		window:     cfg.Window,
	}
}

// Redirect handles GET /:shortCode
// @Summary Redirect to destination URL
// @Description Resolves the short code and redirects to its destination
// @Tags redirect
// @Param shortCode path string true "Short code"
// @Success 302
// @Failure 404 {object} ErrorResponse
// @Failure 410 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /:shortCode [get]
func (h *RedirectHandler) Redirect(c *gin.Context) {
	shortCode := c.Param("shortCode")

	key := c.ClientIP() + ":" + shortCode
	if !h.guard.Allow(c.Request.Context(), key, h.limit, h.window) {
		c.JSON(http.StatusTooManyRequests, ErrorResponse{
			Code:    http.StatusTooManyRequests,
			Message: "Too many requests",
		})
		return
	}

	link, err := h.resolver.Resolve(c.Request.Context(), shortCode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLinkNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Short link not found",
			})
		case errors.Is(err, service.ErrLinkInactive):
			c.JSON(http.StatusGone, ErrorResponse{
				Code:    http.StatusGone,
				Message: "Short link disabled or expired",
			})
		default:
			log.Error().Err(err).Str("short_code", shortCode).Msg("Failed to resolve short link")
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Code:    http.StatusInternalServerError,
				Message: "Internal server error",
			})
		}
		return
	}

	// Send to MQ for async processing
	if h.mqProducer != nil {
		msg := &mq.ClickEventMessage{
			EventID:   uuid.NewString(),
			ShortCode: shortCode,
			ClientIP:  c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
			Referer:   c.Request.Header.Get("Referer"),
			ClickedAt: time.Now(),
		}
		go func() {
			if err := h.mqProducer.SendClickEvent(context.Background(), msg); err != nil {
				log.Error().Err(err).Str("short_code", shortCode).Msg("Failed to send click event to MQ")
			}
		}()
	}

	// 302 Redirect
	c.Redirect(http.StatusFound, link.OriginalURL)
}
