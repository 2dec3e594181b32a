package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/psycheverse/creator-admin-api/internal/models"
	"github.com/psycheverse/creator-admin-api/pkg/response"
)

type statsService interface {
	GetStats(ctx context.Context) (*models.CreatorStats, bool, error)
}

// StatsHandler exposes the analytics endpoints.
type StatsHandler struct {
	service statsService
}

// NewStatsHandler builds a new handler.
func NewStatsHandler(service statsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// GetStats godoc
// @Summary Creator catalog aggregates
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /analytics/stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, cached, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats, map[string]interface{}{"cached": cached})
}
