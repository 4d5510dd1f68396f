// Package health provides health check endpoint handler.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/aerostudent/teamreg/internal/database/database"
)

const checkTimeout = 5 * time.Second

// RulesChecker reports whether the sport rules file can be loaded.
type RulesChecker interface {
	Validate() error
}

// Handler handles health check requests.
type Handler struct {
	db     *gorm.DB
	rules  RulesChecker
	logger *zap.SugaredLogger
}

// New creates a new health handler instance.
func New(db *gorm.DB, rules RulesChecker, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		db:     db,
		rules:  rules,
		logger: logger,
	}
}

// Response represents health check response.
type Response struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Rules    string `json:"rules"`
	// OpenConnections is the size of the database pool at check time.
	OpenConnections int `json:"open_connections"`
}

// Check handles GET /health request.
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
	defer cancel()

	resp := Response{Status: "ok", Database: "ok", Rules: "ok"}

	if err := database.HealthCheck(ctx, h.db); err != nil {
		h.logger.Warnw("database health check failed", "error", err)
		resp.Status, resp.Database = "unhealthy", "unavailable"
	} else if stats, err := database.Stats(h.db); err == nil {
		resp.OpenConnections = stats.OpenConnections
	}

	if err := h.rules.Validate(); err != nil {
		h.logger.Warnw("rules health check failed", "error", err)
		resp.Status, resp.Rules = "unhealthy", "unreadable"
	}

	if resp.Status != "ok" {
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}
