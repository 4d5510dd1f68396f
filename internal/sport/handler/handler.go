// Package handler provides HTTP handlers for sport endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	sportModel "github.com/aerostudent/teamreg/internal/sport/model"
	"github.com/aerostudent/teamreg/pkg/response"
)

// SportFinder resolves sport rules by name.
type SportFinder interface {
	FindSport(name string, gender *sportModel.AttendeeGender) (*sportModel.Sport, error)
}

// Handler handles HTTP requests for sport endpoints.
type Handler struct {
	sports SportFinder
	logger *zap.SugaredLogger
}

// New creates a new sport handler instance.
func New(sports SportFinder, logger *zap.SugaredLogger) *Handler {
	return &Handler{sports: sports, logger: logger}
}

// GetSport handles GET /sport/:name request.
// The gender query parameter (M or F) is required for strict sports.
func (h *Handler) GetSport(c *gin.Context) {
	name := c.Param("name")

	var gender *sportModel.AttendeeGender
	if raw := c.Query("gender"); raw != "" {
		g, err := sportModel.ParseAttendeeGender(raw)
		if err != nil {
			response.UserError(c, "Invalid gender, expected M or F")
			return
		}
		gender = &g
	}

	sport, err := h.sports.FindSport(name, gender)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, sport)
	case errors.Is(err, sportModel.ErrSportNotFound):
		response.NotFound(c, "Sport not found")
	case errors.Is(err, sportModel.ErrGenderRequired):
		response.UserError(c, "This sport has separate male and female teams, the gender parameter is required")
	default:
		h.logger.Errorw("failed to resolve sport rules", "sport", name, "error", err)
		response.ServerError(c, "internal server error")
	}
}
