// Package handler provides HTTP handlers for attendee endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	attendeeModel "github.com/aerostudent/teamreg/internal/attendee/model"
	"github.com/aerostudent/teamreg/internal/attendee/service"
	sportModel "github.com/aerostudent/teamreg/internal/sport/model"
	"github.com/aerostudent/teamreg/internal/sport/provider"
	"github.com/aerostudent/teamreg/pkg/response"
)

// SportFinder resolves sport rules by name.
type SportFinder interface {
	FindSport(name string, gender *sportModel.AttendeeGender) (*sportModel.Sport, error)
}

// Handler handles HTTP requests for attendee endpoints.
type Handler struct {
	service service.Service
	sports  SportFinder
	logger  *zap.SugaredLogger
}

// New creates a new attendee handler instance.
func New(svc service.Service, sports SportFinder, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, sports: sports, logger: logger}
}

// GetSports handles GET /attendee/sports/:ref request.
// Responds with the team sports the attendee registered for.
func (h *Handler) GetSports(c *gin.Context) {
	ref := c.Param("ref")

	a, err := h.service.Retrieve(c.Request.Context(), ref)
	if err != nil {
		h.respondError(c, err, ref)
		return
	}

	c.JSON(http.StatusOK, a.Sports)
}

// Check handles GET /attendee/check/:sport/:gender/:ref request.
// The gender segment is the team gender (M, F or Mixed) used to resolve the sport rules.
func (h *Handler) Check(c *gin.Context) {
	ref := c.Param("ref")

	teamGender, err := sportModel.ParseSportGender(c.Param("gender"))
	if err != nil {
		response.UserError(c, "Invalid team gender, expected M, F or Mixed")
		return
	}

	a, err := h.service.Retrieve(c.Request.Context(), ref)
	if err != nil {
		h.respondError(c, err, ref)
		return
	}

	sport, err := h.sports.FindSport(c.Param("sport"), teamGender.AttendeeGender())
	if err != nil {
		h.respondError(c, err, ref)
		return
	}

	status, err := h.service.Validate(c.Request.Context(), a, sport)
	if err != nil {
		h.respondError(c, err, ref)
		return
	}

	if status != attendeeModel.StatusOk {
		c.JSON(http.StatusOK, attendeeModel.CheckResponse{
			Message: status.Message(),
			Code:    response.CodeUserError,
			Status:  &status,
		})
		return
	}

	c.JSON(http.StatusOK, attendeeModel.CheckResponse{
		Message:  status.Message(),
		Code:     response.CodeOk,
		Status:   &status,
		Attendee: a,
	})
}

// respondError maps service errors to user, not-found and server responses.
func (h *Handler) respondError(c *gin.Context, err error, ref string) {
	switch {
	case errors.Is(err, attendeeModel.ErrInvalidReference):
		response.NotFound(c, "Invalid order reference")
	case errors.Is(err, attendeeModel.ErrAttendeeNotFound):
		response.NotFound(c, "Attendee not found")
	case errors.Is(err, sportModel.ErrSportNotFound):
		response.UserError(c, "Participant has an invalid sport name or sport is unavailable")
	case provider.IsUserError(err):
		response.UserError(c, err.Error())
	default:
		h.logger.Errorw("error resolving attendee", "reference", ref, "path", c.FullPath(), "error", err)
		response.ServerError(c, "internal server error")
	}
}
