package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	attendeeModel "github.com/aerostudent/teamreg/internal/attendee/model"
	"github.com/aerostudent/teamreg/internal/sport/provider"
	teamModel "github.com/aerostudent/teamreg/internal/team/model"
	"github.com/aerostudent/teamreg/pkg/response"
)

// userErrors are reported to the client with their own message.
var userErrors = []error{
	teamModel.ErrInvalidTeamName,
	teamModel.ErrInvalidTeamSize,
	teamModel.ErrSchoolIDMismatch,
	teamModel.ErrDuplicateReference,
	teamModel.ErrMemberIneligible,
	teamModel.ErrSchoolMismatch,
	teamModel.ErrSchoolQuotaReached,
	teamModel.ErrTeamFull,
	teamModel.ErrMemberNotInTeam,
	teamModel.ErrCaptainRemoval,
}

func isUserError(err error) bool {
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return provider.IsUserError(err)
}

// respondBodyError reports a malformed member reference taken from the request
// body as a user error; everything else is mapped by respondError.
func (h *Handler) respondBodyError(c *gin.Context, err error, keysAndValues ...interface{}) {
	if errors.Is(err, attendeeModel.ErrInvalidReference) {
		response.UserError(c, err.Error())
		return
	}
	h.respondError(c, err, keysAndValues...)
}

// respondError maps service errors to not-found, user and server responses.
func (h *Handler) respondError(c *gin.Context, err error, keysAndValues ...interface{}) {
	switch {
	case errors.Is(err, teamModel.ErrTeamNotFound):
		response.NotFound(c, "Team not found")
	case errors.Is(err, attendeeModel.ErrInvalidReference),
		errors.Is(err, attendeeModel.ErrAttendeeNotFound):
		response.NotFound(c, err.Error())
	case isUserError(err):
		response.UserError(c, err.Error())
	default:
		h.logger.Errorw("team request failed",
			append([]interface{}{"path", c.FullPath(), "error", err}, keysAndValues...)...)
		response.ServerError(c, "internal server error")
	}
}
