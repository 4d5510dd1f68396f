// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	teamModel "github.com/aerostudent/teamreg/internal/team/model"
	"github.com/aerostudent/teamreg/internal/team/service"
	"github.com/aerostudent/teamreg/pkg/response"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateTeam handles POST /team/create request.
// The first reference of the body is the captain.
func (h *Handler) CreateTeam(c *gin.Context) {
	var req teamModel.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UserError(c, "invalid request body")
		return
	}

	team, err := h.service.CreateTeam(c.Request.Context(), &req)
	if err != nil {
		h.respondBodyError(c, err, "sport", req.Sport, "refs", req.Refs)
		return
	}

	c.JSON(http.StatusOK, teamModel.CreateTeamResponse{
		Message: "Team created",
		Code:    response.CodeOk,
		UUID:    team.UUID,
	})
}

// CanRegister handles GET /team/can_register/:sport/:ref request.
func (h *Handler) CanRegister(c *gin.Context) {
	sport := c.Param("sport")
	ref := c.Param("ref")

	if err := h.service.CanRegister(c.Request.Context(), sport, ref); err != nil {
		h.respondError(c, err, "sport", sport, "reference", ref)
		return
	}

	response.OK(c, "Captain can register a team")
}

// GetTeam handles GET /team/:uuid request.
func (h *Handler) GetTeam(c *gin.Context) {
	teamUUID := c.Param("uuid")

	team, err := h.service.GetTeam(c.Request.Context(), teamUUID)
	if err != nil {
		h.respondError(c, err, "uuid", teamUUID)
		return
	}

	c.JSON(http.StatusOK, team)
}

// AddMember handles POST /team/:uuid/members request.
func (h *Handler) AddMember(c *gin.Context) {
	teamUUID := c.Param("uuid")

	var req teamModel.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UserError(c, "invalid request body")
		return
	}

	if _, err := h.service.AddMember(c.Request.Context(), teamUUID, req.Ref); err != nil {
		h.respondBodyError(c, err, "uuid", teamUUID, "reference", req.Ref)
		return
	}

	response.OK(c, "Member added")
}

// RemoveMember handles DELETE /team/:uuid/members/:ref request.
func (h *Handler) RemoveMember(c *gin.Context) {
	teamUUID := c.Param("uuid")
	ref := c.Param("ref")

	if err := h.service.RemoveMember(c.Request.Context(), teamUUID, ref); err != nil {
		h.respondError(c, err, "uuid", teamUUID, "reference", ref)
		return
	}

	response.OK(c, "Member removed")
}
