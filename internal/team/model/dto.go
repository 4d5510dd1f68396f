// Package model provides domain models and DTOs for team module.
package model

import (
	attendeeModel "github.com/aerostudent/teamreg/internal/attendee/model"
	sportModel "github.com/aerostudent/teamreg/internal/sport/model"
	"github.com/aerostudent/teamreg/pkg/response"
)

// CreateTeamRequest represents the request to register a team.
// The first reference is the captain.
type CreateTeamRequest struct {
	Name     string                 `json:"name"`
	SchoolID int64                  `json:"school_id"`
	Sport    string                 `json:"sport"  binding:"required"`
	Refs     []string               `json:"refs"   binding:"required"`
	Gender   sportModel.SportGender `json:"gender" binding:"required"`
}

// CreateTeamResponse is returned after a team registration attempt.
type CreateTeamResponse struct {
	Message string        `json:"message"`
	Code    response.Code `json:"code"`
	UUID    string        `json:"uuid,omitempty"`
}

// AddMemberRequest represents the request to add a member to an existing team.
type AddMemberRequest struct {
	Ref string `json:"ref" binding:"required"`
}

// TeamResponse represents a team with its resolved members.
type TeamResponse struct {
	UUID      string                    `json:"uuid"`
	Name      string                    `json:"name"`
	Sport     string                    `json:"sport"`
	Gender    sportModel.SportGender    `json:"gender"`
	SchoolID  int64                     `json:"school_id"`
	CaptainID int64                     `json:"captain_id"`
	Members   []*attendeeModel.Attendee `json:"members"`
}
