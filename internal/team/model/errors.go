package model

import (
	"errors"
	"fmt"

	attendeeModel "github.com/aerostudent/teamreg/internal/attendee/model"
)

var (
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrInvalidTeamName indicates that the provided team name is empty.
	ErrInvalidTeamName = errors.New("invalid team name")
	// ErrInvalidTeamSize indicates that the member count is outside the sport bounds.
	ErrInvalidTeamSize = errors.New("invalid number of team members")
	// ErrSchoolIDMismatch indicates a requested school id that is not the captain's school.
	ErrSchoolIDMismatch = errors.New("school id does not match the captain's school")
	// ErrDuplicateReference indicates that a reference appears twice in the member list.
	ErrDuplicateReference = errors.New("duplicate reference in team members")
	// ErrMemberIneligible indicates that a member failed the eligibility rules.
	ErrMemberIneligible = errors.New("team member is not eligible")
	// ErrSchoolMismatch indicates a member from another school in a single-school sport.
	ErrSchoolMismatch = errors.New("team members must belong to the same school")
	// ErrSchoolQuotaReached indicates that the school already has the maximum number of teams.
	ErrSchoolQuotaReached = errors.New("school has already registered the maximum number of teams in this sport")
	// ErrTeamFull indicates that adding a member would exceed the sport maximum.
	ErrTeamFull = errors.New("team is full")
	// ErrMemberNotInTeam indicates that the attendee is not a member of the team.
	ErrMemberNotInTeam = errors.New("attendee is not a member of this team")
	// ErrCaptainRemoval indicates an attempt to remove the team captain.
	ErrCaptainRemoval = errors.New("the captain cannot be removed from the team")
)

// MemberError reports the member that failed eligibility and why.
type MemberError struct {
	FirstName string
	LastName  string
	Reference string
	Status    attendeeModel.Status
}

// NewMemberError builds a MemberError for an attendee.
func NewMemberError(a *attendeeModel.Attendee, status attendeeModel.Status) *MemberError {
	return &MemberError{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Reference: a.Reference,
		Status:    status,
	}
}

func (e *MemberError) Error() string {
	return fmt.Sprintf("Participant %s %s (%s) causes a validation error, status is %s: %s",
		e.FirstName, e.LastName, e.Reference, e.Status, e.Status.Message())
}

// Is makes MemberError match ErrMemberIneligible.
func (e *MemberError) Is(target error) bool {
	return target == ErrMemberIneligible
}

// SchoolMismatchError reports the member whose school differs from the captain's.
type SchoolMismatchError struct {
	FirstName string
	LastName  string
	Reference string
}

func (e *SchoolMismatchError) Error() string {
	return fmt.Sprintf("Participant %s %s (%s) is not from the captain's school, "+
		"this sport does not allow teams mixing schools", e.FirstName, e.LastName, e.Reference)
}

// Is makes SchoolMismatchError match ErrSchoolMismatch.
func (e *SchoolMismatchError) Is(target error) bool {
	return target == ErrSchoolMismatch
}
