// Package model provides attendee types and the pure eligibility rules.
package model

import (
	"strconv"
	"strings"

	sportModel "github.com/aerostudent/teamreg/internal/sport/model"
)

// MaxReferenceLength bounds the length of an order reference as printed on tickets.
const MaxReferenceLength = 10

// Attendee is a ticket holder resolved from the ticketing database.
// It is built per request and never stored by this service.
type Attendee struct {
	ID        int64                     `json:"id"`
	TicketID  int64                     `json:"ticket_id"`
	FirstName string                    `json:"first_name"`
	LastName  string                    `json:"last_name"`
	Reference string                    `json:"reference"`
	Gender    sportModel.AttendeeGender `json:"gender"`
	Sports    []sportModel.Sport        `json:"sports"`
	SchoolID  int64                     `json:"school_id"`
}

// Reference identifies one attendee line of an order, printed as "<order>-<index>".
type Reference struct {
	Order string
	Index int
}

// String returns the printed form of the reference.
func (r Reference) String() string {
	return r.Order + "-" + strconv.Itoa(r.Index)
}

// ParseReference validates and splits an order reference.
func ParseReference(s string) (Reference, error) {
	if len(s) > MaxReferenceLength {
		return Reference{}, ErrInvalidReference
	}
	parts := strings.Split(s, "-")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Reference{}, ErrInvalidReference
	}
	index, err := strconv.Atoi(parts[1])
	if err != nil || index < 0 {
		return Reference{}, ErrInvalidReference
	}
	return Reference{Order: parts[0], Index: index}, nil
}

// HasSport reports whether the attendee declared the named sport.
func HasSport(a *Attendee, sportName string) bool {
	for _, s := range a.Sports {
		if s.Name == sportName {
			return true
		}
	}
	return false
}

// HasCorrectGender reports whether the attendee may play under the sport gender policy.
func HasCorrectGender(a *Attendee, sport *sportModel.Sport) bool {
	switch sport.Gender {
	case sportModel.SportGenderMixed:
		return true
	case sportModel.SportGenderMale, sportModel.SportGenderFemale:
		return a.Gender.SportGender() == sport.Gender
	default:
		return false
	}
}

// IsAthlete reports whether the attendee's ticket is one of the athlete tickets.
func IsAthlete(a *Attendee, athleteTicketIDs []int64) bool {
	for _, id := range athleteTicketIDs {
		if id == a.TicketID {
			return true
		}
	}
	return false
}

// CheckEligibility runs every rule that does not need the database, in order.
// The first failing rule decides the status.
func CheckEligibility(a *Attendee, sport *sportModel.Sport, athleteTicketIDs []int64) Status {
	switch {
	case len(a.Sports) == 0:
		return StatusInvalidSport
	case !IsAthlete(a, athleteTicketIDs):
		return StatusNotAnAthlete
	case !HasSport(a, sport.Name):
		return StatusSportNotRegistered
	case !HasCorrectGender(a, sport):
		return StatusInvalidGender
	default:
		return StatusOk
	}
}
