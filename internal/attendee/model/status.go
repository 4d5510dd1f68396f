package model

import "encoding/json"

// Status is the outcome of checking one attendee against one sport.
type Status int

const (
	// StatusOk means the attendee may join a team in the sport.
	StatusOk Status = iota
	// StatusInvalidSport means the attendee declared no team sport at all.
	StatusInvalidSport
	// StatusNotAnAthlete means the attendee holds a supporter ticket.
	StatusNotAnAthlete
	// StatusSportNotRegistered means the attendee did not declare this sport.
	StatusSportNotRegistered
	// StatusInvalidGender means the sport policy excludes the attendee gender.
	StatusInvalidGender
	// StatusAlreadyInATeam means the attendee is already rostered for this sport.
	StatusAlreadyInATeam
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusOk:
		return "Ok"
	case StatusInvalidSport:
		return "InvalidSport"
	case StatusNotAnAthlete:
		return "NotAnAthlete"
	case StatusSportNotRegistered:
		return "SportNotRegistered"
	case StatusInvalidGender:
		return "InvalidGender"
	case StatusAlreadyInATeam:
		return "AlreadyInATeam"
	default:
		return "Unknown"
	}
}

// Message returns the user-facing explanation of the status.
func (s Status) Message() string {
	switch s {
	case StatusOk:
		return "Ok"
	case StatusInvalidSport:
		return "Participant has an invalid sport name or sport is unavailable"
	case StatusNotAnAthlete:
		return "Participant is a supporter, not an athlete"
	case StatusSportNotRegistered:
		return "Participant did not register in the correct sport"
	case StatusInvalidGender:
		return "This sport doesn't allow mixed teams, team members should have the same gender"
	case StatusAlreadyInATeam:
		return "Participant is already in a team"
	default:
		return "Unknown participant status"
	}
}

// MarshalJSON encodes the status by name.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
