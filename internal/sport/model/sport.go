// Package model provides sport rules and gender types shared by all modules.
package model

import (
	"encoding/json"
	"fmt"
)

// SportGender is the gender policy of a sport or a team.
type SportGender string

const (
	// SportGenderMale means only male attendees may play.
	SportGenderMale SportGender = "M"
	// SportGenderFemale means only female attendees may play.
	SportGenderFemale SportGender = "F"
	// SportGenderMixed means attendees of both genders may play together.
	SportGenderMixed SportGender = "Mixed"
)

// AttendeeGender is the declared gender of an attendee.
type AttendeeGender string

const (
	// GenderMale is a male attendee.
	GenderMale AttendeeGender = "M"
	// GenderFemale is a female attendee.
	GenderFemale AttendeeGender = "F"
)

// ParseSportGender converts a label into a SportGender.
func ParseSportGender(s string) (SportGender, error) {
	switch SportGender(s) {
	case SportGenderMale, SportGenderFemale, SportGenderMixed:
		return SportGender(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidGender, s)
	}
}

// ParseAttendeeGender converts a label into an AttendeeGender.
func ParseAttendeeGender(s string) (AttendeeGender, error) {
	switch AttendeeGender(s) {
	case GenderMale, GenderFemale:
		return AttendeeGender(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidGender, s)
	}
}

// AttendeeGender returns the attendee gender a team of this policy is made of.
// Mixed teams have no single gender and yield nil.
func (g SportGender) AttendeeGender() *AttendeeGender {
	var ag AttendeeGender
	switch g {
	case SportGenderMale:
		ag = GenderMale
	case SportGenderFemale:
		ag = GenderFemale
	default:
		return nil
	}
	return &ag
}

// UnmarshalJSON rejects labels outside the closed set.
func (g *SportGender) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseSportGender(s)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// SportGender returns the single-gender policy matching this attendee gender.
func (g AttendeeGender) SportGender() SportGender {
	if g == GenderFemale {
		return SportGenderFemale
	}
	return SportGenderMale
}

// UnmarshalJSON rejects labels outside the closed set.
func (g *AttendeeGender) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseAttendeeGender(s)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Sport holds the team rules of one sport, resolved for a gender context.
type Sport struct {
	Name              string      `json:"name"`
	MinPlayers        int         `json:"min_players"`
	MaxPlayers        int         `json:"max_players"`
	Gender            SportGender `json:"gender"`
	MaxTeamsPerSchool int         `json:"max_teams_per_school"`
	SchoolMixAllowed  bool        `json:"school_mix_allowed"`
}

// AcceptsTeamSize reports whether a team of n players fits the sport bounds.
// Both bounds are inclusive.
func (s Sport) AcceptsTeamSize(n int) bool {
	return n >= s.MinPlayers && n <= s.MaxPlayers
}
