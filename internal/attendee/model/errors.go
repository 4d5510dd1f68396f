package model

import "errors"

var (
	// ErrInvalidReference indicates a malformed order reference.
	ErrInvalidReference = errors.New("invalid order reference")
	// ErrAttendeeNotFound indicates that no active attendee matches the reference.
	ErrAttendeeNotFound = errors.New("attendee not found")
	// ErrUnknownGender indicates a stored gender answer outside Male/Female.
	// The ticketing data is inconsistent and the request cannot proceed.
	ErrUnknownGender = errors.New("unknown gender answer in ticketing data")
	// ErrSchoolNotFound indicates that the attendee's school answer matches no school option.
	ErrSchoolNotFound = errors.New("attendee school not found in ticketing data")
)
