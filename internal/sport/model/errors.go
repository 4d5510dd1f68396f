package model

import "errors"

var (
	// ErrSportNotFound indicates that no sport section with the given name exists.
	ErrSportNotFound = errors.New("sport not found")
	// ErrGenderRequired indicates that a strict sport was queried without an attendee gender.
	ErrGenderRequired = errors.New("sport is strict and attendee gender is required")
	// ErrInvalidSportConfig indicates a malformed sport section in the rules file.
	ErrInvalidSportConfig = errors.New("invalid sport configuration")
	// ErrInvalidGender indicates a gender label outside the known set.
	ErrInvalidGender = errors.New("invalid gender")
	// ErrMissingMainSection indicates that the rules file has no [main] section.
	ErrMissingMainSection = errors.New("missing section [main] in configuration file")
	// ErrMissingOption indicates that a required [main] option is absent.
	ErrMissingOption = errors.New("missing option in configuration file under section [main]")
	// ErrInvalidOption indicates that a [main] option cannot be parsed.
	ErrInvalidOption = errors.New("invalid option in configuration file")
)
