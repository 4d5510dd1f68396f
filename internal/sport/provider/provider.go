// Package provider reads the team rules file: global options under [main]
// and one section per team sport.
package provider

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"

	sportModel "github.com/aerostudent/teamreg/internal/sport/model"
)

const mainSection = "main"

// Option names read from the [main] section.
const (
	OptGenderQuestionID       = "gender_question_id"
	OptSchoolQuestionID       = "school_question_id"
	OptMaleSportQuestionIDs   = "male_sport_question_ids"
	OptFemaleSportQuestionIDs = "female_sport_question_ids"
	OptAthleteTicketIDs       = "athlete_ticket_ids"
)

// requiredOptions must be present for the service to answer any request.
var requiredOptions = []string{
	OptGenderQuestionID,
	OptSchoolQuestionID,
	OptMaleSportQuestionIDs,
	OptFemaleSportQuestionIDs,
	OptAthleteTicketIDs,
}

// Provider gives access to the rules file. The file is loaded on every call,
// so edits are picked up without a restart.
type Provider struct {
	path string
}

// New creates a provider reading the rules file at path.
func New(path string) *Provider {
	return &Provider{path: path}
}

// Path returns the rules file location.
func (p *Provider) Path() string {
	return p.path
}

func (p *Provider) load() (*ini.File, error) {
	f, err := ini.Load(p.path)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules file %s: %w", p.path, err)
	}
	return f, nil
}

// Validate checks that the rules file loads and carries every required option.
func (p *Provider) Validate() error {
	for _, name := range requiredOptions {
		if _, err := p.Option(name); err != nil {
			return err
		}
	}
	return nil
}

// Option returns the raw value of a [main] option.
func (p *Provider) Option(name string) (string, error) {
	f, err := p.load()
	if err != nil {
		return "", err
	}
	sec, err := f.GetSection(mainSection)
	if err != nil {
		return "", sportModel.ErrMissingMainSection
	}
	if !sec.HasKey(name) {
		return "", fmt.Errorf("%w: %s", sportModel.ErrMissingOption, name)
	}
	return sec.Key(name).String(), nil
}

// IntOption returns a [main] option parsed as an integer.
func (p *Provider) IntOption(name string) (int, error) {
	raw, err := p.Option(name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", sportModel.ErrInvalidOption, name, raw)
	}
	return v, nil
}

// IntListOption returns a comma separated [main] option as integers.
// Surrounding parentheses are tolerated.
func (p *Provider) IntListOption(name string) ([]int64, error) {
	raw, err := p.Option(name)
	if err != nil {
		return nil, err
	}
	trimmed := strings.Trim(strings.TrimSpace(raw), "()")
	if trimmed == "" {
		return []int64{}, nil
	}

	parts := strings.Split(trimmed, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s contains %q", sportModel.ErrInvalidOption, name, part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// GenderQuestionID returns the id of the question holding the attendee gender.
func (p *Provider) GenderQuestionID() (int64, error) {
	v, err := p.IntOption(OptGenderQuestionID)
	return int64(v), err
}

// SchoolQuestionID returns the id of the question holding the attendee school.
func (p *Provider) SchoolQuestionID() (int64, error) {
	v, err := p.IntOption(OptSchoolQuestionID)
	return int64(v), err
}

// SportQuestionIDs returns the sport question ids asked to attendees of the given gender.
func (p *Provider) SportQuestionIDs(gender sportModel.AttendeeGender) ([]int64, error) {
	switch gender {
	case sportModel.GenderMale:
		return p.IntListOption(OptMaleSportQuestionIDs)
	case sportModel.GenderFemale:
		return p.IntListOption(OptFemaleSportQuestionIDs)
	default:
		return nil, fmt.Errorf("%w: %q", sportModel.ErrInvalidGender, gender)
	}
}

// AthleteTicketIDs returns the ticket ids granting athlete status.
func (p *Provider) AthleteTicketIDs() ([]int64, error) {
	return p.IntListOption(OptAthleteTicketIDs)
}

// FindSport resolves the rules of a sport section. Strict sports need the
// attendee gender to pick the matching team size bounds; mixed sports ignore it.
func (p *Provider) FindSport(name string, gender *sportModel.AttendeeGender) (*sportModel.Sport, error) {
	f, err := p.load()
	if err != nil {
		return nil, err
	}
	if name == mainSection {
		return nil, sportModel.ErrSportNotFound
	}
	sec, err := f.GetSection(name)
	if err != nil || !sec.HasKey("gender") {
		return nil, sportModel.ErrSportNotFound
	}

	maxTeams, err := intKey(sec, "max_teams_per_school")
	if err != nil {
		return nil, err
	}

	schoolMix := false
	if sec.HasKey("school_mix_allowed") {
		schoolMix, err = sec.Key("school_mix_allowed").Bool()
		if err != nil {
			return nil, fmt.Errorf("%w: [%s] school_mix_allowed must be a boolean",
				sportModel.ErrInvalidSportConfig, name)
		}
	}

	sport := &sportModel.Sport{
		Name:              name,
		MaxTeamsPerSchool: maxTeams,
		SchoolMixAllowed:  schoolMix,
	}

	switch kind := sec.Key("gender").String(); kind {
	case "mixed":
		if !sec.HasKey("min") || !sec.HasKey("max") {
			return nil, fmt.Errorf("%w: missing fields under [%s], it should include fields 'min' and 'max'",
				sportModel.ErrInvalidSportConfig, name)
		}
		if sport.MinPlayers, err = intKey(sec, "min"); err != nil {
			return nil, err
		}
		if sport.MaxPlayers, err = intKey(sec, "max"); err != nil {
			return nil, err
		}
		sport.Gender = sportModel.SportGenderMixed
	case "strict":
		for _, key := range []string{"minM", "maxM", "minF", "maxF"} {
			if !sec.HasKey(key) {
				return nil, fmt.Errorf(
					"%w: missing fields under [%s], it should include fields 'minM', 'maxM', 'minF' and 'maxF'",
					sportModel.ErrInvalidSportConfig, name)
			}
		}
		if gender == nil {
			return nil, fmt.Errorf("%w: %s", sportModel.ErrGenderRequired, name)
		}
		suffix := "M"
		if *gender == sportModel.GenderFemale {
			suffix = "F"
		}
		if sport.MinPlayers, err = intKey(sec, "min"+suffix); err != nil {
			return nil, err
		}
		if sport.MaxPlayers, err = intKey(sec, "max"+suffix); err != nil {
			return nil, err
		}
		sport.Gender = gender.SportGender()
	default:
		return nil, fmt.Errorf("%w: invalid sport type under [%s], it has to be either 'mixed' or 'strict': %q is invalid",
			sportModel.ErrInvalidSportConfig, name, kind)
	}

	if sport.MinPlayers < 1 || sport.MinPlayers > sport.MaxPlayers {
		return nil, fmt.Errorf("%w: [%s] team size bounds must satisfy 1 <= min <= max, got %d..%d",
			sportModel.ErrInvalidSportConfig, name, sport.MinPlayers, sport.MaxPlayers)
	}

	return sport, nil
}

func intKey(sec *ini.Section, key string) (int, error) {
	if !sec.HasKey(key) {
		return 0, fmt.Errorf("%w: missing %s in [%s]", sportModel.ErrInvalidSportConfig, key, sec.Name())
	}
	v, err := sec.Key(key).Int()
	if err != nil {
		return 0, fmt.Errorf("%w: %s in [%s] must be an integer", sportModel.ErrInvalidSportConfig, key, sec.Name())
	}
	return v, nil
}

// IsUserError reports whether a FindSport error is caused by the caller's input
// rather than by the rules file itself.
func IsUserError(err error) bool {
	return errors.Is(err, sportModel.ErrSportNotFound) || errors.Is(err, sportModel.ErrGenderRequired)
}
