// Package service resolves attendees from order references and checks their eligibility.
package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	attendeeModel "github.com/aerostudent/teamreg/internal/attendee/model"
	"github.com/aerostudent/teamreg/internal/attendee/repository"
	sportModel "github.com/aerostudent/teamreg/internal/sport/model"
)

// Rules is the part of the rules file the attendee service reads.
type Rules interface {
	GenderQuestionID() (int64, error)
	SchoolQuestionID() (int64, error)
	SportQuestionIDs(gender sportModel.AttendeeGender) ([]int64, error)
	AthleteTicketIDs() ([]int64, error)
	FindSport(name string, gender *sportModel.AttendeeGender) (*sportModel.Sport, error)
}

// Service defines the interface for attendee business logic operations.
type Service interface {
	// Retrieve resolves the attendee behind an order reference.
	Retrieve(ctx context.Context, reference string) (*attendeeModel.Attendee, error)

	// Get resolves an attendee by id.
	Get(ctx context.Context, attendeeID int64) (*attendeeModel.Attendee, error)

	// Validate checks whether the attendee may join a team in the sport.
	Validate(ctx context.Context, a *attendeeModel.Attendee, sport *sportModel.Sport) (attendeeModel.Status, error)

	// CanSchoolRegisterTeam reports whether the attendee's school is below its team quota for the sport.
	CanSchoolRegisterTeam(ctx context.Context, a *attendeeModel.Attendee, sport *sportModel.Sport) (bool, error)
}

type service struct {
	repo   repository.Repository
	rules  Rules
	logger *zap.SugaredLogger
}

// New creates a new attendee service instance.
func New(repo repository.Repository, rules Rules, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		rules:  rules,
		logger: logger,
	}
}

// Retrieve resolves the attendee behind an order reference.
func (s *service) Retrieve(ctx context.Context, reference string) (*attendeeModel.Attendee, error) {
	ref, err := attendeeModel.ParseReference(reference)
	if err != nil {
		return nil, err
	}

	genderQuestionID, err := s.rules.GenderQuestionID()
	if err != nil {
		return nil, err
	}

	identity, err := s.repo.FindByReference(ctx, ref, genderQuestionID)
	if err != nil {
		return nil, err
	}

	a, err := s.compose(ctx, identity)
	if err != nil {
		return nil, err
	}
	// Keep the reference as typed by the user rather than the normalized form.
	a.Reference = reference
	return a, nil
}

// Get resolves an attendee by id.
func (s *service) Get(ctx context.Context, attendeeID int64) (*attendeeModel.Attendee, error) {
	genderQuestionID, err := s.rules.GenderQuestionID()
	if err != nil {
		return nil, err
	}

	identity, err := s.repo.FindByID(ctx, attendeeID, genderQuestionID)
	if err != nil {
		return nil, err
	}

	return s.compose(ctx, identity)
}

// compose resolves gender, sports and school of a raw attendee row.
func (s *service) compose(ctx context.Context, identity *attendeeModel.Identity) (*attendeeModel.Attendee, error) {
	var gender sportModel.AttendeeGender
	switch identity.GenderAnswer {
	case "Male":
		gender = sportModel.GenderMale
	case "Female":
		gender = sportModel.GenderFemale
	default:
		s.logger.Errorw("unknown gender answer in ticketing data",
			"attendee_id", identity.ID, "answer", identity.GenderAnswer)
		return nil, fmt.Errorf("%w: attendee %d answered %q", attendeeModel.ErrUnknownGender,
			identity.ID, identity.GenderAnswer)
	}

	sports, err := s.resolveSports(ctx, identity.ID, gender)
	if err != nil {
		return nil, err
	}

	schoolQuestionID, err := s.rules.SchoolQuestionID()
	if err != nil {
		return nil, err
	}
	schoolID, err := s.repo.GetSchoolID(ctx, identity.ID, schoolQuestionID)
	if err != nil {
		if errors.Is(err, attendeeModel.ErrSchoolNotFound) {
			s.logger.Errorw("attendee has no matching school option", "attendee_id", identity.ID)
			return nil, fmt.Errorf("%w: attendee %d", err, identity.ID)
		}
		return nil, err
	}

	return &attendeeModel.Attendee{
		ID:        identity.ID,
		TicketID:  identity.TicketID,
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
		Reference: identity.Reference(),
		Gender:    gender,
		Sports:    sports,
		SchoolID:  schoolID,
	}, nil
}

// resolveSports maps sport answers to configured team sports.
// Answers with no sport section are individual sports and are skipped.
func (s *service) resolveSports(
	ctx context.Context,
	attendeeID int64,
	gender sportModel.AttendeeGender,
) ([]sportModel.Sport, error) {
	questionIDs, err := s.rules.SportQuestionIDs(gender)
	if err != nil {
		return nil, err
	}

	answers, err := s.repo.GetSportAnswers(ctx, attendeeID, questionIDs)
	if err != nil {
		return nil, err
	}

	sports := make([]sportModel.Sport, 0, len(answers))
	for _, answer := range answers {
		sport, err := s.rules.FindSport(answer, &gender)
		if errors.Is(err, sportModel.ErrSportNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		sports = append(sports, *sport)
	}

	return sports, nil
}

// Validate checks whether the attendee may join a team in the sport.
func (s *service) Validate(
	ctx context.Context,
	a *attendeeModel.Attendee,
	sport *sportModel.Sport,
) (attendeeModel.Status, error) {
	athleteTickets, err := s.rules.AthleteTicketIDs()
	if err != nil {
		return attendeeModel.StatusOk, err
	}

	if status := attendeeModel.CheckEligibility(a, sport, athleteTickets); status != attendeeModel.StatusOk {
		return status, nil
	}

	inTeam, err := s.repo.HasTeamForSport(ctx, a.ID, sport.Name)
	if err != nil {
		return attendeeModel.StatusOk, err
	}
	if inTeam {
		return attendeeModel.StatusAlreadyInATeam, nil
	}

	return attendeeModel.StatusOk, nil
}

// CanSchoolRegisterTeam reports whether the attendee's school is below its team quota for the sport.
func (s *service) CanSchoolRegisterTeam(
	ctx context.Context,
	a *attendeeModel.Attendee,
	sport *sportModel.Sport,
) (bool, error) {
	count, err := s.repo.CountSchoolTeams(ctx, a.SchoolID, sport.Name)
	if err != nil {
		return false, err
	}
	return count < int64(sport.MaxTeamsPerSchool), nil
}
