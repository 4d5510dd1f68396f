// Package service provides business logic layer for team module.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	attendeeModel "github.com/aerostudent/teamreg/internal/attendee/model"
	attendeeService "github.com/aerostudent/teamreg/internal/attendee/service"
	sportModel "github.com/aerostudent/teamreg/internal/sport/model"
	teamModel "github.com/aerostudent/teamreg/internal/team/model"
	"github.com/aerostudent/teamreg/internal/team/repository"
)

// SportFinder resolves sport rules by name.
type SportFinder interface {
	FindSport(name string, gender *sportModel.AttendeeGender) (*sportModel.Sport, error)
}

// Service defines the interface for team business logic operations.
type Service interface {
	// ValidateTeam resolves and checks every member of a proposed team.
	ValidateTeam(ctx context.Context, refs []string, sport *sportModel.Sport) ([]*attendeeModel.Attendee, error)

	// CreateTeam validates and registers a new team.
	CreateTeam(ctx context.Context, req *teamModel.CreateTeamRequest) (*teamModel.Team, error)

	// CanRegister checks that a prospective captain may start a team in the sport.
	CanRegister(ctx context.Context, sportName, ref string) error

	// GetTeam returns a team with its members.
	GetTeam(ctx context.Context, teamUUID string) (*teamModel.TeamResponse, error)

	// AddMember validates an attendee and adds them to an existing team.
	AddMember(ctx context.Context, teamUUID, ref string) (*attendeeModel.Attendee, error)

	// RemoveMember removes an attendee from a team.
	RemoveMember(ctx context.Context, teamUUID, ref string) error
}

type service struct {
	repo      repository.Repository
	attendees attendeeService.Service
	sports    SportFinder
	db        *gorm.DB
	logger    *zap.SugaredLogger
}

// New creates a new team service instance.
func New(
	repo repository.Repository,
	attendees attendeeService.Service,
	sports SportFinder,
	db *gorm.DB,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:      repo,
		attendees: attendees,
		sports:    sports,
		db:        db,
		logger:    logger,
	}
}

// ValidateTeam resolves and checks every member of a proposed team.
// Members are returned in input order; the first one is the captain.
func (s *service) ValidateTeam(
	ctx context.Context,
	refs []string,
	sport *sportModel.Sport,
) ([]*attendeeModel.Attendee, error) {
	seen := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		if _, ok := seen[ref]; ok {
			return nil, fmt.Errorf("%w: %s", teamModel.ErrDuplicateReference, ref)
		}
		seen[ref] = struct{}{}
	}

	members := make([]*attendeeModel.Attendee, 0, len(refs))
	for _, ref := range refs {
		a, err := s.attendees.Retrieve(ctx, ref)
		if err != nil {
			return nil, fmt.Errorf("member %s: %w", ref, err)
		}

		status, err := s.attendees.Validate(ctx, a, sport)
		if err != nil {
			return nil, fmt.Errorf("member %s: %w", ref, err)
		}
		if status != attendeeModel.StatusOk {
			return nil, teamModel.NewMemberError(a, status)
		}

		members = append(members, a)
	}

	if !sport.SchoolMixAllowed && len(members) > 0 {
		captain := members[0]
		for _, m := range members[1:] {
			if m.SchoolID != captain.SchoolID {
				return nil, &teamModel.SchoolMismatchError{
					FirstName: m.FirstName,
					LastName:  m.LastName,
					Reference: m.Reference,
				}
			}
		}
	}

	return members, nil
}

// CreateTeam validates and registers a new team.
func (s *service) CreateTeam(ctx context.Context, req *teamModel.CreateTeamRequest) (*teamModel.Team, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, teamModel.ErrInvalidTeamName
	}

	if len(req.Refs) == 0 {
		return nil, fmt.Errorf("%w: a team needs at least its captain", teamModel.ErrInvalidTeamSize)
	}

	sport, err := s.sports.FindSport(req.Sport, req.Gender.AttendeeGender())
	if err != nil {
		return nil, err
	}

	if !sport.AcceptsTeamSize(len(req.Refs)) {
		return nil, fmt.Errorf("%w: %s teams need between %d and %d players, got %d",
			teamModel.ErrInvalidTeamSize, sport.Name, sport.MinPlayers, sport.MaxPlayers, len(req.Refs))
	}

	members, err := s.ValidateTeam(ctx, req.Refs, sport)
	if err != nil {
		return nil, err
	}
	captain := members[0]

	// The quota is counted on teams.school_id, so the stored school must be the captain's.
	if req.SchoolID != 0 && req.SchoolID != captain.SchoolID {
		return nil, fmt.Errorf("%w: got %d", teamModel.ErrSchoolIDMismatch, req.SchoolID)
	}

	allowed, err := s.attendees.CanSchoolRegisterTeam(ctx, captain, sport)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("%w: %s allows %d team(s) per school",
			teamModel.ErrSchoolQuotaReached, sport.Name, sport.MaxTeamsPerSchool)
	}

	team := &teamModel.Team{
		SchoolID:  captain.SchoolID,
		Name:      name,
		CaptainID: captain.ID,
		UUID:      uuid.NewString(),
		Sport:     sport.Name,
		Gender:    sport.Gender,
	}

	// Use transaction to ensure atomicity
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		if err := txRepo.Create(ctx, team); err != nil {
			return fmt.Errorf("failed to insert team: %w", err)
		}

		for _, m := range members {
			if err := txRepo.AddMember(ctx, team.ID, m.ID); err != nil {
				return fmt.Errorf("failed to insert member %d: %w", m.ID, err)
			}
		}

		return nil
	})
	if err != nil {
		s.logger.Errorw("team creation rolled back", "name", name, "sport", sport.Name, "error", err)
		return nil, err
	}

	s.logger.Infow("team created",
		"team_id", team.ID,
		"uuid", team.UUID,
		"sport", team.Sport,
		"gender", team.Gender,
		"members", len(members),
	)
	return team, nil
}

// CanRegister checks that a prospective captain may start a team in the sport.
func (s *service) CanRegister(ctx context.Context, sportName, ref string) error {
	captain, err := s.attendees.Retrieve(ctx, ref)
	if err != nil {
		return err
	}

	sport, err := s.sports.FindSport(sportName, &captain.Gender)
	if err != nil {
		return err
	}

	status, err := s.attendees.Validate(ctx, captain, sport)
	if err != nil {
		return err
	}
	if status != attendeeModel.StatusOk {
		return teamModel.NewMemberError(captain, status)
	}

	allowed, err := s.attendees.CanSchoolRegisterTeam(ctx, captain, sport)
	if err != nil {
		return err
	}
	if !allowed {
		return fmt.Errorf("%w: %s allows %d team(s) per school",
			teamModel.ErrSchoolQuotaReached, sport.Name, sport.MaxTeamsPerSchool)
	}

	return nil
}

// GetTeam returns a team with its members.
func (s *service) GetTeam(ctx context.Context, teamUUID string) (*teamModel.TeamResponse, error) {
	team, err := s.repo.GetByUUID(ctx, teamUUID)
	if err != nil {
		return nil, err
	}

	ids, err := s.repo.GetMemberIDs(ctx, team)
	if err != nil {
		return nil, err
	}

	members := make([]*attendeeModel.Attendee, 0, len(ids))
	for _, id := range ids {
		a, err := s.attendees.Get(ctx, id)
		if errors.Is(err, attendeeModel.ErrAttendeeNotFound) {
			// Cancelled after registration.
			s.logger.Warnw("team member no longer active", "team_id", team.ID, "attendee_id", id)
			continue
		}
		if err != nil {
			return nil, err
		}
		members = append(members, a)
	}

	return &teamModel.TeamResponse{
		UUID:      team.UUID,
		Name:      team.Name,
		Sport:     team.Sport,
		Gender:    team.Gender,
		SchoolID:  team.SchoolID,
		CaptainID: team.CaptainID,
		Members:   members,
	}, nil
}

// AddMember validates an attendee and adds them to an existing team.
func (s *service) AddMember(ctx context.Context, teamUUID, ref string) (*attendeeModel.Attendee, error) {
	team, err := s.repo.GetByUUID(ctx, teamUUID)
	if err != nil {
		return nil, err
	}

	sport, err := s.sports.FindSport(team.Sport, team.Gender.AttendeeGender())
	if err != nil {
		return nil, err
	}

	a, err := s.attendees.Retrieve(ctx, ref)
	if err != nil {
		return nil, err
	}

	status, err := s.attendees.Validate(ctx, a, sport)
	if err != nil {
		return nil, err
	}
	if status != attendeeModel.StatusOk {
		return nil, teamModel.NewMemberError(a, status)
	}

	if !sport.SchoolMixAllowed {
		captain, err := s.attendees.Get(ctx, team.CaptainID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve captain of team %s: %w", team.UUID, err)
		}
		if captain.SchoolID != a.SchoolID {
			return nil, &teamModel.SchoolMismatchError{FirstName: a.FirstName, LastName: a.LastName, Reference: a.Reference}
		}
	}

	count, err := s.repo.CountMembers(ctx, team.ID)
	if err != nil {
		return nil, err
	}
	if int(count)+1 > sport.MaxPlayers {
		return nil, fmt.Errorf("%w: %s teams take at most %d players", teamModel.ErrTeamFull, sport.Name, sport.MaxPlayers)
	}

	if err := s.repo.AddMember(ctx, team.ID, a.ID); err != nil {
		return nil, err
	}

	s.logger.Infow("team member added", "team_id", team.ID, "attendee_id", a.ID)
	return a, nil
}

// RemoveMember removes an attendee from a team.
func (s *service) RemoveMember(ctx context.Context, teamUUID, ref string) error {
	team, err := s.repo.GetByUUID(ctx, teamUUID)
	if err != nil {
		return err
	}

	a, err := s.attendees.Retrieve(ctx, ref)
	if err != nil {
		return err
	}
	if a.ID == team.CaptainID {
		return teamModel.ErrCaptainRemoval
	}

	if err := s.repo.RemoveMember(ctx, team.ID, a.ID); err != nil {
		return err
	}

	s.logger.Infow("team member removed", "team_id", team.ID, "attendee_id", a.ID)
	return nil
}
