// Package repository provides data access layer for team module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	teamModel "github.com/aerostudent/teamreg/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// Create inserts a team row and fills its generated id.
	Create(ctx context.Context, team *teamModel.Team) error

	// GetByUUID finds a team by its public token.
	GetByUUID(ctx context.Context, uuid string) (*teamModel.Team, error)

	// AddMember inserts one membership row.
	AddMember(ctx context.Context, teamID, attendeeID int64) error

	// RemoveMember deletes one membership row.
	RemoveMember(ctx context.Context, teamID, attendeeID int64) error

	// GetMemberIDs returns the attendee ids of a team, captain first.
	GetMemberIDs(ctx context.Context, team *teamModel.Team) ([]int64, error)

	// CountMembers returns the number of members of a team.
	CountMembers(ctx context.Context, teamID int64) (int64, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create inserts a team row and fills its generated id.
func (r *repository) Create(ctx context.Context, team *teamModel.Team) error {
	if err := r.db.WithContext(ctx).Create(team).Error; err != nil {
		r.logger.Errorw("Create team database error", "name", team.Name, "sport", team.Sport, "error", err)
		return err
	}

	r.logger.Debugw("team row inserted", "team_id", team.ID, "uuid", team.UUID)
	return nil
}

// GetByUUID finds a team by its public token.
func (r *repository) GetByUUID(ctx context.Context, uuid string) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Where("uuid = ?", uuid).
		First(&team).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

// AddMember inserts one membership row.
func (r *repository) AddMember(ctx context.Context, teamID, attendeeID int64) error {
	member := &teamModel.TeamMember{TeamID: teamID, AttendeeID: attendeeID}
	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		r.logger.Errorw("AddMember database error", "team_id", teamID, "attendee_id", attendeeID, "error", err)
		return err
	}
	return nil
}

// RemoveMember deletes one membership row.
func (r *repository) RemoveMember(ctx context.Context, teamID, attendeeID int64) error {
	res := r.db.WithContext(ctx).
		Where("team_id = ? AND attendee_id = ?", teamID, attendeeID).
		Delete(&teamModel.TeamMember{})

	if res.Error != nil {
		r.logger.Errorw("RemoveMember database error", "team_id", teamID, "attendee_id", attendeeID, "error", res.Error)
		return res.Error
	}
	if res.RowsAffected == 0 {
		return teamModel.ErrMemberNotInTeam
	}
	return nil
}

// GetMemberIDs returns the attendee ids of a team, captain first.
func (r *repository) GetMemberIDs(ctx context.Context, team *teamModel.Team) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&teamModel.TeamMember{}).
		Where("team_id = ?", team.ID).
		Order("attendee_id").
		Pluck("attendee_id", &ids).Error

	if err != nil {
		return nil, err
	}

	ordered := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id == team.CaptainID {
			ordered = append([]int64{id}, ordered...)
			continue
		}
		ordered = append(ordered, id)
	}
	return ordered, nil
}

// CountMembers returns the number of members of a team.
func (r *repository) CountMembers(ctx context.Context, teamID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&teamModel.TeamMember{}).
		Where("team_id = ?", teamID).
		Count(&count).Error
	return count, err
}
