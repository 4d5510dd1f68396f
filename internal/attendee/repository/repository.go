// Package repository provides read access to attendees in the ticketing database.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	attendeeModel "github.com/aerostudent/teamreg/internal/attendee/model"
)

// EventID is the ticketing event whose attendees may register teams.
const EventID = 2

// Repository defines the interface for attendee data access operations.
type Repository interface {
	// FindByReference returns the active attendee of the event matching an order reference.
	FindByReference(ctx context.Context, ref attendeeModel.Reference, genderQuestionID int64) (*attendeeModel.Identity, error)

	// FindByID returns the active attendee of the event with the given id.
	FindByID(ctx context.Context, attendeeID, genderQuestionID int64) (*attendeeModel.Identity, error)

	// GetSportAnswers returns the distinct answers given to the sport questions.
	GetSportAnswers(ctx context.Context, attendeeID int64, questionIDs []int64) ([]string, error)

	// GetSchoolID returns the school option id matching the attendee's school answer.
	GetSchoolID(ctx context.Context, attendeeID, schoolQuestionID int64) (int64, error)

	// HasTeamForSport reports whether the attendee is a member of a team in the sport.
	HasTeamForSport(ctx context.Context, attendeeID int64, sportName string) (bool, error)

	// CountSchoolTeams returns the number of teams a school registered in the sport.
	CountSchoolTeams(ctx context.Context, schoolID int64, sportName string) (int64, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new attendee repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

const identityQuery = `
	SELECT a.id, a.ticket_id, a.first_name, a.last_name,
		o.order_reference, a.reference_index, qa.answer_text AS gender_answer
	FROM orders o
	JOIN attendees a ON a.order_id = o.id
	JOIN question_answers qa ON qa.attendee_id = a.id
	WHERE o.event_id = ?
		AND qa.question_id = ?
		AND a.is_cancelled = ?`

// FindByReference returns the active attendee of the event matching an order reference.
func (r *repository) FindByReference(
	ctx context.Context,
	ref attendeeModel.Reference,
	genderQuestionID int64,
) (*attendeeModel.Identity, error) {
	r.logger.Debugw("FindByReference called", "reference", ref.String())

	var identity attendeeModel.Identity
	res := r.db.WithContext(ctx).
		Raw(identityQuery+`
		AND o.order_reference = ?
		AND a.reference_index = ?
	ORDER BY a.id
	LIMIT 1`, EventID, genderQuestionID, false, ref.Order, ref.Index).
		Scan(&identity)

	if res.Error != nil {
		r.logger.Errorw("FindByReference database error", "reference", ref.String(), "error", res.Error)
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, attendeeModel.ErrAttendeeNotFound
	}

	return &identity, nil
}

// FindByID returns the active attendee of the event with the given id.
func (r *repository) FindByID(ctx context.Context, attendeeID, genderQuestionID int64) (*attendeeModel.Identity, error) {
	r.logger.Debugw("FindByID called", "attendee_id", attendeeID)

	var identity attendeeModel.Identity
	res := r.db.WithContext(ctx).
		Raw(identityQuery+`
		AND a.id = ?
	LIMIT 1`, EventID, genderQuestionID, false, attendeeID).
		Scan(&identity)

	if res.Error != nil {
		r.logger.Errorw("FindByID database error", "attendee_id", attendeeID, "error", res.Error)
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, attendeeModel.ErrAttendeeNotFound
	}

	return &identity, nil
}

// GetSportAnswers returns the distinct answers given to the sport questions.
func (r *repository) GetSportAnswers(ctx context.Context, attendeeID int64, questionIDs []int64) ([]string, error) {
	answers := []string{}
	if len(questionIDs) == 0 {
		return answers, nil
	}

	err := r.db.WithContext(ctx).
		Raw(`
			SELECT DISTINCT answer_text
			FROM question_answers
			WHERE attendee_id = ?
				AND question_id IN ?
			ORDER BY answer_text`, attendeeID, questionIDs).
		Scan(&answers).Error

	if err != nil {
		r.logger.Errorw("GetSportAnswers database error", "attendee_id", attendeeID, "error", err)
		return nil, err
	}

	r.logger.Debugw("GetSportAnswers completed", "attendee_id", attendeeID, "count", len(answers))
	return answers, nil
}

// GetSchoolID returns the school option id matching the attendee's school answer.
func (r *repository) GetSchoolID(ctx context.Context, attendeeID, schoolQuestionID int64) (int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Raw(`
			SELECT qo.id
			FROM question_options qo
			JOIN question_answers qa ON qa.question_id = qo.question_id
			WHERE qa.question_id = ?
				AND qa.attendee_id = ?
				AND qo.name = qa.answer_text
			ORDER BY qo.id`, schoolQuestionID, attendeeID).
		Scan(&ids).Error

	if err != nil {
		r.logger.Errorw("GetSchoolID database error", "attendee_id", attendeeID, "error", err)
		return 0, err
	}
	if len(ids) == 0 {
		return 0, attendeeModel.ErrSchoolNotFound
	}
	if len(ids) > 1 {
		r.logger.Warnw("several school options match the attendee answer", "attendee_id", attendeeID, "ids", ids)
	}

	return ids[0], nil
}

// HasTeamForSport reports whether the attendee is a member of a team in the sport.
func (r *repository) HasTeamForSport(ctx context.Context, attendeeID int64, sportName string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("team_members").
		Joins("JOIN teams ON teams.id = team_members.team_id").
		Where("team_members.attendee_id = ? AND teams.sport = ?", attendeeID, sportName).
		Count(&count).Error

	if err != nil {
		r.logger.Errorw("HasTeamForSport database error", "attendee_id", attendeeID, "sport", sportName, "error", err)
		return false, err
	}

	return count > 0, nil
}

// CountSchoolTeams returns the number of teams a school registered in the sport.
func (r *repository) CountSchoolTeams(ctx context.Context, schoolID int64, sportName string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("teams").
		Where("school_id = ? AND sport = ?", schoolID, sportName).
		Count(&count).Error

	if err != nil {
		r.logger.Errorw("CountSchoolTeams database error", "school_id", schoolID, "sport", sportName, "error", err)
		return 0, err
	}

	return count, nil
}
