package model

import (
	sportModel "github.com/aerostudent/teamreg/internal/sport/model"
)

// Team represents a registered team.
// Matches the teams table schema.
type Team struct {
	ID        int64                  `gorm:"primaryKey;column:id;autoIncrement"                 json:"id"`
	SchoolID  int64                  `gorm:"column:school_id;not null"                          json:"school_id"`
	Name      string                 `gorm:"column:name;type:varchar(255);not null"             json:"name"`
	CaptainID int64                  `gorm:"column:captain_id;not null"                         json:"captain_id"`
	UUID      string                 `gorm:"column:uuid;type:varchar(36);not null;uniqueIndex"  json:"uuid"`
	Sport     string                 `gorm:"column:sport;type:varchar(255);not null"            json:"sport"`
	Gender    sportModel.SportGender `gorm:"column:gender;type:varchar(10);not null"            json:"gender"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// TeamMember links an attendee to a team.
// Matches the team_members table schema.
type TeamMember struct {
	TeamID     int64 `gorm:"primaryKey;column:team_id;autoIncrement:false"`
	AttendeeID int64 `gorm:"primaryKey;column:attendee_id;autoIncrement:false"`
}

// TableName specifies the table name for GORM.
func (TeamMember) TableName() string {
	return "team_members"
}
