// Package testutil builds an in-memory ticketing database and a rules file for tests.
// It is imported from _test.go files only.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aerostudent/teamreg/internal/sport/provider"
)

// Ids used by the fixture data and by the rules file from WriteRules.
const (
	EventID               = 2
	GenderQuestionID      = 12
	SchoolQuestionID      = 9
	MaleSportQuestionID   = 14
	FemaleSportQuestionID = 16
	AthleteTicketID       = 3
	SupporterTicketID     = 5

	SchoolENAC int64 = 101
	SchoolISAE int64 = 102
)

// Rules is the rules file used by tests.
var Rules = fmt.Sprintf(`
[main]
gender_question_id = %d
school_question_id = %d
male_sport_question_ids = %d
female_sport_question_ids = %d
athlete_ticket_ids = %d

[Football]
gender = strict
minM = 2
maxM = 3
minF = 2
maxF = 4
max_teams_per_school = 1

[Volleyball]
gender = mixed
min = 2
max = 3
max_teams_per_school = 2
school_mix_allowed = true
`, GenderQuestionID, SchoolQuestionID, MaleSportQuestionID, FemaleSportQuestionID, AthleteTicketID)

var schema = []string{
	`CREATE TABLE orders (
		id INTEGER PRIMARY KEY,
		order_reference VARCHAR(20) NOT NULL,
		event_id INTEGER NOT NULL
	)`,
	`CREATE TABLE attendees (
		id INTEGER PRIMARY KEY,
		order_id INTEGER NOT NULL,
		ticket_id INTEGER NOT NULL,
		first_name VARCHAR(255) NOT NULL,
		last_name VARCHAR(255) NOT NULL,
		reference_index INTEGER NOT NULL,
		is_cancelled BOOLEAN NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE question_answers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		attendee_id INTEGER NOT NULL,
		question_id INTEGER NOT NULL,
		answer_text TEXT NOT NULL
	)`,
	`CREATE TABLE question_options (
		id INTEGER PRIMARY KEY,
		question_id INTEGER NOT NULL,
		name VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE teams (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		school_id INTEGER NOT NULL,
		name VARCHAR(255) NOT NULL,
		captain_id INTEGER NOT NULL,
		uuid VARCHAR(36) NOT NULL UNIQUE,
		sport VARCHAR(255) NOT NULL,
		gender VARCHAR(10) NOT NULL
	)`,
	`CREATE TABLE team_members (
		team_id INTEGER NOT NULL,
		attendee_id INTEGER NOT NULL,
		PRIMARY KEY (team_id, attendee_id)
	)`,
}

// NewDB opens an in-memory sqlite database with the ticketing schema and the
// school options. A single connection keeps every query on the same database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	for _, stmt := range schema {
		require.NoError(t, db.Exec(stmt).Error)
	}

	SeedSchools(t, db)

	return db
}

// SeedSchools inserts the ENAC and ISAE school options.
func SeedSchools(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Exec(
		"INSERT INTO question_options (id, question_id, name) VALUES (?, ?, ?), (?, ?, ?)",
		SchoolENAC, SchoolQuestionID, "ENAC",
		SchoolISAE, SchoolQuestionID, "ISAE",
	).Error)
}

// WriteRules writes Rules to a temporary file and returns a provider for it.
func WriteRules(t *testing.T) *provider.Provider {
	t.Helper()
	path := filepath.Join(t.TempDir(), "teams.conf")
	require.NoError(t, os.WriteFile(path, []byte(Rules), 0o600))
	return provider.New(path)
}

// Attendee describes one ticket holder to insert with SeedAttendee.
type Attendee struct {
	ID        int64
	Order     string
	Index     int
	TicketID  int64
	FirstName string
	LastName  string
	// Gender is the raw answer text, e.g. "Male" or "Female".
	Gender string
	// Sports are answers to the sport question matching Gender.
	Sports    []string
	School    string
	Cancelled bool
	EventID   int64
}

// Reference returns the printed order reference of the fixture.
func (a Attendee) Reference() string {
	return fmt.Sprintf("%s-%d", a.Order, a.Index)
}

// SeedAttendee inserts the order, attendee and question answers of a fixture.
func SeedAttendee(t *testing.T, db *gorm.DB, a Attendee) {
	t.Helper()

	if a.EventID == 0 {
		a.EventID = EventID
	}
	if a.TicketID == 0 {
		a.TicketID = AthleteTicketID
	}

	require.NoError(t, db.Exec(
		"INSERT INTO orders (id, order_reference, event_id) VALUES (?, ?, ?)",
		a.ID, a.Order, a.EventID).Error)
	require.NoError(t, db.Exec(
		`INSERT INTO attendees (id, order_id, ticket_id, first_name, last_name, reference_index, is_cancelled)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.ID, a.TicketID, a.FirstName, a.LastName, a.Index, a.Cancelled).Error)

	if a.Gender != "" {
		answer(t, db, a.ID, GenderQuestionID, a.Gender)
	}

	sportQuestion := MaleSportQuestionID
	if a.Gender == "Female" {
		sportQuestion = FemaleSportQuestionID
	}
	for _, s := range a.Sports {
		answer(t, db, a.ID, sportQuestion, s)
	}

	if a.School != "" {
		answer(t, db, a.ID, SchoolQuestionID, a.School)
	}
}

func answer(t *testing.T, db *gorm.DB, attendeeID int64, questionID int, text string) {
	t.Helper()
	require.NoError(t, db.Exec(
		"INSERT INTO question_answers (attendee_id, question_id, answer_text) VALUES (?, ?, ?)",
		attendeeID, questionID, text).Error)
}

// CountRows returns the number of rows of a table.
func CountRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Table(table).Count(&count).Error)
	return count
}
