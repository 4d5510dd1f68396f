package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sportModel "github.com/aerostudent/teamreg/internal/sport/model"
)

func TestParseReference(t *testing.T) {
	t.Run("valid reference", func(t *testing.T) {
		ref, err := ParseReference("ABC12-3")

		require.NoError(t, err)
		assert.Equal(t, "ABC12", ref.Order)
		assert.Equal(t, 3, ref.Index)
		assert.Equal(t, "ABC12-3", ref.String())
	})

	invalid := []string{
		"",
		"ABC123",
		"ABC-1-2",
		"A-B-C",
		"-1",
		"ABC-",
		"ABC-x",
		"ABC--1",
		"ABCDEFGHIJ-1",
	}
	for _, s := range invalid {
		t.Run("invalid "+s, func(t *testing.T) {
			_, err := ParseReference(s)
			assert.ErrorIs(t, err, ErrInvalidReference)
		})
	}
}

func football(g sportModel.SportGender) sportModel.Sport {
	return sportModel.Sport{Name: "Football", MinPlayers: 7, MaxPlayers: 11, Gender: g, MaxTeamsPerSchool: 1}
}

func volleyball() sportModel.Sport {
	return sportModel.Sport{Name: "Volleyball", MinPlayers: 4, MaxPlayers: 8, Gender: sportModel.SportGenderMixed, MaxTeamsPerSchool: 1}
}

func TestHasCorrectGender(t *testing.T) {
	male := &Attendee{Gender: sportModel.GenderMale}
	female := &Attendee{Gender: sportModel.GenderFemale}

	t.Run("mixed sport accepts both genders", func(t *testing.T) {
		mixed := volleyball()
		assert.True(t, HasCorrectGender(male, &mixed))
		assert.True(t, HasCorrectGender(female, &mixed))
	})

	t.Run("strict sport accepts matching gender only", func(t *testing.T) {
		men := football(sportModel.SportGenderMale)
		women := football(sportModel.SportGenderFemale)
		assert.True(t, HasCorrectGender(male, &men))
		assert.False(t, HasCorrectGender(female, &men))
		assert.True(t, HasCorrectGender(female, &women))
		assert.False(t, HasCorrectGender(male, &women))
	})
}

func TestCheckEligibility(t *testing.T) {
	athleteTickets := []int64{3, 4}
	men := football(sportModel.SportGenderMale)
	mixed := volleyball()

	t.Run("no declared sports is always invalid sport", func(t *testing.T) {
		a := &Attendee{TicketID: 99, Gender: sportModel.GenderFemale, Sports: []sportModel.Sport{}}

		assert.Equal(t, StatusInvalidSport, CheckEligibility(a, &men, athleteTickets))
		assert.Equal(t, StatusInvalidSport, CheckEligibility(a, &mixed, athleteTickets))
	})

	t.Run("supporter ticket", func(t *testing.T) {
		a := &Attendee{TicketID: 99, Gender: sportModel.GenderMale, Sports: []sportModel.Sport{men}}

		assert.Equal(t, StatusNotAnAthlete, CheckEligibility(a, &men, athleteTickets))
	})

	t.Run("sport not declared", func(t *testing.T) {
		a := &Attendee{TicketID: 3, Gender: sportModel.GenderMale, Sports: []sportModel.Sport{men}}

		assert.Equal(t, StatusSportNotRegistered, CheckEligibility(a, &mixed, athleteTickets))
	})

	t.Run("wrong gender", func(t *testing.T) {
		women := football(sportModel.SportGenderFemale)
		a := &Attendee{TicketID: 3, Gender: sportModel.GenderMale, Sports: []sportModel.Sport{men}}

		assert.Equal(t, StatusInvalidGender, CheckEligibility(a, &women, athleteTickets))
	})

	t.Run("eligible", func(t *testing.T) {
		a := &Attendee{TicketID: 4, Gender: sportModel.GenderMale, Sports: []sportModel.Sport{men, mixed}}

		assert.Equal(t, StatusOk, CheckEligibility(a, &men, athleteTickets))
		assert.Equal(t, StatusOk, CheckEligibility(a, &mixed, athleteTickets))
	})
}

func TestStatus_JSON(t *testing.T) {
	data, err := json.Marshal(map[string]Status{"status": StatusAlreadyInATeam})

	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"AlreadyInATeam"}`, string(data))
	assert.Equal(t, "Participant is already in a team", StatusAlreadyInATeam.Message())
}
