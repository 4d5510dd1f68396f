package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSportGender(t *testing.T) {
	tests := []struct {
		input   string
		want    SportGender
		wantErr bool
	}{
		{"M", SportGenderMale, false},
		{"F", SportGenderFemale, false},
		{"Mixed", SportGenderMixed, false},
		{"mixed", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSportGender(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidGender)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSportGender_AttendeeGender(t *testing.T) {
	assert.Equal(t, GenderMale, *SportGenderMale.AttendeeGender())
	assert.Equal(t, GenderFemale, *SportGenderFemale.AttendeeGender())
	assert.Nil(t, SportGenderMixed.AttendeeGender())
}

func TestGender_UnmarshalJSON(t *testing.T) {
	t.Run("valid sport gender", func(t *testing.T) {
		var payload struct {
			Gender SportGender `json:"gender"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"gender":"Mixed"}`), &payload))
		assert.Equal(t, SportGenderMixed, payload.Gender)
	})

	t.Run("unknown sport gender", func(t *testing.T) {
		var payload struct {
			Gender SportGender `json:"gender"`
		}
		err := json.Unmarshal([]byte(`{"gender":"X"}`), &payload)
		assert.ErrorIs(t, err, ErrInvalidGender)
	})

	t.Run("unknown attendee gender", func(t *testing.T) {
		var g AttendeeGender
		err := json.Unmarshal([]byte(`"Mixed"`), &g)
		assert.ErrorIs(t, err, ErrInvalidGender)
	})
}

func TestSport_AcceptsTeamSize(t *testing.T) {
	sport := Sport{Name: "Football", MinPlayers: 7, MaxPlayers: 11}

	assert.False(t, sport.AcceptsTeamSize(6))
	assert.True(t, sport.AcceptsTeamSize(7))
	assert.True(t, sport.AcceptsTeamSize(9))
	assert.True(t, sport.AcceptsTeamSize(11))
	assert.False(t, sport.AcceptsTeamSize(12))
}
