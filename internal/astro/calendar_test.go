package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalendar_DocumentedDates(t *testing.T) {
	cases := []struct {
		day     float64
		turn    int
		turnDay int
		season  string
	}{
		{-4567, 0, 0, SeasonStillness},
		{0, 0, 0, SeasonStillness},
		{270, 0, 270, SeasonWithering},
		{366, 1, 0, SeasonStillness},
		{4536, 12, 153, SeasonGreening},
		{45360, 124, 69, SeasonStillness},
		{182717, 500, 92, SeasonGreening}, // start of the lunar calendars
		{365472, 1000, 222, SeasonBlazing}, // start of the Fatunik calendar
		{452431, 1238, 251, SeasonBlazing},
		{513400, 1405, 223, SeasonBlazing},
	}

	for _, c := range cases {
		date := NewCalendar(c.day).Date()
		assert.Equal(t, c.turn, date.Astro.Turn, "day %v", c.day)
		assert.Equal(t, c.turnDay, date.Astro.TurnDay, "day %v", c.day)
		assert.Equal(t, c.season, date.Astro.Season.Name, "day %v", c.day)
	}
}

func TestCalendar_PreEpochResolvesToZero(t *testing.T) {
	for _, day := range []float64{-1, -4567, -1e9, 0} {
		cal := NewCalendar(day)
		assert.Equal(t, 0, cal.Turn())
		assert.Equal(t, 0, cal.TurnDay())
	}
}

func TestSeasonFromTurnDay_AnchorBoundaries(t *testing.T) {
	assert.Equal(t, SeasonStillness, SeasonFromTurnDay(0).Name)
	assert.Equal(t, SeasonStillness, SeasonFromTurnDay(79).Name)
	assert.Equal(t, SeasonGreening, SeasonFromTurnDay(80).Name)
	assert.Equal(t, SeasonGreening, SeasonFromTurnDay(171).Name)
	assert.Equal(t, SeasonBlazing, SeasonFromTurnDay(172).Name)
	assert.Equal(t, SeasonBlazing, SeasonFromTurnDay(265).Name)
	assert.Equal(t, SeasonWithering, SeasonFromTurnDay(266).Name)
	assert.Equal(t, SeasonWithering, SeasonFromTurnDay(354).Name)
	assert.Equal(t, SeasonStillness, SeasonFromTurnDay(355).Name)
	assert.Equal(t, SeasonStillness, SeasonFromTurnDay(365.2).Name)
}
