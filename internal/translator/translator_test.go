package translator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate_FixedTopLevelKeys(t *testing.T) {
	report := TranslateDay(400000)

	raw, err := json.Marshal(report)
	require.NoError(t, err)

	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &m))

	for _, key := range []string{
		"Rosetta (Canonical)",
		"Fatunik Calendar",
		"Lunar A Calendar",
		"Lunar B Calendar",
		"Moon Phases",
		"Wanderers and Events",
		"Galactic Time (Pulsar Clock)",
		"Sky Context",
	} {
		assert.Contains(t, m, key)
	}
	assert.Len(t, m, 8)
}

func TestTranslate_RosettaEntry(t *testing.T) {
	report := Translate(731, 12)

	assert.Equal(t, 731.0, report.Rosetta.Day)
	assert.Equal(t, "12:00", report.Rosetta.Hour)
	assert.Equal(t, 2, report.Rosetta.Turn)
	assert.Equal(t, 1, report.Rosetta.DayInTurn)
	assert.NotEmpty(t, report.Rosetta.Season.Name)
	assert.NotEmpty(t, report.Rosetta.Watch.Spoken)
}

func TestTranslate_GalacticPulseCount(t *testing.T) {
	report := Translate(1, 0)
	assert.Equal(t, int64(86400), report.Galactic.PulseCount)

	noon := Translate(1, 12)
	assert.Equal(t, int64(86400+43200), noon.Galactic.PulseCount)
}

func TestTranslate_CivilDayBoundaries(t *testing.T) {
	// Before dawn the Fatunik date is still the previous day's.
	predawn := Translate(365473, 3)
	noon := Translate(365473, 12)
	assert.Equal(t, noon.Fatunik.Fatunik.TurnDay-1, predawn.Fatunik.Fatunik.TurnDay)

	// Before dusk the lunar date is still the previous day's.
	afternoon := Translate(182725, 15)
	night := Translate(182725, 20)
	assert.Equal(t, night.LunarA.Day-1, afternoon.LunarA.Day)
}

func TestTranslate_SanitizesInputs(t *testing.T) {
	// Negative days resolve to the epoch, out-of-range hours to noon.
	report := Translate(-50, 99)
	assert.Equal(t, 0.0, report.Rosetta.Day)
	assert.Equal(t, "12:00", report.Rosetta.Hour)
}

func TestTranslate_ContainsWholeSky(t *testing.T) {
	report := TranslateDay(400000)
	assert.Len(t, report.Moons.Moons, 8)
	assert.Contains(t, report.Wanderers, "Aesthra")
	assert.Contains(t, report.Wanderers, "The Spark")
	assert.NotEmpty(t, report.Sky.Constellation)
	assert.NotEmpty(t, report.Sky.FixedStars)
}
