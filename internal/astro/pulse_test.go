package astro

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPulseDayRoundTrip(t *testing.T) {
	for _, day := range []float64{0, 0.5, 1, 270.25, 365472, 999999.1234} {
		pulses := PulsesFromAstroDay(day)
		back := AstroDayFromPulse(float64(pulses))
		assert.InDelta(t, SanitizeAstroDay(day), back, 1.0/PulsesPerDay,
			"round trip for day %v", day)
	}
}

func TestDayPulseRoundTrip(t *testing.T) {
	for _, pulses := range []float64{0, 1, 86400, 123456789} {
		day := AstroDayFromPulse(pulses)
		back := PulsesFromAstroDay(day)
		assert.InDelta(t, pulses, float64(back), 1, "round trip for pulse %v", pulses)
	}
}

func TestPulsesIntoSolarDay(t *testing.T) {
	assert.Equal(t, int64(0), PulsesIntoSolarDay(42))
	assert.Equal(t, int64(43200), PulsesIntoSolarDay(42.5))
	assert.Equal(t, int64(21600), PulsesIntoSolarDay(0.25))
}

func TestPulsesPerSolarTurn_FlooredWholePulses(t *testing.T) {
	assert.Equal(t, int64(math.Floor(DaysPerSolarTurn*PulsesPerDay)), PulsesPerSolarTurn)
}

func TestSanitizers_NeverReject(t *testing.T) {
	assert.Equal(t, int64(0), SanitizePulseCount(-5))
	assert.Equal(t, int64(0), SanitizePulseCount(math.NaN()))
	assert.Equal(t, int64(0), SanitizePulseCount(math.Inf(1)))

	assert.Equal(t, 0.0, SanitizeAstroDay(-123.4))
	assert.Equal(t, 0.0, SanitizeAstroDay(math.NaN()))
	assert.Equal(t, 1.2346, SanitizeAstroDay(1.23456789))

	assert.Equal(t, 0.0, SanitizeSolarDay(-1))
	assert.InDelta(t, 0.7578, SanitizeSolarDay(366), 1e-9)
	assert.Equal(t, 100.0, SanitizeSolarDay(100))
}

func TestWatchTimeFromPulse(t *testing.T) {
	wt := WatchTimeFromPulse(0)
	assert.Equal(t, "1-bell-1 of the First Watch", wt.Spoken)
	assert.Equal(t, "1/1:1", wt.Written)
	assert.Equal(t, "00:00:00", wt.Earth)

	// 43200 pulses = noon = start of the fourth watch.
	noon := WatchTimeFromPulse(43200)
	assert.Equal(t, "12:00:00", noon.Earth)
	assert.Equal(t, "4/1:1", noon.Written)
}
