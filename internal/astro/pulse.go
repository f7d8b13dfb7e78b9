// Pulse/day conversion. A galactic pulse is the smallest sub-day tick;
// the pulsar-clock count and the fractional astro-day count are two views
// of the same elapsed time and must round-trip within one pulse.
package astro

import "math"

// AstroDayFromPulse converts a pulse count since the astro epoch into a
// fractional astro day.
func AstroDayFromPulse(pulses float64) float64 {
	p := SanitizePulseCount(pulses)
	return SanitizeAstroDay(float64(p-AstroEpochPulse) / PulsesPerDay)
}

// PulsesFromAstroDay converts a fractional astro day into the pulse count
// since the astro epoch at that moment.
func PulsesFromAstroDay(day float64) int64 {
	d := SanitizeAstroDay(day)
	return AstroEpochPulse + int64(math.Round(d*PulsesPerDay))
}

// PulsesIntoSolarDay returns the number of pulses elapsed since midnight
// of the given day, ignoring the whole-day portion.
func PulsesIntoSolarDay(day float64) int64 {
	d := SanitizeAstroDay(day)
	_, frac := math.Modf(d)
	return int64(math.Round(frac * PulsesPerDay))
}
