// Input sanitizers. Every public entry point in the engine normalizes its
// numeric input first: malformed or extreme values are clamped or wrapped,
// never rejected, so the engine always answers for any finite point on the
// timeline.
package astro

import "math"

// SanitizePulseCount clamps a pulse count to a non-negative whole number
// of pulses. Negative and non-finite values become 0.
func SanitizePulseCount(pulses float64) int64 {
	if math.IsNaN(pulses) || math.IsInf(pulses, 0) || pulses < 0 {
		return 0
	}
	return int64(pulses)
}

// SanitizeDayPulse clamps a within-day pulse count into [0, PulsesPerDay).
func SanitizeDayPulse(pulses float64) int64 {
	p := SanitizePulseCount(pulses)
	if p >= PulsesPerDay {
		p = p % PulsesPerDay
	}
	return p
}

// SanitizeAstroDay clamps an astro day to a non-negative value rounded to
// AstroDayPrecision decimals. Pre-epoch values resolve to day 0.
func SanitizeAstroDay(day float64) float64 {
	if math.IsNaN(day) || math.IsInf(day, 0) || day < 0 {
		return 0
	}
	return roundTo(day, AstroDayPrecision)
}

// SanitizeSolarDay wraps a solar day-of-year into [0, DaysPerSolarTurn).
// Values past the end of the solar year fold back to the start of the
// cycle; negatives and non-finite values become 0.
func SanitizeSolarDay(day float64) float64 {
	if math.IsNaN(day) || math.IsInf(day, 0) || day < 0 {
		return 0
	}
	if day >= DaysPerSolarTurn {
		day = math.Mod(day, DaysPerSolarTurn)
	}
	return roundTo(day, AstroDayPrecision)
}

// SanitizeTurn clamps a turn number to be non-negative.
func SanitizeTurn(turn int) int {
	if turn < 0 {
		return 0
	}
	return turn
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// Round2 rounds to two decimals, the precision used for phase offsets and
// perturbation values throughout the engine.
func Round2(v float64) float64 {
	return roundTo(v, 2)
}
