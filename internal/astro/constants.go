// Package astro provides the canonical Saskan epoch clock: galactic pulses,
// astro days, turns, and seasons. All derived calendars are computed
// relative to this clock.
// See design doc Section 2.1.
package astro

// Epoch anchors. The astro epoch begins at pulse 0, astro day 0.
const (
	// AstroEpochPulse is the pulse count at the astro epoch start.
	AstroEpochPulse = 0

	// PulsesPerDay is the number of galactic pulses in one Gavoran day.
	// The galactic pulsar's period is exactly one Gavoran second.
	PulsesPerDay = 86400

	// DaysPerSolarTurn is the true solar year of Gavor around Fatune.
	DaysPerSolarTurn = 365.2422

	// DaysPerAstroTurn is the canonical turn length of the astro calendar.
	// The astro calendar carries no leap correction; derived calendars do.
	DaysPerAstroTurn = 365.25

	// DaysPerSolarMonth divides the true solar year into twelve equal
	// months, used only to place the Houses of the Equinox.
	DaysPerSolarMonth = DaysPerSolarTurn / 12
)

// PulsesPerSolarTurn is the whole-pulse length of one true solar year,
// 365.2422 days of pulses with the fractional pulse floored away.
const PulsesPerSolarTurn int64 = 31556926

// Derived-calendar epoch offsets, in astro days.
const (
	// FatunikEpochDay is astro day 1/1/1 of the Fatunik calendar,
	// about 1000 turns after the astro epoch.
	FatunikEpochDay = 365472

	// LunarEpochDay anchors the Lunar A and B calendars and the Terpin
	// solar calendar, about 500 turns after the astro epoch.
	LunarEpochDay = 182718

	// TerpinEpochDay is shared with the lunar calendars by tradition.
	TerpinEpochDay = LunarEpochDay

	// LunarMonthAvgDays is the averaged cycle of all eight moons.
	LunarMonthAvgDays = 28
)

// Season anchor days within a turn. Each season begins at its solstice or
// equinox; Stillness wraps across the turn boundary.
const (
	SpringEquinoxDay  = 80
	SummerSolsticeDay = 172
	AutumnEquinoxDay  = 266
	WinterSolsticeDay = 355
)

// AstroDayPrecision is the number of decimal places preserved by the
// astro-day sanitizer.
const AstroDayPrecision = 4
