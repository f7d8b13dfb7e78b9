// The two lunar calendars: Lunar A, the traditional Terpin lunar system
// that slides freely through the seasons, and Lunar B, the reformed
// system that inserts a leap month every fifth turn.
package solar

import (
	"math"

	"github.com/talgya/saskan-astro/internal/astro"
)

// PreLunarLabel marks astro days before the lunar epoch.
const PreLunarLabel = "Pre-Lunar Epoch"

// LunarDate is a date in either lunar calendar.
type LunarDate struct {
	Turn          int    `json:"Turn"`
	Month         int    `json:"Month"`
	Day           int    `json:"Day"`
	LeapTurn      bool   `json:"Leap Turn"`
	EpochRelative int    `json:"epoch_relative"`
	Label         string `json:"label"`
}

// LunarA computes the strict lunar date: twelve 28-day months, no leap
// correction, so the turn slides through the seasons.
func LunarA(astroDay float64) LunarDate {
	day := astro.SanitizeAstroDay(astroDay)
	rel := int(math.Floor(day)) - astro.LunarEpochDay
	if rel < 0 {
		return LunarDate{EpochRelative: rel, Label: PreLunarLabel}
	}

	turnDays := astro.LunarMonthAvgDays * 12
	intoTurn := rel % turnDays
	return LunarDate{
		Turn:          rel / turnDays,
		Month:         intoTurn/astro.LunarMonthAvgDays + 1,
		Day:           intoTurn%astro.LunarMonthAvgDays + 1,
		EpochRelative: rel,
	}
}

// LunarB computes the reformed lunar date. Every fifth turn appends a
// thirteenth 28-day month; the turn is first estimated against the solar
// year, then re-divided by the leap-adjusted turn length. The estimate is
// deliberately rough, matching the reformed Terpin practice.
func LunarB(astroDay float64) LunarDate {
	day := astro.SanitizeAstroDay(astroDay)
	rel := int(math.Floor(day)) - astro.LunarEpochDay
	if rel < 0 {
		return LunarDate{EpochRelative: rel, Label: PreLunarLabel}
	}

	guess := int(float64(rel) / astro.DaysPerAstroTurn)
	leap := guess%5 == 0
	turnDays := astro.LunarMonthAvgDays * 12
	if leap {
		turnDays += astro.LunarMonthAvgDays
	}

	intoTurn := rel % turnDays
	return LunarDate{
		Turn:          rel / turnDays,
		Month:         intoTurn/astro.LunarMonthAvgDays + 1,
		Day:           intoTurn%astro.LunarMonthAvgDays + 1,
		LeapTurn:      leap,
		EpochRelative: rel,
	}
}
