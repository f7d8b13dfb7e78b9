// The canonical astro calendar: a pure function of astro day.
// See design doc Section 2.1.
package astro

import "math"

// Season names in cyclic order starting from the winter solstice.
const (
	SeasonStillness = "Stillness"
	SeasonGreening  = "Greening"
	SeasonBlazing   = "Blazing"
	SeasonWithering = "Withering"
)

// Season is a named quarter of the turn, with an optional seasonal event.
type Season struct {
	Name  string `json:"name"`
	Event string `json:"event"`
}

// SeasonFromTurnDay assigns a season by quadrant lookup against the four
// solstice/equinox anchors. Stillness wraps across the turn boundary.
func SeasonFromTurnDay(turnDay float64) Season {
	switch {
	case turnDay >= WinterSolsticeDay || turnDay < SpringEquinoxDay:
		return Season{Name: SeasonStillness}
	case turnDay < SummerSolsticeDay:
		return Season{Name: SeasonGreening}
	case turnDay < AutumnEquinoxDay:
		return Season{Name: SeasonBlazing}
	default:
		return Season{Name: SeasonWithering}
	}
}

// Calendar computes dates in the canonical (Rosetta) calendar system.
// It holds no state beyond the sanitized query day.
type Calendar struct {
	Day float64
}

// NewCalendar sanitizes the astro day and returns a calendar positioned
// on it. Pre-epoch and negative days resolve to turn 0, turn-day 0.
func NewCalendar(astroDay float64) *Calendar {
	return &Calendar{Day: SanitizeAstroDay(astroDay)}
}

// Turn is the integer turn (year) since the astro epoch, from 0.
func (c *Calendar) Turn() int {
	return int(math.Floor(c.Day / DaysPerAstroTurn))
}

// TurnDay is the 0-based whole-day offset within the current turn.
func (c *Calendar) TurnDay() int {
	return int(c.Day - float64(c.Turn())*DaysPerAstroTurn)
}

// Season returns the season for the current turn day.
func (c *Calendar) Season() Season {
	return SeasonFromTurnDay(c.Day - float64(c.Turn())*DaysPerAstroTurn)
}

// Info is the canonical date report nested under the "Astro" key.
type Info struct {
	Turn    int    `json:"turn"`
	TurnDay int    `json:"turn_day"`
	Season  Season `json:"season"`
}

// Date holds the full canonical date report.
type Date struct {
	AstroDay float64 `json:"astro_day"`
	Astro    Info    `json:"Astro"`
}

// Date returns the canonical date report for the calendar's day.
func (c *Calendar) Date() Date {
	return Date{
		AstroDay: c.Day,
		Astro: Info{
			Turn:    c.Turn(),
			TurnDay: c.TurnDay(),
			Season:  c.Season(),
		},
	}
}
