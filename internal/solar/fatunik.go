// The Fatunik calendar of the northern provinces: a strictly solar
// calendar with a Gregorian-style leap rule. Month 1 is a short Festival
// Season of 6 days; months 2 through 13 have 30 days, the last truncated
// to 29 in common turns.
package solar

import (
	"math"

	"github.com/talgya/saskan-astro/internal/astro"
)

// PreFatunikLabel marks astro days before the Fatunik epoch.
const PreFatunikLabel = "Pre-Fatunik Epoch"

// FatuneDay is the founding festival, observed only on the epoch day
// itself: turn 1, month 1, day 1.
const FatuneDay = "Fatune Day"

// Gregorian-style cycle lengths in days.
const (
	daysPer400Turns = 146097
	daysPer100Turns = 36524
	daysPer4Turns   = 1461
	daysPerTurn     = 365
)

const fatunikMonth1Days = 6

// FatunikDate is a date in the Fatunik calendar, nested under the
// "Fatunik" key in reports.
type FatunikDate struct {
	Turn        int          `json:"turn"`
	TurnDay     int          `json:"turn_day"`
	MonthNumber int          `json:"month_number"`
	MonthDay    int          `json:"month_day"`
	IsLeapTurn  bool         `json:"is_leap_turn"`
	Label       string       `json:"label"`
	Season      astro.Season `json:"season"`
}

// FatunikReport wraps a Fatunik date with the canonical date it derives
// from, keyed the way downstream consumers pattern-match.
type FatunikReport struct {
	Fatunik FatunikDate `json:"Fatunik"`
	Astro   astro.Date  `json:"Astro"`
}

// IsLeapTurn applies the Fatunik leap rule: every 4th turn, except every
// 100th, except every 400th.
func IsLeapTurn(turn int) bool {
	return turn%4 == 0 && (turn%100 != 0 || turn%400 == 0)
}

// Fatunik computes the Fatunik calendar date for an astro day. Days
// before the Fatunik epoch return the pre-epoch label with zeroed fields.
func Fatunik(astroDay float64) FatunikReport {
	cal := astro.NewCalendar(astroDay)
	report := FatunikReport{Astro: cal.Date()}

	if cal.Day < astro.FatunikEpochDay {
		report.Fatunik = FatunikDate{Label: PreFatunikLabel}
		return report
	}

	// Fatunik days are 1-based from the epoch day.
	fatunikDay := int(math.Floor(cal.Day)) - astro.FatunikEpochDay + 1

	turn, dayOfTurn := splitLeapTurns(fatunikDay)
	month, monthDay := fatunikMonthDay(dayOfTurn)

	date := FatunikDate{
		Turn:        turn,
		TurnDay:     dayOfTurn,
		MonthNumber: month,
		MonthDay:    monthDay,
		IsLeapTurn:  IsLeapTurn(turn),
		Season:      cal.Season(),
	}
	if turn == 1 && month == 1 && monthDay == 1 {
		date.Season.Event = FatuneDay
	} else {
		date.Season.Event = ""
	}

	report.Fatunik = date
	return report
}

// splitLeapTurns resolves a 1-based Fatunik day into turn and day-of-turn
// by successive division over the 400/100/4/1-turn cycles.
func splitLeapTurns(fatunikDay int) (turn, dayOfTurn int) {
	d := fatunikDay - 1 // 0-based

	n400 := d / daysPer400Turns
	d %= daysPer400Turns

	n100 := d / daysPer100Turns
	if n100 > 3 {
		n100 = 3
	}
	d -= n100 * daysPer100Turns

	n4 := d / daysPer4Turns
	d %= daysPer4Turns

	n1 := d / daysPerTurn
	if n1 > 3 {
		n1 = 3
	}
	d -= n1 * daysPerTurn

	turn = 400*n400 + 100*n100 + 4*n4 + n1 + 1
	return turn, d + 1
}

// fatunikMonthDay maps a 1-based day of turn onto the Fatunik month
// table: 6-day Festival Season, then 30-day months.
func fatunikMonthDay(dayOfTurn int) (month, monthDay int) {
	if dayOfTurn <= fatunikMonth1Days {
		return 1, dayOfTurn
	}
	adjust := dayOfTurn - fatunikMonth1Days
	return (adjust-1)/30 + 2, (adjust-1)%30 + 1
}
