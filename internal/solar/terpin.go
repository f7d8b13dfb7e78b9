// Package solar provides the derived solar and lunar calendars of the
// Saskan Lands: the Terpin festival-correction tradition, the Fatunik
// Gregorian-style tradition, and the two lunar systems. Each calendar is a
// pure function of the canonical astro day.
// See design doc Section 2.2.
package solar

import (
	"math"

	"github.com/talgya/saskan-astro/internal/astro"
)

// SolarDayFromPulse returns the cyclic day of the true solar year for a
// pulse count since the astro epoch, a float in [1, 365.2422]. It
// carries no turn information.
func SolarDayFromPulse(pulses float64) float64 {
	p := astro.SanitizePulseCount(pulses)
	intoTurn := math.Mod(float64(p), astro.DaysPerSolarTurn*astro.PulsesPerDay)
	d := astro.SanitizeSolarDay(intoTurn/astro.PulsesPerDay + 1)
	if d < 1 {
		// The 1-based label of the turn's final fraction overflows the
		// cycle and wraps below day 1; it reads as the year's last day.
		d = astro.DaysPerSolarTurn
	}
	return d
}

// SolarMonth maps a solar day to a fractional month, 1.0 to 12.99. The
// decimal portion places the visible Houses within the month.
func SolarMonth(solarDay float64) float64 {
	d := astro.SanitizeSolarDay(solarDay)
	return astro.Round2((d-1)/astro.DaysPerSolarMonth + 1)
}

// seasonEvent is a named day within a season, observed when the query day
// falls inside the event window.
type seasonEvent struct {
	name string
	day  float64
}

// eventWindow is the half-width in days within which a seasonal event is
// considered "today" (about a 20-hour window around the precise moment).
const eventWindow = 0.45

const seasonLength = astro.DaysPerSolarTurn / 4 // ≈ 91.31055

// solarSeasons partitions the true solar year into equal quadrants from
// day 1, the Terpin reckoning. Each season opens with a festival day and
// peaks at mid-season.
var solarSeasons = []struct {
	name   string
	start  float64
	events []seasonEvent
}{
	{astro.SeasonStillness, 1, []seasonEvent{
		{"Darkening", 1},
		{"Deep Still", 1 + seasonLength/2},
	}},
	{astro.SeasonGreening, 1 + seasonLength, []seasonEvent{
		{"Green Day", math.Ceil(1 + seasonLength)},
		{"Leafcrest", 1 + seasonLength*1.5},
	}},
	{astro.SeasonBlazing, 1 + 2*seasonLength, []seasonEvent{
		{"Fatune Day", math.Ceil(1 + 2*seasonLength)},
		{"High Blaze", 1 + seasonLength*2.5},
	}},
	{astro.SeasonWithering, 1 + 3*seasonLength, []seasonEvent{
		{"Harvest Festival", math.Ceil(1 + 3*seasonLength)},
		{"Mid-Wane", 1 + seasonLength*3.5},
	}},
}

// SolarSeason returns the Terpin season for a solar day, with the seasonal
// event name when the day falls within an event window.
func SolarSeason(solarDay float64) astro.Season {
	d := astro.SanitizeSolarDay(solarDay)
	if d < 1 {
		d += astro.DaysPerSolarTurn
	}

	season := astro.Season{}
	for i, s := range solarSeasons {
		end := s.start + seasonLength
		if i == len(solarSeasons)-1 {
			end = 1 + astro.DaysPerSolarTurn
		}
		if d < s.start || d >= end {
			continue
		}
		season.Name = s.name
		for _, ev := range s.events {
			if math.Abs(d-ev.day) <= eventWindow {
				season.Event = ev.name
				break
			}
		}
		break
	}
	return season
}

// Terpin festival-cycle arithmetic. A Terpin turn is 365 days; the 132nd
// turn of each festival cycle carries a 32-day festival insertion, except
// every 35th cycle, when only 31 days are inserted.
const (
	terpinTurnDays     = 365
	terpinFestivalBase = 5 // Festival Season, month 1, in an ordinary turn

	turnsPerFestivalCycle = 132
	festivalInsertionDays = 32
	shortInsertionDays    = 31
	cyclesPerGrandCycle   = 35

	festivalCycleDays = (turnsPerFestivalCycle-1)*terpinTurnDays +
		terpinTurnDays + festivalInsertionDays // 48212
	grandCycleDays = cyclesPerGrandCycle*festivalCycleDays - 1
)

// TerpinDate is a date in the Terpin solar calendar.
type TerpinDate struct {
	Turn        int    `json:"turn"`
	TurnDay     int    `json:"turn_day"`
	MonthNumber int    `json:"month_number"`
	MonthDay    int    `json:"month_day"`
	IsFestival  bool   `json:"is_festival_turn"`
	Label       string `json:"label"`
}

// Terpin computes the Terpin calendar date for an astro day. Days before
// the Terpin epoch carry the pre-epoch label.
func Terpin(astroDay float64) TerpinDate {
	day := astro.SanitizeAstroDay(astroDay)
	if day < astro.TerpinEpochDay {
		return TerpinDate{Label: "Pre-Terpin Epoch"}
	}

	d0 := int(math.Floor(day)) - astro.TerpinEpochDay // 0-based

	grand := d0 / grandCycleDays
	r := d0 % grandCycleDays

	cycle := r / festivalCycleDays
	if cycle > cyclesPerGrandCycle-1 {
		cycle = cyclesPerGrandCycle - 1
	}
	r -= cycle * festivalCycleDays

	// Turns 1..131 of a cycle are 365 days; the 132nd holds the festival
	// insertion (397 days, 396 in the last cycle of a grand cycle).
	plainDays := (turnsPerFestivalCycle - 1) * terpinTurnDays
	var turnInCycle, dayOfTurn int
	festival := false
	if r < plainDays {
		turnInCycle = r / terpinTurnDays
		dayOfTurn = r%terpinTurnDays + 1
	} else {
		turnInCycle = turnsPerFestivalCycle - 1
		dayOfTurn = r - plainDays + 1
		festival = true
	}

	turn := (grand*cyclesPerGrandCycle+cycle)*turnsPerFestivalCycle + turnInCycle + 1

	// Month 1 is the Festival Season: 5 days ordinarily, 37 in a festival
	// turn (36 when the grand cycle shortens the insertion).
	month1 := terpinFestivalBase
	if festival {
		month1 += festivalInsertionDays
		if cycle == cyclesPerGrandCycle-1 {
			month1 = terpinFestivalBase + shortInsertionDays
		}
	}

	var month, monthDay int
	if dayOfTurn <= month1 {
		month = 1
		monthDay = dayOfTurn
	} else {
		adjust := dayOfTurn - month1
		month = (adjust-1)/30 + 2
		monthDay = (adjust-1)%30 + 1
	}

	return TerpinDate{
		Turn:        turn,
		TurnDay:     dayOfTurn,
		MonthNumber: month,
		MonthDay:    monthDay,
		IsFestival:  festival,
	}
}
