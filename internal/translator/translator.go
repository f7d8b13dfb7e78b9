// Package translator fans one canonical date out across every calendar
// and sky system in use: the universal date translator of the Rosetta
// scholars. It is a pure merge over the other packages; no system
// mutates another's result.
// See design doc Section 2.7.
package translator

import (
	"fmt"
	"math"

	"github.com/talgya/saskan-astro/internal/astro"
	"github.com/talgya/saskan-astro/internal/moons"
	"github.com/talgya/saskan-astro/internal/sky"
	"github.com/talgya/saskan-astro/internal/solar"
	"github.com/talgya/saskan-astro/internal/wanderers"
)

// DefaultHour is assumed when no hour of day is given. Noon, so the
// civil calendars do not shift to the previous day.
const DefaultHour = 12.0

// Rosetta is the canonical entry of a translation: the raw astro day,
// the hour asked about, and the astronomical turn reckoning.
type Rosetta struct {
	Day       float64         `json:"Day"`
	Hour      string          `json:"Hour"`
	Turn      int             `json:"Turn"`
	DayInTurn int             `json:"Day in Turn"`
	Season    astro.Season    `json:"Season"`
	Watch     astro.WatchTime `json:"Watch"`
}

// Galactic is the pulsar clock entry: the monotonic pulse count since
// the astro epoch.
type Galactic struct {
	PulseCount int64 `json:"Pulse Count"`
}

// Report is a date rendered in every system at once. The keys are fixed;
// chroniclers pattern-match on them.
type Report struct {
	Rosetta   Rosetta                       `json:"Rosetta (Canonical)"`
	Fatunik   solar.FatunikReport           `json:"Fatunik Calendar"`
	LunarA    solar.LunarDate               `json:"Lunar A Calendar"`
	LunarB    solar.LunarDate               `json:"Lunar B Calendar"`
	Moons     moons.Report                  `json:"Moon Phases"`
	Wanderers map[string]wanderers.Sighting `json:"Wanderers and Events"`
	Galactic  Galactic                      `json:"Galactic Time (Pulsar Clock)"`
	Sky       sky.Context                   `json:"Sky Context"`
}

// sanitizeHour clamps the hour of day to [0, 24), resetting out-of-range
// values to noon rather than rejecting them.
func sanitizeHour(hour float64) float64 {
	if math.IsNaN(hour) || hour < 0 || hour >= 24 {
		return DefaultHour
	}
	return hour
}

// Translate renders an astro day and hour in every calendar system.
//
// The civil calendars change days at different moments: the Fatunik day
// begins at dawn, so before hour 6 the Fatunik date is still yesterday's;
// the lunar day begins at dusk, so before hour 18 both lunar dates are.
// The canonical day and the sky views use the day as given.
func Translate(day float64, hour float64) Report {
	day = astro.SanitizeAstroDay(day)
	hour = sanitizeHour(hour)

	fatunikDay := day
	if hour < 6 {
		fatunikDay = astro.SanitizeAstroDay(day - 1)
	}
	lunarDay := day
	if hour < 18 {
		lunarDay = astro.SanitizeAstroDay(day - 1)
	}

	cal := astro.NewCalendar(day)
	solarDay := solar.SolarDayFromPulse(float64(astro.PulsesFromAstroDay(day)))
	pulseOfDay := hour * float64(astro.PulsesPerDay) / 24

	return Report{
		Rosetta: Rosetta{
			Day:       day,
			Hour:      fmt.Sprintf("%02.0f:00", hour),
			Turn:      cal.Turn(),
			DayInTurn: cal.TurnDay() + 1,
			Season:    solar.SolarSeason(solarDay),
			Watch:     astro.WatchTimeFromPulse(pulseOfDay),
		},
		Fatunik:   solar.Fatunik(fatunikDay),
		LunarA:    solar.LunarA(lunarDay),
		LunarB:    solar.LunarB(lunarDay),
		Moons:     moons.Phases(day),
		Wanderers: wanderers.Report(day),
		Galactic: Galactic{
			PulseCount: astro.PulsesFromAstroDay(day) + int64(pulseOfDay),
		},
		Sky: sky.StarContext(solarDay),
	}
}

// TranslateDay renders an astro day at the default hour, noon.
func TranslateDay(day float64) Report {
	return Translate(day, DefaultHour)
}
