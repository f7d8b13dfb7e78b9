// Package wanderers models the visible planets of the Fatune system:
// periodic orbital positions and a night-sky visibility window, plus the
// two irregular apparitions, the Spark and the rare comet.
// See design doc Section 2.5.
package wanderers

import (
	"math"
	"math/rand"

	"github.com/talgya/saskan-astro/internal/astro"
)

// Wanderer is a planet-like body with a periodic orbit. Phase is the
// initial offset of its orbit at day 0.
type Wanderer struct {
	Name   string
	Period float64
	Phase  float64
}

// Pos returns the normalized orbital longitude for a day: 0 in
// conjunction behind Fatune, 0.5 at opposition, always in [0,1).
func (w Wanderer) Pos(day float64) float64 {
	pos := math.Mod(day/w.Period+w.Phase, 1)
	if pos < 0 {
		pos += 1
	}
	return pos
}

// Vis reports whether a wanderer at the given orbital position is
// visible tonight. Within 10% of conjunction it is lost in solar glare.
func (w Wanderer) Vis(pos float64) bool {
	return pos > 0.1 && pos < 0.9
}

// registered is the fixed table of wanderers, in period order.
var registered = []Wanderer{
	{Name: "Aesthra", Period: 88},
	{Name: "Lethra", Period: 88, Phase: 0.5},
	{Name: "Beyarus", Period: 225},
	{Name: "Dramond", Period: astro.DaysPerSolarTurn},
	{Name: "Thurnak", Period: 687},
	{Name: "Zelven", Period: 4380},
	{Name: "Kreetha", Period: 10585},
}

// Registered returns the fixed wanderer table.
func Registered() []Wanderer {
	return registered
}

// Sighting is one body's appearance in the night sky. Phase is nil for
// the irregular apparitions, which have no meaningful orbital phase.
type Sighting struct {
	Phase   *float64 `json:"Phase"`
	Visible bool     `json:"Visible"`
}

// Spark/comet odds. The Spark is lore for an object docked behind one of
// the moons that occasionally drifts into view; the comet is simply rare.
const (
	sparkChance = 0.01
	cometChance = 0.0003
)

// Report computes each wanderer's phase and visibility for a day count
// since the astro epoch, plus the Spark and, on its rare nights, a
// comet. The day is not wrapped to a single turn: the outer wanderers
// take many turns per orbit. The irregular rolls are seeded by the day
// so repeated queries agree.
func Report(day float64) map[string]Sighting {
	day = astro.SanitizeAstroDay(day)

	sightings := make(map[string]Sighting, len(registered)+2)
	for _, w := range registered {
		pos := w.Pos(day)
		sightings[w.Name] = Sighting{
			Phase:   ptr(math.Round(pos*10000) / 10000),
			Visible: w.Vis(pos),
		}
	}

	sparkRoll := rand.New(rand.NewSource(int64(day) + 42)).Float64()
	sightings["The Spark"] = Sighting{Visible: sparkRoll < sparkChance}

	cometRoll := rand.New(rand.NewSource(int64(day) + 1337)).Float64()
	if cometRoll < cometChance {
		sightings["A Rare Comet"] = Sighting{Visible: true}
	}

	return sightings
}

// CountVisible tallies how many bodies in a report are visible.
func CountVisible(report map[string]Sighting) int {
	count := 0
	for _, s := range report {
		if s.Visible {
			count++
		}
	}
	return count
}

func ptr(v float64) *float64 {
	return &v
}
