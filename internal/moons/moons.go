// Package moons provides the eight-moon phase engine: periodic phase
// offsets, quarter-phase naming, and the face/omen tables of the two
// free-rotating moons, Kanka and Jembor.
// See design doc Section 2.3.
package moons

import (
	_ "embed"
	"fmt"
	"math"

	"github.com/BurntSushi/toml"

	"github.com/talgya/saskan-astro/internal/astro"
)

//go:embed moons.toml
var moonsTOML []byte

// Moon is one entry of the moon definition table.
type Moon struct {
	Name               string  `toml:"name" json:"name"`
	PeriodDays         float64 `toml:"period_days" json:"period_days"`
	RotationPeriodDays float64 `toml:"rotation_period_days" json:"rotation_period_days"`
	RotationType       string  `toml:"rotation_type" json:"rotation_type"`
	ApparentColor      string  `toml:"apparent_color" json:"apparent_color"`
	Notes              string  `toml:"notes" json:"notes"`
}

type catalogFile struct {
	Moons []Moon `toml:"moons"`
}

var catalog = mustLoadCatalog()

func mustLoadCatalog() []Moon {
	var file catalogFile
	if err := toml.Unmarshal(moonsTOML, &file); err != nil {
		panic(fmt.Sprintf("decode moon catalog: %v", err))
	}
	return file.Moons
}

// Catalog returns the moon definition table.
func Catalog() []Moon {
	return catalog
}

// Lookup returns the definition of a named moon.
func Lookup(name string) (Moon, bool) {
	for _, m := range catalog {
		if m.Name == name {
			return m, true
		}
	}
	return Moon{}, false
}

// State is the computed phase and face of one moon on one day.
type State struct {
	Color            string  `json:"color"`
	RevolutionPeriod float64 `json:"revolution_period"`
	RevolutionDay    float64 `json:"revolution_day"`
	PhaseOffset      float64 `json:"phase_offset"`
	Phase            string  `json:"phase"`
	RotationType     string  `json:"rotation_type"`
	RotationPeriod   float64 `json:"rotation_period"`
	RotationDay      float64 `json:"rotation_day"`
	FaceName         string  `json:"face_name"`
	FaceNotes        string  `json:"face_notes"`
	FaceOmen         string  `json:"face_omen"`
}

// Report holds per-moon states for one astro day.
type Report struct {
	AstroDay float64          `json:"astro_day"`
	Moons    map[string]State `json:"moons"`
}

// cycleDay returns the 0-based day within a periodic cycle, rounded to
// two decimals. All moons were Full on astro day 1.
func cycleDay(astroDay, period float64) float64 {
	d := math.Mod(astroDay-1, period)
	if d < 0 {
		d += period
	}
	return astro.Round2(d)
}

// PhaseData computes the revolution day, phase offset, and phase name for
// a periodic cycle.
func PhaseData(astroDay, period float64) (revDay, offset float64, phase string) {
	revDay = cycleDay(astroDay, period)
	offset = astro.Round2(revDay / period)
	return revDay, offset, PhaseName(offset)
}

// Phases computes every moon's state for the given astro day.
func Phases(astroDay float64) Report {
	day := astro.SanitizeAstroDay(astroDay)
	report := Report{AstroDay: day, Moons: make(map[string]State, len(catalog))}

	for _, m := range catalog {
		revDay, offset, phase := PhaseData(day, m.PeriodDays)

		state := State{
			Color:            m.ApparentColor,
			RevolutionPeriod: m.PeriodDays,
			RevolutionDay:    revDay,
			PhaseOffset:      offset,
			Phase:            phase,
			RotationType:     m.RotationType,
			RotationPeriod:   m.RotationPeriodDays,
			RotationDay:      cycleDay(day, m.RotationPeriodDays),
			FaceName:         "Standard",
			FaceNotes:        m.Notes,
		}

		// Free-rotating moons show a named face keyed to the rotation
		// offset; synchronous moons always show the same hemisphere.
		if m.RotationType != RotationSynchronous {
			rotOffset := astro.Round2(state.RotationDay / m.RotationPeriodDays)
			if face, ok := FaceFor(m.Name, rotOffset); ok {
				state.FaceName = face.Name
				state.FaceNotes = face.Notes
				state.FaceOmen = face.Omen
			}
		}

		report.Moons[m.Name] = state
	}
	return report
}

// PhaseCount is the Full/New histogram for one day.
type PhaseCount struct {
	NewMoons  int `json:"New Moons"`
	FullMoons int `json:"Full Moons"`
}

// CountPhases tallies how many moons are New and Full in a report.
func CountPhases(states map[string]State) PhaseCount {
	var count PhaseCount
	for _, s := range states {
		switch s.Phase {
		case PhaseNew:
			count.NewMoons++
		case PhaseFull:
			count.FullMoons++
		}
	}
	return count
}

// FullMoonDay is one day matching a FindFullMoons scan.
type FullMoonDay struct {
	AstroDay  float64  `json:"astro_day"`
	Turn      int      `json:"turn"`
	FullMoons []string `json:"full_moons"`
}

// FindFullMoons scans a range of astro turns for days on which exactly
// wanted moons are full at once.
func FindFullMoons(turnStart, turnEnd, wanted int) []FullMoonDay {
	turnStart = astro.SanitizeTurn(turnStart)
	turnEnd = astro.SanitizeTurn(turnEnd)
	if wanted < 0 {
		wanted = 0
	}
	if wanted > len(catalog) {
		wanted = len(catalog)
	}

	dayStart := float64(turnStart) * astro.DaysPerAstroTurn
	dayEnd := float64(turnEnd+1) * astro.DaysPerAstroTurn

	var matches []FullMoonDay
	for day := math.Floor(dayStart); day < dayEnd; day++ {
		report := Phases(day)
		var full []string
		for name, s := range report.Moons {
			if s.Phase == PhaseFull {
				full = append(full, name)
			}
		}
		if len(full) == wanted {
			matches = append(matches, FullMoonDay{
				AstroDay:  day,
				Turn:      astro.NewCalendar(day).Turn(),
				FullMoons: full,
			})
		}
	}
	return matches
}
