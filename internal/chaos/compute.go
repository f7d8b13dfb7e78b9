// Perturbation computation for one chaos event window.
package chaos

import (
	"fmt"

	"github.com/talgya/saskan-astro/internal/astro"
	"github.com/talgya/saskan-astro/internal/moons"
)

// Spin directions.
const (
	Forward  = "forward"
	Backward = "backward"
)

// DayPerturbation is the anomalous reading of Kanka for one day of an
// event window. Days where the spin is unchanged produce no record.
type DayPerturbation struct {
	AstroDay int     `json:"astro_day" db:"astro_day"`
	EventDay int     `json:"event_day" db:"event_day"`
	Offset   float64 `json:"offset" db:"offset"`
	Phase    string  `json:"phase" db:"phase"`
	Faces    string  `json:"faces" db:"faces"`
}

// ComputePhase derives the per-day perturbations for a chaos event
// starting on startDay. The total perturbation is 1/magnitudeN of a full
// spin, negated for a backward event, distributed over the window by
// cosine decay. Offsets that wrap below zero fold back into [0,1).
func ComputePhase(direction string, startDay, duration, magnitudeN int) ([]DayPerturbation, error) {
	if magnitudeN == 0 {
		return nil, fmt.Errorf("chaos magnitude must be non-zero")
	}

	magnitude := astro.Round2(1 / float64(magnitudeN))
	if direction == Backward {
		magnitude = -magnitude
	}

	decay, err := SmoothDecaySplit(magnitude, duration)
	if err != nil {
		return nil, fmt.Errorf("chaos event on day %d: %w", startDay, err)
	}

	var days []DayPerturbation
	for i, delta := range decay {
		day := startDay + i
		kanka := moons.Phases(float64(day)).Moons["Kanka"]

		adjusted := astro.Round2(kanka.PhaseOffset + delta)
		if adjusted < 0 {
			adjusted = astro.Round2(1 + adjusted)
		}
		if adjusted == kanka.PhaseOffset {
			continue // spin unchanged, nothing to record
		}

		days = append(days, DayPerturbation{
			AstroDay: day,
			EventDay: i + 1,
			Offset:   adjusted,
			Phase:    "Strange " + moons.PhaseName(adjusted),
			Faces:    StrangeFace(adjusted),
		})
	}
	return days, nil
}
