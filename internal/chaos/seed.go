// Chaos event seeding. Events are generated deterministically from a
// single seed (seeded rand for the intervals, simplex noise for the
// character of each event) so a reseeded world reproduces the same sky.
package chaos

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/google/uuid"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/saskan-astro/internal/astro"
)

// Event intervals: chaotic events strike 10 to 100 turns apart.
const (
	minIntervalDays = 3660
	maxIntervalDays = 36500
)

var eventKinds = []string{
	"volcanic eruption",
	"earthquake",
	"seismic shift",
	"ash storm",
	"fire rain",
	"lava flow",
}

var eventNotes = []string{
	"Brimstone Maw seen at dusk in the east",
	"The sky darkened with ash and fire",
	"A sudden quake shook the land",
	"The ground split open, revealing molten rock",
	"A fiery glow lit the horizon at dawn",
	"The air was thick with sulfur and smoke",
}

// Event is one chaotic trigger and its window.
type Event struct {
	ID           string `json:"id" db:"id"`
	AstroDay     int    `json:"astro_day" db:"astro_day"`
	Magnitude    int    `json:"magnitude" db:"magnitude"`
	Kind         string `json:"event" db:"kind"`
	Direction    string `json:"direction" db:"direction"`
	DurationDays int    `json:"duration_days" db:"duration_days"`
	Note         string `json:"note" db:"note"`
}

// Generate produces the chaos events for maxTurns astro turns from a
// seed. Magnitude (2–5, minor to cataclysmic) and direction come from
// normalized simplex noise sampled at the event day, so nearby reseeds
// drift smoothly rather than reshuffling the whole history.
func Generate(seed int64, maxTurns int) ([]Event, error) {
	rng := rand.New(rand.NewSource(seed))
	noise := opensimplex.NewNormalized(seed + 1)

	endDay := float64(maxTurns) * astro.DaysPerSolarTurn

	var events []Event
	day := 1
	for {
		day += minIntervalDays + rng.Intn(maxIntervalDays-minIntervalDays+1)
		if float64(day) >= endDay {
			break
		}

		sample := noise.Eval2(float64(day)/10000, 0)
		magnitude := 2 + int(sample*4)
		if magnitude > 5 {
			magnitude = 5
		}

		direction := Forward
		if noise.Eval2(float64(day)/10000, 1) < 0.5 {
			direction = Backward
		}

		// Duration scales with magnitude, clamped into the decay window.
		low := int(math.Round(float64(magnitude) * 3.5))
		high := int(math.Round(float64(magnitude) * 4.5))
		duration := low + rng.Intn(high-low+1)
		if duration < MinDuration {
			duration = MinDuration
		}
		if duration > MaxDuration {
			duration = MaxDuration
		}

		events = append(events, Event{
			ID:           uuid.NewString(),
			AstroDay:     day,
			Magnitude:    magnitude,
			Kind:         eventKinds[rng.Intn(len(eventKinds))],
			Direction:    direction,
			DurationDays: duration,
			Note:         eventNotes[rng.Intn(len(eventNotes))],
		})
	}

	slog.Info("chaos events generated", "seed", seed, "turns", maxTurns, "events", len(events))
	return events, nil
}

// SeedKankaChaos generates the chaos dataset and persists it, replacing
// any prior seed. It is the engine's one side-effecting initialization
// step and must not run concurrently with itself.
func SeedKankaChaos(store *Store, seed int64, maxTurns int) error {
	events, err := Generate(seed, maxTurns)
	if err != nil {
		return err
	}

	perturbations := make(map[string][]DayPerturbation, len(events))
	for _, ev := range events {
		days, err := ComputePhase(ev.Direction, ev.AstroDay, ev.DurationDays, ev.Magnitude)
		if err != nil {
			return err
		}
		perturbations[ev.ID] = days
	}

	if err := store.ReplaceSeed(seed, events, perturbations); err != nil {
		return err
	}

	slog.Info("kanka chaos seeded", "events", len(events))
	return nil
}
