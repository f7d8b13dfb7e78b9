// Package chaos models the irregular spin of the moon Kanka: short,
// bounded perturbation events layered on her otherwise periodic phase,
// seeded once and replayed deterministically from durable storage.
// See design doc Section 2.4.
package chaos

import (
	"fmt"
	"math"
)

// Decay-split count bounds. These are a programming contract, not input
// sanitization: a count outside the window is a caller bug.
const (
	MinDuration = 3
	MaxDuration = 21
)

// SmoothDecaySplit splits a value v into d smoothly transitioning values
// using cosine decay. The result is ordered by descending magnitude in
// two-decimal steps and sums exactly to v rounded to two decimals.
func SmoothDecaySplit(v float64, d int) ([]float64, error) {
	if d < MinDuration || d > MaxDuration {
		return nil, fmt.Errorf("decay split count %d outside [%d, %d]", d, MinDuration, MaxDuration)
	}

	sign := 1.0
	if v < 0 {
		sign = -1
	}

	// Decreasing cosine weights over [0, π/2], normalized to sum to 1.
	weights := make([]float64, d)
	var total float64
	for i := range weights {
		weights[i] = math.Cos(float64(i) * math.Pi / 2 / float64(d-1))
		total += weights[i]
	}

	// Allocate in integer hundredths so the split sums exactly.
	target := int(math.Round(math.Abs(v) * 100))
	cents := make([]int, d)
	allocated := 0
	for i, w := range weights {
		cents[i] = int(math.Round(w / total * float64(target)))
		allocated += cents[i]
	}
	cents[0] += target - allocated

	// Per-element rounding can leave a later value above an earlier one.
	// Shift hundredths toward the front until the ordering holds; each
	// move preserves the total.
	for changed := true; changed; {
		changed = false
		for i := 1; i < d; i++ {
			if cents[i] > cents[i-1] {
				move := (cents[i] - cents[i-1] + 1) / 2
				cents[i-1] += move
				cents[i] -= move
				changed = true
			}
		}
	}

	values := make([]float64, d)
	for i, c := range cents {
		values[i] = float64(c) / 100 * sign
	}
	return values, nil
}
