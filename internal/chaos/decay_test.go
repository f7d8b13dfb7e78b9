package chaos

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/saskan-astro/internal/astro"
)

func TestSmoothDecaySplit_SumsExactly(t *testing.T) {
	for _, v := range []float64{0.5, -0.5, 0.33, -0.2, -0.17, 0.044, 1.0} {
		for d := MinDuration; d <= MaxDuration; d++ {
			values, err := SmoothDecaySplit(v, d)
			require.NoError(t, err)
			require.Len(t, values, d)

			var sum float64
			for _, x := range values {
				sum += x
			}
			assert.InDelta(t, astro.Round2(v), sum, 1e-9, "v=%v d=%d", v, d)
		}
	}
}

func TestSmoothDecaySplit_NonIncreasingMagnitude(t *testing.T) {
	// Every 1/N event magnitude the seeder can produce, both spin
	// directions, plus awkward fractional values whose rounding once
	// disturbed the ordering.
	magnitudes := []float64{0.5, -0.5, 0.33, -0.33, 0.25, -0.25, 0.2, -0.2, 0.044, 1.0}
	for _, v := range magnitudes {
		for d := MinDuration; d <= MaxDuration; d++ {
			values, err := SmoothDecaySplit(v, d)
			require.NoError(t, err)
			for i := 1; i < len(values); i++ {
				assert.GreaterOrEqual(t, math.Abs(values[i-1]), math.Abs(values[i]),
					"v=%v d=%d at %d: %v", v, d, i, values)
			}
		}
	}
}

func TestSmoothDecaySplit_BackwardSignAndTail(t *testing.T) {
	values, err := SmoothDecaySplit(-0.5, 9)
	require.NoError(t, err)
	// Backward events are negative throughout.
	for _, x := range values {
		assert.LessOrEqual(t, x, 0.0)
	}
	// The cosine window closes at zero.
	assert.InDelta(t, 0.0, values[len(values)-1], 1e-12)
}

func TestSmoothDecaySplit_CountContract(t *testing.T) {
	_, err := SmoothDecaySplit(0.5, 2)
	assert.Error(t, err)
	_, err = SmoothDecaySplit(0.5, 22)
	assert.Error(t, err)
	_, err = SmoothDecaySplit(0.5, 0)
	assert.Error(t, err)
}

func TestComputePhase_WindowAndWrap(t *testing.T) {
	days, err := ComputePhase(Backward, 40, 9, 2)
	require.NoError(t, err)
	require.NotEmpty(t, days)

	seen := map[int]bool{}
	for _, d := range days {
		assert.GreaterOrEqual(t, d.AstroDay, 40)
		assert.Less(t, d.AstroDay, 49)
		assert.GreaterOrEqual(t, d.Offset, 0.0)
		assert.Less(t, d.Offset, 1.0)
		assert.Contains(t, d.Phase, "Strange ")
		assert.NotEmpty(t, d.Faces)
		assert.False(t, seen[d.AstroDay], "duplicate day %d", d.AstroDay)
		seen[d.AstroDay] = true
	}
}

func TestComputePhase_UnchangedDaysOmitted(t *testing.T) {
	// The decay tail ends at zero, so the final window day never differs
	// from the standard reading and must not be recorded.
	days, err := ComputePhase(Forward, 40, 11, 3)
	require.NoError(t, err)
	for _, d := range days {
		assert.NotEqual(t, 50, d.AstroDay)
	}
}

func TestComputePhase_RejectsBadWindow(t *testing.T) {
	_, err := ComputePhase(Forward, 40, 2, 2)
	assert.Error(t, err)
	_, err = ComputePhase(Forward, 40, 22, 2)
	assert.Error(t, err)
	_, err = ComputePhase(Forward, 40, 5, 0)
	assert.Error(t, err)
}

func TestRetheme_OrderedSubstitutions(t *testing.T) {
	assert.Equal(t, "Grimace Without Meaning, Tears in the Dust",
		Retheme("Grin Without Cause, Laughter in the Dust"))
	assert.Equal(t, "Vein of Chasm, a Flame in the Opening",
		Retheme("Vein of Fire, a Fissure in the Ice"))
	assert.Equal(t, "The Black Stare is Not an Edge",
		Retheme("The Black Wink is Not an Eye"))
}
