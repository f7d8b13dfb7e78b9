package sky

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStarContextHouses(t *testing.T) {
	assert.Equal(t, "The Ember Gate", StarContext(1).Constellation)
	assert.Equal(t, "The Twin Horns", StarContext(40).Constellation)
	assert.Equal(t, "The Stone Circle", StarContext(360).Constellation)
}

func TestStarContextSeasonStars(t *testing.T) {
	ctx := StarContext(1)

	// Three seasonal stars plus the Pole Star and its Minions.
	require.Len(t, ctx.FixedStars, 7)

	names := make([]string, 0, len(ctx.FixedStars))
	for _, s := range ctx.FixedStars {
		names = append(names, s.Name)
	}
	assert.Contains(t, names, "Aghur")
	assert.Contains(t, names, "Boreth")
	assert.Contains(t, names, "Droven")
	assert.Contains(t, names, "Ilyrun")
	assert.Contains(t, names, "Kresh")
	assert.Contains(t, names, "Marnok")
	assert.Contains(t, names, "Sethera")
	assert.NotContains(t, names, "Thalona")
}

func TestStarContextCircumpolarAlways(t *testing.T) {
	for _, day := range []float64{1, 100, 200, 300, 365} {
		ctx := StarContext(day)
		names := make([]string, 0, len(ctx.FixedStars))
		for _, s := range ctx.FixedStars {
			names = append(names, s.Name)
		}
		assert.Contains(t, names, "Ilyrun", "day %v", day)
		assert.Contains(t, names, "Sethera", "day %v", day)
	}
}

func TestStarContextSanitizes(t *testing.T) {
	// Negative days wrap into the solar turn instead of failing.
	ctx := StarContext(-5)
	assert.NotEmpty(t, ctx.Constellation)
	assert.NotEmpty(t, ctx.FixedStars)
}

func TestStarContextBearings(t *testing.T) {
	ctx := StarContext(200)
	for _, s := range ctx.FixedStars {
		assert.NotEmpty(t, s.Bearing)
	}
	names := make([]string, 0, len(ctx.FixedStars))
	for _, s := range ctx.FixedStars {
		names = append(names, s.Name)
	}
	assert.Contains(t, names, "Mirrest")
	assert.Contains(t, names, "Zomel")
	assert.Contains(t, names, "Saurnak")
}
