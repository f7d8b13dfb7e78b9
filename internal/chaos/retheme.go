// Word-substitution rules that re-theme Kanka's face descriptions during
// an anomalous spin. Order matters: substitutions run top to bottom, and
// a data table keeps the mapping auditable in one place.
package chaos

import (
	"strings"

	"github.com/talgya/saskan-astro/internal/moons"
)

var strangeWords = [][2]string{
	{"Grin", "Grimace"},
	{"Wink", "Stare"},
	{"Eye", "Edge"},
	{"Laughter", "Tears"},
	{"Jest", "Cry"},
	{"Spite", "Spike"},
	{"Crooked", "Closed"},
	{"Patterns", "Stars"},
	{"Fire", "Chasm"},
	{"Fissure", "Flame"},
	{"Ice", "Opening"},
	{"Tilted", "Broken"},
	{"Jester", "Demon"},
	{"Challenge", "Change"},
	{"Bleeding", "Smashed"},
	{"Smile", "Frown"},
	{"Wheel", "Bones"},
	{"Cause", "Meaning"},
}

// Retheme applies the strange-spin substitutions to a face description.
func Retheme(text string) string {
	for _, sub := range strangeWords {
		text = strings.ReplaceAll(text, sub[0], sub[1])
	}
	return text
}

// StrangeFace renders the re-themed face reading for an adjusted offset.
func StrangeFace(offset float64) string {
	face := moons.KankaFace(offset)
	return Retheme(face.Name + " | " + face.Notes + " | " + face.Omen)
}
