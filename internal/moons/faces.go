// Phase naming and the face/omen tables. Offset 0 (and 1) is a full
// moon; 0.5 is new. The eight buckets are symmetric around 0 and 0.5, and
// the face tables are static data keyed by bucket, so the boundary logic
// lives in exactly one place.
package moons

// Rotation types.
const (
	RotationSynchronous = "Synchronous"
	RotationFree        = "Free"
)

// Phase names, one per offset bucket.
const (
	PhaseFull           = "Full"
	PhaseWaningGibbous  = "Waning Gibbous"
	PhaseLastQuarter    = "Last Quarter"
	PhaseWaningCrescent = "Waning Crescent"
	PhaseNew            = "New"
	PhaseWaxingCrescent = "Waxing Crescent"
	PhaseFirstQuarter   = "First Quarter"
	PhaseWaxingGibbous  = "Waxing Gibbous"
)

var phaseNames = [8]string{
	PhaseFull,
	PhaseWaningGibbous,
	PhaseLastQuarter,
	PhaseWaningCrescent,
	PhaseNew,
	PhaseWaxingCrescent,
	PhaseFirstQuarter,
	PhaseWaxingGibbous,
}

// BucketFor maps a phase offset in [0,1] to one of the eight buckets.
func BucketFor(offset float64) int {
	switch {
	case offset <= 0.03 || offset >= 0.97:
		return 0
	case offset < 0.23:
		return 1
	case offset <= 0.27:
		return 2
	case offset < 0.47:
		return 3
	case offset <= 0.53:
		return 4
	case offset < 0.73:
		return 5
	case offset <= 0.77:
		return 6
	default:
		return 7
	}
}

// PhaseName returns the quarter-phase name for an offset.
func PhaseName(offset float64) string {
	return phaseNames[BucketFor(offset)]
}

// Face is a named rotation face with its augury.
type Face struct {
	Name  string `json:"face_name"`
	Notes string `json:"face_notes"`
	Omen  string `json:"face_omen"`
}

// kankaFaces are Kanka's eight rotation faces, indexed by offset bucket.
var kankaFaces = [8]Face{
	{"Grin Without Cause, Laughter in the Dust",
		"A toothy curve of craters, askew. Surprising luck. Unwanted guests.",
		"Beware striking deals; they favor the fool."},
	{"The Black Wink is Not an Eye",
		"A darkened divot shaped like a closed eye. Speak softly.",
		"Secrets withheld will twist in the throat."},
	{"The Tilted Mask, Half Jest, Half Spite",
		"Shadows seem misaligned with the expected arc. Servants rise, masters fall.",
		"A good time for gambling or revolution."},
	{"The Crooked Maw of the Devourer of Patterns",
		"Jagged valley, illusion of a scream. Interruptions, madness.",
		"Lose something; find something better or worse."},
	{"Vein of Fire, a Fissure in the Ice",
		"Rare glowing vein. Upheaval, literal and social.",
		"Watch the mountain roots; some will walk."},
	{"The Jester of Perpetual Challenge",
		"Crescent shadow bends like an arched brow. Days of duels, dares, and dancing.",
		"Speak plainly or be tricked."},
	{"The Bleeding Curve, The Smile That Wounds",
		"Faint reddish tint on the terminator line. Bloodlettings or fevers.",
		"A time of confession and consequence."},
	{"The Shattered Wheel, Never Whole",
		"Craters misaligned as if part of a broken circle. Chaotic shifts.",
		"Nothing holds and no pact binds when Kanka resets her spin."},
}

// jemborFaces are Jembor's eight rotation faces, indexed by offset bucket.
var jemborFaces = [8]Face{
	{"Veiborn, the Hidden One",
		"Jembor rises with no markings visible.",
		"Secrets yet to unfold. Read silent augurs."},
	{"Mirror Drift, a Seer of Doubles",
		"A shimmered visage reflecting another world.",
		"Twins, echoes, and deceptive signs."},
	{"Sable Crown, Sovereign of Stillness",
		"Regal and motionless. Auspicious births.",
		"Abdications. Rising of cloistered powers."},
	{"Wyrmrest, the Sleeping Beast",
		"Ridges give impression of scales or coils.",
		"Latent energy. Stirring of old memories."},
	{"Ashen Gate, a Threshold of Shadows",
		"A darkened rim, marked by a pale cleft.",
		"A portal. The hinge between worlds."},
	{"The Weeping Stone, Tears of Cold Fire",
		"Light patterns create a shining streak.",
		"Grief, release, and haunted songs."},
	{"Eye of the Hollow, the Watcher Beyond",
		"A dark circle on pale stone.",
		"Jembor is watching Gavor."},
	{"The Pale Harrow, Bringer of Reckoning",
		"The bright face, visible even at dawn.",
		"Omens of judgment, trials, or retribution."},
}

var faceTables = map[string]*[8]Face{
	"Kanka":  &kankaFaces,
	"Jembor": &jemborFaces,
}

// FaceFor looks up a moon's face for a rotation offset. Only the
// free-rotating moons have face tables.
func FaceFor(moon string, offset float64) (Face, bool) {
	table, ok := faceTables[moon]
	if !ok {
		return Face{}, false
	}
	return table[BucketFor(offset)], true
}

// KankaFace returns Kanka's face for an offset, used by the chaos model
// when re-reading an anomalous spin.
func KankaFace(offset float64) Face {
	return kankaFaces[BucketFor(offset)]
}
