// Package sky provides the observational sky context: the Houses of the
// Equinox (twelve constellations keyed to the solar month) and the fixed
// stars visible in each season. Purely a static lookup over the solar
// day; the Houses are tracked by observation, not calculation.
package sky

import (
	"github.com/talgya/saskan-astro/internal/astro"
	"github.com/talgya/saskan-astro/internal/solar"
)

// houses are the twelve constellations of the Houses of the Equinox.
var houses = [12]string{
	"The Ember Gate",
	"The Twin Horns",
	"The Hollow Root",
	"The Loom of Krenna",
	"The Silver Wheel",
	"The Broken Staff",
	"The Thorned Veil",
	"The Watchers of Stillness",
	"The Burning Mirror",
	"The Chain of Four",
	"The Lantern Grove",
	"The Stone Circle",
}

// allSeasons marks the circumpolar stars visible the whole turn.
const allSeasons = "All"

type fixedStar struct {
	name    string
	season  string
	bearing string
}

var fixedStars = []fixedStar{
	{"Aghur", astro.SeasonStillness, "in the north-northeast, low above the frostline"},
	{"Thalona", astro.SeasonGreening, "in the east, just above the sowing fields"},
	{"Mirrest", astro.SeasonBlazing, "in the south-southeast, blazing over the old hills"},
	{"Krenna", astro.SeasonWithering, "in the west, near the horizon where the sun lingers"},
	{"Tursin", astro.SeasonGreening, "in the northeast, halfway to the pole star"},
	{"Boreth", astro.SeasonStillness, "high in the northern sky, just east of the North Watch"},
	{"Zomel", astro.SeasonBlazing, "low in the southwest, near the veil of clouds"},
	{"Ethranel", astro.SeasonWithering, "in the east-northeast, just before dawn"},
	{"Velkora", astro.SeasonGreening, "in the west-northwest, between the Split Peaks"},
	{"Saurnak", astro.SeasonBlazing, "in the south, tucked near the Lantern Grove"},
	{"Droven", astro.SeasonStillness, "rising in the east with the third bell of night"},
	{"Henmae", astro.SeasonWithering, "in the west-southwest, red and near the harvest haze"},
	// The Pole Star and its Minions, visible in every season.
	{"Ilyrun", allSeasons, "the Pole Star, unwavering in the true north"},
	{"Kresh", allSeasons, "to the left of Ilyrun, rising and dipping like a kettle"},
	{"Marnok", allSeasons, "below Ilyrun, clawing at the trees of the high north"},
	{"Sethera", allSeasons, "to the right of Ilyrun, where wanderers sometimes gather"},
}

// VisibleStar is a fixed star and where to look for it tonight.
type VisibleStar struct {
	Name    string `json:"name"`
	Bearing string `json:"bearing"`
}

// Context is the sky report for one solar day.
type Context struct {
	Constellation string        `json:"Constellation"`
	FixedStars    []VisibleStar `json:"Fixed Stars"`
}

// StarContext returns the visible House and fixed stars for a solar day.
func StarContext(solarDay float64) Context {
	d := astro.SanitizeSolarDay(solarDay)

	month := int(solar.SolarMonth(d)) - 1
	if month < 0 {
		month = 0
	}
	if month > 11 {
		month = 11
	}

	season := solar.SolarSeason(d).Name
	var visible []VisibleStar
	for _, s := range fixedStars {
		if s.season == season || s.season == allSeasons {
			visible = append(visible, VisibleStar{Name: s.name, Bearing: s.bearing})
		}
	}

	return Context{Constellation: houses[month], FixedStars: visible}
}
