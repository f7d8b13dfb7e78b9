// The Saskan watch clock: 6 watches of 4 hours, 8 bells per watch,
// 6 wayts per bell. Saskans do not count seconds, but the galactic pulsar
// conveniently does.
package astro

import "fmt"

// WatchTime renders a within-day pulse count in Saskan and earth terms.
type WatchTime struct {
	Spoken  string `json:"spoken_time"`
	Written string `json:"written_time"`
	Earth   string `json:"earth_time"`
}

// WatchTimeFromPulse converts a pulse-of-day count (0–86399) to watch,
// bell, and wayt readings.
func WatchTimeFromPulse(pulse float64) WatchTime {
	p := SanitizeDayPulse(pulse)

	hours := p / 3600
	minutes := (p % 3600) / 60
	seconds := p % 60

	watch := p/14400 + 1 // 4 hours each
	intoWatch := p - (watch-1)*14400
	bell := intoWatch/1800 + 1 // 30 minutes each
	intoBell := intoWatch - (bell-1)*1800
	wayt := intoBell/300 + 1 // 5 minutes each

	return WatchTime{
		Spoken:  fmt.Sprintf("%d-bell-%d of the %s Watch", bell, wayt, Ordinal(int(watch))),
		Written: fmt.Sprintf("%d/%d:%d", watch, bell, wayt),
		Earth:   fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds),
	}
}

// Ordinal spells out ordinals one through six, the range of watches and
// wayts; anything larger gets a "th" suffix.
func Ordinal(n int) string {
	ordinals := []string{"First", "Second", "Third", "Fourth", "Fifth", "Sixth"}
	if n >= 1 && n <= len(ordinals) {
		return ordinals[n-1]
	}
	return fmt.Sprintf("%dth", n)
}
