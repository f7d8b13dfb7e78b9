package main

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/talgya/saskan-astro/internal/astro"
	"github.com/talgya/saskan-astro/internal/moons"
	"github.com/talgya/saskan-astro/internal/sky"
	"github.com/talgya/saskan-astro/internal/solar"
	"github.com/talgya/saskan-astro/internal/translator"
	"github.com/talgya/saskan-astro/internal/wanderers"
)

var dateHour float64

// dateCmd translates an astro day into every calendar system.
var dateCmd = &cobra.Command{
	Use:   "date <astro-day>",
	Short: "Translate an astro day into every calendar system",
	Long: `Translate a day of the canonical astro calendar into the Fatunik,
Terpin, and lunar calendars, with moon phases, wanderers, pulsar time,
and the visible sky. The hour flag shifts civil calendars that change
days at dawn or dusk.`,
	Args: cobra.ExactArgs(1),
	RunE: runDate,
}

// moonsCmd reports every moon's phase for a day.
var moonsCmd = &cobra.Command{
	Use:   "moons <astro-day>",
	Short: "Report the phase and face of every moon",
	Args:  cobra.ExactArgs(1),
	RunE:  runMoons,
}

// wanderersCmd reports wanderer positions and visibility for a day.
var wanderersCmd = &cobra.Command{
	Use:   "wanderers <astro-day>",
	Short: "Report wanderer positions and visibility",
	Args:  cobra.ExactArgs(1),
	RunE:  runWanderers,
}

// skyCmd reports the visible House and fixed stars for a day.
var skyCmd = &cobra.Command{
	Use:   "sky <astro-day>",
	Short: "Report the visible House of the Equinox and fixed stars",
	Args:  cobra.ExactArgs(1),
	RunE:  runSky,
}

func init() {
	dateCmd.Flags().Float64Var(&dateHour, "hour", translator.DefaultHour, "Hour of day, 0-24 (0 midnight, 6 dawn, 12 noon, 18 dusk)")
}

// dayArg parses the astro day argument. Out-of-range values are handled
// by the sanitizers downstream.
func dayArg(args []string) (float64, error) {
	day, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, fmt.Errorf("bad astro day %q: %w", args[0], err)
	}
	return day, nil
}

func runDate(cmd *cobra.Command, args []string) error {
	day, err := dayArg(args)
	if err != nil {
		return err
	}

	report := translator.Translate(day, dateHour)
	fmt.Printf("Astro day %s — pulse %s\n",
		humanize.Commaf(report.Rosetta.Day),
		humanize.Comma(report.Galactic.PulseCount))
	return printJSON(report)
}

func runMoons(cmd *cobra.Command, args []string) error {
	day, err := dayArg(args)
	if err != nil {
		return err
	}

	report := moons.Phases(day)
	counts := moons.CountPhases(report.Moons)
	fmt.Printf("Moons on astro day %s: %d full, %d new\n",
		humanize.Commaf(report.AstroDay), counts.FullMoons, counts.NewMoons)
	return printJSON(report)
}

func runWanderers(cmd *cobra.Command, args []string) error {
	day, err := dayArg(args)
	if err != nil {
		return err
	}

	report := wanderers.Report(day)
	fmt.Printf("Wanderers visible tonight: %d\n", wanderers.CountVisible(report))
	return printJSON(report)
}

func runSky(cmd *cobra.Command, args []string) error {
	day, err := dayArg(args)
	if err != nil {
		return err
	}

	solarDay := solar.SolarDayFromPulse(float64(astro.PulsesFromAstroDay(astro.SanitizeAstroDay(day))))
	return printJSON(sky.StarContext(solarDay))
}
