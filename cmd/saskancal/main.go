// Command saskancal answers calendar and sky queries for the Saskan
// Lands, and serves them over HTTP.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	dbPath  string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "saskancal",
	Short: "Calendar and sky almanac of the Saskan Lands",
	Long: `saskancal translates days of the canonical astro calendar into the
civil and sky systems in use across the Saskan Lands: the Fatunik and
Terpin solar calendars, the two lunar calendars, moon phases, the
wanderers, and the Houses of the Equinox.

Days are counted from the astro epoch; the pulsar clock ticks 86400
pulses per day.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))
		slog.SetDefault(logger)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "data/chaos.db", "Path to the chaos database")

	rootCmd.AddCommand(dateCmd)
	rootCmd.AddCommand(moonsCmd)
	rootCmd.AddCommand(wanderersCmd)
	rootCmd.AddCommand(skyCmd)
	rootCmd.AddCommand(seedChaosCmd)
	rootCmd.AddCommand(serveCmd)
}

// printJSON renders a result the way the HTTP API does.
func printJSON(data any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
