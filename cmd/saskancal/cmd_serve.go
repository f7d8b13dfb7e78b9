package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/talgya/saskan-astro/internal/api"
	"github.com/talgya/saskan-astro/internal/astro"
	"github.com/talgya/saskan-astro/internal/chaos"
)

var (
	servePort     int
	chaosSeed     int64
	chaosMaxTurns int
)

// serveCmd runs the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve calendar translations over HTTP",
	Long: `Serve the calendar API. GET endpoints are public; the chaos
reseeding endpoint requires the bearer token in SASKANCAL_ADMIN_KEY.`,
	RunE: runServe,
}

// seedChaosCmd regenerates the Kanka chaos timeline.
var seedChaosCmd = &cobra.Command{
	Use:   "seed-chaos",
	Short: "Generate the Kanka chaos event timeline",
	Long: `Generate the anomalous Kanka spin events from a seed and store the
per-day perturbations. Reseeding replaces any existing timeline.`,
	RunE: runSeedChaos,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "HTTP listen port")
	seedChaosCmd.Flags().Int64Var(&chaosSeed, "seed", 42, "Chaos timeline seed")
	seedChaosCmd.Flags().IntVar(&chaosMaxTurns, "turns", 3000, "Length of the timeline in turns")
}

// openChaosStore opens the chaos database, creating its directory.
func openChaosStore() (*chaos.Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}
	store, err := chaos.OpenStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open chaos store: %w", err)
	}
	return store, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	store, err := openChaosStore()
	if err != nil {
		return err
	}
	defer store.Close()
	slog.Info("chaos store opened", "path", dbPath)

	adminKey := os.Getenv("SASKANCAL_ADMIN_KEY")
	if adminKey == "" {
		slog.Warn("SASKANCAL_ADMIN_KEY not set — admin POST endpoints will be disabled")
	}

	server := &api.Server{
		Chaos:    store,
		Port:     servePort,
		AdminKey: adminKey,
	}
	server.Start()

	fmt.Printf("Almanac API: http://localhost:%d/api/v1/date?day=400000\n", servePort)
	fmt.Println("Serving... (Ctrl+C to stop)")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	slog.Info("received signal, shutting down", "signal", sig)
	return nil
}

func runSeedChaos(cmd *cobra.Command, args []string) error {
	store, err := openChaosStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := chaos.SeedKankaChaos(store, chaosSeed, chaosMaxTurns); err != nil {
		return fmt.Errorf("seed chaos timeline: %w", err)
	}

	events, err := store.Events()
	if err != nil {
		return fmt.Errorf("read back chaos events: %w", err)
	}

	days := int64(float64(chaosMaxTurns) * astro.DaysPerAstroTurn)
	fmt.Printf("Seeded %d chaos events across %s days (seed %d).\n",
		len(events), humanize.Comma(days), chaosSeed)
	return nil
}
