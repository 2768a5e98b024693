// Command blockfall-stress plays many headless sessions with random input
// and reports throughput and per-system timing.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/plus3/blockfall/config"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	sessions := flag.Int("sessions", runtime.NumCPU(), "The number of sessions to run in parallel.")
	seed := flag.Uint64("seed", 1, "Seed of the first session; session i uses seed+i.")
	configPath := flag.String("config", "", "Optional YAML config for board size and timing.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	// Sessions are seeded individually below.
	cfg.Seed = 0

	log.Println("Starting blockfall stress test...")

	report := &Report{
		Duration:       *duration,
		Sessions:       *sessions,
		Seed:           *seed,
		Width:          cfg.Board.Width,
		Height:         cfg.Board.Height,
		TickStep:       cfg.TickInterval(),
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running %d sessions for %s...\n", *sessions, *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	results := make([]sessionResult, *sessions)
	group, ctx := errgroup.WithContext(ctx)
	startTime := time.Now()
	for i := range results {
		group.Go(func() error {
			results[i] = runSession(ctx, sessionConfig{
				Seed:    *seed + uint64(i),
				Options: cfg.GameOptions(),
				DT:      cfg.TickInterval(),
			})
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		log.Fatalf("Session failed: %v", err)
	}

	report.TotalTime = time.Since(startTime)
	report.Collect(results)
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
