// Command blockfall-term plays the game in a terminal with optional sound.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/termui"
)

func main() {
	configPath := flag.String("config", "blockfall.yaml", "Path to the YAML config file.")
	seed := flag.Uint64("seed", 0, "Fix the piece sequence (0 seeds from the clock).")
	mute := flag.Bool("mute", false, "Disable sound cues.")
	logPath := flag.String("log", "", "Write the session log to this file.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *mute {
		cfg.Audio.Enabled = false
	}

	// The screen owns stdout and stderr while the game runs.
	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			log.Fatalf("Failed to open log: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.New(logOut, "blockfall: ", log.LstdFlags)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}

	player := audio.NewPlayer(cfg.Audio.Volume)
	if cfg.Audio.Enabled {
		if err := player.Init(); err != nil {
			logger.Printf("Audio initialization failed: %v", err)
		}
	}

	session := game.New(append(cfg.GameOptions(), game.WithLogger(logger))...)
	t := &terminal{
		session:  session,
		renderer: termui.NewRenderer(screen),
		latch:    termui.NewLatch(termui.DefaultHoldTicks),
		player:   player,
		dt:       cfg.TickInterval(),
	}
	t.run(screen)

	player.Close()
	screen.Fini()
	fmt.Printf("Final score %d, %d rows, %d pieces\n", session.Score(), session.Lines(), session.PiecesSpawned())
}

type terminal struct {
	session  *game.Game
	renderer *termui.Renderer
	latch    *termui.Latch
	player   *audio.Player
	dt       time.Duration
}

func (t *terminal) run(screen tcell.Screen) {
	ticker := time.NewTicker(t.dt)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				t.latch.Press(termui.KeyAction(ev))
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			if t.latch.Restart() {
				t.session.Reset()
			}
			frame := t.session.Tick(t.dt, t.latch.Input())
			if frame.Cleared > 0 {
				t.player.Cleared(frame.Cleared)
			}
			if frame.ToppedOut {
				t.player.ToppedOut()
			}
			if t.session.State() == game.StateClose {
				return
			}
			t.renderer.Draw(t.session.Snapshot(), termui.HUDFor(t.session))
		}
	}
}
