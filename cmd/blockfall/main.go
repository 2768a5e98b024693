// Command blockfall plays the game in an ebiten window, optionally with the
// Dear ImGui debug overlay.
package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/game"
)

const title = "blockfall"

func main() {
	configPath := flag.String("config", "blockfall.yaml", "Path to the YAML config file.")
	debug := flag.Bool("debug", false, "Show the debug overlay.")
	seed := flag.Uint64("seed", 0, "Fix the piece sequence (0 seeds from the clock).")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *debug {
		cfg.Frontend.Debug = true
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	logger := log.New(os.Stderr, "blockfall: ", log.LstdFlags)
	opts := append(cfg.GameOptions(), game.WithLogger(logger))
	session := game.New(opts...)

	layout := newLayout(cfg.Board.Width, cfg.Board.Height, cfg.Frontend.CellSize)
	app := &App{
		session: session,
		layout:  layout,
		dt:      cfg.TickInterval(),
	}

	if cfg.Frontend.Debug {
		app.backend = debugui_ebiten.New(title, 1280, 720)
		app.overlay = debugui.NewOverlay(session)
		app.stepper = &debugui.Stepper{}
		session.Register(app.overlay)
	} else {
		ebiten.SetWindowSize(layout.width, layout.height)
		ebiten.SetWindowTitle(title)
	}
	ebiten.SetTPS(cfg.Frontend.TickRate)

	logger.Printf("starting %dx%d board at %d TPS", cfg.Board.Width, cfg.Board.Height, cfg.Frontend.TickRate)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("Game exited: %v", err)
	}
	logger.Printf("final score %d, %d rows", session.Score(), session.Lines())
}

// App implements ebiten.Game around a game session.
type App struct {
	session *game.Game
	layout  layout
	dt      time.Duration

	backend *debugui_ebiten.ImguiBackend
	overlay *debugui.Overlay
	stepper *debugui.Stepper
}

func (a *App) Update() error {
	if a.backend == nil {
		return a.update()
	}

	var err error
	a.backend.Frame(func() {
		a.overlay.TakeRequests().Apply(a.session, a.stepper)
		a.stepper.Tick(a.session, func() { err = a.update() })
	})
	return err
}

func (a *App) update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.session.Reset()
	}

	var input game.Input
	if a.overlay == nil || !a.overlay.Input.WantCaptureKeyboard {
		input = readInput()
	}

	a.session.Tick(a.dt, input)
	if a.session.State() == game.StateClose {
		return ebiten.Termination
	}
	return nil
}

func readInput() game.Input {
	return game.Input{
		MoveLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		MoveRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Rotate:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		SoftDrop:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Pause:     inpututil.IsKeyJustPressed(ebiten.KeyP),
		Quit:      ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ),
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	a.layout.draw(screen, a.session.Snapshot(), a.session)
	if a.backend != nil {
		a.backend.Draw(screen)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.backend != nil {
		a.backend.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return a.layout.width, a.layout.height
}
