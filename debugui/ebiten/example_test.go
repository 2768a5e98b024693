package ebiten_test

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/game"
)

// Game implements ebiten.Game and renders the debug overlay on top of the board.
type Game struct {
	session *game.Game
	overlay *debugui.Overlay
	backend *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// The overlay is a game system, so the tick must run inside the ImGui frame.
	g.backend.Frame(func() {
		g.overlay.TakeRequests().Apply(g.session, nil)
		g.session.Tick(time.Second/60, game.Input{})
	})
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw the board here.
	// ...

	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui_ebiten.New("blockfall debug", 1280, 720)

	session := game.New()
	overlay := debugui.NewOverlay(session)
	session.Register(overlay)

	if err := ebiten.RunGame(&Game{session: session, overlay: overlay, backend: backend}); err != nil {
		panic(err)
	}
}
