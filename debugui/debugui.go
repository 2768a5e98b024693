// Package debugui provides Dear ImGui inspection windows for a running game.
// The Overlay is registered as a game system that keeps running while the
// session is paused or over, so the windows stay live for inspection.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/game"
)

// Window renders one ImGui window per tick.
type Window interface {
	Render(g *game.Game, frame *game.Frame)
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Frontends should drop game input while WantCaptureKeyboard is set.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay renders its windows every tick. ImGui calls are only valid between
// the backend's BeginFrame and EndFrame, so the tick that runs the overlay
// must be bracketed by them.
type Overlay struct {
	Game    *game.Game
	Session *SessionControl
	Windows []Window
	Input   InputState
}

// NewOverlay builds the default window set for g.
func NewOverlay(g *game.Game) *Overlay {
	browser := NewPieceBrowser(20)
	session := NewSessionControl()
	return &Overlay{
		Game:    g,
		Session: session,
		Windows: []Window{
			session,
			NewPerformanceStats(120),
			browser,
			NewPieceInspector(browser),
			NewRowViewer(),
			NewCollisionProbe(),
		},
	}
}

func (o *Overlay) Execute(frame *game.Frame) {
	io := imgui.CurrentIO()
	o.Input.WantCaptureMouse = io.WantCaptureMouse()
	o.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, w := range o.Windows {
		w.Render(o.Game, frame)
	}
}

func (o *Overlay) RunsWhilePaused() bool {
	return true
}

// TakeRequests returns and clears the session actions clicked since the last call.
func (o *Overlay) TakeRequests() Requests {
	if o.Session == nil {
		return Requests{}
	}
	return o.Session.Take()
}
