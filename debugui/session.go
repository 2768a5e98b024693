package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/game"
)

// Requests are session actions chosen in the control window. They are
// applied by the frontend between ticks, never from inside one.
type Requests struct {
	TogglePause bool
	Step        int
	Reset       bool
}

// Apply performs the reset and pause requests on g and queues the steps.
func (r Requests) Apply(g *game.Game, stepper *Stepper) {
	if r.Reset {
		g.Reset()
	}
	if r.TogglePause {
		g.SetPaused(g.State() == game.StatePlay)
	}
	if stepper != nil {
		stepper.remaining += r.Step
	}
}

// Stepper advances a paused session one tick per frame while steps remain.
type Stepper struct {
	remaining int
}

// Remaining returns the number of queued steps.
func (s *Stepper) Remaining() int {
	return s.remaining
}

// Tick calls tick with the session resumed for a queued step when g is
// paused, and pauses it again afterwards. Otherwise it calls tick as is.
func (s *Stepper) Tick(g *game.Game, tick func()) {
	if s.remaining == 0 || g.State() != game.StatePause {
		s.remaining = 0
		tick()
		return
	}

	s.remaining--
	g.SetPaused(false)
	tick()
	g.SetPaused(true)
}

// SessionControl shows the session state and offers pause, step and reset.
type SessionControl struct {
	pending Requests
}

func NewSessionControl() *SessionControl {
	return &SessionControl{}
}

// Take returns and clears the pending requests.
func (sc *SessionControl) Take() Requests {
	r := sc.pending
	sc.pending = Requests{}
	return r
}

func (sc *SessionControl) Render(g *game.Game, frame *game.Frame) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 200), imgui.CondOnce)

	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	state := g.State()
	switch state {
	case game.StatePlay:
		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "RUNNING")
	case game.StatePause:
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "PAUSED")
	default:
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), state.String())
	}

	imgui.Text(fmt.Sprintf("Status: %s", g.Status()))
	imgui.Text(fmt.Sprintf("Score: %d", g.Score()))
	imgui.Text(fmt.Sprintf("Rows cleared: %d", g.Lines()))
	imgui.Text(fmt.Sprintf("Pieces spawned: %d", g.PiecesSpawned()))
	imgui.Separator()

	switch state {
	case game.StatePause:
		imgui.PushStyleColorVec4(imgui.ColButton, imgui.NewVec4(0.2, 0.7, 0.2, 1.0))
		imgui.PushStyleColorVec4(imgui.ColButtonHovered, imgui.NewVec4(0.3, 0.8, 0.3, 1.0))
		imgui.PushStyleColorVec4(imgui.ColButtonActive, imgui.NewVec4(0.1, 0.6, 0.1, 1.0))
		if imgui.Button("Resume") {
			sc.pending.TogglePause = true
		}
		imgui.PopStyleColor()
		imgui.PopStyleColor()
		imgui.PopStyleColor()

		imgui.SameLine()
		if imgui.Button("1 Tick") {
			sc.pending.Step++
		}
		imgui.SameLine()
		if imgui.Button("10 Ticks") {
			sc.pending.Step += 10
		}
	case game.StatePlay:
		if imgui.Button("Pause") {
			sc.pending.TogglePause = true
		}
	}

	if imgui.Button("Reset") {
		sc.pending.Reset = true
	}

	imgui.End()
}
