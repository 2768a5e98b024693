package termui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/game"
)

type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionRotate
	ActionSoftDrop
	ActionPause
	ActionQuit
	ActionRestart
	actionCount
)

// DefaultHoldTicks covers the gap between terminal key repeats at 60 TPS.
const DefaultHoldTicks = 4

// KeyAction maps a key event to an action. Arrows, WASD and hjkl all move.
func KeyAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyUp:
		return ActionRotate
	case tcell.KeyDown:
		return ActionSoftDrop
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	switch ev.Rune() {
	case 'a', 'A', 'h':
		return ActionLeft
	case 'd', 'D', 'l':
		return ActionRight
	case 'w', 'W', 'k':
		return ActionRotate
	case 's', 'S', 'j':
		return ActionSoftDrop
	case 'p', 'P':
		return ActionPause
	case 'q', 'Q':
		return ActionQuit
	case 'r', 'R':
		return ActionRestart
	}
	return ActionNone
}

// Latch turns key presses into per-tick input. Terminals report presses but
// not releases, so a movement action stays held for HoldTicks ticks after
// its last press. Pause, quit and restart fire once.
type Latch struct {
	HoldTicks int
	ttl       [actionCount]int
}

func NewLatch(holdTicks int) *Latch {
	return &Latch{HoldTicks: holdTicks}
}

func (l *Latch) Press(a Action) {
	switch a {
	case ActionNone:
	case ActionLeft, ActionRight, ActionRotate, ActionSoftDrop:
		l.ttl[a] = l.HoldTicks
	default:
		l.ttl[a] = 1
	}
}

// Restart reports and consumes a pending restart request.
func (l *Latch) Restart() bool {
	if l.ttl[ActionRestart] == 0 {
		return false
	}
	l.ttl[ActionRestart] = 0
	return true
}

// Input samples the latched actions for one tick and ages them.
func (l *Latch) Input() game.Input {
	in := game.Input{
		MoveLeft:  l.ttl[ActionLeft] > 0,
		MoveRight: l.ttl[ActionRight] > 0,
		Rotate:    l.ttl[ActionRotate] > 0,
		SoftDrop:  l.ttl[ActionSoftDrop] > 0,
		Pause:     l.ttl[ActionPause] > 0,
		Quit:      l.ttl[ActionQuit] > 0,
	}
	for a := ActionLeft; a < ActionRestart; a++ {
		if l.ttl[a] > 0 {
			l.ttl[a]--
		}
	}
	return in
}
