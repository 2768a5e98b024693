package game

import "time"

const (
	DefaultDropInterval     = time.Second
	DefaultSoftDropInterval = 100 * time.Millisecond
)

// GravitySystem moves the active piece down one row each time its drop
// interval elapses. The interval switches to SoftDropInterval while the soft
// drop signal is held; the switch applies from the next tick on.
type GravitySystem struct {
	DropInterval     time.Duration
	SoftDropInterval time.Duration

	interval time.Duration
	elapsed  time.Duration
}

func (s *GravitySystem) dropInterval() time.Duration {
	if s.DropInterval > 0 {
		return s.DropInterval
	}
	return DefaultDropInterval
}

func (s *GravitySystem) softDropInterval() time.Duration {
	if s.SoftDropInterval > 0 {
		return s.SoftDropInterval
	}
	return DefaultSoftDropInterval
}

func (s *GravitySystem) Execute(frame *Frame) {
	if s.interval == 0 {
		s.interval = s.dropInterval()
	}

	s.elapsed += frame.DeltaTime
	if s.elapsed > s.interval {
		b := frame.Board
		if active := b.Active(); active != nil && b.CanMoveDown(active.Shape, active.Position, true) {
			active.Position.Y++
		}
		s.elapsed = 0
	}

	if frame.Input.SoftDrop {
		s.interval = s.softDropInterval()
	} else {
		s.interval = s.dropInterval()
	}
}

// SettleSystem demotes the active piece to a static one as soon as it can no
// longer descend. It runs every tick, independent of the drop interval.
type SettleSystem struct{}

func (s *SettleSystem) Execute(frame *Frame) {
	b := frame.Board
	active := b.Active()
	if active == nil {
		return
	}
	if !b.CanMoveDown(active.Shape, active.Position, true) {
		b.Settle()
		frame.Settled = true
	}
}
