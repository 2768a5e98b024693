package game

import "time"

const (
	DefaultMoveInterval   = 200 * time.Millisecond
	DefaultRotateInterval = 500 * time.Millisecond
)

// MovementSystem shifts the active piece one column per accepted input.
// Left and right share one timer that restarts only on a successful move;
// left wins when both are held.
type MovementSystem struct {
	Interval time.Duration

	elapsed time.Duration
}

func (s *MovementSystem) interval() time.Duration {
	if s.Interval > 0 {
		return s.Interval
	}
	return DefaultMoveInterval
}

func (s *MovementSystem) Execute(frame *Frame) {
	s.elapsed += frame.DeltaTime
	if s.elapsed <= s.interval() {
		return
	}

	b := frame.Board
	active := b.Active()
	if active == nil {
		return
	}

	switch {
	case frame.Input.MoveLeft:
		if b.CanMoveLeft(active.Shape, active.Position, true) {
			active.Position.X--
			s.elapsed = 0
		}
	case frame.Input.MoveRight:
		if b.CanMoveRight(active.Shape, active.Position, true) {
			active.Position.X++
			s.elapsed = 0
		}
	}
}

// RotationSystem turns the active piece a quarter clockwise per accepted
// input. There is no wall kick: the rotated shape must fit where the piece
// stands. Every attempt restarts the timer, accepted or not.
type RotationSystem struct {
	Interval time.Duration

	elapsed time.Duration
}

func (s *RotationSystem) interval() time.Duration {
	if s.Interval > 0 {
		return s.Interval
	}
	return DefaultRotateInterval
}

func (s *RotationSystem) Execute(frame *Frame) {
	s.elapsed += frame.DeltaTime
	if !frame.Input.Rotate || s.elapsed <= s.interval() {
		return
	}
	s.elapsed = 0

	b := frame.Board
	active := b.Active()
	if active == nil {
		return
	}

	rotated := active.Shape.Rotate()
	if b.CanMoveDown(rotated, active.Position, false) &&
		b.CanMoveRight(rotated, active.Position, false) &&
		b.CanMoveLeft(rotated, active.Position, false) {
		active.Shape = rotated
	}
}
