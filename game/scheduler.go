package game

import (
	"context"
	"reflect"
	"time"

	"github.com/plus3/blockfall/board"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalTicks      int64
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler executes systems in registration order against one board and
// tracks the session state they report.
type Scheduler struct {
	board       *board.Board
	systems     []System
	systemStats []*systemStatsInternal
	state       State
	ticks       int64
}

// NewScheduler creates a scheduler in StatePlay for the given board.
func NewScheduler(b *board.Board) *Scheduler {
	return &Scheduler{
		board:   b,
		systems: make([]System, 0),
		state:   StatePlay,
	}
}

// Register appends a system. Registration order is execution order.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// State returns the current session state.
func (s *Scheduler) State() State {
	return s.state
}

// SetPaused pauses or resumes a session in play. It has no effect once the
// session has ended or closed.
func (s *Scheduler) SetPaused(paused bool) {
	if paused {
		s.state = s.state.next(StatePause)
	} else {
		s.state = s.state.next(StatePlay)
	}
}

// Close moves the session to StateClose.
func (s *Scheduler) Close() {
	s.state = StateClose
}

// Once executes one tick. Gameplay systems only run in StatePlay; systems
// implementing PausedRunner run in every state but StateClose.
func (s *Scheduler) Once(dt time.Duration, input Input) *Frame {
	frame := newFrame(dt, input, s.board)

	if input.Quit {
		s.state = StateClose
	}
	if s.state == StateClose {
		return frame
	}
	if input.Pause {
		s.SetPaused(s.state == StatePlay)
	}

	s.ticks++
	for i, system := range s.systems {
		if s.state == StateClose {
			break
		}
		if s.state != StatePlay && !runsWhilePaused(system) {
			continue
		}

		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}

		if reporter, ok := system.(StateReporter); ok {
			s.state = s.state.next(reporter.State())
		}
	}

	return frame
}

// Run executes ticks at the given interval until the context is cancelled or
// the session closes. poll is called once per tick to sample input and may be
// nil. It returns the final session state.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration, poll func() Input) State {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return s.state
		case now := <-ticker.C:
			dt := now.Sub(lastTime)
			lastTime = now

			var input Input
			if poll != nil {
				input = poll()
			}
			s.Once(dt, input)
			if s.state == StateClose {
				return s.state
			}
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		TotalTicks:  s.ticks,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
