// Package game runs the falling-block simulation: one system per concern
// (settling, gravity, movement, rotation, line clearing, spawning) executed
// in a fixed order by a Scheduler against a single board.Board.
//
// All timing is driven by the delta passed to each tick, so a session is
// fully deterministic given its seed and input sequence.
package game

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/plus3/blockfall/board"
)

type settings struct {
	width, height    int
	catalog          *board.Catalog
	rand             Randomizer
	moveInterval     time.Duration
	rotateInterval   time.Duration
	dropInterval     time.Duration
	softDropInterval time.Duration
	logger           *log.Logger
}

// Option configures a Game.
type Option func(*settings)

// WithBoardSize overrides the default 10×24 board.
func WithBoardSize(width, height int) Option {
	return func(s *settings) {
		s.width = width
		s.height = height
	}
}

// WithCatalog replaces the default seven-piece catalog.
func WithCatalog(c *board.Catalog) Option {
	return func(s *settings) { s.catalog = c }
}

// WithRandomizer injects the piece generator.
func WithRandomizer(r Randomizer) Option {
	return func(s *settings) { s.rand = r }
}

// WithSeed uses a PCG generator seeded with seed.
func WithSeed(seed uint64) Option {
	return func(s *settings) { s.rand = NewSeededRandomizer(seed) }
}

// WithIntervals overrides the rate limits. Zero values keep the defaults.
func WithIntervals(move, rotate, drop, softDrop time.Duration) Option {
	return func(s *settings) {
		s.moveInterval = move
		s.rotateInterval = rotate
		s.dropInterval = drop
		s.softDropInterval = softDrop
	}
}

// WithLogger sets the logger used for session events.
func WithLogger(logger *log.Logger) Option {
	return func(s *settings) { s.logger = logger }
}

// Game wires the board, the gameplay systems and the scheduler together.
type Game struct {
	board     *board.Board
	scheduler *Scheduler
	logger    *log.Logger

	movement *MovementSystem
	rotation *RotationSystem
	gravity  *GravitySystem
	cleaner  *CleanerSystem
	spawner  *SpawnerSystem
}

// New builds a game with the gameplay systems registered in tick order:
// settle, gravity, movement, rotation, line clearing, spawning.
func New(opts ...Option) *Game {
	cfg := settings{
		width:  board.DefaultWidth,
		height: board.DefaultHeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.catalog == nil {
		cfg.catalog = board.DefaultCatalog()
	}
	if cfg.rand == nil {
		cfg.rand = NewSeededRandomizer(uint64(time.Now().UnixNano()))
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard, "", 0)
	}

	b := board.New(board.WithSize(cfg.width, cfg.height))
	g := &Game{
		board:     b,
		scheduler: NewScheduler(b),
		logger:    cfg.logger,
		movement:  &MovementSystem{Interval: cfg.moveInterval},
		rotation:  &RotationSystem{Interval: cfg.rotateInterval},
		gravity: &GravitySystem{
			DropInterval:     cfg.dropInterval,
			SoftDropInterval: cfg.softDropInterval,
		},
		cleaner: &CleanerSystem{},
		spawner: &SpawnerSystem{Catalog: cfg.catalog, Rand: cfg.rand},
	}

	g.scheduler.Register(&SettleSystem{})
	g.scheduler.Register(g.gravity)
	g.scheduler.Register(g.movement)
	g.scheduler.Register(g.rotation)
	g.scheduler.Register(g.cleaner)
	g.scheduler.Register(g.spawner)
	return g
}

// Register appends a system after the gameplay systems, typically a
// renderer or overlay implementing PausedRunner.
func (g *Game) Register(system System) {
	g.scheduler.Register(system)
}

// Tick advances the simulation by dt with the given input.
func (g *Game) Tick(dt time.Duration, input Input) *Frame {
	before := g.scheduler.State()
	frame := g.scheduler.Once(dt, input)

	if frame.Cleared > 0 {
		g.logger.Printf("cleared %d row(s), score %d", frame.Cleared, g.board.Player().Score)
	}
	if frame.ToppedOut {
		g.logger.Printf("board topped out after %d pieces, final score %d", g.spawner.Spawned, g.board.Player().Score)
	}
	if after := g.scheduler.State(); after != before {
		g.logger.Printf("session %s -> %s", before, after)
	}
	return frame
}

// Run ticks at interval until ctx is cancelled or the session closes.
func (g *Game) Run(ctx context.Context, interval time.Duration, poll func() Input) State {
	return g.scheduler.Run(ctx, interval, poll)
}

// Reset starts a new session on an empty board. Registered systems are kept.
func (g *Game) Reset() {
	g.board.Reset()
	g.spawner.reset()
	*g.movement = MovementSystem{Interval: g.movement.Interval}
	*g.rotation = RotationSystem{Interval: g.rotation.Interval}
	*g.gravity = GravitySystem{
		DropInterval:     g.gravity.DropInterval,
		SoftDropInterval: g.gravity.SoftDropInterval,
	}
	g.cleaner.Rows = 0
	if g.scheduler.State() != StateClose {
		g.scheduler.state = StatePlay
	}
	g.logger.Printf("session reset")
}

// Board returns the live board. Callers outside systems should prefer Snapshot.
func (g *Game) Board() *board.Board {
	return g.board
}

// Catalog returns the templates the spawner draws from.
func (g *Game) Catalog() *board.Catalog {
	return g.spawner.Catalog
}

func (g *Game) Scheduler() *Scheduler {
	return g.scheduler
}

// Snapshot returns a deep copy of the board for rendering.
func (g *Game) Snapshot() board.Snapshot {
	return g.board.Snapshot()
}

func (g *Game) Stats() *SchedulerStats {
	return g.scheduler.GetStats()
}

// State returns the session state.
func (g *Game) State() State {
	return g.scheduler.State()
}

// Status reports ACTIVE until the board tops out.
func (g *Game) Status() Status {
	return g.spawner.Status()
}

func (g *Game) Score() int {
	return g.board.Player().Score
}

// Lines returns the number of rows cleared this session.
func (g *Game) Lines() int {
	return g.cleaner.Rows
}

func (g *Game) PiecesSpawned() int {
	return g.spawner.Spawned
}

func (g *Game) SetPaused(paused bool) {
	g.scheduler.SetPaused(paused)
}

// Close ends the session for good; further ticks do nothing.
func (g *Game) Close() {
	g.scheduler.Close()
}
