package game_test

import (
	"bytes"
	"fmt"
	"log"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 50 * time.Millisecond

func TestGameFirstTick(t *testing.T) {
	g := game.New(game.WithRandomizer(newSequence(2, 3)))
	assert.Equal(t, game.StatePlay, g.State())
	assert.Nil(t, g.Board().Active())

	f := g.Tick(tick, game.Input{})
	assert.True(t, f.Spawned)
	require.NotNil(t, g.Board().Active())
	assert.Equal(t, board.KindTee, g.Board().Active().Kind)
	assert.Equal(t, board.KindJay, g.Board().Player().Next.Kind)
	assert.Equal(t, game.StatusActive, g.Status())
	assert.Equal(t, 1, g.PiecesSpawned())
}

func TestGamePieceLifecycle(t *testing.T) {
	g := game.New(
		game.WithRandomizer(newSequence(1)),
		game.WithIntervals(0, 0, 10*time.Millisecond, 0),
	)

	g.Tick(tick, game.Input{})
	first := g.Board().Active().ID

	settled := false
	for range 100 {
		f := g.Tick(tick, game.Input{})
		if f.Settled {
			settled = true
			assert.True(t, f.Spawned, "a new piece spawns in the tick that settles the old one")
			break
		}
	}
	require.True(t, settled)

	p := g.Board().Piece(first)
	require.NotNil(t, p)
	assert.Equal(t, board.Position{X: 5, Y: 22}, p.Position)
	assert.NotEqual(t, first, g.Board().Active().ID)
	assert.Equal(t, 1, g.Board().StaticCount())
}

func TestGameClearsRows(t *testing.T) {
	var logs bytes.Buffer
	g := game.New(
		game.WithRandomizer(newSequence(1)),
		game.WithIntervals(0, 0, 10*time.Millisecond, 0),
		game.WithLogger(log.New(&logs, "", 0)),
	)
	b := g.Board()
	fillRow(b, 22, 5, 6)
	fillRow(b, 23, 5, 6)

	for range 100 {
		g.Tick(tick, game.Input{})
		if g.Lines() > 0 {
			break
		}
	}

	assert.Equal(t, 2, g.Lines())
	assert.Equal(t, 2*board.DefaultWidth, g.Score())
	assert.Zero(t, b.StaticCount())
	assert.Contains(t, logs.String(), "cleared 2 row(s), score 20")
}

func TestGameSpawnLoss(t *testing.T) {
	var logs bytes.Buffer
	g := game.New(
		game.WithRandomizer(newSequence(1)),
		game.WithLogger(log.New(&logs, "", 0)),
	)
	b := g.Board()
	for y := 1; y < b.Height(); y++ {
		fillRow(b, y, 0)
	}

	f := g.Tick(tick, game.Input{})
	assert.True(t, f.ToppedOut)
	assert.Equal(t, game.StatusGameOver, g.Status())
	assert.Equal(t, game.StateEnd, g.State())
	assert.Nil(t, b.Active(), "the active marker is never attached")
	assert.Zero(t, g.PiecesSpawned())
	assert.Contains(t, logs.String(), "session PLAY -> END")

	statics := b.StaticCount()
	for range 10 {
		g.Tick(time.Second, game.Input{MoveLeft: true, Rotate: true, SoftDrop: true})
	}
	assert.Nil(t, b.Active())
	assert.Equal(t, statics, b.StaticCount())
}

func TestGamePauseAndClose(t *testing.T) {
	g := game.New(game.WithSeed(7))
	g.Tick(tick, game.Input{})
	start := g.Board().Active().Position

	g.Tick(tick, game.Input{Pause: true})
	assert.Equal(t, game.StatePause, g.State())
	for range 50 {
		g.Tick(time.Second, game.Input{MoveLeft: true})
	}
	assert.Equal(t, start, g.Board().Active().Position)

	g.SetPaused(false)
	assert.Equal(t, game.StatePlay, g.State())

	g.Close()
	g.Tick(time.Second, game.Input{MoveLeft: true})
	assert.Equal(t, game.StateClose, g.State())
	assert.Equal(t, start, g.Board().Active().Position)
}

func TestGameReset(t *testing.T) {
	g := game.New(game.WithRandomizer(newSequence(1)))
	b := g.Board()
	for y := 1; y < b.Height(); y++ {
		fillRow(b, y, 0)
	}
	g.Tick(tick, game.Input{})
	require.Equal(t, game.StatusGameOver, g.Status())

	g.Reset()
	assert.Equal(t, game.StatePlay, g.State())
	assert.Equal(t, game.StatusActive, g.Status())
	assert.Zero(t, b.StaticCount())
	assert.Zero(t, g.Score())
	assert.Zero(t, g.Lines())

	g.Tick(tick, game.Input{})
	assert.NotNil(t, b.Active())
	assert.Equal(t, 1, g.PiecesSpawned())
}

func TestGameIsDeterministic(t *testing.T) {
	run := func() board.Snapshot {
		g := game.New(game.WithSeed(1234))
		inputs := rand.New(rand.NewPCG(99, 0))
		for range 2000 {
			g.Tick(tick, randomInput(inputs))
		}
		return g.Snapshot()
	}

	assert.Equal(t, run(), run())
}

func randomInput(r *rand.Rand) game.Input {
	return game.Input{
		MoveLeft:  r.IntN(3) == 0,
		MoveRight: r.IntN(3) == 0,
		Rotate:    r.IntN(4) == 0,
		SoftDrop:  r.IntN(2) == 0,
	}
}

// checkInvariants verifies that static pieces never overlap each other or the
// active piece, that every occupied cell is on the board, and that no static
// piece is left empty.
func checkInvariants(t *testing.T, b *board.Board) {
	t.Helper()

	owner := make(map[[2]int]board.PieceID)
	visit := func(p *board.Piece) {
		for x, y := range p.Cells() {
			require.True(t, x >= 0 && x < b.Width(), "piece %d has x=%d", p.ID, x)
			require.True(t, y >= 0 && y < b.Height(), "piece %d has y=%d", p.ID, y)
			prev, taken := owner[[2]int{x, y}]
			require.False(t, taken, "pieces %d and %d both cover (%d, %d)", prev, p.ID, x, y)
			owner[[2]int{x, y}] = p.ID
		}
	}

	for p := range b.Statics() {
		require.False(t, p.Shape.Empty(), "static piece %d is empty", p.ID)
		visit(p)
	}
	if active := b.Active(); active != nil {
		visit(active)
	}
}

func TestGameInvariants(t *testing.T) {
	for seed := uint64(1); seed <= 8; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			g := game.New(game.WithSeed(seed))
			inputs := rand.New(rand.NewPCG(seed, 1))

			for range 4000 {
				if g.Status() == game.StatusGameOver {
					break
				}
				f := g.Tick(tick, randomInput(inputs))
				checkInvariants(t, g.Board())

				assert.Equal(t, board.DefaultWidth*g.Lines(), g.Score())
				if f.Settled && !f.Spawned {
					assert.Nil(t, g.Board().Active())
				}
			}
			assert.Positive(t, g.PiecesSpawned())
		})
	}
}

func TestGameStats(t *testing.T) {
	g := game.New(game.WithSeed(3))
	for range 10 {
		g.Tick(tick, game.Input{})
	}

	stats := g.Stats()
	require.Len(t, stats.Systems, 6)

	var names []string
	for _, s := range stats.Systems {
		names = append(names, s.Name)
		assert.Equal(t, int64(10), s.ExecutionCount)
	}
	assert.Equal(t, []string{
		"SettleSystem",
		"GravitySystem",
		"MovementSystem",
		"RotationSystem",
		"CleanerSystem",
		"SpawnerSystem",
	}, names)
}
