package main

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/plus3/blockfall/game"
)

type sessionConfig struct {
	Seed     uint64
	Options  []game.Option
	DT       time.Duration
	MaxTicks int64
}

type sessionResult struct {
	Ticks     int64
	Games     int
	Pieces    int
	Rows      int
	BestScore int
	TickTime  Stats
	Systems   []game.SystemStats
}

// randomInput presses each movement key a quarter of the time and never
// pauses or quits.
func randomInput(rng *rand.Rand) game.Input {
	return game.Input{
		MoveLeft:  rng.IntN(4) == 0,
		MoveRight: rng.IntN(4) == 0,
		Rotate:    rng.IntN(4) == 0,
		SoftDrop:  rng.IntN(4) == 0,
	}
}

// runSession plays games back to back with random input until ctx is done
// or MaxTicks ticks have run. A topped-out game is recorded and restarted.
func runSession(ctx context.Context, cfg sessionConfig) sessionResult {
	opts := append([]game.Option{game.WithSeed(cfg.Seed)}, cfg.Options...)
	g := game.New(opts...)
	rng := rand.New(rand.NewPCG(cfg.Seed, ^cfg.Seed))

	var res sessionResult
	finish := func() {
		res.Games++
		res.Pieces += g.PiecesSpawned()
		res.Rows += g.Lines()
		res.BestScore = max(res.BestScore, g.Score())
	}

	for cfg.MaxTicks == 0 || res.Ticks < cfg.MaxTicks {
		if ctx.Err() != nil {
			break
		}

		start := time.Now()
		g.Tick(cfg.DT, randomInput(rng))
		res.TickTime.Add(time.Since(start))
		res.Ticks++

		if g.State() == game.StateEnd {
			finish()
			g.Reset()
		}
	}
	if g.PiecesSpawned() > 0 {
		finish()
	}

	res.Systems = g.Stats().Systems
	return res
}

// mergeSystems combines per-system statistics across sessions by name,
// keeping the first session's order.
func mergeSystems(results []sessionResult) []game.SystemStats {
	var merged []game.SystemStats
	index := make(map[string]int)
	for _, r := range results {
		for _, s := range r.Systems {
			i, ok := index[s.Name]
			if !ok {
				index[s.Name] = len(merged)
				merged = append(merged, s)
				continue
			}
			m := &merged[i]
			if s.ExecutionCount > 0 && (m.ExecutionCount == 0 || s.MinDuration < m.MinDuration) {
				m.MinDuration = s.MinDuration
			}
			m.MaxDuration = max(m.MaxDuration, s.MaxDuration)
			m.ExecutionCount += s.ExecutionCount
			m.TotalDuration += s.TotalDuration
		}
	}
	for i := range merged {
		if merged[i].ExecutionCount > 0 {
			merged[i].AvgDuration = merged[i].TotalDuration / time.Duration(merged[i].ExecutionCount)
		}
	}
	return merged
}
