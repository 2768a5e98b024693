package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/game"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Sessions int
	Seed     uint64
	Width    int
	Height   int
	TickStep time.Duration

	// Results
	TotalTicks     int64
	TotalTime      time.Duration
	Games          int
	Pieces         int
	Rows           int
	BestScore      int
	TickTime       Stats
	Systems        []game.SystemStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Stats is a running summary of durations. It stays the same size however
// many durations it sees.
type Stats struct {
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
	Total time.Duration
	Count int64
}

func (s *Stats) Add(d time.Duration) {
	s.Merge(Stats{Min: d, Max: d, Total: d, Count: 1})
}

// Merge folds o into s.
func (s *Stats) Merge(o Stats) {
	if o.Count == 0 {
		return
	}
	if s.Count == 0 {
		s.Min, s.Max = o.Min, o.Max
	} else {
		s.Min = min(s.Min, o.Min)
		s.Max = max(s.Max, o.Max)
	}
	s.Total += o.Total
	s.Count += o.Count
	s.Avg = s.Total / time.Duration(s.Count)
}

// Collect folds per-session results into the report.
func (r *Report) Collect(results []sessionResult) {
	for _, res := range results {
		r.TotalTicks += res.Ticks
		r.Games += res.Games
		r.Pieces += res.Pieces
		r.Rows += res.Rows
		r.BestScore = max(r.BestScore, res.BestScore)
		r.TickTime.Merge(res.TickTime)
	}
	r.Systems = mergeSystems(results)
}

func (r *Report) TicksPerSecond() float64 {
	if r.TotalTime <= 0 {
		return 0
	}
	return float64(r.TotalTicks) / r.TotalTime.Seconds()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Stress Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Sessions:** {{.Sessions}}
- **Base Seed:** {{.Seed}}
- **Board:** {{.Width}}x{{.Height}}
- **Tick Step:** {{.TickStep}}

## Gameplay
- **Games Finished:** {{.Games}}
- **Pieces Spawned:** {{.Pieces}}
- **Rows Cleared:** {{.Rows}}
- **Best Score:** {{.BestScore}}

## Performance Results
- **Total Ticks:** {{.TotalTicks}}
- **Total Test Time:** {{.TotalTime}}
- **Ticks/s:** {{printf "%.0f" .TicksPerSecond}}
- **Tick Time:**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}

## Systems
| System | Runs | Avg | Min | Max |
|---|---|---|---|---|
{{- range .Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{- end}}

## Memory Usage
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} MiB (start) -> {{mb .MemStatsEnd.HeapAlloc}} MiB (end)
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} MiB (start) -> {{mb .MemStatsEnd.TotalAlloc}} MiB (end)
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
