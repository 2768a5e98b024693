package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"

	"github.com/plus3/blockfall/game"
)

// FrameHistory is a fixed-size ring of frame times in milliseconds.
type FrameHistory struct {
	samples []float32
	index   int
	count   int
}

func NewFrameHistory(size int) *FrameHistory {
	return &FrameHistory{samples: make([]float32, size)}
}

// Push records one frame.
func (h *FrameHistory) Push(dt time.Duration) {
	h.samples[h.index] = float32(dt.Seconds() * 1000.0)
	h.index = (h.index + 1) % len(h.samples)
	if h.count < len(h.samples) {
		h.count++
	}
}

// Average returns the mean of the recorded frames, or 0 before the first one.
func (h *FrameHistory) Average() float32 {
	if h.count == 0 {
		return 0
	}
	var total float32
	for _, ms := range h.samples[:h.count] {
		total += ms
	}
	return total / float32(h.count)
}

// Ordered returns the samples oldest first.
func (h *FrameHistory) Ordered() []float32 {
	out := make([]float32, 0, h.count)
	if h.count < len(h.samples) {
		return append(out, h.samples[:h.count]...)
	}
	out = append(out, h.samples[h.index:]...)
	return append(out, h.samples[:h.index]...)
}

// PerformanceStats shows frame timing and per-system scheduler statistics.
type PerformanceStats struct {
	frames  *FrameHistory
	latency map[string]*FrameHistory
	size    int
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		frames:  NewFrameHistory(historyFrames),
		latency: make(map[string]*FrameHistory),
		size:    historyFrames,
	}
}

func (ps *PerformanceStats) Render(g *game.Game, frame *game.Frame) {
	ps.frames.Push(frame.DeltaTime)
	stats := g.Stats()
	for _, s := range stats.Systems {
		h, ok := ps.latency[s.Name]
		if !ok {
			h = NewFrameHistory(ps.size)
			ps.latency[s.Name] = h
		}
		h.Push(s.LastDuration)
	}

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 220), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(460, 360), imgui.CondOnce)

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avg := ps.frames.Average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f TPS)", avg, 1000.0/avg))
	}
	imgui.Text(fmt.Sprintf("Ticks: %d  Executions: %d", stats.TotalTicks, stats.TotalExecutions))

	if imgui.BeginTabBar("PerfTabs") {
		if imgui.BeginTabItem("Frame Time") {
			samples := ps.frames.Ordered()
			if len(samples) > 0 {
				imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))
			}
			imgui.EndTabItem()
		}

		if imgui.BeginTabItem("Systems") {
			ps.renderSystemTable(stats)
			imgui.EndTabItem()
		}

		if imgui.BeginTabItem("System Latency") {
			if implot.BeginPlotV("Latency", imgui.NewVec2(-1, -1), 0) {
				implot.SetupAxesV("Tick", "ms", 0, implot.AxisFlagsAutoFit)
				for _, s := range stats.Systems {
					samples := ps.latency[s.Name].Ordered()
					if len(samples) > 0 {
						implot.PlotLineFloatPtrInt(s.Name, &samples[0], int32(len(samples)))
					}
				}
				implot.EndPlot()
			}
			imgui.EndTabItem()
		}

		imgui.EndTabBar()
	}

	imgui.End()
}

func (ps *PerformanceStats) renderSystemTable(stats *game.SchedulerStats) {
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSizingFixedFit
	if !imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}

	imgui.TableSetupColumn("System")
	imgui.TableSetupColumn("Runs")
	imgui.TableSetupColumn("Avg")
	imgui.TableSetupColumn("Min")
	imgui.TableSetupColumn("Max")
	imgui.TableHeadersRow()

	for _, s := range stats.Systems {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(s.Name)
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d", s.ExecutionCount))
		imgui.TableNextColumn()
		imgui.Text(s.AvgDuration.String())
		imgui.TableNextColumn()
		imgui.Text(s.MinDuration.String())
		imgui.TableNextColumn()
		imgui.Text(s.MaxDuration.String())
	}

	imgui.EndTable()
}
