package debugui

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/game"
)

type RowInfo struct {
	Row    int
	Filled int
	Width  int
}

func (r RowInfo) Complete() bool {
	return r.Width > 0 && r.Filled == r.Width
}

// RowFill counts the occupied cells of each row of an occupancy grid.
func RowFill(grid [][]bool) []RowInfo {
	rows := make([]RowInfo, len(grid))
	for y, row := range grid {
		filled := 0
		for _, set := range row {
			if set {
				filled++
			}
		}
		rows[y] = RowInfo{Row: y, Filled: filled, Width: len(row)}
	}
	return rows
}

// RowViewer shows how close each row of static cells is to clearing.
type RowViewer struct {
	HideEmpty bool

	sortColumn    int
	sortAscending bool
}

func NewRowViewer() *RowViewer {
	return &RowViewer{HideEmpty: true, sortAscending: true}
}

// Rows returns the rows the viewer would list for grid, in display order.
func (rv *RowViewer) Rows(grid [][]bool) []RowInfo {
	rows := RowFill(grid)
	if rv.HideEmpty {
		rows = slices.DeleteFunc(rows, func(r RowInfo) bool { return r.Filled == 0 })
	}
	slices.SortStableFunc(rows, func(a, b RowInfo) int {
		c := cmp.Compare(a.Row, b.Row)
		if rv.sortColumn == 1 {
			c = cmp.Or(cmp.Compare(a.Filled, b.Filled), c)
		}
		if !rv.sortAscending {
			c = -c
		}
		return c
	})
	return rows
}

func (rv *RowViewer) Render(g *game.Game, frame *game.Frame) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 590), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 260), imgui.CondOnce)

	if !imgui.BeginV("Rows", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Checkbox("Hide empty rows", &rv.HideEmpty)
	rows := rv.Rows(g.Board().Grid())

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("RowTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Row")
		imgui.TableSetupColumn("Filled")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			rv.sortColumn = int(spec.ColumnIndex())
			rv.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortSpecs.SetSpecsDirty(false)
		}

		for _, r := range rows {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", r.Row))

			imgui.TableNextColumn()
			label := fmt.Sprintf("%d/%d", r.Filled, r.Width)
			if r.Complete() {
				imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), label)
			} else {
				imgui.Text(label)
			}

			if r.Width > 0 {
				barWidth := float32(r.Filled) / float32(r.Width) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}
		}

		imgui.EndTable()
	}

	imgui.End()
}
