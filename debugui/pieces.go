package debugui

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/game"
)

// Piece browser columns, in table order.
const (
	ColumnID = iota
	ColumnKind
	ColumnPosition
	ColumnCells
)

type PieceRow struct {
	ID       board.PieceID
	Kind     board.Kind
	Position board.Position
	Cells    int
	Active   bool
}

// PieceRows lists the snapshot's pieces, the active one first, then the
// statics sorted by column.
func PieceRows(snap board.Snapshot, column int, ascending bool) []PieceRow {
	rows := make([]PieceRow, 0, len(snap.Statics))
	for _, p := range snap.Statics {
		rows = append(rows, PieceRow{
			ID:       p.ID,
			Kind:     p.Kind,
			Position: p.Position,
			Cells:    p.Shape.Count(),
		})
	}

	slices.SortStableFunc(rows, func(a, b PieceRow) int {
		var c int
		switch column {
		case ColumnKind:
			c = cmp.Compare(a.Kind, b.Kind)
		case ColumnPosition:
			c = cmp.Or(cmp.Compare(a.Position.Y, b.Position.Y), cmp.Compare(a.Position.X, b.Position.X))
		case ColumnCells:
			c = cmp.Compare(a.Cells, b.Cells)
		default:
			c = cmp.Compare(a.ID, b.ID)
		}
		if !ascending {
			c = -c
		}
		return c
	})

	if snap.Active != nil {
		rows = slices.Insert(rows, 0, PieceRow{
			ID:       snap.Active.ID,
			Kind:     snap.Active.Kind,
			Position: snap.Active.Position,
			Cells:    snap.Active.Shape.Count(),
			Active:   true,
		})
	}
	return rows
}

// PieceBrowser lists every piece on the board and tracks the selection.
type PieceBrowser struct {
	Selected board.PieceID

	maxPerPage    int
	currentPage   int
	sortColumn    int
	sortAscending bool
}

func NewPieceBrowser(maxPerPage int) *PieceBrowser {
	return &PieceBrowser{
		maxPerPage:    maxPerPage,
		sortAscending: true,
	}
}

func (pb *PieceBrowser) Render(g *game.Game, frame *game.Frame) {
	imgui.SetNextWindowPosV(imgui.NewVec2(480, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 320), imgui.CondOnce)

	if !imgui.BeginV("Pieces", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	rows := PieceRows(g.Snapshot(), pb.sortColumn, pb.sortAscending)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("PieceTable", 4, tableFlags, imgui.NewVec2(0, 240), 0) {
		imgui.TableSetupColumn("ID")
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("Position")
		imgui.TableSetupColumn("Cells")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			pb.sortColumn = int(spec.ColumnIndex())
			pb.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortSpecs.SetSpecsDirty(false)
		}

		start := pb.currentPage * pb.maxPerPage
		if start >= len(rows) {
			pb.currentPage = 0
			start = 0
		}
		end := min(start+pb.maxPerPage, len(rows))

		for _, row := range rows[start:end] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			label := fmt.Sprintf("%d", row.ID)
			if row.Active {
				label += " *"
			}
			if imgui.SelectableBoolV(label, pb.Selected == row.ID, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				pb.Selected = row.ID
			}

			imgui.TableNextColumn()
			imgui.Text(row.Kind.String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("(%d, %d)", row.Position.X, row.Position.Y))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.Cells))
		}

		imgui.EndTable()
	}

	if len(rows) > pb.maxPerPage {
		totalPages := (len(rows) + pb.maxPerPage - 1) / pb.maxPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d pieces)", pb.currentPage+1, totalPages, len(rows)))
		imgui.SameLine()
		if imgui.Button("Prev") && pb.currentPage > 0 {
			pb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && pb.currentPage < totalPages-1 {
			pb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d pieces", len(rows)))
	}

	imgui.End()
}

// PieceInspector shows the shape and placement of the browser's selection.
type PieceInspector struct {
	browser *PieceBrowser
}

func NewPieceInspector(browser *PieceBrowser) *PieceInspector {
	return &PieceInspector{browser: browser}
}

func (pi *PieceInspector) Render(g *game.Game, frame *game.Frame) {
	imgui.SetNextWindowPosV(imgui.NewVec2(480, 340), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 240), imgui.CondOnce)

	if !imgui.BeginV("Piece Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	id := pi.browser.Selected
	p := g.Board().Piece(id)
	if id == 0 || p == nil {
		imgui.Text("No piece selected")
		imgui.End()
		return
	}

	active := g.Board().Active() == p
	imgui.Text(fmt.Sprintf("Piece %d (%s)", p.ID, p.Kind))
	imgui.Text(fmt.Sprintf("Position: (%d, %d)", p.Position.X, p.Position.Y))
	if active {
		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "active")
	} else {
		imgui.Text("static")
	}
	imgui.Text(fmt.Sprintf("Extent: left %d right %d bottom %d", p.Shape.Left(), p.Shape.Right(), p.Shape.Bottom()))
	imgui.Separator()

	const cellSize = 16
	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()
	filled := imgui.ColorU32Vec4(imgui.NewVec4(
		float32(p.Color.R)/255, float32(p.Color.G)/255, float32(p.Color.B)/255, 1.0,
	))
	empty := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.2, 0.2, 1.0))

	for y, row := range p.Shape {
		for x, set := range row {
			topLeft := imgui.NewVec2(origin.X+float32(x*cellSize), origin.Y+float32(y*cellSize))
			bottomRight := imgui.NewVec2(topLeft.X+cellSize-1, topLeft.Y+cellSize-1)
			color := empty
			if set {
				color = filled
			}
			drawList.AddRectFilled(topLeft, bottomRight, color)
		}
	}

	imgui.End()
}
