package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/clipview/pkg/clipping"
	"github.com/philipparndt/clipview/pkg/slider"
	"github.com/philipparndt/clipview/pkg/volume"
)

// PlaneTable lists every clipping plane of the viewer's layers.
type PlaneTable struct {
	table *widget.Table

	layers *volume.LayerList
	ref    clipping.IndexRef
	rows   []clipping.PlaneRow
}

var columnWidths = []float32{140, 70, 200, 140, 70}

// NewPlaneTable creates a table over layers. Call Follow to keep it
// current.
func NewPlaneTable(layers *volume.LayerList, ref clipping.IndexRef) *PlaneTable {
	t := &PlaneTable{layers: layers, ref: ref}
	t.table = widget.NewTableWithHeaders(
		func() (int, int) { return len(t.rows), len(clipping.RowHeaders) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(t.Cell(id.Row, id.Col))
		},
	)
	t.table.ShowHeaderColumn = false
	t.table.CreateHeader = func() fyne.CanvasObject { return widget.NewLabel("") }
	t.table.UpdateHeader = func(id widget.TableCellID, o fyne.CanvasObject) {
		if id.Row < 0 && id.Col >= 0 {
			o.(*widget.Label).SetText(clipping.RowHeaders[id.Col])
		}
	}
	for col, w := range columnWidths {
		t.table.SetColumnWidth(col, w)
	}
	t.Reload()
	return t
}

// Widget returns the canvas object to place in a layout.
func (t *PlaneTable) Widget() fyne.CanvasObject {
	return t.table
}

// Cell returns the text at row, col.
func (t *PlaneTable) Cell(row, col int) string {
	if row < 0 || row >= len(t.rows) {
		return ""
	}
	return t.rows[row].Cells()[col]
}

// Rows returns the rows currently shown.
func (t *PlaneTable) Rows() []clipping.PlaneRow {
	return t.rows
}

// Reload re-reads the planes and redraws.
func (t *PlaneTable) Reload() {
	t.rows = clipping.Rows(t.layers, t.ref)
	t.table.Refresh()
}

// Follow reloads the table on layer insertions and slider events. Connect
// it after the manager so the planes are already updated when it runs.
func (t *PlaneTable) Follow(controls ...*slider.Control) {
	t.layers.Inserted.Connect(func(volume.InsertedEvent) { t.Reload() })
	for _, c := range controls {
		c.StateChanged.Connect(func(slider.StateEvent) { t.Reload() })
		c.ValueChanged.Connect(func(slider.ValueEvent) { t.Reload() })
	}
}
