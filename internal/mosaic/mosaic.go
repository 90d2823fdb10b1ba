// Package mosaic splits a screen into panes.
package mosaic

type (
	// Pane is a rectangle in screen coordinates.
	Pane struct {
		X int16
		Y int16
		W uint16
		H uint16
	}

	// Layout fills panes for a screen of size w by h.
	Layout interface {
		Count() int
		Update(panes []Pane, w, h uint16)
	}

	Mosaic struct {
		panes  []Pane
		layout Layout
	}
)

func New(layout Layout) Mosaic {
	m := Mosaic{}
	m.SetLayout(layout)
	return m
}

func (m *Mosaic) SetLayout(layout Layout) {
	m.layout = layout
	m.panes = make([]Pane, layout.Count())
}

// Panes returns the layout's panes for a screen of size w by h. The returned
// slice is reused by the next call.
func (m *Mosaic) Panes(w, h uint16) []Pane {
	if len(m.panes) > 0 {
		m.layout.Update(m.panes, w, h)
	}
	return m.panes
}
