package mosaic

// LayoutFull is a single pane covering the whole screen.
type LayoutFull struct{}

func (l LayoutFull) Count() int {
	return 1
}

func (l LayoutFull) Update(panes []Pane, w, h uint16) {
	panes[0] = Pane{X: 0, Y: 0, W: w, H: h}
}
