package mosaic

// LayoutColumns places count panes side by side, each floor(w/count) wide and
// the full height. Pixels left over on the right are not assigned.
type LayoutColumns struct {
	count int
}

func NewLayoutColumns(count int) LayoutColumns {
	return LayoutColumns{count: count}
}

func (l LayoutColumns) Count() int {
	return l.count
}

func (l LayoutColumns) Update(panes []Pane, w, h uint16) {
	cw := w / uint16(l.count)
	for i := range panes {
		panes[i] = Pane{X: int16(cw * uint16(i)), Y: 0, W: cw, H: h}
	}
}
