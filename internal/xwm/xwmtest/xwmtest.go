// Package xwmtest provides an in-memory display for tests.
package xwmtest

import (
	"github.com/ItsNotGoodName/x-cwm/internal/xwm"
	"github.com/jezek/xgb/xproto"
)

const (
	OpMap       = "map"
	OpUnmap     = "unmap"
	OpConfigure = "configure"
	OpClose     = "close"
	OpFocus     = "focus"
)

const DefaultRoot xproto.Window = 1

// Call is a request made on the display.
type Call struct {
	Op       string
	Window   xproto.Window
	Geometry xwm.Geometry
}

type Grab struct {
	Modifiers uint16
	Code      xproto.Keycode
}

// Display records requests and keeps the mapped state and geometry of windows.
type Display struct {
	Width  uint16
	Height uint16
	// RootWindow is returned by Root.
	RootWindow xproto.Window
	// Geometries answers Geometry queries. Missing windows get no answer.
	Geometries map[xproto.Window]xwm.Geometry
	// Focused is returned by InputFocus. Zero means no focus.
	Focused xproto.Window
	Keymap  xwm.Keymap

	Mapped     map[xproto.Window]bool
	Configured map[xproto.Window]xwm.Geometry
	Calls      []Call
	Grabs      []Grab
	Closed     bool
}

func New(width, height uint16) *Display {
	return &Display{
		Width:      width,
		Height:     height,
		RootWindow: DefaultRoot,
		Geometries: make(map[xproto.Window]xwm.Geometry),
		Mapped:     make(map[xproto.Window]bool),
		Configured: make(map[xproto.Window]xwm.Geometry),
	}
}

// Reset forgets recorded calls.
func (d *Display) Reset() {
	d.Calls = nil
}

// CallsFor returns the recorded calls of op.
func (d *Display) CallsFor(op string) []Call {
	var calls []Call
	for _, c := range d.Calls {
		if c.Op == op {
			calls = append(calls, c)
		}
	}
	return calls
}

func (d *Display) ScreenSize() (uint16, uint16) {
	return d.Width, d.Height
}

func (d *Display) Geometry(wid xproto.Window) (xwm.Geometry, bool) {
	g, ok := d.Geometries[wid]
	return g, ok
}

func (d *Display) Map(wid xproto.Window) error {
	d.Mapped[wid] = true
	d.Calls = append(d.Calls, Call{Op: OpMap, Window: wid})
	return nil
}

func (d *Display) Unmap(wid xproto.Window) error {
	d.Mapped[wid] = false
	d.Calls = append(d.Calls, Call{Op: OpUnmap, Window: wid})
	return nil
}

func (d *Display) Configure(wid xproto.Window, g xwm.Geometry) error {
	d.Configured[wid] = g
	d.Calls = append(d.Calls, Call{Op: OpConfigure, Window: wid, Geometry: g})
	return nil
}

func (d *Display) CloseWindow(wid xproto.Window) error {
	d.Calls = append(d.Calls, Call{Op: OpClose, Window: wid})
	return nil
}

func (d *Display) Root() xproto.Window {
	return d.RootWindow
}

func (d *Display) InputFocus() (xproto.Window, bool) {
	if d.Focused == xproto.WindowNone {
		return xproto.WindowNone, false
	}
	return d.Focused, true
}

func (d *Display) Focus(wid xproto.Window) error {
	d.Focused = wid
	d.Calls = append(d.Calls, Call{Op: OpFocus, Window: wid})
	return nil
}

func (d *Display) GrabKey(modifiers uint16, code xproto.Keycode) error {
	d.Grabs = append(d.Grabs, Grab{Modifiers: modifiers, Code: code})
	return nil
}

func (d *Display) UngrabKeys() error {
	d.Grabs = nil
	return nil
}

func (d *Display) Keysym(code xproto.Keycode) xproto.Keysym {
	return d.Keymap.Keysym(code)
}

func (d *Display) Keycodes(sym xproto.Keysym) []xproto.Keycode {
	return d.Keymap.Keycodes(sym)
}

func (d *Display) Close() {
	d.Closed = true
}
