package xwm

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ItsNotGoodName/x-cwm/internal/xcursor"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var ErrAnotherWM = errors.New("failed to select substructure redirect on root window, is another window manager running?")

// RootEventMask is selected on the root window so that the window manager is
// told about new top-level windows and receives its grabbed keys.
const RootEventMask = xproto.EventMaskSubstructureRedirect |
	xproto.EventMaskSubstructureNotify |
	xproto.EventMaskKeyPress

// Geometry of a window in root coordinates.
type Geometry struct {
	X int16  `json:"x"`
	Y int16  `json:"y"`
	W uint16 `json:"w"`
	H uint16 `json:"h"`
}

// Conn is the window manager's connection to the X server. All requests are
// synchronous and must be made from a single goroutine, except WaitForEvent
// which is read by ReceiveEvents.
type Conn struct {
	conn   *xgb.Conn
	screen *xproto.ScreenInfo
	keymap Keymap

	atomWMProtocols    xproto.Atom
	atomWMDeleteWindow xproto.Atom

	closeOnce sync.Once
}

// Connect opens the X display from $DISPLAY and registers as the window
// manager of the default screen.
func Connect() (*Conn, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X server: %w", err)
	}

	c, err := setup(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}

	return c, nil
}

func setup(conn *xgb.Conn) (*Conn, error) {
	setupInfo := xproto.Setup(conn)
	screen := setupInfo.DefaultScreen(conn)
	if screen == nil {
		return nil, fmt.Errorf("no default screen")
	}

	c := &Conn{
		conn:   conn,
		screen: screen,
	}

	var err error
	if c.atomWMProtocols, err = internAtom(conn, "WM_PROTOCOLS"); err != nil {
		return nil, err
	}
	if c.atomWMDeleteWindow, err = internAtom(conn, "WM_DELETE_WINDOW"); err != nil {
		return nil, err
	}

	if c.keymap, err = loadKeymap(conn, setupInfo.MinKeycode, setupInfo.MaxKeycode); err != nil {
		return nil, err
	}

	if err := xproto.ChangeWindowAttributesChecked(conn, screen.Root,
		xproto.CwEventMask,
		[]uint32{RootEventMask}).Check(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAnotherWM, err)
	}

	// The root keeps the default X cursor when this fails.
	if cursor, err := xcursor.CreateCursor(conn, xcursor.LeftPtr); err != nil {
		slog.Warn("Failed to create root cursor", "error", err)
	} else if err := xproto.ChangeWindowAttributesChecked(conn, screen.Root,
		xproto.CwCursor,
		[]uint32{uint32(cursor)}).Check(); err != nil {
		slog.Warn("Failed to set root cursor", "error", err)
	}

	slog.Debug("Connected to X server",
		"root", screen.Root,
		"width", screen.WidthInPixels,
		"height", screen.HeightInPixels)

	return c, nil
}

func internAtom(conn *xgb.Conn, name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("failed to intern atom %s: %w", name, err)
	}
	if reply == nil {
		return xproto.AtomNone, nil
	}
	return reply.Atom, nil
}

// Close releases the connection. It is safe to call more than once.
func (c *Conn) Close() {
	c.closeOnce.Do(func() {
		c.conn.Close()
	})
}

func (c *Conn) Root() xproto.Window {
	return c.screen.Root
}

func (c *Conn) ScreenSize() (uint16, uint16) {
	return c.screen.WidthInPixels, c.screen.HeightInPixels
}

// InputFocus returns the window holding input focus. The second value is false
// when the server does not answer or focus is None or PointerRoot.
func (c *Conn) InputFocus() (xproto.Window, bool) {
	reply, err := xproto.GetInputFocus(c.conn).Reply()
	if err != nil || reply == nil {
		if err != nil {
			slog.Debug("Failed to get input focus", "error", err)
		}
		return xproto.WindowNone, false
	}

	switch reply.Focus {
	case xproto.WindowNone, xproto.Window(xproto.InputFocusPointerRoot):
		return xproto.WindowNone, false
	}

	return reply.Focus, true
}

// GrabKey grabs the key combination on the root window.
func (c *Conn) GrabKey(modifiers uint16, code xproto.Keycode) error {
	return xproto.GrabKeyChecked(c.conn, true, c.screen.Root,
		modifiers, code,
		xproto.GrabModeAsync, xproto.GrabModeAsync).Check()
}

// UngrabKeys releases every key grab on the root window.
func (c *Conn) UngrabKeys() error {
	return xproto.UngrabKeyChecked(c.conn, xproto.GrabAny, c.screen.Root, xproto.ModMaskAny).Check()
}

func (c *Conn) Keysym(code xproto.Keycode) xproto.Keysym {
	return c.keymap.Keysym(code)
}

func (c *Conn) Keycodes(sym xproto.Keysym) []xproto.Keycode {
	return c.keymap.Keycodes(sym)
}
