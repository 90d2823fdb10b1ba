package xwm

import (
	"log/slog"

	"github.com/jezek/xgb/xproto"
)

// Geometry asks the server for the current geometry of the window. The second
// value is false if the server gave no answer.
func (c *Conn) Geometry(wid xproto.Window) (Geometry, bool) {
	reply, err := xproto.GetGeometry(c.conn, xproto.Drawable(wid)).Reply()
	if err != nil || reply == nil {
		if err != nil {
			slog.Debug("Failed to get geometry", "window", wid, "error", err)
		}
		return Geometry{}, false
	}

	return Geometry{
		X: reply.X,
		Y: reply.Y,
		W: reply.Width,
		H: reply.Height,
	}, true
}

func (c *Conn) Map(wid xproto.Window) error {
	return xproto.MapWindowChecked(c.conn, wid).Check()
}

func (c *Conn) Unmap(wid xproto.Window) error {
	return xproto.UnmapWindowChecked(c.conn, wid).Check()
}

func (c *Conn) Configure(wid xproto.Window, g Geometry) error {
	return xproto.ConfigureWindowChecked(c.conn, wid,
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(g.X), uint32(g.Y), uint32(g.W), uint32(g.H)}).
		Check()
}

// Focus gives input focus to the window, reverting to the pointer root.
func (c *Conn) Focus(wid xproto.Window) error {
	return xproto.SetInputFocusChecked(c.conn, xproto.InputFocusPointerRoot, wid, xproto.TimeCurrentTime).Check()
}

// CloseWindow asks the client to close the window with a WM_DELETE_WINDOW
// message (ICCCM 4.2.8). The window is not destroyed by us.
func (c *Conn) CloseWindow(wid xproto.Window) error {
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: wid,
		Type:   c.atomWMProtocols,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(c.atomWMDeleteWindow),
			uint32(xproto.TimeCurrentTime),
			0,
			0,
			0,
		}),
	}

	return xproto.SendEventChecked(c.conn, false, wid, xproto.EventMaskNoEvent, string(ev.Bytes())).Check()
}
