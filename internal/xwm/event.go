package xwm

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var ErrConnectionClosed = errors.New("X connection closed")

// Event is one of KeyPress, MapRequest, DestroyNotify or UnmapNotify.
type Event interface {
	event()
}

type (
	// KeyPress is a press of a grabbed key.
	KeyPress struct {
		State  uint16
		Detail xproto.Keycode
	}
	// MapRequest is sent when a top-level window wants to be shown.
	MapRequest struct {
		Window xproto.Window
	}
	// DestroyNotify is sent after a window was destroyed.
	DestroyNotify struct {
		Window xproto.Window
	}
	// UnmapNotify is sent after a window was unmapped. Event is the window the
	// notification was reported on, which is the root for substructure
	// notifications.
	UnmapNotify struct {
		Window xproto.Window
		Event  xproto.Window
	}
)

func (KeyPress) event()      {}
func (MapRequest) event()    {}
func (DestroyNotify) event() {}
func (UnmapNotify) event()   {}

// Translate converts an X event into an Event. The second value is false for
// events the window manager does not handle.
func Translate(ev xgb.Event) (Event, bool) {
	switch ev := ev.(type) {
	case xproto.KeyPressEvent:
		return KeyPress{State: ev.State, Detail: ev.Detail}, true
	case xproto.MapRequestEvent:
		return MapRequest{Window: ev.Window}, true
	case xproto.DestroyNotifyEvent:
		return DestroyNotify{Window: ev.Window}, true
	case xproto.UnmapNotifyEvent:
		return UnmapNotify{Window: ev.Window, Event: ev.Event}, true
	default:
		return nil, false
	}
}

// ReceiveEvents reads events from the X server and sends the handled ones to
// eventC in the order they arrived. It blocks until the connection is closed
// or ctx is done.
func (c *Conn) ReceiveEvents(ctx context.Context, eventC chan<- Event) error {
	slog := slog.With("func", "xwm.Conn.ReceiveEvents")

	for {
		// WaitForEvent returns either an event or an error and never both.
		// Both nil means the connection was closed.
		ev, xerr := c.conn.WaitForEvent()
		if ev == nil && xerr == nil {
			slog.Debug("exit: no event or error")
			return ErrConnectionClosed
		}

		if xerr != nil {
			slog.Error("X error", "error", xerr)
			continue
		}

		msg, ok := Translate(ev)
		if !ok {
			slog.Debug("unknown event", "event", ev)
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case eventC <- msg:
		}
	}
}
