// Package app runs the window manager event loop.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ItsNotGoodName/x-cwm/internal/bus"
	"github.com/ItsNotGoodName/x-cwm/internal/wm"
	"github.com/ItsNotGoodName/x-cwm/internal/xwm"
	"github.com/jezek/xgb/xproto"
)

type App struct {
	display    Display
	manager    *wm.Manager
	dispatcher *Dispatcher
}

func New(display Display, manager *wm.Manager, dispatcher *Dispatcher) *App {
	return &App{
		display:    display,
		manager:    manager,
		dispatcher: dispatcher,
	}
}

// Run handles events from eventC until ctx is done, then ungrabs the keys and
// closes the display. It owns the manager while it runs.
func (a *App) Run(ctx context.Context, eventC <-chan xwm.Event) error {
	slog := slog.With("func", "app.App.Run")

	bus.Publish(a.manager.Snapshot())

	for {
		select {
		case <-ctx.Done():
			slog.Debug("exit: context done")
			a.teardown()
			return ctx.Err()
		case ev := <-eventC:
			if err := a.Handle(ev); err != nil {
				slog.Error("Failed to handle event", "event", fmt.Sprintf("%T", ev), "error", err)
			}
			bus.Publish(a.manager.Snapshot())
		}
	}
}

func (a *App) teardown() {
	if err := a.display.UngrabKeys(); err != nil {
		slog.Warn("Failed to ungrab keys", "package", "app", "error", err)
	}
	a.display.Close()
}

// Handle applies one event.
func (a *App) Handle(ev xwm.Event) error {
	switch ev := ev.(type) {
	case xwm.KeyPress:
		return a.dispatcher.HandleKeyPress(ev)
	case xwm.MapRequest:
		return a.handleMapRequest(ev)
	case xwm.DestroyNotify:
		slog.Debug("Destroy", "package", "app", "window", ev.Window)
		return a.manager.RemoveWindow(ev.Window)
	case xwm.UnmapNotify:
		// Unmaps reported on the root are the ones this window manager made.
		if ev.Event == a.display.Root() {
			return nil
		}
		slog.Debug("Unmap", "package", "app", "window", ev.Window)
		return a.manager.RemoveWindow(ev.Window)
	default:
		return nil
	}
}

func (a *App) handleMapRequest(ev xwm.MapRequest) error {
	slog.Debug("Map request", "package", "app", "window", ev.Window)

	if ws, ok := a.manager.Workspace(ev.Window); ok {
		// Managed windows keep the visibility their workspace and hide state give them.
		if ws != a.manager.Current() {
			slog.Debug("Window is on another workspace", "package", "app", "window", ev.Window, "workspace", ws)
			return nil
		}

		if win, _ := a.manager.FindWindow(ev.Window); win.Hidden {
			if err := a.manager.ToggleHide(ev.Window); err != nil {
				return err
			}
			return a.focus(ev.Window)
		}
	} else if err := a.manager.AddWindow(ev.Window); err != nil {
		slog.Error("Failed to add window", "package", "app", "window", ev.Window, "error", err)
	}

	if err := a.display.Map(ev.Window); err != nil {
		return fmt.Errorf("map %d: %w", ev.Window, err)
	}

	return a.focus(ev.Window)
}

func (a *App) focus(wid xproto.Window) error {
	if err := a.display.Focus(wid); err != nil {
		return fmt.Errorf("focus %d: %w", wid, err)
	}
	return nil
}
