package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ItsNotGoodName/x-cwm/internal/config"
	"github.com/ItsNotGoodName/x-cwm/internal/wm"
	"github.com/ItsNotGoodName/x-cwm/internal/xwm"
	"github.com/jezek/xgb/xproto"
)

// Display is the X server as seen by the event loop.
type Display interface {
	wm.Display
	Root() xproto.Window
	InputFocus() (xproto.Window, bool)
	Focus(wid xproto.Window) error
	GrabKey(modifiers uint16, code xproto.Keycode) error
	UngrabKeys() error
	Keysym(code xproto.Keycode) xproto.Keysym
	Keycodes(sym xproto.Keysym) []xproto.Keycode
	Close()
}

// Launcher starts external programs without waiting for them.
type Launcher interface {
	Launch(command string)
}

type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionClose
	ActionHide
	ActionMaximize
	ActionMenu
	ActionTerminal
	ActionLauncher
)

var actionNames = [...]string{
	ActionLeft:     "left",
	ActionRight:    "right",
	ActionClose:    "close",
	ActionHide:     "hide",
	ActionMaximize: "maximize",
	ActionMenu:     "menu",
	ActionTerminal: "terminal",
	ActionLauncher: "launcher",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// needsTarget reports whether the action applies to the focused window.
func (a Action) needsTarget() bool {
	switch a {
	case ActionClose, ActionHide, ActionMaximize:
		return true
	default:
		return false
	}
}

type binding struct {
	keysym xproto.Keysym
	action Action
}

// Dispatcher turns key presses into window manager commands.
type Dispatcher struct {
	display  Display
	manager  *wm.Manager
	launcher Launcher
	out      io.Writer

	modifier    uint16
	terminalCmd string
	launcherCmd string
	bindings    []binding
	actions     map[xproto.Keysym]Action
}

// NewDispatcher resolves the key names of cfg. Names that do not resolve fall
// back to the default key of the binding.
func NewDispatcher(display Display, manager *wm.Manager, launcher Launcher, out io.Writer, cfg config.Config) *Dispatcher {
	modifier, ok := xwm.ModMask(cfg.ModKey)
	if !ok {
		slog.Warn("Unknown modifier key, using default", "package", "app", "mod_key", cfg.ModKey)
		modifier, _ = xwm.ModMask(config.Default().ModKey)
	}

	def := config.Default().Keys
	names := []struct {
		action Action
		name   string
		def    string
	}{
		{ActionLeft, cfg.Keys.Left, def.Left},
		{ActionRight, cfg.Keys.Right, def.Right},
		{ActionClose, cfg.Keys.Close, def.Close},
		{ActionHide, cfg.Keys.Hide, def.Hide},
		{ActionMaximize, cfg.Keys.Maximize, def.Maximize},
		{ActionMenu, cfg.Keys.Menu, def.Menu},
		{ActionTerminal, cfg.Keys.Terminal, def.Terminal},
		{ActionLauncher, cfg.Keys.Launcher, def.Launcher},
	}

	d := &Dispatcher{
		display:     display,
		manager:     manager,
		launcher:    launcher,
		out:         out,
		modifier:    modifier,
		terminalCmd: cfg.Terminal,
		launcherCmd: cfg.Launcher,
		actions:     make(map[xproto.Keysym]Action, len(names)),
	}

	for _, n := range names {
		sym, ok := xwm.LookupKeysym(n.name)
		if !ok {
			slog.Warn("Unknown key, using default", "package", "app", "action", n.action, "key", n.name, "default", n.def)
			sym, _ = xwm.LookupKeysym(n.def)
		}

		if other, ok := d.actions[sym]; ok {
			slog.Warn("Key already bound", "package", "app", "action", n.action, "key", n.name, "bound", other)
			continue
		}

		d.actions[sym] = n.action
		d.bindings = append(d.bindings, binding{keysym: sym, action: n.action})
	}

	return d
}

// Modifier is the mask every binding is grabbed with.
func (d *Dispatcher) Modifier() uint16 {
	return d.modifier
}

// Grab grabs every keycode of every binding on the root window.
func (d *Dispatcher) Grab() error {
	var errs []error
	for _, b := range d.bindings {
		codes := d.display.Keycodes(b.keysym)
		if len(codes) == 0 {
			slog.Warn("No keycode for key", "package", "app", "action", b.action, "keysym", b.keysym)
			continue
		}

		for _, code := range codes {
			if err := d.display.GrabKey(d.modifier, code); err != nil {
				errs = append(errs, fmt.Errorf("grab %s keycode %d: %w", b.action, code, err))
			}
		}
	}

	return errors.Join(errs...)
}

// HandleKeyPress runs the action bound to the key. Presses without the
// modifier and actions needing a target while nothing is focused are ignored.
func (d *Dispatcher) HandleKeyPress(ev xwm.KeyPress) error {
	if ev.State&d.modifier == 0 {
		return nil
	}

	action, ok := d.actions[d.display.Keysym(ev.Detail)]
	if !ok {
		return nil
	}

	var target xproto.Window
	if action.needsTarget() {
		focused, ok := d.display.InputFocus()
		if !ok || focused == d.display.Root() {
			slog.Debug("No focused window", "package", "app", "action", action)
			return nil
		}
		target = focused
	}

	slog.Debug("Key action", "package", "app", "action", action, "window", target)

	switch action {
	case ActionLeft:
		if cur := d.manager.Current(); cur > 0 {
			return d.manager.SwitchWorkspace(cur - 1)
		}
	case ActionRight:
		if cur := d.manager.Current(); cur < d.manager.Total()-1 {
			return d.manager.SwitchWorkspace(cur + 1)
		}
	case ActionClose:
		return d.manager.CloseWindow(target)
	case ActionHide:
		return d.manager.ToggleHide(target)
	case ActionMaximize:
		return d.manager.ToggleMaximize(target)
	case ActionMenu:
		return WriteOverview(d.out, d.manager.Snapshot())
	case ActionTerminal:
		d.launcher.Launch(d.terminalCmd)
	case ActionLauncher:
		d.launcher.Launch(d.launcherCmd)
	}

	return nil
}
