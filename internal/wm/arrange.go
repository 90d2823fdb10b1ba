package wm

import (
	"errors"
	"fmt"

	"github.com/ItsNotGoodName/x-cwm/internal/mosaic"
	"github.com/ItsNotGoodName/x-cwm/internal/xwm"
	"github.com/jezek/xgb/xproto"
)

// Arrange tiles the workspace into one column per window. Maximized and hidden
// windows keep their column, it is just left empty.
func (m *Manager) Arrange(idx int) error {
	if idx < 0 || idx >= len(m.workspaces) {
		return nil
	}

	windows := m.workspaces[idx].Windows
	if len(windows) == 0 {
		return nil
	}

	width, height := m.display.ScreenSize()
	layout := mosaic.New(mosaic.NewLayoutColumns(len(windows)))
	panes := layout.Panes(width, height)

	var errs []error
	for i := range windows {
		win := &windows[i]
		if win.Maximized || win.Hidden {
			continue
		}

		win.Geometry = geometry(panes[i])
		if err := m.display.Configure(win.WID, win.Geometry); err != nil {
			errs = append(errs, fmt.Errorf("configure %d: %w", win.WID, err))
		}
	}

	return errors.Join(errs...)
}

// ToggleMaximize switches the window between full screen and its saved
// geometry. Unknown windows are ignored.
func (m *Manager) ToggleMaximize(wid xproto.Window) error {
	win, ok := m.FindWindow(wid)
	if !ok {
		return nil
	}

	if win.Maximized {
		win.Geometry = win.Saved
		win.Maximized = false
	} else {
		width, height := m.display.ScreenSize()
		full := mosaic.New(mosaic.LayoutFull{})

		win.Saved = win.Geometry
		win.Geometry = geometry(full.Panes(width, height)[0])
		win.Maximized = true
	}

	if err := m.display.Configure(wid, win.Geometry); err != nil {
		return fmt.Errorf("configure %d: %w", wid, err)
	}

	return nil
}

// ToggleHide unmaps a shown window or maps a hidden one. Unknown windows are
// ignored.
func (m *Manager) ToggleHide(wid xproto.Window) error {
	win, ok := m.FindWindow(wid)
	if !ok {
		return nil
	}

	if win.Hidden {
		win.Hidden = false
		if err := m.display.Map(wid); err != nil {
			return fmt.Errorf("map %d: %w", wid, err)
		}
	} else {
		win.Hidden = true
		if err := m.display.Unmap(wid); err != nil {
			return fmt.Errorf("unmap %d: %w", wid, err)
		}
	}

	return nil
}

func geometry(p mosaic.Pane) xwm.Geometry {
	return xwm.Geometry{X: p.X, Y: p.Y, W: p.W, H: p.H}
}
