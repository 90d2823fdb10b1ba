// Package wm holds the windows and workspaces of the window manager.
//
// A Manager is not safe for concurrent use; it is owned by the event loop.
package wm

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ItsNotGoodName/x-cwm/internal/xwm"
	"github.com/jezek/xgb/xproto"
)

// DefaultCapacity is the number of windows a workspace holds before new
// windows go to the next workspace.
const DefaultCapacity = 2

// Display is the part of the X server the manager changes windows through.
type Display interface {
	ScreenSize() (uint16, uint16)
	Geometry(wid xproto.Window) (xwm.Geometry, bool)
	Map(wid xproto.Window) error
	Unmap(wid xproto.Window) error
	Configure(wid xproto.Window, g xwm.Geometry) error
	CloseWindow(wid xproto.Window) error
}

type Window struct {
	WID      xproto.Window
	Geometry xwm.Geometry
	// Saved is the geometry restored when the window is unmaximized.
	Saved     xwm.Geometry
	Maximized bool
	Hidden    bool
}

// Workspace is an ordered group of windows. The order is the tiling column order.
type Workspace struct {
	Windows []Window
}

type slot struct {
	workspace int
	position  int
}

type Manager struct {
	display    Display
	capacity   int
	workspaces []Workspace
	current    int
	index      map[xproto.Window]slot
}

// NewManager creates a manager with one empty workspace. A capacity below 1
// uses DefaultCapacity.
func NewManager(display Display, capacity int) *Manager {
	if capacity < 1 {
		capacity = DefaultCapacity
	}

	return &Manager{
		display:    display,
		capacity:   capacity,
		workspaces: []Workspace{{}},
		current:    0,
		index:      make(map[xproto.Window]slot),
	}
}

func (m *Manager) Capacity() int {
	return m.capacity
}

func (m *Manager) Current() int {
	return m.current
}

func (m *Manager) Total() int {
	return len(m.workspaces)
}

// Workspace returns the index of the workspace holding the window.
func (m *Manager) Workspace(wid xproto.Window) (int, bool) {
	s, ok := m.index[wid]
	return s.workspace, ok
}

// FindWindow returns the window record. The pointer is valid until the next
// AddWindow or RemoveWindow.
func (m *Manager) FindWindow(wid xproto.Window) (*Window, bool) {
	s, ok := m.index[wid]
	if !ok {
		return nil, false
	}
	return &m.workspaces[s.workspace].Windows[s.position], true
}

// AddWindow places a new window on the current workspace. When it is full the
// cursor moves forward, creating a workspace after the last one, until a
// workspace has room.
func (m *Manager) AddWindow(wid xproto.Window) error {
	if _, ok := m.index[wid]; ok {
		return nil
	}

	moved := false
	for len(m.workspaces[m.current].Windows) >= m.capacity {
		if m.current+1 >= len(m.workspaces) {
			m.workspaces = append(m.workspaces, Workspace{})
		}
		m.current++
		moved = true
	}

	geometry, _ := m.display.Geometry(wid)

	ws := &m.workspaces[m.current]
	m.index[wid] = slot{workspace: m.current, position: len(ws.Windows)}
	ws.Windows = append(ws.Windows, Window{
		WID:      wid,
		Geometry: geometry,
	})

	if moved {
		return m.ShowWorkspace(m.current)
	}

	return m.Arrange(m.current)
}

// RemoveWindow forgets the window. Later windows of its workspace move one
// position earlier.
func (m *Manager) RemoveWindow(wid xproto.Window) error {
	s, ok := m.index[wid]
	if !ok {
		return nil
	}

	ws := &m.workspaces[s.workspace]
	ws.Windows = slices.Delete(ws.Windows, s.position, s.position+1)
	delete(m.index, wid)
	for i := s.position; i < len(ws.Windows); i++ {
		m.index[ws.Windows[i].WID] = slot{workspace: s.workspace, position: i}
	}

	return m.Arrange(s.workspace)
}

// SwitchWorkspace makes the workspace current. Out of range indexes are ignored.
func (m *Manager) SwitchWorkspace(idx int) error {
	if idx < 0 || idx >= len(m.workspaces) {
		return nil
	}

	m.current = idx

	return m.ShowWorkspace(idx)
}

// ShowWorkspace maps the windows of the workspace that are not hidden and
// unmaps every other window, then arranges the workspace.
func (m *Manager) ShowWorkspace(idx int) error {
	var errs []error
	for i := range m.workspaces {
		for _, win := range m.workspaces[i].Windows {
			if i == idx && !win.Hidden {
				if err := m.display.Map(win.WID); err != nil {
					errs = append(errs, fmt.Errorf("map %d: %w", win.WID, err))
				}
			} else {
				if err := m.display.Unmap(win.WID); err != nil {
					errs = append(errs, fmt.Errorf("unmap %d: %w", win.WID, err))
				}
			}
		}
	}

	errs = append(errs, m.Arrange(idx))

	return errors.Join(errs...)
}

// CloseWindow asks the window's client to close it. Nothing changes here
// until the server reports the window gone.
func (m *Manager) CloseWindow(wid xproto.Window) error {
	if err := m.display.CloseWindow(wid); err != nil {
		return fmt.Errorf("close %d: %w", wid, err)
	}
	return nil
}
