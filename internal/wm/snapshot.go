package wm

import (
	"github.com/ItsNotGoodName/x-cwm/internal/xwm"
	"github.com/jezek/xgb/xproto"
)

// Snapshot is an immutable copy of the manager's state.
type Snapshot struct {
	Current    int                 `json:"current"`
	Total      int                 `json:"total"`
	Capacity   int                 `json:"capacity"`
	Workspaces []WorkspaceSnapshot `json:"workspaces"`
}

type WorkspaceSnapshot struct {
	Index   int              `json:"index"`
	Windows []WindowSnapshot `json:"windows"`
}

type WindowSnapshot struct {
	ID        xproto.Window `json:"id"`
	Geometry  xwm.Geometry  `json:"geometry"`
	Maximized bool          `json:"maximized"`
	Hidden    bool          `json:"hidden"`
}

func (m *Manager) Snapshot() Snapshot {
	workspaces := make([]WorkspaceSnapshot, len(m.workspaces))
	for i, ws := range m.workspaces {
		windows := make([]WindowSnapshot, len(ws.Windows))
		for j, win := range ws.Windows {
			windows[j] = WindowSnapshot{
				ID:        win.WID,
				Geometry:  win.Geometry,
				Maximized: win.Maximized,
				Hidden:    win.Hidden,
			}
		}
		workspaces[i] = WorkspaceSnapshot{
			Index:   i,
			Windows: windows,
		}
	}

	return Snapshot{
		Current:    m.current,
		Total:      len(m.workspaces),
		Capacity:   m.capacity,
		Workspaces: workspaces,
	}
}
