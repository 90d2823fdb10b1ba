// Package api serves the window manager state over HTTP.
package api

import (
	"context"
	"sync/atomic"

	"github.com/ItsNotGoodName/x-cwm/internal/bus"
	"github.com/ItsNotGoodName/x-cwm/internal/wm"
)

// Store keeps the last snapshot published by the event loop.
type Store struct {
	snapshot atomic.Pointer[wm.Snapshot]
}

func NewStore() *Store {
	return &Store{}
}

// Register subscribes the store to snapshots on the bus.
func (s *Store) Register() *Store {
	bus.Subscribe("api.Store", s.update)
	return s
}

func (s *Store) update(ctx context.Context, snapshot wm.Snapshot) error {
	s.snapshot.Store(&snapshot)
	return nil
}

// Snapshot returns the last snapshot. The second value is false before the
// first one arrives.
func (s *Store) Snapshot() (wm.Snapshot, bool) {
	snapshot := s.snapshot.Load()
	if snapshot == nil {
		return wm.Snapshot{}, false
	}
	return *snapshot, true
}
