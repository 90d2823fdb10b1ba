package app

import (
	"bytes"
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ItsNotGoodName/x-cwm/internal/bus"
	"github.com/ItsNotGoodName/x-cwm/internal/config"
	"github.com/ItsNotGoodName/x-cwm/internal/wm"
	"github.com/ItsNotGoodName/x-cwm/internal/xwm"
	"github.com/ItsNotGoodName/x-cwm/internal/xwm/xwmtest"
	"github.com/jezek/xgb/xproto"
	"github.com/stretchr/testify/require"
)

const (
	codeLeft xproto.Keycode = 8 + iota
	codeRight
	codeQ
	codeH
	codeM
	codeTab
	codeReturn
	codeD
	codeW
)

const (
	winA xproto.Window = 100 + iota
	winB
	winC
)

type fakeLauncher struct {
	commands []string
}

func (l *fakeLauncher) Launch(command string) {
	l.commands = append(l.commands, command)
}

type fixture struct {
	display    *xwmtest.Display
	manager    *wm.Manager
	launcher   *fakeLauncher
	out        *bytes.Buffer
	dispatcher *Dispatcher
	app        *App
}

func newFixture(t *testing.T, cfg config.Config) fixture {
	t.Helper()

	display := xwmtest.New(1920, 1080)
	display.Keymap = xwm.NewKeymap(8, 1, []xproto.Keysym{
		xwm.XK_Left,
		xwm.XK_Right,
		'q',
		'h',
		'm',
		xwm.XK_Tab,
		xwm.XK_Return,
		'd',
		'w',
	})

	manager := wm.NewManager(display, cfg.Capacity)
	launcher := &fakeLauncher{}
	out := &bytes.Buffer{}
	dispatcher := NewDispatcher(display, manager, launcher, out, cfg)

	return fixture{
		display:    display,
		manager:    manager,
		launcher:   launcher,
		out:        out,
		dispatcher: dispatcher,
		app:        New(display, manager, dispatcher),
	}
}

func (f fixture) mapWindows(t *testing.T, wids ...xproto.Window) {
	t.Helper()
	for _, wid := range wids {
		require.NoError(t, f.app.Handle(xwm.MapRequest{Window: wid}))
	}
}

func TestHandleMapRequest(t *testing.T) {
	f := newFixture(t, config.Default())

	f.mapWindows(t, winA)

	_, ok := f.manager.FindWindow(winA)
	require.True(t, ok)
	require.True(t, f.display.Mapped[winA])
	require.Equal(t, winA, f.display.Focused)
	require.Equal(t, xwm.Geometry{W: 1920, H: 1080}, f.display.Configured[winA])
}

func TestHandleMapRequestOverflow(t *testing.T) {
	f := newFixture(t, config.Default())

	f.mapWindows(t, winA, winB, winC)

	require.Equal(t, 2, f.manager.Total())
	require.Equal(t, 1, f.manager.Current())
	require.False(t, f.display.Mapped[winA])
	require.False(t, f.display.Mapped[winB])
	require.True(t, f.display.Mapped[winC])
	require.Equal(t, winC, f.display.Focused)
}

func TestHandleMapRequestOtherWorkspace(t *testing.T) {
	f := newFixture(t, config.Default())
	f.mapWindows(t, winA, winB, winC)
	f.display.Reset()

	f.mapWindows(t, winA)

	require.Equal(t, 1, f.manager.Current())
	ws, ok := f.manager.Workspace(winA)
	require.True(t, ok)
	require.Equal(t, 0, ws)
	require.False(t, f.display.Mapped[winA])
	require.Equal(t, winC, f.display.Focused)
	require.Empty(t, f.display.Calls)
}

func TestHandleMapRequestHidden(t *testing.T) {
	f := newFixture(t, config.Default())
	f.mapWindows(t, winA, winB)
	require.NoError(t, f.manager.ToggleHide(winA))
	require.False(t, f.display.Mapped[winA])

	f.mapWindows(t, winA)

	win, ok := f.manager.FindWindow(winA)
	require.True(t, ok)
	require.False(t, win.Hidden)
	require.True(t, f.display.Mapped[winA])
	require.Equal(t, winA, f.display.Focused)

	// Hiding again takes effect.
	require.NoError(t, f.manager.ToggleHide(winA))
	require.False(t, f.display.Mapped[winA])
}

func TestHandleMapRequestShown(t *testing.T) {
	f := newFixture(t, config.Default())
	f.mapWindows(t, winA, winB)
	f.display.Reset()

	f.mapWindows(t, winA)

	require.Equal(t, []xwmtest.Call{
		{Op: xwmtest.OpMap, Window: winA},
		{Op: xwmtest.OpFocus, Window: winA},
	}, f.display.Calls)
	require.Len(t, f.manager.Snapshot().Workspaces[0].Windows, 2)
}

func TestHandleDestroyNotify(t *testing.T) {
	f := newFixture(t, config.Default())
	f.mapWindows(t, winA, winB)

	require.NoError(t, f.app.Handle(xwm.DestroyNotify{Window: winA}))

	_, ok := f.manager.FindWindow(winA)
	require.False(t, ok)
	require.Equal(t, xwm.Geometry{W: 1920, H: 1080}, f.display.Configured[winB])

	// Unknown windows are ignored.
	require.NoError(t, f.app.Handle(xwm.DestroyNotify{Window: 999}))
}

func TestHandleUnmapNotify(t *testing.T) {
	f := newFixture(t, config.Default())
	f.mapWindows(t, winA, winB)

	require.NoError(t, f.app.Handle(xwm.UnmapNotify{Window: winA, Event: f.display.Root()}))
	_, ok := f.manager.FindWindow(winA)
	require.True(t, ok)

	require.NoError(t, f.app.Handle(xwm.UnmapNotify{Window: winA, Event: winA}))
	_, ok = f.manager.FindWindow(winA)
	require.False(t, ok)
}

func TestRunStopsWithoutEvents(t *testing.T) {
	f := newFixture(t, config.Default())
	require.NoError(t, f.dispatcher.Grab())
	require.NotEmpty(t, f.display.Grabs)

	ctx, cancel := context.WithCancel(context.Background())
	eventC := make(chan xwm.Event)
	errC := make(chan error, 1)
	go func() { errC <- f.app.Run(ctx, eventC) }()

	cancel()

	select {
	case err := <-errC:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	require.True(t, f.display.Closed)
	require.Empty(t, f.display.Grabs)
}

func TestRunPublishesSnapshots(t *testing.T) {
	var last atomic.Pointer[wm.Snapshot]
	bus.Subscribe("app.test", func(ctx context.Context, event wm.Snapshot) error {
		last.Store(&event)
		return nil
	})

	f := newFixture(t, config.Default())

	ctx, cancel := context.WithCancel(context.Background())
	eventC := make(chan xwm.Event)
	errC := make(chan error, 1)
	go func() { errC <- f.app.Run(ctx, eventC) }()

	eventC <- xwm.MapRequest{Window: winA}
	eventC <- xwm.MapRequest{Window: winB}
	cancel()
	require.ErrorIs(t, <-errC, context.Canceled)

	s := last.Load()
	require.NotNil(t, s)
	require.Len(t, s.Workspaces, 1)
	require.Len(t, s.Workspaces[0].Windows, 2)
	require.Equal(t, winA, s.Workspaces[0].Windows[0].ID)
	require.Equal(t, winB, s.Workspaces[0].Windows[1].ID)
}
