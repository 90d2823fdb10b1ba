package app

import (
	"testing"

	"github.com/ItsNotGoodName/x-cwm/internal/config"
	"github.com/ItsNotGoodName/x-cwm/internal/xwm"
	"github.com/ItsNotGoodName/x-cwm/internal/xwm/xwmtest"
	"github.com/jezek/xgb/xproto"
	"github.com/stretchr/testify/require"
)

func press(t *testing.T, f fixture, code xproto.Keycode) {
	t.Helper()
	require.NoError(t, f.dispatcher.HandleKeyPress(xwm.KeyPress{State: f.dispatcher.Modifier(), Detail: code}))
}

func TestDispatcherGrab(t *testing.T) {
	f := newFixture(t, config.Default())

	require.NoError(t, f.dispatcher.Grab())

	var codes []xproto.Keycode
	for _, g := range f.display.Grabs {
		require.Equal(t, uint16(xproto.ModMask4), g.Modifiers)
		codes = append(codes, g.Code)
	}
	require.ElementsMatch(t, []xproto.Keycode{codeLeft, codeRight, codeQ, codeH, codeM, codeTab, codeReturn, codeD}, codes)
}

func TestDispatcherRequiresModifier(t *testing.T) {
	f := newFixture(t, config.Default())
	f.mapWindows(t, winA)
	f.display.Reset()

	require.NoError(t, f.dispatcher.HandleKeyPress(xwm.KeyPress{State: xproto.ModMaskShift, Detail: codeQ}))
	require.Empty(t, f.display.Calls)

	// Extra modifiers are fine.
	require.NoError(t, f.dispatcher.HandleKeyPress(xwm.KeyPress{State: xproto.ModMask4 | xproto.ModMaskShift, Detail: codeQ}))
	require.Len(t, f.display.CallsFor(xwmtest.OpClose), 1)
}

func TestDispatcherUnboundKey(t *testing.T) {
	f := newFixture(t, config.Default())
	f.mapWindows(t, winA)
	f.display.Reset()

	press(t, f, codeW)
	press(t, f, 200)
	require.Empty(t, f.display.Calls)
	require.Empty(t, f.out.String())
	require.Empty(t, f.launcher.commands)
}

func TestDispatcherClose(t *testing.T) {
	f := newFixture(t, config.Default())
	f.mapWindows(t, winA)
	f.display.Reset()

	press(t, f, codeQ)

	require.Equal(t, []xwmtest.Call{{Op: xwmtest.OpClose, Window: winA}}, f.display.Calls)
	_, ok := f.manager.FindWindow(winA)
	require.True(t, ok)
}

func TestDispatcherNoTarget(t *testing.T) {
	for _, focused := range []xproto.Window{xproto.WindowNone, xwmtest.DefaultRoot} {
		f := newFixture(t, config.Default())
		f.mapWindows(t, winA)
		f.display.Focused = focused
		f.display.Reset()

		press(t, f, codeQ)
		press(t, f, codeH)
		press(t, f, codeM)

		require.Empty(t, f.display.Calls)
		win, ok := f.manager.FindWindow(winA)
		require.True(t, ok)
		require.False(t, win.Hidden)
		require.False(t, win.Maximized)
	}
}

func TestDispatcherHideAndMaximize(t *testing.T) {
	f := newFixture(t, config.Default())
	f.mapWindows(t, winA, winB)

	press(t, f, codeM)
	win, _ := f.manager.FindWindow(winB)
	require.True(t, win.Maximized)
	require.Equal(t, xwm.Geometry{W: 1920, H: 1080}, f.display.Configured[winB])

	press(t, f, codeH)
	win, _ = f.manager.FindWindow(winB)
	require.True(t, win.Hidden)
	require.False(t, f.display.Mapped[winB])

	press(t, f, codeM)
	win, _ = f.manager.FindWindow(winB)
	require.False(t, win.Maximized)
	require.Equal(t, xwm.Geometry{X: 960, W: 960, H: 1080}, f.display.Configured[winB])
}

func TestDispatcherNavigate(t *testing.T) {
	f := newFixture(t, config.Default())
	f.mapWindows(t, winA, winB, winC)
	require.Equal(t, 1, f.manager.Current())

	f.display.Reset()
	press(t, f, codeRight)
	require.Equal(t, 1, f.manager.Current())
	require.Empty(t, f.display.Calls)

	press(t, f, codeLeft)
	require.Equal(t, 0, f.manager.Current())
	require.True(t, f.display.Mapped[winA])
	require.True(t, f.display.Mapped[winB])
	require.False(t, f.display.Mapped[winC])

	f.display.Reset()
	press(t, f, codeLeft)
	require.Equal(t, 0, f.manager.Current())
	require.Empty(t, f.display.Calls)

	press(t, f, codeRight)
	require.Equal(t, 1, f.manager.Current())
	require.True(t, f.display.Mapped[winC])
}

func TestDispatcherMenu(t *testing.T) {
	f := newFixture(t, config.Default())
	f.mapWindows(t, winA, winB, winC)

	press(t, f, codeTab)

	require.Equal(t, "CWM Workspaces:\n [0] Windows: 2\n*[1] Windows: 1\n", f.out.String())
}

func TestDispatcherLaunch(t *testing.T) {
	f := newFixture(t, config.Default())

	press(t, f, codeReturn)
	press(t, f, codeD)

	require.Equal(t, []string{"alacritty", "dmenu_run"}, f.launcher.commands)
}

func TestDispatcherConfig(t *testing.T) {
	cfg := config.Default()
	cfg.ModKey = "Alt"
	cfg.Keys.Close = "w"
	cfg.Terminal = "xterm"

	f := newFixture(t, cfg)
	require.Equal(t, uint16(xproto.ModMask1), f.dispatcher.Modifier())

	f.mapWindows(t, winA)
	f.display.Reset()

	press(t, f, codeQ)
	require.Empty(t, f.display.Calls)

	press(t, f, codeW)
	require.Equal(t, []xwmtest.Call{{Op: xwmtest.OpClose, Window: winA}}, f.display.Calls)

	press(t, f, codeReturn)
	require.Equal(t, []string{"xterm"}, f.launcher.commands)
}

func TestDispatcherInvalidKeys(t *testing.T) {
	cfg := config.Default()
	cfg.ModKey = "Hyper"
	cfg.Keys.Close = "NotAKey"
	// Already bound to close.
	cfg.Keys.Hide = "q"

	f := newFixture(t, cfg)
	require.Equal(t, uint16(xproto.ModMask4), f.dispatcher.Modifier())

	f.mapWindows(t, winA)
	f.display.Reset()

	press(t, f, codeQ)
	require.Equal(t, []xwmtest.Call{{Op: xwmtest.OpClose, Window: winA}}, f.display.Calls)

	f.display.Reset()
	press(t, f, codeH)
	require.Empty(t, f.display.Calls)
}

func TestWriteOverviewEmpty(t *testing.T) {
	f := newFixture(t, config.Default())

	press(t, f, codeTab)

	require.Equal(t, "CWM Workspaces:\n*[0] Windows: 0\n", f.out.String())
}

func TestActionString(t *testing.T) {
	require.Equal(t, "maximize", ActionMaximize.String())
	require.Equal(t, "Action(42)", Action(42).String())
}
