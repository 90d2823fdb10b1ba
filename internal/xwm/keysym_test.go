package xwm

import (
	"testing"

	"github.com/jezek/xgb/xproto"
	"github.com/stretchr/testify/require"
)

func TestLookupKeysym(t *testing.T) {
	tests := []struct {
		name string
		sym  xproto.Keysym
		ok   bool
	}{
		{"Left", XK_Left, true},
		{"Right", XK_Right, true},
		{"Tab", XK_Tab, true},
		{"Return", XK_Return, true},
		{"q", 'q', true},
		{"Q", 'q', true},
		{"1", '1', true},
		{"F1", XK_F1, true},
		{"F12", XK_F1 + 11, true},
		{"F13", NoSymbol, false},
		{"Fx", NoSymbol, false},
		{"", NoSymbol, false},
		{"NotAKey", NoSymbol, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sym, ok := LookupKeysym(tt.name)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.sym, sym)
		})
	}
}

func TestModMask(t *testing.T) {
	mask, ok := ModMask("Super")
	require.True(t, ok)
	require.Equal(t, uint16(xproto.ModMask4), mask)

	mask, ok = ModMask("Alt")
	require.True(t, ok)
	require.Equal(t, uint16(xproto.ModMask1), mask)

	_, ok = ModMask("Hyper")
	require.False(t, ok)
}
