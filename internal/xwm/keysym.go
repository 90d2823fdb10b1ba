package xwm

import (
	"strings"

	"github.com/jezek/xgb/xproto"
)

// https://gitlab.freedesktop.org/xorg/proto/xorgproto/-/blob/master/include/X11/keysymdef.h
const (
	NoSymbol xproto.Keysym = 0

	XK_BackSpace xproto.Keysym = 0xff08
	XK_Tab       xproto.Keysym = 0xff09
	XK_Return    xproto.Keysym = 0xff0d
	XK_Escape    xproto.Keysym = 0xff1b
	XK_Delete    xproto.Keysym = 0xffff
	XK_Home      xproto.Keysym = 0xff50
	XK_Left      xproto.Keysym = 0xff51
	XK_Up        xproto.Keysym = 0xff52
	XK_Right     xproto.Keysym = 0xff53
	XK_Down      xproto.Keysym = 0xff54
	XK_Prior     xproto.Keysym = 0xff55
	XK_Next      xproto.Keysym = 0xff56
	XK_End       xproto.Keysym = 0xff57
	XK_F1        xproto.Keysym = 0xffbe
	XK_space     xproto.Keysym = 0x0020
)

var keysymNames = map[string]xproto.Keysym{
	"BackSpace": XK_BackSpace,
	"Tab":       XK_Tab,
	"Return":    XK_Return,
	"Enter":     XK_Return,
	"Escape":    XK_Escape,
	"Delete":    XK_Delete,
	"Home":      XK_Home,
	"Left":      XK_Left,
	"Up":        XK_Up,
	"Right":     XK_Right,
	"Down":      XK_Down,
	"Prior":     XK_Prior,
	"Page_Up":   XK_Prior,
	"Next":      XK_Next,
	"Page_Down": XK_Next,
	"End":       XK_End,
	"space":     XK_space,
}

// LookupKeysym resolves a keysym name such as "Left", "Return", "F5" or "q".
// Single letters resolve to their lowercase keysym because that is the
// unshifted symbol reported by the keymap.
func LookupKeysym(name string) (xproto.Keysym, bool) {
	if sym, ok := keysymNames[name]; ok {
		return sym, true
	}

	if len(name) >= 2 && len(name) <= 3 && name[0] == 'F' {
		n := 0
		for _, r := range name[1:] {
			if r < '0' || r > '9' {
				return NoSymbol, false
			}
			n = n*10 + int(r-'0')
		}
		if n >= 1 && n <= 12 {
			return XK_F1 + xproto.Keysym(n-1), true
		}
		return NoSymbol, false
	}

	if len(name) == 1 && name[0] > 0x20 && name[0] < 0x7f {
		// Latin-1 keysyms are equal to their code point.
		return xproto.Keysym(strings.ToLower(name)[0]), true
	}

	return NoSymbol, false
}

// ModMask returns the modifier mask for a modifier name. Unknown names return
// false.
func ModMask(name string) (uint16, bool) {
	switch name {
	case "Super", "Mod4":
		return xproto.ModMask4, true
	case "Alt", "Mod1":
		return xproto.ModMask1, true
	case "Control", "Ctrl":
		return xproto.ModMaskControl, true
	case "Shift":
		return xproto.ModMaskShift, true
	default:
		return 0, false
	}
}
