package xwm

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Keymap is the server's keycode to keysym table.
type Keymap struct {
	min     xproto.Keycode
	columns int
	keysyms []xproto.Keysym
}

// NewKeymap creates a keymap where keysyms holds columns keysyms for each
// keycode starting at min.
func NewKeymap(min xproto.Keycode, columns int, keysyms []xproto.Keysym) Keymap {
	return Keymap{
		min:     min,
		columns: columns,
		keysyms: keysyms,
	}
}

func loadKeymap(conn *xgb.Conn, min, max xproto.Keycode) (Keymap, error) {
	reply, err := xproto.GetKeyboardMapping(conn, min, byte(max-min+1)).Reply()
	if err != nil {
		return Keymap{}, fmt.Errorf("failed to get keyboard mapping: %w", err)
	}
	if reply == nil {
		return Keymap{}, fmt.Errorf("failed to get keyboard mapping: no reply")
	}

	return NewKeymap(min, int(reply.KeysymsPerKeycode), reply.Keysyms), nil
}

// Keysym returns the unshifted keysym of the keycode, or NoSymbol.
func (k Keymap) Keysym(code xproto.Keycode) xproto.Keysym {
	if k.columns == 0 || code < k.min {
		return NoSymbol
	}

	idx := int(code-k.min) * k.columns
	if idx >= len(k.keysyms) {
		return NoSymbol
	}

	return k.keysyms[idx]
}

// Keycodes returns every keycode that produces sym in any column.
func (k Keymap) Keycodes(sym xproto.Keysym) []xproto.Keycode {
	if k.columns == 0 || sym == NoSymbol {
		return nil
	}

	var codes []xproto.Keycode
	for i := 0; i+k.columns <= len(k.keysyms); i += k.columns {
		for _, s := range k.keysyms[i : i+k.columns] {
			if s == sym {
				codes = append(codes, k.min+xproto.Keycode(i/k.columns))
				break
			}
		}
	}

	return codes
}
