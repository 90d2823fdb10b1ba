// Package xcursor creates glyph cursors from the X core "cursor" font.
//
// Adapted from https://github.com/BurntSushi/xgbutil/blob/master/xcursor/xcursor.go
package xcursor

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Glyph indexes into the cursor font (X11/cursorfont.h). Each glyph is
// followed by its mask at index+1.
const (
	Arrow    = 2
	Cross    = 30
	Fleur    = 52
	LeftPtr  = 68
	Sizing   = 120
	Watch    = 150
	XTerm    = 152
	fontName = "cursor"
)

// CreateCursor creates a white on black cursor from the glyph.
func CreateCursor(conn *xgb.Conn, glyph uint16) (xproto.Cursor, error) {
	return CreateCursorColor(conn, glyph, [3]uint16{0xffff, 0xffff, 0xffff}, [3]uint16{0, 0, 0})
}

// CreateCursorColor creates a cursor from the glyph with fore and back RGB colors.
func CreateCursorColor(conn *xgb.Conn, glyph uint16, fore, back [3]uint16) (xproto.Cursor, error) {
	fontID, err := xproto.NewFontId(conn)
	if err != nil {
		return 0, err
	}

	cursorID, err := xproto.NewCursorId(conn)
	if err != nil {
		return 0, err
	}

	if err := xproto.OpenFontChecked(conn, fontID, uint16(len(fontName)), fontName).Check(); err != nil {
		return 0, fmt.Errorf("failed to open cursor font: %w", err)
	}
	defer xproto.CloseFont(conn, fontID)

	if err := xproto.CreateGlyphCursorChecked(conn, cursorID, fontID, fontID,
		glyph, glyph+1,
		fore[0], fore[1], fore[2],
		back[0], back[1], back[2]).Check(); err != nil {
		return 0, fmt.Errorf("failed to create glyph cursor %d: %w", glyph, err)
	}

	return cursorID, nil
}
