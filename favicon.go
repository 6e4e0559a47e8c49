// Package favicongen builds the Datagaps favicon and writes it into a
// project's frontend and static asset folders.
package favicongen

import (
	"bytes"
	"fmt"

	"github.com/datagaps/favicongen/glyph"
	"github.com/datagaps/favicongen/ico"
)

// Size is the length of the encoded favicon: ICONDIR, one ICONDIRENTRY, the
// BITMAPINFOHEADER, 32bpp pixels and a packed 1bpp AND mask.
const Size = 6 + 16 + 40 + glyph.Size*glyph.Size*4 + glyph.Size*glyph.Size/8

// Encode returns the complete .ico file. The result is identical on every call.
func Encode() []byte {
	var buf bytes.Buffer
	buf.Grow(Size)
	if err := ico.Encode(&buf, glyph.Image()); err != nil {
		panic(fmt.Sprintf("favicongen: encoding fixed glyph: %v", err))
	}
	return buf.Bytes()
}
