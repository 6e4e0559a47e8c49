// Package glyph holds the Datagaps favicon artwork: a "D" in a circle on a
// transparent 16x16 canvas.
package glyph

import (
	"image"
	"image/color"
)

const Size = 16

// Pattern lists the rows top to bottom; '1' marks a foreground pixel.
var Pattern = [Size]string{
	"0000000000000000",
	"0000000000000000",
	"0000111111000000",
	"0001111111100000",
	"0011111111110000",
	"0011110001110000",
	"0111100000111000",
	"0111000000011000",
	"0111000000011000",
	"0111100000111000",
	"0011110001110000",
	"0011111111110000",
	"0001111111100000",
	"0000111111000000",
	"0000000000000000",
	"0000000000000000",
}

var (
	Accent      = color.NRGBA{R: 0x00, G: 0x86, B: 0x4E, A: 0xFF} // Datagaps green #00864E
	Transparent = color.NRGBA{}
)

// Set reports whether the pixel at (x, y), counted from the top-left, is foreground.
func Set(x, y int) bool {
	if x < 0 || x >= Size || y < 0 || y >= Size {
		return false
	}
	return Pattern[y][x] == '1'
}

// Image renders the glyph. Each call returns a new image.
func Image() *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, Size, Size))
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if Set(x, y) {
				m.SetNRGBA(x, y, Accent)
			} else {
				m.SetNRGBA(x, y, Transparent)
			}
		}
	}
	return m
}
