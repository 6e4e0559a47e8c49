package ico

import (
	"encoding/binary"
	"image"
	"image/color"
	"io"

	"github.com/datagaps/favicongen/binutil"
)

const bitCount = 32

// Encode writes m as a single-image icon holding an uncompressed 32bpp DIB
// followed by an all-zero AND mask; visibility comes from the alpha channel.
// The mask is bit-packed without per-row padding, one bit per pixel, and the
// entry's BytesInRes counts the pixel data alone.
func Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()
	width, height := b.Dx(), b.Dy()
	if width < 1 || width > 256 || height < 1 || height > 256 {
		return ErrBadSize
	}

	bmp := BITMAPINFOHEADER{
		Width:    int32(width),
		Height:   int32(2 * height),
		Planes:   1,
		BitCount: bitCount,
	}
	bmp.Size = uint32(binary.Size(bmp))

	xorSize := binutil.RowStride(width, bitCount) * int64(height)
	andSize := binutil.Align(int64(width)*int64(height), 8) / 8

	dir := ICONDIR{Type: 1, Count: 1}
	entry := ICONDIRENTRY{
		IconDirEntryCommon: IconDirEntryCommon{
			Width:      byte(width), // 256 wraps to 0
			Height:     byte(height),
			Planes:     1,
			BitCount:   bitCount,
			BytesInRes: uint32(xorSize), // pixel data only; header and mask are not counted
		},
	}

	bw := binutil.Writer{W: w}
	bw.WriteLE(dir)
	entry.ImageOffset = bw.Offset + uint32(binary.Size(entry))
	bw.WriteLE(entry)
	bw.WriteLE(bmp)

	// DIB scanlines run bottom-up.
	row := make([]RGBQUAD, width)
	for y := b.Max.Y - 1; y >= b.Min.Y; y-- {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
			row[x-b.Min.X] = RGBQUAD{Blue: c.B, Green: c.G, Red: c.R, Reserved: c.A}
		}
		bw.WriteLE(row)
	}

	bw.WriteBytes(make([]byte, andSize))
	return bw.Err
}
