// Package ico describes Windows ICO file format.
package ico

// http://msdn.microsoft.com/en-us/library/ms997538.aspx

import (
	"encoding/binary"
	"errors"
	"io"
)

var (
	ErrBadMagic = errors.New("ico: bad magic number")
	ErrBadSize  = errors.New("ico: image must be 1..256 pixels on each side")
)

type ICONDIR struct {
	Reserved uint16 // must be 0
	Type     uint16 // Resource Type (1 for icons)
	Count    uint16 // How many images?
}

type IconDirEntryCommon struct {
	Width      byte   // Width, in pixels, of the image
	Height     byte   // Height, in pixels, of the image
	ColorCount byte   // Number of colors in image (0 if >=8bpp)
	Reserved   byte   // Reserved (must be 0)
	Planes     uint16 // Color Planes
	BitCount   uint16 // Bits per pixel
	BytesInRes uint32 // How many bytes in this resource?
}

type ICONDIRENTRY struct {
	IconDirEntryCommon
	ImageOffset uint32 // Where in the file is this image? [from beginning of file]
}

type BITMAPINFOHEADER struct {
	Size          uint32
	Width         int32
	Height        int32 // NOTE: "represents the combined height of the XOR and AND masks. Remember to divide this number by two before using it to perform calculations for either of the XOR or AND masks."
	Planes        uint16
	BitCount      uint16
	Compression   uint32 // for ico = 0
	SizeImage     uint32
	XPelsPerMeter int32  // for ico = 0
	YPelsPerMeter int32  // for ico = 0
	ClrUsed       uint32 // for ico = 0
	ClrImportant  uint32 // for ico = 0
}

type RGBQUAD struct {
	Blue     byte
	Green    byte
	Red      byte
	Reserved byte // alpha for 32bpp images
}

// Dimension returns the pixel size encoded in a Width or Height byte; 0 means 256.
func Dimension(b byte) int {
	if b == 0 {
		return 256
	}
	return int(b)
}

func DecodeHeaders(r io.Reader) ([]ICONDIRENTRY, error) {
	var hdr ICONDIR
	err := binary.Read(r, binary.LittleEndian, &hdr)
	if err != nil {
		return nil, err
	}
	if hdr.Reserved != 0 || hdr.Type != 1 {
		return nil, ErrBadMagic
	}

	entries := make([]ICONDIRENTRY, hdr.Count)
	for i := range entries {
		err = binary.Read(r, binary.LittleEndian, &entries[i])
		if err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// DecodeBitmapHeader reads the DIB header an entry points at. PNG-compressed
// entries have no such header and yield an error.
func DecodeBitmapHeader(r io.ReaderAt, e ICONDIRENTRY) (BITMAPINFOHEADER, error) {
	var bmp BITMAPINFOHEADER
	sr := io.NewSectionReader(r, int64(e.ImageOffset), int64(e.BytesInRes))
	err := binary.Read(sr, binary.LittleEndian, &bmp)
	if err != nil {
		return bmp, err
	}
	if bmp.Size != uint32(binary.Size(bmp)) {
		return bmp, errors.New("ico: entry is not a BITMAPINFOHEADER image")
	}
	return bmp, nil
}
