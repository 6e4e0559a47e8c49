package binutil

// Align rounds s up to the next multiple of a.
func Align(s, a int64) int64 {
	if s <= 0 {
		return 0
	}
	return (s-1)/a*a + a
}

// RowStride is the size in bytes of one DIB scanline: rows are padded to a
// 4-byte boundary.
func RowStride(width, bitCount int) int64 {
	return Align(int64(width)*int64(bitCount), 32) / 8
}
