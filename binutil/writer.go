package binutil

import (
	"encoding/binary"
	"io"
)

// Writer accumulates the first error and turns every later call into a no-op,
// so callers can check Err once after a sequence of writes.
type Writer struct {
	W      io.Writer
	Offset uint32
	Err    error
}

func (w *Writer) WriteLE(v interface{}) {
	if w.Err != nil {
		return
	}
	w.Err = binary.Write(w.W, binary.LittleEndian, v)
	if w.Err != nil {
		return
	}
	w.Offset += uint32(binary.Size(v))
}

func (w *Writer) WriteBytes(b []byte) {
	if w.Err != nil {
		return
	}
	var n int
	n, w.Err = w.W.Write(b)
	w.Offset += uint32(n)
}
