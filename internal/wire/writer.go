package wire

import (
	"encoding/binary"
	"io"

	"github.com/zhicwu/mariadb-wire/internal/xerrors"
	"github.com/zhicwu/mariadb-wire/internal/xstring"
)

// Writer is a sequential sink for packet bytes. Lifecycle of the underlying
// io.Writer is owned by the caller; Writer never flushes or closes it.
type Writer struct {
	w       io.Writer
	scratch [4]byte
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) WriteByte(b byte) error {
	w.scratch[0] = b
	_, err := w.w.Write(w.scratch[:1])

	return xerrors.WithStackTrace(err)
}

func (w *Writer) WriteBytes(p []byte) error {
	_, err := w.w.Write(p)

	return xerrors.WithStackTrace(err)
}

// WriteAscii writes the raw bytes of s without copying.
func (w *Writer) WriteAscii(s string) error {
	_, err := w.w.Write(xstring.ToBytes(s))

	return xerrors.WithStackTrace(err)
}

func (w *Writer) WriteUint32(v uint32) error {
	binary.LittleEndian.PutUint32(w.scratch[:], v)
	_, err := w.w.Write(w.scratch[:4])

	return xerrors.WithStackTrace(err)
}

func (w *Writer) WriteInt32(v int32) error {
	return w.WriteUint32(uint32(v))
}
