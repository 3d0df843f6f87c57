package wire

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/zhicwu/mariadb-wire/internal/xerrors"
	"github.com/zhicwu/mariadb-wire/internal/xstring"
)

// Reader is a sequential cursor over a single packet body. All multi-byte
// integers are little-endian per the MySQL client-server protocol. The
// cursor never seeks backward and is left unchanged by a failed read.
type Reader struct {
	buf []byte
	pos int
}

func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Pos reports the number of bytes consumed so far.
func (r *Reader) Pos() int {
	return r.pos
}

// Len reports the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.buf) - r.pos
}

func (r *Reader) require(n int) error {
	if rest := len(r.buf) - r.pos; rest < n {
		return xerrors.WithStackTrace(fmt.Errorf(
			"%w: need %d bytes at offset %d, have %d",
			io.ErrUnexpectedEOF, n, r.pos, rest,
		))
	}

	return nil
}

// ReadAscii consumes n bytes and returns them as a string without copying.
func (r *Reader) ReadAscii(n int) (string, error) {
	if err := r.require(n); err != nil {
		return "", err
	}
	s := xstring.FromBytes(r.buf[r.pos : r.pos+n])
	r.pos += n

	return s, nil
}

func (r *Reader) ReadUint8() (uint8, error) {
	if err := r.require(1); err != nil {
		return 0, err
	}
	v := r.buf[r.pos]
	r.pos++

	return v, nil
}

func (r *Reader) ReadInt8() (int8, error) {
	v, err := r.ReadUint8()

	return int8(v), err
}

func (r *Reader) ReadUint16() (uint16, error) {
	if err := r.require(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.buf[r.pos:])
	r.pos += 2

	return v, nil
}

func (r *Reader) ReadUint32() (uint32, error) {
	if err := r.require(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos:])
	r.pos += 4

	return v, nil
}

func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()

	return int32(v), err
}

// Skip consumes n bytes without interpreting them.
func (r *Reader) Skip(n int) error {
	if err := r.require(n); err != nil {
		return err
	}
	r.pos += n

	return nil
}
