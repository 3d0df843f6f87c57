package wire

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zhicwu/mariadb-wire/internal/xerrors"
)

func TestReader(t *testing.T) {
	t.Run("LittleEndian", func(t *testing.T) {
		r := NewReader([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07})
		b, err := r.ReadUint8()
		require.NoError(t, err)
		require.Equal(t, uint8(0x01), b)
		u16, err := r.ReadUint16()
		require.NoError(t, err)
		require.Equal(t, uint16(0x0302), u16)
		u32, err := r.ReadUint32()
		require.NoError(t, err)
		require.Equal(t, uint32(0x07060504), u32)
		require.Equal(t, 7, r.Pos())
		require.Equal(t, 0, r.Len())
	})
	t.Run("SignedInt32", func(t *testing.T) {
		r := NewReader([]byte{0xff, 0xff, 0xff, 0xff})
		v, err := r.ReadInt32()
		require.NoError(t, err)
		require.Equal(t, int32(-1), v)
	})
	t.Run("SignedInt8", func(t *testing.T) {
		r := NewReader([]byte{0x80})
		v, err := r.ReadInt8()
		require.NoError(t, err)
		require.Equal(t, int8(-128), v)
	})
	t.Run("Ascii", func(t *testing.T) {
		r := NewReader([]byte("10:20:30 tail"))
		s, err := r.ReadAscii(8)
		require.NoError(t, err)
		require.Equal(t, "10:20:30", s)
		require.Equal(t, 8, r.Pos())
	})
	t.Run("Skip", func(t *testing.T) {
		r := NewReader([]byte{1, 2, 3})
		require.NoError(t, r.Skip(2))
		b, err := r.ReadUint8()
		require.NoError(t, err)
		require.Equal(t, uint8(3), b)
	})
	t.Run("ShortRead", func(t *testing.T) {
		r := NewReader([]byte{1, 2})
		_, err := r.ReadUint32()
		require.True(t, xerrors.Is(err, io.ErrUnexpectedEOF))
		// cursor untouched by the failed read
		require.Equal(t, 0, r.Pos())
	})
}
