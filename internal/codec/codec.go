package codec

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/zhicwu/mariadb-wire/internal/column"
	"github.com/zhicwu/mariadb-wire/internal/wire"
	"github.com/zhicwu/mariadb-wire/internal/xerrors"
)

// Codec converts one family of column values between the protocol's text
// and binary row formats and an in-memory Go representation. Decode
// operations consume exactly length bytes from the reader, also on the
// error path, so the caller can keep reading subsequent columns. A decoded
// SQL NULL is returned as an untyped nil with no error.
type Codec interface {
	CanDecode(col *column.Column, dst reflect.Type) bool
	CanEncode(v interface{}) bool
	DecodeText(r *wire.Reader, length int, col *column.Column) (interface{}, error)
	DecodeBinary(r *wire.Reader, length int, col *column.Column) (interface{}, error)
	EncodeText(w *wire.Writer, v interface{}) error
	EncodeBinary(w *wire.Writer, v interface{}) error

	// BinaryType reports the wire type tag an encoded parameter is
	// declared as in the binary protocol.
	BinaryType() column.Type
}

// UnsupportedTypeError reports a column whose declared wire type has no
// conversion to the requested representation.
type UnsupportedTypeError struct {
	Type   column.Type
	Target string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("data type %s cannot be decoded as %s", e.Type, e.Target)
}

var ErrNoCodec = errors.New("no codec for column type")

var codecs = []Codec{
	Duration,
}

// ForColumn selects the codec able to decode col into dst.
func ForColumn(col *column.Column, dst reflect.Type) (Codec, error) {
	for _, c := range codecs {
		if c.CanDecode(col, dst) {
			return c, nil
		}
	}

	return nil, xerrors.WithStackTrace(fmt.Errorf("%w: %s into %s", ErrNoCodec, col.Type, dst))
}
