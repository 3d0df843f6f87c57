package codec

import (
	"fmt"
	"reflect"
	"time"

	"github.com/zhicwu/mariadb-wire/internal/column"
	"github.com/zhicwu/mariadb-wire/internal/wire"
	"github.com/zhicwu/mariadb-wire/internal/xerrors"
)

const hoursPerDay = 24

// Duration converts TIME, DATETIME, TIMESTAMP and string-typed column
// values to and from time.Duration. A DATETIME or TIMESTAMP source is
// folded to a pure span: its year and month are discarded and day-of-month
// minus one counts as elapsed days.
var Duration durationCodec

type durationCodec struct{}

var durationType = reflect.TypeOf(time.Duration(0))

var durationCompatible = map[column.Type]struct{}{
	column.Time:      {},
	column.DateTime:  {},
	column.Timestamp: {},
	column.VarString: {},
	column.VarChar:   {},
	column.String:    {},
}

func (durationCodec) CanDecode(col *column.Column, dst reflect.Type) bool {
	if _, has := durationCompatible[col.Type]; !has {
		return false
	}

	return dst != nil && durationType.AssignableTo(dst)
}

func (durationCodec) CanEncode(v interface{}) bool {
	_, ok := v.(time.Duration)

	return ok
}

func (durationCodec) DecodeText(r *wire.Reader, length int, col *column.Column) (interface{}, error) {
	switch col.Type {
	case column.Timestamp, column.DateTime:
		s, err := r.ReadAscii(length)
		if err != nil {
			return nil, err
		}
		parts, ok, err := parseDateTime(s)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}

		return time.Duration(parts[2]-1)*hoursPerDay*time.Hour +
			time.Duration(parts[3])*time.Hour +
			time.Duration(parts[4])*time.Minute +
			time.Duration(parts[5])*time.Second +
			time.Duration(parts[6])*time.Nanosecond, nil

	case column.Time, column.VarChar, column.VarString, column.String:
		s, err := r.ReadAscii(length)
		if err != nil {
			return nil, err
		}
		parts, err := parseTime(s)
		if err != nil {
			return nil, err
		}
		d := time.Duration(parts[1])*time.Hour +
			time.Duration(parts[2])*time.Minute +
			time.Duration(parts[3])*time.Second +
			time.Duration(parts[4])*time.Nanosecond
		if parts[0] == -1 {
			return -d, nil
		}

		return d, nil

	default:
		// keep the cursor aligned for the next column before failing
		if err := r.Skip(length); err != nil {
			return nil, err
		}

		return nil, xerrors.WithStackTrace(&UnsupportedTypeError{Type: col.Type, Target: "Duration"})
	}
}

func (durationCodec) DecodeBinary(r *wire.Reader, length int, col *column.Column) (interface{}, error) {
	var (
		days    int64
		hours   int64
		minutes int64
		seconds int64
		micros  int64
	)

	if col.Type == column.Time {
		negate := false
		if length > 0 {
			sign, err := r.ReadUint8()
			if err != nil {
				return nil, err
			}
			negate = sign == 1
			if length > 4 {
				d, err := r.ReadUint32()
				if err != nil {
					return nil, err
				}
				days = int64(d)
				if length > 7 {
					if hours, minutes, seconds, err = readClock(r); err != nil {
						return nil, err
					}
					if length > 8 {
						us, err := r.ReadInt32()
						if err != nil {
							return nil, err
						}
						micros = int64(us)
					}
				}
			}
		}
		d := composeDuration(days, hours, minutes, seconds, micros)
		if negate {
			return -d, nil
		}

		return d, nil
	}

	// date-anchored layout: year and month carry no span information
	if err := r.Skip(3); err != nil {
		return nil, err
	}
	day, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	days = int64(day) - 1
	if length > 4 {
		if hours, minutes, seconds, err = readClock(r); err != nil {
			return nil, err
		}
		if length > 7 {
			us, err := r.ReadUint32()
			if err != nil {
				return nil, err
			}
			micros = int64(us)
		}
	}

	return composeDuration(days, hours, minutes, seconds, micros), nil
}

func readClock(r *wire.Reader) (hours, minutes, seconds int64, err error) {
	for _, p := range []*int64{&hours, &minutes, &seconds} {
		b, err := r.ReadUint8()
		if err != nil {
			return 0, 0, 0, err
		}
		*p = int64(b)
	}

	return hours, minutes, seconds, nil
}

func composeDuration(days, hours, minutes, seconds, micros int64) time.Duration {
	return time.Duration(days)*hoursPerDay*time.Hour +
		time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(micros)*time.Microsecond
}

func (c durationCodec) EncodeText(w *wire.Writer, v interface{}) error {
	d, err := c.durationValue(v)
	if err != nil {
		return err
	}
	neg, m := splitSign(d)
	s := int64(m / time.Second)
	micros := int64(m%time.Second) / int64(time.Microsecond)

	text := fmt.Sprintf("%d:%02d:%02d", s/3600, (s%3600)/60, s%60)
	if neg {
		text = "-" + text
	}
	if micros != 0 {
		text += fmt.Sprintf(".%06d", micros)
	}
	if err := w.WriteByte('\''); err != nil {
		return err
	}
	if err := w.WriteAscii(text); err != nil {
		return err
	}

	return w.WriteByte('\'')
}

func (c durationCodec) EncodeBinary(w *wire.Writer, v interface{}) error {
	d, err := c.durationValue(v)
	if err != nil {
		return err
	}
	neg, m := splitSign(d)
	nanos := m % time.Second

	if nanos != 0 {
		if err := w.WriteByte(12); err != nil {
			return err
		}
		if err := encodeDurationParts(w, neg, m); err != nil {
			return err
		}

		return w.WriteInt32(int32(nanos / time.Microsecond))
	}
	if err := w.WriteByte(8); err != nil {
		return err
	}

	return encodeDurationParts(w, neg, m)
}

// encodeDurationParts writes the shared sign/day/clock struct of the binary
// TIME format. m must be the absolute magnitude; the sign travels in its
// own byte.
func encodeDurationParts(w *wire.Writer, neg bool, m time.Duration) error {
	var sign byte
	if neg {
		sign = 1
	}
	if err := w.WriteByte(sign); err != nil {
		return err
	}
	if err := w.WriteInt32(int32(m / (hoursPerDay * time.Hour))); err != nil {
		return err
	}
	if err := w.WriteByte(byte(m / time.Hour % hoursPerDay)); err != nil {
		return err
	}
	if err := w.WriteByte(byte(m / time.Minute % 60)); err != nil {
		return err
	}

	return w.WriteByte(byte(m / time.Second % 60))
}

func (durationCodec) BinaryType() column.Type {
	return column.Time
}

func (durationCodec) durationValue(v interface{}) (time.Duration, error) {
	d, ok := v.(time.Duration)
	if !ok {
		return 0, xerrors.WithStackTrace(fmt.Errorf("cannot encode '%T' as a duration", v))
	}

	return d, nil
}

// splitSign decomposes d into its sign and absolute magnitude. Remainder
// extraction always runs on the magnitude so that a negative value never
// yields mixed-sign fields.
func splitSign(d time.Duration) (neg bool, m time.Duration) {
	if d < 0 {
		return true, -d
	}

	return false, d
}
