package column

// Field flag bits from the column definition packet.
const (
	FlagNotNull  uint16 = 1
	FlagUnsigned uint16 = 32
	FlagBinary   uint16 = 128
)

// Column is the read-only metadata a codec consumes when converting a
// result column's values. It is owned by the caller of the codec.
type Column struct {
	Name     string
	Type     Type
	Decimals uint8
	Flags    uint16
}

func (c *Column) Unsigned() bool {
	return c.Flags&FlagUnsigned != 0
}
