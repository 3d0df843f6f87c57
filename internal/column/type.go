package column

import (
	"fmt"
	"strings"

	"github.com/zhicwu/mariadb-wire/internal/xerrors"
)

// Type is the wire data type tag carried by a column definition packet.
type Type uint8

const (
	Decimal    Type = 0
	Tiny       Type = 1
	Short      Type = 2
	Long       Type = 3
	Float      Type = 4
	Double     Type = 5
	Null       Type = 6
	Timestamp  Type = 7
	LongLong   Type = 8
	Int24      Type = 9
	Date       Type = 10
	Time       Type = 11
	DateTime   Type = 12
	Year       Type = 13
	NewDate    Type = 14
	VarChar    Type = 15
	Bit        Type = 16
	JSON       Type = 245
	NewDecimal Type = 246
	Enum       Type = 247
	Set        Type = 248
	TinyBlob   Type = 249
	MediumBlob Type = 250
	LongBlob   Type = 251
	Blob       Type = 252
	VarString  Type = 253
	String     Type = 254
	Geometry   Type = 255
)

var typeNames = map[Type]string{
	Decimal:    "DECIMAL",
	Tiny:       "TINYINT",
	Short:      "SMALLINT",
	Long:       "INTEGER",
	Float:      "FLOAT",
	Double:     "DOUBLE",
	Null:       "NULL",
	Timestamp:  "TIMESTAMP",
	LongLong:   "BIGINT",
	Int24:      "MEDIUMINT",
	Date:       "DATE",
	Time:       "TIME",
	DateTime:   "DATETIME",
	Year:       "YEAR",
	NewDate:    "NEWDATE",
	VarChar:    "VARCHAR",
	Bit:        "BIT",
	JSON:       "JSON",
	NewDecimal: "NEWDECIMAL",
	Enum:       "ENUM",
	Set:        "SET",
	TinyBlob:   "TINYBLOB",
	MediumBlob: "MEDIUMBLOB",
	LongBlob:   "LONGBLOB",
	Blob:       "BLOB",
	VarString:  "VARSTRING",
	String:     "STRING",
	Geometry:   "GEOMETRY",
}

func (t Type) String() string {
	if name, has := typeNames[t]; has {
		return name
	}

	return fmt.Sprintf("UNKNOWN(%d)", uint8(t))
}

// ParseType resolves a type name back to its wire tag. Matching is
// case-insensitive.
func ParseType(name string) (Type, error) {
	upper := strings.ToUpper(name)
	for t, n := range typeNames {
		if n == upper {
			return t, nil
		}
	}

	return 0, xerrors.WithStackTrace(fmt.Errorf("unknown column type name '%s'", name))
}
