package xstring

import (
	"unsafe"
)

// FromBytes returns a string sharing the backing array of b.
// The caller must not mutate b afterward.
func FromBytes(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	return unsafe.String(&b[0], len(b))
}

// ToBytes returns a byte slice sharing the backing array of s.
// The result must not be mutated.
func ToBytes(s string) (b []byte) {
	if s == "" {
		return nil
	}

	return unsafe.Slice(unsafe.StringData(s), len(s))
}
