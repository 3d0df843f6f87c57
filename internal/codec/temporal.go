package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zhicwu/mariadb-wire/internal/xerrors"
)

// parseDateTime splits a 'YYYY-MM-DD[ HH:MM:SS[.fraction]]' literal into
// [year, month, day, hour, minute, second, nanos]. ok is false for an empty
// value or a zero date anchor, both of which decode as SQL NULL.
func parseDateTime(s string) (parts [7]int, ok bool, err error) {
	if s == "" {
		return parts, false, nil
	}
	datePart, timePart, hasTime := strings.Cut(s, " ")
	fields := strings.SplitN(datePart, "-", 3)
	if len(fields) != 3 {
		return parts, false, errMalformedTemporal(s)
	}
	for i, f := range fields {
		if parts[i], err = parseDigits(f); err != nil {
			return parts, false, errMalformedTemporal(s)
		}
	}
	if hasTime {
		if err = parseClock(timePart, parts[3:7]); err != nil {
			return parts, false, errMalformedTemporal(s)
		}
	}
	if parts[0] == 0 && parts[1] == 0 && parts[2] == 0 {
		return parts, false, nil
	}

	return parts, true, nil
}

// parseTime splits a '[-]H:MM:SS[.fraction]' literal into
// [sign, hour, minute, second, nanos] with sign -1 for a negative literal,
// 1 otherwise. Hours are unbounded; TIME columns range up to 838 hours.
func parseTime(s string) (parts [5]int, err error) {
	parts[0] = 1
	rest := s
	if strings.HasPrefix(rest, "-") {
		parts[0] = -1
		rest = rest[1:]
	}
	if err = parseClock(rest, parts[1:5]); err != nil {
		return parts, errMalformedTemporal(s)
	}

	return parts, nil
}

// parseClock fills dst with [hour, minute, second, nanos] from an
// 'H:MM:SS[.fraction]' string. dst must have length 4.
func parseClock(s string, dst []int) (err error) {
	clock, fraction, hasFraction := strings.Cut(s, ".")
	fields := strings.SplitN(clock, ":", 3)
	if len(fields) != 3 {
		return errMalformedTemporal(s)
	}
	for i, f := range fields {
		if dst[i], err = parseDigits(f); err != nil {
			return err
		}
	}
	if hasFraction {
		if dst[3], err = parseNanos(fraction); err != nil {
			return err
		}
	}

	return nil
}

// parseNanos converts a fractional-second field of up to 9 digits to
// nanoseconds, right-padding shorter fields.
func parseNanos(fraction string) (int, error) {
	if len(fraction) > 9 {
		return 0, errMalformedTemporal(fraction)
	}
	n, err := parseDigits(fraction)
	if err != nil {
		return 0, err
	}
	for i := len(fraction); i < 9; i++ {
		n *= 10
	}

	return n, nil
}

// parseDigits is strconv.Atoi restricted to unsigned decimal fields, so
// stray signs inside a literal are rejected.
func parseDigits(s string) (int, error) {
	if s == "" {
		return 0, errMalformedTemporal(s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, errMalformedTemporal(s)
		}
	}

	return strconv.Atoi(s)
}

func errMalformedTemporal(s string) error {
	return xerrors.WithStackTrace(fmt.Errorf("cannot parse '%s' as a temporal value", s))
}
