package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	for _, tt := range []struct {
		name  string
		value string
		parts [7]int
	}{
		{
			name:  "Full",
			value: "2024-01-03 04:05:06",
			parts: [7]int{2024, 1, 3, 4, 5, 6, 0},
		},
		{
			name:  "Fraction",
			value: "1999-12-31 23:59:59.999999",
			parts: [7]int{1999, 12, 31, 23, 59, 59, 999999000},
		},
		{
			name:  "DateOnly",
			value: "2024-01-03",
			parts: [7]int{2024, 1, 3, 0, 0, 0, 0},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			parts, ok, err := parseDateTime(tt.value)
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, tt.parts, parts)
		})
	}

	t.Run("ZeroDate", func(t *testing.T) {
		for _, value := range []string{"0000-00-00 00:00:00", "0000-00-00", ""} {
			_, ok, err := parseDateTime(value)
			require.NoError(t, err)
			require.False(t, ok)
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		for _, value := range []string{
			"2024/01/03",
			"2024-01",
			"2024-01-03 04:05",
			"2024-01-03 04:05:06.0000000001",
			"not a date",
		} {
			_, _, err := parseDateTime(value)
			require.Error(t, err, value)
		}
	})
}

func TestParseTime(t *testing.T) {
	for _, tt := range []struct {
		name  string
		value string
		parts [5]int
	}{
		{
			name:  "Plain",
			value: "10:30:00",
			parts: [5]int{1, 10, 30, 0, 0},
		},
		{
			name:  "Negative",
			value: "-10:30:00",
			parts: [5]int{-1, 10, 30, 0, 0},
		},
		{
			name:  "Fraction",
			value: "0:00:01.5",
			parts: [5]int{1, 0, 0, 1, 500000000},
		},
		{
			name:  "ExtendedHours",
			value: "838:59:59.999999",
			parts: [5]int{1, 838, 59, 59, 999999000},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			parts, err := parseTime(tt.value)
			require.NoError(t, err)
			require.Equal(t, tt.parts, parts)
		})
	}

	t.Run("Malformed", func(t *testing.T) {
		for _, value := range []string{
			"",
			"-",
			"10:30",
			"10:-30:00",
			"10:30:00.",
			"1h30m",
		} {
			_, err := parseTime(value)
			require.Error(t, err, value)
		}
	})
}
