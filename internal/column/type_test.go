package column

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeString(t *testing.T) {
	require.Equal(t, "TIME", Time.String())
	require.Equal(t, "VARSTRING", VarString.String())
	require.Equal(t, "UNKNOWN(200)", Type(200).String())
}

func TestParseType(t *testing.T) {
	for _, tt := range []struct {
		name string
		want Type
	}{
		{"TIME", Time},
		{"time", Time},
		{"Datetime", DateTime},
		{"TIMESTAMP", Timestamp},
		{"varchar", VarChar},
		{"BIGINT", LongLong},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseType(tt.name)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
	t.Run("Unknown", func(t *testing.T) {
		_, err := ParseType("bogus")
		require.Error(t, err)
	})
}
