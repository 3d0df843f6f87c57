package xerrors

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithStackTrace(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		require.NoError(t, WithStackTrace(nil))
	})
	t.Run("Record", func(t *testing.T) {
		err := WithStackTrace(errors.New("fail"))
		require.Contains(t, err.Error(), "fail at `xerrors.TestWithStackTrace")
		require.Contains(t, err.Error(), "stacktrace_test.go:")
	})
	t.Run("Unwrap", func(t *testing.T) {
		err := WithStackTrace(fmt.Errorf("read: %w", io.ErrUnexpectedEOF))
		require.True(t, Is(err, io.ErrUnexpectedEOF))
	})
}
