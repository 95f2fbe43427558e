package completion

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecWithTimeout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on POSIX utilities")
	}

	t.Run("successful command", func(t *testing.T) {
		output, err := execWithTimeout(context.Background(), "echo", "hello", "world")
		require.NoError(t, err)
		assert.Equal(t, "hello world\n", string(output))
	})

	t.Run("command that fails", func(t *testing.T) {
		_, err := execWithTimeout(context.Background(), "false")
		assert.Error(t, err)
	})

	t.Run("command timeout", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		_, err := execWithTimeout(ctx, "sleep", "1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "timeout")
	})

	t.Run("nil context uses default timeout", func(t *testing.T) {
		//nolint:staticcheck // exercising the nil context fallback
		output, err := execWithTimeout(nil, "echo", "test")
		require.NoError(t, err)
		assert.Equal(t, "test\n", string(output))
	})
}

func TestOutputLines(t *testing.T) {
	lines := outputLines([]byte("  first \n\n\tsecond\n   \nthird"))
	assert.Equal(t, []string{"first", "second", "third"}, lines)

	assert.Empty(t, outputLines(nil))
}
