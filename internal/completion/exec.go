package completion

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const (
	// DefaultCommandTimeout bounds helper programs run during completion
	DefaultCommandTimeout = 3 * time.Second
	// MaxOutputSize is the maximum size of helper output (1MB)
	MaxOutputSize = 1024 * 1024
)

// execWithTimeout runs a helper program and returns its standard output.
// A nil context gets DefaultCommandTimeout so completion never hangs.
func execWithTimeout(ctx context.Context, tool string, args ...string) ([]byte, error) {
	if ctx == nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, tool, args...)
	output, err := cmd.Output()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("command timeout after %v: %w", DefaultCommandTimeout, err)
		}
		return nil, err
	}

	if len(output) > MaxOutputSize {
		return output[:MaxOutputSize], nil
	}

	return output, nil
}

// outputLines splits helper output into trimmed, non-empty lines
func outputLines(output []byte) []string {
	lines := []string{}

	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	return lines
}
