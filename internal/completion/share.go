package completion

import (
	"context"
	"strings"

	"github.com/NikitaCOEUR/vicmd/internal/derrors"
)

// SMBClient enumerates the disk shares of a server with smbclient
type SMBClient struct {
	// Tool is the program to run, "smbclient" when empty
	Tool string
}

// Shares implements ShareEnumerator. Only disk shares are reported.
func (s SMBClient) Shares(server string) ([]string, error) {
	tool := s.Tool
	if tool == "" {
		tool = "smbclient"
	}

	ctx, cancel := context.WithTimeout(context.Background(), DefaultCommandTimeout)
	defer cancel()

	output, err := execWithTimeout(ctx, tool, "-g", "-N", "-L", server)
	if err != nil {
		return nil, derrors.NewExecutionError(tool, "failed to list shares of "+server, err)
	}

	return parseShareList(output), nil
}

// parseShareList reads smbclient's grepable "Type|Name|Comment" lines
func parseShareList(output []byte) []string {
	shares := []string{}
	for _, line := range outputLines(output) {
		parts := strings.SplitN(line, "|", 3)
		if len(parts) < 2 || parts[0] != "Disk" || parts[1] == "" {
			continue
		}
		shares = append(shares, parts[1])
	}
	return shares
}
