package render

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Executor abstracts command execution for testability. stdin is fed to the
// process when non-empty; combined output is returned for diagnostics.
type Executor interface {
	Run(ctx context.Context, binary string, args []string, stdin string) ([]byte, error)
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string, stdin string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	output, err := cmd.CombinedOutput()
	if err != nil {
		detail := strings.TrimSpace(string(output))
		if detail != "" {
			return output, fmt.Errorf("%s: %w: %s", binary, err, truncate(detail, 512))
		}
		return output, fmt.Errorf("%s: %w", binary, err)
	}
	return output, nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
