package installer

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Runner executes a system command, possibly with elevated privileges.
// The installer performs all mutating system operations through this
// interface so tests can substitute a fake.
type Runner interface {
	// Run executes the command and returns its combined output
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// SudoRunner executes commands through sudo in non-interactive mode.
// The -n flag makes a missing cached credential fail immediately instead
// of prompting, so callers get a clean error rather than a hung process.
// When the process is already root, sudo is skipped entirely.
type SudoRunner struct{}

func (SudoRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	var cmd *exec.Cmd
	if os.Geteuid() == 0 {
		cmd = exec.CommandContext(ctx, name, args...)
	} else {
		cmd = exec.CommandContext(ctx, "sudo", append([]string{"-n", "--", name}, args...)...)
	}

	out, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return out, fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return out, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}
