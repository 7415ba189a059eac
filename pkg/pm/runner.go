package pm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
)

// CommandRunner executes external commands. Run wires the subprocess to
// the controlling terminal so the operator sees its output directly;
// Output captures stdout for commands whose output we parse.
type CommandRunner interface {
	Run(ctx context.Context, dir string, name string, args ...string) error
	Output(ctx context.Context, dir string, name string, args ...string) ([]byte, error)
}

// ExecRunner is the real CommandRunner backed by os/exec.
type ExecRunner struct{}

// Run executes a command with stdio inherited from the current process.
func (ExecRunner) Run(ctx context.Context, dir string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	slog.Debug("running command", "cmd", cmd.String(), "dir", dir)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return nil
}

// Output executes a command and returns its stdout. On failure the
// subprocess stderr is folded into the error.
func (ExecRunner) Output(ctx context.Context, dir string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	slog.Debug("running command", "cmd", cmd.String(), "dir", dir)

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("%s failed: %w\nstderr: %s", name, err, exitErr.Stderr)
		}
		return nil, fmt.Errorf("%s failed: %w", name, err)
	}

	slog.Debug("command output", "cmd", name, "bytes", len(output))
	return output, nil
}
