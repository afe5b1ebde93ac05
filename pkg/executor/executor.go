package executor

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// stderrTailLines is how much tool output is kept in a CommandError
const stderrTailLines = 3

// CommandError is returned when a command exits unsuccessfully.
type CommandError struct {
	Name   string
	Err    error
	Stderr string
}

func (e *CommandError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("command '%s' failed: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("command '%s' failed: %v: %s", e.Name, e.Err, e.Stderr)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

type implExecutor struct{}

// New creates a new Executor instance
func New() Executor {
	return &implExecutor{}
}

// Execute runs name with args and returns its stdout.
func (e *implExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &CommandError{
			Name:   name,
			Err:    err,
			Stderr: tail(stderr.String(), stderrTailLines),
		}
	}

	return stdout.String(), nil
}

func (e *implExecutor) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// tail keeps the last n non-empty lines joined on one line; ffmpeg prints its banner first
func tail(s string, n int) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, " | ")
}
