package executor

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strings"
	"testing"
)

func TestExecute(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	tests := []struct {
		name       string
		args       []string
		wantOut    string
		wantErr    bool
		errContain string
	}{
		{"stdout is returned", []string{"-c", "echo hello"}, "hello\n", false, ""},
		{"non-zero exit", []string{"-c", "exit 3"}, "", true, "exit status 3"},
		{"stderr is attached", []string{"-c", "echo broken >&2; exit 1"}, "", true, "exit status 1: broken"},
	}

	ex := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ex.Execute(context.Background(), "sh", tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			if out != tt.wantOut {
				t.Errorf("Execute() = %q, want %q", out, tt.wantOut)
			}
			if tt.errContain != "" && !strings.Contains(err.Error(), tt.errContain) {
				t.Errorf("error %q should contain %q", err.Error(), tt.errContain)
			}
		})
	}
}

func TestLookPathMissing(t *testing.T) {
	if _, err := New().LookPath("definitely-not-a-real-binary-xyz"); err == nil {
		t.Error("LookPath() should fail for a missing binary")
	}
}

func TestTail(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"a\nb\nc\nd", 2, "c | d"},
		{"a\nb", 10, "a | b"},
		{"banner\n\n  error line  \n", 3, "banner | error line"},
		{"", 3, ""},
	}

	for _, tt := range tests {
		if got := tail(tt.in, tt.n); got != tt.want {
			t.Errorf("tail(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestCommandError(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	_, err := New().Execute(context.Background(), "sh", "-c", "echo oops >&2; exit 2")

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("error %v is not a *CommandError", err)
	}
	if cmdErr.Name != "sh" || cmdErr.Stderr != "oops" {
		t.Errorf("CommandError = %+v", cmdErr)
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 2 {
		t.Errorf("CommandError should unwrap to the exit status, got %v", err)
	}
}
