package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"golang.org/x/sys/execabs"
)

// Describes a program invocation.
type Command struct {
	Path   string    // Program to run.
	Args   []string  // Arguments, not including the program itself.
	Env    []string  // Complete environment as "NAME=VALUE". Nil inherits the current process environment.
	Dir    string    // Working directory. Empty uses the current directory.
	Stdout io.Writer // Receives a copy of stdout in addition to the captured result. Optional.
	Stderr io.Writer // Receives a copy of stderr in addition to the captured result. Optional.
}

// Returns the command line for logging.
func (c Command) String() string {
	return strings.Join(append([]string{c.Path}, c.Args...), " ")
}

// Output of a finished program.
type ExecResult struct {
	ExitCode int    // Exit code of the process.
	Stdout   string // Captured standard output.
	Stderr   string // Captured standard error.
}

// Runs commands to completion.
type Runner interface {
	Run(ctx context.Context, cmd Command) (*ExecResult, error)
}

// Runs commands as child processes of the current process.
type Host struct{}

// Runs the command and blocks until it exits.
//
// Output is captured in full. The process is killed if ctx is cancelled.
func (Host) Run(ctx context.Context, c Command) (*ExecResult, error) {
	cmd := execabs.CommandContext(ctx, c.Path, c.Args...)
	cmd.Env = c.Env
	cmd.Dir = c.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = tee(&stdout, c.Stdout)
	cmd.Stderr = tee(&stderr, c.Stderr)

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrStart, c.Path, err)
	}

	exitCode := 0
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("%w: %s: %w", ErrWait, c.Path, err)
		}
		exitCode = exitErr.ExitCode()
	}

	return &ExecResult{
		ExitCode: exitCode,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}, nil
}

// Duplicates writes to an optional second writer.
func tee(capture *bytes.Buffer, extra io.Writer) io.Writer {
	if extra == nil {
		return capture
	}
	return io.MultiWriter(capture, extra)
}
