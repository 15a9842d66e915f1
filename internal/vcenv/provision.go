package vcenv

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/cruciblehq/opensslpack/internal/process"
	"github.com/cruciblehq/opensslpack/internal/target"
)

const (

	// Variable naming the vcvarsall.bat the environment script calls.
	VCVarsAllVar = "VCVARSALL_PATH"

	// Variable holding the triple of the build machine.
	HostVar = "HOST"
)

// Location of the environment script, relative to the working directory.
var DefaultScript = filepath.Join("src", "vcvars.bat")

// Checks that the path to vcvarsall.bat is configured.
//
// The environment script reads it on every call, so the check is made once
// up front instead of failing inside the first target's build.
func RequireVCVarsAll(lookup func(string) (string, bool)) error {
	if v, ok := lookup(VCVarsAllVar); !ok || strings.TrimSpace(v) == "" {
		return ErrMissingVCVarsAll
	}
	return nil
}

// Captures the toolchain environment for targets.
type Provisioner struct {
	Script string         // Environment script. Empty uses [DefaultScript].
	Runner process.Runner // Runs the script.
	Base   Environ        // Environment every target starts from.
}

// Returns the toolchain environment for a target.
//
// The script runs with the base environment plus HOST set to the build
// machine's triple and receives args verbatim. Its stdout is parsed with
// [Parse] and overlaid on that same environment. The result is independent
// of any other target provisioned by p.
func (p *Provisioner) Provision(ctx context.Context, triple string, args []string) (Environ, error) {
	script := p.Script
	if script == "" {
		script = DefaultScript
	}

	env := p.Base.Set(HostVar, target.HostTriple)

	slog.Debug("provisioning toolchain environment", "target", triple, "script", script, "args", args)

	result, err := p.Runner.Run(ctx, process.Command{
		Path: script,
		Args: args,
		Env:  env.Slice(),
	})
	if err != nil {
		return Environ{}, fmt.Errorf("%w: %s: %w", ErrScriptFailed, triple, err)
	}
	if result.ExitCode != 0 {
		return Environ{}, fmt.Errorf("%w: %s: exit code %d: %s", ErrScriptFailed, triple, result.ExitCode, strings.TrimSpace(result.Stderr))
	}

	captured := Parse(result.Stdout)
	slog.Debug("captured toolchain environment", "target", triple, "variables", captured.Len())

	return env.With(captured), nil
}
