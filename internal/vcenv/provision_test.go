package vcenv

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/containerd/errdefs"
	"github.com/cruciblehq/opensslpack/internal/process"
	"github.com/cruciblehq/opensslpack/internal/target"
	"github.com/google/go-cmp/cmp"
)

// Replays canned results and records every command it receives.
type fakeRunner struct {
	results []*process.ExecResult
	err     error
	calls   []process.Command
}

func (f *fakeRunner) Run(ctx context.Context, cmd process.Command) (*process.ExecResult, error) {
	f.calls = append(f.calls, cmd)
	if f.err != nil {
		return nil, f.err
	}
	r := f.results[0]
	f.results = f.results[1:]
	return r, nil
}

func TestProvision(t *testing.T) {
	runner := &fakeRunner{results: []*process.ExecResult{
		{Stdout: "Setting up environment\r\nINCLUDE=C:\\VC\\include\r\nCL=/DX=1\r\n"},
	}}
	p := &Provisioner{
		Script: "vcvars.bat",
		Runner: runner,
		Base:   FromMap(map[string]string{"VCVARSALL_PATH": `C:\vcvarsall.bat`, "PATH": `C:\Windows`}),
	}

	env, err := p.Provision(context.Background(), "aarch64-pc-windows-msvc", []string{"x64_arm64", "uwp"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"VCVARSALL_PATH": `C:\vcvarsall.bat`,
		"PATH":           `C:\Windows`,
		"HOST":           target.HostTriple,
		"INCLUDE":        `C:\VC\include`,
		"CL":             "/DX=1",
	}
	if diff := cmp.Diff(want, env.Map()); diff != "" {
		t.Fatalf("environment mismatch (-want +got):\n%s", diff)
	}

	if len(runner.calls) != 1 {
		t.Fatalf("script invoked %d times, want 1", len(runner.calls))
	}
	call := runner.calls[0]
	if call.Path != "vcvars.bat" {
		t.Fatalf("script = %q, want vcvars.bat", call.Path)
	}
	if diff := cmp.Diff([]string{"x64_arm64", "uwp"}, call.Args); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
	if got := FromSlice(call.Env).Get(HostVar); got != target.HostTriple {
		t.Fatalf("script saw HOST = %q, want %q", got, target.HostTriple)
	}
}

func TestProvisionDefaultScript(t *testing.T) {
	runner := &fakeRunner{results: []*process.ExecResult{{}}}
	p := &Provisioner{Runner: runner}

	if _, err := p.Provision(context.Background(), "x86_64-pc-windows-msvc", []string{"x64"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if runner.calls[0].Path != DefaultScript {
		t.Fatalf("script = %q, want %q", runner.calls[0].Path, DefaultScript)
	}
}

func TestProvisionIsolatesTargets(t *testing.T) {
	runner := &fakeRunner{results: []*process.ExecResult{
		{Stdout: "ONLY_FIRST=1\nSHARED=first\n"},
		{Stdout: "SHARED=second\n"},
	}}
	p := &Provisioner{Runner: runner, Base: FromMap(map[string]string{"BASE": "b"})}

	first, err := p.Provision(context.Background(), "a", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := p.Provision(context.Background(), "b", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := second.Lookup("ONLY_FIRST"); ok {
		t.Fatal("variable from first target leaked into second")
	}
	if first.Get("SHARED") != "first" || second.Get("SHARED") != "second" {
		t.Fatalf("SHARED = %q / %q, want first / second", first.Get("SHARED"), second.Get("SHARED"))
	}
	if _, ok := FromSlice(runner.calls[1].Env).Lookup("ONLY_FIRST"); ok {
		t.Fatal("second script invocation saw first target's variables")
	}
	if p.Base.Len() != 1 {
		t.Fatalf("base environment modified: %v", p.Base.Slice())
	}
}

func TestProvisionNonZeroExit(t *testing.T) {
	runner := &fakeRunner{results: []*process.ExecResult{
		{ExitCode: 1, Stdout: "A=1\n", Stderr: "vcvarsall.bat not found\n"},
	}}
	p := &Provisioner{Runner: runner}

	_, err := p.Provision(context.Background(), "x86_64-pc-windows-msvc", []string{"x64"})
	if !errors.Is(err, ErrScriptFailed) {
		t.Fatalf("err = %v, want %v", err, ErrScriptFailed)
	}
	if !strings.Contains(err.Error(), "exit code 1") {
		t.Fatalf("err = %q, want exit code in message", err)
	}
	if !strings.Contains(err.Error(), "vcvarsall.bat not found") {
		t.Fatalf("err = %q, want stderr in message", err)
	}
}

func TestProvisionLaunchFailure(t *testing.T) {
	cause := errors.New("file not found")
	p := &Provisioner{Runner: &fakeRunner{err: cause}}

	_, err := p.Provision(context.Background(), "x86_64-pc-windows-msvc", nil)
	if !errors.Is(err, ErrScriptFailed) {
		t.Fatalf("err = %v, want %v", err, ErrScriptFailed)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("err = %v, want cause %v", err, cause)
	}
}

func TestRequireVCVarsAll(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{name: "set", env: map[string]string{VCVarsAllVar: `C:\vcvarsall.bat`}},
		{name: "unset", env: map[string]string{}, wantErr: true},
		{name: "blank", env: map[string]string{VCVarsAllVar: "  "}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireVCVarsAll(FromMap(tt.env).Lookup)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrMissingVCVarsAll) {
				t.Fatalf("err = %v, want %v", err, ErrMissingVCVarsAll)
			}
			if !errdefs.IsFailedPrecondition(err) {
				t.Fatalf("err = %v, want failed precondition", err)
			}
		})
	}
}
