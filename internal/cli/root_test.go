package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/cruciblehq/opensslpack/internal/paths"
	"github.com/google/go-cmp/cmp"
)

func parse(t *testing.T, args ...string) *kong.Context {
	t.Helper()
	parser, err := kong.New(&RootCmd, vars())
	if err != nil {
		t.Fatalf("kong.New: %v", err)
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return ctx
}

func TestParseBuildFlags(t *testing.T) {
	t.Setenv("VCVARSALL_PATH", `C:\env\vcvarsall.bat`)
	t.Setenv("OPENSSL_SRC_DIR", `C:\src\openssl`)

	ctx := parse(t, "-d", "-c", "custom.yaml", "build",
		"--target", "x64-windows", "--target", "arm64-windows",
		"-j", "2", "--toolset", "vs2022")

	if ctx.Command() != "build" {
		t.Fatalf("command = %q, want build", ctx.Command())
	}
	if !RootCmd.Debug || RootCmd.Config != "custom.yaml" {
		t.Fatalf("global flags not parsed: debug=%v config=%q", RootCmd.Debug, RootCmd.Config)
	}

	b := RootCmd.Build
	if b.VCVarsAll != `C:\env\vcvarsall.bat` {
		t.Fatalf("VCVarsAll = %q, want the environment value", b.VCVarsAll)
	}
	if b.Source != `C:\src\openssl` {
		t.Fatalf("Source = %q, want the environment value", b.Source)
	}
	if b.Jobs != 2 || b.Toolset != "vs2022" {
		t.Fatalf("Jobs = %d, Toolset = %q", b.Jobs, b.Toolset)
	}
	if diff := cmp.Diff([]string{"x64-windows", "arm64-windows"}, b.Target); diff != "" {
		t.Fatalf("targets mismatch (-want +got):\n%s", diff)
	}
	if b.Product != "" || b.Output != "" {
		t.Fatalf("unset flags must stay empty for config fallback: product=%q output=%q", b.Product, b.Output)
	}
}

func TestParseFlagOverridesEnv(t *testing.T) {
	t.Setenv("VCVARSALL_PATH", `C:\env\vcvarsall.bat`)

	parse(t, "build", "--vcvarsall", `C:\flag\vcvarsall.bat`)

	if got := RootCmd.Build.VCVarsAll; got != `C:\flag\vcvarsall.bat` {
		t.Fatalf("VCVarsAll = %q, want the flag value", got)
	}
}

func TestParseCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"targets"}, want: "targets"},
		{args: []string{"version"}, want: "version"},
		{args: []string{"-q", "build"}, want: "build"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := parse(t, tt.args...).Command(); got != tt.want {
				t.Fatalf("command = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigHelpNamesDefaultFile(t *testing.T) {
	parser, err := kong.New(&RootCmd, vars())
	if err != nil {
		t.Fatalf("kong.New: %v", err)
	}

	for _, flag := range parser.Model.Flags {
		if flag.Name == "config" {
			if !strings.Contains(flag.Help, paths.ConfigFile()) {
				t.Fatalf("config help = %q, want it to name %s", flag.Help, paths.ConfigFile())
			}
			return
		}
	}
	t.Fatal("no --config flag")
}
