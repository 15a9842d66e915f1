package openssl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cruciblehq/opensslpack/internal/paths"
	"github.com/cruciblehq/opensslpack/internal/process"
	"github.com/cruciblehq/opensslpack/internal/vcenv"
)

// Name of the build subdirectory holding the configured source copy.
const buildDirName = "build"

// OpenSSL Configure targets by triple.
var configureTargets = map[string]string{
	"x86_64-pc-windows-msvc":   "VC-WIN64A",
	"aarch64-pc-windows-msvc":  "VC-WIN64-ARM",
	"x86_64-uwp-windows-msvc":  "VC-WIN64A-UWP",
	"aarch64-uwp-windows-msvc": "VC-WIN64-ARM-UWP",
}

// Features disabled in every build. The archive ships static libraries and
// headers for embedding, not a general-purpose OpenSSL installation.
var configureOptions = []string{
	"no-dso",
	"no-shared",
	"no-ssl3",
	"no-comp",
	"no-zlib",
	"no-unit-test",
	"no-weak-ssl-ciphers",
}

// Parameters for one target build.
type Request struct {
	Triple string        // Target triple.
	OutDir string        // Build output directory; results are installed under OutDir/install.
	Env    vcenv.Environ // Complete environment for every build step.
}

// Builds OpenSSL for one target.
type Builder interface {
	Build(ctx context.Context, req Request) error
}

// Returns the OpenSSL Configure target for a triple.
func ConfigureTarget(triple string) (string, error) {
	t, ok := configureTargets[triple]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedTriple, triple)
	}
	return t, nil
}

// Builds OpenSSL from a source checkout.
type Source struct {
	Dir    string         // OpenSSL source checkout.
	Runner process.Runner // Runs the build steps.
	Shell  []string       // Command prefix for each step. Nil runs steps directly.
	Output io.Writer      // Receives build output as it is produced. Optional.
}

// Default command prefix for build steps on Windows.
//
// Steps go through cmd.exe so that perl and nmake are found on the PATH of
// the toolchain environment rather than the PATH of this process.
var DefaultShell = []string{"cmd.exe", "/D", "/C"}

// Configures, compiles and installs OpenSSL for one target.
//
// Any previous build and install directories for the target are removed
// first. The install
// tree is left at <OutDir>/install.
func (s *Source) Build(ctx context.Context, req Request) error {
	if s.Dir == "" {
		return ErrMissingSource
	}

	configureTarget, err := ConfigureTarget(req.Triple)
	if err != nil {
		return err
	}

	buildDir := filepath.Join(req.OutDir, buildDirName)
	installDir := paths.InstallDir(req.OutDir)

	slog.Info("building openssl", "target", req.Triple, "configure", configureTarget, "dir", buildDir)

	if err := s.prepare(buildDir, installDir); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrBuild, req.Triple, err)
	}

	configure := append([]string{"perl", "Configure", configureTarget}, configureOptions...)
	configure = append(configure,
		"--prefix="+installDir,
		"--openssldir="+filepath.Join(installDir, "ssl"),
	)

	steps := [][]string{
		configure,
		{"nmake"},
		{"nmake", "install_sw"},
	}

	for _, step := range steps {
		if err := s.run(ctx, req, buildDir, step); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrBuild, req.Triple, err)
		}
	}

	return nil
}

// Removes any previous build and install output, then replaces the build
// directory with a fresh copy of the source tree.
func (s *Source) prepare(buildDir, installDir string) error {
	for _, dir := range []string{buildDir, installDir} {
		if err := os.RemoveAll(dir); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(buildDir), paths.DefaultDirMode); err != nil {
		return err
	}
	return os.CopyFS(buildDir, os.DirFS(s.Dir))
}

// Runs one build step, failing on a non-zero exit code.
func (s *Source) run(ctx context.Context, req Request, dir string, argv []string) error {
	argv = append(append([]string(nil), s.Shell...), argv...)

	cmd := process.Command{
		Path:   argv[0],
		Args:   argv[1:],
		Env:    req.Env.Slice(),
		Dir:    dir,
		Stdout: s.Output,
		Stderr: s.Output,
	}

	slog.Debug("running build step", "target", req.Triple, "command", cmd.String())

	result, err := s.Runner.Run(ctx, cmd)
	if err != nil {
		return err
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("%q exited with code %d: %s", cmd.String(), result.ExitCode, lastLines(result.Stderr, 20))
	}
	return nil
}

// Returns at most the last n lines of s.
func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\r\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
