package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cruciblehq/opensslpack/internal"
	"github.com/cruciblehq/opensslpack/internal/archive"
	"github.com/cruciblehq/opensslpack/internal/build"
	"github.com/cruciblehq/opensslpack/internal/openssl"
	"github.com/cruciblehq/opensslpack/internal/process"
	"github.com/cruciblehq/opensslpack/internal/settings"
	"github.com/cruciblehq/opensslpack/internal/target"
	"github.com/cruciblehq/opensslpack/internal/vcenv"
)

// Represents the 'opensslpack build' command.
//
// Fields left empty fall back to the config file and then to the built-in
// defaults.
type BuildCmd struct {
	VCVarsAll string   `name:"vcvarsall" env:"VCVARSALL_PATH" help:"Path to vcvarsall.bat." placeholder:"PATH"`
	Script    string   `name:"vcvars-script" help:"Script that runs vcvarsall.bat and prints the environment (default: src/vcvars.bat)." placeholder:"PATH"`
	Source    string   `env:"OPENSSL_SRC_DIR" help:"OpenSSL source tree." placeholder:"DIR"`
	WorkDir   string   `help:"Directory for per-target build trees (default: current directory)." placeholder:"DIR"`
	Output    string   `help:"Directory the archive is written to (default: current directory)." placeholder:"DIR"`
	Product   string   `help:"Leading part of the archive name (default: openssl)."`
	Toolset   string   `help:"Trailing part of the archive name (default: vs2017)."`
	Version   string   `help:"OpenSSL version for the archive name (default: read from the source tree)."`
	Target    []string `help:"Build only these targets, by triple or subdirectory." placeholder:"NAME"`
	Jobs      int      `short:"j" help:"Maximum targets built at once (default: 1)."`
}

// Executes the build command.
//
// Prints the archive digest and path on success.
func (c *BuildCmd) Run(ctx context.Context) error {
	var output io.Writer
	if internal.IsVerbose() {
		output = os.Stderr
	}

	opts, err := c.options(RootCmd.Config, os.Environ(), process.Host{}, output)
	if err != nil {
		return err
	}

	result, err := build.Run(ctx, opts)
	if err != nil {
		return err
	}

	fmt.Printf("%s  %s\n", result.Digest.Encoded(), result.Archive)
	return nil
}

// Resolves settings and assembles the options for a packaging run.
//
// environ is the environment of this process. The resolved vcvarsall.bat
// path is set in it as VCVARSALL_PATH, and the result is the base for
// every target's toolchain environment.
func (c *BuildCmd) options(configPath string, environ []string, runner process.Runner, output io.Writer) (build.Options, error) {
	s, err := c.settings(configPath)
	if err != nil {
		return build.Options{}, err
	}

	base := vcenv.FromSlice(environ)
	if s.VCVarsAll != "" {
		base = base.Set(vcenv.VCVarsAllVar, s.VCVarsAll)
	}

	// Reading the version touches the source tree, so the vcvarsall.bat
	// check comes first.
	if err := vcenv.RequireVCVarsAll(base.Lookup); err != nil {
		return build.Options{}, err
	}

	targets, err := target.Select(target.All(), c.Target)
	if err != nil {
		return build.Options{}, err
	}

	if s.Source == "" {
		return build.Options{}, openssl.ErrMissingSource
	}

	version := c.Version
	if version == "" {
		if version, err = openssl.Version(s.Source); err != nil {
			return build.Options{}, err
		}
	}

	name := archive.Name(s.Product, version, s.Toolset)

	return build.Options{
		Targets: targets,
		WorkDir: s.WorkDir,
		Output:  filepath.Join(s.Output, name),
		Root:    archive.Root(name),
		Jobs:    s.Jobs,
		Lookup:  base.Lookup,
		Provisioner: &vcenv.Provisioner{
			Script: s.Script,
			Runner: runner,
			Base:   base,
		},
		Builder: &openssl.Source{
			Dir:    s.Source,
			Runner: runner,
			Shell:  openssl.DefaultShell,
			Output: output,
		},
	}, nil
}

// Resolves flag, environment, config file and default values, in that order.
func (c *BuildCmd) settings(configPath string) (settings.Settings, error) {
	file, err := settings.Discover(configPath)
	if err != nil {
		return settings.Settings{}, err
	}

	s := settings.Settings{
		VCVarsAll: c.VCVarsAll,
		Script:    c.Script,
		Source:    c.Source,
		WorkDir:   c.WorkDir,
		Output:    c.Output,
		Product:   c.Product,
		Toolset:   c.Toolset,
		Jobs:      c.Jobs,
	}
	s.Fill(*file)
	s.Fill(settings.Defaults())

	return s, nil
}
