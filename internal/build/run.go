package build

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cruciblehq/opensslpack/internal/archive"
	"github.com/cruciblehq/opensslpack/internal/openssl"
	"github.com/cruciblehq/opensslpack/internal/paths"
	"github.com/cruciblehq/opensslpack/internal/target"
	"golang.org/x/sync/errgroup"
)

// Holds shared state for one packaging run.
type run struct {
	targets     []target.Target
	workDir     string
	jobs        int
	provisioner Provisioner
	builder     openssl.Builder
	archive     *archive.Writer // Shared by every target; written from one goroutine only.
	packaged    []string        // Triples added to the archive so far.
}

// Creates a new [run] from the given options.
func newRun(opts Options, w *archive.Writer) *run {
	return &run{
		targets:     opts.Targets,
		workDir:     opts.WorkDir,
		jobs:        opts.Jobs,
		provisioner: opts.Provisioner,
		builder:     opts.Builder,
		archive:     w,
	}
}

// Builds and packages every target.
func (r *run) execute(ctx context.Context) error {
	if r.jobs > 1 {
		return r.executeParallel(ctx)
	}

	for _, t := range r.targets {
		if err := r.build(ctx, t); err != nil {
			return err
		}
		if err := r.pack(t); err != nil {
			return err
		}
	}
	return nil
}

// Builds up to r.jobs targets at once, then packages them in list order.
//
// The first failing build cancels the context seen by the others.
func (r *run) executeParallel(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.jobs)

	for _, t := range r.targets {
		g.Go(func() error {
			return r.build(gctx, t)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, t := range r.targets {
		if err := r.pack(t); err != nil {
			return err
		}
	}
	return nil
}

// Captures the toolchain environment for a target and builds OpenSSL with
// it.
func (r *run) build(ctx context.Context, t target.Target) error {
	slog.Info("building target", "target", t.Triple, "subdir", t.Subdir, "toolchain", t.ToolchainArgs)

	env, err := r.provisioner.Provision(ctx, t.Triple, t.ToolchainArgs)
	if err != nil {
		return fmt.Errorf("%w: target %s: %w", ErrBuild, t.Triple, err)
	}

	req := openssl.Request{
		Triple: t.Triple,
		OutDir: paths.BuildDir(r.workDir, t.Triple),
		Env:    env,
	}
	if err := r.builder.Build(ctx, req); err != nil {
		return fmt.Errorf("%w: target %s: %w", ErrBuild, t.Triple, err)
	}

	return nil
}

// Adds a target's install tree to the archive under its subdirectory.
func (r *run) pack(t target.Target) error {
	install := paths.InstallDir(paths.BuildDir(r.workDir, t.Triple))

	slog.Info("packaging target", "target", t.Triple, "install", install)

	if err := r.archive.AddDir(t.Subdir); err != nil {
		return fmt.Errorf("%w: target %s: %w", ErrBuild, t.Triple, err)
	}
	if err := r.archive.AddTree(install, t.Subdir); err != nil {
		return fmt.Errorf("%w: target %s: %w", ErrBuild, t.Triple, err)
	}

	r.packaged = append(r.packaged, t.Triple)
	return nil
}
