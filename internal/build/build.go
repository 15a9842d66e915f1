package build

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cruciblehq/opensslpack/internal/archive"
	"github.com/cruciblehq/opensslpack/internal/openssl"
	"github.com/cruciblehq/opensslpack/internal/paths"
	"github.com/cruciblehq/opensslpack/internal/target"
	"github.com/cruciblehq/opensslpack/internal/vcenv"
	"github.com/opencontainers/go-digest"
)

// Captures the toolchain environment for a target.
type Provisioner interface {
	Provision(ctx context.Context, triple string, args []string) (vcenv.Environ, error)
}

// Controls a packaging run.
type Options struct {
	Targets     []target.Target             // Targets to build, in archive order.
	WorkDir     string                      // Directory holding openssl-build/<triple> for each target.
	Output      string                      // Path of the archive to write.
	Root        string                      // Top-level directory inside the archive. May be empty.
	Jobs        int                         // Maximum targets built at once. Values below 2 build sequentially.
	Lookup      func(string) (string, bool) // Configuration lookup for VCVARSALL_PATH. Defaults to os.LookupEnv.
	Provisioner Provisioner                 // Captures each target's toolchain environment.
	Builder     openssl.Builder             // Builds OpenSSL for each target.
}

// Returned after a successful run.
type Result struct {
	Archive  string        // Path of the finalized archive.
	Checksum string        // Path of the checksum file next to the archive.
	Digest   digest.Digest // Content digest of the archive.
	Entries  int           // Number of entries written to the archive.
	Targets  []string      // Triples packaged, in archive order.
}

// Builds every target and packages the install trees into one archive.
//
// The target list and the vcvarsall.bat configuration are checked before
// anything is built. The first failure aborts the run.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if err := target.Validate(opts.Targets); err != nil {
		return nil, err
	}

	lookup := opts.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if err := vcenv.RequireVCVarsAll(lookup); err != nil {
		return nil, err
	}

	slog.Info("packaging openssl",
		"output", opts.Output,
		"targets", len(opts.Targets),
		"jobs", max(opts.Jobs, 1),
	)

	if err := os.MkdirAll(filepath.Dir(opts.Output), paths.DefaultDirMode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	w, err := archive.Create(opts.Output, opts.Root)
	if err != nil {
		return nil, err
	}

	r := newRun(opts, w)
	if err := r.execute(ctx); err != nil {
		if abortErr := w.Abort(); abortErr != nil {
			slog.Warn("failed to release partial archive", "path", opts.Output, "error", abortErr)
		}
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return finish(opts.Output, len(w.Entries()), r.packaged)
}

// Computes the archive digest and writes the checksum file.
func finish(output string, entries int, packaged []string) (*Result, error) {
	d, err := archive.Digest(output)
	if err != nil {
		return nil, err
	}

	checksum, err := archive.WriteChecksum(output, d)
	if err != nil {
		return nil, err
	}

	slog.Info("archive written", "path", output, "entries", entries, "digest", d.String())

	return &Result{
		Archive:  output,
		Checksum: checksum,
		Digest:   d,
		Entries:  entries,
		Targets:  packaged,
	}, nil
}
