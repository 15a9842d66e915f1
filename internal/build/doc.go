// Package build produces the OpenSSL archive for a list of targets.
//
// For every target, in list order, [Run] captures the MSVC toolchain
// environment, builds OpenSSL into a deterministic per-target directory and
// adds the resulting install tree to a shared zip archive under the target's
// subdirectory. The archive is finalized once after the last target and a
// sha256 checksum file is written next to it.
//
// The run stops at the first error. The archive file is then left on disk
// without a central directory, so a failed run never produces a readable
// archive.
//
// With Jobs greater than one, environment capture and compilation run
// concurrently across targets. Each target receives its own environment
// snapshot. Packaging still happens afterwards, in list order, so the
// archive layout does not depend on Jobs.
//
// Example usage:
//
//	result, err := build.Run(ctx, build.Options{
//	    Targets:     target.All(),
//	    WorkDir:     ".",
//	    Output:      "openssl-3.1.2-vs2017.zip",
//	    Root:        "openssl-3.1.2-vs2017",
//	    Provisioner: provisioner,
//	    Builder:     &openssl.Source{Dir: "openssl-3.1.2", Runner: process.Host{}},
//	})
//	if err != nil {
//	    return err
//	}
package build
