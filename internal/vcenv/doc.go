// Package vcenv captures the MSVC toolchain environment for a build target.
//
// Visual Studio exposes its compiler, linker, include and library paths
// through vcvarsall.bat, which modifies the environment of the cmd.exe that
// runs it. A small wrapper script (src/vcvars.bat) calls vcvarsall.bat with
// the target's toolchain selector arguments and then prints the resulting
// environment with "set", one NAME=VALUE per line. The [Provisioner] runs
// that script and parses its output into an [Environ].
//
// An [Environ] is an immutable snapshot. Each target is provisioned from the
// same base snapshot and the result is handed to the build step directly,
// so variables set for one target never leak into the next and the process
// environment is left untouched.
//
// Example usage:
//
//	p := &vcenv.Provisioner{
//	    Script: filepath.Join("src", "vcvars.bat"),
//	    Runner: process.Host{},
//	    Base:   vcenv.FromSlice(os.Environ()),
//	}
//
//	env, err := p.Provision(ctx, "aarch64-pc-windows-msvc", []string{"x64_arm64"})
//	if err != nil {
//	    return err
//	}
//	cmd.Env = env.Slice()
package vcenv
