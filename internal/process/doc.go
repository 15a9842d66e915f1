// Package process runs external programs on the host.
//
// A [Runner] executes a [Command] to completion and returns an [ExecResult]
// carrying the exit code and the captured output. A non-zero exit code is
// not an error at this layer; callers decide what a failing exit means.
// Errors are reserved for programs that could not be started or waited on.
//
// The [Host] runner resolves programs with golang.org/x/sys/execabs, which
// refuses to run a binary found through a relative PATH entry. Programs
// named with an explicit relative path (such as "src/vcvars.bat") are still
// allowed.
//
// Example usage:
//
//	result, err := process.Host{}.Run(ctx, process.Command{
//	    Path: filepath.Join("src", "vcvars.bat"),
//	    Args: []string{"x64"},
//	    Env:  env.Slice(),
//	})
//	if err != nil {
//	    return err
//	}
//	if result.ExitCode != 0 {
//	    return fmt.Errorf("exit code %d: %s", result.ExitCode, result.Stderr)
//	}
package process
