// Parses flags and runs opensslpack commands.
//
// Global flags:
//
//	-q, --quiet     Suppress informational output.
//	-v, --verbose   Enable verbose output, including build tool output.
//	-d, --debug     Enable debug output.
//	-c, --config    YAML settings file.
//
// Commands:
//
//	build     Build OpenSSL for every target and package the results.
//	targets   List the supported targets.
//	version   Show version information.
//
// Flags override build-time defaults set via linker flags. After parsing, the
// global logger is rebuilt to reflect the final level and verbosity before
// the command runs.
package cli
