package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/cruciblehq/opensslpack/internal"
	"github.com/cruciblehq/opensslpack/internal/paths"
)

// Represents the root command for opensslpack.
var RootCmd struct {
	Quiet   bool       `short:"q" help:"Suppress informational output."`
	Verbose bool       `short:"v" help:"Enable verbose output."`
	Debug   bool       `short:"d" help:"Enable debug output."`
	Config  string     `short:"c" help:"Read settings from this YAML file (default: ${config_file})." placeholder:"PATH"`
	Build   BuildCmd   `cmd:"" help:"Build OpenSSL for every target and package the results."`
	Targets TargetsCmd `cmd:"" help:"List the supported targets."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// Parses arguments, configures logging, and runs the selected subcommand.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kongCtx := kong.Parse(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("Cross-compiles OpenSSL with MSVC for every Windows target and packages the results into one zip archive."),
		kong.UsageOnError(),
		vars(),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	configureLogger()

	return kongCtx.Run()
}

// Returns the variables interpolated into flag help.
func vars() kong.Vars {
	return kong.Vars{
		"version":     internal.VersionString(),
		"config_file": paths.ConfigFile(),
	}
}

// Applies the output flags and replaces the global logger.
//
// Flags can only enable a mode; modes enabled at link time stay enabled.
func configureLogger() {
	internal.SetDebug(RootCmd.Debug || internal.IsDebug())
	internal.SetQuiet(RootCmd.Quiet || internal.IsQuiet())
	internal.SetVerbose(RootCmd.Verbose || internal.IsVerbose())

	slog.SetDefault(internal.NewLogger(os.Stderr))
}
