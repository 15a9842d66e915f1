package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cruciblehq/opensslpack/internal/target"
)

// Represents the 'opensslpack targets' command.
type TargetsCmd struct{}

// Executes the targets command.
func (c *TargetsCmd) Run(ctx context.Context) error {
	return printTargets(os.Stdout, target.All())
}

// Writes one row per target, in archive order.
func printTargets(w io.Writer, targets []target.Target) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TRIPLE\tSUBDIR\tUWP\tTOOLCHAIN")
	for _, t := range targets {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.Triple, t.Subdir, yesNo(t.UWP()), strings.Join(t.ToolchainArgs, " "))
	}
	return tw.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
