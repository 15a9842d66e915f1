package target

import (
	"fmt"
	"slices"
	"strings"
)

// Triple of the machine running the build. vcvarsall.bat cross compilers are
// selected relative to this host (e.g. "x64_arm64" is x64 host, arm64 target).
const HostTriple = "x86_64-pc-windows-msvc"

// A single build target.
type Target struct {
	Triple        string   // Target triple, e.g. "aarch64-pc-windows-msvc".
	Subdir        string   // Archive subdirectory, e.g. "arm64-windows".
	ToolchainArgs []string // Arguments passed verbatim to the environment script.
}

// Reports whether the target builds for the Universal Windows Platform.
func (t Target) UWP() bool {
	return slices.Contains(t.ToolchainArgs, "uwp")
}

// Returns the triple, which is how targets are named in logs.
func (t Target) String() string {
	return t.Triple
}

var all = []Target{
	{Triple: "aarch64-pc-windows-msvc", Subdir: "arm64-windows", ToolchainArgs: []string{"x64_arm64"}},
	{Triple: "x86_64-pc-windows-msvc", Subdir: "x64-windows", ToolchainArgs: []string{"x64"}},
	{Triple: "aarch64-uwp-windows-msvc", Subdir: "arm64-windows-uwp", ToolchainArgs: []string{"x64_arm64", "uwp"}},
	{Triple: "x86_64-uwp-windows-msvc", Subdir: "x64-windows-uwp", ToolchainArgs: []string{"x64", "uwp"}},
}

// Returns a copy of the fixed target list in build order.
func All() []Target {
	out := make([]Target, len(all))
	for i, t := range all {
		t.ToolchainArgs = slices.Clone(t.ToolchainArgs)
		out[i] = t
	}
	return out
}

// Checks that a target list can be built into a single archive.
//
// Triples key the build directories and subdirectories key the archive
// layout, so both must be non-empty and unique across the list.
func Validate(targets []Target) error {
	if len(targets) == 0 {
		return ErrNoTargets
	}

	triples := make(map[string]bool, len(targets))
	subdirs := make(map[string]bool, len(targets))

	for i, t := range targets {
		if t.Triple == "" {
			return fmt.Errorf("%w: target %d has no triple", ErrInvalidTarget, i+1)
		}
		if t.Subdir == "" {
			return fmt.Errorf("%w: target %s has no archive subdirectory", ErrInvalidTarget, t.Triple)
		}
		if strings.ContainsAny(t.Subdir, `/\`) || t.Subdir == "." || t.Subdir == ".." {
			return fmt.Errorf("%w: archive subdirectory %q must be a single path segment", ErrInvalidTarget, t.Subdir)
		}
		if triples[t.Triple] {
			return fmt.Errorf("%w: duplicate triple %q", ErrInvalidTarget, t.Triple)
		}
		if subdirs[t.Subdir] {
			return fmt.Errorf("%w: duplicate archive subdirectory %q", ErrInvalidTarget, t.Subdir)
		}
		triples[t.Triple] = true
		subdirs[t.Subdir] = true
	}

	return nil
}

// Narrows a target list to the named targets.
//
// Names match either the triple or the archive subdirectory. The order of
// targets is preserved regardless of the order of names. An empty name list
// selects everything.
func Select(targets []Target, names []string) ([]Target, error) {
	if len(names) == 0 {
		return targets, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		if !slices.ContainsFunc(targets, func(t Target) bool { return t.Triple == name || t.Subdir == name }) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, name)
		}
		wanted[name] = true
	}

	var selected []Target
	for _, t := range targets {
		if wanted[t.Triple] || wanted[t.Subdir] {
			selected = append(selected, t)
		}
	}

	return selected, nil
}
