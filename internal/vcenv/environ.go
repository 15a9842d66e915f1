package vcenv

import (
	"maps"
	"os"
	"runtime"
	"slices"
	"strings"
)

// Whether names that differ only in case refer to the same variable, as they
// do on Windows.
var foldCase = runtime.GOOS == "windows"

// Immutable set of environment variables.
//
// The zero value is an empty environment. On Windows, names are matched
// without regard to case and the most recently set spelling is kept, so a
// "PATH" printed by the environment script replaces an inherited "Path".
type Environ struct {
	vars map[string]string
}

// Sets name in vars, first dropping any other spelling of the same name.
func put(vars map[string]string, name, value string) {
	if foldCase {
		for k := range vars {
			if k != name && strings.EqualFold(k, name) {
				delete(vars, k)
			}
		}
	}
	vars[name] = value
}

// Builds an [Environ] from "NAME=VALUE" entries, such as [os.Environ].
//
// Entries are applied in order, so a later entry overrides an earlier one
// with the same name. Entries without "=" or with an empty name are ignored.
func FromSlice(entries []string) Environ {
	vars := make(map[string]string, len(entries))
	for _, entry := range entries {
		if name, value, ok := cutEntry(entry); ok {
			put(vars, name, value)
		}
	}
	return Environ{vars: vars}
}

// Builds an [Environ] from a map. The map is copied.
//
// On Windows, when the map holds several spellings of one name, the one
// that sorts last is kept.
func FromMap(m map[string]string) Environ {
	vars := make(map[string]string, len(m))
	for _, name := range slices.Sorted(maps.Keys(m)) {
		put(vars, name, m[name])
	}
	return Environ{vars: vars}
}

// Parses the output of the environment script.
//
// Each line is split on the first "=" only, so "NAME=VALUE=extra" yields the
// value "VALUE=extra". Lines without "=" are ignored, as are lines with an
// empty name. When a name repeats, the last occurrence wins. Both "\n" and
// "\r\n" line endings are accepted.
func Parse(output string) Environ {
	return FromSlice(strings.Split(strings.ReplaceAll(output, "\r\n", "\n"), "\n"))
}

// Splits one "NAME=VALUE" entry.
func cutEntry(entry string) (name, value string, ok bool) {
	name, value, ok = strings.Cut(entry, "=")
	if !ok || name == "" {
		return "", "", false
	}
	return name, value, true
}

// Returns the value of a variable and whether it is set.
func (e Environ) Lookup(name string) (string, bool) {
	if v, ok := e.vars[name]; ok || !foldCase {
		return v, ok
	}
	for k, v := range e.vars {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}

// Returns the value of a variable, or "" if it is not set.
func (e Environ) Get(name string) string {
	v, _ := e.Lookup(name)
	return v
}

// Number of variables.
func (e Environ) Len() int {
	return len(e.vars)
}

// Returns the variable names in sorted order.
func (e Environ) Names() []string {
	return slices.Sorted(maps.Keys(e.vars))
}

// Returns the variables as sorted "NAME=VALUE" entries, suitable for
// [os/exec.Cmd.Env].
func (e Environ) Slice() []string {
	names := e.Names()
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = name + "=" + e.vars[name]
	}
	return out
}

// Returns a copy of the variables as a map.
func (e Environ) Map() map[string]string {
	if e.vars == nil {
		return map[string]string{}
	}
	return maps.Clone(e.vars)
}

// Returns a new [Environ] with the overlays applied in order. The receiver is
// not modified.
func (e Environ) With(overlays ...Environ) Environ {
	vars := make(map[string]string, len(e.vars))
	maps.Copy(vars, e.vars)
	for _, o := range overlays {
		for name, value := range o.vars {
			put(vars, name, value)
		}
	}
	return Environ{vars: vars}
}

// Returns a new [Environ] with one variable set.
func (e Environ) Set(name, value string) Environ {
	return e.With(Environ{vars: map[string]string{name: value}})
}

// Writes every variable into the current process environment, overwriting
// existing values. Variables not in e are left alone.
//
// Builds do not need this; it exists for callers that run tools which
// cannot be given an explicit environment.
func (e Environ) Apply() error {
	for _, name := range e.Names() {
		if err := os.Setenv(name, e.vars[name]); err != nil {
			return err
		}
	}
	return nil
}
