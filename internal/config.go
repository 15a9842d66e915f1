package internal

import (
	"strconv"
	"sync/atomic"
)

var (
	quiet   atomic.Bool
	debug   atomic.Bool
	verbose atomic.Bool
)

// Seeds the output modes from the link-time defaults. Values that fail to
// parse leave the mode disabled.
func init() {
	for _, m := range []struct {
		raw  string
		mode *atomic.Bool
	}{
		{rawQuiet, &quiet},
		{rawDebug, &debug},
		{rawVerbose, &verbose},
	} {
		if v, err := strconv.ParseBool(m.raw); err == nil {
			m.mode.Store(v)
		}
	}
}

// Enables or disables quiet mode.
func SetQuiet(enabled bool) { quiet.Store(enabled) }

// Returns true if quiet mode is enabled.
func IsQuiet() bool { return quiet.Load() }

// Enables or disables debug mode.
func SetDebug(enabled bool) { debug.Store(enabled) }

// Returns true if debug mode is enabled.
func IsDebug() bool { return debug.Load() }

// Enables or disables verbose output.
func SetVerbose(enabled bool) { verbose.Store(enabled) }

// Returns true if verbose output is enabled.
func IsVerbose() bool { return verbose.Load() }
