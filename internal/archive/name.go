package archive

import (
	"strings"
)

// Returns the archive filename for a product build, e.g.
// "openssl-3.1.2-vs2017.zip". Empty parts are left out.
func Name(product, version, toolset string) string {
	var parts []string
	for _, p := range []string{product, version, toolset} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "-") + Ext
}

// Returns the top-level directory name used inside an archive, which is the
// archive filename without its extension.
func Root(name string) string {
	return strings.TrimSuffix(name, Ext)
}
