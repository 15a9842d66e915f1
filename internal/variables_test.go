package internal

import (
	"strings"
	"testing"
)

func TestVersionString(t *testing.T) {
	tests := []struct {
		name      string
		version   string
		gitCommit string
		want      string
	}{
		{name: "dev", want: "(dev)"},
		{name: "missing commit", version: "1.2.0", want: "(dev)"},
		{name: "release", version: "v1.2.0", gitCommit: "abc123", want: "1.2.0 abc123 ["},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldVersion, oldCommit := version, gitCommit
			t.Cleanup(func() { version, gitCommit = oldVersion, oldCommit })
			version, gitCommit = tt.version, tt.gitCommit

			if got := VersionString(); !strings.HasPrefix(got, tt.want) {
				t.Fatalf("VersionString() = %q, want prefix %q", got, tt.want)
			}
		})
	}
}

func TestGitCommitUnknown(t *testing.T) {
	old := gitCommit
	t.Cleanup(func() { gitCommit = old })
	gitCommit = "  "

	if got := GitCommit(); got != "(unknown)" {
		t.Fatalf("GitCommit() = %q, want (unknown)", got)
	}
}
