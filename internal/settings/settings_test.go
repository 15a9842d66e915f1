package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/containerd/errdefs"
	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
vcvarsall: 'C:\VS\VC\Auxiliary\Build\vcvarsall.bat'
source: 'C:\src\openssl-3.1.2'
work_dir: build
output: dist
product: openssl
toolset: vs2022
jobs: 2
`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := &Settings{
		VCVarsAll: `C:\VS\VC\Auxiliary\Build\vcvarsall.bat`,
		Source:    `C:\src\openssl-3.1.2`,
		WorkDir:   "build",
		Output:    "dist",
		Product:   "openssl",
		Toolset:   "vs2022",
		Jobs:      2,
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Fatalf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	s, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(&Settings{}, s); diff != "" {
		t.Fatalf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "unknown key", content: "targets: [x64-windows]\n", wantErr: ErrInvalidConfig},
		{name: "wrong type", content: "jobs: many\n", wantErr: ErrInvalidConfig},
		{name: "negative jobs", content: "jobs: -1\n", wantErr: ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if !errdefs.IsInvalidArgument(err) {
				t.Fatalf("err = %v, want invalid argument", err)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("err = %v, want %v", err, ErrConfigNotFound)
	}
	if !errdefs.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestDiscoverExplicitMissing(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("err = %v, want %v", err, ErrConfigNotFound)
	}
}

func TestDiscoverExplicit(t *testing.T) {
	s, err := Discover(writeConfig(t, "toolset: vs2019\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Toolset != "vs2019" {
		t.Fatalf("Toolset = %q, want vs2019", s.Toolset)
	}
}

func TestFill(t *testing.T) {
	s := Settings{Source: "flag-source", Jobs: 4}
	s.Fill(Settings{Source: "file-source", Toolset: "vs2019"})
	s.Fill(Defaults())

	want := Settings{
		Script:  Defaults().Script,
		Source:  "flag-source",
		WorkDir: ".",
		Output:  ".",
		Product: "openssl",
		Toolset: "vs2019",
		Jobs:    4,
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Fatalf("settings mismatch (-want +got):\n%s", diff)
	}
}
