package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/cruciblehq/opensslpack/internal/paths"
	"github.com/cruciblehq/opensslpack/internal/vcenv"
	"gopkg.in/yaml.v3"
)

// Values that control a packaging run.
type Settings struct {
	VCVarsAll string `yaml:"vcvarsall"` // Path to vcvarsall.bat.
	Script    string `yaml:"script"`    // Environment script wrapping vcvarsall.bat.
	Source    string `yaml:"source"`    // OpenSSL source checkout.
	WorkDir   string `yaml:"work_dir"`  // Directory holding openssl-build/.
	Output    string `yaml:"output"`    // Directory the archive is written to.
	Product   string `yaml:"product"`   // Leading part of the archive name.
	Toolset   string `yaml:"toolset"`   // Trailing part of the archive name.
	Jobs      int    `yaml:"jobs"`      // Maximum targets built at once.
}

// Built-in defaults. Directories default to the current directory.
func Defaults() Settings {
	return Settings{
		Script:  vcenv.DefaultScript,
		WorkDir: ".",
		Output:  ".",
		Product: "openssl",
		Toolset: "vs2017",
		Jobs:    1,
	}
}

// Sets every empty field of s from fallback.
func (s *Settings) Fill(fallback Settings) {
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&s.VCVarsAll, fallback.VCVarsAll)
	fill(&s.Script, fallback.Script)
	fill(&s.Source, fallback.Source)
	fill(&s.WorkDir, fallback.WorkDir)
	fill(&s.Output, fallback.Output)
	fill(&s.Product, fallback.Product)
	fill(&s.Toolset, fallback.Toolset)
	if s.Jobs == 0 {
		s.Jobs = fallback.Jobs
	}
}

// Reads settings from a YAML file.
//
// Unknown keys are rejected so that typos do not silently fall back to
// defaults. An empty file yields empty settings.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}

	return parse(data, path)
}

// Decodes YAML settings. name is used in error messages.
func parse(data []byte, name string) (*Settings, error) {
	var s Settings

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, name, err)
	}

	if s.Jobs < 0 {
		return nil, fmt.Errorf("%w: %s: jobs must not be negative", ErrInvalidConfig, name)
	}

	return &s, nil
}

// Loads the config file named on the command line, or the default config
// file if one exists.
//
// Returns empty settings when no file is named and the default does not
// exist.
func Discover(explicit string) (*Settings, error) {
	if explicit != "" {
		return Load(explicit)
	}

	path, ok := paths.FindConfigFile()
	if !ok {
		return &Settings{}, nil
	}

	slog.Debug("loading config file", "path", path)
	return Load(path)
}
