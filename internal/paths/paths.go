package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for the config subdirectory.
	appName = "opensslpack"

	// Name of the config file inside the config subdirectory.
	configFilename = "config.yaml"

	// Directory under the working directory holding per-target build output.
	buildDirName = "openssl-build"

	// Subdirectory of a target's build output holding the installed files.
	installDirName = "install"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Default location of the config file.
//
//	Linux:   $XDG_CONFIG_HOME/opensslpack/config.yaml
//	macOS:   ~/Library/Application Support/opensslpack/config.yaml
//	Windows: %LOCALAPPDATA%\opensslpack\config.yaml
func ConfigFile() string {
	return filepath.Join(xdg.ConfigHome, appName, configFilename)
}

// Searches the XDG config directories for an existing config file.
//
// Returns the path and true if one was found.
func FindConfigFile() (string, bool) {
	path, err := xdg.SearchConfigFile(filepath.Join(appName, configFilename))
	if err != nil {
		return "", false
	}
	return path, true
}

// Directory holding all build output for one target.
func BuildDir(workDir, triple string) string {
	return filepath.Join(workDir, buildDirName, triple)
}

// Install tree produced under a target's build directory.
func InstallDir(buildDir string) string {
	return filepath.Join(buildDir, installDirName)
}
