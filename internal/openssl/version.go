package openssl

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cruciblehq/opensslpack/internal/vcenv"
)

// Matches the release in OPENSSL_VERSION_TEXT, e.g. "OpenSSL 1.1.1w  11 Sep 2023".
var versionTextPattern = regexp.MustCompile(`OPENSSL_VERSION_TEXT\s+"OpenSSL\s+([^\s"]+)`)

// Returns the release version of an OpenSSL source checkout.
//
// OpenSSL 3 records its version in VERSION.dat as shell-style assignments;
// older releases only have it in include/openssl/opensslv.h.
func Version(sourceDir string) (string, error) {
	v, err := versionFromDat(filepath.Join(sourceDir, "VERSION.dat"))
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	return versionFromHeader(filepath.Join(sourceDir, "include", "openssl", "opensslv.h"))
}

// Reads MAJOR.MINOR.PATCH[-PRE_RELEASE_TAG] from VERSION.dat.
func versionFromDat(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	vars := vcenv.Parse(string(data))
	get := func(name string) string {
		return strings.Trim(strings.TrimSpace(vars.Get(name)), `"`)
	}

	major, minor, patch := get("MAJOR"), get("MINOR"), get("PATCH")
	if major == "" || minor == "" || patch == "" {
		return "", fmt.Errorf("%w: %s is missing MAJOR, MINOR or PATCH", ErrVersionNotFound, path)
	}

	v := major + "." + minor + "." + patch
	if tag := get("PRE_RELEASE_TAG"); tag != "" {
		v += "-" + tag
	}
	return v, nil
}

// Reads the release from OPENSSL_VERSION_TEXT in opensslv.h.
func versionFromHeader(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: no VERSION.dat or opensslv.h", ErrVersionNotFound)
		}
		return "", err
	}

	m := versionTextPattern.FindSubmatch(data)
	if m == nil {
		return "", fmt.Errorf("%w: %s has no OPENSSL_VERSION_TEXT", ErrVersionNotFound, path)
	}
	return string(m[1]), nil
}
