package archive

import (
	_ "crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cruciblehq/opensslpack/internal/paths"
	"github.com/opencontainers/go-digest"
)

// Extension of the checksum file written next to an archive.
const ChecksumExt = ".sha256"

// Computes the sha256 content digest of a finished archive.
func Digest(path string) (digest.Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrArchive, err)
	}
	defer f.Close()

	d, err := digest.SHA256.FromReader(f)
	if err != nil {
		return "", fmt.Errorf("%w: hashing %s: %w", ErrArchive, path, err)
	}
	return d, nil
}

// Writes "<hex>  <basename>" to <path>.sha256, the format read by
// "sha256sum -c", and returns the checksum file's path.
func WriteChecksum(path string, d digest.Digest) (string, error) {
	sumPath := path + ChecksumExt
	line := fmt.Sprintf("%s  %s\n", d.Encoded(), filepath.Base(path))

	if err := os.WriteFile(sumPath, []byte(line), paths.DefaultFileMode); err != nil {
		return "", fmt.Errorf("%w: %w", ErrArchive, err)
	}
	return sumPath, nil
}
